package configuration

import (
	"fmt"
	"strings"

	"github.com/fulldump/stanzalink/linker"
	"github.com/fulldump/stanzalink/stanza"
	"github.com/fulldump/stanzalink/utils"
)

const (
	FormatStanza = "stanza"
	FormatJSON   = "json"

	SortNone = "none"
	SortAsc  = "asc"
	SortDesc = "desc"
)

func Default() *Configuration {
	return &Configuration{
		Packages:        "Packages",
		Sources:         "Sources",
		Extra:           "",
		Output:          "",
		PrimaryKey:      "Package",
		SecondaryKey:    "Package",
		ListField:       "Binary",
		AnchorField:     "Package",
		LinkField:       "Source",
		ExtraMerge:      string(linker.MergeAfter),
		DuplicateFields: string(stanza.DuplicateFieldsLastWins),
		MissingKey:      string(stanza.MissingKeyError),
		Format:          FormatStanza,
		Sort:            SortNone,
		Filter:          "",
	}
}

var extraMerges = map[string]bool{}
var duplicateFields = map[string]bool{
	string(stanza.DuplicateFieldsLastWins): true,
	string(stanza.DuplicateFieldsReject):   true,
}
var missingKeys = map[string]bool{
	string(stanza.MissingKeyError): true,
	string(stanza.MissingKeySkip):  true,
}
var formats = map[string]bool{
	FormatStanza: true,
	FormatJSON:   true,
}
var sorts = map[string]bool{
	SortNone: true,
	SortAsc:  true,
	SortDesc: true,
}

func init() {
	for mode := range linker.MergeModes {
		extraMerges[string(mode)] = true
	}
}

func (c *Configuration) Validate() error {

	if c.Packages == "" {
		return fmt.Errorf("packages file is mandatory")
	}

	for _, field := range []struct {
		name  string
		value string
	}{
		{"PrimaryKey", c.PrimaryKey},
		{"SecondaryKey", c.SecondaryKey},
		{"ListField", c.ListField},
		{"AnchorField", c.AnchorField},
		{"LinkField", c.LinkField},
	} {
		if strings.TrimSpace(field.value) == "" {
			return fmt.Errorf("%s can not be empty", field.name)
		}
		if strings.ContainsAny(field.value, ": \t\n") {
			return fmt.Errorf("%s '%s' is not a valid field name", field.name, field.value)
		}
	}

	for _, option := range []struct {
		name    string
		value   string
		allowed map[string]bool
	}{
		{"ExtraMerge", c.ExtraMerge, extraMerges},
		{"DuplicateFields", c.DuplicateFields, duplicateFields},
		{"MissingKey", c.MissingKey, missingKeys},
		{"Format", c.Format, formats},
		{"Sort", c.Sort, sorts},
	} {
		if !option.allowed[option.value] {
			return fmt.Errorf("%s '%s' not supported, use one of: %s", option.name, option.value, strings.Join(utils.GetKeys(option.allowed), ", "))
		}
	}

	return nil
}
