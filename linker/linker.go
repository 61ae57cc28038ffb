package linker

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fulldump/stanzalink/stanza"
)

type Options struct {
	ListField   string // secondary field listing primary ids, comma separated
	AnchorField string // new field goes right after this one
	LinkField   string // name of the new field
}

func DefaultOptions() *Options {
	return &Options{
		ListField:   "Binary",
		AnchorField: "Package",
		LinkField:   "Source",
	}
}

type Report struct {
	Linked         int `json:"linked"`
	AlreadyLinked  int `json:"already_linked"`
	MissingPrimary int `json:"missing_primary"`
	NoList         int `json:"no_list"`
}

func (r *Report) Add(other *Report) {
	r.Linked += other.Linked
	r.AlreadyLinked += other.AlreadyLinked
	r.MissingPrimary += other.MissingPrimary
	r.NoList += other.NoList
}

// Link annotates every primary stanza listed by a secondary stanza with the
// secondary id. A primary stanza that is already linked keeps its first link.
func Link(primary, secondary *stanza.Collection, options *Options) (*Report, error) {

	if options == nil {
		options = DefaultOptions()
	}

	report := &Report{}

	for id, st := range secondary.All() {

		list, err := st.Get(options.ListField)
		if errors.Is(err, stanza.ErrorKeyNotFound) {
			report.NoList++
			continue
		}
		if err != nil {
			return nil, err
		}

		for _, name := range SplitList(list) {

			target, err := primary.Get(name)
			if err != nil {
				report.MissingPrimary++
				continue
			}

			err = target.AddFieldAfter(options.AnchorField, options.LinkField, id)
			if errors.Is(err, stanza.ErrorDuplicateKey) {
				report.AlreadyLinked++
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("link '%s' to '%s': %w", name, id, err)
			}

			report.Linked++
		}
	}

	return report, nil
}

// SplitList splits a comma separated field value, ignoring empty items.
func SplitList(value string) []string {
	result := []string{}
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		result = append(result, item)
	}
	return result
}
