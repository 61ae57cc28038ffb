package stanza

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/fulldump/stanzalink/orderedmap"
)

var ErrorKeyNotFound = orderedmap.ErrorKeyNotFound
var ErrorDuplicateKey = orderedmap.ErrorDuplicateKey
var ErrorNoPriorField = errors.New("continuation line without a previous field")
var ErrorDuplicateField = errors.New("duplicated field")
var ErrorMissingPrimaryKey = errors.New("missing primary key")

type DuplicateFieldPolicy string

const (
	DuplicateFieldsLastWins DuplicateFieldPolicy = "last-wins"
	DuplicateFieldsReject   DuplicateFieldPolicy = "reject"
)

// Stanza is one record: an ordered set of fields. Values are stored raw, as
// found after the colon, continuation lines included.
type Stanza struct {
	DuplicateFields DuplicateFieldPolicy // empty means last-wins

	fields  *orderedmap.Map[string, string]
	last    string
	hasLast bool
}

func New() *Stanza {
	return &Stanza{
		fields: orderedmap.New[string, string](),
	}
}

// AddLine feeds one non blank line.
func (s *Stanza) AddLine(line string) error {

	if isContinuation(line) {
		if !s.hasLast {
			return ErrorNoPriorField
		}
		value, err := s.fields.Get(s.last)
		if err != nil {
			return err
		}
		s.fields.Set(s.last, value+"\n"+line)
		return nil
	}

	name, value, _ := strings.Cut(line, ":")

	if s.DuplicateFields == DuplicateFieldsReject && s.fields.Has(name) {
		return fmt.Errorf("%w: '%s'", ErrorDuplicateField, name)
	}

	s.fields.Set(name, value)
	s.last = name
	s.hasLast = true

	return nil
}

func isContinuation(line string) bool {
	return line != "" && (line[0] == ' ' || line[0] == '\t')
}

// Get returns the value of a field without surrounding whitespace.
func (s *Stanza) Get(field string) (string, error) {
	value, err := s.fields.Get(field)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

func (s *Stanza) Raw(field string) (string, error) {
	return s.fields.Get(field)
}

func (s *Stanza) Has(field string) bool {
	return s.fields.Has(field)
}

// Set stores a raw value, the caller is in charge of the leading space.
func (s *Stanza) Set(field, value string) {
	s.fields.Set(field, value)
}

func (s *Stanza) AddFieldAfter(anchor, field, value string) error {
	return s.fields.InsertAfter(anchor, field, " "+value)
}

func (s *Stanza) AddFieldBefore(anchor, field, value string) error {
	return s.fields.InsertBefore(anchor, field, " "+value)
}

func (s *Stanza) Fields() iter.Seq2[string, string] {
	return s.fields.All()
}

func (s *Stanza) Len() int {
	return s.fields.Len()
}

func (s *Stanza) IsEmpty() bool {
	return s.fields.IsEmpty()
}

// Map returns trimmed values, handy to match against queries.
func (s *Stanza) Map() map[string]interface{} {
	result := make(map[string]interface{}, s.fields.Len())
	for name, value := range s.fields.All() {
		result[name] = strings.TrimSpace(value)
	}
	return result
}

func (s *Stanza) String() string {
	b := &strings.Builder{}
	s.writeTo(b)
	return b.String()
}

func (s *Stanza) writeTo(b *strings.Builder) {
	first := true
	for name, value := range s.fields.All() {
		if !first {
			b.WriteByte('\n')
		}
		first = false
		b.WriteString(name)
		b.WriteByte(':')
		b.WriteString(value)
	}
}
