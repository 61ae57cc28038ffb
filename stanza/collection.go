package stanza

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/fulldump/stanzalink/orderedmap"
)

const DefaultPrimaryKey = "Package"

// Collection files stanzas by the value of their primary key field, keeping
// the order they were added in.
type Collection struct {
	PrimaryKey string
	stanzas    *orderedmap.Map[string, *Stanza]
}

func NewCollection(primaryKey string) *Collection {
	if primaryKey == "" {
		primaryKey = DefaultPrimaryKey
	}
	return &Collection{
		PrimaryKey: primaryKey,
		stanzas:    orderedmap.New[string, *Stanza](),
	}
}

func (c *Collection) id(st *Stanza) (string, error) {
	id, err := st.Get(c.PrimaryKey)
	if errors.Is(err, ErrorKeyNotFound) {
		return "", fmt.Errorf("%w: field '%s'", ErrorMissingPrimaryKey, c.PrimaryKey)
	}
	return id, err
}

// Add never overwrites: a repeated primary key is an error.
func (c *Collection) Add(st *Stanza) error {

	id, err := c.id(st)
	if err != nil {
		return err
	}

	if c.stanzas.Has(id) {
		return fmt.Errorf("%w: %s '%s'", ErrorDuplicateKey, c.PrimaryKey, id)
	}

	c.stanzas.Set(id, st)
	return nil
}

// Put replaces a stanza with the same primary key in place, or appends it.
func (c *Collection) Put(st *Stanza) error {

	id, err := c.id(st)
	if err != nil {
		return err
	}

	c.stanzas.Set(id, st)
	return nil
}

func (c *Collection) Get(id string) (*Stanza, error) {
	return c.stanzas.Get(id)
}

func (c *Collection) Has(id string) bool {
	return c.stanzas.Has(id)
}

func (c *Collection) Len() int {
	return c.stanzas.Len()
}

func (c *Collection) IsEmpty() bool {
	return c.stanzas.IsEmpty()
}

func (c *Collection) All() iter.Seq2[string, *Stanza] {
	return c.stanzas.All()
}

func (c *Collection) Stanzas() iter.Seq[*Stanza] {
	return c.stanzas.Values()
}

func (c *Collection) String() string {
	b := &strings.Builder{}
	Encode(b, c.Stanzas()) // strings.Builder never fails
	return b.String()
}

func (c *Collection) WriteTo(w io.Writer) (int64, error) {
	cw := &countWriter{w: w}
	err := Encode(cw, c.Stanzas())
	return cw.n, err
}

// Encode writes stanzas separated by a blank line. There is no trailing
// newline after the last one.
func Encode(w io.Writer, stanzas iter.Seq[*Stanza]) error {

	b := &strings.Builder{}
	first := true
	for st := range stanzas {
		if !first {
			b.WriteString("\n\n")
		}
		first = false
		st.writeTo(b)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

type countWriter struct {
	w io.Writer
	n int64
}

func (c *countWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
