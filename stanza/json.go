package stanza

import (
	"io"
	"iter"
	"strings"

	"github.com/go-json-experiment/json/jsontext"
)

// MarshalJSONTo renders the stanza as an object with trimmed values, field
// order preserved.
func (s *Stanza) MarshalJSONTo(enc *jsontext.Encoder) error {

	if err := enc.WriteToken(jsontext.BeginObject); err != nil {
		return err
	}

	for name, value := range s.fields.All() {
		if err := enc.WriteToken(jsontext.String(name)); err != nil {
			return err
		}
		if err := enc.WriteToken(jsontext.String(strings.TrimSpace(value))); err != nil {
			return err
		}
	}

	return enc.WriteToken(jsontext.EndObject)
}

func (c *Collection) MarshalJSONTo(enc *jsontext.Encoder) error {
	return encodeArray(enc, c.Stanzas())
}

// EncodeJSON writes stanzas as an indented JSON array.
func EncodeJSON(w io.Writer, stanzas iter.Seq[*Stanza]) error {
	enc := jsontext.NewEncoder(w, jsontext.WithIndent("    "))
	return encodeArray(enc, stanzas)
}

func encodeArray(enc *jsontext.Encoder, stanzas iter.Seq[*Stanza]) error {

	if err := enc.WriteToken(jsontext.BeginArray); err != nil {
		return err
	}

	for st := range stanzas {
		if err := st.MarshalJSONTo(enc); err != nil {
			return err
		}
	}

	return enc.WriteToken(jsontext.EndArray)
}
