package stanza

import (
	"fmt"
	"iter"

	"github.com/SierraSoftworks/connor"
	json2 "github.com/go-json-experiment/json"
)

// ParseFilter decodes a query like `{"Section":{"$eq":"libs"}}`. An empty
// string means no filter.
func ParseFilter(query string) (map[string]interface{}, error) {

	filter := map[string]interface{}{}
	if query == "" {
		return filter, nil
	}

	err := json2.Unmarshal([]byte(query), &filter)
	if err != nil {
		return nil, fmt.Errorf("decode filter: %w", err)
	}

	return filter, nil
}

func Match(filter map[string]interface{}, st *Stanza) (bool, error) {
	if len(filter) == 0 {
		return true, nil
	}
	return connor.Match(filter, st.Map())
}

// Filter yields only matching stanzas, the first match error stops the
// sequence and is stored in *errp.
func Filter(stanzas iter.Seq[*Stanza], filter map[string]interface{}, errp *error) iter.Seq[*Stanza] {
	return func(yield func(*Stanza) bool) {
		for st := range stanzas {
			match, err := Match(filter, st)
			if err != nil {
				*errp = fmt.Errorf("match: %w", err)
				return
			}
			if !match {
				continue
			}
			if !yield(st) {
				return
			}
		}
	}
}
