package stanza

import (
	"slices"
	"strings"
	"testing"

	"github.com/fulldump/biff"
)

func TestFilter(t *testing.T) {

	input := "Package: a\nSection: libs\n\nPackage: b\nSection: utils\n\nPackage: c\nSection: libs"
	c, err := Read(strings.NewReader(input), nil)
	biff.AssertNil(err)

	names := func(stanzas []*Stanza) []string {
		result := []string{}
		for _, st := range stanzas {
			name, _ := st.Get("Package")
			result = append(result, name)
		}
		return result
	}

	biff.Alternative("Filter", func(a *biff.A) {

		a.Alternative("Empty filter", func(a *biff.A) {
			filter, err := ParseFilter("")
			biff.AssertNil(err)

			var matchErr error
			result := slices.Collect(Filter(c.Stanzas(), filter, &matchErr))
			biff.AssertNil(matchErr)
			biff.AssertEqual(names(result), []string{"a", "b", "c"})
		})

		a.Alternative("Equal", func(a *biff.A) {
			filter, err := ParseFilter(`{"Section":{"$eq":"libs"}}`)
			biff.AssertNil(err)

			var matchErr error
			result := slices.Collect(Filter(c.Stanzas(), filter, &matchErr))
			biff.AssertNil(matchErr)
			biff.AssertEqual(names(result), []string{"a", "c"})
		})

		a.Alternative("Not equal", func(a *biff.A) {
			filter, _ := ParseFilter(`{"Section":{"$ne":"libs"}}`)

			st, _ := c.Get("b")
			match, err := Match(filter, st)
			biff.AssertNil(err)
			biff.AssertTrue(match)

			st, _ = c.Get("a")
			match, err = Match(filter, st)
			biff.AssertNil(err)
			biff.AssertFalse(match)
		})

		a.Alternative("Invalid query", func(a *biff.A) {
			_, err := ParseFilter(`{"Section":`)
			biff.AssertNotNil(err)
		})
	})
}
