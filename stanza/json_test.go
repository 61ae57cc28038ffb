package stanza

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fulldump/biff"
	json2 "github.com/go-json-experiment/json"
)

func TestEncodeJSON(t *testing.T) {

	input := "Package: foo\nVersion: 1.0\nDescription: short\n long\n\nPackage: bar"
	c, err := Read(strings.NewReader(input), nil)
	biff.AssertNil(err)

	biff.Alternative("JSON", func(a *biff.A) {

		a.Alternative("Field order", func(a *biff.A) {
			foo, _ := c.Get("foo")
			b, err := json2.Marshal(foo)
			biff.AssertNil(err)
			biff.AssertEqual(string(b), `{"Package":"foo","Version":"1.0","Description":"short\n long"}`)
		})

		a.Alternative("Collection", func(a *biff.A) {
			b, err := json2.Marshal(c)
			biff.AssertNil(err)
			biff.AssertEqual(string(b), `[{"Package":"foo","Version":"1.0","Description":"short\n long"},{"Package":"bar"}]`)
		})

		a.Alternative("Encode", func(a *biff.A) {
			w := &bytes.Buffer{}
			err := EncodeJSON(w, c.Stanzas())
			biff.AssertNil(err)

			decoded := []map[string]string{}
			err = json2.Unmarshal(w.Bytes(), &decoded)
			biff.AssertNil(err)
			biff.AssertEqual(decoded, []map[string]string{
				{"Package": "foo", "Version": "1.0", "Description": "short\n long"},
				{"Package": "bar"},
			})
		})
	})
}
