package configuration

import (
	"strings"
	"testing"

	"github.com/fulldump/biff"
)

func TestValidate(t *testing.T) {

	biff.Alternative("Validate", func(a *biff.A) {

		c := Default()

		a.Alternative("Default is valid", func(a *biff.A) {
			biff.AssertNil(c.Validate())
		})

		a.Alternative("Packages is mandatory", func(a *biff.A) {
			c.Packages = ""
			biff.AssertNotNil(c.Validate())
		})

		a.Alternative("Invalid field name", func(a *biff.A) {
			c.LinkField = "Source: x"
			err := c.Validate()
			biff.AssertNotNil(err)
			biff.AssertTrue(strings.Contains(err.Error(), "LinkField"))
		})

		a.Alternative("Unknown merge mode", func(a *biff.A) {
			c.ExtraMerge = "sideways"
			err := c.Validate()
			biff.AssertNotNil(err)
			biff.AssertEqual(err.Error(), "ExtraMerge 'sideways' not supported, use one of: after, before, override")
		})

		a.Alternative("Unknown format", func(a *biff.A) {
			c.Format = "yaml"
			err := c.Validate()
			biff.AssertEqual(err.Error(), "Format 'yaml' not supported, use one of: json, stanza")
		})

		a.Alternative("Reject duplicated fields", func(a *biff.A) {
			c.DuplicateFields = "reject"
			c.MissingKey = "skip"
			c.Sort = "desc"
			biff.AssertNil(c.Validate())
		})
	})
}
