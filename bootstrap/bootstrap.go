package bootstrap

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/fulldump/stanzalink/configuration"
	"github.com/fulldump/stanzalink/linker"
	"github.com/fulldump/stanzalink/stanza"
)

var VERSION = "dev"

// Run reads packages and sources, links them and writes the annotated
// packages. Nothing is written unless every step succeeded.
func Run(c *configuration.Configuration, stdout io.Writer, logger *log.Logger) error {

	if logger == nil {
		logger = log.Default()
	}

	err := c.Validate()
	if err != nil {
		return fmt.Errorf("configuration: %w", err)
	}

	readOptions := func(primaryKey string) *stanza.ReadOptions {
		return &stanza.ReadOptions{
			PrimaryKey:      primaryKey,
			DuplicateFields: stanza.DuplicateFieldPolicy(c.DuplicateFields),
			MissingKey:      stanza.MissingKeyPolicy(c.MissingKey),
			Logger:          logger,
		}
	}

	packages, err := stanza.ReadFile(c.Packages, readOptions(c.PrimaryKey))
	if err != nil {
		return err
	}

	sources := stanza.NewCollection(c.SecondaryKey)
	if c.Sources != "" {
		sources, err = stanza.ReadFile(c.Sources, readOptions(c.SecondaryKey))
		if err != nil {
			return err
		}
	}

	var extra *stanza.Collection
	if c.Extra != "" {
		extra, err = stanza.ReadFile(c.Extra, readOptions(c.SecondaryKey))
		if err != nil {
			return err
		}
	}

	sequence, err := linker.Sequence(sources, extra, linker.MergeMode(c.ExtraMerge))
	if err != nil {
		return err
	}

	report, err := linker.LinkAll(packages, sequence, &linker.Options{
		ListField:   c.ListField,
		AnchorField: c.AnchorField,
		LinkField:   c.LinkField,
	})
	if err != nil {
		return err
	}

	buf, err := render(c, packages)
	if err != nil {
		return err
	}

	if c.Output == "" {
		_, err = stdout.Write(buf.Bytes())
	} else {
		err = os.WriteFile(c.Output, buf.Bytes(), 0666)
	}
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	logger.Printf("%d packages, %d linked, %d already linked, %d not found, %d sources without %s, %s written\n",
		packages.Len(), report.Linked, report.AlreadyLinked, report.MissingPrimary, report.NoList, c.ListField,
		humanize.Bytes(uint64(buf.Len())))

	return nil
}

func render(c *configuration.Configuration, packages *stanza.Collection) (*bytes.Buffer, error) {

	filter, err := stanza.ParseFilter(c.Filter)
	if err != nil {
		return nil, err
	}

	output := packages.Stanzas()

	if c.Sort == configuration.SortAsc || c.Sort == configuration.SortDesc {
		index, err := stanza.IndexStanzas(output, &stanza.IndexBTreeOptions{
			Field:   c.PrimaryKey,
			Reverse: c.Sort == configuration.SortDesc,
		})
		if err != nil {
			return nil, fmt.Errorf("sort: %w", err)
		}
		output = index.Stanzas()
	}

	var matchErr error
	output = stanza.Filter(output, filter, &matchErr)

	buf := &bytes.Buffer{}
	switch c.Format {
	case configuration.FormatJSON:
		err = stanza.EncodeJSON(buf, output)
	default:
		err = stanza.Encode(buf, output)
	}
	if matchErr != nil {
		return nil, matchErr
	}
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}

	return buf, nil
}
