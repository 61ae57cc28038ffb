package linker

import (
	"fmt"

	"github.com/fulldump/stanzalink/stanza"
)

// MergeMode decides how an extra source combines with the regular one.
type MergeMode string

const (
	MergeAfter    MergeMode = "after"    // regular source links first, its links win
	MergeBefore   MergeMode = "before"   // extra source links first, its links win
	MergeOverride MergeMode = "override" // extra stanzas replace regular ones with the same id
)

var MergeModes = map[MergeMode]bool{
	MergeAfter:    true,
	MergeBefore:   true,
	MergeOverride: true,
}

// Sequence returns the collections to link, in order. extra may be nil.
func Sequence(secondary, extra *stanza.Collection, mode MergeMode) ([]*stanza.Collection, error) {

	if extra == nil || extra.IsEmpty() {
		return []*stanza.Collection{secondary}, nil
	}

	switch mode {
	case MergeAfter, "":
		return []*stanza.Collection{secondary, extra}, nil
	case MergeBefore:
		return []*stanza.Collection{extra, secondary}, nil
	case MergeOverride:
		merged, err := Merge(secondary, extra)
		if err != nil {
			return nil, err
		}
		return []*stanza.Collection{merged}, nil
	default:
		return nil, fmt.Errorf("unknown merge mode '%s'", mode)
	}
}

// Merge returns a new collection with the stanzas of base, replaced in place
// by the ones of overlay with the same id. New ids are appended.
func Merge(base, overlay *stanza.Collection) (*stanza.Collection, error) {

	merged := stanza.NewCollection(base.PrimaryKey)

	for _, st := range base.All() {
		err := merged.Add(st)
		if err != nil {
			return nil, err
		}
	}

	for id, st := range overlay.All() {
		err := merged.Put(st)
		if err != nil {
			return nil, fmt.Errorf("merge '%s': %w", id, err)
		}
	}

	return merged, nil
}

// LinkAll links every collection in order, accumulating the report.
func LinkAll(primary *stanza.Collection, sequence []*stanza.Collection, options *Options) (*Report, error) {

	total := &Report{}
	for _, secondary := range sequence {
		report, err := Link(primary, secondary, options)
		if err != nil {
			return nil, err
		}
		total.Add(report)
	}

	return total, nil
}
