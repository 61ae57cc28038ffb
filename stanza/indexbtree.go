package stanza

import (
	"fmt"
	"iter"

	"github.com/facette/natsort"
	"github.com/google/btree"
)

type IndexBTreeOptions struct {
	Field   string `json:"field"`
	Reverse bool   `json:"reverse"`
	Sparse  bool   `json:"sparse"`
}

// StanzaOrdered is a btree item. Seq keeps stanzas with the same value in
// insertion order.
type StanzaOrdered struct {
	*Stanza
	Value string
	Seq   int
}

type IndexBtree struct {
	Btree   *btree.BTreeG[*StanzaOrdered]
	Options *IndexBTreeOptions
	seq     int
}

func NewIndexBTree(options *IndexBTreeOptions) *IndexBtree {

	index := btree.NewG(32, func(a, b *StanzaOrdered) bool {
		if a.Value != b.Value {
			if natsort.Compare(a.Value, b.Value) {
				return true
			}
			if natsort.Compare(b.Value, a.Value) {
				return false
			}
		}
		return a.Seq < b.Seq
	})

	return &IndexBtree{
		Btree:   index,
		Options: options,
	}
}

func (b *IndexBtree) AddStanza(st *Stanza) error {

	value, err := st.Get(b.Options.Field)
	if err != nil {
		if b.Options.Sparse {
			// Do not index
			return nil
		}
		return fmt.Errorf("field '%s' is indexed and mandatory", b.Options.Field)
	}

	b.Btree.ReplaceOrInsert(&StanzaOrdered{
		Stanza: st,
		Value:  value,
		Seq:    b.seq,
	})
	b.seq++

	return nil
}

func (b *IndexBtree) Len() int {
	return b.Btree.Len()
}

func (b *IndexBtree) Traverse(f func(st *Stanza) bool) {

	iterator := func(item *StanzaOrdered) bool {
		return f(item.Stanza)
	}

	if b.Options.Reverse {
		b.Btree.Descend(iterator)
	} else {
		b.Btree.Ascend(iterator)
	}
}

func (b *IndexBtree) Stanzas() iter.Seq[*Stanza] {
	return b.Traverse
}

// IndexStanzas builds an index with every stanza of the sequence.
func IndexStanzas(stanzas iter.Seq[*Stanza], options *IndexBTreeOptions) (*IndexBtree, error) {

	index := NewIndexBTree(options)
	for st := range stanzas {
		err := index.AddStanza(st)
		if err != nil {
			return nil, err
		}
	}

	return index, nil
}
