package stanza

import (
	"strings"
	"testing"

	"github.com/fulldump/biff"
)

func packageNames(index *IndexBtree) []string {
	names := []string{}
	index.Traverse(func(st *Stanza) bool {
		name, _ := st.Get("Package")
		names = append(names, name)
		return true
	})
	return names
}

func Test_IndexBTree_HappyPath(t *testing.T) {

	input := "Package: lib10\n\nPackage: lib2\n\nPackage: abc\n\nPackage: lib1"
	c, err := Read(strings.NewReader(input), nil)
	biff.AssertNil(err)

	biff.Alternative("IndexBTree", func(a *biff.A) {

		options := &IndexBTreeOptions{Field: "Package"}

		a.Alternative("Natural order", func(a *biff.A) {
			index, err := IndexStanzas(c.Stanzas(), options)
			biff.AssertNil(err)
			biff.AssertEqual(index.Len(), 4)
			biff.AssertEqual(packageNames(index), []string{"abc", "lib1", "lib2", "lib10"})
		})

		a.Alternative("Reverse", func(a *biff.A) {
			options.Reverse = true
			index, err := IndexStanzas(c.Stanzas(), options)
			biff.AssertNil(err)
			biff.AssertEqual(packageNames(index), []string{"lib10", "lib2", "lib1", "abc"})
		})

		a.Alternative("Stop traverse", func(a *biff.A) {
			index, _ := IndexStanzas(c.Stanzas(), options)
			names := []string{}
			for st := range index.Stanzas() {
				name, _ := st.Get("Package")
				names = append(names, name)
				break
			}
			biff.AssertEqual(names, []string{"abc"})
		})
	})
}

func Test_IndexBTree_RepeatedValues(t *testing.T) {

	input := "Package: c\nSection: libs\n\nPackage: a\nSection: utils\n\nPackage: b\nSection: libs"
	c, _ := Read(strings.NewReader(input), nil)

	index, err := IndexStanzas(c.Stanzas(), &IndexBTreeOptions{Field: "Section"})
	biff.AssertNil(err)
	biff.AssertEqual(packageNames(index), []string{"c", "b", "a"})
}

func Test_IndexBTree_Sparse(t *testing.T) {

	input := "Package: a\nSection: libs\n\nPackage: b"
	c, _ := Read(strings.NewReader(input), nil)

	biff.Alternative("Sparse", func(a *biff.A) {

		a.Alternative("Mandatory", func(a *biff.A) {
			_, err := IndexStanzas(c.Stanzas(), &IndexBTreeOptions{Field: "Section"})
			biff.AssertNotNil(err)
		})

		a.Alternative("Sparse", func(a *biff.A) {
			index, err := IndexStanzas(c.Stanzas(), &IndexBTreeOptions{Field: "Section", Sparse: true})
			biff.AssertNil(err)
			biff.AssertEqual(packageNames(index), []string{"a"})
		})
	})
}
