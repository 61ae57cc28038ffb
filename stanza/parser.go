package stanza

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"unicode"
)

type MissingKeyPolicy string

const (
	MissingKeyError MissingKeyPolicy = "error"
	MissingKeySkip  MissingKeyPolicy = "skip"
)

// Long Description fields are split in continuation lines, but some archives
// carry huge single lines (checksums, provides...).
const maxLineSize = 16 * 1024 * 1024

type ReadOptions struct {
	PrimaryKey      string
	DuplicateFields DuplicateFieldPolicy
	MissingKey      MissingKeyPolicy
	Logger          *log.Logger
}

func DefaultReadOptions() *ReadOptions {
	return &ReadOptions{
		PrimaryKey:      DefaultPrimaryKey,
		DuplicateFields: DuplicateFieldsLastWins,
		MissingKey:      MissingKeyError,
	}
}

func (o *ReadOptions) logger() *log.Logger {
	if o.Logger == nil {
		return log.Default()
	}
	return o.Logger
}

// Read parses a stream of stanzas separated by blank lines.
func Read(r io.Reader, options *ReadOptions) (*Collection, error) {

	if options == nil {
		options = DefaultReadOptions()
	}

	collection := NewCollection(options.PrimaryKey)

	newStanza := func() *Stanza {
		st := New()
		st.DuplicateFields = options.DuplicateFields
		return st
	}

	current := newStanza()
	start := 0 // first line of the current stanza

	finalize := func() error {
		if current.IsEmpty() {
			return nil
		}
		defer func() {
			current = newStanza()
		}()

		err := collection.Add(current)
		if err == nil {
			return nil
		}
		if errors.Is(err, ErrorMissingPrimaryKey) && options.MissingKey == MissingKeySkip {
			options.logger().Printf("WARNING: skip stanza at line %d: %s\n", start, err.Error())
			return nil
		}
		return fmt.Errorf("stanza at line %d: %w", start, err)
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)

	n := 0
	for scanner.Scan() {
		n++
		line := strings.TrimRightFunc(scanner.Text(), unicode.IsSpace)

		if line == "" {
			err := finalize()
			if err != nil {
				return nil, err
			}
			continue
		}

		if current.IsEmpty() {
			start = n
		}

		err := current.AddLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", n, err)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read line %d: %w", n+1, err)
	}

	err := finalize()
	if err != nil {
		return nil, err
	}

	return collection, nil
}

// ReadFile is lenient with missing files: they read as an empty collection.
func ReadFile(filename string, options *ReadOptions) (*Collection, error) {

	if options == nil {
		options = DefaultReadOptions()
	}

	f, err := os.Open(filename)
	if errors.Is(err, os.ErrNotExist) {
		options.logger().Printf("WARNING: file '%s' not found, using an empty collection\n", filename)
		return NewCollection(options.PrimaryKey), nil
	}
	if err != nil {
		return nil, fmt.Errorf("open file for read: %w", err)
	}
	defer f.Close()

	collection, err := Read(f, options)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}

	return collection, nil
}
