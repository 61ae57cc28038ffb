package stanza

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

func Environment(f func(filename string)) {
	filename := filepath.Join(os.TempDir(), fmt.Sprintf("stanzas-%v", time.Now().UnixNano()))
	defer os.Remove(filename)

	f(filename)
}
