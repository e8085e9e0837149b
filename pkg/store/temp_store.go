package store

import (
	"path/filepath"

	"github.com/Twisol/molt/pkg/testutil"
)

// MustGetTempStore returns a Store backed by a file in a temporary directory.
// The Store is closed when the test finishes. It panics if the Store cannot
// be created.
func MustGetTempStore(c testutil.TempDirer) Store {
	st, err := NewStore(filepath.Join(c.TempDir(), "history.db"))
	if err != nil {
		panic(err)
	}
	c.Cleanup(func() { st.Close() })
	return st
}
