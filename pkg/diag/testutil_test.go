package diag

import (
	"strings"
	"testing"

	"github.com/Twisol/molt/pkg/testutil"
)

func setCulpritMarkers(t *testing.T, start, end string) {
	testutil.Set(t, &culpritStart, start)
	testutil.Set(t, &culpritEnd, end)
}

func setMessageMarkers(t *testing.T, start, end string) {
	testutil.Set(t, &messageStart, start)
	testutil.Set(t, &messageEnd, end)
}

// Returns a Context whose range is the parenthesized part of source.
func contextInParen(name, source string) *Context {
	return NewContext(name, source,
		Ranging{strings.Index(source, "("), strings.Index(source, ")") + 1})
}
