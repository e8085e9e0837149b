package diag

import (
	"errors"
	"fmt"

	"github.com/Twisol/molt/pkg/strutil"
)

// Error represents an error with context that can be showed. The type
// parameter distinguishes errors from different stages, like parse errors
// from evaluation errors, without needing a separate struct for each.
type Error[T ErrorTag] struct {
	Message string
	Context Context
	// Whether the error happened at the end of the source. Interactive
	// frontends treat such errors as a sign that more input is needed.
	Partial bool
}

// ErrorTag is used to parameterize [Error] into different concrete types.
type ErrorTag interface {
	ErrorTag() string
}

// Error returns a plain text representation of the error.
func (e *Error[T]) Error() string {
	return errorTag[T]() + ": " + e.Context.Describe() + ": " + e.Message
}

// Range returns the range of the error.
func (e *Error[T]) Range() Ranging {
	return e.Context.Range()
}

var (
	messageStart = "\033[31;1m"
	messageEnd   = "\033[m"
)

// Show shows the error.
func (e *Error[T]) Show(indent string) string {
	return fmt.Sprintf("%s: %s%s%s\n%s  %s", strutil.Title(errorTag[T]()),
		messageStart, e.Message, messageEnd, indent, e.Context.Show(indent+"  "))
}

// GetError returns the first *Error[T] found in the chain of err, or nil.
func GetError[T ErrorTag](err error) *Error[T] {
	var e *Error[T]
	if errors.As(err, &e) {
		return e
	}
	return nil
}

func errorTag[T ErrorTag]() string {
	var t T
	return t.ErrorTag()
}
