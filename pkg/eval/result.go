package eval

import (
	"bytes"
	"fmt"

	"github.com/Twisol/molt/pkg/diag"
	"github.com/Twisol/molt/pkg/parse"
)

// Code is the completion code of a Result.
type Code int

// Possible values of Code. The numeric values are those reported by catch.
const (
	OK Code = iota
	Error
	Return
	Break
	Continue
)

var codeNames = [...]string{
	OK: "ok", Error: "error", Return: "return", Break: "break", Continue: "continue",
}

func (c Code) String() string {
	if 0 <= c && int(c) < len(codeNames) {
		return codeNames[c]
	}
	return fmt.Sprintf("Code(%d)", int(c))
}

// Result is the outcome of every evaluation step. Errors, procedure returns
// and loop signals all travel through it as ordinary values.
type Result struct {
	Code Code
	// The value for OK and Return, the message for Error. Empty for Break and
	// Continue.
	Value string
	// For Error results, the commands the error unwound through, innermost
	// first. Filled in by the evaluator.
	StackTrace *StackTrace
	// For Error results caused by malformed source, the parse error.
	ParseError *parse.Error
}

// StackTrace represents a stack trace as a linked list of diag.Context. The
// head is the innermost command.
type StackTrace struct {
	Head *diag.Context
	Next *StackTrace
}

// Okay returns an OK result with the given value.
func Okay(value string) Result {
	return Result{Code: OK, Value: value}
}

// Errorf returns an Error result with a formatted message.
func Errorf(format string, args ...any) Result {
	return Result{Code: Error, Value: fmt.Sprintf(format, args...)}
}

// ErrorResult returns an Error result with the given message.
func ErrorResult(msg string) Result {
	return Result{Code: Error, Value: msg}
}

// IsOK reports whether r has code OK.
func (r Result) IsOK() bool { return r.Code == OK }

// Err converts a Result into an error. It returns nil for OK results and a
// *FlowError for Return, Break and Continue.
//
// For Error results, it returns the parse error itself if the script being
// evaluated failed to parse, and an *Exception otherwise. A parse error in a
// procedure body or another nested script also becomes an *Exception, so that
// the procedure calls are kept in its stack trace; [parse.GetError] still
// finds the parse error in it.
func (r Result) Err() error {
	switch r.Code {
	case OK:
		return nil
	case Error:
		if r.ParseError != nil && (r.StackTrace == nil || r.StackTrace.Next == nil) {
			return r.ParseError
		}
		return &Exception{r.Value, r.StackTrace, r.ParseError}
	default:
		return &FlowError{r.Code, r.Value}
	}
}

// Exception is the host-side form of an Error result.
type Exception struct {
	Message    string
	StackTrace *StackTrace
	// The parse error that caused the exception, if any.
	ParseError *parse.Error
}

// Error returns the message.
func (exc *Exception) Error() string { return exc.Message }

// Unwrap returns the parse error that caused the exception, or nil.
func (exc *Exception) Unwrap() error {
	if exc.ParseError == nil {
		return nil
	}
	return exc.ParseError
}

// Show shows the exception together with its stack trace.
func (exc *Exception) Show(indent string) string {
	buf := new(bytes.Buffer)
	fmt.Fprintf(buf, "Exception: \033[31;1m%s\033[m", exc.Message)
	if exc.StackTrace != nil {
		buf.WriteString("\n")
		if exc.StackTrace.Next == nil {
			buf.WriteString(indent + "  " + exc.StackTrace.Head.Show(indent+"  "))
		} else {
			buf.WriteString(indent + "Traceback:")
			for tb := exc.StackTrace; tb != nil; tb = tb.Next {
				buf.WriteString("\n" + indent + "  ")
				buf.WriteString(tb.Head.Show(indent + "    "))
			}
		}
	}
	return buf.String()
}

// FlowError is the host-side form of a Return, Break or Continue result that
// was not consumed by a procedure or loop.
type FlowError struct {
	Code  Code
	Value string
}

// Error describes the escaped signal.
func (e *FlowError) Error() string {
	if e.Code == Return {
		return `invoked "return" outside of a proc`
	}
	return fmt.Sprintf("invoked %q outside of a loop", e.Code.String())
}

// Show shows the error.
func (e *FlowError) Show(indent string) string {
	return "\033[31;1m" + e.Error() + "\033[m"
}

// Adds a stack trace entry to an Error result. Entries are added from the
// innermost command outwards.
func (r Result) withContext(ctx *diag.Context) Result {
	if r.StackTrace == nil {
		r.StackTrace = &StackTrace{Head: ctx}
		return r
	}
	tb := r.StackTrace
	for tb.Next != nil {
		tb = tb.Next
	}
	tb.Next = &StackTrace{Head: ctx}
	return r
}
