// Package evaltest provides a framework for testing scripts.
//
// The entry point for the framework is the Test function, which accepts a
// *testing.T and any number of test cases.
//
// Test cases are constructed using the That function, followed by method calls
// that add additional information to it.
//
// Example:
//
//	Test(t,
//	    That("set x 1").Returns("1"),
//	    That("puts x").Prints("x\n"))
//
// If some setup is needed, use the TestWithSetup function instead.
package evaltest

import (
	"bytes"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Twisol/molt/pkg/eval"
	"github.com/Twisol/molt/pkg/parse"
)

// Case is a test case that can be used in Test.
type Case struct {
	codes  []string
	setup  func(in *eval.Interp)
	verify func(t *testing.T, in *eval.Interp)
	want   result
}

type result struct {
	Code  eval.Code
	Value string
	// Whether Value is checked. If false, only Code is.
	CheckValue bool
	// If not nil, the source texts of the stack trace of an Error result,
	// innermost first.
	Stacks []string

	Stdout []byte
	// Substring of the stderr output. If nil, stderr must be empty.
	Stderr []byte
}

// That returns a new Case with the specified source code. Multiple arguments
// are joined with newlines. To specify multiple pieces of code that are
// executed separately, use the Then method to append code pieces.
//
// When combined with subsequent method calls, a test case reads like English.
// For example, a test for the fact that "set x 1" returns "1" reads:
//
//	That("set x 1").Returns("1")
func That(lines ...string) Case {
	return Case{codes: []string{strings.Join(lines, "\n")}}
}

// Then returns a new Case that executes the given code in addition. Multiple
// arguments are joined with newlines. Pieces are evaluated in order until
// one of them has a result other than OK.
func (c Case) Then(lines ...string) Case {
	c.codes = append(c.codes, strings.Join(lines, "\n"))
	return c
}

// WithSetup returns a new Case with the given setup function executed on the
// Interp before the code is executed.
func (c Case) WithSetup(f func(*eval.Interp)) Case {
	c.setup = f
	return c
}

// Passes returns an altered Case that runs an additional verification
// function after the code is executed.
func (c Case) Passes(f func(t *testing.T, in *eval.Interp)) Case {
	c.verify = f
	return c
}

// DoesNothing returns c unchanged. It is useful to mark tests that don't have
// any side effects, for example:
//
//	That("list").DoesNothing()
func (c Case) DoesNothing() Case {
	return c
}

// Returns returns an altered Case that requires the code to finish with an OK
// result with the given value.
func (c Case) Returns(value string) Case {
	return c.ReturnsCode(eval.OK, value)
}

// ReturnsCode returns an altered Case that requires the code to finish with
// the given code and value.
func (c Case) ReturnsCode(code eval.Code, value string) Case {
	c.want.Code = code
	c.want.Value = value
	c.want.CheckValue = true
	return c
}

// Throws returns an altered Case that requires the code to finish with an
// Error result with the given message.
//
// If at least one stacktrace string is given, the error must also have a
// stacktrace matching the given source fragments, frame by frame (innermost
// frame first). If no stacktrace string is given, the stack trace of the
// error is not checked.
func (c Case) Throws(msg string, stacks ...string) Case {
	c.want.Code = eval.Error
	c.want.Value = msg
	c.want.CheckValue = true
	c.want.Stacks = stacks
	return c
}

// Prints returns an altered Case that requires the code to write the
// specified text to stdout.
func (c Case) Prints(s string) Case {
	c.want.Stdout = []byte(s)
	return c
}

// PrintsStderrWith returns an altered Case that requires the stderr output to
// contain the given text.
func (c Case) PrintsStderrWith(s string) Case {
	c.want.Stderr = []byte(s)
	return c
}

// Test runs test cases. For each test case, a new Interp is created with
// NewInterp.
func Test(t *testing.T, tests ...Case) {
	t.Helper()
	TestWithSetup(t, func(*eval.Interp) {}, tests...)
}

// TestWithSetup runs test cases. For each test case, a new Interp is created
// with NewInterp and passed to the setup function.
func TestWithSetup(t *testing.T, setup func(*eval.Interp), tests ...Case) {
	t.Helper()
	for _, tc := range tests {
		t.Run(strings.Join(tc.codes, "\n"), func(t *testing.T) {
			t.Helper()
			in := eval.NewInterp()
			var stdout, stderr bytes.Buffer
			in.Stdout, in.Stderr = &stdout, &stderr
			setup(in)
			if tc.setup != nil {
				tc.setup(in)
			}

			r := evalAll(in, tc.codes)

			if tc.verify != nil {
				tc.verify(t, in)
			}
			if r.Code != tc.want.Code || (tc.want.CheckValue && r.Value != tc.want.Value) {
				t.Errorf("got %v %q, want %v %q", r.Code, r.Value, tc.want.Code, tc.want.Value)
			}
			if tc.want.Stacks != nil {
				if got := StackTexts(r.StackTrace); !reflect.DeepEqual(got, tc.want.Stacks) {
					t.Errorf("got stack trace (-want +got):\n%s", cmp.Diff(tc.want.Stacks, got))
				}
			}
			if !bytes.Equal(tc.want.Stdout, stdout.Bytes()) {
				t.Errorf("got stdout %q, want %q", stdout.Bytes(), tc.want.Stdout)
			}
			if tc.want.Stderr == nil {
				if stderr.Len() > 0 {
					t.Errorf("got stderr %q, want empty", stderr.Bytes())
				}
			} else if !bytes.Contains(stderr.Bytes(), tc.want.Stderr) {
				t.Errorf("got stderr %q, want output containing %q",
					stderr.Bytes(), tc.want.Stderr)
			}
		})
	}
}

func evalAll(in *eval.Interp, codes []string) eval.Result {
	r := eval.Okay("")
	for i, code := range codes {
		name := "[test]"
		if len(codes) > 1 {
			name = fmt.Sprintf("[test %d]", i+1)
		}
		r = in.Eval(parse.Source{Name: name, Code: code}, eval.EvalCfg{})
		if r.Code != eval.OK {
			break
		}
	}
	return r
}

// StackTexts returns the source texts of the entries of a stack trace,
// innermost first.
func StackTexts(tb *eval.StackTrace) []string {
	texts := []string{}
	for ; tb != nil; tb = tb.Next {
		ctx := tb.Head
		texts = append(texts, ctx.Source[ctx.From:ctx.To])
	}
	return texts
}
