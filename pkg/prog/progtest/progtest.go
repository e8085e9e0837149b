// Package progtest contains utilities for testing [prog.Program]
// implementations by running them with pipes as their standard files.
package progtest

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/Twisol/molt/pkg/must"
	"github.com/Twisol/molt/pkg/prog"
)

// Case is a test case that can be used in Test.
type Case struct {
	args  []string
	stdin string
	want  result
}

type result struct {
	exit   int
	stdout output
	stderr output
}

type output struct {
	content string
	partial bool
}

func (o output) String() string {
	if o.partial {
		return "text containing " + quote(o.content)
	}
	return quote(o.content)
}

func (o output) matches(s string) bool {
	if o.partial {
		return strings.Contains(s, o.content)
	}
	return s == o.content
}

// ThatMolt returns a new Case with the specified CLI arguments.
//
// The new Case expects the program run to exit with 0, and write nothing to
// stdout or stderr.
//
// When combined with subsequent method calls, a test case reads like English.
// For example, a test for the fact that "molt -c hello" writes "hello\n" to
// stdout reads:
//
//	ThatMolt("-c", "puts hello").WritesStdout("hello\n")
func ThatMolt(args ...string) Case {
	return Case{args: append([]string{"molt"}, args...)}
}

// WithStdin returns an altered Case that feeds the given text to the
// program's stdin.
func (c Case) WithStdin(s string) Case {
	c.stdin = s
	return c
}

// DoesNothing returns c itself. It is useful to mark tests that otherwise
// don't have any expectations, for example:
//
//	ThatMolt("-norc", "-c", "").DoesNothing()
func (c Case) DoesNothing() Case {
	return c
}

// ExitsWith returns an altered Case that requires the program run to return
// with the given exit status.
func (c Case) ExitsWith(code int) Case {
	c.want.exit = code
	return c
}

// WritesStdout returns an altered Case that requires the program run to write
// exactly the given text to stdout.
func (c Case) WritesStdout(s string) Case {
	c.want.stdout = output{content: s}
	return c
}

// WritesStdoutContaining returns an altered Case that requires the program run
// to write output to stdout that contains the given text as a substring.
func (c Case) WritesStdoutContaining(s string) Case {
	c.want.stdout = output{content: s, partial: true}
	return c
}

// WritesStderr returns an altered Case that requires the program run to write
// exactly the given text to stderr.
func (c Case) WritesStderr(s string) Case {
	c.want.stderr = output{content: s}
	return c
}

// WritesStderrContaining returns an altered Case that requires the program run
// to write output to stderr that contains the given text as a substring.
func (c Case) WritesStderrContaining(s string) Case {
	c.want.stderr = output{content: s, partial: true}
	return c
}

// Test runs test cases against a given program.
func Test(t *testing.T, p prog.Program, cases ...Case) {
	t.Helper()
	for _, c := range cases {
		t.Run(strings.Join(c.args, " "), func(t *testing.T) {
			t.Helper()
			exit, stdout, stderr := Run(p, c.stdin, c.args...)
			if exit != c.want.exit {
				t.Errorf("got exit %v, want %v", exit, c.want.exit)
			}
			if !c.want.stdout.matches(stdout) {
				t.Errorf("got stdout %v, want %v", quote(stdout), c.want.stdout)
			}
			if !c.want.stderr.matches(stderr) {
				t.Errorf("got stderr %v, want %v", quote(stderr), c.want.stderr)
			}
		})
	}
}

// Run runs a Program with the given stdin and arguments. It returns the exit
// status and the output written to stdout and stderr.
//
// The first element of args is the program name.
func Run(p prog.Program, stdin string, args ...string) (exit int, stdout, stderr string) {
	r0, w0 := must.Pipe()
	r1, w1 := must.Pipe()
	r2, w2 := must.Pipe()
	defer r0.Close()

	go func() {
		io.WriteString(w0, stdin)
		w0.Close()
	}()
	// Drain the output pipes while the program runs, so that it doesn't block
	// on a full pipe buffer.
	outCh := make(chan string, 1)
	errCh := make(chan string, 1)
	go func() { outCh <- string(must.ReadAllAndClose(r1)) }()
	go func() { errCh <- string(must.ReadAllAndClose(r2)) }()

	exit = prog.Run([3]*os.File{r0, w1, w2}, args, p)
	w1.Close()
	w2.Close()
	stdout, stderr = <-outCh, <-errCh
	return exit, stdout, stderr
}

func quote(s string) string {
	if s == "" {
		return "empty"
	}
	return "`" + s + "`"
}
