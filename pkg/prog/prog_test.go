package prog_test

import (
	"os"
	"strings"
	"testing"

	. "github.com/Twisol/molt/pkg/prog"
	"github.com/Twisol/molt/pkg/prog/progtest"
	"github.com/Twisol/molt/pkg/testutil"
)

var (
	Test     = progtest.Test
	ThatMolt = progtest.ThatMolt
)

func TestCommonFlagHandling(t *testing.T) {
	testutil.InTempDir(t)

	Test(t, testProgram{},
		ThatMolt("-bad-flag").
			ExitsWith(2).
			WritesStderrContaining("flag provided but not defined: -bad-flag\nUsage:"),
		// -h is treated as a bad flag
		ThatMolt("-h").
			ExitsWith(2).
			WritesStderrContaining("flag provided but not defined: -h\nUsage:"),

		ThatMolt("-help").
			WritesStdoutContaining("Usage: molt [flags] [script [args...]]"),

		ThatMolt("-cpuprofile", "cpuprof").DoesNothing(),
		ThatMolt("-cpuprofile", "/a/bad/path").
			WritesStderrContaining("Warning: cannot create CPU profile:"),

		ThatMolt("-log", "/a/bad/path").
			WritesStderrContaining("/a/bad/path"),
	)

	// Check for the effect of -cpuprofile. There isn't much to test beyond a
	// sanity check that the profile file now exists.
	_, err := os.Stat("cpuprof")
	if err != nil {
		t.Errorf("CPU profile file does not exist: %v", err)
	}
}

func TestFlagsArePassed(t *testing.T) {
	var got *Flags
	var gotArgs []string
	p := testProgram{inspect: func(f *Flags, args []string) {
		got, gotArgs = f, args
	}}
	progtest.Run(p, "", "molt",
		"-c", "-compileonly", "-json", "-norc", "-rc", "rc.tcl",
		"-config", "cfg.yaml", "-lsp", "code", "arg")

	want := Flags{CodeInArg: true, CompileOnly: true, JSON: true, NoRc: true,
		RC: "rc.tcl", Config: "cfg.yaml", LSP: true}
	if got == nil || *got != want {
		t.Errorf("got flags %+v, want %+v", got, want)
	}
	if strings.Join(gotArgs, " ") != "code arg" {
		t.Errorf("got args %q, want [code arg]", gotArgs)
	}
}

func TestLogFlag(t *testing.T) {
	testutil.InTempDir(t)
	Test(t, testProgram{}, ThatMolt("-log", "log").DoesNothing())
	if _, err := os.Stat("log"); err != nil {
		t.Errorf("log file does not exist: %v", err)
	}
}

func TestNoSuitableSubprogram(t *testing.T) {
	Test(t, testProgram{notSuitable: true},
		ThatMolt().
			ExitsWith(2).
			WritesStderr("internal error: no suitable subprogram\n"),
	)
}

func TestComposite(t *testing.T) {
	Test(t,
		Composite(testProgram{notSuitable: true}, testProgram{writeOut: "program 2"}),
		ThatMolt().WritesStdout("program 2"),
	)
}

func TestComposite_NoSuitableSubprogram(t *testing.T) {
	Test(t,
		Composite(testProgram{notSuitable: true}, testProgram{notSuitable: true}),
		ThatMolt().
			ExitsWith(2).
			WritesStderr("internal error: no suitable subprogram\n"),
	)
}

func TestComposite_PreferEarlierSubprogram(t *testing.T) {
	Test(t,
		Composite(
			testProgram{writeOut: "program 1"}, testProgram{writeOut: "program 2"}),
		ThatMolt().WritesStdout("program 1"),
	)
}

func TestBadUsageError(t *testing.T) {
	Test(t,
		testProgram{returnErr: BadUsage("lorem ipsum")},
		ThatMolt().ExitsWith(2).WritesStderrContaining("lorem ipsum\n"),
	)
}

func TestExitError(t *testing.T) {
	Test(t, testProgram{returnErr: Exit(3)},
		ThatMolt().ExitsWith(3),
	)
}

func TestExitError_0(t *testing.T) {
	Test(t, testProgram{returnErr: Exit(0)},
		ThatMolt().ExitsWith(0),
	)
}

type testProgram struct {
	notSuitable bool
	writeOut    string
	returnErr   error
	inspect     func(*Flags, []string)
}

func (p testProgram) Run(fds [3]*os.File, f *Flags, args []string) error {
	if p.notSuitable {
		return ErrNotSuitable
	}
	if p.inspect != nil {
		p.inspect(f, args)
	}
	fds[1].WriteString(p.writeOut)
	return p.returnErr
}
