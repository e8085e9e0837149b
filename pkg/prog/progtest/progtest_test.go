package progtest

import (
	"io"
	"os"
	"testing"

	"github.com/Twisol/molt/pkg/prog"
)

// Verify we don't deadlock if more output is written to stdout than can be
// buffered by a pipe.
func TestOutputCaptureDoesNotDeadlock(t *testing.T) {
	Test(t, noisyProgram{},
		ThatMolt().WritesStdoutContaining("hello"),
	)
}

func TestStdinIsFed(t *testing.T) {
	Test(t, echoProgram{},
		ThatMolt().WithStdin("lorem\nipsum\n").WritesStdout("lorem\nipsum\n"),
		ThatMolt().DoesNothing(),
	)
}

func TestRun(t *testing.T) {
	exit, stdout, stderr := Run(echoProgram{}, "foo", "molt", "-bad")
	if exit != 2 {
		t.Errorf("got exit %d, want 2", exit)
	}
	if stdout != "" {
		t.Errorf("got stdout %q, want empty", stdout)
	}
	if stderr == "" {
		t.Errorf("got empty stderr, want usage")
	}
}

type noisyProgram struct{}

func (noisyProgram) Run(fds [3]*os.File, _ *prog.Flags, args []string) error {
	// We need enough data to verify whether we're likely to deadlock due to
	// filling the pipe before the test completes. Pipes typically buffer 8 to
	// 128 KiB.
	bytes := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	for i := 0; i < 128*1024/len(bytes); i++ {
		fds[1].Write(bytes)
	}
	fds[1].WriteString("hello")
	return nil
}

type echoProgram struct{}

func (echoProgram) Run(fds [3]*os.File, _ *prog.Flags, args []string) error {
	_, err := io.Copy(fds[1], fds[0])
	return err
}
