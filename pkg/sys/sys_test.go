package sys

import (
	"os"
	"testing"
)

func TestIsATTY_Pipe(t *testing.T) {
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	defer w.Close()
	if IsATTY(r.Fd()) || IsATTY(w.Fd()) {
		t.Errorf("IsATTY(pipe) -> true, want false")
	}
}

func TestListenInterrupts_Cleanup(t *testing.T) {
	intCh, cleanup := ListenInterrupts()
	cleanup()
	select {
	case <-intCh:
		t.Errorf("interrupt channel closed without a signal")
	default:
	}
}
