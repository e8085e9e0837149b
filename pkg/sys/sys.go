// Package sys provides system utilities with the same API across OSes.
package sys

import (
	"os"
	"os/signal"

	"github.com/mattn/go-isatty"
)

// IsATTY determines whether the given file is a terminal.
func IsATTY(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// ListenInterrupts starts to listen to terminal interrupts. It returns a
// channel that is closed when the first interrupt signal has been received,
// and a cleanup function that should be called to stop listening and release
// the resources.
//
// The signature matches the Interrupt field of eval.EvalCfg.
func ListenInterrupts() (<-chan struct{}, func()) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, interruptSignals...)
	// Channel to return, closed after receiving the first signal.
	intCh := make(chan struct{})

	// Closed in the cleanup function to request the relaying goroutine to stop.
	stop := make(chan struct{})
	// Closed in the relaying goroutine to signal that it has stopped.
	stopped := make(chan struct{})

	go func() {
		closed := false
	loop:
		for {
			select {
			case <-sigCh:
				if !closed {
					close(intCh)
					closed = true
				}
			case <-stop:
				break loop
			}
		}
		signal.Stop(sigCh)
		close(stopped)
	}()

	return intCh, func() {
		close(stop)
		<-stopped
	}
}
