package shell

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/Twisol/molt/pkg/diag"
	"github.com/Twisol/molt/pkg/eval"
	"github.com/Twisol/molt/pkg/parse"
	"github.com/Twisol/molt/pkg/store"
)

// InteractConfig keeps configuration for the interactive mode.
type InteractConfig struct {
	Paths              Paths
	Prompt             string
	ContinuationPrompt string
}

// Interact runs an interactive shell session.
func Interact(in *eval.Interp, fds [3]*os.File, cfg *InteractConfig) {
	st := openHistory(cfg.Paths.History, fds[2])
	if st != nil {
		defer st.Close()
	}

	// Build Editor.
	var ed editor
	if useLiner(fds[0]) {
		ed = newLinerEditor(in, st, cfg.Prompt, cfg.ContinuationPrompt)
	} else {
		ed = newMinEditor(fds[0])
	}
	defer func() { ed.Close() }()

	// Source the rc script.
	if cfg.Paths.RC != "" {
		err := sourceRC(in, cfg.Paths.RC)
		if err != nil {
			diag.ShowError(fds[2], err)
		}
	}

	cooldown := time.Second
	cmdNum := 0

	for {
		cmdNum++

		code, err := ed.ReadCode()

		if err == io.EOF {
			break
		} else if err == errAborted {
			continue
		} else if err != nil {
			fmt.Fprintln(fds[2], "Editor error:", err)
			if _, isMinEditor := ed.(*minEditor); !isMinEditor {
				fmt.Fprintln(fds[2], "Falling back to basic line editor")
				ed.Close()
				ed = newMinEditor(fds[0])
			} else {
				fmt.Fprintln(fds[2], "Don't know what to do, pid is", os.Getpid())
				fmt.Fprintln(fds[2], "Restarting editor in", cooldown)
				time.Sleep(cooldown)
				if cooldown < time.Minute {
					cooldown *= 2
				}
			}
			continue
		}

		// No error; reset cooldown.
		cooldown = time.Second

		r := evalWithInterrupts(in,
			parse.Source{Name: fmt.Sprintf("[tty %v]", cmdNum), Code: code})
		switch r.Code {
		case eval.OK, eval.Return:
			_, isMinEditor := ed.(*minEditor)
			if r.Value != "" && !isMinEditor {
				fmt.Fprintln(fds[1], r.Value)
			}
		default:
			diag.ShowError(fds[2], r.Err())
		}
	}
}

// Opens the history store at path, creating its directory if needed. Failure
// is reported as a warning and disables history.
func openHistory(path string, stderr io.Writer) store.Store {
	if path == "" {
		return nil
	}
	err := os.MkdirAll(filepath.Dir(path), 0700)
	if err == nil {
		var st store.Store
		st, err = store.NewStore(path)
		if err == nil {
			return st
		}
	}
	fmt.Fprintln(stderr, "Warning: cannot open history:", err)
	fmt.Fprintln(stderr, "History will not be saved.")
	return nil
}

func sourceRC(in *eval.Interp, rcPath string) error {
	absPath, err := filepath.Abs(rcPath)
	if err != nil {
		return fmt.Errorf("cannot get full path of rc script: %v", err)
	}
	code, err := readFileUTF8(absPath)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Println("no rc script at", absPath)
			return nil
		}
		return err
	}
	r := evalWithInterrupts(in, parse.Source{Name: absPath, Code: code})
	if r.Code == eval.Return {
		return nil
	}
	return r.Err()
}
