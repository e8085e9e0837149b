package shell

import (
	"bufio"
	"errors"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/peterh/liner"

	"github.com/Twisol/molt/pkg/eval"
	"github.com/Twisol/molt/pkg/parse"
	"github.com/Twisol/molt/pkg/store"
)

// The maximum number of history entries loaded into the line editor.
const historyLimit = 1000

// editor reads complete scripts from the user.
type editor interface {
	ReadCode() (string, error)
	Close() error
}

// minEditor reads from a non-terminal input, without prompts or echoing.
type minEditor struct {
	in  *bufio.Reader
	eof bool
}

func newMinEditor(in io.Reader) *minEditor {
	return &minEditor{in: bufio.NewReader(in)}
}

// ReadCode reads lines until they form a complete script. Incomplete code at
// the end of the input is returned as is, so that its error gets reported.
func (ed *minEditor) ReadCode() (string, error) {
	if ed.eof {
		return "", io.EOF
	}
	var sb strings.Builder
	for {
		line, err := ed.in.ReadString('\n')
		sb.WriteString(line)
		if err != nil {
			ed.eof = true
			if sb.Len() == 0 {
				return "", err
			}
			if err == io.EOF {
				return sb.String(), nil
			}
			return sb.String(), err
		}
		if parse.Complete(sb.String()) {
			return sb.String(), nil
		}
	}
}

func (ed *minEditor) Close() error { return nil }

// linerEditor reads from the terminal using liner. Lines are read until they
// form a complete script, with the continuation prompt after the first line.
type linerEditor struct {
	state  *liner.State
	prompt string
	cont   string
	store  store.Store
}

// Creates a linerEditor, which always uses the process's terminal. Commands
// are completed from in, and the history is loaded from and saved to st if it
// is not nil.
func newLinerEditor(in *eval.Interp, st store.Store, prompt, cont string) *linerEditor {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)
	state.SetWordCompleter(func(line string, pos int) (string, []string, string) {
		// liner gives pos in runes.
		return completeCommand(in.CommandNames(), line, len(string([]rune(line)[:pos])))
	})
	if st != nil {
		loadHistory(state, st)
	}
	return &linerEditor{state, prompt, cont, st}
}

func loadHistory(state *liner.State, st store.Store) {
	upto, err := st.NextCmdSeq()
	if err != nil {
		logger.Println("cannot read history:", err)
		return
	}
	cmds, err := st.CmdsWithSeq(upto-historyLimit, upto)
	if err != nil {
		logger.Println("cannot read history:", err)
		return
	}
	for _, cmd := range cmds {
		state.AppendHistory(cmd.Text)
	}
	logger.Println("loaded", len(cmds), "history entries")
}

// errAborted is returned by (*linerEditor).ReadCode when the user presses
// Ctrl-C. The input read so far is discarded.
var errAborted = errors.New("input aborted")

func (ed *linerEditor) ReadCode() (string, error) {
	var sb strings.Builder
	for {
		prompt := ed.prompt
		if sb.Len() > 0 {
			prompt = ed.cont
			sb.WriteByte('\n')
		}
		line, err := ed.state.Prompt(prompt)
		if err == liner.ErrPromptAborted {
			return "", errAborted
		} else if err != nil {
			return "", err
		}
		sb.WriteString(line)
		if code := sb.String(); parse.Complete(code) {
			ed.addHistory(code)
			return code, nil
		}
	}
}

func (ed *linerEditor) addHistory(code string) {
	if strings.TrimSpace(code) == "" {
		return
	}
	ed.state.AppendHistory(code)
	if ed.store != nil {
		if _, err := ed.store.AddCmd(code); err != nil {
			logger.Println("cannot add history:", err)
		}
	}
}

func (ed *linerEditor) Close() error { return ed.state.Close() }

// Completes the command name before pos, if pos is at command position. The
// return values are as required by liner.WordCompleter.
func completeCommand(names []string, line string, pos int) (string, []string, string) {
	if pos > len(line) {
		pos = len(line)
	}
	from, ok := parse.CommandWordAt(line, pos)
	if !ok {
		return line[:pos], nil, line[pos:]
	}
	prefix := line[from:pos]
	var completions []string
	for _, name := range names {
		if strings.HasPrefix(name, prefix) {
			completions = append(completions, name)
		}
	}
	sort.Strings(completions)
	return line[:from], completions, line[pos:]
}

// Whether the editor should be a linerEditor. liner always uses the
// process's own stdin, so it is only usable when that is what we are given.
func useLiner(f *os.File) bool {
	return f == os.Stdin && isTerminal(f)
}
