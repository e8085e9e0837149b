// Package eval implements the evaluator of the command language.
//
// Every value is a string. Evaluating a script splits it into commands, each
// command into words; the words undergo substitution and the resulting list
// of strings is dispatched to the command named by the first one. Every step
// produces a [Result], which carries errors, procedure returns and loop
// signals as well as ordinary values.
package eval

import (
	"io"
	"os"

	"github.com/Twisol/molt/pkg/diag"
	"github.com/Twisol/molt/pkg/logutil"
	"github.com/Twisol/molt/pkg/parse"
)

var logger = logutil.GetLogger("[eval] ")

// DefaultRecursionLimit is the default maximum number of nested script
// evaluations.
const DefaultRecursionLimit = 1000

// Interp is an interpreter. The zero value is not usable; create one with
// NewInterp. An Interp must not be used from multiple goroutines at the same
// time, but independent Interp values share no state.
type Interp struct {
	// Where puts writes.
	Stdout io.Writer
	Stderr io.Writer
	// The variable frames.
	Scope *Scope

	commands       map[string]*command
	depth          int
	recursionLimit int
	intCh          <-chan struct{}
}

// NewInterp creates a new Interp with the builtin commands installed and
// output going to the process's stdout and stderr.
func NewInterp() *Interp {
	in := &Interp{
		Stdout:         os.Stdout,
		Stderr:         os.Stderr,
		Scope:          NewScope(),
		commands:       make(map[string]*command, len(builtins)),
		recursionLimit: DefaultRecursionLimit,
	}
	for name, fn := range builtins {
		in.commands[name] = &command{fn: fn}
	}
	return in
}

// SetRecursionLimit sets the maximum number of nested script evaluations.
// A non-positive limit restores DefaultRecursionLimit.
func (in *Interp) SetRecursionLimit(n int) {
	if n <= 0 {
		n = DefaultRecursionLimit
	}
	in.recursionLimit = n
}

// EvalCfg keeps configuration for the (*Interp).Eval method.
type EvalCfg struct {
	// Callback to get a channel of interrupt signals and a function to call
	// when the channel is no longer needed. Once the channel is closed, the
	// next command to be dispatched fails with "interrupted".
	Interrupt func() (<-chan struct{}, func())
}

// Eval evaluates a script. The result is that of the last command evaluated;
// evaluation stops at the first command whose result is not OK.
func (in *Interp) Eval(src parse.Source, cfg EvalCfg) Result {
	if cfg.Interrupt != nil {
		intCh, cleanup := cfg.Interrupt()
		defer cleanup()
		oldIntCh := in.intCh
		in.intCh = intCh
		defer func() { in.intCh = oldIntCh }()
	}
	return in.evalScript(src, 0, len(src.Code))
}

// EvalString evaluates code with the default configuration.
func (in *Interp) EvalString(code string) Result {
	return in.Eval(parse.Source{Name: "[eval]", Code: code}, EvalCfg{})
}

// EvalScript evaluates a script held in a value, such as the body of a
// procedure or a loop. The name identifies the script in stack traces.
func (in *Interp) EvalScript(name, code string) Result {
	return in.evalScript(parse.Source{Name: "[" + name + "]", Code: code}, 0, len(code))
}

func (in *Interp) evalScript(src parse.Source, from, to int) Result {
	return in.evalCommands(src, parse.NewRangeParser(src, from, to))
}

// Evaluates the command substitution opened by the "[" at src.Code[open],
// parsing and evaluating its commands in one pass. It returns the result and
// the index of the closing "]".
func (in *Interp) evalBracket(src parse.Source, open, to int) (Result, int) {
	p := parse.NewBracketParser(src, open, to)
	r := in.evalCommands(src, p)
	if r.Code != OK {
		return r, 0
	}
	close, err := p.CloseBracket()
	if err != nil {
		return parseErrorResult(err), 0
	}
	return r, close
}

func (in *Interp) evalCommands(src parse.Source, p *parse.Parser) Result {
	if in.depth >= in.recursionLimit {
		return ErrorResult("too many nested evaluations (infinite loop?)")
	}
	in.depth++
	defer func() { in.depth-- }()

	result := Okay("")
	for {
		cmd, ok, err := p.Next()
		if err != nil {
			return parseErrorResult(err)
		}
		if !ok {
			return result
		}
		result = in.evalCommand(src, cmd)
		if result.Code != OK {
			return result
		}
	}
}

func parseErrorResult(err error) Result {
	e := parse.GetError(err)
	return Result{Code: Error, Value: e.Message, ParseError: e,
		StackTrace: &StackTrace{Head: &e.Context}}
}

func (in *Interp) evalCommand(src parse.Source, cmd parse.Command) Result {
	argv := make([]string, len(cmd.Words))
	for i, w := range cmd.Words {
		s, r := in.substWord(src, w)
		if r.Code != OK {
			return traced(r, src, cmd, false)
		}
		argv[i] = s
	}
	if in.interrupted() {
		return traced(ErrorResult("interrupted"), src, cmd, false)
	}
	c, ok := in.commands[argv[0]]
	if !ok {
		return traced(invalidCommand(argv[0]), src, cmd, false)
	}
	return traced(c.call(in, argv), src, cmd, c.proc != nil)
}

// Records the command in the stack trace of an Error result, if it is the
// innermost command or a procedure call.
func traced(r Result, src parse.Source, cmd parse.Command, isProc bool) Result {
	if r.Code != Error || (r.StackTrace != nil && !isProc) {
		return r
	}
	return r.withContext(diag.NewContext(src.Name, src.Code, cmd))
}

func (in *Interp) interrupted() bool {
	if in.intCh == nil {
		return false
	}
	select {
	case <-in.intCh:
		return true
	default:
		return false
	}
}
