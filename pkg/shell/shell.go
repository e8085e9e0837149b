// Package shell is the entry point for the terminal interface of molt.
package shell

import (
	"fmt"
	"os"

	"github.com/Twisol/molt/pkg/eval"
	"github.com/Twisol/molt/pkg/logutil"
	"github.com/Twisol/molt/pkg/parse"
	"github.com/Twisol/molt/pkg/prog"
	"github.com/Twisol/molt/pkg/sys"
)

var logger = logutil.GetLogger("[shell] ")

// Program is the shell subprogram.
type Program struct{}

func (p Program) Run(fds [3]*os.File, f *prog.Flags, args []string) error {
	cfg, err := loadConfig(f.Config, fds)
	if err != nil {
		fmt.Fprintln(fds[2], "cannot load config:", err)
		return prog.Exit(2)
	}
	in := eval.NewInterp()
	in.Stdout, in.Stderr = fds[1], fds[2]
	in.SetRecursionLimit(cfg.RecursionLimit)

	if len(args) > 0 {
		exit := script(in, fds, args, &scriptCfg{
			Cmd: f.CodeInArg, CompileOnly: f.CompileOnly, JSON: f.JSON})
		return prog.Exit(exit)
	}
	if f.CodeInArg {
		return prog.BadUsage("-c requires an argument")
	}

	paths, err := cfg.paths(f.RC, f.NoRc)
	if err != nil {
		fmt.Fprintln(fds[2], "Warning:", err)
	}
	Interact(in, fds, &InteractConfig{
		Paths: paths, Prompt: cfg.Prompt, ContinuationPrompt: cfg.ContinuationPrompt})
	return nil
}

// Loads the config file given with -config, which must exist, or the one at
// the default location, which may not.
func loadConfig(path string, fds [3]*os.File) (*Config, error) {
	if path != "" {
		return LoadConfig(path, true)
	}
	path, err := ConfigPath()
	if err != nil {
		fmt.Fprintln(fds[2], "Warning:", err)
		cfg := &Config{}
		cfg.fillDefaults()
		return cfg, nil
	}
	return LoadConfig(path, false)
}

var isTerminal = func(f *os.File) bool { return sys.IsATTY(f.Fd()) }

func evalWithInterrupts(in *eval.Interp, src parse.Source) eval.Result {
	return in.Eval(src, eval.EvalCfg{Interrupt: sys.ListenInterrupts})
}
