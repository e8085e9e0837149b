// Molt is a small interpreter for a Tcl-like command language. Everything is
// a string: scripts are lists of commands, commands are lists of words, and
// words are substituted before the command named by the first word runs.
//
// Without arguments, molt reads commands interactively. With a script path,
// or with -c and code, it runs the script and exits.
package main

import (
	"os"

	"github.com/Twisol/molt/pkg/buildinfo"
	"github.com/Twisol/molt/pkg/lsp"
	"github.com/Twisol/molt/pkg/prog"
	"github.com/Twisol/molt/pkg/shell"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(buildinfo.Program{}, lsp.Program{}, shell.Program{})))
}
