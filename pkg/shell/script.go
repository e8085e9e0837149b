package shell

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"unicode/utf8"

	"github.com/Twisol/molt/pkg/diag"
	"github.com/Twisol/molt/pkg/eval"
	"github.com/Twisol/molt/pkg/list"
	"github.com/Twisol/molt/pkg/parse"
)

// Configuration for the script mode.
type scriptCfg struct {
	Cmd         bool
	CompileOnly bool
	JSON        bool
}

// Executes a script. The first element of args is the path of the script, or
// the code itself when cfg.Cmd is true; the rest are arguments to the script.
func script(in *eval.Interp, fds [3]*os.File, args []string, cfg *scriptCfg) int {
	arg0 := args[0]

	var name, code string
	if cfg.Cmd {
		name = "code from -c"
		code = arg0
	} else {
		var err error
		name, err = filepath.Abs(arg0)
		if err != nil {
			fmt.Fprintf(fds[2],
				"cannot get full path of script %q: %v\n", arg0, err)
			return 2
		}
		code, err = readFileUTF8(name)
		if err != nil {
			fmt.Fprintf(fds[2], "cannot read script %q: %v\n", name, err)
			return 2
		}
	}

	src := parse.Source{Name: name, Code: code}
	if cfg.CompileOnly {
		_, err := parse.Parse(src)
		if cfg.JSON {
			fmt.Fprintf(fds[1], "%s\n", errorsToJSON(err))
		} else if err != nil {
			diag.ShowError(fds[2], err)
		}
		if err != nil {
			return 2
		}
		return 0
	}

	setScriptArgs(in, name, args[1:])
	r := evalWithInterrupts(in, src)
	switch r.Code {
	case eval.OK, eval.Return:
		return 0
	}
	diag.ShowError(fds[2], r.Err())
	return 2
}

func setScriptArgs(in *eval.Interp, argv0 string, argv []string) {
	in.Scope.SetGlobal("argv0", argv0)
	in.Scope.SetGlobal("argv", list.Encode(argv))
	in.Scope.SetGlobal("argc", strconv.Itoa(len(argv)))
}

var errSourceNotUTF8 = errors.New("source is not UTF-8")

func readFileUTF8(fname string) (string, error) {
	bytes, err := os.ReadFile(fname)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(bytes) {
		return "", errSourceNotUTF8
	}
	return string(bytes), nil
}

// An auxiliary struct for converting errors with diagnostics information to JSON.
type errorInJSON struct {
	FileName string `json:"fileName"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Message  string `json:"message"`
}

// Converts a parse error into JSON. A nil error becomes an empty array.
func errorsToJSON(err error) []byte {
	converted := []errorInJSON{}
	if e := parse.GetError(err); e != nil {
		converted = append(converted,
			errorInJSON{e.Context.Name, e.Context.From, e.Context.To, e.Message})
	}

	jsonError, errMarshal := json.Marshal(converted)
	if errMarshal != nil {
		return []byte(`[{"message":"Unable to convert the errors to JSON"}]`)
	}
	return jsonError
}
