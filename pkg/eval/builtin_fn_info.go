package eval

import (
	"strconv"

	"github.com/Twisol/molt/pkg/list"
	"github.com/Twisol/molt/pkg/parse"
)

// Introspection.

func init() {
	addBuiltins(map[string]CommandFunc{
		"info": infoFn,
	})
}

var infoSubcommands = []Subcommand{
	{"args", infoArgs},
	{"body", infoBody},
	{"commands", infoCommands},
	{"complete", infoComplete},
	{"exists", infoExists},
	{"globals", infoGlobals},
	{"level", infoLevel},
	{"vars", infoVars},
}

// info subcommand ?arg ...?
func infoFn(in *Interp, argv []string) Result {
	if r := CheckArgs(1, argv, 2, 0, "subcommand ?arg ...?"); r.Code != OK {
		return r
	}
	sub, r := GetSubcommand(infoSubcommands, argv[1])
	if r.Code != OK {
		return r
	}
	return sub.Fn(in, argv)
}

func lookupProc(in *Interp, name string) (*Proc, Result) {
	p := in.Proc(name)
	if p == nil {
		return nil, Errorf("\"%s\" isn't a procedure", name)
	}
	return p, Okay("")
}

func infoArgs(in *Interp, argv []string) Result {
	if r := CheckArgs(2, argv, 3, 3, "procname"); r.Code != OK {
		return r
	}
	p, r := lookupProc(in, argv[2])
	if r.Code != OK {
		return r
	}
	return Okay(list.Encode(p.ParamNames()))
}

func infoBody(in *Interp, argv []string) Result {
	if r := CheckArgs(2, argv, 3, 3, "procname"); r.Code != OK {
		return r
	}
	p, r := lookupProc(in, argv[2])
	if r.Code != OK {
		return r
	}
	return Okay(p.Body)
}

func infoCommands(in *Interp, argv []string) Result {
	if r := CheckArgs(2, argv, 2, 2, ""); r.Code != OK {
		return r
	}
	return Okay(list.Encode(in.CommandNames()))
}

func infoComplete(in *Interp, argv []string) Result {
	if r := CheckArgs(2, argv, 3, 3, "command"); r.Code != OK {
		return r
	}
	return Okay(boolString(parse.Complete(argv[2])))
}

func infoExists(in *Interp, argv []string) Result {
	if r := CheckArgs(2, argv, 3, 3, "varName"); r.Code != OK {
		return r
	}
	return Okay(boolString(in.Scope.Exists(argv[2])))
}

func infoGlobals(in *Interp, argv []string) Result {
	if r := CheckArgs(2, argv, 2, 2, ""); r.Code != OK {
		return r
	}
	return Okay(list.Encode(in.Scope.GlobalNames()))
}

func infoLevel(in *Interp, argv []string) Result {
	if r := CheckArgs(2, argv, 2, 2, ""); r.Code != OK {
		return r
	}
	return Okay(strconv.Itoa(in.Scope.Level()))
}

func infoVars(in *Interp, argv []string) Result {
	if r := CheckArgs(2, argv, 2, 2, ""); r.Code != OK {
		return r
	}
	return Okay(list.Encode(in.Scope.Names()))
}

func boolString(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
