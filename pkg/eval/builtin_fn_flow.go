package eval

import (
	"strconv"

	"github.com/Twisol/molt/pkg/list"
)

// Flow control.

func init() {
	addBuiltins(map[string]CommandFunc{
		// Exception and control
		"return":   returnFn,
		"break":    breakFn,
		"continue": continueFn,
		"error":    errorFn,
		"catch":    catchFn,
		// Iterations.
		"foreach": foreachFn,
	})
}

func returnFn(in *Interp, argv []string) Result {
	if r := CheckArgs(1, argv, 1, 2, "?value?"); r.Code != OK {
		return r
	}
	var value string
	if len(argv) == 2 {
		value = argv[1]
	}
	return Result{Code: Return, Value: value}
}

func breakFn(in *Interp, argv []string) Result {
	if r := CheckArgs(1, argv, 1, 1, ""); r.Code != OK {
		return r
	}
	return Result{Code: Break}
}

func continueFn(in *Interp, argv []string) Result {
	if r := CheckArgs(1, argv, 1, 1, ""); r.Code != OK {
		return r
	}
	return Result{Code: Continue}
}

func errorFn(in *Interp, argv []string) Result {
	if r := CheckArgs(1, argv, 2, 2, "message"); r.Code != OK {
		return r
	}
	return ErrorResult(argv[1])
}

// catch script ?resultVarName?
//
// Evaluates the script and returns its completion code: 0 for ok, 1 for
// error, 2 for return, 3 for break and 4 for continue. The value or error
// message is stored in the variable if one is given.
func catchFn(in *Interp, argv []string) Result {
	if r := CheckArgs(1, argv, 2, 3, "script ?resultVarName?"); r.Code != OK {
		return r
	}
	r := in.EvalScript("catch", argv[1])
	if len(argv) == 3 {
		in.Scope.Set(argv[2], r.Value)
	}
	return Okay(strconv.Itoa(int(r.Code)))
}

// foreach varName list body
//
// Evaluates body once for each element of the list, with the variable set to
// the element. The body may use break and continue.
func foreachFn(in *Interp, argv []string) Result {
	if r := CheckArgs(1, argv, 4, 4, "varName list body"); r.Code != OK {
		return r
	}
	elems, err := list.Decode(argv[2])
	if err != nil {
		return ErrorResult(err.Error())
	}
	for _, elem := range elems {
		in.Scope.Set(argv[1], elem)
		r := in.EvalScript("foreach body", argv[3])
		switch r.Code {
		case Break:
			return Okay("")
		case OK, Continue:
		default:
			return r
		}
	}
	return Okay("")
}
