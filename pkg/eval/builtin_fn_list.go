package eval

import (
	"strconv"

	"github.com/Twisol/molt/pkg/list"
)

// Lists.

func init() {
	addBuiltins(map[string]CommandFunc{
		"list":    listFn,
		"llength": llengthFn,
		"lindex":  lindexFn,
		"lappend": lappendFn,
	})
}

func listFn(in *Interp, argv []string) Result {
	return Okay(list.Encode(argv[1:]))
}

func llengthFn(in *Interp, argv []string) Result {
	if r := CheckArgs(1, argv, 2, 2, "list"); r.Code != OK {
		return r
	}
	n, err := list.Len(argv[1])
	if err != nil {
		return ErrorResult(err.Error())
	}
	return Okay(strconv.Itoa(n))
}

// lindex list ?index?
//
// Returns the element at the index, or the empty string if the index is out
// of range. Without an index, returns the list itself.
func lindexFn(in *Interp, argv []string) Result {
	if r := CheckArgs(1, argv, 2, 3, "list ?index?"); r.Code != OK {
		return r
	}
	if len(argv) == 2 {
		return Okay(argv[1])
	}
	elems, err := list.Decode(argv[1])
	if err != nil {
		return ErrorResult(err.Error())
	}
	i, r := GetInteger(argv[2])
	if r.Code != OK {
		return r
	}
	if i < 0 || i >= int64(len(elems)) {
		return Okay("")
	}
	return Okay(elems[i])
}

// lappend varName ?value value ...?
//
// Appends each value to the variable as a list element, creating the
// variable if it does not exist.
func lappendFn(in *Interp, argv []string) Result {
	if r := CheckArgs(1, argv, 2, 0, "varName ?value value ...?"); r.Code != OK {
		return r
	}
	value, _ := in.Scope.Get(argv[1])
	if _, err := list.Decode(value); err != nil {
		return ErrorResult(err.Error())
	}
	for _, elem := range argv[2:] {
		if value == "" {
			value = list.Encode([]string{elem})
		} else {
			value += " " + list.Quote(elem)
		}
	}
	in.Scope.Set(argv[1], value)
	return Okay(value)
}
