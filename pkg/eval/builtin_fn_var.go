package eval

import "strconv"

// Variables.

func init() {
	addBuiltins(map[string]CommandFunc{
		"set":    setFn,
		"unset":  unsetFn,
		"append": appendFn,
		"incr":   incrFn,
		"global": globalFn,
	})
}

// set varName ?newValue?
//
// With one argument, returns the value of the variable. With two, sets the
// variable and returns the new value.
func setFn(in *Interp, argv []string) Result {
	if r := CheckArgs(1, argv, 2, 3, "varName ?newValue?"); r.Code != OK {
		return r
	}
	name := argv[1]
	if len(argv) == 3 {
		in.Scope.Set(name, argv[2])
		return Okay(argv[2])
	}
	return getVar(in, name)
}

func getVar(in *Interp, name string) Result {
	value, ok := in.Scope.Get(name)
	if !ok {
		return Errorf("can't read \"%s\": no such variable", name)
	}
	return Okay(value)
}

func unsetFn(in *Interp, argv []string) Result {
	if r := CheckArgs(1, argv, 1, 0, "?varName varName ...?"); r.Code != OK {
		return r
	}
	for _, name := range argv[1:] {
		if !in.Scope.Unset(name) {
			return Errorf("can't unset \"%s\": no such variable", name)
		}
	}
	return Okay("")
}

// append varName ?value value ...?
//
// Appends all the values to the variable, creating it if it does not exist.
func appendFn(in *Interp, argv []string) Result {
	if r := CheckArgs(1, argv, 2, 0, "varName ?value value ...?"); r.Code != OK {
		return r
	}
	value, _ := in.Scope.Get(argv[1])
	for _, s := range argv[2:] {
		value += s
	}
	in.Scope.Set(argv[1], value)
	return Okay(value)
}

// incr varName ?increment?
//
// Adds the increment, 1 by default, to the variable. A variable that does not
// exist is treated as 0.
func incrFn(in *Interp, argv []string) Result {
	if r := CheckArgs(1, argv, 2, 3, "varName ?increment?"); r.Code != OK {
		return r
	}
	var increment int64 = 1
	if len(argv) == 3 {
		var r Result
		if increment, r = GetInteger(argv[2]); r.Code != OK {
			return r
		}
	}
	var value int64
	if s, ok := in.Scope.Get(argv[1]); ok {
		var r Result
		if value, r = GetInteger(s); r.Code != OK {
			return r
		}
	}
	sum := value + increment
	if (increment > 0 && sum < value) || (increment < 0 && sum > value) {
		return ErrorResult("integer overflow")
	}
	s := strconv.FormatInt(sum, 10)
	in.Scope.Set(argv[1], s)
	return Okay(s)
}

func globalFn(in *Interp, argv []string) Result {
	if r := CheckArgs(1, argv, 1, 0, "?varName varName ...?"); r.Code != OK {
		return r
	}
	for _, name := range argv[1:] {
		if !in.Scope.LinkGlobal(name) {
			return Errorf("variable \"%s\" already exists", name)
		}
	}
	return Okay("")
}
