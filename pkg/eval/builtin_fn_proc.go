package eval

// Commands.

func init() {
	addBuiltins(map[string]CommandFunc{
		"proc":   procFn,
		"rename": renameFn,
	})
}

// proc name args body
//
// Defines a procedure. Each element of args is either a parameter name or a
// list of a name and a default value. A final parameter named "args"
// receives the remaining arguments as a list.
func procFn(in *Interp, argv []string) Result {
	if r := CheckArgs(1, argv, 4, 4, "name args body"); r.Code != OK {
		return r
	}
	return in.RegisterProc(argv[1], argv[2], argv[3])
}

func renameFn(in *Interp, argv []string) Result {
	if r := CheckArgs(1, argv, 3, 3, "oldName newName"); r.Code != OK {
		return r
	}
	return in.Rename(argv[1], argv[2])
}
