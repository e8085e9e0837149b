package eval

import "sort"

// CommandFunc implements a command. The argv slice includes the command name
// as its first element.
type CommandFunc func(in *Interp, argv []string) Result

// An entry in the command table. Exactly one of fn and proc is set.
type command struct {
	fn   CommandFunc
	proc *Proc
}

func (c *command) call(in *Interp, argv []string) Result {
	if c.proc != nil {
		return c.proc.call(in, argv)
	}
	return c.fn(in, argv)
}

// Builtin commands installed by NewInterp.
var builtins = map[string]CommandFunc{}

// Adds builtin commands. Only called from init functions.
func addBuiltins(fns map[string]CommandFunc) {
	for name, fn := range fns {
		builtins[name] = fn
	}
}

// Register adds a command, replacing any command of the same name.
func (in *Interp) Register(name string, fn CommandFunc) {
	in.commands[name] = &command{fn: fn}
}

// RegisterProc defines a procedure, replacing any command of the same name.
// The parameter list must be a well-formed list of parameter specifiers.
func (in *Interp) RegisterProc(name, params, body string) Result {
	p, r := newProc(name, params, body)
	if r.Code != OK {
		return r
	}
	if _, exists := in.commands[name]; exists {
		logger.Printf("redefine proc %s", name)
	} else {
		logger.Printf("define proc %s", name)
	}
	in.commands[name] = &command{proc: p}
	return Okay("")
}

// Unregister removes a command. It returns false if there is no command of
// that name.
func (in *Interp) Unregister(name string) bool {
	if _, ok := in.commands[name]; !ok {
		return false
	}
	delete(in.commands, name)
	return true
}

// Rename renames a command. Renaming to the empty string deletes it.
func (in *Interp) Rename(oldName, newName string) Result {
	c, ok := in.commands[oldName]
	if !ok {
		if newName == "" {
			return Errorf("can't delete \"%s\": command doesn't exist", oldName)
		}
		return Errorf("can't rename \"%s\": command doesn't exist", oldName)
	}
	if newName == "" {
		delete(in.commands, oldName)
		return Okay("")
	}
	if _, exists := in.commands[newName]; exists {
		return Errorf("can't rename to \"%s\": command already exists", newName)
	}
	delete(in.commands, oldName)
	if c.proc != nil {
		p := *c.proc
		p.Name = newName
		c = &command{proc: &p}
	}
	in.commands[newName] = c
	return Okay("")
}

// HasCommand reports whether a command exists.
func (in *Interp) HasCommand(name string) bool {
	_, ok := in.commands[name]
	return ok
}

// CommandNames returns the names of all commands, sorted.
func (in *Interp) CommandNames() []string {
	names := make([]string, 0, len(in.commands))
	for name := range in.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Proc returns the procedure of the given name, or nil if there is no such
// procedure.
func (in *Interp) Proc(name string) *Proc {
	if c, ok := in.commands[name]; ok {
		return c.proc
	}
	return nil
}

// Dispatch invokes the command named by argv[0] with argv and returns its
// result unchanged. It panics if argv is empty.
func (in *Interp) Dispatch(argv []string) Result {
	if len(argv) == 0 {
		panic("eval: dispatching an empty command")
	}
	c, ok := in.commands[argv[0]]
	if !ok {
		return invalidCommand(argv[0])
	}
	return c.call(in, argv)
}

func invalidCommand(name string) Result {
	return Errorf("invalid command name \"%s\"", name)
}
