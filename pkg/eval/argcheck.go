package eval

import (
	"strconv"
	"strings"
)

// CheckArgs checks the number of arguments of a command. The first namec
// elements of argv form the name of the command shown in the error message,
// and sig describes the remaining arguments. The length of argv must be
// between min and max inclusive; a max of 0 means no maximum.
//
// It panics if namec or min is less than 1 or argv is empty.
func CheckArgs(namec int, argv []string, min, max int, sig string) Result {
	if namec < 1 || min < 1 || len(argv) == 0 {
		panic("eval: bad call to CheckArgs")
	}
	if len(argv) < min || (max > 0 && len(argv) > max) {
		return Errorf("wrong # args: should be \"%s %s\"",
			strings.Join(argv[:namec], " "), sig)
	}
	return Okay("")
}

// Subcommand is an entry in the subcommand table of an ensemble command.
type Subcommand struct {
	Name string
	Fn   CommandFunc
}

// GetSubcommand finds a subcommand by its exact name. If there is none, the
// error lists the names of all the subcommands.
func GetSubcommand(subs []Subcommand, name string) (Subcommand, Result) {
	for _, sub := range subs {
		if sub.Name == name {
			return sub, Okay("")
		}
	}

	var sb strings.Builder
	sb.WriteString(subs[0].Name)
	last := len(subs) - 1
	if len(subs) > 1 {
		sb.WriteString(", ")
	}
	for i := 1; i < last; i++ {
		if i > 1 {
			sb.WriteString(", ")
		}
		sb.WriteString(subs[i].Name)
	}
	if len(subs) > 1 {
		sb.WriteString(", or ")
		sb.WriteString(subs[last].Name)
	}
	return Subcommand{}, Errorf("unknown or ambiguous subcommand \"%s\": must be %s",
		name, sb.String())
}

// GetInteger parses s as a decimal integer.
func GetInteger(s string) (int64, Result) {
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, Errorf("expected integer but got \"%s\"", s)
	}
	return i, Okay("")
}
