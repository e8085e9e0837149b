package eval

import (
	"fmt"
	"io"
)

// Input and output.

func init() {
	addBuiltins(map[string]CommandFunc{
		"puts":      putsFn,
		"assert_eq": assertEqFn,
	})
}

// puts ?-nonewline? ?channelId? string
//
// Writes the string and a newline to the channel, stdout by default. The
// channels are stdout and stderr.
func putsFn(in *Interp, argv []string) Result {
	if r := CheckArgs(1, argv, 2, 4, "?-nonewline? ?channelId? string"); r.Code != OK {
		return r
	}
	args := argv[1:]
	newline := true
	if len(args) > 1 && args[0] == "-nonewline" {
		newline = false
		args = args[1:]
	}
	var w io.Writer
	switch len(args) {
	case 1:
		w = in.Stdout
	case 2:
		switch args[0] {
		case "stdout":
			w = in.Stdout
		case "stderr":
			w = in.Stderr
		default:
			return Errorf("can not find channel named \"%s\"", args[0])
		}
	default:
		return Errorf("bad argument \"%s\": should be \"nonewline\"", argv[1])
	}
	s := args[len(args)-1]
	if newline {
		s += "\n"
	}
	if _, err := io.WriteString(w, s); err != nil {
		return Errorf("error writing \"%s\": %v", args[0], err)
	}
	return Okay("")
}

// assert_eq received expected
//
// Fails unless the two arguments are equal strings.
func assertEqFn(in *Interp, argv []string) Result {
	if r := CheckArgs(1, argv, 3, 3, "received expected"); r.Code != OK {
		return r
	}
	if argv[1] != argv[2] {
		return ErrorResult(fmt.Sprintf("assertion failed: received \"%s\", expected \"%s\".",
			argv[1], argv[2]))
	}
	return Okay("")
}
