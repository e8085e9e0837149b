package eval_test

import (
	"testing"

	"github.com/Twisol/molt/pkg/eval"
	. "github.com/Twisol/molt/pkg/eval/evaltest"
)

func TestProc(t *testing.T) {
	Test(t,
		That("proc f {} {return 1}").Returns(""),
		That("proc f {} {return 1}; f").Returns("1"),
		That("proc f {} {return}; f").Returns(""),
		That("proc f {} {set x 1; set y 2}; f").Returns("2"),
		That("proc f {a b} {list $b $a}; f 1 2").Returns("2 1"),
		That("proc f {a {b 5}} {list $a $b}; f 1").Returns("1 5"),
		That("proc f {a {b 5}} {list $a $b}; f 1 2").Returns("1 2"),
		That("proc f {{a {x y}}} {set a}; f").Returns("x y"),
		That("proc f {a args} {list $a $args}; f 1 2 3").Returns("1 {2 3}"),
		That("proc f {a args} {set args}; f 1").Returns(""),
		That("proc f {args} {llength $args}; f {a b} c").Returns("2"),

		// Arity errors.
		That("proc f {a {b 2} args} {}; f").
			Throws(`wrong # args: should be "f a ?b? ?arg ...?"`),
		That("proc f {a} {}; f 1 2").Throws(`wrong # args: should be "f a"`),
		That("proc f {} {}; f 1").Throws(`wrong # args: should be "f"`),
		That("proc f {args a} {}; f").Throws(`wrong # args: should be "f args a"`),

		// Malformed parameter lists.
		That("proc f {{}} {}").Throws("argument with no name"),
		That("proc f {{a b c}} {}").Throws(`too many fields in argument specifier "a b c"`),
		That("proc f \\{ {}").Throws("unmatched open brace in list"),
		That("proc f {}").Throws(`wrong # args: should be "proc name args body"`),

		// Loop signals do not escape a procedure.
		That("proc f {} {break}; f").Throws(`invoked "break" outside of a loop`),
		That("proc f {} {continue}; f").Throws(`invoked "continue" outside of a loop`),
		That("proc f {} {foreach x {a b} {return $x}}; f").Returns("a"),
	)
}

func TestProc_Scope(t *testing.T) {
	Test(t,
		// Each call has its own frame.
		That("set x 1; proc f {} {set x 2}; f; set x").Returns("1"),
		That("proc f {} {set x}; set x 1; f").Throws(`can't read "x": no such variable`),
		That("proc f {} {set y 1}; f; info exists y").Returns("0"),
		// Global links.
		That("set x 1; proc f {} {global x; set x 2}; f; set x").Returns("2"),
		That("proc f {} {global x; set x 1}; f; set x").Returns("1"),
		// Level.
		That("info level").Returns("0"),
		That("proc f {} {info level}; f").Returns("1"),
		That("proc f {} {g}; proc g {} {info level}; f").Returns("2"),
		// The frame is popped on every exit path.
		That("proc f {} {error x}; catch f; info level").Returns("0"),
		That("proc f {} {return 1}; f; info level").Returns("0"),
		That("proc f {} {break}; catch f; info level").Returns("0"),
		That("proc f {a} {}; catch f; info level").Returns("0"),
	)
}

func TestProc_StackTrace(t *testing.T) {
	Test(t,
		That("proc f {} {error oops}; f").Throws("oops", "error oops", "f"),
		That("proc f {} {error oops}\nproc g {} {f}\ng").
			Throws("oops", "error oops", "f", "g"),
		That("proc f {} {set x [error oops]}; f").Throws("oops", "error oops", "f"),
		That("proc f {a} {}; f").Throws(`wrong # args: should be "f a"`, "f"),
		That("proc f {} {foreach x {a} {error oops}}; f").
			Throws("oops", "error oops", "f"),
	)
}

func TestRename(t *testing.T) {
	Test(t,
		That("proc f {} {return 1}; rename f g; g").Returns("1"),
		That("proc f {} {return 1}; rename f g; f").Throws(`invalid command name "f"`),
		That("proc f {a} {}; rename f g; g").Throws(`wrong # args: should be "g a"`),
		That("rename set s; s x 1").Returns("1"),
		That("rename f g").Throws(`can't rename "f": command doesn't exist`),
		That("proc f {} {}; rename f set").Throws(`can't rename to "set": command already exists`),
		That("rename set {}; set x 1").Throws(`invalid command name "set"`),
		That("rename nope {}").Throws(`can't delete "nope": command doesn't exist`),
	)
}

func TestRegister(t *testing.T) {
	TestWithSetup(t, func(in *eval.Interp) {
		in.Register("double", func(in *eval.Interp, argv []string) eval.Result {
			if r := eval.CheckArgs(1, argv, 2, 2, "value"); r.Code != eval.OK {
				return r
			}
			return eval.Okay(argv[1] + argv[1])
		})
	},
		That("double ab").Returns("abab"),
		That("double").Throws(`wrong # args: should be "double value"`),
		That("set x [double [double a]]").Returns("aaaa"),
	)
}
