package eval_test

import (
	"testing"

	. "github.com/Twisol/molt/pkg/eval/evaltest"
)

func TestSet(t *testing.T) {
	Test(t,
		That("set x 1").Returns("1"),
		That("set x 1; set x").Returns("1"),
		That("set x").Throws(`can't read "x": no such variable`),
		That("set").Throws(`wrong # args: should be "set varName ?newValue?"`),
		That("set a b c").Throws(`wrong # args: should be "set varName ?newValue?"`),
	)
}

func TestUnset(t *testing.T) {
	Test(t,
		That("set x 1; unset x; info exists x").Returns("0"),
		That("set x 1; set y 2; unset x y; info vars").Returns(""),
		That("unset").Returns(""),
		That("unset nope").Throws(`can't unset "nope": no such variable`),
		That("set x 1; unset x; unset x").Throws(`can't unset "x": no such variable`),
		That("set x 1; proc f {} {global x; unset x}; f; info exists x").Returns("0"),
		That("proc f {} {global x; unset x}; f").Throws(`can't unset "x": no such variable`),
	)
}

func TestAppend(t *testing.T) {
	Test(t,
		That("append x a b; append x c").Returns("abc"),
		That("set x 1; append x").Returns("1"),
		That("append").Throws(`wrong # args: should be "append varName ?value value ...?"`),
	)
}

func TestIncr(t *testing.T) {
	Test(t,
		That("incr x").Returns("1"),
		That("set x 5; incr x 3").Returns("8"),
		That("set x 5; incr x -7").Returns("-2"),
		That("set x 5; incr x; set x").Returns("6"),
		That("set x a; incr x").Throws(`expected integer but got "a"`),
		That("incr x b").Throws(`expected integer but got "b"`),
		That("set x 9223372036854775807; incr x").Throws("integer overflow"),
		That("set x -9223372036854775808; incr x -1").Throws("integer overflow"),
		That("set x 9223372036854775807; catch {incr x}; set x").
			Returns("9223372036854775807"),
		That("set x -9223372036854775808; incr x 9223372036854775807").Returns("-1"),
		That("incr").Throws(`wrong # args: should be "incr varName ?increment?"`),
	)
}

func TestGlobal(t *testing.T) {
	Test(t,
		That("global x").Returns(""),
		That("set x 1; global x; set x").Returns("1"),
		That("proc f {} {set x 1; global x}; f").Throws(`variable "x" already exists`),
		That("proc f {} {global x y; set y 2}; f; set y").Returns("2"),
		That("proc f {} {global x; info exists x}; f").Returns("0"),
		That("set x 1; proc f {} {global x; info vars}; f").Returns("x"),
	)
}
