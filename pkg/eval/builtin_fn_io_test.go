package eval_test

import (
	"testing"

	. "github.com/Twisol/molt/pkg/eval/evaltest"
)

func TestPuts(t *testing.T) {
	Test(t,
		That("puts hello").Prints("hello\n"),
		That("puts {a b}").Prints("a b\n"),
		That("puts -nonewline hello").Prints("hello"),
		That("puts stdout x").Prints("x\n"),
		That("puts -nonewline stdout x").Prints("x"),
		That("puts stderr oops").PrintsStderrWith("oops\n"),
		That("puts -nonewline").Prints("-nonewline\n"),
		That("puts nochan x").Throws(`can not find channel named "nochan"`),
		That("puts a b c").Throws(`bad argument "a": should be "nonewline"`),
		That("puts").Throws(`wrong # args: should be "puts ?-nonewline? ?channelId? string"`),
	)
}

func TestAssertEq(t *testing.T) {
	Test(t,
		That("assert_eq a a").Returns(""),
		That("assert_eq [list a b] {a b}").Returns(""),
		That("assert_eq a b").Throws(`assertion failed: received "a", expected "b".`),
		That("assert_eq a").Throws(`wrong # args: should be "assert_eq received expected"`),
	)
}
