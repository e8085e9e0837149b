package shell

import (
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Twisol/molt/pkg/tt"
)

func TestMinEditor(t *testing.T) {
	ed := newMinEditor(strings.NewReader(
		"puts a\nproc f {} {\nputs b\n}\n\nputs {c"))
	var got []string
	for {
		code, err := ed.ReadCode()
		if err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("got error %v", err)
		}
		got = append(got, code)
	}
	want := []string{"puts a\n", "proc f {} {\nputs b\n}\n", "\n", "puts {c"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if _, err := ed.ReadCode(); err != io.EOF {
		t.Errorf("got error %v after EOF, want io.EOF", err)
	}
}

var names = []string{"lappend", "lindex", "list", "llength", "puts", "set"}

func TestCompleteCommand(t *testing.T) {
	tt.Test(t, tt.Fn("completeCommand", completeCommand), tt.Table{
		tt.Args(names, "l", 1).Rets("", []string{"lappend", "lindex", "list", "llength"}, ""),
		tt.Args(names, "li", 2).Rets("", []string{"lindex", "list"}, ""),
		tt.Args(names, "set x [pu", 9).Rets("set x [", []string{"puts"}, ""),
		tt.Args(names, "s; pu x", 5).Rets("s; ", []string{"puts"}, " x"),
		// Not at command position.
		tt.Args(names, "puts l", 6).Rets("puts l", []string(nil), ""),
		tt.Args(names, "zz", 2).Rets("", []string(nil), ""),
		tt.Args(names, "pu", 5).Rets("", []string{"puts"}, ""),
	})
}
