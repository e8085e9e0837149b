package eval

import (
	"testing"

	"github.com/Twisol/molt/pkg/diag"
	"github.com/Twisol/molt/pkg/tt"
)

func TestCode_String(t *testing.T) {
	tt.Test(t, tt.Fn("Code.String", Code.String), tt.Table{
		tt.Args(OK).Rets("ok"),
		tt.Args(Error).Rets("error"),
		tt.Args(Return).Rets("return"),
		tt.Args(Break).Rets("break"),
		tt.Args(Continue).Rets("continue"),
		tt.Args(Code(9)).Rets("Code(9)"),
	})
}

func errString(r Result) string {
	if err := r.Err(); err != nil {
		return err.Error()
	}
	return "<nil>"
}

func TestResult_Err(t *testing.T) {
	tt.Test(t, tt.Fn("Result.Err", errString), tt.Table{
		tt.Args(Okay("x")).Rets("<nil>"),
		tt.Args(ErrorResult("oops")).Rets("oops"),
		tt.Args(Errorf("bad %d", 1)).Rets("bad 1"),
		tt.Args(Result{Code: Return, Value: "1"}).Rets(`invoked "return" outside of a proc`),
		tt.Args(Result{Code: Break}).Rets(`invoked "break" outside of a loop`),
		tt.Args(Result{Code: Continue}).Rets(`invoked "continue" outside of a loop`),
	})

	if _, ok := ErrorResult("x").Err().(*Exception); !ok {
		t.Errorf("Err() of an error result is not *Exception")
	}
	if _, ok := (Result{Code: Break}).Err().(*FlowError); !ok {
		t.Errorf("Err() of a break result is not *FlowError")
	}
}

func TestResult_WithContext(t *testing.T) {
	src := "a\nb"
	inner := diag.NewContext("[test]", src, diag.Ranging{From: 0, To: 1})
	outer := diag.NewContext("[test]", src, diag.Ranging{From: 2, To: 3})
	r := ErrorResult("x").withContext(inner).withContext(outer)
	if r.StackTrace.Head != inner || r.StackTrace.Next.Head != outer || r.StackTrace.Next.Next != nil {
		t.Errorf("stack trace not built innermost first")
	}
}

func TestException_Show_SingleEntry(t *testing.T) {
	ctx := diag.NewContext("[test]", "error x", diag.Ranging{From: 0, To: 7})
	exc := &Exception{Message: "x", StackTrace: &StackTrace{Head: ctx}}
	want := "Exception: \033[31;1mx\033[m\n  " + ctx.Show("  ")
	if got := exc.Show(""); got != want {
		t.Errorf("Show() -> %q, want %q", got, want)
	}

	noTrace := &Exception{Message: "x"}
	if got := noTrace.Show(""); got != "Exception: \033[31;1mx\033[m" {
		t.Errorf("Show() without stack trace -> %q", got)
	}
}
