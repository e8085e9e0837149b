package diag

import (
	"fmt"
	"testing"
)

type testErrorTag struct{}

func (testErrorTag) ErrorTag() string { return "some error" }

func TestError(t *testing.T) {
	setCulpritMarkers(t, "<", ">")
	setMessageMarkers(t, "{", "}")

	err := &Error[testErrorTag]{
		Message: "bad list",
		Context: *contextInParen("[test]", "echo (x)"),
	}

	wantErrorString := "some error: [test]:1:6: bad list"
	if gotErrorString := err.Error(); gotErrorString != wantErrorString {
		t.Errorf("Error() -> %q, want %q", gotErrorString, wantErrorString)
	}

	wantRanging := Ranging{From: 5, To: 8}
	if gotRanging := err.Range(); gotRanging != wantRanging {
		t.Errorf("Range() -> %v, want %v", gotRanging, wantRanging)
	}

	// The tag is capitalized in the return value of Show.
	wantShow := "Some error: {bad list}\n  [test]:1:6: echo <(x)>"
	if gotShow := err.Show(""); gotShow != wantShow {
		t.Errorf("Show() -> %q, want %q", gotShow, wantShow)
	}
}

func TestGetError(t *testing.T) {
	err := &Error[testErrorTag]{Message: "bad"}
	if got := GetError[testErrorTag](fmt.Errorf("wrapped: %w", err)); got != err {
		t.Errorf("GetError on wrapped error -> %v, want %v", got, err)
	}
	if got := GetError[testErrorTag](fmt.Errorf("plain")); got != nil {
		t.Errorf("GetError on plain error -> %v, want nil", got)
	}
}
