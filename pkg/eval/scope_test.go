package eval

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestScope_GetSet(t *testing.T) {
	s := NewScope()
	if _, ok := s.Get("x"); ok {
		t.Errorf("x exists in a new scope")
	}
	s.Set("x", "1")
	if v, ok := s.Get("x"); !ok || v != "1" {
		t.Errorf("Get(x) -> (%q, %v), want (1, true)", v, ok)
	}
	if v, ok := s.GetGlobal("x"); !ok || v != "1" {
		t.Errorf("GetGlobal(x) at level 0 -> (%q, %v), want (1, true)", v, ok)
	}

	s.Push()
	if s.Exists("x") {
		t.Errorf("global variable visible in a new frame")
	}
	s.Set("x", "2")
	s.SetGlobal("y", "3")
	if v, _ := s.GetGlobal("x"); v != "1" {
		t.Errorf("local set changed the global variable to %q", v)
	}
	if diff := cmp.Diff([]string{"x"}, s.Names()); diff != "" {
		t.Errorf("Names (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"x", "y"}, s.GlobalNames()); diff != "" {
		t.Errorf("GlobalNames (-want +got):\n%s", diff)
	}
	s.Pop()
	if v, _ := s.Get("x"); v != "1" {
		t.Errorf("after Pop, Get(x) -> %q, want 1", v)
	}
}

func TestScope_Unset(t *testing.T) {
	s := NewScope()
	if s.Unset("x") {
		t.Errorf("Unset of a nonexistent variable returned true")
	}
	s.Set("x", "1")
	if !s.Unset("x") {
		t.Errorf("Unset of an existing variable returned false")
	}
	if s.Exists("x") || len(s.Names()) != 0 {
		t.Errorf("variable still exists after Unset")
	}
	if s.Unset("x") {
		t.Errorf("second Unset returned true")
	}
}

func TestScope_LinkGlobal(t *testing.T) {
	s := NewScope()
	s.Set("x", "1")
	s.Push()
	if !s.LinkGlobal("x") || !s.LinkGlobal("x") {
		t.Errorf("LinkGlobal failed")
	}
	s.Set("x", "2")
	if v, _ := s.GetGlobal("x"); v != "2" {
		t.Errorf("set through link -> global is %q, want 2", v)
	}

	// Linking a variable that doesn't exist yet.
	s.LinkGlobal("y")
	if s.Exists("y") {
		t.Errorf("linking created a value")
	}
	s.Set("y", "3")
	s.Pop()
	if v, _ := s.Get("y"); v != "3" {
		t.Errorf("global y is %q, want 3", v)
	}

	s.Push()
	s.Set("z", "local")
	if s.LinkGlobal("z") {
		t.Errorf("LinkGlobal succeeded with an existing local variable")
	}
	// Linking at the global level has no effect.
	s.Pop()
	if !s.LinkGlobal("z") {
		t.Errorf("LinkGlobal at level 0 failed")
	}
}

func TestScope_Level(t *testing.T) {
	s := NewScope()
	for i := 0; i < 3; i++ {
		if s.Level() != i {
			t.Errorf("Level() -> %d, want %d", s.Level(), i)
		}
		s.Push()
	}
	for i := 3; i > 0; i-- {
		s.Pop()
	}
	if s.Level() != 0 {
		t.Errorf("Level() -> %d after popping all frames", s.Level())
	}
}

func TestScope_PopGlobalPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("popping the global frame did not panic")
		}
	}()
	NewScope().Pop()
}
