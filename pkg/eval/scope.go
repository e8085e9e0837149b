package eval

import "sort"

// Scope is the call stack of variable frames. The global frame is at the
// bottom and always present; one frame is pushed for each active procedure
// call. Unqualified variable names resolve in the top frame only.
type Scope struct {
	frames []frame
}

// A frame maps variable names to variables. Variables linked with
// LinkGlobal are shared between a frame and the global frame.
type frame map[string]*variable

type variable struct {
	value string
	// Whether the variable holds a value. Unset variables stay in their
	// frames so that links to them survive.
	set bool
}

// NewScope returns a Scope containing just the global frame.
func NewScope() *Scope {
	return &Scope{frames: []frame{{}}}
}

// Level returns the number of frames above the global frame.
func (s *Scope) Level() int { return len(s.frames) - 1 }

// Push pushes a new empty frame.
func (s *Scope) Push() {
	s.frames = append(s.frames, frame{})
	logger.Printf("push frame, level %d", s.Level())
}

// Pop discards the top frame. It panics if the top frame is the global frame.
func (s *Scope) Pop() {
	if len(s.frames) == 1 {
		panic("eval: popping the global frame")
	}
	s.frames[len(s.frames)-1] = nil
	s.frames = s.frames[:len(s.frames)-1]
	logger.Printf("pop frame, level %d", s.Level())
}

func (s *Scope) top() frame    { return s.frames[len(s.frames)-1] }
func (s *Scope) global() frame { return s.frames[0] }

// Get returns the value of a variable in the current frame.
func (s *Scope) Get(name string) (string, bool) { return s.top().get(name) }

// Set sets a variable in the current frame, creating it if needed.
func (s *Scope) Set(name, value string) { s.top().set(name, value) }

// Unset removes a variable from the current frame. It returns false if the
// variable does not exist.
func (s *Scope) Unset(name string) bool { return s.top().unset(name) }

// Exists reports whether a variable exists in the current frame.
func (s *Scope) Exists(name string) bool {
	_, ok := s.Get(name)
	return ok
}

// Names returns the sorted names of the variables in the current frame.
func (s *Scope) Names() []string { return s.top().names() }

// GetGlobal returns the value of a variable in the global frame.
func (s *Scope) GetGlobal(name string) (string, bool) { return s.global().get(name) }

// SetGlobal sets a variable in the global frame, creating it if needed.
func (s *Scope) SetGlobal(name, value string) { s.global().set(name, value) }

// GlobalNames returns the sorted names of the variables in the global frame.
func (s *Scope) GlobalNames() []string { return s.global().names() }

// LinkGlobal makes name in the current frame refer to the global variable of
// the same name, whether or not the latter exists yet. It has no effect when
// the current frame is the global frame. It returns false if a local
// variable of that name already exists.
func (s *Scope) LinkGlobal(name string) bool {
	if len(s.frames) == 1 {
		return true
	}
	top := s.top()
	if v, ok := top[name]; ok && v.set && v != s.global()[name] {
		return false
	}
	v, ok := s.global()[name]
	if !ok {
		v = &variable{}
		s.global()[name] = v
	}
	top[name] = v
	return true
}

func (f frame) get(name string) (string, bool) {
	if v, ok := f[name]; ok && v.set {
		return v.value, true
	}
	return "", false
}

func (f frame) set(name, value string) {
	if v, ok := f[name]; ok {
		v.value, v.set = value, true
	} else {
		f[name] = &variable{value, true}
	}
}

func (f frame) unset(name string) bool {
	v, ok := f[name]
	if !ok || !v.set {
		return false
	}
	v.value, v.set = "", false
	return true
}

func (f frame) names() []string {
	names := make([]string, 0, len(f))
	for name, v := range f {
		if v.set {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
