package interp

import "github.com/Vercily/js-tracker/value"

// frame is one lexical scope's name->value bindings.
type frame struct {
	vars map[string]value.Value
}

func newFrame() *frame {
	return &frame{vars: make(map[string]value.Value)}
}

func (f *frame) get(name string) (value.Value, bool) {
	v, ok := f.vars[name]
	return v, ok
}

func (f *frame) set(name string, v value.Value) { f.vars[name] = v }

// ClosureStack is the interpreter's lexical environment: an ordered
// sequence of frames, innermost last. It generalizes go/simplejs's
// *Scope-with-outer-pointer linked list into an explicit stack so that
// Clone can snapshot "the frames visible right now" as a plain slice copy —
// later Push/Pop on the live stack reassigns the live slice header and
// never touches a clone's backing array, so a closure's captured
// environment survives the function call that created it popping its own
// frame (spec.md §3's "closures require snapshot cloning" note).
type ClosureStack struct {
	frames []*frame
}

// NewClosureStack creates a stack with a single top-level frame.
func NewClosureStack() *ClosureStack {
	return &ClosureStack{frames: []*frame{newFrame()}}
}

// Push opens a new innermost frame, e.g. on function entry.
func (s *ClosureStack) Push() { s.frames = append(s.frames, newFrame()) }

// Pop discards the innermost frame, e.g. on function exit.
func (s *ClosureStack) Pop() { s.frames = s.frames[:len(s.frames)-1] }

// Define binds name in the innermost frame (spec.md §3's `set`).
func (s *ClosureStack) Define(name string, v value.Value) {
	s.frames[len(s.frames)-1].set(name, v)
}

// Update writes to the frame that already defines name, searching outward;
// if no frame defines it, it's defined on the outermost frame instead
// (spec.md §3's `update`) — this is how a bare `x = 1` for an undeclared x
// creates an implicit global, matching loose-mode JS.
func (s *ClosureStack) Update(name string, v value.Value) {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if _, ok := s.frames[i].get(name); ok {
			s.frames[i].set(name, v)
			return
		}
	}
	s.frames[0].set(name, v)
}

// Get looks up name, searching outward from the innermost frame
// (spec.md §3's `get`).
func (s *ClosureStack) Get(name string) (value.Value, bool) {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if v, ok := s.frames[i].get(name); ok {
			return v, true
		}
	}
	return nil, false
}

// Clone snapshots the frames currently visible, for a function value to
// capture as its closure environment.
func (s *ClosureStack) Clone() *ClosureStack {
	frames := make([]*frame, len(s.frames))
	copy(frames, s.frames)
	return &ClosureStack{frames: frames}
}

// WithSelfBinding returns a clone with one extra frame appended, binding
// name to self. Used for a named function expression, whose own name must
// resolve inside its body (for recursion by name) without being visible to
// whatever scope the expression was written in (spec.md §4.10).
func (s *ClosureStack) WithSelfBinding(name string, self value.Value) *ClosureStack {
	cloned := s.Clone()
	f := newFrame()
	f.set(name, self)
	cloned.frames = append(cloned.frames, f)
	return cloned
}
