package lox

// Env is a lexical environment frame with a parent link; frames form a
// singly-linked, never-cyclic chain whose outermost node is the global scope.
// Lookups and assignments walk parent-ward; declarations never do.
type Env struct {
	parent *Env
	table  map[string]Value
}

// NewEnv creates a new lexical frame with the given parent (nil for the
// global scope).
func NewEnv(parent *Env) *Env {
	return &Env{parent: parent, table: make(map[string]Value)}
}

// Define binds name to v in this frame, shadowing any outer binding. Binding
// an already-declared name in the same frame rebinds it.
func (e *Env) Define(name string, v Value) {
	e.table[name] = v
}

// Assign updates the nearest visible binding of name and reports whether one
// existed. It never implicitly defines.
func (e *Env) Assign(name string, v Value) bool {
	for f := e; f != nil; f = f.parent {
		if _, ok := f.table[name]; ok {
			f.table[name] = v
			return true
		}
	}
	return false
}

// Get retrieves the nearest visible binding for name.
func (e *Env) Get(name string) (Value, bool) {
	for f := e; f != nil; f = f.parent {
		if v, ok := f.table[name]; ok {
			return v, true
		}
	}
	return Nil, false
}
