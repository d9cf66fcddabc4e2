package syntax

import "github.com/google/uuid"

// Variable is a named logic variable as it appears in parsed source: a
// placeholder that gets bound to some other Term during unification.
//
// A Variable parsed directly out of source text is never itself mutated;
// binding happens to a *runtime copy* made fresh for each clause entry
// (the engine package's CopyForProof), keyed by this Variable's Name so that
// every occurrence of the same name within one clause shares one copy.
// ID replaces the original implementation's use of the wall-clock time as
// a uniqueness source.
type Variable struct {
	ID        uuid.UUID
	Name      string
	Anonymous bool
}

// NewVariable returns a fresh named Variable.
func NewVariable(name string) *Variable {
	return &Variable{ID: uuid.New(), Name: name}
}

// NewAnonymousVariable returns a fresh Variable standing for "_": it
// unifies with anything and binds to nothing, and unlike a named variable
// every occurrence of it is independent, even within the same clause, so
// it is never copied by name — see the engine package's CopyForProof.
func NewAnonymousVariable() *Variable {
	return &Variable{ID: uuid.New(), Name: "_", Anonymous: true}
}

func (*Variable) termNode() {}

func (v *Variable) String() string {
	return v.Name
}
