// Package syntax holds the static, Program-owned term model Logikus source
// parses into, and the grammar (built from the parse package's combinators)
// that does the parsing. Every term kind is a concrete type implementing
// the closed Term interface; the engine package dispatches on concrete type
// with type switches at its unification and proof-copying sites rather than
// each kind implementing its own Unify/CopyForProof method, so that adding
// a new kind of term is a change in one place instead of an interface
// implemented everywhere.
package syntax

// Term is implemented by every kind of Logikus term: Variable, Structure
// (which also represents atoms, 0-arity structures, and cons-cell lists),
// Number, and the gateway term kinds (Arithmetic, Comparison, Evaluation,
// Write, Not) that appear in a clause body but are never unified against a
// Program's clauses the way an ordinary goal is.
type Term interface {
	// termNode is unexported so that Term can only be implemented by types
	// in this package; the engine package's switches over it are therefore
	// guaranteed exhaustive against the kinds actually defined here.
	termNode()

	// String renders the term the way it would be written back as Logikus
	// source, used for trace output and error messages.
	String() string
}
