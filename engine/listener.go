package engine

import "github.com/dekarrin/logikus/syntax"

// Listener observes a Query's proof search: every clause attempted against
// a goal, and every write/N side effect performed. It replaces a global
// debug flag with an injected collaborator, the same shape the root
// package uses for its own dependency-injected collaborators (an explicit
// writer rather than a package-level switch).
type Listener interface {
	// ClauseAttempt is called with ok false when an axiom's head fails to
	// unify with a goal; once its head unifies, it is called with ok true
	// for every proof found through that axiom, and with ok false when that
	// axiom has no further proofs. head is the axiom's (uncopied) head as
	// stored in the Program.
	ClauseAttempt(goal *syntax.Structure, head *syntax.Structure, ok bool)

	// Write is called once per successful write/N goal, with the already
	// comma-joined, bindings-resolved rendering of its arguments.
	Write(s string)
}

// NopListener discards every event. It is the default Listener a Program
// uses when none is supplied.
type NopListener struct{}

func (NopListener) ClauseAttempt(_ *syntax.Structure, _ *syntax.Structure, _ bool) {}
func (NopListener) Write(_ string)                                                {}
