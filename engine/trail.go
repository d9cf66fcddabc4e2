// Package engine implements SLD-resolution proof search over a Program:
// unification, chronological backtracking, and the gateway goals
// (comparison, is/2, write/N, not/1) that are proved directly rather than by
// consulting clauses.
//
// Proof-time mutable state — variable bindings, the trail used to undo them,
// and the axiom cursor each in-progress goal is part-way through — lives
// entirely in this package's types, never on the syntax package's
// Program-owned term tree. A syntax.Variable copied fresh for one clause
// entry (see Scope) is still an ordinary immutable value; its binding is
// recorded in a Bindings map keyed by that copy's identity, not by mutating
// a field on it.
package engine

import "github.com/dekarrin/logikus/syntax"

// Bindings maps a runtime variable to the term it is currently bound to.
// Only variables that are actually bound appear as keys.
type Bindings map[*syntax.Variable]syntax.Term

// Trail records the order variables were bound in, so a failed proof
// attempt can undo exactly the bindings it made without disturbing
// anything bound before it started.
type Trail struct {
	env   Bindings
	bound []*syntax.Variable
}

// NewTrail returns a Trail that records bindings into env.
func NewTrail(env Bindings) *Trail {
	return &Trail{env: env}
}

// Bind records that v is now bound to val.
func (t *Trail) Bind(v *syntax.Variable, val syntax.Term) {
	t.env[v] = val
	t.bound = append(t.bound, v)
}

// Mark returns a checkpoint that can later be passed to UndoTo.
func (t *Trail) Mark() int {
	return len(t.bound)
}

// UndoTo unbinds every variable bound since mark, in reverse order.
func (t *Trail) UndoTo(mark int) {
	for i := len(t.bound) - 1; i >= mark; i-- {
		delete(t.env, t.bound[i])
	}
	t.bound = t.bound[:mark]
}

// Deref follows t through env as far as it is a bound variable, and
// returns the first thing that isn't: an unbound variable, or any
// non-variable term.
func Deref(t syntax.Term, env Bindings) syntax.Term {
	for {
		v, ok := t.(*syntax.Variable)
		if !ok {
			return t
		}
		val, bound := env[v]
		if !bound {
			return t
		}
		t = val
	}
}
