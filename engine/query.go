package engine

import "github.com/dekarrin/logikus/syntax"

// Query is one proof search over a Program for a parsed goal list. Its
// variables are the ones the user actually wrote — unlike a clause's
// variables, they are never renamed apart, so Next's Bindings result can
// be reported back under the names the user typed them with.
type Query struct {
	prog     *Program
	goals    []syntax.Term
	env      Bindings
	trail    *Trail
	dr       *dynamicRule
	listener Listener
	done     bool
}

// NewQuery returns a Query that will search prog for proofs of goals. If
// listener is nil, NopListener{} is used.
func NewQuery(prog *Program, goals []syntax.Term, listener Listener) *Query {
	if listener == nil {
		listener = NopListener{}
	}
	env := make(Bindings)
	trail := NewTrail(env)
	return &Query{
		prog:     prog,
		goals:    goals,
		env:      env,
		trail:    trail,
		dr:       newDynamicRule(goals, env, trail, prog, listener),
		listener: listener,
	}
}

// Next searches for the next proof of the query's goals. It returns the
// resulting variable bindings (by original source name) and true on
// success, or (nil, false) once every alternative has been exhausted —
// after which every further call also returns (nil, false).
func (q *Query) Next() (map[string]syntax.Term, bool) {
	if q.done {
		return nil, false
	}
	if !q.dr.canFindNextProof() {
		q.done = true
		return nil, false
	}
	return q.Bindings(), true
}

// Bindings returns the current resolved value of every named variable that
// appears in the query's own goals, without advancing the search. It is
// only meaningful to call after a successful Next.
func (q *Query) Bindings() map[string]syntax.Term {
	out := make(map[string]syntax.Term)
	for _, v := range syntax.VariablesIn(q.goals...) {
		out[v.Name] = Resolve(v, q.env)
	}
	return out
}

// Done reports whether the query has been exhausted (Next has returned
// false at least once).
func (q *Query) Done() bool {
	return q.done
}
