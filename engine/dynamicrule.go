package engine

import "github.com/dekarrin/logikus/syntax"

// dynamicRule proves a conjunction of goals in sequence — a clause's body,
// or a query's goal list — with full chronological backtracking across
// them: if a later goal in the conjunction runs out of alternatives, an
// earlier one is asked for its next proof and everything after it is
// re-established from scratch against the resulting bindings.
//
// Each goal's proofNode is created lazily, the first time the search
// reaches it, and kept around afterward so that re-entering it (to ask for
// its next alternative) resumes exactly where it left off rather than
// starting over.
type dynamicRule struct {
	terms []syntax.Term
	goals []proofNode

	env      Bindings
	trail    *Trail
	prog     *Program
	listener Listener

	triedEmpty bool

	// axiomHead is set by structureGoal after constructing this
	// dynamicRule from a clause body, purely so the Listener can report
	// which axiom's body is being proved; a dynamicRule built directly
	// for a query's goal list leaves it nil.
	axiomHead *syntax.Structure
}

func newDynamicRule(terms []syntax.Term, env Bindings, trail *Trail, prog *Program, listener Listener) *dynamicRule {
	return &dynamicRule{terms: terms, env: env, trail: trail, prog: prog, listener: listener}
}

// canFindNextProof proves the conjunction, or finds its next proof if it
// was already fully proved once. It returns false once every combination
// of alternatives for every goal in the conjunction has been exhausted.
func (d *dynamicRule) canFindNextProof() bool {
	if len(d.terms) == 0 {
		if d.triedEmpty {
			return false
		}
		d.triedEmpty = true
		return true
	}

	i := len(d.goals) - 1
	if i < 0 {
		i = 0
	}
	for {
		if i == len(d.terms) {
			return true
		}
		if i >= len(d.goals) {
			d.goals = append(d.goals, newProofNode(d.terms[i], d.env, d.trail, d.prog, d.listener))
		}
		if d.goals[i].canFindNextProof() {
			i++
			continue
		}
		d.goals = d.goals[:i]
		i--
		if i < 0 {
			return false
		}
	}
}
