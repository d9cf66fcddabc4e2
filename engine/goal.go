package engine

import "github.com/dekarrin/logikus/syntax"

// proofNode is one position in a resolvent: something that can be asked,
// possibly more than once across backtracking, whether it has another
// proof. This is the canFindNextProof half of the Prolog engine's
// mutually-recursive iterator protocol; structureGoal additionally
// implements canUnify/advancing its axiom cursor internally, and
// dynamicRule implements the same canFindNextProof contract over a whole
// clause body instead of a single goal.
type proofNode interface {
	canFindNextProof() bool
}

// newProofNode builds the right kind of proofNode for t's concrete type.
// Comparison, Evaluation, Write, and Not are gateway terms proved directly;
// everything else (an ordinary Structure) is proved by consulting the
// Program's clauses.
func newProofNode(t syntax.Term, env Bindings, trail *Trail, prog *Program, listener Listener) proofNode {
	switch v := t.(type) {
	case *syntax.Comparison:
		return newComparisonNode(v, env)
	case *syntax.Evaluation:
		return newEvaluationNode(v, env, trail)
	case *syntax.Write:
		return newWriteNode(v, env, listener)
	case *syntax.Not:
		return newNotNode(v, env, trail, prog, listener)
	case *syntax.Structure:
		return newStructureGoal(v, env, trail, prog, listener)
	default:
		// Variables and Numbers never appear as goals themselves; the
		// grammar only ever builds a goal out of the kinds above.
		return failNode{}
	}
}

// failNode never has a proof; it exists only as newProofNode's defensive
// fallback for a goal term kind that should be unreachable in practice.
type failNode struct{}

func (failNode) canFindNextProof() bool { return false }

// structureGoal proves an ordinary (non-gateway) goal by consulting a
// Program's clauses: it tries each candidate axiom in turn, unifying the
// goal against a fresh copy of the axiom's head and, if that succeeds,
// proving a fresh copy of the axiom's body as a dynamicRule. It preserves
// the position in both lists (axiom cursor, and the active dynamicRule's
// own internal position) across calls so that asking for the next proof
// resumes exactly where the previous one left off instead of starting
// over — this is the ConsultingStructure half of the original engine's
// iterator protocol.
type structureGoal struct {
	goal     *syntax.Structure
	env      Bindings
	trail    *Trail
	prog     *Program
	listener Listener

	axioms []syntax.Axiom
	cursor int
	mark   int
	active *dynamicRule
}

func newStructureGoal(goal *syntax.Structure, env Bindings, trail *Trail, prog *Program, listener Listener) *structureGoal {
	return &structureGoal{
		goal:     goal,
		env:      env,
		trail:    trail,
		prog:     prog,
		listener: listener,
		axioms:   prog.Matching(goal.Functor, goal.Arity()),
	}
}

func (g *structureGoal) canFindNextProof() bool {
	for {
		if g.active != nil {
			if g.active.canFindNextProof() {
				g.listener.ClauseAttempt(g.goal, g.active.axiomHead, true)
				return true
			}
			g.listener.ClauseAttempt(g.goal, g.active.axiomHead, false)
			g.trail.UndoTo(g.mark)
			g.active = nil
		}

		if g.cursor >= len(g.axioms) {
			return false
		}
		ax := g.axioms[g.cursor]
		g.cursor++

		g.mark = g.trail.Mark()
		scope := NewScope()
		head := CopyForProof(ax.Head(), scope).(*syntax.Structure)
		if !Unify(g.goal, head, g.env, g.trail) {
			g.listener.ClauseAttempt(g.goal, ax.Head(), false)
			g.trail.UndoTo(g.mark)
			continue
		}

		body := CopyTermsForProof(ax.Body(), scope)
		g.active = newDynamicRule(body, g.env, g.trail, g.prog, g.listener)
		g.active.axiomHead = ax.Head()
	}
}
