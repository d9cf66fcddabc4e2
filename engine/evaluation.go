package engine

import "github.com/dekarrin/logikus/syntax"

// evaluationNode proves an Evaluation ("is") gateway goal: evaluate Expr,
// then unify Result with the resulting Number. One attempt only.
type evaluationNode struct {
	term  *syntax.Evaluation
	env   Bindings
	trail *Trail
	done  bool
}

func newEvaluationNode(t *syntax.Evaluation, env Bindings, trail *Trail) *evaluationNode {
	return &evaluationNode{term: t, env: env, trail: trail}
}

func (n *evaluationNode) canFindNextProof() bool {
	if n.done {
		return false
	}
	n.done = true

	v, err := eval(n.term.Expr, n.env)
	if err != nil {
		return false
	}
	return Unify(n.term.Result, &syntax.Number{Value: v}, n.env, n.trail)
}
