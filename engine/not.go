package engine

import "github.com/dekarrin/logikus/syntax"

// notNode proves a Not (negation-as-failure) gateway goal: it proves Goal
// once against the same bindings its caller already established, then
// unwinds the trail back to where it started regardless of the result, so
// a negated goal's own bindings never leak out — only the success/failure
// of finding a proof at all is visible to the caller. Like every gateway,
// this can only be attempted once per entry.
type notNode struct {
	inner proofNode
	trail *Trail
	done  bool
}

func newNotNode(t *syntax.Not, env Bindings, trail *Trail, prog *Program, listener Listener) *notNode {
	return &notNode{inner: newProofNode(t.Goal, env, trail, prog, listener), trail: trail}
}

func (n *notNode) canFindNextProof() bool {
	if n.done {
		return false
	}
	n.done = true

	mark := n.trail.Mark()
	proved := n.inner.canFindNextProof()
	n.trail.UndoTo(mark)
	return !proved
}
