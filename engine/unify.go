package engine

import "github.com/dekarrin/logikus/syntax"

// Unify tries to make a and b equal by binding unbound variables on either
// side, recording every binding it makes on trail. It returns false without
// recording anything further once it hits a mismatch; the caller is
// responsible for calling trail.UndoTo(mark) to unwind whatever partial
// bindings a failed Unify call did make before failing.
//
// There is no occurs-check: binding X to a structure containing X produces
// a cyclic term. This matches the source semantics this engine is ported
// from rather than silently changing behavior.
func Unify(a, b syntax.Term, env Bindings, trail *Trail) bool {
	a = Deref(a, env)
	b = Deref(b, env)

	if av, ok := a.(*syntax.Variable); ok {
		if bv, ok := b.(*syntax.Variable); ok && bv == av {
			return true
		}
		if av.Anonymous {
			return true
		}
		trail.Bind(av, b)
		return true
	}
	if bv, ok := b.(*syntax.Variable); ok {
		if bv.Anonymous {
			return true
		}
		trail.Bind(bv, a)
		return true
	}

	switch av := a.(type) {
	case *syntax.Number:
		bv, ok := b.(*syntax.Number)
		return ok && av.Value == bv.Value
	case *syntax.Structure:
		bv, ok := b.(*syntax.Structure)
		if !ok || !av.FunctorAndArityEqual(bv) {
			return false
		}
		for i := range av.Args {
			if !Unify(av.Args[i], bv.Args[i], env, trail) {
				return false
			}
		}
		return true
	default:
		// gateway terms (Arithmetic, Comparison, Evaluation, Write, Not)
		// are never unified against; they are only ever proved directly.
		return false
	}
}
