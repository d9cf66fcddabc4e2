package syntax

// Equal reports whether a and b are syntactically identical terms as
// parsed: the same variable names in the same positions, the same functor
// and arguments, the same number, or the same gateway shape. It does not
// consult any binding state — that notion of equality belongs to the
// engine package, which compares runtime-bound values instead.
func Equal(a, b Term) bool {
	switch av := a.(type) {
	case *Variable:
		bv, ok := b.(*Variable)
		return ok && av.Name == bv.Name && av.Anonymous == bv.Anonymous
	case *Number:
		bv, ok := b.(*Number)
		return ok && av.Value == bv.Value
	case *Structure:
		bv, ok := b.(*Structure)
		if !ok || !av.FunctorAndArityEqual(bv) {
			return false
		}
		for i := range av.Args {
			if !Equal(av.Args[i], bv.Args[i]) {
				return false
			}
		}
		return true
	case *Arithmetic:
		bv, ok := b.(*Arithmetic)
		return ok && av.Operator == bv.Operator && Equal(av.Left, bv.Left) && Equal(av.Right, bv.Right)
	case *Comparison:
		bv, ok := b.(*Comparison)
		return ok && av.Operator == bv.Operator && Equal(av.Left, bv.Left) && Equal(av.Right, bv.Right)
	case *Evaluation:
		bv, ok := b.(*Evaluation)
		return ok && Equal(av.Result, bv.Result) && Equal(av.Expr, bv.Expr)
	case *Write:
		bv, ok := b.(*Write)
		if !ok || len(av.Args) != len(bv.Args) {
			return false
		}
		for i := range av.Args {
			if !Equal(av.Args[i], bv.Args[i]) {
				return false
			}
		}
		return true
	case *Not:
		bv, ok := b.(*Not)
		return ok && Equal(av.Goal, bv.Goal)
	default:
		return false
	}
}

// termsEqual reports whether two slices of terms are pairwise Equal.
func termsEqual(a, b []Term) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}
