package engine

import "github.com/dekarrin/logikus/syntax"

// Resolve walks t through env, substituting every bound variable with
// what it is ultimately bound to (recursively, so a structure's arguments
// are resolved too), and leaves unbound variables and gateway terms as-is.
// It is used both to render write/N's arguments and to report a Query's
// final variable bindings.
func Resolve(t syntax.Term, env Bindings) syntax.Term {
	t = Deref(t, env)
	s, ok := t.(*syntax.Structure)
	if !ok || len(s.Args) == 0 {
		return t
	}
	args := make([]syntax.Term, len(s.Args))
	changed := false
	for i, a := range s.Args {
		r := Resolve(a, env)
		args[i] = r
		if r != a {
			changed = true
		}
	}
	if !changed {
		return s
	}
	return &syntax.Structure{Functor: s.Functor, Args: args}
}
