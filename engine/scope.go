package engine

import "github.com/dekarrin/logikus/syntax"

// Scope maps each named variable in one clause's head+body to a single
// fresh copy, so that every occurrence of X within one clause entry shares
// one runtime variable while a different entry of the same clause (or a
// different clause entirely) gets its own, independent copy. An anonymous
// variable is never looked up in the map — every occurrence gets its own
// brand new copy, matching syntax.Variable.Anonymous's contract.
type Scope struct {
	copies map[string]*syntax.Variable
}

// NewScope returns an empty Scope, ready to copy one clause entry's terms.
func NewScope() *Scope {
	return &Scope{copies: make(map[string]*syntax.Variable)}
}

func (s *Scope) copyVariable(v *syntax.Variable) *syntax.Variable {
	if v.Anonymous {
		return syntax.NewAnonymousVariable()
	}
	if c, ok := s.copies[v.Name]; ok {
		return c
	}
	c := syntax.NewVariable(v.Name)
	s.copies[v.Name] = c
	return c
}

// CopyForProof returns a fresh copy of t with every variable replaced by
// its (or a brand new, for an anonymous variable) copy in s. Structural
// terms are rebuilt recursively; a Number needs no copy since it carries
// no variable.
func CopyForProof(t syntax.Term, s *Scope) syntax.Term {
	switch v := t.(type) {
	case *syntax.Variable:
		return s.copyVariable(v)
	case *syntax.Number:
		return v
	case *syntax.Structure:
		if len(v.Args) == 0 {
			return v
		}
		args := make([]syntax.Term, len(v.Args))
		for i, a := range v.Args {
			args[i] = CopyForProof(a, s)
		}
		return &syntax.Structure{Functor: v.Functor, Args: args}
	case *syntax.Arithmetic:
		return &syntax.Arithmetic{Operator: v.Operator, Left: CopyForProof(v.Left, s), Right: CopyForProof(v.Right, s)}
	case *syntax.Comparison:
		return &syntax.Comparison{Operator: v.Operator, Left: CopyForProof(v.Left, s), Right: CopyForProof(v.Right, s)}
	case *syntax.Evaluation:
		return &syntax.Evaluation{Result: CopyForProof(v.Result, s), Expr: CopyForProof(v.Expr, s)}
	case *syntax.Write:
		args := make([]syntax.Term, len(v.Args))
		for i, a := range v.Args {
			args[i] = CopyForProof(a, s)
		}
		return &syntax.Write{Args: args}
	case *syntax.Not:
		return &syntax.Not{Goal: CopyForProof(v.Goal, s)}
	default:
		return t
	}
}

// CopyTermsForProof copies each of terms with the same Scope, so variables
// shared across them (a rule's head and its body) stay shared in the copy.
func CopyTermsForProof(terms []syntax.Term, s *Scope) []syntax.Term {
	out := make([]syntax.Term, len(terms))
	for i, t := range terms {
		out[i] = CopyForProof(t, s)
	}
	return out
}
