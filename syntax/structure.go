package syntax

import "strings"

// Structure is a compound term: a functor name applied to zero or more
// argument terms. A 0-arity Structure is what the grammar calls an atom
// (e.g. true, []); a 2-arity Structure with functor "." and a cons-style
// argument order is how a list literal is represented, the same encoding
// the original Prolog-derived source uses, so ordinary unification against
// a Structure's Args handles list unification for free without a distinct
// list term kind.
type Structure struct {
	Functor string
	Args    []Term
}

func (*Structure) termNode() {}

// NewAtom returns a 0-arity Structure: a bare constant like true or foo.
func NewAtom(name string) *Structure {
	return &Structure{Functor: name}
}

// NewStructure returns a Structure with the given functor and arguments.
func NewStructure(functor string, args ...Term) *Structure {
	return &Structure{Functor: functor, Args: args}
}

// Arity returns the number of arguments the structure carries.
func (s *Structure) Arity() int {
	return len(s.Args)
}

// IsAtom reports whether s is a 0-arity structure.
func (s *Structure) IsAtom() bool {
	return len(s.Args) == 0
}

// FunctorAndArityEqual reports whether s has the same functor name and
// arity as o, the criterion Logikus uses to decide whether a clause head
// could possibly match a query goal before attempting full unification.
func (s *Structure) FunctorAndArityEqual(o *Structure) bool {
	return s.Functor == o.Functor && len(s.Args) == len(o.Args)
}

const consFunctor = "."

// listFunctorName is the functor a list cons cell carries.
const listFunctorName = consFunctor

// EmptyListName is how the empty list renders in source syntax; its actual
// functor is consFunctor ("."), arity 0, so that a user-typed "." atom is
// the very same term rather than a structurally distinct one.
const EmptyListName = "[]"

// NewEmptyList returns the 0-arity "." structure that terminates a proper
// list.
func NewEmptyList() *Structure {
	return &Structure{Functor: consFunctor}
}

// NewCons returns the two-argument "." structure that conses head onto
// tail, the building block list literal syntax assembles into.
func NewCons(head, tail Term) *Structure {
	return &Structure{Functor: consFunctor, Args: []Term{head, tail}}
}

// NewList returns a proper list built by consing elems onto the empty
// list, in order, so NewList(a, b) renders as [a, b].
func NewList(elems ...Term) Term {
	var list Term = NewEmptyList()
	for i := len(elems) - 1; i >= 0; i-- {
		list = NewCons(elems[i], list)
	}
	return list
}

// IsCons reports whether s is a "." /2 cons cell.
func (s *Structure) IsCons() bool {
	return s.Functor == consFunctor && len(s.Args) == 2
}

// IsEmptyList reports whether s is the [] atom.
func (s *Structure) IsEmptyList() bool {
	return s.Functor == consFunctor && len(s.Args) == 0
}

// Head returns the head of a cons cell. It panics if s is not a cons cell;
// callers should check IsCons first.
func (s *Structure) Head() Term {
	return s.Args[0]
}

// Tail returns the tail of a cons cell. It panics if s is not a cons cell;
// callers should check IsCons first.
func (s *Structure) Tail() Term {
	return s.Args[1]
}

func (s *Structure) String() string {
	if s.IsEmptyList() {
		return "[]"
	}
	if s.IsCons() {
		return listString(s)
	}
	if s.IsAtom() {
		return s.Functor
	}
	parts := make([]string, len(s.Args))
	for i, a := range s.Args {
		parts[i] = a.String()
	}
	return s.Functor + "(" + strings.Join(parts, ", ") + ")"
}

func listString(s *Structure) string {
	var b strings.Builder
	b.WriteByte('[')
	cur := Term(s)
	first := true
	for {
		st, ok := cur.(*Structure)
		if !ok {
			// improper list: a variable tail.
			b.WriteString(" | ")
			b.WriteString(cur.String())
			break
		}
		if st.IsEmptyList() {
			break
		}
		if !st.IsCons() {
			b.WriteString(" | ")
			b.WriteString(st.String())
			break
		}
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(st.Head().String())
		cur = st.Tail()
	}
	b.WriteByte(']')
	return b.String()
}
