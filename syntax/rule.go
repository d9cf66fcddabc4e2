package syntax

// Rule is an axiom with a body: its head unifies with a goal only
// provisionally, pending every term of its body also being proved.
type Rule struct {
	head *Structure
	body []Term
}

// NewRule returns a Rule with the given head and body.
func NewRule(head *Structure, body []Term) *Rule {
	return &Rule{head: head, body: body}
}

func (r *Rule) Head() *Structure { return r.head }
func (r *Rule) Body() []Term     { return r.body }

func (r *Rule) Variables() []*Variable {
	terms := make([]Term, 0, 1+len(r.body))
	terms = append(terms, r.head)
	terms = append(terms, r.body...)
	return collectVariables(terms...)
}

// Equal reports whether r and other are the same rule syntactically: same
// head, and bodies of the same length with each term pairwise Equal. The
// length check uses len(r.body) over the rule's own body, not a
// separate counter that could silently drift out of step with it the way
// an index-based comparison can if the two slices being walked are not
// actually guaranteed to be the same length up front.
func (r *Rule) Equal(other Axiom) bool {
	o, ok := other.(*Rule)
	if !ok {
		return false
	}
	if !Equal(r.head, o.head) {
		return false
	}
	if len(r.body) != len(o.body) {
		return false
	}
	return termsEqual(r.body, o.body)
}

func (r *Rule) String() string {
	s := r.head.String() + " :- "
	for i, g := range r.body {
		if i > 0 {
			s += ", "
		}
		s += g.String()
	}
	return s + "."
}
