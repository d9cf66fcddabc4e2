package engine

import "github.com/dekarrin/logikus/syntax"

// Program holds a Logikus knowledge base: every fact and rule consulted so
// far, in the order they were added (clause order is significant — it is
// the order goals try their candidate axioms in).
type Program struct {
	axioms []syntax.Axiom
}

// NewProgram returns an empty Program.
func NewProgram() *Program {
	return &Program{}
}

// Add appends ax to the program.
func (p *Program) Add(ax syntax.Axiom) {
	p.axioms = append(p.axioms, ax)
}

// Axioms returns every axiom in the program, in clause order.
func (p *Program) Axioms() []syntax.Axiom {
	return p.axioms
}

// Matching returns the axioms whose head has the given functor and arity,
// in clause order — the candidate set a goal against that functor/arity
// tries in turn.
func (p *Program) Matching(functor string, arity int) []syntax.Axiom {
	var out []syntax.Axiom
	for _, ax := range p.axioms {
		h := ax.Head()
		if h.Functor == functor && len(h.Args) == arity {
			out = append(out, ax)
		}
	}
	return out
}

// Consult parses text as a single axiom and adds it to the program.
func (p *Program) Consult(text string) error {
	ax, err := syntax.ParseAxiom(text)
	if err != nil {
		return err
	}
	p.Add(ax)
	return nil
}

// Query parses text as a goal list and returns a Query ready to search for
// proofs against p, reporting to listener (which may be NopListener{}).
func (p *Program) Query(text string, listener Listener) (*Query, error) {
	goals, err := syntax.ParseQuery(text)
	if err != nil {
		return nil, err
	}
	return NewQuery(p, goals, listener), nil
}
