package syntax

import (
	"github.com/dekarrin/logikus/lex"
	"github.com/dekarrin/logikus/parse"
)

// ParseAxiom parses a single fact or rule, with an optional trailing '.'.
func ParseAxiom(text string) (Axiom, error) {
	toks := lex.New(text).All()
	assy, err := parse.Run(axiomMatcher(), toks)
	if err != nil {
		return nil, err
	}
	return assy.Pop().(Axiom), nil
}

// ParseQuery parses a comma-separated series of goals, with an optional
// trailing '.'.
func ParseQuery(text string) ([]Term, error) {
	toks := lex.New(text).All()
	assy, err := parse.Run(queryMatcher(), toks)
	if err != nil {
		return nil, err
	}
	return assy.Pop().(*GoalList).Goals, nil
}
