// Package logikus is the facade over the lex, parse, syntax, and engine
// packages: parse a program or a single axiom, and run queries against it
// with an optional trace Listener attached.
package logikus

import (
	"github.com/dekarrin/logikus/engine"
	"github.com/dekarrin/logikus/lex"
	"github.com/dekarrin/logikus/syntax"
)

// Term is re-exported from syntax so callers working only with the Facade
// never need to import the syntax package themselves to read a binding.
type Term = syntax.Term

// Listener is re-exported from engine so callers never need to import the
// engine package themselves just to implement one.
type Listener = engine.Listener

// NopListener discards every trace event; it is the default used when no
// Listener is supplied to NewQuery.
type NopListener = engine.NopListener

// ParseAxiom parses a single fact or rule, with an optional trailing '.'.
func ParseAxiom(text string) (syntax.Axiom, error) {
	return syntax.ParseAxiom(text)
}

// ParseProgram parses text as a block of ';'-separated axioms and returns
// a Program holding all of them, in order.
func ParseProgram(text string) (*engine.Program, error) {
	p := engine.NewProgram()
	for _, axiomText := range lex.SplitAxioms(text) {
		ax, err := syntax.ParseAxiom(axiomText)
		if err != nil {
			return nil, err
		}
		p.Add(ax)
	}
	return p, nil
}

// QueryOption configures a Query built by NewQuery.
type QueryOption func(*queryConfig)

type queryConfig struct {
	listener Listener
}

// WithListener attaches l to the query, so every clause attempt and
// write/N side effect during the search is reported to it.
func WithListener(l Listener) QueryOption {
	return func(c *queryConfig) {
		c.listener = l
	}
}

// NewQuery parses text as a goal list and returns a Query searching p for
// proofs of it.
func NewQuery(text string, p *engine.Program, opts ...QueryOption) (*engine.Query, error) {
	cfg := queryConfig{listener: NopListener{}}
	for _, opt := range opts {
		opt(&cfg)
	}
	goals, err := syntax.ParseQuery(text)
	if err != nil {
		return nil, err
	}
	return engine.NewQuery(p, goals, cfg.listener), nil
}
