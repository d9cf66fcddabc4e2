// Package parse implements a small parser-combinator library in the style
// of Steven Metsker's "Building Parsers": matchers consume tokens from an
// Assembly and push semantic values onto its stack, and a grammar is built
// by composing matchers rather than by generating a table from a grammar
// file.
package parse

import (
	"github.com/dekarrin/logikus/internal/util"
	"github.com/dekarrin/logikus/lex"
)

// Assembly holds an in-progress parse: the tokens not yet consumed, the
// tokens already consumed (for error messages and for Track's "after this
// point" reporting), and a stack of semantic values built up by Assemblers
// as matchers succeed.
type Assembly struct {
	remaining []lex.Token
	consumed  []lex.Token
	stack     util.Stack[any]
}

// NewAssembly returns an Assembly over toks, with an empty value stack.
func NewAssembly(toks []lex.Token) *Assembly {
	return &Assembly{remaining: toks}
}

// Peek returns the next unconsumed token, or lex.EOF if none remain.
func (a *Assembly) Peek() lex.Token {
	if len(a.remaining) == 0 {
		return lex.EOF
	}
	return a.remaining[0]
}

// AtEnd reports whether every token has been consumed.
func (a *Assembly) AtEnd() bool {
	return len(a.remaining) == 0
}

// Advance consumes and returns the next token. It panics if called at end of
// input; callers must check AtEnd (or Peek for lex.EOF) first.
func (a *Assembly) Advance() lex.Token {
	tok := a.remaining[0]
	a.remaining = a.remaining[1:]
	a.consumed = append(a.consumed, tok)
	return tok
}

// LastConsumed returns the most recently consumed token. It panics if no
// token has been consumed yet.
func (a *Assembly) LastConsumed() lex.Token {
	return a.consumed[len(a.consumed)-1]
}

// Push adds a semantic value to the assembly's stack.
func (a *Assembly) Push(v any) {
	a.stack.Push(v)
}

// Pop removes and returns the top semantic value. It panics if the stack is
// empty.
func (a *Assembly) Pop() any {
	return a.stack.Pop()
}

// PeekValue returns the top semantic value without removing it.
func (a *Assembly) PeekValue() any {
	return a.stack.Peek()
}

// StackLen returns the number of values currently on the assembly's stack.
func (a *Assembly) StackLen() int {
	return a.stack.Len()
}

// StackEmpty reports whether the assembly's value stack has no values.
func (a *Assembly) StackEmpty() bool {
	return a.stack.Empty()
}

// Elements returns the stack's values, bottom first.
func (a *Assembly) Elements() []any {
	return a.stack.Elements()
}

// Clone returns an Assembly with the same remaining/consumed tokens and the
// same stack contents as a, but no shared mutable state: advancing or
// pushing on the clone never affects a. Matchers that try more than one
// alternative (Alternation, Repetition) clone the assembly before trying
// each branch.
func (a *Assembly) Clone() *Assembly {
	clone := &Assembly{
		remaining: make([]lex.Token, len(a.remaining)),
		consumed:  make([]lex.Token, len(a.consumed)),
		stack:     *a.stack.Clone(),
	}
	copy(clone.remaining, a.remaining)
	copy(clone.consumed, a.consumed)
	return clone
}

// ConsumedText renders the tokens consumed so far, space-separated, for use
// in Track's "After:" error field.
func (a *Assembly) ConsumedText() string {
	return joinTokens(a.consumed)
}

// RemainingText renders the tokens not yet consumed, space-separated, for
// use in Track's "Found:" error field.
func (a *Assembly) RemainingText() string {
	return joinTokens(a.remaining)
}

func joinTokens(toks []lex.Token) string {
	var out []byte
	for i, t := range toks {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, t.Value()...)
	}
	return string(out)
}
