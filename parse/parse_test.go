package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/logikus/lex"
)

func TestTerminal_Literal(t *testing.T) {
	toks := lex.New("foo bar").All()
	m := Literal("foo")
	results := m.Match(NewAssembly(toks))
	if assert.Len(t, results, 1) {
		assert.Equal(t, "bar", results[0].Peek().Value())
	}
}

func TestSequence(t *testing.T) {
	toks := lex.New("( X )").All()
	m := Seq(Symbol("("), UppercaseWord(), Symbol(")"))
	results := m.Match(NewAssembly(toks))
	if assert.Len(t, results, 1) {
		assert.True(t, results[0].AtEnd())
	}
}

func TestAlternation(t *testing.T) {
	toks := lex.New("foo").All()
	m := Alt(Literal("bar"), Literal("foo"))
	results := m.Match(NewAssembly(toks))
	assert.Len(t, results, 1)
}

func TestRepetition_Fence(t *testing.T) {
	toks := lex.New("a, b, c").All()
	collectWord := AssemblerFunc(func(a *Assembly) {
		a.Push(a.consumed[len(a.consumed)-1].Value())
	})
	elem := Seq(LowercaseWord().WithAssembler(collectWord))
	rep := Rep(Seq(Symbol(","), elem))

	a := NewAssembly(toks)
	PushFence(a)
	first := elem.Match(a)
	if !assert.Len(t, first, 1) {
		return
	}
	results := rep.Match(first[0])
	best := BestMatch(results)
	if assert.NotNil(t, best) {
		elems := ElementsAbove(best)
		assert.Equal(t, []any{"a", "b", "c"}, elems)
	}
}

func TestTrack_RaisesParseError(t *testing.T) {
	toks := lex.New("foo(a, b").All()
	open := Symbol("(")
	closeParen := Symbol(")")
	tr := NewTrack(Seq(LowercaseWord(), open)).
		Then(LowercaseWord(), "an argument").
		Then(Symbol(","), "','").
		Then(LowercaseWord(), "an argument").
		Then(closeParen, "a closing ')'")

	defer func() {
		r := recover()
		if assert.NotNil(t, r) {
			_, ok := r.(interface{ Error() string })
			assert.True(t, ok)
		}
	}()
	tr.Match(NewAssembly(toks))
}
