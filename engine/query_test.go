package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dekarrin/logikus/syntax"
)

func mustAxiom(t *testing.T, text string) syntax.Axiom {
	t.Helper()
	ax, err := syntax.ParseAxiom(text)
	require.NoError(t, err)
	return ax
}

func mustGoals(t *testing.T, text string) []syntax.Term {
	t.Helper()
	goals, err := syntax.ParseQuery(text)
	require.NoError(t, err)
	return goals
}

func familyProgram(t *testing.T) *Program {
	p := NewProgram()
	for _, src := range []string{
		"parent(tom, bob).",
		"parent(tom, liz).",
		"parent(bob, ann).",
		"parent(bob, pat).",
		"grandparent(X, Z) :- parent(X, Y), parent(Y, Z).",
	} {
		p.Add(mustAxiom(t, src))
	}
	return p
}

func Test_Query_EnumeratesAllMatchingFacts(t *testing.T) {
	p := familyProgram(t)
	q := NewQuery(p, mustGoals(t, "parent(tom, X)."), nil)

	var got []string
	for {
		bindings, ok := q.Next()
		if !ok {
			break
		}
		got = append(got, bindings["X"].String())
	}
	assert.Equal(t, []string{"bob", "liz"}, got)
	assert.True(t, q.Done())
}

func Test_Query_BacktracksThroughMultipleClauseLevels(t *testing.T) {
	p := familyProgram(t)
	q := NewQuery(p, mustGoals(t, "grandparent(tom, X)."), nil)

	var got []string
	for {
		bindings, ok := q.Next()
		if !ok {
			break
		}
		got = append(got, bindings["X"].String())
	}
	assert.Equal(t, []string{"ann", "pat"}, got)
}

func Test_Query_NoSolutionReturnsFalseImmediately(t *testing.T) {
	p := familyProgram(t)
	q := NewQuery(p, mustGoals(t, "parent(ann, X)."), nil)

	_, ok := q.Next()
	assert.False(t, ok)
	assert.True(t, q.Done())
}

func Test_Query_FurtherCallsAfterExhaustionStayFalse(t *testing.T) {
	p := familyProgram(t)
	q := NewQuery(p, mustGoals(t, "parent(bob, ann)."), nil)

	_, ok := q.Next()
	assert.True(t, ok)
	_, ok = q.Next()
	assert.False(t, ok)
	_, ok = q.Next()
	assert.False(t, ok)
}

func Test_Query_NegationAsFailure(t *testing.T) {
	p := familyProgram(t)
	p.Add(mustAxiom(t, "childless(X) :- parent(_, X), not parent(X, _)."))
	q := NewQuery(p, mustGoals(t, "childless(ann)."), nil)

	_, ok := q.Next()
	assert.True(t, ok)
}

func Test_Query_ArithmeticAndComparison(t *testing.T) {
	p := NewProgram()
	p.Add(mustAxiom(t, "double(X, Y) :- #(Y, X * 2)."))
	p.Add(mustAxiom(t, "bigEnough(X) :- double(X, Y), >=(Y, 10)."))

	q := NewQuery(p, mustGoals(t, "bigEnough(6)."), nil)
	_, ok := q.Next()
	assert.True(t, ok)

	q2 := NewQuery(p, mustGoals(t, "bigEnough(2)."), nil)
	_, ok = q2.Next()
	assert.False(t, ok)
}

func Test_Query_ListUnification(t *testing.T) {
	p := NewProgram()
	p.Add(mustAxiom(t, "firstOf([H | _], H)."))

	q := NewQuery(p, mustGoals(t, "firstOf([a, b, c], X)."), nil)
	bindings, ok := q.Next()
	require.True(t, ok)
	assert.Equal(t, "a", bindings["X"].String())
}

func Test_Query_WriteReportsToListener(t *testing.T) {
	p := NewProgram()
	p.Add(mustAxiom(t, "greet(X) :- write('hello, ', X)."))
	listener := &recordingListener{}

	q := NewQuery(p, mustGoals(t, "greet(wallace)."), listener)
	_, ok := q.Next()
	assert.True(t, ok)
	assert.Equal(t, []string{"hello, , wallace"}, listener.writes)
}

func Test_Query_ClauseAttemptReportedForEachCandidate(t *testing.T) {
	p := familyProgram(t)
	listener := &recordingListener{}

	q := NewQuery(p, mustGoals(t, "parent(tom, liz)."), listener)
	_, ok := q.Next()
	assert.True(t, ok)
	assert.True(t, listener.attempts > 0)
}

func Test_Program_Consult(t *testing.T) {
	p := NewProgram()
	require.NoError(t, p.Consult("likes(wallace, cheese)."))
	assert.Len(t, p.Axioms(), 1)
}

func Test_Program_Query(t *testing.T) {
	p := NewProgram()
	require.NoError(t, p.Consult("likes(wallace, cheese)."))

	q, err := p.Query("likes(wallace, cheese).", nil)
	require.NoError(t, err)
	_, ok := q.Next()
	assert.True(t, ok)
}
