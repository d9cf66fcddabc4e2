package logikus_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dekarrin/logikus"
)

func Test_ParseProgram_SplitsOnSemicolons(t *testing.T) {
	p, err := logikus.ParseProgram("parent(tom, bob).; parent(tom, liz).")
	require.NoError(t, err)
	assert.Len(t, p.Axioms(), 2)
}

func Test_NewQuery_FindsSolution(t *testing.T) {
	p, err := logikus.ParseProgram("likes(wallace, cheese).")
	require.NoError(t, err)

	q, err := logikus.NewQuery("likes(wallace, X).", p)
	require.NoError(t, err)

	bindings, ok := q.Next()
	require.True(t, ok)
	assert.Equal(t, "cheese", bindings["X"].String())
}

func Test_NewQuery_WithListener_ReceivesWriteEvents(t *testing.T) {
	p, err := logikus.ParseProgram("greet(X) :- write('hi ', X).")
	require.NoError(t, err)

	var sb strings.Builder
	listener := logikus.NewTraceListener(&sb)

	q, err := logikus.NewQuery("greet(gromit).", p, logikus.WithListener(listener))
	require.NoError(t, err)

	_, ok := q.Next()
	require.True(t, ok)
	assert.Contains(t, sb.String(), "write:")
	assert.Contains(t, sb.String(), "gromit")
}

func Test_ParseAxiom_ReturnsUsableAxiom(t *testing.T) {
	ax, err := logikus.ParseAxiom("likes(wallace, cheese).")
	require.NoError(t, err)
	assert.Equal(t, "likes", ax.Head().Functor)
}

func Test_ParseProgram_PropagatesParseError(t *testing.T) {
	_, err := logikus.ParseProgram("foo(a, b.")
	assert.Error(t, err)
}
