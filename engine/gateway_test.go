package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dekarrin/logikus/syntax"
)

func Test_ComparisonNode_SucceedsOnceThenFails(t *testing.T) {
	env := make(Bindings)
	term := &syntax.Comparison{Operator: "<", Left: &syntax.Number{Value: 1}, Right: &syntax.Number{Value: 2}}
	n := newComparisonNode(term, env)

	assert.True(t, n.canFindNextProof())
	assert.False(t, n.canFindNextProof())
}

func Test_ComparisonNode_FailsOnUnboundOperand(t *testing.T) {
	env := make(Bindings)
	term := &syntax.Comparison{Operator: "<", Left: syntax.NewVariable("X"), Right: &syntax.Number{Value: 2}}
	n := newComparisonNode(term, env)

	assert.False(t, n.canFindNextProof())
}

func Test_ComparisonNode_ComparesAtomsLexicographically(t *testing.T) {
	env := make(Bindings)
	term := &syntax.Comparison{Operator: "<", Left: syntax.NewAtom("abe"), Right: syntax.NewAtom("bob")}
	n := newComparisonNode(term, env)

	assert.True(t, n.canFindNextProof())
}

func Test_ComparisonNode_EqualsOperatorOnAtoms(t *testing.T) {
	env := make(Bindings)
	term := &syntax.Comparison{Operator: "=", Left: syntax.NewAtom("foo"), Right: syntax.NewAtom("foo")}
	n := newComparisonNode(term, env)

	assert.True(t, n.canFindNextProof())
}

func Test_ComparisonNode_FailsOnMismatchedTypes(t *testing.T) {
	env := make(Bindings)
	term := &syntax.Comparison{Operator: "=", Left: syntax.NewAtom("foo"), Right: &syntax.Number{Value: 1}}
	n := newComparisonNode(term, env)

	assert.False(t, n.canFindNextProof())
}

func Test_EvaluationNode_BindsResult(t *testing.T) {
	env := make(Bindings)
	trail := NewTrail(env)
	result := syntax.NewVariable("Y")
	term := &syntax.Evaluation{Result: result, Expr: &syntax.Arithmetic{Operator: "*", Left: &syntax.Number{Value: 3}, Right: &syntax.Number{Value: 4}}}
	n := newEvaluationNode(term, env, trail)

	assert.True(t, n.canFindNextProof())
	assert.Equal(t, 12.0, Deref(result, env).(*syntax.Number).Value)
	assert.False(t, n.canFindNextProof())
}

func Test_EvaluationNode_ResultAlreadyBoundMustMatch(t *testing.T) {
	env := make(Bindings)
	trail := NewTrail(env)
	result := &syntax.Number{Value: 99}
	term := &syntax.Evaluation{Result: result, Expr: &syntax.Number{Value: 12}}
	n := newEvaluationNode(term, env, trail)

	assert.False(t, n.canFindNextProof())
}

type recordingListener struct {
	writes   []string
	attempts int
}

func (l *recordingListener) ClauseAttempt(goal, head *syntax.Structure, ok bool) { l.attempts++ }
func (l *recordingListener) Write(s string)                                     { l.writes = append(l.writes, s) }

func Test_WriteNode_ResolvesBindingsAndReportsToListener(t *testing.T) {
	env := make(Bindings)
	x := syntax.NewVariable("X")
	env[x] = syntax.NewAtom("cheese")
	listener := &recordingListener{}

	term := &syntax.Write{Args: []syntax.Term{syntax.NewAtom("likes"), x}}
	n := newWriteNode(term, env, listener)

	assert.True(t, n.canFindNextProof())
	assert.Equal(t, []string{"likes, cheese"}, listener.writes)
	assert.False(t, n.canFindNextProof())
}

func Test_WriteNode_FailsOnUnboundVariable(t *testing.T) {
	env := make(Bindings)
	x := syntax.NewVariable("X")
	listener := &recordingListener{}

	term := &syntax.Write{Args: []syntax.Term{syntax.NewAtom("likes"), x}}
	n := newWriteNode(term, env, listener)

	assert.False(t, n.canFindNextProof())
	assert.Empty(t, listener.writes)
}

func Test_NotNode_SucceedsWhenInnerGoalHasNoProof(t *testing.T) {
	env := make(Bindings)
	trail := NewTrail(env)
	prog := NewProgram()
	goal := syntax.NewStructure("married", syntax.NewAtom("wallace"))

	n := newNotNode(&syntax.Not{Goal: goal}, env, trail, prog, NopListener{})
	assert.True(t, n.canFindNextProof())
}

func Test_NotNode_FailsWhenInnerGoalHasAProof(t *testing.T) {
	env := make(Bindings)
	trail := NewTrail(env)
	prog := NewProgram()
	prog.Add(syntax.NewFact(syntax.NewStructure("married", syntax.NewAtom("wallace"))))
	goal := syntax.NewStructure("married", syntax.NewAtom("wallace"))

	n := newNotNode(&syntax.Not{Goal: goal}, env, trail, prog, NopListener{})
	assert.False(t, n.canFindNextProof())
}

func Test_NotNode_DoesNotLeakBindingsMadeWhileProvingInnerGoal(t *testing.T) {
	env := make(Bindings)
	trail := NewTrail(env)
	prog := NewProgram()
	x := syntax.NewVariable("X")
	prog.Add(syntax.NewFact(syntax.NewStructure("married", syntax.NewAtom("wallace"))))
	goal := syntax.NewStructure("married", x)

	n := newNotNode(&syntax.Not{Goal: goal}, env, trail, prog, NopListener{})
	assert.False(t, n.canFindNextProof())
	_, bound := env[x]
	assert.False(t, bound)
}
