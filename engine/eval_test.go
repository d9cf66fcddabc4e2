package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dekarrin/logikus/syntax"
)

func Test_Eval_Arithmetic(t *testing.T) {
	cases := []struct {
		name string
		expr syntax.Term
		want float64
	}{
		{"add", &syntax.Arithmetic{Operator: "+", Left: &syntax.Number{Value: 2}, Right: &syntax.Number{Value: 3}}, 5},
		{"sub", &syntax.Arithmetic{Operator: "-", Left: &syntax.Number{Value: 5}, Right: &syntax.Number{Value: 3}}, 2},
		{"mul", &syntax.Arithmetic{Operator: "*", Left: &syntax.Number{Value: 4}, Right: &syntax.Number{Value: 3}}, 12},
		{"div", &syntax.Arithmetic{Operator: "/", Left: &syntax.Number{Value: 7}, Right: &syntax.Number{Value: 2}}, 3.5},
		{"floorDivMod", &syntax.Arithmetic{Operator: "%", Left: &syntax.Number{Value: 7}, Right: &syntax.Number{Value: 2}}, 3},
		{"floorDivModNegative", &syntax.Arithmetic{Operator: "%", Left: &syntax.Number{Value: -7}, Right: &syntax.Number{Value: 2}}, -4},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := eval(c.expr, make(Bindings))
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func Test_Eval_DivisionByZero(t *testing.T) {
	_, err := eval(&syntax.Arithmetic{Operator: "/", Left: &syntax.Number{Value: 1}, Right: &syntax.Number{Value: 0}}, make(Bindings))
	assert.Error(t, err)
}

func Test_Eval_ModuloByZero(t *testing.T) {
	_, err := eval(&syntax.Arithmetic{Operator: "%", Left: &syntax.Number{Value: 1}, Right: &syntax.Number{Value: 0}}, make(Bindings))
	assert.Error(t, err)
}

func Test_Eval_UnboundVariableErrors(t *testing.T) {
	_, err := eval(syntax.NewVariable("X"), make(Bindings))
	assert.Error(t, err)
}

func Test_Eval_BoundVariableFollowsBinding(t *testing.T) {
	env := make(Bindings)
	x := syntax.NewVariable("X")
	env[x] = &syntax.Number{Value: 9}

	got, err := eval(x, env)
	require.NoError(t, err)
	assert.Equal(t, 9.0, got)
}

func Test_Eval_NonNumericTermErrors(t *testing.T) {
	_, err := eval(syntax.NewAtom("foo"), make(Bindings))
	assert.Error(t, err)
}
