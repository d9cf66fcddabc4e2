package engine

import (
	"math"

	"github.com/dekarrin/logikus/logikuserr"
	"github.com/dekarrin/logikus/syntax"
)

// eval reduces an arithmetic term to a float64, following variable
// bindings as it goes. It returns a *logikuserr.EvalError, never a panic,
// for an unbound variable, a non-numeric operand, or division by zero; the
// gateway that called eval is responsible for treating that as its own
// failure rather than letting the error propagate past the engine.
func eval(t syntax.Term, env Bindings) (float64, error) {
	t = Deref(t, env)
	switch v := t.(type) {
	case *syntax.Number:
		return v.Value, nil
	case *syntax.Variable:
		return 0, logikuserr.Evalf("%s is unbound", v.Name)
	case *syntax.Arithmetic:
		left, err := eval(v.Left, env)
		if err != nil {
			return 0, err
		}
		right, err := eval(v.Right, env)
		if err != nil {
			return 0, err
		}
		return applyOperator(v.Operator, left, right)
	default:
		return 0, logikuserr.Evalf("%s is not a number", t.String())
	}
}

// evalAny reduces t to the value it represents for comparison and write
// purposes: a float64 for a number or arithmetic expression, or a string
// for an atom. A non-atomic structure can't be reduced to either, so it
// resolves its bindings and returns itself unchanged, mirroring how a
// structure's own eval only unwraps down to a functor when it is atomic.
// The only failure case is an unbound variable.
func evalAny(t syntax.Term, env Bindings) (any, error) {
	d := Deref(t, env)
	switch v := d.(type) {
	case *syntax.Number:
		return v.Value, nil
	case *syntax.Variable:
		return nil, logikuserr.Evalf("%s is unbound", v.Name)
	case *syntax.Arithmetic:
		return eval(v, env)
	case *syntax.Structure:
		if v.IsAtom() {
			return v.Functor, nil
		}
		return Resolve(v, env), nil
	default:
		return nil, logikuserr.Evalf("%s has no value", d.String())
	}
}

// applyOperator implements the four arithmetic operators plus '%', which
// is integer floor division, not remainder — preserved exactly as the
// source this engine is ported from defines it.
func applyOperator(op string, left, right float64) (float64, error) {
	switch op {
	case "+":
		return left + right, nil
	case "-":
		return left - right, nil
	case "*":
		return left * right, nil
	case "/":
		if right == 0 {
			return 0, logikuserr.Eval("division by zero")
		}
		return left / right, nil
	case "%":
		if right == 0 {
			return 0, logikuserr.Eval("division by zero")
		}
		return math.Floor(left / right), nil
	default:
		return 0, logikuserr.Evalf("unknown arithmetic operator %q", op)
	}
}
