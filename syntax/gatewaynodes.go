package syntax

import "strings"

// Arithmetic is the static shape of an arithmetic expression, e.g. X + 1 or
// (A * B) - 1. It is itself a Term so it can appear as an argument of an
// Evaluation's right-hand side or be nested inside another Arithmetic; the
// engine package's eval() walks it to produce a Number at proof time.
type Arithmetic struct {
	Operator string // "+", "-", "*", "/", "%"
	Left     Term
	Right    Term
}

func (*Arithmetic) termNode() {}

func (a *Arithmetic) String() string {
	return "(" + a.Left.String() + " " + a.Operator + " " + a.Right.String() + ")"
}

// Comparison is a goal of the form op(Left, Right), e.g. <(X, 3) or
// !=(A, B). It is a gateway term: when it is the current goal in a
// resolvent, the engine proves it directly by evaluating both sides and
// comparing, rather than unifying it against clauses in a Program.
type Comparison struct {
	Operator string // "<", ">", "=", "<=", ">=", "!="
	Left     Term
	Right    Term
}

func (*Comparison) termNode() {}

func (c *Comparison) String() string {
	return c.Operator + "(" + c.Left.String() + ", " + c.Right.String() + ")"
}

// Evaluation is the "#" gateway goal: #(Result, Expr). Proving it evaluates
// Expr to a Number and unifies the result with Result.
type Evaluation struct {
	Result Term
	Expr   Term
}

func (*Evaluation) termNode() {}

func (e *Evaluation) String() string {
	return "#(" + e.Result.String() + ", " + e.Expr.String() + ")"
}

// Write is the write/N gateway goal: proving it renders each of Args (after
// following any bindings) and sends the result to the query's Listener,
// then succeeds exactly once.
type Write struct {
	Args []Term
}

func (*Write) termNode() {}

func (w *Write) String() string {
	parts := make([]string, len(w.Args))
	for i, a := range w.Args {
		parts[i] = a.String()
	}
	return "write(" + strings.Join(parts, ", ") + ")"
}

// Not is the not/1 negation-as-failure gateway goal: proving Goal succeeds
// exactly once, with no bindings retained, if and only if Goal itself has
// no proof.
type Not struct {
	Goal Term
}

func (*Not) termNode() {}

func (n *Not) String() string {
	return "not(" + n.Goal.String() + ")"
}
