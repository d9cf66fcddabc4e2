package engine

import "github.com/dekarrin/logikus/syntax"

// comparisonNode proves a Comparison gateway goal: it evaluates both sides
// and checks the named relation. Like every gateway, it can prove itself
// at most once per entry — there is no other way for X < 3 to succeed a
// second time on backtracking.
type comparisonNode struct {
	term *syntax.Comparison
	env  Bindings
	done bool
}

func newComparisonNode(t *syntax.Comparison, env Bindings) *comparisonNode {
	return &comparisonNode{term: t, env: env}
}

func (n *comparisonNode) canFindNextProof() bool {
	if n.done {
		return false
	}
	n.done = true

	left, err := evalAny(n.term.Left, n.env)
	if err != nil {
		return false
	}
	right, err := evalAny(n.term.Right, n.env)
	if err != nil {
		return false
	}

	switch l := left.(type) {
	case float64:
		r, ok := right.(float64)
		if !ok {
			return false
		}
		return compareNumbers(n.term.Operator, l, r)
	case string:
		r, ok := right.(string)
		if !ok {
			return false
		}
		return compareStrings(n.term.Operator, l, r)
	default:
		return false
	}
}

func compareNumbers(op string, l, r float64) bool {
	switch op {
	case "<":
		return l < r
	case ">":
		return l > r
	case "=":
		return l == r
	case "<=":
		return l <= r
	case ">=":
		return l >= r
	case "!=":
		return l != r
	default:
		return false
	}
}

func compareStrings(op string, l, r string) bool {
	switch op {
	case "<":
		return l < r
	case ">":
		return l > r
	case "=":
		return l == r
	case "<=":
		return l <= r
	case ">=":
		return l >= r
	case "!=":
		return l != r
	default:
		return false
	}
}
