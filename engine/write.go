package engine

import (
	"strconv"
	"strings"

	"github.com/dekarrin/logikus/syntax"
)

// writeNode proves a Write gateway goal: render each argument (after
// following its bindings as far as they go) and send the comma-joined
// result to the Listener. It succeeds exactly once, unless any argument is
// undefined (an unbound variable), in which case it fails instead.
type writeNode struct {
	term     *syntax.Write
	env      Bindings
	listener Listener
	done     bool
}

func newWriteNode(t *syntax.Write, env Bindings, listener Listener) *writeNode {
	return &writeNode{term: t, env: env, listener: listener}
}

func (n *writeNode) canFindNextProof() bool {
	if n.done {
		return false
	}
	n.done = true

	parts := make([]string, len(n.term.Args))
	for i, a := range n.term.Args {
		v, err := evalAny(a, n.env)
		if err != nil {
			return false
		}
		parts[i] = formatValue(v)
	}
	n.listener.Write(strings.Join(parts, ", "))
	return true
}

// formatValue renders an evalAny result the way write/N displays it: a
// number in the same spelling syntax.Number.String() uses, an atom as its
// bare text, and anything else (a resolved compound structure) using its
// own String().
func formatValue(v any) string {
	switch x := v.(type) {
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case string:
		return x
	case syntax.Term:
		return x.String()
	default:
		return ""
	}
}
