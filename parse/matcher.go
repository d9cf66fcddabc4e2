package parse

// Matcher is implemented by every element of the combinator library: a
// single terminal, or a composite built from other Matchers. Match returns
// every Assembly that results from a successful match starting at a; a nil
// (or empty) result means the match failed. Grammars built from Matchers
// are therefore inherently non-deterministic — Alternation and Repetition
// both potentially return more than one result, and the grammar driver is
// responsible for picking the single "best" or "complete" one (see best.go).
type Matcher interface {
	Match(a *Assembly) []*Assembly
}
