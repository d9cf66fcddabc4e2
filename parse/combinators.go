package parse

// Empty matches without consuming any input. It is mostly useful as the
// base case of a Repetition, or as one branch of an Alternation that allows
// its subject to be entirely absent.
type Empty struct{}

func (Empty) Match(a *Assembly) []*Assembly {
	return []*Assembly{a}
}

// Sequence matches each of its Matchers in order against the same assembly,
// threading the result of one into the next. It fails as soon as any
// element fails.
type Sequence struct {
	elements []Matcher
}

// Seq builds a Sequence of the given Matchers.
func Seq(elements ...Matcher) *Sequence {
	return &Sequence{elements: elements}
}

func (s *Sequence) Match(a *Assembly) []*Assembly {
	cur := []*Assembly{a}
	for _, m := range s.elements {
		var next []*Assembly
		for _, assy := range cur {
			next = append(next, m.Match(assy)...)
		}
		if len(next) == 0 {
			return nil
		}
		cur = next
	}
	return cur
}

// Alternation tries each of its Matchers against the same starting assembly
// and returns the union of every successful result.
type Alternation struct {
	elements []Matcher
}

// Alt builds an Alternation of the given Matchers.
func Alt(elements ...Matcher) *Alternation {
	return &Alternation{elements: elements}
}

func (alt *Alternation) Match(a *Assembly) []*Assembly {
	var out []*Assembly
	for _, m := range alt.elements {
		out = append(out, m.Match(a.Clone())...)
	}
	return out
}

// Repetition matches its subject zero or more times, greedily: each
// successful match is fed back in as the start of the next attempt, and
// every intermediate result (including zero repetitions) is part of the
// returned set, so a caller picking the "most complete" result gets the
// longest repetition and a caller picking "any" result still accepts zero
// repetitions.
type Repetition struct {
	subject Matcher
}

// Rep builds a Repetition of subject.
func Rep(subject Matcher) *Repetition {
	return &Repetition{subject: subject}
}

func (r *Repetition) Match(a *Assembly) []*Assembly {
	out := []*Assembly{a}
	frontier := []*Assembly{a}
	for len(frontier) > 0 {
		var next []*Assembly
		for _, assy := range frontier {
			for _, res := range r.subject.Match(assy.Clone()) {
				next = append(next, res)
			}
		}
		if len(next) == 0 {
			break
		}
		out = append(out, next...)
		frontier = next
	}
	return out
}
