package parse

import (
	"github.com/dekarrin/logikus/lex"
	"github.com/dekarrin/logikus/logikuserr"
)

// Track wraps a grammar production with a commit point: once its trigger
// matcher succeeds, the parse has committed to this production, and every
// step added after that with Then must also succeed or a parse error is
// raised instead of the step simply failing silently the way an ordinary
// Matcher would. This is what turns "foo(a, b" (an unterminated argument
// list) into a reported parse error with a location, instead of a bare
// overall parse failure that gives no indication of where things went
// wrong.
//
// Track raises the error by panicking with a *logikuserr.ParseError; Run
// recovers it at the top of the grammar and turns it back into a normal
// returned error.
type Track struct {
	trigger Matcher
	steps   []trackStep
}

type trackStep struct {
	m        Matcher
	expected string
}

// NewTrack starts a Track whose commit point is trigger: if trigger itself
// doesn't match, the whole Track matcher simply fails, the same as any
// other Matcher, and the caller is free to try another alternative.
func NewTrack(trigger Matcher) *Track {
	return &Track{trigger: trigger}
}

// Then appends a step that must succeed once the Track has committed. If m
// fails to match, Track raises a parse error naming expected as the
// production that was required next.
func (t *Track) Then(m Matcher, expected string) *Track {
	steps := make([]trackStep, len(t.steps), len(t.steps)+1)
	copy(steps, t.steps)
	steps = append(steps, trackStep{m: m, expected: expected})
	return &Track{trigger: t.trigger, steps: steps}
}

func (t *Track) Match(a *Assembly) []*Assembly {
	cur := t.trigger.Match(a.Clone())
	if len(cur) == 0 {
		return nil
	}

	for _, step := range t.steps {
		var next []*Assembly
		for _, assy := range cur {
			next = append(next, step.m.Match(assy.Clone())...)
		}
		if len(next) == 0 {
			progress := cur[0]
			for _, assy := range cur[1:] {
				if len(assy.consumed) > len(progress.consumed) {
					progress = assy
				}
			}
			panic(logikuserr.Parse(progress.ConsumedText(), step.expected, progress.RemainingFirstText()))
		}
		cur = next
	}
	return cur
}

// RemainingFirstText returns the spelling of the next unconsumed token, or
// "" at end of input (Parse substitutes "-nothing-" for that case).
func (a *Assembly) RemainingFirstText() string {
	if a.AtEnd() {
		return ""
	}
	return a.Peek().Value()
}

// Run matches m against toks from the start and returns the resulting
// Assembly, or the error a Track inside m raised (or a generic parse error
// if nothing matched at all). If m matches in more than one way, the
// complete match (one that consumed every token) that consumed the most
// tokens is preferred; this is the "best match" rule the grammar's
// Repetition and Alternation uses rely on.
func Run(m Matcher, toks []lex.Token) (*Assembly, error) {
	var results []*Assembly
	err := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				if pe, ok := r.(*logikuserr.ParseError); ok {
					err = pe
					return
				}
				panic(r)
			}
		}()
		results = m.Match(NewAssembly(toks))
		return nil
	}()
	if err != nil {
		return nil, err
	}

	best := BestMatch(CompleteMatches(results))
	if best == nil {
		best = BestMatch(results)
	}
	if best == nil {
		return nil, logikuserr.Parse("", "a valid Logikus clause", firstText(toks))
	}
	if !best.AtEnd() {
		return nil, logikuserr.Parse(best.ConsumedText(), "end of clause", best.RemainingFirstText())
	}
	return best, nil
}

func firstText(toks []lex.Token) string {
	if len(toks) == 0 {
		return ""
	}
	return toks[0].Value()
}
