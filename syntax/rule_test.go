package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Rule_Equal_SameHeadAndBody(t *testing.T) {
	x := NewVariable("X")
	r1 := NewRule(NewStructure("parent", x), []Term{NewStructure("father", x)})
	r2 := NewRule(NewStructure("parent", NewVariable("X")), []Term{NewStructure("father", NewVariable("X"))})
	assert.True(t, r1.Equal(r2))
	assert.True(t, r2.Equal(r1))
}

// Test_Rule_Equal_DifferentBodyLength pins the corrected length check: two
// rules whose bodies differ only in length (one a strict prefix of the
// other) must never compare equal, regardless of which one Equal is called
// on.
func Test_Rule_Equal_DifferentBodyLength(t *testing.T) {
	x := NewVariable("X")
	short := NewRule(NewStructure("p", x), []Term{NewStructure("a", x)})
	long := NewRule(NewStructure("p", x), []Term{NewStructure("a", x), NewStructure("b", x)})

	assert.False(t, short.Equal(long))
	assert.False(t, long.Equal(short))
}

func Test_Rule_Equal_DifferentBodyContent(t *testing.T) {
	x := NewVariable("X")
	r1 := NewRule(NewStructure("p", x), []Term{NewStructure("a", x)})
	r2 := NewRule(NewStructure("p", x), []Term{NewStructure("b", x)})
	assert.False(t, r1.Equal(r2))
}

func Test_Rule_Equal_NotARule(t *testing.T) {
	r := NewRule(NewStructure("p"), []Term{NewStructure("q")})
	f := NewFact(NewStructure("p"))
	assert.False(t, r.Equal(f))
}

func Test_Rule_String(t *testing.T) {
	x := NewVariable("X")
	r := NewRule(NewStructure("ancestor", x), []Term{NewStructure("parent", x)})
	assert.Equal(t, "ancestor(X) :- parent(X).", r.String())
}

func Test_Fact_String(t *testing.T) {
	f := NewFact(NewStructure("likes", NewAtom("wallace"), NewAtom("cheese")))
	assert.Equal(t, "likes(wallace, cheese).", f.String())
}

func Test_Rule_Variables_DeduplicatesByName(t *testing.T) {
	x := NewVariable("X")
	r := NewRule(NewStructure("p", x), []Term{NewStructure("q", x, NewVariable("Y"))})
	vars := r.Variables()
	names := make([]string, len(vars))
	for i, v := range vars {
		names[i] = v.Name
	}
	assert.Equal(t, []string{"X", "Y"}, names)
}
