package syntax

import (
	"strings"

	"github.com/dekarrin/logikus/lex"
	"github.com/dekarrin/logikus/parse"
)

// Parsing a Logikus source text builds up Term/Axiom values on the
// parse.Assembly's value stack as each grammar production matches; these
// AssemblerFuncs are what each production runs to turn the tokens it just
// consumed into the right value. Variable-arity productions (argument
// lists, list literals, rule bodies) use parse.PushFence/ElementsAbove to
// collect however many sub-terms were actually parsed.

var assembleNumber = parse.AssemblerFunc(func(a *parse.Assembly) {
	a.Push(&Number{Value: a.LastConsumed().Num})
})

// assembleWord handles a bare (unquoted) word token that is either a
// functor/atom name (starts lowercase) or a variable (starts uppercase, or
// is exactly "_").
var assembleWord = parse.AssemblerFunc(func(a *parse.Assembly) {
	text := a.LastConsumed().Text
	switch {
	case text == "_":
		a.Push(Term(NewAnonymousVariable()))
	case lex.StartsUpper(text):
		a.Push(Term(NewVariable(text)))
	default:
		a.Push(Term(NewAtom(text)))
	}
})

var assembleFunctorName = parse.AssemblerFunc(func(a *parse.Assembly) {
	a.Push(NewAtom(a.LastConsumed().Text))
})

var assembleVariable = parse.AssemblerFunc(func(a *parse.Assembly) {
	text := a.LastConsumed().Text
	if text == "_" {
		a.Push(Term(NewAnonymousVariable()))
		return
	}
	a.Push(Term(NewVariable(text)))
})

var assembleQuotedAtom = parse.AssemblerFunc(func(a *parse.Assembly) {
	a.Push(Term(NewAtom(unquote(a.LastConsumed().Text))))
})

func unquote(spelling string) string {
	if len(spelling) < 2 {
		return spelling
	}
	quote := spelling[:1]
	inner := spelling[1 : len(spelling)-1]
	return strings.ReplaceAll(inner, `\`+quote, quote)
}

// beginGroup marks the start of a variable-arity argument/element/body
// group, to be closed later by one of the assemblers below that calls
// parse.ElementsAbove.
var beginGroup = parse.AssemblerFunc(func(a *parse.Assembly) {
	parse.PushFence(a)
})

func asTerms(vals []any) []Term {
	terms := make([]Term, len(vals))
	for i, v := range vals {
		terms[i] = v.(Term)
	}
	return terms
}

// assembleStructureWithArgs builds a Structure from a functor atom
// (pushed before beginGroup ran) and the argument terms collected since.
var assembleStructureWithArgs = parse.AssemblerFunc(func(a *parse.Assembly) {
	args := asTerms(parse.ElementsAbove(a))
	functor := a.Pop().(*Structure)
	a.Push(Term(&Structure{Functor: functor.Functor, Args: args}))
})

var assembleList = parse.AssemblerFunc(func(a *parse.Assembly) {
	elems := asTerms(parse.ElementsAbove(a))
	a.Push(NewList(elems...))
})

var assembleListWithTail = parse.AssemblerFunc(func(a *parse.Assembly) {
	tail := a.Pop().(Term)
	elems := asTerms(parse.ElementsAbove(a))
	list := tail
	for i := len(elems) - 1; i >= 0; i-- {
		list = NewCons(elems[i], list)
	}
	a.Push(list)
})

func assembleArithmetic(op string) parse.AssemblerFunc {
	return func(a *parse.Assembly) {
		right := a.Pop().(Term)
		left := a.Pop().(Term)
		a.Push(Term(&Arithmetic{Operator: op, Left: left, Right: right}))
	}
}

func assembleComparison(op string) parse.AssemblerFunc {
	return func(a *parse.Assembly) {
		right := a.Pop().(Term)
		left := a.Pop().(Term)
		a.Push(Term(&Comparison{Operator: op, Left: left, Right: right}))
	}
}

var assembleEvaluation = parse.AssemblerFunc(func(a *parse.Assembly) {
	expr := a.Pop().(Term)
	result := a.Pop().(Term)
	a.Push(Term(&Evaluation{Result: result, Expr: expr}))
})

var assembleNot = parse.AssemblerFunc(func(a *parse.Assembly) {
	goal := a.Pop().(Term)
	a.Push(Term(&Not{Goal: goal}))
})

var assembleWrite = parse.AssemblerFunc(func(a *parse.Assembly) {
	args := asTerms(parse.ElementsAbove(a))
	a.Push(Term(&Write{Args: args}))
})

var assembleFact = parse.AssemblerFunc(func(a *parse.Assembly) {
	head := a.Pop().(Term).(*Structure)
	a.Push(Axiom(NewFact(head)))
})

var assembleRule = parse.AssemblerFunc(func(a *parse.Assembly) {
	body := asTerms(parse.ElementsAbove(a))
	head := a.Pop().(Term).(*Structure)
	a.Push(Axiom(NewRule(head, body)))
})
