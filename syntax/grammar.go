package syntax

import "github.com/dekarrin/logikus/parse"

// GoalList is the semantic value of a parsed comma-separated run of goals:
// a rule's body, or a query. It is not itself a Term — a rule's Body is
// just a []Term — this type only exists to carry the parsed goals off of
// the parse.Assembly's stack and back to a caller.
type GoalList struct {
	Goals []Term
}

var assembleGoalList = parse.AssemblerFunc(func(a *parse.Assembly) {
	a.Push(&GoalList{Goals: asTerms(parse.ElementsAbove(a))})
})

// The grammar below is built from the parse combinator library by
// functions that construct a fresh matcher tree on each call. Productions
// that are mutually recursive (a term can contain a list, a structure, or a
// parenthesized arithmetic expression, each of which contains terms) go
// through parse.Lazy so that building a production does not recurse
// forever.

var (
	numberTerm = parse.Num().WithAssembler(assembleNumber)
	variable   = parse.UppercaseWord().WithAssembler(assembleVariable)
	quotedAtom = parse.QuotedString().WithAssembler(assembleQuotedAtom)

	// functorName matches any of the three spellings a functor/atom can
	// take: the bare "." that also names the empty list, a lowercase word,
	// or a quoted string.
	functorName = parse.Alt(
		parse.Symbol(".").WithAssembler(assembleFunctorName),
		parse.LowercaseWord().WithAssembler(assembleFunctorName),
		parse.QuotedString().WithAssembler(assembleQuotedAtom),
	)
)

func arithExpr() parse.Matcher {
	return Seq(primary(), parse.Rep(arithStep()))
}

func arithStep() parse.Matcher {
	return parse.Alt(
		Seq(parse.Symbol("+"), primary(), parse.Do(assembleArithmetic("+"))),
		Seq(parse.Symbol("-"), primary(), parse.Do(assembleArithmetic("-"))),
		Seq(parse.Symbol("*"), primary(), parse.Do(assembleArithmetic("*"))),
		Seq(parse.Symbol("/"), primary(), parse.Do(assembleArithmetic("/"))),
		Seq(parse.Symbol("%"), primary(), parse.Do(assembleArithmetic("%"))),
	)
}

// primary is the base case of an arithmetic expression and the entry point
// for any bare term. Its two structurally-recursive alternatives (a list
// can contain terms; a structure's arguments are terms) are wrapped in
// parse.Lazy so that building this function's Alt doesn't itself recurse
// forever: list() and structureOrAtom() both eventually call back into
// term()/arithExpr(), which calls primary() again.
func primary() parse.Matcher {
	return parse.Alt(
		numberTerm,
		quotedAtom,
		parse.NewLazy(list),
		variable,
		parse.NewLazy(structureOrAtom),
		Seq(parse.Symbol("("), parse.NewLazy(arithExpr), parse.Symbol(")")),
	)
}

func term() parse.Matcher {
	return arithExpr()
}

// Seq is a small shim so grammar productions read as ordinary calls to
// parse.Seq without every site needing the package-qualified name.
func Seq(elements ...parse.Matcher) parse.Matcher {
	return parse.Seq(elements...)
}

func argList() parse.Matcher {
	return Seq(term(), parse.Rep(Seq(parse.Symbol(","), term())))
}

func structureOrAtom() parse.Matcher {
	withArgs := Seq(
		parse.NewTrack(Seq(functorName, parse.Do(beginGroup), parse.Symbol("("))).
			Then(argList(), "an argument").
			Then(parse.Symbol(")"), "a closing ')'"),
		parse.Do(assembleStructureWithArgs),
	)
	return parse.Alt(withArgs, functorName)
}

func listBody() parse.Matcher {
	return Seq(parse.Do(beginGroup), term(), parse.Rep(Seq(parse.Symbol(","), term())))
}

func list() parse.Matcher {
	withTail := Seq(
		parse.Symbol("["), listBody(), parse.Symbol("|"), term(),
		parse.NewTrack(parse.Symbol("]")).Then(parse.Empty{}, "a closing ']'"),
		parse.Do(assembleListWithTail),
	)
	withElements := Seq(
		parse.Symbol("["), listBody(),
		parse.NewTrack(parse.Symbol("]")).Then(parse.Empty{}, "a closing ']'"),
		parse.Do(assembleList),
	)
	empty := Seq(parse.Symbol("["), parse.Do(beginGroup), parse.Symbol("]"), parse.Do(assembleList))
	return parse.Alt(withTail, withElements, empty)
}

func comparisonOps() []string {
	return []string{"<", ">", "=", "<=", ">=", "!="}
}

// comparisonGoal matches the prefix function-call form an operator takes
// as a goal, e.g. >=(X, 3) or !=(A, B), never the infix spelling.
func comparisonGoal() parse.Matcher {
	var alts []parse.Matcher
	for _, op := range comparisonOps() {
		alts = append(alts, Seq(
			parse.NewTrack(Seq(parse.Symbol(op), parse.Symbol("("))).
				Then(term(), "an argument").
				Then(parse.Symbol(","), "a ','").
				Then(term(), "an argument").
				Then(parse.Symbol(")"), "a closing ')'"),
			parse.Do(assembleComparison(op)),
		))
	}
	return parse.Alt(alts...)
}

// evaluationGoal matches the "#" arithmetic-evaluation gateway, #(Result,
// Expr), the prefix spelling the grammar uses instead of an infix "is".
func evaluationGoal() parse.Matcher {
	return Seq(
		parse.NewTrack(Seq(parse.Symbol("#"), parse.Symbol("("))).
			Then(term(), "an argument").
			Then(parse.Symbol(","), "a ','").
			Then(term(), "an argument").
			Then(parse.Symbol(")"), "a closing ')'"),
		parse.Do(assembleEvaluation),
	)
}

// notGoal matches "not" followed by a bare structure; the structure
// production already handles its own optional parenthesized argument list,
// so no enclosing parens are added here.
func notGoal() parse.Matcher {
	return Seq(
		parse.NewTrack(parse.Literal("not")).
			Then(structureOrAtom(), "a structure"),
		parse.Do(assembleNot),
	)
}

func writeGoal() parse.Matcher {
	return Seq(
		parse.NewTrack(Seq(parse.Literal("write"), parse.Do(beginGroup), parse.Symbol("("))).
			Then(argList(), "an argument").
			Then(parse.Symbol(")"), "a closing ')'"),
		parse.Do(assembleWrite),
	)
}

func goal() parse.Matcher {
	return parse.Alt(
		comparisonGoal(),
		evaluationGoal(),
		notGoal(),
		writeGoal(),
		structureOrAtom(),
	)
}

func goalSeries() parse.Matcher {
	return Seq(parse.Do(beginGroup), goal(), parse.Rep(Seq(parse.Symbol(","), goal())))
}

func ruleAxiom() parse.Matcher {
	return Seq(
		structureOrAtom(), parse.Symbol(":-"), goalSeries(),
		parse.Alt(parse.Symbol("."), parse.Empty{}),
		parse.Do(assembleRule),
	)
}

func factAxiom() parse.Matcher {
	return Seq(
		structureOrAtom(),
		parse.Alt(parse.Symbol("."), parse.Empty{}),
		parse.Do(assembleFact),
	)
}

func axiomMatcher() parse.Matcher {
	return parse.Alt(ruleAxiom(), factAxiom())
}

func queryMatcher() parse.Matcher {
	return Seq(goalSeries(), parse.Alt(parse.Symbol("."), parse.Empty{}), parse.Do(assembleGoalList))
}
