package parse

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dekarrin/logikus/lex"
)

// Terminal matches a single token against a qualifying predicate, and
// optionally runs an Assembler on the resulting assembly. It is the base
// every concrete terminal (Literal, Symbol, Num, Word, ...) is built from.
type Terminal struct {
	qualifies func(lex.Token) bool
	assembler Assembler
}

// Match consumes exactly one token if it qualifies, running t's Assembler
// (if any) afterward.
func (t *Terminal) Match(a *Assembly) []*Assembly {
	if a.AtEnd() || !t.qualifies(a.Peek()) {
		return nil
	}
	next := a.Clone()
	next.Advance()
	if t.assembler != nil {
		t.assembler.WorkOn(next)
	}
	return []*Assembly{next}
}

// WithAssembler returns a copy of t that runs asm on every successful match.
func (t *Terminal) WithAssembler(asm Assembler) *Terminal {
	return &Terminal{qualifies: t.qualifies, assembler: asm}
}

// Literal matches a single word or symbol token with exactly the given
// spelling.
func Literal(text string) *Terminal {
	return &Terminal{qualifies: func(tok lex.Token) bool {
		return (tok.IsWord() || tok.IsSymbol()) && tok.Text == text
	}}
}

var caseFold = cases.Fold()

// CaselessLiteral matches a single word token whose spelling equals text
// under Unicode case folding, so e.g. "TRUE" matches "true".
func CaselessLiteral(text string) *Terminal {
	folded := caseFold.String(text)
	return &Terminal{qualifies: func(tok lex.Token) bool {
		return tok.IsWord() && caseFold.String(tok.Text) == folded
	}}
}

// Symbol matches a single symbol token with exactly the given spelling,
// e.g. "(" or ":-".
func Symbol(text string) *Terminal {
	return &Terminal{qualifies: func(tok lex.Token) bool {
		return tok.IsSymbol() && tok.Text == text
	}}
}

// Num matches any numeric literal token.
func Num() *Terminal {
	return &Terminal{qualifies: lex.Token.IsNumber}
}

// Word matches any word token.
func Word() *Terminal {
	return &Terminal{qualifies: lex.Token.IsWord}
}

var lowerCaser = cases.Lower(language.Und)
var upperCaser = cases.Upper(language.Und)

// LowercaseWord matches a word token that starts with a lowercase letter
// (Logikus atoms and functors).
func LowercaseWord() *Terminal {
	return &Terminal{qualifies: func(tok lex.Token) bool {
		return tok.IsWord() && tok.Text != "" && tok.Text[0] != '_' && !lex.StartsUpper(tok.Text)
	}}
}

// UppercaseWord matches a word token that starts with an uppercase letter or
// an underscore (Logikus variables).
func UppercaseWord() *Terminal {
	return &Terminal{qualifies: func(tok lex.Token) bool {
		if tok.Text == "" || !tok.IsWord() {
			return false
		}
		if tok.Text[0] == '_' {
			return true
		}
		return lex.StartsUpper(tok.Text)
	}}
}

// QuotedString matches any quoted-string token.
func QuotedString() *Terminal {
	return &Terminal{qualifies: lex.Token.IsQuotedString}
}
