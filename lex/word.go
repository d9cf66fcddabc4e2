package lex

import (
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var upperFolder = cases.Upper(language.Und)
var lowerFolder = cases.Lower(language.Und)

// IsWordStart reports whether c may begin a word token: a letter or an
// underscore. Digits may continue a word but never start one, so that a
// leading digit is always tokenized as a number.
func IsWordStart(c rune) bool {
	return unicode.IsLetter(c) || c == '_'
}

// isWordChar reports whether c may continue a word once started.
func isWordChar(c rune) bool {
	return unicode.IsLetter(c) || unicode.IsDigit(c) || c == '_' || c == '-' || c == '\''
}

// StartsUpper reports whether s begins with an uppercase letter, using
// locale-independent Unicode case folding rather than a byte-range check.
// The Logikus grammar uses this to tell a Variable's spelling apart from an
// atom/functor's: a word starting uppercase (or an underscore, checked
// separately) denotes a Variable.
func StartsUpper(s string) bool {
	if s == "" {
		return false
	}
	r := []rune(s)[0]
	return upperFolder.String(string(r)) == string(r) && lowerFolder.String(string(r)) != string(r)
}

// wordState absorbs a run of word characters starting with first.
type wordState struct{}

func (wordState) NextToken(first rune, r *Reader, t *Tokenizer) Token {
	runes := []rune{first}
	for {
		c, ok := r.Read()
		if !ok {
			break
		}
		if !isWordChar(c) {
			r.Unread()
			break
		}
		runes = append(runes, c)
	}
	return Token{Type: WordType, Text: string(runes)}
}
