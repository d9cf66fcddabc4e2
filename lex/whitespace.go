package lex

import "unicode"

// whitespaceState absorbs a run of whitespace and then defers to the
// tokenizer for whatever follows; whitespace itself never becomes a Token.
type whitespaceState struct{}

func (whitespaceState) NextToken(first rune, r *Reader, t *Tokenizer) Token {
	for {
		c, ok := r.Read()
		if !ok {
			return t.nextToken()
		}
		if !unicode.IsSpace(c) {
			r.Unread()
			return t.nextToken()
		}
	}
}
