package lex

// quoteState absorbs a quoted string. first is the opening delimiter (' or
// "); the token's Text keeps both delimiters as part of its spelling, so a
// QuotedType token round-trips back to valid Logikus source. A backslash
// escapes the next rune, most usefully the delimiter itself.
type quoteState struct{}

func (quoteState) NextToken(first rune, r *Reader, t *Tokenizer) Token {
	runes := []rune{first}
	for {
		c, ok := r.Read()
		if !ok {
			break
		}
		if c == '\\' {
			if esc, ok := r.Read(); ok {
				runes = append(runes, c, esc)
				continue
			}
			runes = append(runes, c)
			break
		}
		runes = append(runes, c)
		if c == first {
			break
		}
	}
	return Token{Type: QuotedType, Text: string(runes)}
}
