package lex

// state is implemented by each character class handler. first is the rune
// that caused the Tokenizer to dispatch to this state; it has already been
// consumed from r.
type state interface {
	NextToken(first rune, r *Reader, t *Tokenizer) Token
}

// Tokenizer turns a Reader's characters into a stream of Tokens, dispatching
// on the first rune of each token to decide which state handles it: a digit
// or a leading '-'/'.' to the number state, a letter or underscore to the
// word state, a quote character to the quote state, '/' to the comment-or-
// symbol state, whitespace to the whitespace state, and everything else to
// the symbol state.
type Tokenizer struct {
	r             *Reader
	whitespace    whitespaceState
	word          wordState
	number        numberState
	quote         quoteState
	slash         slashState
	symbolState   *symbolState
}

// NewTokenizer returns a Tokenizer reading from r.
func NewTokenizer(r *Reader) *Tokenizer {
	return &Tokenizer{r: r, symbolState: newSymbolState()}
}

// New is a convenience wrapper that builds a Reader over src and a
// Tokenizer over it.
func New(src string) *Tokenizer {
	return NewTokenizer(NewReader(src))
}

func (t *Tokenizer) stateFor(c rune) state {
	switch {
	case c == '\'' || c == '"':
		return t.quote
	case c == '/':
		return t.slash
	case c == '-' || c == '.' || isDigit(c):
		return t.number
	case IsWordStart(c):
		return t.word
	case isSpace(c):
		return t.whitespace
	default:
		return t.symbolState
	}
}

func isDigit(c rune) bool { return c >= '0' && c <= '9' }

func isSpace(c rune) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// nextToken is the unexported entry point states recurse into once they've
// absorbed something that produces no token of its own (whitespace,
// comments).
func (t *Tokenizer) nextToken() Token {
	c, ok := t.r.Read()
	if !ok {
		return EOF
	}
	return t.stateFor(c).NextToken(c, t.r, t)
}

// Next returns the next Token in the stream, or EOF once the input is
// exhausted. It never returns an error: a malformed trailing symbol, a run
// of unmatched characters, or an unterminated quote all still resolve to
// some token rather than aborting the scan. Parsing decides what's
// syntactically acceptable, not tokenizing.
func (t *Tokenizer) Next() Token {
	return t.nextToken()
}

// All drains the tokenizer into a slice, not including the trailing EOF.
func (t *Tokenizer) All() []Token {
	var toks []Token
	for {
		tok := t.Next()
		if tok.IsEOF() {
			return toks
		}
		toks = append(toks, tok)
	}
}
