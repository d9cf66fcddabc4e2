package lex

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func tokenTexts(toks []Token) []string {
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = t.Value()
	}
	return out
}

func Test_Tokenizer_WordsAndSymbols(t *testing.T) {
	toks := New("likes(wallace, cheese).").All()
	assert := assert.New(t)
	assert.Equal([]string{"likes", "(", "wallace", ",", "cheese", ")", "."}, tokenTexts(toks))
}

func Test_Tokenizer_Rule(t *testing.T) {
	toks := New("friend(X, Y) :- likes(X, Y).").All()
	assert.Equal(t, []string{
		"friend", "(", "X", ",", "Y", ")", ":-", "likes", "(", "X", ",", "Y", ")", ".",
	}, tokenTexts(toks))
}

func Test_Tokenizer_Numbers(t *testing.T) {
	cases := []struct {
		src  string
		want []Token
	}{
		{"1.", []Token{{Type: NumberType, Num: 1}, {Type: SymbolType, Text: "."}}},
		{"-1", []Token{{Type: NumberType, Num: -1}}},
		{"-.5", []Token{{Type: NumberType, Num: -0.5}}},
		{"12.5", []Token{{Type: NumberType, Num: 12.5}}},
		{"-X", []Token{{Type: SymbolType, Text: "-"}, {Type: WordType, Text: "X"}}},
		{":-", []Token{{Type: SymbolType, Text: ":-"}}},
	}
	for _, c := range cases {
		got := New(c.src).All()
		if assert.Equal(t, len(c.want), len(got), c.src) {
			for i := range got {
				assert.Equal(t, c.want[i].Type, got[i].Type, c.src)
				if c.want[i].Type == NumberType {
					assert.Equal(t, c.want[i].Num, got[i].Num, c.src)
				} else {
					assert.Equal(t, c.want[i].Text, got[i].Text, c.src)
				}
			}
		}
	}
}

func Test_Tokenizer_Comments(t *testing.T) {
	toks := New("a(X). // a comment\nb(X). /* block\ncomment */ c(X).").All()
	assert.Equal(t, []string{
		"a", "(", "X", ")", ".",
		"b", "(", "X", ")", ".",
		"c", "(", "X", ")", ".",
	}, tokenTexts(toks))
}

func Test_Tokenizer_QuotedString(t *testing.T) {
	toks := New(`write('hello, world').`).All()
	assert.Equal(t, "'hello, world'", toks[2].Text)
	assert.True(t, toks[2].IsQuotedString())
}

func Test_Tokenizer_DoubleCharSymbols(t *testing.T) {
	toks := New("X != Y, X <= Y, X >= Y, X = Y.").All()
	var syms []string
	for _, tok := range toks {
		if tok.IsSymbol() && tok.Text != "," && tok.Text != "." {
			syms = append(syms, tok.Text)
		}
	}
	assert.Equal(t, []string{"!=", "<=", ">=", "="}, syms)
}

func Test_Tokenizer_WordCharsAllowHyphenAndApostrophe(t *testing.T) {
	toks := New("it's-fine(X).").All()
	assert.Equal(t, []string{"it's-fine", "(", "X", ")", "."}, tokenTexts(toks))
}

func Test_SplitAxioms(t *testing.T) {
	got := SplitAxioms("father(tom, bob).; father(tom, liz).;   ")
	assert.Equal(t, []string{"father(tom, bob).", "father(tom, liz)."}, got)
}

func Test_SplitAxioms_SemicolonInQuotes(t *testing.T) {
	got := SplitAxioms(`write('a;b').`)
	assert.Equal(t, []string{`write('a;b').`}, got)
}

func Test_StartsUpper(t *testing.T) {
	assert.True(t, StartsUpper("X"))
	assert.False(t, StartsUpper("x"))
	assert.False(t, StartsUpper(""))
}
