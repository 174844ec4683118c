package lexer

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ava12/prooftrace/source"
)

func scan(t *testing.T, text string) []*Token {
	t.Helper()
	l := New(source.New("", []byte(text)))
	var tokens []*Token
	for {
		tok := l.Next()
		if tok.Type() == EOF {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

func types(tokens []*Token) []Type {
	res := make([]Type, len(tokens))
	for i, tok := range tokens {
		res[i] = tok.Type()
	}
	return res
}

func texts(tokens []*Token) []string {
	res := make([]string, len(tokens))
	for i, tok := range tokens {
		res[i] = tok.Text()
	}
	return res
}

func TestEmpty(t *testing.T) {
	for _, text := range []string{"", " ", " \t\r\n "} {
		l := New(source.New("", []byte(text)))
		tok := l.Next()
		require.Equal(t, EOF, tok.Type(), "source %q", text)
		// EOF is sticky
		require.Equal(t, EOF, l.Next().Type())
	}
}

func TestTokenTypes(t *testing.T) {
	samples := []struct {
		text     string
		expected []Type
	}{
		{"x,y:z", []Type{Symbol, Comma, Symbol, Colon, Symbol}},
		{"( ) [ ] . 42", []Type{LParen, RParen, LBracket, RBracket, Dot, Number}},
		{"|- | <=> => = < >", []Type{Turnstile, Pipe, Iff, Imp, Eq, Lt, Gt}},
		{"!x.#y.p", []Type{Bang, Symbol, Dot, Exists, Symbol, Dot, Symbol}},
		{"42abc", []Type{Number, Symbol}},
	}
	for _, s := range samples {
		require.Equal(t, s.expected, types(scan(t, s.text)), "source %q", s.text)
	}
}

func TestKeywordPriority(t *testing.T) {
	// exact matches of the symbol rule become keywords, anything
	// longer stays a symbol
	tokens := scan(t, "not nota and or forall forall2 forall2x Hyp FIN Fin hyp")
	require.Equal(t, []Type{
		Not, Symbol, And, Or, Forall, Forall2, Symbol, Hyp, Fin, Symbol, Symbol,
	}, types(tokens))
	require.Equal(t, "nota", tokens[1].Text())
	require.Equal(t, "forall2x", tokens[6].Text())
}

func TestSymbolRule(t *testing.T) {
	tokens := scan(t, "a_1$x B$ c")
	require.Equal(t, []Type{Symbol, Symbol, Symbol}, types(tokens))
	require.Equal(t, []string{"a_1$x", "B$", "c"}, texts(tokens))
}

func TestNoiseDiscarded(t *testing.T) {
	// unrecognized characters are dropped, never surfaced
	plain := scan(t, "[R] <p and q>")
	noisy := scan(t, "@[R]~ <p ?and q>??")
	require.Equal(t, types(plain), types(noisy))
	require.Equal(t, texts(plain), texts(noisy))
}

func TestPositions(t *testing.T) {
	tokens := scan(t, "[R]\n  <p>")
	expected := []struct{ line, col int }{
		{1, 1}, {1, 2}, {1, 3},
		{2, 3}, {2, 4}, {2, 5},
	}
	require.Len(t, tokens, len(expected))
	for i, pos := range expected {
		require.Equal(t, pos.line, tokens[i].Line(), "token %d (%q)", i, tokens[i].Text())
		require.Equal(t, pos.col, tokens[i].Col(), "token %d (%q)", i, tokens[i].Text())
	}
}

func TestEofPosition(t *testing.T) {
	l := New(source.New("sample", []byte("[R]\n<p>\n")))
	tok := l.Next()
	for tok.Type() != EOF {
		tok = l.Next()
	}
	require.Equal(t, "sample", tok.SourceName())
	require.Equal(t, 3, tok.Line())
	require.Equal(t, 1, tok.Col())
}
