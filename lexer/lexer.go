// Package lexer defines the lexical analyzer for the proof-trace
// token set.
package lexer

import (
	"regexp"
	"unicode/utf8"

	"github.com/ava12/prooftrace/source"
)

// One capturing group per token class: naturals, symbols, operators.
// Whitespace (newlines included) matches with no group captured and is
// skipped. Multi-rune operators precede their prefixes in the
// alternation so that "|-", "<=>", and "=>" win over "|", "<", and "=".
var tokenRe = regexp.MustCompile(`^(?:\s+|(\d+)|([A-Za-z][A-Za-z0-9_$]*)|(\|-|<=>|=>|[,.:()\[\]<>|=#!]))`)

// Word keywords take precedence over the generic symbol rule when the
// symbol regexp matches them exactly.
var keywords = map[string]Type{
	"not":     Not,
	"and":     And,
	"or":      Or,
	"forall":  Forall,
	"forall2": Forall2,
	"Hyp":     Hyp,
	"FIN":     Fin,
}

var operators = map[string]Type{
	",":   Comma,
	".":   Dot,
	":":   Colon,
	"(":   LParen,
	")":   RParen,
	"[":   LBracket,
	"]":   RBracket,
	"<":   Lt,
	">":   Gt,
	"|-":  Turnstile,
	"|":   Pipe,
	"=>":  Imp,
	"<=>": Iff,
	"=":   Eq,
	"#":   Exists,
	"!":   Bang,
}

// Lexer converts a source buffer into a sequence of position-tracked
// tokens. Characters matching no token rule are dropped silently:
// unknown punctuation in a trace is noise, not an error. Consequently
// Next never fails; it returns an EOF token once the source is
// exhausted and on every call after that.
type Lexer struct {
	src *source.Source
	pos int
}

// New creates a Lexer reading src from the beginning.
func New(src *source.Source) *Lexer {
	return &Lexer{src: src}
}

// Next fetches the token starting at the current position and advances
// past it.
func (l *Lexer) Next() *Token {
	content := l.src.Content()
	for l.pos < len(content) {
		match := tokenRe.FindSubmatchIndex(content[l.pos:])
		if match == nil {
			// unrecognized character, drop it
			_, size := utf8.DecodeRune(content[l.pos:])
			l.pos += size
			continue
		}

		start := l.pos
		l.pos += match[1]
		for i := 2; i < len(match); i += 2 {
			if match[i] < 0 {
				continue
			}
			text := string(content[start+match[i] : start+match[i+1]])
			return l.newToken(l.classify(i>>1, text), text, start+match[i])
		}
		// no group captured: whitespace, fetch again
	}
	return l.newToken(EOF, "", l.pos)
}

func (l *Lexer) classify(group int, text string) Type {
	switch group {
	case 1:
		return Number
	case 2:
		if tt, isKeyword := keywords[text]; isKeyword {
			return tt
		}
		return Symbol
	default:
		return operators[text]
	}
}

func (l *Lexer) newToken(tt Type, text string, pos int) *Token {
	return NewToken(tt, text, source.NewPos(l.src, pos))
}
