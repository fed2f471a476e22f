package calclang

import (
	"strconv"
	"strings"
)

type tokenizer struct {
	runes []rune
	idx   int
	pos   Pos
}

// Tokenize converts text into tokens terminated by a TokenEOF sentinel.
// On an illegal character no tokens are returned.
func Tokenize(name string, text string) ([]Token, error) {
	t := &tokenizer{
		runes: []rune(text),
		pos: Pos{
			Source: NewSource(name, text),
		},
	}

	var tokens []Token
	for {
		r, ok := t.peek(0)
		if !ok {
			break
		}

		switch {
		case r == ' ':
			t.next()

		case isDigit(r) || r == '.' && t.digitAt(1):
			tokens = append(tokens, t.parseNumber()...)

		default:
			kind, ok := symbolKinds[r]
			if !ok {
				return nil, newError(IllegalCharacter, t.pos, "Illegal char: '%c'", r)
			}
			tokens = append(tokens, Token{
				Kind: kind,
				Text: string(r),
				Pos:  t.pos,
			})
			t.next()
		}
	}

	tokens = append(tokens, Token{
		Kind: TokenEOF,
		Pos:  t.pos,
	})
	return tokens, nil
}

func (t *tokenizer) peek(n int) (rune, bool) {
	if t.idx+n >= len(t.runes) {
		return 0, false
	}
	return t.runes[t.idx+n], true
}

func (t *tokenizer) next() {
	t.pos = t.pos.Advance(t.runes[t.idx])
	t.idx++
}

func (t *tokenizer) digitAt(n int) bool {
	r, ok := t.peek(n)
	return ok && isDigit(r)
}

// parseNumber consumes a run of digits and decimal points.
// A point is only part of a literal when a digit follows it,
// and a second point starts a new literal.
func (t *tokenizer) parseNumber() []Token {
	var tokens []Token
	startPos := t.pos
	var buf strings.Builder
	hasDot := false
	for {
		r, ok := t.peek(0)
		if !ok {
			break
		}
		if r == '.' && t.digitAt(1) {
			if hasDot {
				tokens = append(tokens, newLiteral(TokenFloat, buf.String(), startPos))
				buf.Reset()
				startPos = t.pos
			}
			hasDot = true
		} else if !isDigit(r) {
			break
		}
		buf.WriteRune(r)
		t.next()
	}

	kind := TokenInt
	if hasDot {
		kind = TokenFloat
	}
	return append(tokens, newLiteral(kind, buf.String(), startPos))
}

func newLiteral(kind TokenKind, text string, pos Pos) Token {
	// text is always a valid decimal; out of range values saturate to ±Inf
	value, _ := strconv.ParseFloat(text, 64)
	return Token{
		Kind:  kind,
		Text:  text,
		Value: value,
		Pos:   pos,
	}
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}
