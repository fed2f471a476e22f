package calclang

import "strconv"

type Token struct {
	Kind  TokenKind
	Text  string
	Value float64 // TokenInt and TokenFloat only
	Pos   Pos
}

// Literal returns the numeric value of a literal token.
func (t Token) Literal() (float64, bool) {
	if t.Kind == TokenInt || t.Kind == TokenFloat {
		return t.Value, true
	}
	return 0, false
}

func (t Token) String() string {
	switch t.Kind {
	case TokenInt, TokenFloat:
		return t.Kind.String() + ":" + t.Text
	}
	return t.Kind.String()
}

type TokenKind uint8

const (
	TokenInvalid TokenKind = iota
	TokenInt
	TokenFloat
	TokenPlus
	TokenMinus
	TokenMul
	TokenDiv
	TokenPow
	TokenLParen
	TokenRParen
	TokenEOF
)

var tokenKindNames = [...]string{
	TokenInvalid: "INVALID",
	TokenInt:     "INT",
	TokenFloat:   "FLOAT",
	TokenPlus:    "PLUS",
	TokenMinus:   "MINUS",
	TokenMul:     "MUL",
	TokenDiv:     "DIV",
	TokenPow:     "POW",
	TokenLParen:  "LPAREN",
	TokenRParen:  "RPAREN",
	TokenEOF:     "EOF",
}

func (k TokenKind) String() string {
	if int(k) < len(tokenKindNames) {
		return tokenKindNames[k]
	}
	return "TokenKind(" + strconv.Itoa(int(k)) + ")"
}

var symbolKinds = map[rune]TokenKind{
	'+': TokenPlus,
	'-': TokenMinus,
	'*': TokenMul,
	'/': TokenDiv,
	'^': TokenPow,
	'(': TokenLParen,
	')': TokenRParen,
}
