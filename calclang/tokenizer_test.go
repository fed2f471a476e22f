package calclang

import (
	"errors"
	"strconv"
	"strings"
	"testing"
)

func TestTokenizer(t *testing.T) {
	type TokenInfo struct {
		Kind   TokenKind
		Text   string
		Column int
	}

	tests := []struct {
		input  string
		tokens []TokenInfo
	}{
		{
			input: "123 45.67",
			tokens: []TokenInfo{
				{TokenInt, "123", 0},
				{TokenFloat, "45.67", 4},
				{TokenEOF, "", 9},
			},
		},
		{
			input: "+-*/^()",
			tokens: []TokenInfo{
				{TokenPlus, "+", 0},
				{TokenMinus, "-", 1},
				{TokenMul, "*", 2},
				{TokenDiv, "/", 3},
				{TokenPow, "^", 4},
				{TokenLParen, "(", 5},
				{TokenRParen, ")", 6},
				{TokenEOF, "", 7},
			},
		},
		{
			input: "  2 *(3)  ",
			tokens: []TokenInfo{
				{TokenInt, "2", 2},
				{TokenMul, "*", 4},
				{TokenLParen, "(", 5},
				{TokenInt, "3", 6},
				{TokenRParen, ")", 7},
				{TokenEOF, "", 10},
			},
		},
		{
			input: ".5",
			tokens: []TokenInfo{
				{TokenFloat, ".5", 0},
				{TokenEOF, "", 2},
			},
		},
		{
			input: "1.2.3",
			tokens: []TokenInfo{
				{TokenFloat, "1.2", 0},
				{TokenFloat, ".3", 3},
				{TokenEOF, "", 5},
			},
		},
		{
			input: "1-.5",
			tokens: []TokenInfo{
				{TokenInt, "1", 0},
				{TokenMinus, "-", 1},
				{TokenFloat, ".5", 2},
				{TokenEOF, "", 4},
			},
		},
		{
			input: "",
			tokens: []TokenInfo{
				{TokenEOF, "", 0},
			},
		},
	}

	for _, test := range tests {
		tokens, err := Tokenize("test", test.input)
		if err != nil {
			t.Fatalf("input: %q, err: %v", test.input, err)
		}
		if len(tokens) != len(test.tokens) {
			t.Fatalf("input: %q, expected %d tokens, got %v", test.input, len(test.tokens), tokens)
		}
		for i, expected := range test.tokens {
			tok := tokens[i]
			if tok.Kind != expected.Kind || tok.Text != expected.Text {
				t.Fatalf("input: %q, token %d: expected %v %q, got %v %q", test.input, i, expected.Kind, expected.Text, tok.Kind, tok.Text)
			}
			if tok.Pos.Column != expected.Column {
				t.Fatalf("input: %q, token %d: expected column %d, got %d", test.input, i, expected.Column, tok.Pos.Column)
			}
			if tok.Pos.SourceName() != "test" {
				t.Fatalf("got %q", tok.Pos.SourceName())
			}
		}
	}
}

func TestTokenizerLiteralValue(t *testing.T) {
	for _, input := range []string{
		"0", "7", "42", "007", "123456789",
		"3.14", "0.5", ".25", "1.0", "10.01",
	} {
		tokens, err := Tokenize("test", input)
		if err != nil {
			t.Fatalf("input: %q, err: %v", input, err)
		}
		if len(tokens) != 2 || tokens[1].Kind != TokenEOF {
			t.Fatalf("input: %q, got %v", input, tokens)
		}
		expected, err := strconv.ParseFloat(input, 64)
		if err != nil {
			t.Fatal(err)
		}
		value, ok := tokens[0].Literal()
		if !ok {
			t.Fatalf("input: %q, not a literal: %v", input, tokens[0])
		}
		if value != expected {
			t.Fatalf("input: %q, expected %v, got %v", input, expected, value)
		}
	}

	tokens, err := Tokenize("test", "+")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := tokens[0].Literal(); ok {
		t.Fatal("operator should not carry a literal value")
	}
}

func TestTokenizerIllegalCharacter(t *testing.T) {
	tests := []struct {
		input   string
		column  int
		offset  int
		details string
	}{
		{"a", 0, 0, "Illegal char: 'a'"},
		{"2 + x", 4, 4, "Illegal char: 'x'"},
		{"1.", 1, 1, "Illegal char: '.'"},
		{"1..2", 1, 1, "Illegal char: '.'"},
		{"\t1", 0, 0, "Illegal char: '\t'"},
		{"1\n2", 1, 1, "Illegal char: '\n'"},
		{"1+é", 2, 2, "Illegal char: 'é'"},
		{"é+x", 0, 0, "Illegal char: 'é'"},
		{"1 % 2", 2, 2, "Illegal char: '%'"},
	}
	for _, test := range tests {
		tokens, err := Tokenize("test", test.input)
		if err == nil {
			t.Fatalf("input: %q, should error", test.input)
		}
		if tokens != nil {
			t.Fatalf("input: %q, tokens returned with error: %v", test.input, tokens)
		}
		if !errors.Is(err, IllegalCharacter) {
			t.Fatalf("input: %q, got %v", test.input, err)
		}
		var e *Error
		if !errors.As(err, &e) {
			t.Fatalf("got %T", err)
		}
		if e.Pos.Column != test.column || e.Pos.Offset != test.offset {
			t.Fatalf("input: %q, expected column %d offset %d, got %v offset %d", test.input, test.column, test.offset, e.Pos, e.Pos.Offset)
		}
		if e.Details != test.details {
			t.Fatalf("input: %q, got %q", test.input, e.Details)
		}
	}
}

func TestTokenString(t *testing.T) {
	tokens, err := Tokenize("test", "1.5*2")
	if err != nil {
		t.Fatal(err)
	}
	var strs []string
	for _, tok := range tokens {
		strs = append(strs, tok.String())
	}
	if got := strings.Join(strs, " "); got != "FLOAT:1.5 MUL INT:2 EOF" {
		t.Fatalf("got %s", got)
	}
	if str := TokenKind(200).String(); str != "TokenKind(200)" {
		t.Fatalf("got %s", str)
	}
}
