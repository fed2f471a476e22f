package calclang

import (
	"math"
	"strconv"
)

// Compile tokenizes and parses text.
func Compile(name string, text string) (Node, error) {
	tokens, err := Tokenize(name, text)
	if err != nil {
		return nil, err
	}
	return Parse(tokens)
}

// Run evaluates text, returning the first error of any stage unchanged.
func Run(name string, text string) (Value, error) {
	node, err := Compile(name, text)
	if err != nil {
		return Value{}, err
	}
	return Evaluate(node)
}

// Format renders a number for display.
func Format(f float64) string {
	if f == 0 {
		// also -0
		return "0"
	}
	if f == math.Trunc(f) && math.Abs(f) < 1e15 {
		return strconv.FormatFloat(f, 'f', 0, 64)
	}
	return strconv.FormatFloat(f, 'g', -1, 64)
}
