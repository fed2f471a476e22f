package calclang

import "math"

type binaryFunc func(a, b Value) (float64, error)

var binaryFuncs = map[TokenKind]binaryFunc{
	TokenPlus:  Plus,
	TokenMinus: Minus,
	TokenMul:   Multiply,
	TokenDiv:   Divide,
	TokenPow:   Power,
}

func Plus(a, b Value) (float64, error) {
	return a.Number + b.Number, nil
}

func Minus(a, b Value) (float64, error) {
	return a.Number - b.Number, nil
}

func Multiply(a, b Value) (float64, error) {
	return a.Number * b.Number, nil
}

func Divide(a, b Value) (float64, error) {
	if b.Number == 0 {
		return 0, newError(DivisionByZero, b.Pos, "attempted to divide by zero")
	}
	return a.Number / b.Number, nil
}

// Power is restricted to real results.
func Power(a, b Value) (float64, error) {
	if a.Number == 0 && b.Number < 0 {
		return 0, newError(DivisionByZero, b.Pos, "zero raised to a negative power")
	}
	ret := math.Pow(a.Number, b.Number)
	if math.IsNaN(ret) {
		return 0, newError(UndefinedResult, a.Pos, "%s ^ %s has no real value", Format(a.Number), Format(b.Number))
	}
	return ret, nil
}
