package calclang

import "math"

// Value is an evaluation result tagged with the position it is attributed to.
type Value struct {
	Number float64
	Pos    Pos
}

// Evaluate walks the tree in post-order.
func Evaluate(node Node) (Value, error) {
	switch node := node.(type) {

	case *NumberLiteral:
		if node == nil {
			return Value{}, newError(InvalidSyntax, Pos{}, "missing number literal")
		}
		return Value{
			Number: node.Token.Value,
			Pos:    node.Token.Pos,
		}, nil

	case *UnaryOp:
		if node == nil {
			return Value{}, newError(InvalidSyntax, Pos{}, "missing unary operation")
		}
		operand, err := Evaluate(node.Operand)
		if err != nil {
			return Value{}, err
		}
		switch node.Operator.Kind {
		case TokenPlus:
		case TokenMinus:
			operand.Number = -operand.Number
		default:
			return Value{}, newError(InvalidSyntax, node.Operator.Pos, "unknown unary operator %s", node.Operator.Kind)
		}
		return operand, nil

	case *BinaryOp:
		if node == nil {
			return Value{}, newError(InvalidSyntax, Pos{}, "missing binary operation")
		}
		left, err := Evaluate(node.Left)
		if err != nil {
			return Value{}, err
		}
		right, err := Evaluate(node.Right)
		if err != nil {
			return Value{}, err
		}
		fn, ok := binaryFuncs[node.Operator.Kind]
		if !ok {
			return Value{}, newError(InvalidSyntax, node.Operator.Pos, "unknown binary operator %s", node.Operator.Kind)
		}
		ret, err := fn(left, right)
		if err != nil {
			return Value{}, err
		}
		if math.IsNaN(ret) {
			return Value{}, newError(UndefinedResult, node.Operator.Pos, "%s %s %s is undefined",
				Format(left.Number), node.Operator.Text, Format(right.Number))
		}
		return Value{
			Number: ret,
			Pos:    node.Operator.Pos,
		}, nil

	}

	// Node is sealed, only a nil interface reaches here
	return Value{}, newError(InvalidSyntax, Pos{}, "missing expression")
}
