package calclang

// Node is an expression tree node.
// The set of implementations is closed: *NumberLiteral, *UnaryOp and *BinaryOp.
type Node interface {
	Pos() Pos
	String() string
	node()
}

type NumberLiteral struct {
	Token Token
}

type UnaryOp struct {
	Operator Token
	Operand  Node
}

type BinaryOp struct {
	Operator Token
	Left     Node
	Right    Node
}

var (
	_ Node = new(NumberLiteral)
	_ Node = new(UnaryOp)
	_ Node = new(BinaryOp)
)

func (*NumberLiteral) node() {}
func (*UnaryOp) node()       {}
func (*BinaryOp) node()      {}

func (n *NumberLiteral) Pos() Pos {
	return n.Token.Pos
}

func (n *UnaryOp) Pos() Pos {
	return n.Operator.Pos
}

func (n *BinaryOp) Pos() Pos {
	return n.Operator.Pos
}

func (n *NumberLiteral) String() string {
	return n.Token.Text
}

func (n *UnaryOp) String() string {
	return "(" + n.Operator.Text + n.Operand.String() + ")"
}

func (n *BinaryOp) String() string {
	return "(" + n.Left.String() + " " + n.Operator.Text + " " + n.Right.String() + ")"
}
