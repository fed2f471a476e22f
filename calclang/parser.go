package calclang

type parser struct {
	tokens []Token
	idx    int
}

// Parse builds an expression tree from tokens produced by Tokenize.
func Parse(tokens []Token) (Node, error) {
	if len(tokens) == 0 {
		return nil, newError(InvalidSyntax, Pos{}, "Expected a token stream")
	}
	if last := tokens[len(tokens)-1]; last.Kind != TokenEOF {
		return nil, newError(InvalidSyntax, last.Pos, "Expected end of input")
	}

	p := &parser{
		tokens: tokens,
	}
	node, err := p.parseExpr()
	if err != nil {
		return nil, err
	}
	if tok := p.current(); tok.Kind != TokenEOF {
		return nil, newError(InvalidSyntax, tok.Pos, "Expected '+', '-', '*', '/' or '^'")
	}
	return node, nil
}

func (p *parser) current() Token {
	return p.tokens[p.idx]
}

func (p *parser) advance() Token {
	tok := p.tokens[p.idx]
	// the EOF sentinel is never consumed
	if p.idx < len(p.tokens)-1 {
		p.idx++
	}
	return tok
}

func (p *parser) at(kinds ...TokenKind) bool {
	current := p.current().Kind
	for _, kind := range kinds {
		if current == kind {
			return true
		}
	}
	return false
}

// parseBinary parses operand (op operand)* into a left-leaning tree.
func (p *parser) parseBinary(operand func() (Node, error), ops ...TokenKind) (Node, error) {
	left, err := operand()
	if err != nil {
		return nil, err
	}
	for p.at(ops...) {
		op := p.advance()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		left = &BinaryOp{
			Operator: op,
			Left:     left,
			Right:    right,
		}
	}
	return left, nil
}

func (p *parser) parseExpr() (Node, error) {
	return p.parseBinary(p.parseTerm, TokenPlus, TokenMinus)
}

func (p *parser) parseTerm() (Node, error) {
	return p.parseBinary(p.parseFactor, TokenMul, TokenDiv)
}

func (p *parser) parseFactor() (Node, error) {
	if p.at(TokenPlus, TokenMinus) {
		op := p.advance()
		operand, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		return &UnaryOp{
			Operator: op,
			Operand:  operand,
		}, nil
	}
	return p.parsePower()
}

// parsePower parses unit ('^' factor)*.
// The right side recurses into factor, so '^' is right associative
// and binds tighter than a unary sign on its left.
func (p *parser) parsePower() (Node, error) {
	left, err := p.parseUnit()
	if err != nil {
		return nil, err
	}
	for p.at(TokenPow) {
		op := p.advance()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		left = &BinaryOp{
			Operator: op,
			Left:     left,
			Right:    right,
		}
	}
	return left, nil
}

func (p *parser) parseUnit() (Node, error) {
	tok := p.current()
	switch tok.Kind {

	case TokenInt, TokenFloat:
		p.advance()
		return &NumberLiteral{
			Token: tok,
		}, nil

	case TokenLParen:
		p.advance()
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if !p.at(TokenRParen) {
			return nil, newError(InvalidSyntax, p.current().Pos, "Expected ')'")
		}
		p.advance()
		return expr, nil

	}

	return nil, newError(InvalidSyntax, tok.Pos, "Expected a Number, '+', '-', or '('")
}
