package cscst

// literalTokenKinds are the token kinds that stand for themselves as a
// LiteralExpressionNode.
var literalTokenKinds = set(
	TokenNumericLiteral, TokenStringLiteral, TokenCharacterLiteral,
	TokenTrue, TokenFalse, TokenNull,
)

var assignmentOperators = set(
	TokenEquals, TokenPlusEquals, TokenMinusEquals, TokenStarEquals,
	TokenSlashEquals, TokenPercentEquals, TokenAmpersandEquals,
	TokenPipeEquals, TokenCaretEquals, TokenLessLessEquals, TokenGreaterGreaterEquals,
)

var unaryPrefixOperators = set(
	TokenPlus, TokenMinus, TokenBang, TokenTilde, TokenStar, TokenAmpersand,
	TokenPlusPlus, TokenMinusMinus,
)

// parseExpression is the public entry into the expression grammar: the
// Pratt-style precedence ladder of §4.4, from assignment (loosest) down to
// postfix/primary (tightest).
func (p *Parser) parseExpression() Expression {
	return p.parseAssignmentExpression()
}

func (p *Parser) parseAssignmentExpression() Expression {
	left := p.parseConditionalExpression()

	if assignmentOperators[p.current().Kind] {
		op := p.tokens.Advance()
		value := p.parseAssignmentExpression()

		return &AssignmentExpressionNode{
			baseNode: newBase(NodeAssignmentExpression, spanOf(left, op, value)),
			Target:   left,
			Operator: op,
			Value:    value,
		}
	}

	return left
}

func (p *Parser) parseConditionalExpression() Expression {
	cond := p.parseLogicalOr()

	question, ok := p.expectOptional(TokenQuestion).Get()
	if !ok {
		return cond
	}

	whenTrue := p.parseAssignmentExpression()
	colon := p.expectKind(TokenColon)
	whenFalse := p.parseConditionalExpression()

	return &ConditionalExpressionNode{
		baseNode:  newBase(NodeConditionalExpression, spanOf(cond, whenFalse)),
		Condition: cond,
		Question:  question,
		WhenTrue:  whenTrue,
		Colon:     colon,
		WhenFalse: whenFalse,
	}
}

func (p *Parser) parseLogicalOr() Expression {
	left := p.parseLogicalAnd()

	for p.current().Kind == TokenPipePipe {
		op := p.tokens.Advance()
		right := p.parseLogicalAnd()
		left = p.binary(left, op, right)
	}

	return left
}

func (p *Parser) parseLogicalAnd() Expression {
	left := p.parseBitwiseOr()

	for p.current().Kind == TokenAmpersandAmpersand {
		op := p.tokens.Advance()
		right := p.parseBitwiseOr()
		left = p.binary(left, op, right)
	}

	return left
}

func (p *Parser) parseBitwiseOr() Expression {
	left := p.parseBitwiseAnd()

	for p.current().Kind == TokenPipe {
		op := p.tokens.Advance()
		right := p.parseBitwiseAnd()
		left = p.binary(left, op, right)
	}

	return left
}

func (p *Parser) parseBitwiseAnd() Expression {
	left := p.parseBitwiseXor()

	for p.current().Kind == TokenAmpersand {
		op := p.tokens.Advance()
		right := p.parseBitwiseXor()
		left = p.binary(left, op, right)
	}

	return left
}

func (p *Parser) parseBitwiseXor() Expression {
	left := p.parseEquality()

	for p.current().Kind == TokenCaret {
		op := p.tokens.Advance()
		right := p.parseEquality()
		left = p.binary(left, op, right)
	}

	return left
}

func (p *Parser) parseEquality() Expression {
	left := p.parseRelational()

	for p.current().Kind == TokenEqualsEquals || p.current().Kind == TokenBangEquals {
		op := p.tokens.Advance()
		right := p.parseRelational()
		left = p.binary(left, op, right)
	}

	return left
}

func (p *Parser) parseRelational() Expression {
	left := p.parseShift()

	for {
		switch p.current().Kind {
		case TokenLess, TokenLessEquals, TokenGreater, TokenGreaterEquals:
			op := p.tokens.Advance()
			right := p.parseShift()
			left = p.binary(left, op, right)
		case TokenIs:
			keyword := p.tokens.Advance()
			typ := p.parseType()
			left = &IsExpressionNode{
				baseNode:   newBase(NodeIsExpression, spanOf(left, typ)),
				Expression: left,
				IsKeyword:  keyword,
				Type:       typ,
			}
		case TokenAs:
			keyword := p.tokens.Advance()
			typ := p.parseType()
			left = &AsExpressionNode{
				baseNode:   newBase(NodeAsExpression, spanOf(left, typ)),
				Expression: left,
				AsKeyword:  keyword,
				Type:       typ,
			}
		default:
			return left
		}
	}
}

func (p *Parser) parseShift() Expression {
	left := p.parseAdditive()

	for p.current().Kind == TokenLessLess || p.current().Kind == TokenGreaterGreater {
		op := p.tokens.Advance()
		right := p.parseAdditive()
		left = p.binary(left, op, right)
	}

	return left
}

func (p *Parser) parseAdditive() Expression {
	left := p.parseMultiplicative()

	for p.current().Kind == TokenPlus || p.current().Kind == TokenMinus {
		op := p.tokens.Advance()
		right := p.parseMultiplicative()
		left = p.binary(left, op, right)
	}

	return left
}

func (p *Parser) parseMultiplicative() Expression {
	left := p.parseUnary()

	for p.current().Kind == TokenStar || p.current().Kind == TokenSlash || p.current().Kind == TokenPercent {
		op := p.tokens.Advance()
		right := p.parseUnary()
		left = p.binary(left, op, right)
	}

	return left
}

func (p *Parser) binary(left Expression, op *Token, right Expression) Expression {
	return &BinaryExpressionNode{
		baseNode: newBase(NodeBinaryExpression, spanOf(left, right)),
		Left:     left,
		Operator: op,
		Right:    right,
	}
}

func (p *Parser) parseUnary() Expression {
	if p.current().Kind == TokenOpenParen {
		if typ, openParen, closeParen, ok := p.tryParseCastType(); ok {
			operand := p.parseUnary()

			return &CastExpressionNode{
				baseNode:   newBase(NodeCastExpression, spanOf(openParen, operand)),
				OpenParen:  openParen,
				Type:       typ,
				CloseParen: closeParen,
				Expression: operand,
			}
		}

		return p.parsePostfix()
	}

	if unaryPrefixOperators[p.current().Kind] {
		op := p.tokens.Advance()
		operand := p.parseUnary()

		return &PrefixUnaryExpressionNode{
			baseNode: newBase(NodePrefixUnaryExpression, spanOf(op, operand)),
			Operator: op,
			Operand:  operand,
		}
	}

	return p.parsePostfix()
}

func (p *Parser) parsePostfix() Expression {
	expr := p.parsePrimary()

	for {
		switch p.current().Kind {
		case TokenDot, TokenMinusGreater:
			op := p.tokens.Advance()
			name := p.expectIdentifier()
			expr = &MemberAccessExpressionNode{
				baseNode:   newBase(NodeMemberAccessExpression, spanOf(expr, name)),
				Expression: expr,
				Operator:   op,
				Name:       name,
				IsPointer:  op.Kind == TokenMinusGreater,
			}
		case TokenOpenParen:
			args := p.parseArgumentList()
			expr = &InvocationExpressionNode{
				baseNode:   newBase(NodeInvocationExpression, spanOf(expr, args)),
				Expression: expr,
				Arguments:  args,
			}
		case TokenOpenBracket:
			open := p.tokens.Advance()
			args := p.parseSeparatedExpressions(TokenCloseBracket)
			closeB := p.expectKind(TokenCloseBracket)
			expr = &ElementAccessExpressionNode{
				baseNode:     newBase(NodeElementAccessExpression, spanOf(expr, closeB)),
				Expression:   expr,
				OpenBracket:  open,
				Arguments:    args,
				CloseBracket: closeB,
			}
		case TokenPlusPlus, TokenMinusMinus:
			op := p.tokens.Advance()
			expr = &PostfixUnaryExpressionNode{
				baseNode: newBase(NodePostfixUnaryExpression, spanOf(expr, op)),
				Operand:  expr,
				Operator: op,
			}
		default:
			return expr
		}
	}
}

func (p *Parser) parsePrimary() Expression {
	cur := p.current()

	switch {
	case literalTokenKinds[cur.Kind]:
		tok := p.tokens.Advance()

		return &LiteralExpressionNode{baseNode: newBase(NodeLiteralExpression, tok.Span()), Token: tok}
	case cur.Kind == TokenThis:
		tok := p.tokens.Advance()

		return &ThisExpressionNode{baseNode: newBase(NodeThisExpression, tok.Span()), Keyword: tok}
	case cur.Kind == TokenBase:
		tok := p.tokens.Advance()

		return &BaseExpressionNode{baseNode: newBase(NodeBaseExpression, tok.Span()), Keyword: tok}
	case cur.Kind == TokenOpenParen:
		return p.parseParenthesizedExpression()
	case cur.Kind == TokenNew:
		return p.parseObjectOrArrayCreation()
	case cur.Kind == TokenStackalloc:
		return p.parseStackAllocExpression()
	case cur.Kind == TokenSizeof:
		return p.parseSizeOfExpression()
	case cur.Kind == TokenTypeof:
		return p.parseTypeOfExpression()
	case cur.Kind == TokenChecked || cur.Kind == TokenUnchecked:
		return p.parseCheckedExpression()
	case cur.Kind == TokenIdentifier:
		tok := p.tokens.Advance()

		return &IdentifierExpressionNode{baseNode: newBase(NodeIdentifierExpression, tok.Span()), Identifier: tok}
	case predefinedTypeKeywords[cur.Kind]:
		tok := p.tokens.Advance()

		return &PredefinedTypeExpressionNode{baseNode: newBase(NodePredefinedTypeExpression, tok.Span()), Keyword: tok}
	default:
		p.diagnostics.ReportError(cur.Position, "Expression expected")

		if cur.Kind != TokenEndOfFile {
			p.tokens.Advance()
		}

		return &ErrorExpressionNode{baseNode: newBase(NodeErrorExpression, cur.Span())}
	}
}

func (p *Parser) parseParenthesizedExpression() Expression {
	open := p.expectKind(TokenOpenParen)
	inner := p.parseExpression()
	closeP := p.expectKind(TokenCloseParen)

	return &ParenthesizedExpressionNode{
		baseNode:   newBase(NodeParenthesizedExpression, spanOf(open, closeP)),
		OpenParen:  open,
		Expression: inner,
		CloseParen: closeP,
	}
}

func (p *Parser) parseObjectOrArrayCreation() Expression {
	keyword := p.expectKind(TokenNew)
	typ := p.parseType()

	if arr, ok := typ.(*ArrayTypeNode); ok {
		var initializer *ArrayInitializerExpressionNode
		if p.current().Kind == TokenOpenBrace {
			initializer = p.parseArrayInitializer()
		}

		return &ArrayCreationExpressionNode{
			baseNode:    newBase(NodeArrayCreationExpression, spanOf(keyword, arr)),
			NewKeyword:  keyword,
			Type:        typ,
			Initializer: initializer,
		}
	}

	var args *ArgumentListNode
	if p.current().Kind == TokenOpenParen {
		args = p.parseArgumentList()
	}

	var initializer *ArrayInitializerExpressionNode
	if p.current().Kind == TokenOpenBrace {
		initializer = p.parseArrayInitializer()
	}

	return &ObjectCreationExpressionNode{
		baseNode:    newBase(NodeObjectCreationExpression, spanOf(keyword, typ)),
		NewKeyword:  keyword,
		Type:        typ,
		Arguments:   args,
		Initializer: initializer,
	}
}

func (p *Parser) parseArrayInitializer() *ArrayInitializerExpressionNode {
	open := p.expectKind(TokenOpenBrace)

	var elements []Expression
	var separators []*Token

	if p.current().Kind != TokenCloseBrace {
		elements = append(elements, p.parseInitializerElement())

		for p.current().Kind == TokenComma {
			separators = append(separators, p.tokens.Advance())

			if p.current().Kind == TokenCloseBrace {
				break
			}

			elements = append(elements, p.parseInitializerElement())
		}
	}

	closeB := p.expectKind(TokenCloseBrace)

	return &ArrayInitializerExpressionNode{
		baseNode:   newBase(NodeArrayInitializerExpression, spanOf(open, closeB)),
		OpenBrace:  open,
		Elements:   SeparatedList[Expression]{Elements: elements, Separators: separators},
		CloseBrace: closeB,
	}
}

func (p *Parser) parseInitializerElement() Expression {
	if p.current().Kind == TokenOpenBrace {
		return p.parseArrayInitializer()
	}

	return p.parseAssignmentExpression()
}

func (p *Parser) parseStackAllocExpression() Expression {
	keyword := p.expectKind(TokenStackalloc)
	typ := p.parseType()

	return &StackAllocExpressionNode{
		baseNode: newBase(NodeStackAllocExpression, spanOf(keyword, typ)),
		Keyword:  keyword,
		Type:     typ,
	}
}

func (p *Parser) parseSizeOfExpression() Expression {
	keyword := p.expectKind(TokenSizeof)
	if !p.isUnsafeContext() {
		p.diagnostics.ReportError(keyword.Position, "sizeof may only be used in an unsafe context")
	}

	open := p.expectKind(TokenOpenParen)
	typ := p.parseType()
	closeP := p.expectKind(TokenCloseParen)

	return &SizeOfExpressionNode{
		baseNode:   newBase(NodeSizeOfExpression, spanOf(keyword, closeP)),
		Keyword:    keyword,
		OpenParen:  open,
		Type:       typ,
		CloseParen: closeP,
	}
}

func (p *Parser) parseTypeOfExpression() Expression {
	keyword := p.expectKind(TokenTypeof)
	open := p.expectKind(TokenOpenParen)
	typ := p.parseType()
	closeP := p.expectKind(TokenCloseParen)

	return &TypeOfExpressionNode{
		baseNode:   newBase(NodeTypeOfExpression, spanOf(keyword, closeP)),
		Keyword:    keyword,
		OpenParen:  open,
		Type:       typ,
		CloseParen: closeP,
	}
}

func (p *Parser) parseCheckedExpression() Expression {
	keyword := p.tokens.Advance()
	unchecked := keyword.Kind == TokenUnchecked
	open := p.expectKind(TokenOpenParen)
	inner := p.parseExpression()
	closeP := p.expectKind(TokenCloseParen)

	kind := NodeCheckedExpression
	if unchecked {
		kind = NodeUncheckedExpression
	}

	return &CheckedExpressionNode{
		baseNode:   newBase(kind, spanOf(keyword, closeP)),
		Keyword:    keyword,
		OpenParen:  open,
		Expression: inner,
		CloseParen: closeP,
		Unchecked:  unchecked,
	}
}

// parseSeparatedExpressions parses a comma-separated expression list up to
// (not including) terminator, with an optional trailing comma.
func (p *Parser) parseSeparatedExpressions(terminator TokenKind) SeparatedList[Expression] {
	var elements []Expression
	var separators []*Token

	elements = append(elements, p.parseExpression())

	for p.current().Kind == TokenComma {
		separators = append(separators, p.tokens.Advance())

		if p.current().Kind == terminator {
			break
		}

		elements = append(elements, p.parseExpression())
	}

	return SeparatedList[Expression]{Elements: elements, Separators: separators}
}

func (p *Parser) parseArgumentList() *ArgumentListNode {
	open := p.expectKind(TokenOpenParen)

	var arguments []*ArgumentNode
	var separators []*Token

	if p.current().Kind != TokenCloseParen {
		arguments = append(arguments, p.parseArgument())

		for p.current().Kind == TokenComma {
			separators = append(separators, p.tokens.Advance())
			arguments = append(arguments, p.parseArgument())
		}
	}

	closeP := p.expectKind(TokenCloseParen)

	return &ArgumentListNode{
		baseNode:   newBase(NodeArgumentList, spanOf(open, closeP)),
		OpenParen:  open,
		Arguments:  SeparatedList[*ArgumentNode]{Elements: arguments, Separators: separators},
		CloseParen: closeP,
	}
}

func (p *Parser) parseArgument() *ArgumentNode {
	modifier := None[*Token]()
	if p.current().Kind == TokenRef || p.current().Kind == TokenOut {
		modifier = Some(p.tokens.Advance())
	}

	expr := p.parseExpression()

	return &ArgumentNode{
		baseNode:   newBase(NodeArgument, spanOf(modifier.Value, expr)),
		Modifier:   modifier,
		Expression: expr,
	}
}
