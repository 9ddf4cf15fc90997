package cscst

// predefinedTypeKeywords are the token kinds that name a built-in type
// directly, usable wherever a TypeNode is expected.
var predefinedTypeKeywords = set(
	TokenBool, TokenByte, TokenChar, TokenDecimal, TokenDouble, TokenFloat,
	TokenInt, TokenLong, TokenObject, TokenSbyte, TokenShort, TokenString,
	TokenUint, TokenUlong, TokenUshort, TokenVoid,
)

// isTypeStartToken reports whether kind can begin a type reference or a
// member's type-prefix-led declaration.
func isTypeStartToken(kind TokenKind) bool {
	return kind == TokenIdentifier || predefinedTypeKeywords[kind]
}

// parseType parses a full type reference: a non-array base type optionally
// followed by one or more array rank specifiers.
func (p *Parser) parseType() TypeNode {
	base := p.parseNonArrayType()

	var ranks []*ArrayRankSpecifierNode
	for p.current().Kind == TokenOpenBracket {
		ranks = append(ranks, p.parseArrayRankSpecifier())
	}

	if len(ranks) == 0 {
		return base
	}

	return &ArrayTypeNode{
		baseNode:    newBase(NodeArrayType, spanOf(base, ranks[len(ranks)-1])),
		ElementType: base,
		Ranks:       ranks,
		IsValidType: allRanksUnsized(ranks),
	}
}

// allRanksUnsized reports whether every rank specifier is empty (`[]`
// rather than `[5]` or `[n, m]`), the shape of an actual array *type* as
// opposed to an array-element-access expression that parseType also
// produces when speculatively probing a cast's parenthesized contents.
func allRanksUnsized(ranks []*ArrayRankSpecifierNode) bool {
	for _, rank := range ranks {
		if len(rank.Sizes.Elements) > 0 {
			return false
		}
	}

	return true
}

// parseNonArrayType parses a predefined type, simple or dot-qualified type
// name, followed by zero or more trailing `*` pointer markers.
func (p *Parser) parseNonArrayType() TypeNode {
	var base TypeNode

	switch {
	case predefinedTypeKeywords[p.current().Kind]:
		keyword := p.tokens.Advance()
		base = &PredefinedTypeNode{baseNode: newBase(NodePredefinedType, keyword.Span()), Keyword: keyword}
	default:
		base = p.parseTypeName()
	}

	for p.current().Kind == TokenStar {
		star := p.tokens.Advance()
		if !p.isUnsafeContext() {
			p.diagnostics.ReportError(star.Position, "Pointers may only be used in an unsafe context")
		}

		base = &PointerTypeNode{
			baseNode:    newBase(NodePointerType, spanOf(base, star)),
			ElementType: base,
			Star:        star,
		}
	}

	return base
}

// parseTypeName parses a simple or dot-qualified identifier chain, the
// shape used by using-directives, namespace names, and base-type lists, as
// well as by parseNonArrayType for non-predefined types.
func (p *Parser) parseTypeName() TypeNode {
	identifier := p.expectIdentifier()

	var node TypeNode = &SimpleTypeNode{
		baseNode:   newBase(NodeSimpleType, identifier.Span()),
		Identifier: identifier,
	}

	for p.current().Kind == TokenDot {
		dot := p.tokens.Advance()
		right := p.expectIdentifier()
		node = &QualifiedTypeNode{
			baseNode: newBase(NodeQualifiedType, spanOf(node, dot, right)),
			Left:     node,
			Dot:      dot,
			Right:    right,
		}
	}

	return node
}

// parseArrayRankSpecifier parses one `[ ]` or `[ expr, expr, ... ]` rank.
func (p *Parser) parseArrayRankSpecifier() *ArrayRankSpecifierNode {
	open := p.expectKind(TokenOpenBracket)

	var sizes SeparatedList[Expression]
	if p.current().Kind != TokenCloseBracket {
		sizes = p.parseSeparatedExpressions(TokenCloseBracket)
	}

	closeB := p.expectKind(TokenCloseBracket)

	return &ArrayRankSpecifierNode{
		baseNode:     newBase(NodeArrayRankSpecifier, spanOf(open, closeB)),
		OpenBracket:  open,
		Sizes:        sizes,
		CloseBracket: closeB,
	}
}

// parseBaseList parses the `: T1, T2, ...` clause trailing a type
// declaration's name, when present.
func (p *Parser) parseBaseList() Optional[*BaseListNode] {
	colon, ok := p.expectOptional(TokenColon).Get()
	if !ok {
		return None[*BaseListNode]()
	}

	var types []TypeNode
	var separators []*Token

	types = append(types, p.parseType())
	for p.current().Kind == TokenComma {
		separators = append(separators, p.tokens.Advance())
		types = append(types, p.parseType())
	}

	list := SeparatedList[TypeNode]{Elements: types, Separators: separators}

	return Some(&BaseListNode{
		baseNode: newBase(NodeBaseList, spanOf(colon, lastType(types))),
		Colon:    colon,
		Types:    list,
	})
}

func lastType(types []TypeNode) SyntaxElement {
	if len(types) == 0 {
		return nil
	}

	return types[len(types)-1]
}

// --- cast vs. parenthesized-expression disambiguation, per §4.4 ---

// castLookaheadStarters are the token kinds that, immediately following a
// parenthesized type, indicate the parenthesized construct was a cast
// rather than a parenthesized expression.
var castLookaheadStarters = set(
	TokenTilde, TokenBang, TokenIdentifier,
	TokenNumericLiteral, TokenStringLiteral, TokenCharacterLiteral,
	TokenTrue, TokenFalse, TokenNull,
	TokenThis, TokenBase, TokenNew, TokenTypeof, TokenSizeof, TokenDefault,
	TokenOpenParen,
	TokenPlus, TokenMinus, TokenStar, TokenAmpersand,
	TokenPlusPlus, TokenMinusMinus,
)

// tryParseCastType speculatively parses `(Type)` at the current `(` and
// reports whether the tokens following it confirm a cast, per §4.4: the
// token after `)` must start a unary/primary expression (excluding `is`/
// `as`, which continue a parenthesized expression's binary operator
// instead), and an array type additionally requires IsValidType.
// On success the stream is left positioned just after the closing `)`
// (speculation committed); on failure the stream and diagnostics are
// rolled back to their state before this call.
func (p *Parser) tryParseCastType() (TypeNode, *Token, *Token, bool) {
	mark := p.beginSpeculation()

	openParen := p.tokens.Advance()
	typ := p.parseType()
	closeParen := p.current()

	if closeParen.Kind != TokenCloseParen {
		p.rollback(mark)

		return nil, nil, nil, false
	}

	p.tokens.Advance()

	next := p.current()
	if !castLookaheadStarters[next.Kind] {
		p.rollback(mark)

		return nil, nil, nil, false
	}

	if arr, ok := typ.(*ArrayTypeNode); ok && !arr.IsValidType {
		p.rollback(mark)

		return nil, nil, nil, false
	}

	p.commit(mark)

	return typ, openParen, closeParen, true
}
