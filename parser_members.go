package cscst

// --- attribute sections, per §4.6 ---

// validAttributeTargets is the full set of C# attribute target specifiers.
// A target identifier outside this set (even one of the other contextual
// keywords, like `get`) is reported but still consumed as a target so that
// parsing of the section it prefixes proceeds normally.
var validAttributeTargets = map[string]bool{
	"assembly": true,
	"module":   true,
	"field":    true,
	"event":    true,
	"method":   true,
	"param":    true,
	"property": true,
	"return":   true,
	"type":     true,
}

func (p *Parser) parseAttributeSections() []*AttributeSectionNode {
	var sections []*AttributeSectionNode
	for p.current().Kind == TokenOpenBracket {
		sections = append(sections, p.parseAttributeSection())
	}

	return sections
}

func (p *Parser) parseAttributeSection() *AttributeSectionNode {
	p.pushContext(ContextAttributeList)
	defer p.popContext()

	open := p.expectKind(TokenOpenBracket)

	target := None[*Token]()
	colon := None[*Token]()

	if ContextualKeywords[p.current().Text] && p.tokens.Lookahead().Kind == TokenColon {
		tok := p.tokens.Advance()
		if !validAttributeTargets[tok.Text] {
			p.diagnostics.ReportError(tok.Position, "'"+tok.Text+"' is not a valid attribute target")
		}

		target = Some(tok)
		colon = Some(p.expectKind(TokenColon))
	}

	var attributes []*AttributeNode
	var separators []*Token

	attributes = append(attributes, p.parseAttribute())
	for p.current().Kind == TokenComma {
		separators = append(separators, p.tokens.Advance())

		if p.current().Kind == TokenCloseBracket {
			break
		}

		attributes = append(attributes, p.parseAttribute())
	}

	closeB := p.expectKind(TokenCloseBracket)

	return &AttributeSectionNode{
		baseNode:     newBase(NodeAttributeSection, spanOf(open, closeB)),
		OpenBracket:  open,
		Target:       target,
		Colon:        colon,
		Attributes:   SeparatedList[*AttributeNode]{Elements: attributes, Separators: separators},
		CloseBracket: closeB,
	}
}

func (p *Parser) parseAttribute() *AttributeNode {
	name := p.parseTypeName()

	arguments := None[*ArgumentListNodeAttr]()
	if p.current().Kind == TokenOpenParen {
		arguments = Some(p.parseAttributeArgumentList())
	}

	end := name.Span()
	if arguments.Present {
		end = spanOf(name, arguments.Value)
	}

	return &AttributeNode{baseNode: newBase(NodeAttribute, end), Name: name, Arguments: arguments}
}

func (p *Parser) parseAttributeArgumentList() *ArgumentListNodeAttr {
	open := p.expectKind(TokenOpenParen)

	var arguments []*AttributeArgumentNode
	var separators []*Token

	if p.current().Kind != TokenCloseParen {
		arguments = append(arguments, p.parseAttributeArgument())

		for p.current().Kind == TokenComma {
			separators = append(separators, p.tokens.Advance())
			arguments = append(arguments, p.parseAttributeArgument())
		}
	}

	closeP := p.expectKind(TokenCloseParen)

	return &ArgumentListNodeAttr{
		baseNode:   newBase(NodeArgumentList, spanOf(open, closeP)),
		OpenParen:  open,
		Arguments:  SeparatedList[*AttributeArgumentNode]{Elements: arguments, Separators: separators},
		CloseParen: closeP,
	}
}

// parseAttributeArgument parses either a positional argument or a named
// one (`Name = expr`), detected by an identifier immediately followed by
// `=` that is not itself an equality operator (the lexer never produces
// `==` as two tokens, so a bare `=` here is unambiguous).
func (p *Parser) parseAttributeArgument() *AttributeArgumentNode {
	name := None[*Token]()
	equals := None[*Token]()

	if p.current().Kind == TokenIdentifier && p.tokens.Lookahead().Kind == TokenEquals {
		name = Some(p.tokens.Advance())
		equals = Some(p.tokens.Advance())
	}

	expr := p.parseExpression()

	start := expr.Span()
	if name.Present {
		start = spanOf(name.Value, expr)
	}

	return &AttributeArgumentNode{baseNode: newBase(NodeAttributeArgument, start), Name: name, Equals: equals, Expression: expr}
}

// --- modifiers, per §4.4 ---

// collectModifiers greedily consumes every leading modifier-keyword token,
// rejecting duplicates. Validity against the eventual declaration kind is
// checked once that kind is known, by validateModifiers.
func (p *Parser) collectModifiers() []*Token {
	var modifiers []*Token
	seen := map[TokenKind]bool{}

	for modifierTokenKinds[p.current().Kind] {
		tok := p.tokens.Advance()

		if seen[tok.Kind] {
			p.diagnostics.ReportError(tok.Position, "Duplicate '"+tok.Text+"' modifier")

			continue
		}

		seen[tok.Kind] = true
		modifiers = append(modifiers, tok)
	}

	return modifiers
}

// hasModifier reports whether modifiers contains a token of kind.
func hasModifier(modifiers []*Token, kind TokenKind) bool {
	for _, mod := range modifiers {
		if mod.Kind == kind {
			return true
		}
	}

	return false
}

// validateModifiers reports "The modifier '{mod}' is not valid for this
// item" for every collected modifier not permitted on a member of kind,
// given the declaration's own enclosing context (the top of the context
// stack at the point the declaration starts) to tell a namespace-scoped
// declaration apart from one nested in a type.
func (p *Parser) validateModifiers(modifiers []*Token, kind DeclarationKind, enclosingIsInterface bool) {
	entries := p.contexts.entries
	i := len(entries) - 1
	for i >= 0 && (entries[i] == ContextProperty || entries[i] == ContextIndexer || entries[i] == ContextEvent) {
		i--
	}
	enclosingIsNamespace := i >= 0 && entries[i] == ContextNamespace

	for _, mod := range modifiers {
		if !isModifierValid(kind, mod.Kind, enclosingIsInterface, enclosingIsNamespace) {
			p.diagnostics.ReportError(mod.Position, "The modifier '"+mod.Text+"' is not valid for this item")
		}
	}
}

// --- parameter lists, per §4.6 ---

func (p *Parser) parseParameterList() *ParameterListNode {
	p.pushContext(ContextParameterList)
	defer p.popContext()

	open := p.expectKind(TokenOpenParen)

	var parameters []*ParameterNode
	var separators []*Token

	if p.current().Kind != TokenCloseParen {
		parameters = append(parameters, p.parseParameter())

		for p.current().Kind == TokenComma {
			separators = append(separators, p.tokens.Advance())
			parameters = append(parameters, p.parseParameter())
		}
	}

	closeP := p.expectKind(TokenCloseParen)

	return &ParameterListNode{
		baseNode:   newBase(NodeParameterList, spanOf(open, closeP)),
		OpenParen:  open,
		Parameters: SeparatedList[*ParameterNode]{Elements: parameters, Separators: separators},
		CloseParen: closeP,
	}
}

var parameterModifiers = set(TokenRef, TokenOut, TokenParams, TokenThis)

func (p *Parser) parseParameter() *ParameterNode {
	attrs := p.parseAttributeSections()

	modifier := None[*Token]()
	if parameterModifiers[p.current().Kind] {
		modifier = Some(p.tokens.Advance())
	}

	typ := p.parseType()
	identifier := p.expectIdentifier()

	equals := None[*Token]()
	defaultValue := None[Expression]()

	if eq, ok := p.expectOptional(TokenEquals).Get(); ok {
		equals = Some(eq)
		defaultValue = Some(p.parseExpression())
	}

	end := identifier.Span()
	if defaultValue.Present {
		end = spanOf(identifier, defaultValue.Value)
	}

	return &ParameterNode{
		baseNode:     newBase(NodeParameter, end),
		Attributes:   attrs,
		Modifier:     modifier,
		Type:         typ,
		Identifier:   identifier,
		Equals:       equals,
		DefaultValue: defaultValue,
	}
}

// --- type declarations (class/struct/interface/enum/delegate), per §4.4 ---

func (p *Parser) parseTypeDeclaration(kind DeclarationKind, keywordKind TokenKind, attrs []*AttributeSectionNode, modifiers []*Token, start int) *TypeDeclarationNode {
	p.validateModifiers(modifiers, kind, false)
	p.pushContext(ContextType)
	defer p.popContext()

	keyword := p.expectKind(keywordKind)
	identifier := p.expectIdentifier()
	baseList := p.parseBaseList()
	open := p.expectKind(TokenOpenBrace)

	enclosingIsInterface := kind == DeclInterface

	if hasModifier(modifiers, TokenUnsafe) {
		p.pushUnsafeContext()
		defer p.popUnsafeContext()
	}

	var members []MemberDeclaration
	for p.current().Kind != TokenCloseBrace && p.current().Kind != TokenEndOfFile {
		members = append(members, p.parseTypeMember(enclosingIsInterface))
	}

	closeB := p.expectKind(TokenCloseBrace)
	semi := p.expectOptional(TokenSemicolon)

	nodeKind := map[DeclarationKind]NodeKind{
		DeclClass:     NodeClassDeclaration,
		DeclStruct:    NodeStructDeclaration,
		DeclInterface: NodeInterfaceDeclaration,
	}[kind]

	return &TypeDeclarationNode{
		baseNode:   newBase(nodeKind, NewTextSpanFromBounds(start, closeB.EndTextPosition())),
		Attributes: attrs,
		Modifiers:  modifiers,
		Keyword:    keyword,
		Identifier: identifier,
		BaseList:   baseList,
		OpenBrace:  open,
		Members:    members,
		CloseBrace: closeB,
		Semicolon:  semi,
		declKind:   kind,
	}
}

func (p *Parser) parseEnumDeclaration(attrs []*AttributeSectionNode, modifiers []*Token, start int) *EnumDeclarationNode {
	p.validateModifiers(modifiers, DeclEnum, false)
	p.pushContext(ContextEnumMember)
	defer p.popContext()

	keyword := p.expectKind(TokenEnum)
	identifier := p.expectIdentifier()

	colon := None[*Token]()
	baseType := None[TypeNode]()
	if c, ok := p.expectOptional(TokenColon).Get(); ok {
		colon = Some(c)
		baseType = Some(p.parseType())
	}

	open := p.expectKind(TokenOpenBrace)

	var members []*EnumMemberDeclarationNode
	var separators []*Token

	if p.current().Kind != TokenCloseBrace {
		members = append(members, p.parseEnumMember())

		for p.current().Kind == TokenComma {
			separators = append(separators, p.tokens.Advance())

			if p.current().Kind == TokenCloseBrace {
				break
			}

			members = append(members, p.parseEnumMember())
		}
	}

	closeB := p.expectKind(TokenCloseBrace)
	semi := p.expectOptional(TokenSemicolon)

	return &EnumDeclarationNode{
		baseNode:    newBase(NodeEnumDeclaration, NewTextSpanFromBounds(start, closeB.EndTextPosition())),
		Attributes:  attrs,
		Modifiers:   modifiers,
		EnumKeyword: keyword,
		Identifier:  identifier,
		Colon:       colon,
		BaseType:    baseType,
		OpenBrace:   open,
		Members:     SeparatedList[*EnumMemberDeclarationNode]{Elements: members, Separators: separators},
		CloseBrace:  closeB,
		Semicolon:   semi,
	}
}

func (p *Parser) parseEnumMember() *EnumMemberDeclarationNode {
	attrs := p.parseAttributeSections()
	identifier := p.expectIdentifier()

	equals := None[*Token]()
	value := None[Expression]()

	if eq, ok := p.expectOptional(TokenEquals).Get(); ok {
		equals = Some(eq)
		value = Some(p.parseExpression())
	}

	end := identifier.Span()
	if value.Present {
		end = spanOf(identifier, value.Value)
	}

	return &EnumMemberDeclarationNode{
		baseNode:   newBase(NodeEnumMemberDeclaration, end),
		Attributes: attrs,
		Identifier: identifier,
		Equals:     equals,
		Value:      value,
	}
}

func (p *Parser) parseDelegateDeclaration(attrs []*AttributeSectionNode, modifiers []*Token, start int) *DelegateDeclarationNode {
	p.validateModifiers(modifiers, DeclDelegate, false)
	p.pushContext(ContextDelegate)
	defer p.popContext()

	keyword := p.expectKind(TokenDelegate)
	returnType := p.parseType()
	identifier := p.expectIdentifier()
	parameters := p.parseParameterList()
	semi := p.expectKind(TokenSemicolon)

	return &DelegateDeclarationNode{
		baseNode:        newBase(NodeDelegateDeclaration, NewTextSpanFromBounds(start, semi.EndTextPosition())),
		Attributes:      attrs,
		Modifiers:       modifiers,
		DelegateKeyword: keyword,
		ReturnType:      returnType,
		Identifier:      identifier,
		Parameters:      parameters,
		Semicolon:       semi,
	}
}

// --- member dispatch, per §4.4 ---

// parseTypeMember parses one member inside a type (or, for top-level
// declarations, a namespace/compilation unit) body: attributes, modifiers,
// then dispatch on the first non-modifier token.
func (p *Parser) parseTypeMember(enclosingIsInterface bool) MemberDeclaration {
	start := p.current().Position
	attrs := p.parseAttributeSections()
	modifiers := p.collectModifiers()

	if hasModifier(modifiers, TokenUnsafe) {
		p.pushUnsafeContext()
		defer p.popUnsafeContext()
	}

	switch p.current().Kind {
	case TokenClass:
		return p.parseTypeDeclaration(DeclClass, TokenClass, attrs, modifiers, start)
	case TokenStruct:
		return p.parseTypeDeclaration(DeclStruct, TokenStruct, attrs, modifiers, start)
	case TokenInterface:
		return p.parseTypeDeclaration(DeclInterface, TokenInterface, attrs, modifiers, start)
	case TokenEnum:
		return p.parseEnumDeclaration(attrs, modifiers, start)
	case TokenDelegate:
		return p.parseDelegateDeclaration(attrs, modifiers, start)
	case TokenImplicit, TokenExplicit:
		return p.parseConversionOperatorDeclaration(attrs, modifiers, start)
	case TokenConst:
		return p.parseFieldDeclaration(attrs, modifiers, true, start)
	case TokenEvent:
		return p.parseEventMember(attrs, modifiers, start)
	case TokenTilde:
		p.validateModifiers(modifiers, DeclDestructor, false)

		return p.parseDestructorDeclaration(attrs, start)
	}

	if isTypeStartToken(p.current().Kind) {
		return p.parseTypeLedMember(attrs, modifiers, enclosingIsInterface, start)
	}

	skipped := p.Synchronize()
	if len(skipped) > 0 {
		p.diagnostics.ReportError(skipped[0].Position, "Member declaration expected")

		next := p.current()
		next.LeadingTrivia = append(skipped, next.LeadingTrivia...)
	}

	return &IncompleteMemberDeclarationNode{
		baseNode:   newBase(NodeIncompleteMemberDeclaration, NewTextSpanFromBounds(start, p.current().Position)),
		Attributes: attrs,
		Modifiers:  modifiers,
		Type:       None[TypeNode](),
	}
}

// parseTypeLedMember handles every member shape that begins with an
// identifier-or-predefined-type token: constructors, indexers, operators,
// methods, properties, fields, and explicitly-interfaced members, per
// §4.4's dispatch table.
func (p *Parser) parseTypeLedMember(attrs []*AttributeSectionNode, modifiers []*Token, enclosingIsInterface bool, start int) MemberDeclaration {
	if p.current().Kind == TokenIdentifier && p.tokens.Lookahead().Kind == TokenOpenParen {
		return p.parseConstructorDeclaration(attrs, modifiers, start)
	}

	typ := p.parseType()

	if p.current().Kind == TokenThis {
		return p.parseIndexerDeclaration(attrs, modifiers, typ, None[*ExplicitInterfaceSpecifierNode](), enclosingIsInterface, start)
	}

	if p.current().Kind == TokenOperator {
		return p.parseOperatorDeclaration(attrs, modifiers, typ, start)
	}

	explicitInterface := p.tryParseExplicitInterfaceSpecifier()

	if explicitInterface.Present && p.current().Kind == TokenThis {
		return p.parseIndexerDeclaration(attrs, modifiers, typ, explicitInterface, enclosingIsInterface, start)
	}

	identifier := p.expectIdentifier()

	switch p.current().Kind {
	case TokenOpenParen:
		return p.parseMethodDeclaration(attrs, modifiers, typ, explicitInterface, identifier, enclosingIsInterface, start)
	case TokenOpenBrace:
		return p.parsePropertyDeclaration(attrs, modifiers, typ, explicitInterface, identifier, enclosingIsInterface, start)
	case TokenSemicolon, TokenEquals, TokenComma:
		return p.parseFieldDeclarationFromFirstName(attrs, modifiers, typ, identifier, start)
	default:
		p.diagnostics.ReportError(p.current().Position, "Invalid member declaration")

		return &IncompleteMemberDeclarationNode{
			baseNode:   newBase(NodeIncompleteMemberDeclaration, NewTextSpanFromBounds(start, identifier.EndTextPosition())),
			Attributes: attrs,
			Modifiers:  modifiers,
			Type:       Some(typ),
		}
	}
}

// tryParseExplicitInterfaceSpecifier speculatively consumes a dotted
// `Interface.` prefix preceding a member name, per §4.4. It commits only
// if the prefix is followed by something that can itself start a member
// name (`this`, or an identifier).
func (p *Parser) tryParseExplicitInterfaceSpecifier() Optional[*ExplicitInterfaceSpecifierNode] {
	if p.current().Kind != TokenIdentifier || p.tokens.Lookahead().Kind != TokenDot {
		return None[*ExplicitInterfaceSpecifierNode]()
	}

	mark := p.beginSpeculation()

	first := p.tokens.Advance()
	var typ TypeNode = &SimpleTypeNode{baseNode: newBase(NodeSimpleType, first.Span()), Identifier: first}
	dot := p.tokens.Advance()

	for p.current().Kind == TokenIdentifier && p.tokens.Lookahead().Kind == TokenDot {
		right := p.tokens.Advance()
		typ = &QualifiedTypeNode{baseNode: newBase(NodeQualifiedType, spanOf(typ, dot, right)), Left: typ, Dot: dot, Right: right}
		dot = p.tokens.Advance()
	}

	if p.current().Kind != TokenIdentifier && p.current().Kind != TokenThis {
		p.rollback(mark)

		return None[*ExplicitInterfaceSpecifierNode]()
	}

	p.commit(mark)

	return Some(&ExplicitInterfaceSpecifierNode{
		baseNode: newBase(NodeExplicitInterfaceSpecifier, spanOf(typ, dot)),
		Type:     typ,
		Dot:      dot,
	})
}

func (p *Parser) parseFieldDeclaration(attrs []*AttributeSectionNode, modifiers []*Token, isConst bool, start int) *FieldDeclarationNode {
	p.pushContext(ContextConstant)
	defer p.popContext()

	constKeyword := None[*Token]()
	if isConst {
		constKeyword = Some(p.expectKind(TokenConst))
	}

	typ := p.parseType()
	first := p.parseVariableDeclarator()

	return p.finishFieldDeclaration(attrs, modifiers, constKeyword, typ, first, start)
}

// parseFieldDeclarationFromFirstName finishes a field declaration whose
// type and first declarator name have already been consumed by the
// member-dispatch lookahead.
func (p *Parser) parseFieldDeclarationFromFirstName(attrs []*AttributeSectionNode, modifiers []*Token, typ TypeNode, identifier *Token, start int) *FieldDeclarationNode {
	equals := None[*Token]()
	initializer := None[Expression]()

	if eq, ok := p.expectOptional(TokenEquals).Get(); ok {
		equals = Some(eq)
		initializer = Some(p.parseInitializerElement())
	}

	first := &VariableDeclaratorNode{
		baseNode:    newBase(NodeVariableDeclarator, identifier.Span()),
		Identifier:  identifier,
		Equals:      equals,
		Initializer: initializer,
	}

	return p.finishFieldDeclaration(attrs, modifiers, None[*Token](), typ, first, start)
}

func (p *Parser) finishFieldDeclaration(attrs []*AttributeSectionNode, modifiers []*Token, constKeyword Optional[*Token], typ TypeNode, first *VariableDeclaratorNode, start int) *FieldDeclarationNode {
	declarators := []*VariableDeclaratorNode{first}
	var separators []*Token

	for p.current().Kind == TokenComma {
		separators = append(separators, p.tokens.Advance())
		declarators = append(declarators, p.parseVariableDeclarator())
	}

	semi := p.expectKind(TokenSemicolon)

	if constKeyword.Present {
		for _, mod := range modifiers {
			if !isValidConstFieldModifier(mod.Kind) {
				p.diagnostics.ReportError(mod.Position, "The modifier '"+mod.Text+"' is not valid for this item")
			}
		}
	} else {
		p.validateModifiers(modifiers, DeclField, false)
	}

	return &FieldDeclarationNode{
		baseNode:     newBase(NodeFieldDeclaration, NewTextSpanFromBounds(start, semi.EndTextPosition())),
		Attributes:   attrs,
		Modifiers:    modifiers,
		ConstKeyword: constKeyword,
		Type:         typ,
		Declarators:  SeparatedList[*VariableDeclaratorNode]{Elements: declarators, Separators: separators},
		Semicolon:    semi,
	}
}

// parseEventMember handles the `event` keyword, branching on whether the
// name is followed by braces (accessor-bodied event) or a declarator list
// (field-like event), per §4.4.
func (p *Parser) parseEventMember(attrs []*AttributeSectionNode, modifiers []*Token, start int) MemberDeclaration {
	p.pushContext(ContextEvent)
	defer p.popContext()

	keyword := p.expectKind(TokenEvent)
	typ := p.parseType()
	explicitInterface := p.tryParseExplicitInterfaceSpecifier()
	identifier := p.expectIdentifier()

	if p.current().Kind == TokenOpenBrace {
		open := p.expectKind(TokenOpenBrace)
		accessors := p.parseAccessorList("add", "remove")
		closeB := p.expectKind(TokenCloseBrace)

		p.validateModifiers(modifiers, DeclEvent, false)

		return &EventDeclarationNode{
			baseNode:          newBase(NodeEventDeclaration, NewTextSpanFromBounds(start, closeB.EndTextPosition())),
			Attributes:        attrs,
			Modifiers:         modifiers,
			EventKeyword:      keyword,
			Type:              typ,
			ExplicitInterface: explicitInterface,
			Identifier:        identifier,
			OpenBrace:         open,
			Accessors:         accessors,
			CloseBrace:        closeB,
		}
	}

	equals := None[*Token]()
	initializer := None[Expression]()
	if eq, ok := p.expectOptional(TokenEquals).Get(); ok {
		equals = Some(eq)
		initializer = Some(p.parseInitializerElement())
	}

	first := &VariableDeclaratorNode{
		baseNode:    newBase(NodeVariableDeclarator, identifier.Span()),
		Identifier:  identifier,
		Equals:      equals,
		Initializer: initializer,
	}

	declarators := []*VariableDeclaratorNode{first}
	var separators []*Token

	for p.current().Kind == TokenComma {
		separators = append(separators, p.tokens.Advance())
		declarators = append(declarators, p.parseVariableDeclarator())
	}

	semi := p.expectKind(TokenSemicolon)

	p.validateModifiers(modifiers, DeclEventField, false)

	return &EventFieldDeclarationNode{
		baseNode:     newBase(NodeEventFieldDeclaration, NewTextSpanFromBounds(start, semi.EndTextPosition())),
		Attributes:   attrs,
		Modifiers:    modifiers,
		EventKeyword: keyword,
		Type:         typ,
		Declarators:  SeparatedList[*VariableDeclaratorNode]{Elements: declarators, Separators: separators},
		Semicolon:    semi,
	}
}

func (p *Parser) parsePropertyDeclaration(attrs []*AttributeSectionNode, modifiers []*Token, typ TypeNode, explicitInterface Optional[*ExplicitInterfaceSpecifierNode], identifier *Token, enclosingIsInterface bool, start int) *PropertyDeclarationNode {
	p.pushContext(ContextProperty)
	defer p.popContext()

	open := p.expectKind(TokenOpenBrace)
	accessors := p.parseAccessorList("get", "set")
	closeB := p.expectKind(TokenCloseBrace)

	equals := None[*Token]()
	initializer := None[Expression]()
	semi := None[*Token]()

	if eq, ok := p.expectOptional(TokenEquals).Get(); ok {
		equals = Some(eq)
		initializer = Some(p.parseInitializerElement())
		semi = Some(p.expectKind(TokenSemicolon))
	}

	p.validateModifiers(modifiers, DeclProperty, enclosingIsInterface)

	end := closeB.EndTextPosition()
	if semi.Present {
		end = semi.Value.EndTextPosition()
	}

	return &PropertyDeclarationNode{
		baseNode:          newBase(NodePropertyDeclaration, NewTextSpanFromBounds(start, end)),
		Attributes:        attrs,
		Modifiers:         modifiers,
		Type:              typ,
		ExplicitInterface: explicitInterface,
		Identifier:        identifier,
		OpenBrace:         open,
		Accessors:         accessors,
		CloseBrace:        closeB,
		Equals:            equals,
		Initializer:       initializer,
		Semicolon:         semi,
	}
}

func (p *Parser) parseIndexerDeclaration(attrs []*AttributeSectionNode, modifiers []*Token, typ TypeNode, explicitInterface Optional[*ExplicitInterfaceSpecifierNode], enclosingIsInterface bool, start int) *IndexerDeclarationNode {
	p.pushContext(ContextIndexer)
	defer p.popContext()

	thisKeyword := p.expectKind(TokenThis)
	openBracket := p.expectKind(TokenOpenBracket)

	var parameters []*ParameterNode
	var paramSeparators []*Token

	parameters = append(parameters, p.parseParameter())
	for p.current().Kind == TokenComma {
		paramSeparators = append(paramSeparators, p.tokens.Advance())
		parameters = append(parameters, p.parseParameter())
	}

	closeBracket := p.expectKind(TokenCloseBracket)
	open := p.expectKind(TokenOpenBrace)
	accessors := p.parseAccessorList("get", "set")
	closeB := p.expectKind(TokenCloseBrace)

	p.validateModifiers(modifiers, DeclIndexer, enclosingIsInterface)

	return &IndexerDeclarationNode{
		baseNode:          newBase(NodeIndexerDeclaration, NewTextSpanFromBounds(start, closeB.EndTextPosition())),
		Attributes:        attrs,
		Modifiers:         modifiers,
		Type:              typ,
		ExplicitInterface: explicitInterface,
		ThisKeyword:       thisKeyword,
		OpenBracket:       openBracket,
		Parameters:        SeparatedList[*ParameterNode]{Elements: parameters, Separators: paramSeparators},
		CloseBracket:      closeBracket,
		OpenBrace:         open,
		Accessors:         accessors,
		CloseBrace:        closeB,
	}
}

// parseAccessorList parses the body of a property/indexer/event's
// accessor block. primary and secondary are the two contextual keywords
// valid here (get/set or add/remove); any other identifier reports "A
// {primary} or {secondary} accessor expected" and produces an incomplete
// accessor that still consumes a body if one follows.
func (p *Parser) parseAccessorList(primary, secondary string) []*AccessorDeclarationNode {
	var accessors []*AccessorDeclarationNode

	for p.current().Kind != TokenCloseBrace && p.current().Kind != TokenEndOfFile {
		accessors = append(accessors, p.parseAccessorDeclaration(primary, secondary))
	}

	return accessors
}

func (p *Parser) parseAccessorDeclaration(primary, secondary string) *AccessorDeclarationNode {
	start := p.current().Position
	attrs := p.parseAttributeSections()
	modifiers := p.collectModifiers()

	var keyword *Token
	if p.current().Kind == TokenIdentifier && (p.current().Text == primary || p.current().Text == secondary) {
		keyword = p.tokens.Advance()
	} else {
		p.diagnostics.ReportError(p.current().Position, "A "+primary+" or "+secondary+" accessor expected")
		keyword = p.synthesize(TokenIdentifier)
	}

	body := None[*BlockStatementNode]()
	semi := None[*Token]()

	if p.current().Kind == TokenOpenBrace {
		body = Some(p.parseBlockStatement())
	} else {
		semi = Some(p.expectKind(TokenSemicolon))
	}

	end := keyword.Span()
	if body.Present {
		end = spanOf(keyword, body.Value)
	} else if semi.Present {
		end = spanOf(keyword, semi.Value)
	}

	return &AccessorDeclarationNode{
		baseNode:   newBase(NodeAccessorDeclaration, NewTextSpanFromBounds(start, end.End())),
		Attributes: attrs,
		Modifiers:  modifiers,
		Keyword:    keyword,
		Body:       body,
		Semicolon:  semi,
	}
}

func (p *Parser) parseMethodDeclaration(attrs []*AttributeSectionNode, modifiers []*Token, returnType TypeNode, explicitInterface Optional[*ExplicitInterfaceSpecifierNode], identifier *Token, enclosingIsInterface bool, start int) *MethodDeclarationNode {
	parameters := p.parseParameterList()

	body := None[*BlockStatementNode]()
	semi := None[*Token]()

	if p.current().Kind == TokenOpenBrace {
		body = Some(p.parseBlockStatement())
	} else {
		semi = Some(p.expectKind(TokenSemicolon))
	}

	p.validateModifiers(modifiers, DeclMethod, enclosingIsInterface)

	end := parameters.Span().End()
	if body.Present {
		end = body.Value.Span().End()
	} else if semi.Present {
		end = semi.Value.EndTextPosition()
	}

	return &MethodDeclarationNode{
		baseNode:          newBase(NodeMethodDeclaration, NewTextSpanFromBounds(start, end)),
		Attributes:        attrs,
		Modifiers:         modifiers,
		ReturnType:        returnType,
		ExplicitInterface: explicitInterface,
		Identifier:        identifier,
		Parameters:        parameters,
		Body:              body,
		Semicolon:         semi,
	}
}

func (p *Parser) parseConstructorDeclaration(attrs []*AttributeSectionNode, modifiers []*Token, start int) *ConstructorDeclarationNode {
	identifier := p.tokens.Advance()
	parameters := p.parseParameterList()

	initializer := None[*ConstructorInitializerNode]()
	if p.current().Kind == TokenColon {
		initializer = Some(p.parseConstructorInitializer())
	}

	body := p.parseBlockStatement()

	p.validateModifiers(modifiers, DeclConstructor, false)

	return &ConstructorDeclarationNode{
		baseNode:    newBase(NodeConstructorDeclaration, NewTextSpanFromBounds(start, body.Span().End())),
		Attributes:  attrs,
		Modifiers:   modifiers,
		Identifier:  identifier,
		Parameters:  parameters,
		Initializer: initializer,
		Body:        body,
	}
}

func (p *Parser) parseConstructorInitializer() *ConstructorInitializerNode {
	colon := p.expectKind(TokenColon)

	var keyword *Token
	if p.current().Kind == TokenBase || p.current().Kind == TokenThis {
		keyword = p.tokens.Advance()
	} else {
		p.diagnostics.ReportError(p.current().Position, "'base' or 'this' expected")
		keyword = p.synthesize(TokenBase)
	}

	arguments := p.parseArgumentList()

	return &ConstructorInitializerNode{
		baseNode:  newBase(NodeConstructorInitializer, spanOf(colon, arguments)),
		Colon:     colon,
		Keyword:   keyword,
		Arguments: arguments,
	}
}

func (p *Parser) parseDestructorDeclaration(attrs []*AttributeSectionNode, start int) *DestructorDeclarationNode {
	tilde := p.expectKind(TokenTilde)
	identifier := p.expectIdentifier()
	parameters := p.parseParameterList()
	body := p.parseBlockStatement()

	return &DestructorDeclarationNode{
		baseNode:   newBase(NodeDestructorDeclaration, NewTextSpanFromBounds(start, body.Span().End())),
		Attributes: attrs,
		Tilde:      tilde,
		Identifier: identifier,
		Parameters: parameters,
		Body:       body,
	}
}

// overloadableOperators are the tokens that can follow the `operator`
// keyword in an operator declaration.
var overloadableOperators = set(
	TokenPlus, TokenMinus, TokenStar, TokenSlash, TokenPercent,
	TokenAmpersand, TokenPipe, TokenCaret, TokenBang, TokenTilde,
	TokenPlusPlus, TokenMinusMinus, TokenEqualsEquals, TokenBangEquals,
	TokenLess, TokenGreater, TokenLessEquals, TokenGreaterEquals,
	TokenTrue, TokenFalse,
)

func (p *Parser) parseOperatorDeclaration(attrs []*AttributeSectionNode, modifiers []*Token, returnType TypeNode, start int) *OperatorDeclarationNode {
	operatorKeyword := p.expectKind(TokenOperator)

	var operator *Token
	if overloadableOperators[p.current().Kind] {
		operator = p.tokens.Advance()
	} else {
		p.diagnostics.ReportError(p.current().Position, "Overloadable operator expected")
		operator = p.synthesize(p.current().Kind)
	}

	parameters := p.parseParameterList()

	body := None[*BlockStatementNode]()
	semi := None[*Token]()

	if p.current().Kind == TokenOpenBrace {
		body = Some(p.parseBlockStatement())
	} else {
		semi = Some(p.expectKind(TokenSemicolon))
	}

	p.validateModifiers(modifiers, DeclOperator, false)

	end := parameters.Span().End()
	if body.Present {
		end = body.Value.Span().End()
	} else if semi.Present {
		end = semi.Value.EndTextPosition()
	}

	return &OperatorDeclarationNode{
		baseNode:        newBase(NodeOperatorDeclaration, NewTextSpanFromBounds(start, end)),
		Attributes:      attrs,
		Modifiers:       modifiers,
		ReturnType:      returnType,
		OperatorKeyword: operatorKeyword,
		Operator:        operator,
		Parameters:      parameters,
		Body:            body,
		Semicolon:       semi,
	}
}

func (p *Parser) parseConversionOperatorDeclaration(attrs []*AttributeSectionNode, modifiers []*Token, start int) *ConversionOperatorDeclarationNode {
	conversionKind := p.tokens.Advance()
	operatorKeyword := p.expectKind(TokenOperator)
	typ := p.parseType()
	parameters := p.parseParameterList()

	body := None[*BlockStatementNode]()
	semi := None[*Token]()

	if p.current().Kind == TokenOpenBrace {
		body = Some(p.parseBlockStatement())
	} else {
		semi = Some(p.expectKind(TokenSemicolon))
	}

	p.validateModifiers(modifiers, DeclConversionOperator, false)

	end := parameters.Span().End()
	if body.Present {
		end = body.Value.Span().End()
	} else if semi.Present {
		end = semi.Value.EndTextPosition()
	}

	return &ConversionOperatorDeclarationNode{
		baseNode:        newBase(NodeConversionOperatorDeclaration, NewTextSpanFromBounds(start, end)),
		Attributes:      attrs,
		Modifiers:       modifiers,
		ConversionKind:  conversionKind,
		OperatorKeyword: operatorKeyword,
		Type:            typ,
		Parameters:      parameters,
		Body:            body,
		Semicolon:       semi,
	}
}
