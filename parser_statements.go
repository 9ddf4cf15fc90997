package cscst

// parseStatement dispatches on the current token, per §4.4: an identifier
// followed by `:` is a labeled statement; `const` or a type-starting token
// followed by an identifier is a local declaration (tried speculatively and
// rolled back on failure); everything else that starts a type or
// identifier falls through to an expression statement.
func (p *Parser) parseStatement() Statement {
	switch p.current().Kind {
	case TokenOpenBrace:
		return p.parseBlockStatement()
	case TokenIf:
		return p.parseIfStatement()
	case TokenSwitch:
		return p.parseSwitchStatement()
	case TokenFor:
		return p.parseForStatement()
	case TokenForeach:
		return p.parseForeachStatement()
	case TokenWhile:
		return p.parseWhileStatement()
	case TokenDo:
		return p.parseDoStatement()
	case TokenBreak:
		return p.parseBreakStatement()
	case TokenContinue:
		return p.parseContinueStatement()
	case TokenGoto:
		return p.parseGotoStatement()
	case TokenReturn:
		return p.parseReturnStatement()
	case TokenThrow:
		return p.parseThrowStatement()
	case TokenTry:
		return p.parseTryStatement()
	case TokenChecked, TokenUnchecked:
		return p.parseCheckedStatement()
	case TokenLock:
		return p.parseLockStatement()
	case TokenUsing:
		return p.parseUsingStatement()
	case TokenFixed:
		return p.parseFixedStatement()
	case TokenUnsafe:
		return p.parseUnsafeStatement()
	case TokenSemicolon:
		return p.parseEmptyStatement()
	case TokenConst:
		return p.parseDeclarationStatement(true)
	case TokenIdentifier:
		if p.tokens.Lookahead().Kind == TokenColon {
			return p.parseLabeledStatement()
		}

		return p.parseTypeLedOrExpressionStatement()
	default:
		if isTypeStartToken(p.current().Kind) {
			return p.parseTypeLedOrExpressionStatement()
		}

		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseBlockStatement() *BlockStatementNode {
	p.pushContext(ContextStatement)
	defer p.popContext()

	open := p.expectKind(TokenOpenBrace)

	var statements []Statement
	for p.current().Kind != TokenCloseBrace && p.current().Kind != TokenEndOfFile {
		statements = append(statements, p.parseStatement())
	}

	closeB := p.expectKind(TokenCloseBrace)

	return &BlockStatementNode{
		baseNode:   newBase(NodeBlockStatement, spanOf(open, closeB)),
		OpenBrace:  open,
		Statements: statements,
		CloseBrace: closeB,
	}
}

func (p *Parser) parseLabeledStatement() Statement {
	identifier := p.tokens.Advance()
	colon := p.expectKind(TokenColon)
	stmt := p.parseStatement()

	return &LabeledStatementNode{
		baseNode:   newBase(NodeLabeledStatement, spanOf(identifier, stmt)),
		Identifier: identifier,
		Colon:      colon,
		Statement:  stmt,
	}
}

// parseTypeLedOrExpressionStatement resolves the type-vs-expression
// ambiguity by speculatively trying a local declaration and rolling back
// to an expression statement on failure.
func (p *Parser) parseTypeLedOrExpressionStatement() Statement {
	start := p.current().Position

	if decl, ok := p.tryParseLocalDeclaration(); ok {
		semi := p.expectKind(TokenSemicolon)

		return &DeclarationStatementNode{
			baseNode:    newBase(NodeDeclarationStatement, NewTextSpanFromBounds(start, semi.EndTextPosition())),
			Declaration: decl,
			Semicolon:   semi,
		}
	}

	return p.parseExpressionStatement()
}

func (p *Parser) parseDeclarationStatement(isConst bool) Statement {
	start := p.current().Position

	constKeyword := None[*Token]()
	if isConst {
		constKeyword = Some(p.expectKind(TokenConst))
	}

	decl := p.parseVariableDeclaration()
	semi := p.expectKind(TokenSemicolon)

	return &DeclarationStatementNode{
		baseNode:     newBase(NodeDeclarationStatement, NewTextSpanFromBounds(start, semi.EndTextPosition())),
		ConstKeyword: constKeyword,
		Declaration:  decl,
		Semicolon:    semi,
	}
}

func (p *Parser) parseExpressionStatement() Statement {
	expr := p.parseExpression()
	semi := p.expectKind(TokenSemicolon)

	return &ExpressionStatementNode{
		baseNode:   newBase(NodeExpressionStatement, spanOf(expr, semi)),
		Expression: expr,
		Semicolon:  semi,
	}
}

func (p *Parser) parseEmptyStatement() Statement {
	semi := p.expectKind(TokenSemicolon)

	return &EmptyStatementNode{baseNode: newBase(NodeEmptyStatement, semi.Span()), Semicolon: semi}
}

// parseVariableDeclaration parses `Type declarator, declarator, ...`, the
// shape shared by field declarations and local/for/using declarations.
func (p *Parser) parseVariableDeclaration() *VariableDeclarationNode {
	typ := p.parseType()

	var declarators []*VariableDeclaratorNode
	var separators []*Token

	declarators = append(declarators, p.parseVariableDeclarator())
	for p.current().Kind == TokenComma {
		separators = append(separators, p.tokens.Advance())
		declarators = append(declarators, p.parseVariableDeclarator())
	}

	return &VariableDeclarationNode{
		baseNode:    newBase(NodeVariableDeclarator, spanOf(typ, declarators[len(declarators)-1])),
		Type:        typ,
		Declarators: SeparatedList[*VariableDeclaratorNode]{Elements: declarators, Separators: separators},
	}
}

func (p *Parser) parseVariableDeclarator() *VariableDeclaratorNode {
	identifier := p.expectIdentifier()

	equals := None[*Token]()
	initializer := None[Expression]()

	if eq, ok := p.expectOptional(TokenEquals).Get(); ok {
		equals = Some(eq)
		initializer = Some(p.parseInitializerElement())
	}

	end := identifier.Span()
	if initializer.Present {
		end = spanOf(identifier, initializer.Value)
	}

	return &VariableDeclaratorNode{
		baseNode:    newBase(NodeVariableDeclarator, end),
		Identifier:  identifier,
		Equals:      equals,
		Initializer: initializer,
	}
}

// tryParseLocalDeclaration speculatively parses a VariableDeclarationNode
// and commits only if every declarator has a name, the parse did not end
// in recovery, and it left the cursor at a `;` (or at the `)` closing a
// `using` resource clause), distinguishing `Type name = ...;` from an
// expression statement that merely starts with something type-shaped
// (e.g. `Foo(x);`), per §4.4.
func (p *Parser) tryParseLocalDeclaration() (*VariableDeclarationNode, bool) {
	mark := p.beginSpeculation()
	p.inRecovery = false

	decl := p.parseVariableDeclaration()

	missingName := false
	for _, declarator := range decl.Declarators.Elements {
		missingName = missingName || declarator.Identifier.IsMissing()
	}

	if p.inRecovery || missingName || (p.current().Kind != TokenSemicolon && p.current().Kind != TokenCloseParen) {
		p.rollback(mark)

		return nil, false
	}

	p.commit(mark)

	return decl, true
}

func (p *Parser) parseIfStatement() Statement {
	ifKeyword := p.expectKind(TokenIf)
	open := p.expectKind(TokenOpenParen)
	condition := p.parseExpression()
	closeP := p.expectKind(TokenCloseParen)
	then := p.parseStatement()

	elseClause := None[*ElseClauseNode]()
	if p.current().Kind == TokenElse {
		elseKeyword := p.tokens.Advance()
		elseStmt := p.parseStatement()
		elseClause = Some(&ElseClauseNode{
			baseNode:    newBase(NodeElseClause, spanOf(elseKeyword, elseStmt)),
			ElseKeyword: elseKeyword,
			Statement:   elseStmt,
		})
	}

	end := then.Span()
	if elseClause.Present {
		end = spanOf(then, elseClause.Value)
	}

	return &IfStatementNode{
		baseNode:   newBase(NodeIfStatement, NewTextSpanFromBounds(ifKeyword.Position, end.End())),
		IfKeyword:  ifKeyword,
		OpenParen:  open,
		Condition:  condition,
		CloseParen: closeP,
		Then:       then,
		Else:       elseClause,
	}
}

func (p *Parser) parseSwitchStatement() Statement {
	switchKeyword := p.expectKind(TokenSwitch)
	open := p.expectKind(TokenOpenParen)
	expr := p.parseExpression()
	closeP := p.expectKind(TokenCloseParen)
	openBrace := p.expectKind(TokenOpenBrace)

	var sections []*SwitchSectionNode
	for p.current().Kind != TokenCloseBrace && p.current().Kind != TokenEndOfFile {
		sections = append(sections, p.parseSwitchSection())
	}

	closeBrace := p.expectKind(TokenCloseBrace)

	return &SwitchStatementNode{
		baseNode:      newBase(NodeSwitchStatement, spanOf(switchKeyword, closeBrace)),
		SwitchKeyword: switchKeyword,
		OpenParen:     open,
		Expression:    expr,
		CloseParen:    closeP,
		OpenBrace:     openBrace,
		Sections:      sections,
		CloseBrace:    closeBrace,
	}
}

func (p *Parser) parseSwitchSection() *SwitchSectionNode {
	var labels []*SwitchLabelNode
	for p.current().Kind == TokenCase || p.current().Kind == TokenDefault {
		labels = append(labels, p.parseSwitchLabel())
	}

	var statements []Statement
	for p.current().Kind != TokenCase && p.current().Kind != TokenDefault &&
		p.current().Kind != TokenCloseBrace && p.current().Kind != TokenEndOfFile {
		statements = append(statements, p.parseStatement())
	}

	span := TextSpan{}
	if len(labels) > 0 {
		last := SyntaxElement(labels[len(labels)-1])
		if len(statements) > 0 {
			last = statements[len(statements)-1]
		}

		span = spanOf(labels[0], last)
	}

	return &SwitchSectionNode{baseNode: newBase(NodeSwitchSection, span), Labels: labels, Statements: statements}
}

func (p *Parser) parseSwitchLabel() *SwitchLabelNode {
	if p.current().Kind == TokenCase {
		keyword := p.tokens.Advance()
		value := p.parseExpression()
		colon := p.expectKind(TokenColon)

		return &SwitchLabelNode{
			baseNode: newBase(NodeSwitchLabel, spanOf(keyword, colon)),
			Keyword:  keyword,
			Value:    Some(value),
			Colon:    colon,
		}
	}

	keyword := p.expectKind(TokenDefault)
	colon := p.expectKind(TokenColon)

	return &SwitchLabelNode{
		baseNode: newBase(NodeSwitchLabel, spanOf(keyword, colon)),
		Keyword:  keyword,
		Value:    None[Expression](),
		Colon:    colon,
	}
}

func (p *Parser) parseForStatement() Statement {
	forKeyword := p.expectKind(TokenFor)
	open := p.expectKind(TokenOpenParen)

	initializer := None[*VariableDeclarationOrExpressionListNode]()
	if p.current().Kind != TokenSemicolon {
		initializer = Some(p.parseForInitializer())
	}

	firstSemi := p.expectKind(TokenSemicolon)

	condition := None[Expression]()
	if p.current().Kind != TokenSemicolon {
		condition = Some(p.parseExpression())
	}

	secondSemi := p.expectKind(TokenSemicolon)

	var incrementors SeparatedList[Expression]
	if p.current().Kind != TokenCloseParen {
		incrementors = p.parseSeparatedExpressions(TokenCloseParen)
	}

	closeP := p.expectKind(TokenCloseParen)
	body := p.parseStatement()

	return &ForStatementNode{
		baseNode:     newBase(NodeForStatement, spanOf(forKeyword, body)),
		ForKeyword:   forKeyword,
		OpenParen:    open,
		Initializer:  initializer,
		FirstSemi:    firstSemi,
		Condition:    condition,
		SecondSemi:   secondSemi,
		Incrementors: incrementors,
		CloseParen:   closeP,
		Body:         body,
	}
}

// parseForInitializer parses the shape shared by `for`'s initializer and a
// `using` statement's resource clause: either one variable declaration, or
// a comma-separated expression list, chosen by the same speculative check
// as a declaration statement.
func (p *Parser) parseForInitializer() *VariableDeclarationOrExpressionListNode {
	start := p.current().Position

	if decl, ok := p.tryParseLocalDeclaration(); ok {
		return &VariableDeclarationOrExpressionListNode{
			baseNode:    newBase(NodeVariableDeclarationOrExpressionList, decl.Span()),
			Declaration: Some(decl),
		}
	}

	exprs := p.parseSeparatedExpressions(TokenSemicolon)
	end := start
	if len(exprs.Elements) > 0 {
		end = exprs.Elements[len(exprs.Elements)-1].Span().End()
	}

	return &VariableDeclarationOrExpressionListNode{
		baseNode:    newBase(NodeVariableDeclarationOrExpressionList, NewTextSpanFromBounds(start, end)),
		Expressions: exprs,
	}
}

func (p *Parser) parseForeachStatement() Statement {
	foreachKeyword := p.expectKind(TokenForeach)
	open := p.expectKind(TokenOpenParen)
	typ := p.parseType()
	identifier := p.expectIdentifier()
	inKeyword := p.expectKind(TokenIn)
	expr := p.parseExpression()
	closeP := p.expectKind(TokenCloseParen)
	body := p.parseStatement()

	return &ForeachStatementNode{
		baseNode:       newBase(NodeForeachStatement, spanOf(foreachKeyword, body)),
		ForeachKeyword: foreachKeyword,
		OpenParen:      open,
		Type:           typ,
		Identifier:     identifier,
		InKeyword:      inKeyword,
		Expression:     expr,
		CloseParen:     closeP,
		Body:           body,
	}
}

func (p *Parser) parseWhileStatement() Statement {
	whileKeyword := p.expectKind(TokenWhile)
	open := p.expectKind(TokenOpenParen)
	condition := p.parseExpression()
	closeP := p.expectKind(TokenCloseParen)
	body := p.parseStatement()

	return &WhileStatementNode{
		baseNode:     newBase(NodeWhileStatement, spanOf(whileKeyword, body)),
		WhileKeyword: whileKeyword,
		OpenParen:    open,
		Condition:    condition,
		CloseParen:   closeP,
		Body:         body,
	}
}

func (p *Parser) parseDoStatement() Statement {
	doKeyword := p.expectKind(TokenDo)
	body := p.parseStatement()
	whileKeyword := p.expectKind(TokenWhile)
	open := p.expectKind(TokenOpenParen)
	condition := p.parseExpression()
	closeP := p.expectKind(TokenCloseParen)
	semi := p.expectKind(TokenSemicolon)

	return &DoStatementNode{
		baseNode:     newBase(NodeDoStatement, spanOf(doKeyword, semi)),
		DoKeyword:    doKeyword,
		Body:         body,
		WhileKeyword: whileKeyword,
		OpenParen:    open,
		Condition:    condition,
		CloseParen:   closeP,
		Semicolon:    semi,
	}
}

func (p *Parser) parseBreakStatement() Statement {
	keyword := p.expectKind(TokenBreak)
	semi := p.expectKind(TokenSemicolon)

	return &BreakStatementNode{baseNode: newBase(NodeBreakStatement, spanOf(keyword, semi)), Keyword: keyword, Semicolon: semi}
}

func (p *Parser) parseContinueStatement() Statement {
	keyword := p.expectKind(TokenContinue)
	semi := p.expectKind(TokenSemicolon)

	return &ContinueStatementNode{baseNode: newBase(NodeContinueStatement, spanOf(keyword, semi)), Keyword: keyword, Semicolon: semi}
}

func (p *Parser) parseGotoStatement() Statement {
	keyword := p.expectKind(TokenGoto)

	switch p.current().Kind {
	case TokenCase:
		caseKeyword := p.tokens.Advance()
		expr := p.parseExpression()
		semi := p.expectKind(TokenSemicolon)

		return &GotoCaseStatementNode{
			baseNode:    newBase(NodeGotoCaseStatement, spanOf(keyword, semi)),
			Keyword:     keyword,
			CaseKeyword: caseKeyword,
			Expression:  expr,
			Semicolon:   semi,
		}
	case TokenDefault:
		defaultKeyword := p.tokens.Advance()
		semi := p.expectKind(TokenSemicolon)

		return &GotoDefaultStatementNode{
			baseNode:       newBase(NodeGotoDefaultStatement, spanOf(keyword, semi)),
			Keyword:        keyword,
			DefaultKeyword: defaultKeyword,
			Semicolon:      semi,
		}
	default:
		identifier := p.expectIdentifier()
		semi := p.expectKind(TokenSemicolon)

		return &GotoStatementNode{
			baseNode:   newBase(NodeGotoStatement, spanOf(keyword, semi)),
			Keyword:    keyword,
			Identifier: identifier,
			Semicolon:  semi,
		}
	}
}

func (p *Parser) parseReturnStatement() Statement {
	keyword := p.expectKind(TokenReturn)

	expr := None[Expression]()
	if p.current().Kind != TokenSemicolon {
		expr = Some(p.parseExpression())
	}

	semi := p.expectKind(TokenSemicolon)

	return &ReturnStatementNode{
		baseNode:   newBase(NodeReturnStatement, spanOf(keyword, semi)),
		Keyword:    keyword,
		Expression: expr,
		Semicolon:  semi,
	}
}

func (p *Parser) parseThrowStatement() Statement {
	keyword := p.expectKind(TokenThrow)

	expr := None[Expression]()
	if p.current().Kind != TokenSemicolon {
		expr = Some(p.parseExpression())
	}

	semi := p.expectKind(TokenSemicolon)

	return &ThrowStatementNode{
		baseNode:   newBase(NodeThrowStatement, spanOf(keyword, semi)),
		Keyword:    keyword,
		Expression: expr,
		Semicolon:  semi,
	}
}

func (p *Parser) parseTryStatement() Statement {
	tryKeyword := p.expectKind(TokenTry)
	block := p.parseBlockStatement()

	var catches []*CatchClauseNode
	for p.current().Kind == TokenCatch {
		catches = append(catches, p.parseCatchClause())
	}

	finallyClause := None[*FinallyClauseNode]()
	if p.current().Kind == TokenFinally {
		finallyClause = Some(p.parseFinallyClause())
	}

	end := block.Span()
	if finallyClause.Present {
		end = spanOf(block, finallyClause.Value)
	} else if len(catches) > 0 {
		end = spanOf(block, catches[len(catches)-1])
	}

	return &TryStatementNode{
		baseNode:   newBase(NodeTryStatement, end),
		TryKeyword: tryKeyword,
		Block:      block,
		Catches:    catches,
		Finally:    finallyClause,
	}
}

func (p *Parser) parseCatchClause() *CatchClauseNode {
	catchKeyword := p.expectKind(TokenCatch)

	open := None[*Token]()
	typ := None[TypeNode]()
	identifier := None[*Token]()
	closeP := None[*Token]()

	if o, ok := p.expectOptional(TokenOpenParen).Get(); ok {
		open = Some(o)
		typ = Some(p.parseType())

		if id, ok := p.expectOptional(TokenIdentifier).Get(); ok {
			identifier = Some(id)
		}

		closeP = Some(p.expectKind(TokenCloseParen))
	}

	block := p.parseBlockStatement()

	return &CatchClauseNode{
		baseNode:     newBase(NodeCatchClause, spanOf(catchKeyword, block)),
		CatchKeyword: catchKeyword,
		OpenParen:    open,
		Type:         typ,
		Identifier:   identifier,
		CloseParen:   closeP,
		Block:        block,
	}
}

func (p *Parser) parseFinallyClause() *FinallyClauseNode {
	finallyKeyword := p.expectKind(TokenFinally)
	block := p.parseBlockStatement()

	return &FinallyClauseNode{
		baseNode:       newBase(NodeFinallyClause, spanOf(finallyKeyword, block)),
		FinallyKeyword: finallyKeyword,
		Block:          block,
	}
}

func (p *Parser) parseCheckedStatement() Statement {
	keyword := p.tokens.Advance()
	unchecked := keyword.Kind == TokenUnchecked
	block := p.parseBlockStatement()

	kind := NodeCheckedStatement
	if unchecked {
		kind = NodeUncheckedStatement
	}

	return &CheckedStatementNode{
		baseNode:  newBase(kind, spanOf(keyword, block)),
		Keyword:   keyword,
		Block:     block,
		Unchecked: unchecked,
	}
}

func (p *Parser) parseLockStatement() Statement {
	keyword := p.expectKind(TokenLock)
	open := p.expectKind(TokenOpenParen)
	expr := p.parseExpression()
	closeP := p.expectKind(TokenCloseParen)
	body := p.parseStatement()

	return &LockStatementNode{
		baseNode:   newBase(NodeLockStatement, spanOf(keyword, body)),
		Keyword:    keyword,
		OpenParen:  open,
		Expression: expr,
		CloseParen: closeP,
		Body:       body,
	}
}

func (p *Parser) parseUsingStatement() Statement {
	keyword := p.expectKind(TokenUsing)
	open := p.expectKind(TokenOpenParen)
	resource := p.parseForInitializer()
	closeP := p.expectKind(TokenCloseParen)
	body := p.parseStatement()

	return &UsingStatementNode{
		baseNode:   newBase(NodeUsingStatement, spanOf(keyword, body)),
		Keyword:    keyword,
		OpenParen:  open,
		Resource:   resource,
		CloseParen: closeP,
		Body:       body,
	}
}

func (p *Parser) parseFixedStatement() Statement {
	keyword := p.expectKind(TokenFixed)
	open := p.expectKind(TokenOpenParen)
	decl := p.parseVariableDeclaration()
	closeP := p.expectKind(TokenCloseParen)
	body := p.parseStatement()

	return &FixedStatementNode{
		baseNode:    newBase(NodeFixedStatement, spanOf(keyword, body)),
		Keyword:     keyword,
		OpenParen:   open,
		Declaration: decl,
		CloseParen:  closeP,
		Body:        body,
	}
}

func (p *Parser) parseUnsafeStatement() Statement {
	keyword := p.expectKind(TokenUnsafe)

	p.pushUnsafeContext()
	block := p.parseBlockStatement()
	p.popUnsafeContext()

	return &UnsafeStatementNode{baseNode: newBase(NodeUnsafeStatement, spanOf(keyword, block)), Keyword: keyword, Block: block}
}
