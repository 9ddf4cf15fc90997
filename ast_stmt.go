package cscst

// Statement is implemented by every statement node.
type Statement interface {
	Node
	isStatement()
}

func (*BlockStatementNode) isStatement()            {}
func (*IfStatementNode) isStatement()                {}
func (*SwitchStatementNode) isStatement()            {}
func (*ForStatementNode) isStatement()               {}
func (*ForeachStatementNode) isStatement()           {}
func (*WhileStatementNode) isStatement()             {}
func (*DoStatementNode) isStatement()                {}
func (*BreakStatementNode) isStatement()             {}
func (*ContinueStatementNode) isStatement()          {}
func (*GotoStatementNode) isStatement()              {}
func (*GotoCaseStatementNode) isStatement()          {}
func (*GotoDefaultStatementNode) isStatement()       {}
func (*ReturnStatementNode) isStatement()            {}
func (*ThrowStatementNode) isStatement()             {}
func (*TryStatementNode) isStatement()               {}
func (*CheckedStatementNode) isStatement()           {}
func (*LockStatementNode) isStatement()              {}
func (*UsingStatementNode) isStatement()             {}
func (*FixedStatementNode) isStatement()             {}
func (*UnsafeStatementNode) isStatement()            {}
func (*LabeledStatementNode) isStatement()           {}
func (*DeclarationStatementNode) isStatement()       {}
func (*ExpressionStatementNode) isStatement()        {}
func (*EmptyStatementNode) isStatement()             {}

// BlockStatementNode is `{ statement* }`.
type BlockStatementNode struct {
	baseNode
	OpenBrace  *Token
	Statements []Statement
	CloseBrace *Token
}

// ElseClauseNode is `else statement`.
type ElseClauseNode struct {
	baseNode
	ElseKeyword *Token
	Statement   Statement
}

// IfStatementNode is `if (cond) then else?`.
type IfStatementNode struct {
	baseNode
	IfKeyword  *Token
	OpenParen  *Token
	Condition  Expression
	CloseParen *Token
	Then       Statement
	Else       Optional[*ElseClauseNode]
}

// SwitchLabelNode is `case expr:` or `default:`.
type SwitchLabelNode struct {
	baseNode
	Keyword *Token // case or default
	Value   Optional[Expression]
	Colon   *Token
}

// SwitchSectionNode is one or more labels followed by its statement list.
type SwitchSectionNode struct {
	baseNode
	Labels     []*SwitchLabelNode
	Statements []Statement
}

// SwitchStatementNode is `switch (expr) { section* }`.
type SwitchStatementNode struct {
	baseNode
	SwitchKeyword *Token
	OpenParen     *Token
	Expression    Expression
	CloseParen    *Token
	OpenBrace     *Token
	Sections      []*SwitchSectionNode
	CloseBrace    *Token
}

// VariableDeclaratorNode is `name (= expr)?` within a declaration.
type VariableDeclaratorNode struct {
	baseNode
	Identifier  *Token
	Equals      Optional[*Token]
	Initializer Optional[Expression]
}

// VariableDeclarationNode is `Type declarator, declarator, ...`, the shape
// shared by field declarations and local declaration statements.
type VariableDeclarationNode struct {
	baseNode
	Type         TypeNode
	Declarators  SeparatedList[*VariableDeclaratorNode]
}

// VariableDeclarationOrExpressionListNode is the `for` initializer shape of
// §3: either one variable declaration, or a comma-separated list of
// expression statements-in-waiting.
type VariableDeclarationOrExpressionListNode struct {
	baseNode
	Declaration Optional[*VariableDeclarationNode]
	Expressions SeparatedList[Expression]
}

func (*VariableDeclarationOrExpressionListNode) isStatement() {}

// ForStatementNode is `for (init; cond; incr) body`.
type ForStatementNode struct {
	baseNode
	ForKeyword   *Token
	OpenParen    *Token
	Initializer  Optional[*VariableDeclarationOrExpressionListNode]
	FirstSemi    *Token
	Condition    Optional[Expression]
	SecondSemi   *Token
	Incrementors SeparatedList[Expression]
	CloseParen   *Token
	Body         Statement
}

// ForeachStatementNode is `foreach (Type name in expr) body`.
type ForeachStatementNode struct {
	baseNode
	ForeachKeyword *Token
	OpenParen      *Token
	Type           TypeNode
	Identifier     *Token
	InKeyword      *Token
	Expression     Expression
	CloseParen     *Token
	Body           Statement
}

// WhileStatementNode is `while (cond) body`.
type WhileStatementNode struct {
	baseNode
	WhileKeyword *Token
	OpenParen    *Token
	Condition    Expression
	CloseParen   *Token
	Body         Statement
}

// DoStatementNode is `do body while (cond);`.
type DoStatementNode struct {
	baseNode
	DoKeyword    *Token
	Body         Statement
	WhileKeyword *Token
	OpenParen    *Token
	Condition    Expression
	CloseParen   *Token
	Semicolon    *Token
}

// BreakStatementNode is `break;`.
type BreakStatementNode struct {
	baseNode
	Keyword   *Token
	Semicolon *Token
}

// ContinueStatementNode is `continue;`.
type ContinueStatementNode struct {
	baseNode
	Keyword   *Token
	Semicolon *Token
}

// GotoStatementNode is `goto label;`.
type GotoStatementNode struct {
	baseNode
	Keyword    *Token
	Identifier *Token
	Semicolon  *Token
}

// GotoCaseStatementNode is `goto case expr;`.
type GotoCaseStatementNode struct {
	baseNode
	Keyword     *Token
	CaseKeyword *Token
	Expression  Expression
	Semicolon   *Token
}

// GotoDefaultStatementNode is `goto default;`.
type GotoDefaultStatementNode struct {
	baseNode
	Keyword        *Token
	DefaultKeyword *Token
	Semicolon      *Token
}

// ReturnStatementNode is `return expr?;`.
type ReturnStatementNode struct {
	baseNode
	Keyword    *Token
	Expression Optional[Expression]
	Semicolon  *Token
}

// ThrowStatementNode is `throw expr?;`.
type ThrowStatementNode struct {
	baseNode
	Keyword    *Token
	Expression Optional[Expression]
	Semicolon  *Token
}

// CatchClauseNode is `catch (Type name?)? block`.
type CatchClauseNode struct {
	baseNode
	CatchKeyword *Token
	OpenParen    Optional[*Token]
	Type         Optional[TypeNode]
	Identifier   Optional[*Token]
	CloseParen   Optional[*Token]
	Block        *BlockStatementNode
}

// FinallyClauseNode is `finally block`.
type FinallyClauseNode struct {
	baseNode
	FinallyKeyword *Token
	Block          *BlockStatementNode
}

// TryStatementNode is `try block catch* finally?`.
type TryStatementNode struct {
	baseNode
	TryKeyword *Token
	Block      *BlockStatementNode
	Catches    []*CatchClauseNode
	Finally    Optional[*FinallyClauseNode]
}

// CheckedStatementNode is `checked block` or `unchecked block`.
type CheckedStatementNode struct {
	baseNode
	Keyword   *Token
	Block     *BlockStatementNode
	Unchecked bool
}

// LockStatementNode is `lock (expr) body`.
type LockStatementNode struct {
	baseNode
	Keyword    *Token
	OpenParen  *Token
	Expression Expression
	CloseParen *Token
	Body       Statement
}

// UsingStatementNode is `using (decl-or-expr) body`.
type UsingStatementNode struct {
	baseNode
	Keyword    *Token
	OpenParen  *Token
	Resource   *VariableDeclarationOrExpressionListNode
	CloseParen *Token
	Body       Statement
}

// FixedStatementNode is `fixed (Type* name = expr) body`.
type FixedStatementNode struct {
	baseNode
	Keyword     *Token
	OpenParen   *Token
	Declaration *VariableDeclarationNode
	CloseParen  *Token
	Body        Statement
}

// UnsafeStatementNode is `unsafe block`.
type UnsafeStatementNode struct {
	baseNode
	Keyword *Token
	Block   *BlockStatementNode
}

// LabeledStatementNode is `identifier: statement`.
type LabeledStatementNode struct {
	baseNode
	Identifier *Token
	Colon      *Token
	Statement  Statement
}

// DeclarationStatementNode wraps a local VariableDeclarationNode (optionally
// `const`) as a statement.
type DeclarationStatementNode struct {
	baseNode
	ConstKeyword Optional[*Token]
	Declaration  *VariableDeclarationNode
	Semicolon    *Token
}

// ExpressionStatementNode is `expr;`.
type ExpressionStatementNode struct {
	baseNode
	Expression Expression
	Semicolon  *Token
}

// EmptyStatementNode is a bare `;`.
type EmptyStatementNode struct {
	baseNode
	Semicolon *Token
}
