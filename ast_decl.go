package cscst

// DeclarationKind tags a declaration node with the specific C#-shaped
// construct it represents, independent of its NodeKind; modifier-validity
// tables (§4.4) index by this rather than by NodeKind so that, e.g., field
// and event-field declarations can share one table row shape.
type DeclarationKind int

const (
	DeclNamespace DeclarationKind = iota
	DeclClass
	DeclStruct
	DeclInterface
	DeclEnum
	DeclDelegate
	DeclField
	DeclEventField
	DeclEvent
	DeclProperty
	DeclIndexer
	DeclMethod
	DeclConstructor
	DeclDestructor
	DeclOperator
	DeclConversionOperator
	DeclEnumMember
	DeclIncompleteMember
)

// AttributeArgumentNode is one argument within an attribute's argument
// list; Name is present for named arguments (`Foo(Name = expr)`).
type AttributeArgumentNode struct {
	baseNode
	Name       Optional[*Token]
	Equals     Optional[*Token]
	Expression Expression
}

// AttributeNode is one `Name(args?)` entry within an attribute section.
type AttributeNode struct {
	baseNode
	Name      TypeNode
	Arguments Optional[*ArgumentListNodeAttr]
}

// ArgumentListNodeAttr is the attribute-argument-list shape, kept distinct
// from ArgumentListNode because attribute arguments admit a leading `Name =`
// that ordinary call arguments do not.
type ArgumentListNodeAttr struct {
	baseNode
	OpenParen  *Token
	Arguments  SeparatedList[*AttributeArgumentNode]
	CloseParen *Token
}

// AttributeSectionNode is `[ target: attr, attr, ... ]`. Target holds the
// contextual target keyword (assembly, module, type, method, field,
// property, event, param, return) when present; the parser checks the
// target name against the fixed validAttributeTargets set, not against the
// kind of declaration the section precedes.
type AttributeSectionNode struct {
	baseNode
	OpenBracket  *Token
	Target       Optional[*Token]
	Colon        Optional[*Token]
	Attributes   SeparatedList[*AttributeNode]
	CloseBracket *Token
}

// ExplicitInterfaceSpecifierNode is the `Interface.` prefix on an explicit
// interface member implementation, e.g. `void IFoo.Bar()`.
type ExplicitInterfaceSpecifierNode struct {
	baseNode
	Type TypeNode
	Dot  *Token
}

// ParameterNode is one parameter in a parameter list, with its optional
// ref/out/params/this modifier and default value.
type ParameterNode struct {
	baseNode
	Attributes   []*AttributeSectionNode
	Modifier     Optional[*Token] // ref, out, params, or this
	Type         TypeNode
	Identifier   *Token
	Equals       Optional[*Token]
	DefaultValue Optional[Expression]
}

// ParameterListNode is `( param, param, ... )`.
type ParameterListNode struct {
	baseNode
	OpenParen  *Token
	Parameters SeparatedList[*ParameterNode]
	CloseParen *Token
}

// ConstructorInitializerNode is the `: base(args)` or `: this(args)` clause
// following a constructor's parameter list.
type ConstructorInitializerNode struct {
	baseNode
	Colon     *Token
	Keyword   *Token // base or this
	Arguments *ArgumentListNode
}

// AccessorDeclarationNode is one `get`/`set`/`add`/`remove` accessor. Body
// is present for a block-bodied accessor, Semicolon for an auto-property's
// `get;`/`set;` form; the two are mutually exclusive.
type AccessorDeclarationNode struct {
	baseNode
	Attributes []*AttributeSectionNode
	Modifiers  []*Token
	Keyword    *Token
	Body       Optional[*BlockStatementNode]
	Semicolon  Optional[*Token]
}

// MemberDeclaration is implemented by every declaration that can appear
// directly inside a namespace, type, or compilation unit body.
type MemberDeclaration interface {
	Node
	DeclarationKind() DeclarationKind
	isMemberDeclaration()
}

// UsingDirectiveNode is `using Name.Space;`.
type UsingDirectiveNode struct {
	baseNode
	UsingKeyword *Token
	Name         TypeNode
	Semicolon    *Token
}

func (*UsingDirectiveNode) isMemberDeclaration()          {}
func (*UsingDirectiveNode) DeclarationKind() DeclarationKind { return DeclNamespace }

// CompilationUnitNode is the root of the tree: usings, top-level attribute
// sections, then a sequence of namespace/type members, then EOF.
type CompilationUnitNode struct {
	baseNode
	Usings     []*UsingDirectiveNode
	Attributes []*AttributeSectionNode
	Members    []MemberDeclaration
	EndOfFile  *Token
}

// NamespaceDeclarationNode is `namespace Name.Space { usings members }`.
type NamespaceDeclarationNode struct {
	baseNode
	NamespaceKeyword *Token
	Name             TypeNode
	OpenBrace        *Token
	Usings           []*UsingDirectiveNode
	Members          []MemberDeclaration
	CloseBrace       *Token
	Semicolon        Optional[*Token]
}

func (*NamespaceDeclarationNode) isMemberDeclaration() {}
func (*NamespaceDeclarationNode) DeclarationKind() DeclarationKind {
	return DeclNamespace
}

// BaseListNode is the `: Base, IFoo, IBar` clause following a type
// declaration's name (and optional type parameter list, not modeled per
// the generics non-goal of §9).
type BaseListNode struct {
	baseNode
	Colon *Token
	Types SeparatedList[TypeNode]
}

// TypeDeclarationNode covers class/struct/interface, which share an
// identical grammar shape (modifiers, keyword, name, optional base list,
// brace-delimited member list). Kind distinguishes which of the three.
type TypeDeclarationNode struct {
	baseNode
	Attributes []*AttributeSectionNode
	Modifiers  []*Token
	Keyword    *Token
	Identifier *Token
	BaseList   Optional[*BaseListNode]
	OpenBrace  *Token
	Members    []MemberDeclaration
	CloseBrace *Token
	Semicolon  Optional[*Token]
	declKind   DeclarationKind
}

func (*TypeDeclarationNode) isMemberDeclaration() {}
func (n *TypeDeclarationNode) DeclarationKind() DeclarationKind { return n.declKind }

// EnumMemberDeclarationNode is one `Name (= expr)?` entry inside an enum
// body.
type EnumMemberDeclarationNode struct {
	baseNode
	Attributes  []*AttributeSectionNode
	Identifier  *Token
	Equals      Optional[*Token]
	Value       Optional[Expression]
}

func (*EnumMemberDeclarationNode) isMemberDeclaration() {}
func (*EnumMemberDeclarationNode) DeclarationKind() DeclarationKind {
	return DeclEnumMember
}

// EnumDeclarationNode is `enum Name : BaseType? { member, member, ... }`.
type EnumDeclarationNode struct {
	baseNode
	Attributes   []*AttributeSectionNode
	Modifiers    []*Token
	EnumKeyword  *Token
	Identifier   *Token
	Colon        Optional[*Token]
	BaseType     Optional[TypeNode]
	OpenBrace    *Token
	Members      SeparatedList[*EnumMemberDeclarationNode]
	CloseBrace   *Token
	Semicolon    Optional[*Token]
}

func (*EnumDeclarationNode) isMemberDeclaration() {}
func (*EnumDeclarationNode) DeclarationKind() DeclarationKind { return DeclEnum }

// DelegateDeclarationNode is `delegate ReturnType Name(params);`.
type DelegateDeclarationNode struct {
	baseNode
	Attributes      []*AttributeSectionNode
	Modifiers       []*Token
	DelegateKeyword *Token
	ReturnType      TypeNode
	Identifier      *Token
	Parameters      *ParameterListNode
	Semicolon       *Token
}

func (*DelegateDeclarationNode) isMemberDeclaration() {}
func (*DelegateDeclarationNode) DeclarationKind() DeclarationKind {
	return DeclDelegate
}

// FieldDeclarationNode is `Type declarator, declarator, ...;`, optionally
// `const`.
type FieldDeclarationNode struct {
	baseNode
	Attributes   []*AttributeSectionNode
	Modifiers    []*Token
	ConstKeyword Optional[*Token]
	Type         TypeNode
	Declarators  SeparatedList[*VariableDeclaratorNode]
	Semicolon    *Token
}

func (*FieldDeclarationNode) isMemberDeclaration() {}
func (*FieldDeclarationNode) DeclarationKind() DeclarationKind { return DeclField }

// EventFieldDeclarationNode is `event Type declarator, ...;` (field-like
// event syntax, as distinct from the accessor-bodied form below).
type EventFieldDeclarationNode struct {
	baseNode
	Attributes   []*AttributeSectionNode
	Modifiers    []*Token
	EventKeyword *Token
	Type         TypeNode
	Declarators  SeparatedList[*VariableDeclaratorNode]
	Semicolon    *Token
}

func (*EventFieldDeclarationNode) isMemberDeclaration() {}
func (*EventFieldDeclarationNode) DeclarationKind() DeclarationKind {
	return DeclEventField
}

// EventDeclarationNode is `event Type Name { add; remove; }` (accessor-
// bodied event syntax), optionally qualified by an explicit interface
// specifier.
type EventDeclarationNode struct {
	baseNode
	Attributes           []*AttributeSectionNode
	Modifiers            []*Token
	EventKeyword         *Token
	Type                 TypeNode
	ExplicitInterface    Optional[*ExplicitInterfaceSpecifierNode]
	Identifier           *Token
	OpenBrace            *Token
	Accessors            []*AccessorDeclarationNode
	CloseBrace           *Token
}

func (*EventDeclarationNode) isMemberDeclaration() {}
func (*EventDeclarationNode) DeclarationKind() DeclarationKind { return DeclEvent }

// PropertyDeclarationNode is `Type Name { get; set; }` or with an
// initializer `Type Name { get; set; } = expr;`.
type PropertyDeclarationNode struct {
	baseNode
	Attributes        []*AttributeSectionNode
	Modifiers         []*Token
	Type              TypeNode
	ExplicitInterface Optional[*ExplicitInterfaceSpecifierNode]
	Identifier        *Token
	OpenBrace         *Token
	Accessors         []*AccessorDeclarationNode
	CloseBrace        *Token
	Equals            Optional[*Token]
	Initializer       Optional[Expression]
	Semicolon         Optional[*Token]
}

func (*PropertyDeclarationNode) isMemberDeclaration() {}
func (*PropertyDeclarationNode) DeclarationKind() DeclarationKind {
	return DeclProperty
}

// IndexerDeclarationNode is `Type this[params] { get; set; }`.
type IndexerDeclarationNode struct {
	baseNode
	Attributes        []*AttributeSectionNode
	Modifiers         []*Token
	Type              TypeNode
	ExplicitInterface Optional[*ExplicitInterfaceSpecifierNode]
	ThisKeyword       *Token
	OpenBracket       *Token
	Parameters        SeparatedList[*ParameterNode]
	CloseBracket      *Token
	OpenBrace         *Token
	Accessors         []*AccessorDeclarationNode
	CloseBrace        *Token
}

func (*IndexerDeclarationNode) isMemberDeclaration() {}
func (*IndexerDeclarationNode) DeclarationKind() DeclarationKind {
	return DeclIndexer
}

// MethodDeclarationNode is `ReturnType Name(params) body`, where body is
// either a block or a single `;` for an abstract/extern/interface member.
type MethodDeclarationNode struct {
	baseNode
	Attributes        []*AttributeSectionNode
	Modifiers         []*Token
	ReturnType        TypeNode
	ExplicitInterface Optional[*ExplicitInterfaceSpecifierNode]
	Identifier        *Token
	Parameters        *ParameterListNode
	Body              Optional[*BlockStatementNode]
	Semicolon         Optional[*Token]
}

func (*MethodDeclarationNode) isMemberDeclaration() {}
func (*MethodDeclarationNode) DeclarationKind() DeclarationKind { return DeclMethod }

// ConstructorDeclarationNode is `Name(params) initializer? body`.
type ConstructorDeclarationNode struct {
	baseNode
	Attributes  []*AttributeSectionNode
	Modifiers   []*Token
	Identifier  *Token
	Parameters  *ParameterListNode
	Initializer Optional[*ConstructorInitializerNode]
	Body        *BlockStatementNode
}

func (*ConstructorDeclarationNode) isMemberDeclaration() {}
func (*ConstructorDeclarationNode) DeclarationKind() DeclarationKind {
	return DeclConstructor
}

// DestructorDeclarationNode is `~Name() body`.
type DestructorDeclarationNode struct {
	baseNode
	Attributes []*AttributeSectionNode
	Tilde      *Token
	Identifier *Token
	Parameters *ParameterListNode
	Body       *BlockStatementNode
}

func (*DestructorDeclarationNode) isMemberDeclaration() {}
func (*DestructorDeclarationNode) DeclarationKind() DeclarationKind {
	return DeclDestructor
}

// OperatorDeclarationNode is `static ReturnType operator Op(params) body`.
type OperatorDeclarationNode struct {
	baseNode
	Attributes      []*AttributeSectionNode
	Modifiers       []*Token
	ReturnType      TypeNode
	OperatorKeyword *Token
	Operator        *Token
	Parameters      *ParameterListNode
	Body            Optional[*BlockStatementNode]
	Semicolon       Optional[*Token]
}

func (*OperatorDeclarationNode) isMemberDeclaration() {}
func (*OperatorDeclarationNode) DeclarationKind() DeclarationKind {
	return DeclOperator
}

// ConversionOperatorDeclarationNode is `static implicit|explicit operator
// Type(params) body`.
type ConversionOperatorDeclarationNode struct {
	baseNode
	Attributes      []*AttributeSectionNode
	Modifiers       []*Token
	ConversionKind  *Token // implicit or explicit
	OperatorKeyword *Token
	Type            TypeNode
	Parameters      *ParameterListNode
	Body            Optional[*BlockStatementNode]
	Semicolon       Optional[*Token]
}

func (*ConversionOperatorDeclarationNode) isMemberDeclaration() {}
func (*ConversionOperatorDeclarationNode) DeclarationKind() DeclarationKind {
	return DeclConversionOperator
}

// IncompleteMemberDeclarationNode stands in for a member the parser could
// not classify past its modifiers and leading type, per the error-recovery
// behavior described in §4.4/§5.
type IncompleteMemberDeclarationNode struct {
	baseNode
	Attributes []*AttributeSectionNode
	Modifiers  []*Token
	Type       Optional[TypeNode]
}

func (*IncompleteMemberDeclarationNode) isMemberDeclaration() {}
func (*IncompleteMemberDeclarationNode) DeclarationKind() DeclarationKind {
	return DeclIncompleteMember
}
