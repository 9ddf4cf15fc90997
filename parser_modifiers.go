package cscst

// modifierTokenKinds is every keyword that can appear in a member's
// modifier run, checked greedily before the parser commits to a particular
// member-declaration kind.
var modifierTokenKinds = set(
	TokenPublic, TokenProtected, TokenInternal, TokenPrivate,
	TokenStatic, TokenVirtual, TokenOverride, TokenAbstract, TokenSealed,
	TokenNew, TokenExtern, TokenUnsafe, TokenReadonly, TokenVolatile,
)

// memberModifierTable lists, per DeclarationKind, the modifiers that are
// valid for that kind of member. It is authoritative only for the kinds
// named in §4.4; kinds absent here (namespaces, enum members, and other
// constructs with no modifier set) are validated by fixed rule in the
// parser instead of a table lookup.
var memberModifierTable = map[DeclarationKind]map[TokenKind]bool{
	DeclClass: set(
		TokenPublic, TokenProtected, TokenInternal, TokenPrivate,
		TokenStatic, TokenAbstract, TokenSealed, TokenNew, TokenUnsafe,
	),
	DeclStruct: set(
		TokenPublic, TokenProtected, TokenInternal, TokenPrivate,
		TokenNew, TokenUnsafe, TokenReadonly,
	),
	DeclInterface: set(
		TokenPublic, TokenProtected, TokenInternal, TokenPrivate,
		TokenNew, TokenUnsafe,
	),
	DeclEnum: set(TokenPublic, TokenProtected, TokenInternal, TokenPrivate, TokenNew),
	DeclDelegate: set(
		TokenPublic, TokenProtected, TokenInternal, TokenPrivate,
		TokenNew, TokenUnsafe,
	),
	DeclField: set(
		TokenPublic, TokenProtected, TokenInternal, TokenPrivate,
		TokenStatic, TokenReadonly, TokenVolatile, TokenNew, TokenUnsafe,
	),
	DeclEventField: set(
		TokenPublic, TokenProtected, TokenInternal, TokenPrivate,
		TokenStatic, TokenVirtual, TokenOverride, TokenAbstract, TokenSealed,
		TokenNew, TokenExtern, TokenUnsafe,
	),
	DeclEvent: set(
		TokenPublic, TokenProtected, TokenInternal, TokenPrivate,
		TokenStatic, TokenVirtual, TokenOverride, TokenAbstract, TokenSealed,
		TokenNew, TokenExtern, TokenUnsafe,
	),
	DeclProperty: set(
		TokenPublic, TokenProtected, TokenInternal, TokenPrivate,
		TokenStatic, TokenVirtual, TokenOverride, TokenAbstract, TokenSealed,
		TokenNew, TokenExtern, TokenUnsafe,
	),
	DeclIndexer: set(
		TokenPublic, TokenProtected, TokenInternal, TokenPrivate,
		TokenStatic, TokenVirtual, TokenOverride, TokenAbstract, TokenSealed,
		TokenNew, TokenExtern, TokenUnsafe,
	),
	DeclMethod: set(
		TokenPublic, TokenProtected, TokenInternal, TokenPrivate,
		TokenStatic, TokenVirtual, TokenOverride, TokenAbstract, TokenSealed,
		TokenNew, TokenExtern, TokenUnsafe,
	),
	DeclConstructor: set(
		TokenPublic, TokenProtected, TokenInternal, TokenPrivate,
		TokenStatic, TokenExtern, TokenUnsafe,
	),
	DeclDestructor: set(TokenExtern, TokenUnsafe),
	DeclOperator:   set(TokenPublic, TokenStatic, TokenExtern, TokenUnsafe),
	DeclConversionOperator: set(
		TokenPublic, TokenStatic, TokenExtern, TokenUnsafe,
	),
}

// interfaceMemberModifiers is the modifier set permitted on a member
// declared directly inside an interface body, which overrides
// memberModifierTable regardless of declaration kind: interface members
// carry no accessibility or storage semantics of their own.
var interfaceMemberModifiers = set(TokenNew, TokenPublic, TokenProtected, TokenInternal, TokenPrivate, TokenUnsafe)

// isModifierValid reports whether modifier is permitted for a member of the
// given kind, declared in the given enclosing type's declaration kind
// (enclosingIsInterface selects the interface override). `new` is valid on
// any member whose enclosing context is not a namespace (it expresses a
// deliberate hide of an inherited name, which only makes sense nested in a
// type), but is rejected at namespace scope like every other modifier.
func isModifierValid(kind DeclarationKind, modifier TokenKind, enclosingIsInterface, enclosingIsNamespace bool) bool {
	if modifier == TokenNew {
		return !enclosingIsNamespace
	}

	if enclosingIsInterface {
		return interfaceMemberModifiers[modifier]
	}

	allowed, ok := memberModifierTable[kind]
	if !ok {
		return false
	}

	return allowed[modifier]
}

// fieldStorageModifiers are the modifiers a const field declaration may not
// carry, since `const` already fixes storage and accessibility-adjacent
// semantics that these would conflict with.
var fieldStorageModifiers = set(TokenStatic, TokenReadonly, TokenVolatile)

// isValidConstFieldModifier reports whether modifier may accompany a const
// field declaration.
func isValidConstFieldModifier(modifier TokenKind) bool {
	return !fieldStorageModifiers[modifier] && isModifierValid(DeclField, modifier, false, false)
}
