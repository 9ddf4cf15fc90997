package cscst_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rlch/cscst"
)

func parseSource(t *testing.T, src string) (*cscst.CompilationUnitNode, *cscst.Diagnostics) {
	t.Helper()

	unit, diagnostics := cscst.Parse(cscst.NewSourceText(src), nil, nil)
	require.NotNil(t, unit)

	return unit, diagnostics
}

func TestParser_UsingDirectivesAndNamespace(t *testing.T) {
	t.Parallel()

	unit, diagnostics := parseSource(t, `using System;
using System.Collections.Generic;

namespace App.Core
{
    class Widget { }
}
`)

	assert.False(t, diagnostics.HasErrors())
	require.Len(t, unit.Usings, 2)
	require.Len(t, unit.Members, 1)

	ns, ok := unit.Members[0].(*cscst.NamespaceDeclarationNode)
	require.True(t, ok)
	require.Len(t, ns.Members, 1)

	typ, ok := ns.Members[0].(*cscst.TypeDeclarationNode)
	require.True(t, ok)
	assert.Equal(t, "Widget", typ.Identifier.Text)
	assert.Equal(t, cscst.DeclClass, typ.DeclarationKind())
}

func TestParser_ClassWithFieldPropertyAndMethod(t *testing.T) {
	t.Parallel()

	unit, diagnostics := parseSource(t, `
public class Account
{
    private readonly int balance;

    public int Balance { get; set; }

    public int Deposit(int amount)
    {
        return amount;
    }
}
`)

	require.False(t, diagnostics.HasErrors())
	require.Len(t, unit.Members, 1)

	typ, ok := unit.Members[0].(*cscst.TypeDeclarationNode)
	require.True(t, ok)
	require.Len(t, typ.Members, 3)

	field, ok := typ.Members[0].(*cscst.FieldDeclarationNode)
	require.True(t, ok)
	assert.Equal(t, 1, field.Declarators.Count())
	assert.Equal(t, "balance", field.Declarators.Elements[0].Identifier.Text)

	prop, ok := typ.Members[1].(*cscst.PropertyDeclarationNode)
	require.True(t, ok)
	assert.Equal(t, "Balance", prop.Identifier.Text)
	require.Len(t, prop.Accessors, 2)

	method, ok := typ.Members[2].(*cscst.MethodDeclarationNode)
	require.True(t, ok)
	assert.Equal(t, "Deposit", method.Identifier.Text)
	require.True(t, method.Body.Present)
}

func TestParser_DuplicateModifierReportsDiagnostic(t *testing.T) {
	t.Parallel()

	_, diagnostics := parseSource(t, `public public class C { }`)

	require.True(t, diagnostics.HasErrors())

	found := false
	for _, e := range diagnostics.Entries() {
		if e.Message == "Duplicate 'public' modifier" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestParser_NewModifierRejectedAtNamespaceScope(t *testing.T) {
	t.Parallel()

	_, diagnostics := parseSource(t, `new class C { }`)

	require.True(t, diagnostics.HasErrors())

	found := false
	for _, e := range diagnostics.Entries() {
		if e.Message == "The modifier 'new' is not valid for this item" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestParser_NewModifierAcceptedOnNestedType(t *testing.T) {
	t.Parallel()

	_, diagnostics := parseSource(t, `
class Outer
{
    new class Inner { }
}
`)

	assert.False(t, diagnostics.HasErrors())
}

func TestParser_CastVsParenthesizedExpression(t *testing.T) {
	t.Parallel()

	unit, diagnostics := parseSource(t, `
class C
{
    void M()
    {
        x = (int)y;
        z = (y);
    }
}
`)

	require.False(t, diagnostics.HasErrors())

	method := unit.Members[0].(*cscst.TypeDeclarationNode).Members[0].(*cscst.MethodDeclarationNode)
	body := method.Body.Value

	require.Len(t, body.Statements, 2)

	castStmt, ok := body.Statements[0].(*cscst.ExpressionStatementNode)
	require.True(t, ok)
	assign, ok := castStmt.Expression.(*cscst.AssignmentExpressionNode)
	require.True(t, ok)
	_, isCast := assign.Value.(*cscst.CastExpressionNode)
	assert.True(t, isCast, "expected (int)y to parse as a cast")

	parenStmt, ok := body.Statements[1].(*cscst.ExpressionStatementNode)
	require.True(t, ok)
	assign2, ok := parenStmt.Expression.(*cscst.AssignmentExpressionNode)
	require.True(t, ok)
	_, isParen := assign2.Value.(*cscst.ParenthesizedExpressionNode)
	assert.True(t, isParen, "expected (y) to parse as a parenthesized expression")
}

func TestParser_LocalDeclarationVsExpressionStatement(t *testing.T) {
	t.Parallel()

	unit, diagnostics := parseSource(t, `
class C
{
    void M()
    {
        int x = 1;
        x = 2;
    }
}
`)

	require.False(t, diagnostics.HasErrors())

	method := unit.Members[0].(*cscst.TypeDeclarationNode).Members[0].(*cscst.MethodDeclarationNode)
	body := method.Body.Value
	require.Len(t, body.Statements, 2)

	_, isDecl := body.Statements[0].(*cscst.DeclarationStatementNode)
	assert.True(t, isDecl)

	_, isExpr := body.Statements[1].(*cscst.ExpressionStatementNode)
	assert.True(t, isExpr)
}

func TestParser_ControlFlowStatements(t *testing.T) {
	t.Parallel()

	unit, diagnostics := parseSource(t, `
class C
{
    void M()
    {
        if (a) { } else { }
        for (int i = 0; i < 10; i++) { }
        while (a) { }
        switch (a) { case 1: break; default: break; }
    }
}
`)

	require.False(t, diagnostics.HasErrors())

	method := unit.Members[0].(*cscst.TypeDeclarationNode).Members[0].(*cscst.MethodDeclarationNode)
	body := method.Body.Value
	require.Len(t, body.Statements, 4)

	assert.Equal(t, cscst.NodeIfStatement, body.Statements[0].NodeKind())
	assert.Equal(t, cscst.NodeForStatement, body.Statements[1].NodeKind())
	assert.Equal(t, cscst.NodeWhileStatement, body.Statements[2].NodeKind())
	assert.Equal(t, cscst.NodeSwitchStatement, body.Statements[3].NodeKind())
}

func TestParser_MissingSemicolonRecovers(t *testing.T) {
	t.Parallel()

	unit, diagnostics := parseSource(t, `class C { int x }`)

	require.True(t, diagnostics.HasErrors())
	require.Len(t, unit.Members, 1)

	typ := unit.Members[0].(*cscst.TypeDeclarationNode)
	require.Len(t, typ.Members, 1)
	_, ok := typ.Members[0].(*cscst.IncompleteMemberDeclarationNode)
	assert.True(t, ok)
}

func TestParser_ExplicitInterfaceImplementation(t *testing.T) {
	t.Parallel()

	unit, diagnostics := parseSource(t, `
class C : IDisposable
{
    void IDisposable.Dispose() { }
}
`)

	require.False(t, diagnostics.HasErrors())

	typ := unit.Members[0].(*cscst.TypeDeclarationNode)
	require.True(t, typ.BaseList.Present)
	require.Len(t, typ.Members, 1)

	method := typ.Members[0].(*cscst.MethodDeclarationNode)
	require.True(t, method.ExplicitInterface.Present)
	assert.Equal(t, "Dispose", method.Identifier.Text)
}

func TestParser_EnumDeclaration(t *testing.T) {
	t.Parallel()

	unit, diagnostics := parseSource(t, `
enum Color
{
    Red,
    Green = 2,
    Blue,
}
`)

	require.False(t, diagnostics.HasErrors())

	enumDecl := unit.Members[0].(*cscst.EnumDeclarationNode)
	assert.Equal(t, "Color", enumDecl.Identifier.Text)
	require.Equal(t, 3, enumDecl.Members.Count())
	assert.True(t, enumDecl.Members.HasTrailingSeparator())
	assert.True(t, enumDecl.Members.Elements[1].Equals.Present)
}

func TestParser_InvalidInterfaceModifiersReportEachDiagnostic(t *testing.T) {
	t.Parallel()

	_, diagnostics := parseSource(t, `
interface I
{
    static virtual int M();
}
`)

	require.True(t, diagnostics.HasErrors())

	var messages []string
	for _, e := range diagnostics.Entries() {
		messages = append(messages, e.Message)
	}

	expected := []string{
		"The modifier 'static' is not valid for this item",
		"The modifier 'virtual' is not valid for this item",
	}

	if diff := cmp.Diff(expected, messages); diff != "" {
		t.Errorf("diagnostic messages mismatch (-want +got):\n%s", diff)
	}
}

func TestParser_InvalidAttributeTargetReportsDiagnostic(t *testing.T) {
	t.Parallel()

	_, diagnostics := parseSource(t, `
[get: Obsolete]
class C { }
`)

	require.True(t, diagnostics.HasErrors())

	found := false
	for _, e := range diagnostics.Entries() {
		if e.Message == "'get' is not a valid attribute target" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestParser_PointerTypeOutsideUnsafeReportsDiagnostic(t *testing.T) {
	t.Parallel()

	_, diagnostics := parseSource(t, `
class C
{
    int* p;
}
`)

	require.True(t, diagnostics.HasErrors())

	found := false
	for _, e := range diagnostics.Entries() {
		if e.Message == "Pointers may only be used in an unsafe context" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestParser_PointerTypeInsideUnsafeBlockAllowed(t *testing.T) {
	t.Parallel()

	_, diagnostics := parseSource(t, `
class C
{
    void M()
    {
        unsafe
        {
            int* p;
        }
    }
}
`)

	assert.False(t, diagnostics.HasErrors())
}

func TestParser_PointerFieldWithUnsafeModifierAllowed(t *testing.T) {
	t.Parallel()

	_, diagnostics := parseSource(t, `
class C
{
    unsafe int* p;
}
`)

	assert.False(t, diagnostics.HasErrors())
}

func TestParser_SizeofOutsideUnsafeReportsDiagnostic(t *testing.T) {
	t.Parallel()

	_, diagnostics := parseSource(t, `
class C
{
    int M()
    {
        return sizeof(int);
    }
}
`)

	require.True(t, diagnostics.HasErrors())

	found := false
	for _, e := range diagnostics.Entries() {
		if e.Message == "sizeof may only be used in an unsafe context" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestParser_UnsafeContextDefaultOptionAllowsPointerType(t *testing.T) {
	t.Parallel()

	opts := &cscst.ParserOptions{UnsafeContextDefault: true}
	unit, diagnostics := cscst.Parse(cscst.NewSourceText(`
class C
{
    int* p;
}
`), opts, nil)

	require.NotNil(t, unit)
	assert.False(t, diagnostics.HasErrors())
}

func TestParser_PreprocessorDirectivesProduceNoDiagnostics(t *testing.T) {
	t.Parallel()

	unit, diagnostics := parseSource(t, `#region Widgets
class Widget
{
    int Count;
}
#endregion
`)

	assert.False(t, diagnostics.HasErrors())
	require.Len(t, unit.Members, 1)
}

func TestParser_EmptySourceProducesEmptyCompilationUnit(t *testing.T) {
	t.Parallel()

	unit, diagnostics := parseSource(t, "")

	assert.False(t, diagnostics.HasErrors())
	assert.Empty(t, unit.Usings)
	assert.Empty(t, unit.Members)
}
