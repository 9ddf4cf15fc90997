package cscst_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rlch/cscst"
)

func lexNonTrivial(t *testing.T, input string) []*cscst.Token {
	t.Helper()

	diagnostics := cscst.NewDiagnostics()
	stream := cscst.Tokenize(cscst.NewSourceText(input), diagnostics)

	return stream.Tokens()
}

func TestLexer_Identifiers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		text  string
	}{
		{"foo", "foo"},
		{"foo_bar", "foo_bar"},
		{"foo123", "foo123"},
		{"_private", "_private"},
	}

	for _, tt := range tests {
		tokens := lexNonTrivial(t, tt.input)
		require.GreaterOrEqual(t, len(tokens), 1)
		assert.Equal(t, cscst.TokenIdentifier, tokens[0].Kind)
		assert.Equal(t, tt.text, tokens[0].Text)
	}
}

func TestLexer_Keywords(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		kind  cscst.TokenKind
	}{
		{"class", cscst.TokenClass},
		{"namespace", cscst.TokenNamespace},
		{"public", cscst.TokenPublic},
		{"return", cscst.TokenReturn},
		{"while", cscst.TokenWhile},
	}

	for _, tt := range tests {
		tokens := lexNonTrivial(t, tt.input)
		require.Len(t, tokens, 2) // keyword + EOF
		assert.Equal(t, tt.kind, tokens[0].Kind)
		assert.True(t, tokens[0].Kind.IsKeyword())
	}
}

func TestLexer_Operators(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		kinds []cscst.TokenKind
	}{
		{"+", []cscst.TokenKind{cscst.TokenPlus}},
		{"++", []cscst.TokenKind{cscst.TokenPlusPlus}},
		{"+=", []cscst.TokenKind{cscst.TokenPlusEquals}},
		{"<<=", []cscst.TokenKind{cscst.TokenLessLessEquals}},
		{"=>", []cscst.TokenKind{cscst.TokenEqualsGreater}},
		{"::", []cscst.TokenKind{cscst.TokenColonColon}},
		{"&&", []cscst.TokenKind{cscst.TokenAmpersandAmpersand}},
	}

	for _, tt := range tests {
		tokens := lexNonTrivial(t, tt.input)
		require.Len(t, tokens, len(tt.kinds)+1)

		for i, kind := range tt.kinds {
			assert.Equalf(t, kind, tokens[i].Kind, "input %q", tt.input)
		}
	}
}

func TestLexer_StringAndCharLiterals(t *testing.T) {
	t.Parallel()

	tokens := lexNonTrivial(t, `"hello" 'c'`)
	require.Len(t, tokens, 3)
	assert.Equal(t, cscst.TokenStringLiteral, tokens[0].Kind)
	assert.Equal(t, cscst.TokenCharacterLiteral, tokens[1].Kind)
}

func TestLexer_NumericLiterals(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"42", "3.14", "0x1F", "1e10", "1.5f", "100L"} {
		tokens := lexNonTrivial(t, input)
		require.GreaterOrEqual(t, len(tokens), 1)
		assert.Equalf(t, cscst.TokenNumericLiteral, tokens[0].Kind, "input %q", input)
	}
}

// TestLexer_RoundTrip checks that every token's full text (leading trivia +
// text + trailing trivia) concatenates back to the original source exactly,
// the lossless invariant the whole tree model depends on.
func TestLexer_RoundTrip(t *testing.T) {
	t.Parallel()

	sources := []string{
		"",
		"   ",
		"// a comment\nclass Foo {}",
		"/* block */ namespace N { }",
		"class Foo\n{\n    int x = 1;\n}\n",
		"#region header\nclass C {}\n#endregion",
	}

	for _, src := range sources {
		diagnostics := cscst.NewDiagnostics()
		stream := cscst.Tokenize(cscst.NewSourceText(src), diagnostics)

		var rebuilt string
		for _, tok := range stream.Tokens() {
			rebuilt += tok.FullText()
		}

		assert.Equal(t, src, rebuilt)
	}
}

func TestLexer_PreprocessorDirectiveBecomesLeadingTrivia(t *testing.T) {
	t.Parallel()

	tokens := lexNonTrivial(t, "#region header\nclass C {}")

	require.NotEmpty(t, tokens)
	require.Equal(t, cscst.TokenClass, tokens[0].Kind)
	require.NotEmpty(t, tokens[0].LeadingTrivia)

	found := false
	for _, trivia := range tokens[0].LeadingTrivia {
		if trivia.Kind == cscst.TriviaDirective {
			found = true
			assert.Equal(t, "#region header", trivia.FullText())
		}
	}
	assert.True(t, found)
}

func TestLexer_UnterminatedStringReportsError(t *testing.T) {
	t.Parallel()

	diagnostics := cscst.NewDiagnostics()
	cscst.Tokenize(cscst.NewSourceText(`"unterminated`), diagnostics)

	assert.True(t, diagnostics.HasErrors())
}

func TestLexer_EmptySourceProducesOnlyEOF(t *testing.T) {
	t.Parallel()

	tokens := lexNonTrivial(t, "")
	require.Len(t, tokens, 1)
	assert.Equal(t, cscst.TokenEndOfFile, tokens[0].Kind)
}
