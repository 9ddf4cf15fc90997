package cscst_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rlch/cscst"
)

func TestParseFile_ReadsAndParsesSource(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "widget.cs")
	require.NoError(t, os.WriteFile(path, []byte("class Widget { }\n"), 0o644))

	unit, diagnostics, err := cscst.ParseFile(path, nil)
	require.NoError(t, err)
	require.NotNil(t, unit)

	assert.False(t, diagnostics.HasErrors())
	require.Len(t, unit.Members, 1)

	typ, ok := unit.Members[0].(*cscst.TypeDeclarationNode)
	require.True(t, ok)
	assert.Equal(t, "Widget", typ.Identifier.Text)
}

func TestParseFile_MissingFileReturnsSourceError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	_, _, err := cscst.ParseFile(filepath.Join(dir, "missing.cs"), nil)
	require.Error(t, err)

	var srcErr *cscst.SourceError
	require.True(t, errors.As(err, &srcErr))
	assert.Contains(t, srcErr.Error(), "missing.cs")
}

func TestParseFile_UsesExplicitOptions(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "c.cs")
	require.NoError(t, os.WriteFile(path, []byte("class C { }\n"), 0o644))

	opts := cscst.DefaultParserOptions()
	opts.TreatWarningsAsErrors = true

	unit, diagnostics, err := cscst.ParseFile(path, opts)
	require.NoError(t, err)
	require.NotNil(t, unit)
	assert.False(t, diagnostics.HasErrors())
}
