package cscst

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// SourceError represents a failure in the entry conditions surrounding a
// parse — a missing file or an unreadable one, as returned by ParseFile — as
// opposed to a syntax error, which is always reported through Diagnostics
// rather than a Go error. Parse itself returns no error and does not check
// for a nil source buffer.
type SourceError struct {
	Path string
	Pos  LinePosition
	msg  string
	err  error
}

func (e *SourceError) Error() string {
	if e.Path == "" {
		return e.msg
	}

	if e.Pos.Line == 0 {
		return fmt.Sprintf("%s: %s", e.Path, e.msg)
	}

	return fmt.Sprintf("%s:%d:%d: %s", e.Path, e.Pos.Line, e.Pos.Column, e.msg)
}

func (e *SourceError) Unwrap() error {
	return e.err
}

// ParseFile reads the file at path, builds a SourceText, and parses it. opts
// may be nil, in which case LoadOptions is tried against the file's
// directory and DefaultParserOptions is used if none is found. The returned
// error is reserved for I/O failures; syntax errors are reported through the
// returned Diagnostics, never through error.
func ParseFile(path string, opts *ParserOptions) (*CompilationUnitNode, *Diagnostics, error) {
	return ParseFileWithLogger(path, opts, zap.NewNop())
}

// ParseFileWithLogger is ParseFile with an explicit logger for lexer/parser
// trace output. A nil logger is treated as a no-op logger.
func ParseFileWithLogger(path string, opts *ParserOptions, logger *zap.Logger) (*CompilationUnitNode, *Diagnostics, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, &SourceError{Path: path, msg: "failed to read source file", err: err}
	}

	if opts == nil {
		opts, err = LoadOptions(filepath.Dir(path))
		if err != nil {
			opts = DefaultParserOptions()
		}
	}

	source := NewSourceText(string(data))

	unit, diagnostics := Parse(source, opts, logger)

	return unit, diagnostics, nil
}
