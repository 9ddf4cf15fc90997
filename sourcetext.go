// Package cscst implements the lossless lexer and recursive-descent parser
// front end for a C#-like object-oriented language.
package cscst

import "sort"

// TextSpan is a half-open byte range [Start, Start+Length) in a SourceText.
type TextSpan struct {
	Start  int
	Length int
}

// NewTextSpan builds a span from a start offset and length.
func NewTextSpan(start, length int) TextSpan {
	return TextSpan{Start: start, Length: length}
}

// NewTextSpanFromBounds builds a span from [start, end).
func NewTextSpanFromBounds(start, end int) TextSpan {
	return TextSpan{Start: start, Length: end - start}
}

// End returns the exclusive end offset of the span.
func (s TextSpan) End() int {
	return s.Start + s.Length
}

// IsEmpty reports whether the span covers zero bytes.
func (s TextSpan) IsEmpty() bool {
	return s.Length == 0
}

// OverlapsWith reports whether s and other share at least one byte.
func (s TextSpan) OverlapsWith(other TextSpan) bool {
	start := maxInt(s.Start, other.Start)
	end := minInt(s.End(), other.End())

	return start < end
}

// IntersectionWith returns the overlapping span of s and other, and whether
// the spans overlap or touch; for spans that merely touch it returns an
// empty span and true.
func (s TextSpan) IntersectionWith(other TextSpan) (TextSpan, bool) {
	start := maxInt(s.Start, other.Start)
	end := minInt(s.End(), other.End())

	if start > end {
		return TextSpan{}, false
	}

	return NewTextSpanFromBounds(start, end), true
}

// Contains reports whether offset lies within the span.
func (s TextSpan) Contains(offset int) bool {
	return offset >= s.Start && offset < s.End()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}

// LinePosition is a 1-based (line, column) location in a SourceText.
type LinePosition struct {
	Line   int
	Column int
}

// SourceText is an immutable source buffer with a precomputed line-start
// index, used for (line, column) lookups and substring extraction.
type SourceText struct {
	text       string
	lineStarts []int
	tabWidth   int
}

// NewSourceText builds a SourceText from a complete UTF-8-encoded source
// string. The line-start index is computed once, up front. Tabs advance a
// column by one until WithTabWidth configures otherwise.
func NewSourceText(text string) *SourceText {
	return &SourceText{
		text:       text,
		lineStarts: computeLineStarts(text),
		tabWidth:   1,
	}
}

// WithTabWidth sets the column width a tab character advances
// LinePositionAt's column by, and returns the SourceText for chaining. A
// non-positive width is ignored.
func (s *SourceText) WithTabWidth(width int) *SourceText {
	if width > 0 {
		s.tabWidth = width
	}

	return s
}

func computeLineStarts(text string) []int {
	starts := []int{0}

	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}

	return starts
}

// Len returns the number of bytes in the source.
func (s *SourceText) Len() int {
	return len(s.text)
}

// String returns the entire source text.
func (s *SourceText) String() string {
	return s.text
}

// At returns the byte at offset. It panics if offset is out of [0, Len()).
func (s *SourceText) At(offset int) byte {
	return s.text[offset]
}

// Substring returns the text covered by span, clamped to the source bounds.
func (s *SourceText) Substring(span TextSpan) string {
	start := maxInt(0, span.Start)
	end := minInt(len(s.text), span.End())

	if start >= end {
		return ""
	}

	return s.text[start:end]
}

// LinePositionAt returns the 1-based (line, column) for a byte offset,
// found via binary search over the precomputed line-start index.
func (s *SourceText) LinePositionAt(offset int) LinePosition {
	if offset < 0 {
		offset = 0
	}

	if offset > len(s.text) {
		offset = len(s.text)
	}

	// sort.Search finds the first line start greater than offset; the line
	// containing offset is the one before it.
	idx := sort.Search(len(s.lineStarts), func(i int) bool {
		return s.lineStarts[i] > offset
	})
	line := idx - 1
	if line < 0 {
		line = 0
	}

	lineStart := s.lineStarts[line]

	column := 1
	for i := lineStart; i < offset; i++ {
		if s.text[i] == '\t' {
			column += s.tabWidth
		} else {
			column++
		}
	}

	return LinePosition{Line: line + 1, Column: column}
}

// LineCount returns the number of lines in the source.
func (s *SourceText) LineCount() int {
	return len(s.lineStarts)
}
