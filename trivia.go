package cscst

// TriviaKind is the closed set of non-semantic lexeme kinds that attach to
// tokens so that the concatenation of a token's leading trivia, text, and
// trailing trivia reproduces the exact source bytes they span.
type TriviaKind int

const (
	// TriviaWhitespace is a run of spaces and/or tabs.
	TriviaWhitespace TriviaKind = iota
	// TriviaEndOfLine is a single line terminator (\n, \r\n, or \r).
	TriviaEndOfLine
	// TriviaSingleLineComment is a "// ..." comment up to (not including) the
	// terminating newline.
	TriviaSingleLineComment
	// TriviaMultiLineComment is a "/* ... */" comment, possibly unterminated.
	TriviaMultiLineComment
	// TriviaSkippedToken wraps a token that error recovery discarded; it
	// preserves the discarded token (and that token's own trivia) losslessly.
	TriviaSkippedToken
	// TriviaDirective wraps a PreprocessorDirective token that the parser
	// does not interpret but must still preserve losslessly.
	TriviaDirective
)

// String renders the trivia kind for logging/debugging.
func (k TriviaKind) String() string {
	switch k {
	case TriviaWhitespace:
		return "Whitespace"
	case TriviaEndOfLine:
		return "EndOfLine"
	case TriviaSingleLineComment:
		return "SingleLineComment"
	case TriviaMultiLineComment:
		return "MultiLineComment"
	case TriviaSkippedToken:
		return "SkippedToken"
	case TriviaDirective:
		return "Directive"
	default:
		return "Unknown"
	}
}

// Trivia is a single piece of non-semantic (or parser-inert) lexical matter
// attached to a token's leading or trailing trivia list.
//
// For TriviaSkippedToken and TriviaDirective, SkippedToken holds the wrapped
// token; for every other kind, Text holds the raw source text and
// SkippedToken is nil.
type Trivia struct {
	Kind         TriviaKind
	Text         string
	Position     int
	SkippedToken *Token
}

// Width returns the number of source bytes this trivia covers.
func (t Trivia) Width() int {
	if t.SkippedToken != nil {
		return t.SkippedToken.FullWidth()
	}

	return len(t.Text)
}

// End returns the exclusive end offset of this trivia in the source.
func (t Trivia) End() int {
	return t.Position + t.Width()
}

// FullText reconstructs the exact source bytes this trivia covers.
func (t Trivia) FullText() string {
	if t.SkippedToken != nil {
		return t.SkippedToken.FullText()
	}

	return t.Text
}

// TriviaList is an ordered sequence of Trivia, attached as either the
// leading or trailing trivia of a Token.
type TriviaList []Trivia

// Width sums the width of every trivia in the list.
func (l TriviaList) Width() int {
	total := 0
	for _, t := range l {
		total += t.Width()
	}

	return total
}

// FullText concatenates the exact source bytes of every trivia in the list,
// in order.
func (l TriviaList) FullText() string {
	if len(l) == 0 {
		return ""
	}

	total := 0
	for _, t := range l {
		total += len(t.FullText())
	}

	buf := make([]byte, 0, total)
	for _, t := range l {
		buf = append(buf, t.FullText()...)
	}

	return string(buf)
}
