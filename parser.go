package cscst

import "go.uber.org/zap"

// Parser is a hand-written recursive-descent machine over a TokenStream,
// reporting into a Diagnostics log, per §4.4.
type Parser struct {
	tokens      *TokenStream
	diagnostics *Diagnostics
	contexts    contextStack
	inRecovery  bool
	logger      *zap.Logger
	unsafeDepth int
}

// NewParser builds a Parser over tokens, reporting syntax diagnostics into
// diagnostics.
func NewParser(tokens *TokenStream, diagnostics *Diagnostics) *Parser {
	return &Parser{tokens: tokens, diagnostics: diagnostics, logger: zap.NewNop()}
}

// WithLogger attaches an optional trace logger and returns the parser for
// chaining. A nil logger is replaced with a no-op logger.
func (p *Parser) WithLogger(logger *zap.Logger) *Parser {
	if logger == nil {
		logger = zap.NewNop()
	}

	p.logger = logger

	return p
}

// --- token acquisition, per §4.4 ---

// current is shorthand for the token stream's current token.
func (p *Parser) current() *Token {
	return p.tokens.Current()
}

// expect consumes the current token if it matches kind, moving its leading
// trivia across; otherwise it marks recovery and synthesizes a missing
// token of kind at the previous token's end, reporting "{text} expected"
// when text is non-empty.
func (p *Parser) expect(kind TokenKind, text string) *Token {
	if p.current().Kind == kind {
		p.inRecovery = false

		return p.tokens.Advance()
	}

	p.inRecovery = true
	pos := p.tokens.Previous().EndTextPosition()

	if text != "" {
		p.diagnostics.ReportError(pos, text+" expected")
	}

	return NewMissingToken(kind, pos, nil)
}

// expectKind is expect with the diagnostic text defaulted to the kind's own
// spelling, matching the common case of `"{kind} expected"`.
func (p *Parser) expectKind(kind TokenKind) *Token {
	return p.expect(kind, kind.String())
}

// expectOptional consumes the current token if it matches kind, returning
// it present; otherwise returns absent without reporting.
func (p *Parser) expectOptional(kind TokenKind) Optional[*Token] {
	if p.current().Kind == kind {
		return Some(p.tokens.Advance())
	}

	return None[*Token]()
}

// expectIdentifier is expect(Identifier) with its own diagnostic text and
// position, per §4.4.
func (p *Parser) expectIdentifier() *Token {
	if p.current().Kind == TokenIdentifier {
		p.inRecovery = false

		return p.tokens.Advance()
	}

	p.inRecovery = true
	p.diagnostics.ReportError(p.current().EndTextPosition(), "Identifier expected")

	return NewMissingToken(TokenIdentifier, p.tokens.Previous().EndTextPosition(), nil)
}

// expectIf consumes kind when condition holds (as expect, with the given
// diagnostic text on failure), else behaves as expectOptional.
func (p *Parser) expectIf(condition bool, kind TokenKind, text string) Optional[*Token] {
	if !condition {
		return p.expectOptional(kind)
	}

	return Some(p.expect(kind, text))
}

// synthesize produces an empty-text token of kind at the previous token's
// end, without consuming input.
func (p *Parser) synthesize(kind TokenKind) *Token {
	return NewMissingToken(kind, p.tokens.Previous().EndTextPosition(), nil)
}

// --- error recovery ---

// Synchronize advances the token stream while the current token is not
// EOF, not accepted by any context on the stack, and not in extra; each
// skipped token becomes a SkippedToken trivia piece accumulated into the
// returned list, meant for attachment to the next consumed or synthesized
// token. It clears inRecovery on exit.
func (p *Parser) Synchronize(extra ...TokenKind) TriviaList {
	extraSet := set(extra...)

	var skipped TriviaList

	for {
		cur := p.current()
		if cur.Kind == TokenEndOfFile {
			break
		}

		if p.contexts.isTokenValidInPrecedingContext(cur.Kind) || extraSet[cur.Kind] {
			break
		}

		tok := p.tokens.Advance()
		skipped = append(skipped, Trivia{
			Kind:         TriviaSkippedToken,
			Position:     tok.Position,
			SkippedToken: tok,
		})
	}

	p.inRecovery = false

	if len(skipped) > 0 {
		p.logger.Debug("synchronize skipped tokens",
			zap.Int("count", len(skipped)),
			zap.Int("start", skipped[0].Position),
			zap.Int("end", skipped[len(skipped)-1].End()),
		)
	}

	return skipped
}

// pushContext pushes c onto the context stack; callers pair this with
// `defer p.popContext()`.
func (p *Parser) pushContext(c ParserContext) {
	p.contexts.push(c)
	p.logger.Debug("context pushed", zap.Int("context", int(c)), zap.Int("depth", len(p.contexts.entries)))
}

// popContext pops the innermost context off the stack.
func (p *Parser) popContext() {
	c, ok := p.contexts.top()
	if ok {
		p.logger.Debug("context popped", zap.Int("context", int(c)), zap.Int("depth", len(p.contexts.entries)))
	}

	p.contexts.pop()
}

// --- unsafe-context tracking, per §4.4 ---

// pushUnsafeContext enters an unsafe context, as when parsing an `unsafe`
// block or a declaration carrying the `unsafe` modifier; callers pair this
// with `defer p.popUnsafeContext()`.
func (p *Parser) pushUnsafeContext() {
	p.unsafeDepth++
}

// popUnsafeContext leaves the innermost unsafe context entered by
// pushUnsafeContext.
func (p *Parser) popUnsafeContext() {
	if p.unsafeDepth > 0 {
		p.unsafeDepth--
	}
}

// isUnsafeContext reports whether the current position is nested inside an
// `unsafe` block or `unsafe`-modified declaration, or opts into unsafe by
// default.
func (p *Parser) isUnsafeContext() bool {
	return p.unsafeDepth > 0
}

// --- speculative parsing, per §4.4 ---

// speculationMark is a combined token-stream and diagnostics-suppression
// checkpoint for a tentative parse.
type speculationMark struct {
	restore     RestorePoint
	suppression Suppression
}

// beginSpeculation opens a checkpoint to try a candidate parse.
func (p *Parser) beginSpeculation() speculationMark {
	return speculationMark{
		restore:     p.tokens.CreateRestorePoint(),
		suppression: p.diagnostics.Suppress(),
	}
}

// commit accepts a tentative parse begun at mark: the token stream stays
// where the speculative parse left it, and any diagnostics it reported
// stand, since Suppression.Restore is never called. Callers invoke this
// from a speculative parse's success path, purely to trace the decision.
func (p *Parser) commit(mark speculationMark) {
	p.logger.Debug("speculation committed", zap.Int("position", p.current().Position))
}

// rollback restores the token stream and diagnostic log to the state
// captured by mark, discarding everything the tentative parse did.
func (p *Parser) rollback(mark speculationMark) {
	p.logger.Debug("speculation rolled back", zap.Int("fromPosition", p.current().Position))
	p.tokens.Restore(mark.restore)
	mark.suppression.Restore()
}

// --- overall entry, per §4.5 ---

// Parse runs the full front end over source: lexing, then parsing, into a
// single compilation unit and diagnostic log.
func Parse(source *SourceText, opts *ParserOptions, logger *zap.Logger) (*CompilationUnitNode, *Diagnostics) {
	diagnostics := NewDiagnostics()

	unsafeDefault := false
	if opts != nil {
		diagnostics.SetTreatWarningsAsErrors(opts.TreatWarningsAsErrors)
		source.WithTabWidth(opts.TabWidth)
		unsafeDefault = opts.UnsafeContextDefault
	}

	tokens := NewLexer(source, diagnostics).WithLogger(logger).Tokenize()
	parser := NewParser(tokens, diagnostics).WithLogger(logger)
	parser.unsafeDepth = unsafeBoolToDepth(unsafeDefault)
	unit := parser.ParseCompilationUnit()

	return unit, diagnostics
}

// unsafeBoolToDepth seeds the parser's unsafe-context depth counter: a
// default of already-unsafe starts the counter at 1 so that an `unsafe`
// block further in still nests correctly, and leaving it is symmetric
// with popUnsafeContext's floor at 0.
func unsafeBoolToDepth(defaultUnsafe bool) int {
	if defaultUnsafe {
		return 1
	}

	return 0
}

// ParseCompilationUnit is the top-level production: pushes Namespace,
// parses usings, top-level attribute sections, then namespace-or-type
// declarations, then expects EndOfFile.
func (p *Parser) ParseCompilationUnit() *CompilationUnitNode {
	p.pushContext(ContextNamespace)
	defer p.popContext()

	start := p.current().Position

	usings := p.parseUsingDirectives()
	attrs := p.parseAttributeSections()

	var members []MemberDeclaration
	for p.current().Kind != TokenEndOfFile {
		members = append(members, p.parseNamespaceOrTypeMember())
	}

	eof := p.expectKind(TokenEndOfFile)

	p.logger.Debug("parse finished", zap.Int("members", len(members)), zap.Int("diagnostics", p.diagnostics.Len()))

	return &CompilationUnitNode{
		baseNode:   newBase(NodeCompilationUnit, NewTextSpanFromBounds(start, eof.EndTextPosition())),
		Usings:     usings,
		Attributes: attrs,
		Members:    members,
		EndOfFile:  eof,
	}
}

func (p *Parser) parseUsingDirectives() []*UsingDirectiveNode {
	var usings []*UsingDirectiveNode
	for p.current().Kind == TokenUsing {
		usings = append(usings, p.parseUsingDirective())
	}

	return usings
}

func (p *Parser) parseUsingDirective() *UsingDirectiveNode {
	keyword := p.expectKind(TokenUsing)
	name := p.parseTypeName()
	semi := p.expectKind(TokenSemicolon)

	return &UsingDirectiveNode{
		baseNode:     newBase(NodeUsingDirective, spanOf(keyword, name, semi)),
		UsingKeyword: keyword,
		Name:         name,
		Semicolon:    semi,
	}
}

func (p *Parser) parseNamespaceOrTypeMember() MemberDeclaration {
	if p.current().Kind == TokenNamespace {
		return p.parseNamespaceDeclaration()
	}

	return p.parseTypeMember(false)
}

// parseNamespaceDeclaration parses `namespace QualifiedName { usings;
// declarations }` with an optional trailing `;`; no modifiers are
// permitted on a namespace.
func (p *Parser) parseNamespaceDeclaration() *NamespaceDeclarationNode {
	p.pushContext(ContextNamespace)
	defer p.popContext()

	keyword := p.expectKind(TokenNamespace)
	name := p.parseTypeName()
	open := p.expectKind(TokenOpenBrace)
	usings := p.parseUsingDirectives()

	var members []MemberDeclaration
	for p.current().Kind != TokenCloseBrace && p.current().Kind != TokenEndOfFile {
		members = append(members, p.parseNamespaceOrTypeMember())
	}

	closeB := p.expectKind(TokenCloseBrace)
	semi := p.expectOptional(TokenSemicolon)

	return &NamespaceDeclarationNode{
		baseNode:         newBase(NodeNamespaceDeclaration, spanOf(keyword, semi.Value, closeB)),
		NamespaceKeyword: keyword,
		Name:             name,
		OpenBrace:        open,
		Usings:           usings,
		Members:          members,
		CloseBrace:       closeB,
		Semicolon:        semi,
	}
}
