package cscst

import "fmt"

// Severity classifies a Diagnostic. The core partitions diagnostics only by
// severity; there is no error-code registry.
type Severity int

const (
	// SeverityWarning marks a non-fatal diagnostic.
	SeverityWarning Severity = iota
	// SeverityError marks a diagnostic that indicates malformed input.
	SeverityError
)

// String renders the severity for logging and display.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Diagnostic is a single reported message, anchored at a byte position.
type Diagnostic struct {
	Severity Severity
	Position int
	Message  string
}

// String renders the diagnostic in "severity@position: message" form.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s@%d: %s", d.Severity, d.Position, d.Message)
}

// Diagnostics is an append-only log of diagnostics produced while lexing and
// parsing. Speculative parses can roll back provisional entries via
// Suppress/Suppression.Restore.
type Diagnostics struct {
	entries []Diagnostic

	// treatWarningsAsErrors promotes every reported warning to an error.
	// Set by ParserOptions; see options.go.
	treatWarningsAsErrors bool
}

// NewDiagnostics returns an empty diagnostic log.
func NewDiagnostics() *Diagnostics {
	return &Diagnostics{}
}

// SetTreatWarningsAsErrors configures whether subsequently reported warnings
// are recorded as errors. It does not retroactively change prior entries.
func (d *Diagnostics) SetTreatWarningsAsErrors(v bool) {
	d.treatWarningsAsErrors = v
}

// ReportWarning appends a warning-severity diagnostic.
func (d *Diagnostics) ReportWarning(position int, message string) {
	sev := SeverityWarning
	if d.treatWarningsAsErrors {
		sev = SeverityError
	}

	d.entries = append(d.entries, Diagnostic{Severity: sev, Position: position, Message: message})
}

// ReportError appends an error-severity diagnostic.
func (d *Diagnostics) ReportError(position int, message string) {
	d.entries = append(d.entries, Diagnostic{Severity: SeverityError, Position: position, Message: message})
}

// Entries returns all diagnostics reported so far, in report order.
func (d *Diagnostics) Entries() []Diagnostic {
	return d.entries
}

// Len returns the number of diagnostics currently in the log.
func (d *Diagnostics) Len() int {
	return len(d.entries)
}

// HasErrors reports whether any entry has error severity.
func (d *Diagnostics) HasErrors() bool {
	for _, e := range d.entries {
		if e.Severity == SeverityError {
			return true
		}
	}

	return false
}

// Suppression is an opaque checkpoint over the diagnostic log, used to
// discard provisional diagnostics emitted during a speculative parse that is
// ultimately rejected.
type Suppression struct {
	log   *Diagnostics
	index int
}

// Suppress returns a checkpoint at the log's current length. Restore
// truncates the log back to that length.
func (d *Diagnostics) Suppress() Suppression {
	return Suppression{log: d, index: len(d.entries)}
}

// Restore truncates the diagnostic log back to the length it had when the
// checkpoint was created, discarding every diagnostic reported since.
func (s Suppression) Restore() {
	if s.log == nil {
		return
	}

	if s.index < len(s.log.entries) {
		s.log.entries = s.log.entries[:s.index]
	}
}
