// Package errors defines the structured error kinds raised by every phase
// of elaboration and simulation: lexing, parsing, semantic building, and
// the stabilization kernel / testbench façade.
package errors

import (
	"fmt"
	"strings"
)

// ErrorKind partitions FloteError into the taxonomy from the language
// specification. Each kind is raised by exactly one phase.
type ErrorKind int

const (
	KindLexical ErrorKind = iota
	KindSyntactical
	KindSemantical
	KindElaboration
	KindSimulation
)

func (k ErrorKind) String() string {
	switch k {
	case KindLexical:
		return "LexicalError"
	case KindSyntactical:
		return "SyntacticalError"
	case KindSemantical:
		return "SemanticalError"
	case KindElaboration:
		return "ElaborationError"
	case KindSimulation:
		return "SimulationError"
	default:
		return "Error"
	}
}

// FloteError is a structured error carrying its kind, an optional source
// line, and an optional wrapped cause. ElaborationError is the one kind
// that always carries a Cause: the failing phase's FloteError, or the
// file-read error when a source file cannot be read.
type FloteError struct {
	Kind    ErrorKind
	Message string
	Line    int
	HasLine bool
	Cause   error
}

// Error implements the error interface. Call WithSnippet separately to
// append the offending source line.
func (e *FloteError) Error() string {
	var b strings.Builder
	b.WriteString(e.Kind.String())
	b.WriteString(": ")
	b.WriteString(e.Message)
	if e.HasLine {
		fmt.Fprintf(&b, " (line %d)", e.Line)
	}
	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	return b.String()
}

// Unwrap allows errors.Is/errors.As to see through to the cause.
func (e *FloteError) Unwrap() error {
	return e.Cause
}

// NewLexicalError reports an unknown character or malformed lexeme (§4.1).
func NewLexicalError(line int, message string) *FloteError {
	return &FloteError{Kind: KindLexical, Message: message, Line: line, HasLine: true}
}

// NewSyntacticalError reports a token mismatch or unexpected EOF (§4.2).
func NewSyntacticalError(line int, message string) *FloteError {
	return &FloteError{Kind: KindSyntactical, Message: message, Line: line, HasLine: true}
}

// NewSemanticalError reports a build-time rule violation (§4.3).
func NewSemanticalError(line int, message string) *FloteError {
	return &FloteError{Kind: KindSemantical, Message: message, Line: line, HasLine: true}
}

// NewSemanticalErrorNoLine reports a module-level rule violation that has
// no single offending line (empty module, missing main).
func NewSemanticalErrorNoLine(message string) *FloteError {
	return &FloteError{Kind: KindSemantical, Message: message}
}

// NewElaborationError wraps a failure surfaced by the elaboration façade,
// preserving the original phase error as Cause.
func NewElaborationError(message string, cause error) *FloteError {
	return &FloteError{Kind: KindElaboration, Message: message, Cause: cause}
}

// NewSimulationError reports a stimulus or stabilization failure (§4.5/§4.6).
func NewSimulationError(message string) *FloteError {
	return &FloteError{Kind: KindSimulation, Message: message}
}

// Is reports whether err is a *FloteError of the given kind, looking
// through ElaborationError wrappers (however deeply nested) to check the
// underlying cause too.
func Is(err error, kind ErrorKind) bool {
	fe, ok := err.(*FloteError)
	if !ok {
		return false
	}
	if fe.Kind == kind {
		return true
	}
	if fe.Kind == KindElaboration && fe.Cause != nil {
		return Is(fe.Cause, kind)
	}
	return false
}

// WithSnippet renders the error message followed by a line-gutter excerpt
// of the offending line within source (in the shape of the teacher's
// createCodeSnippet), returning the plain message unchanged when no line
// is attached or the line is out of range. FloteError carries a line
// number but no column, so unlike the teacher's snippet this never points
// a caret at an exact offset within the line.
func (e *FloteError) WithSnippet(source string) string {
	if !e.HasLine || e.Line <= 0 {
		return e.Error()
	}

	lines := strings.Split(source, "\n")
	if e.Line > len(lines) {
		return e.Error()
	}

	var b strings.Builder
	b.WriteString(e.Error())
	b.WriteString("\n")
	fmt.Fprintf(&b, "  --> line %d\n", e.Line)
	b.WriteString("   |\n")
	fmt.Fprintf(&b, "%2d | %s\n", e.Line, lines[e.Line-1])
	b.WriteString("   |\n")
	return b.String()
}
