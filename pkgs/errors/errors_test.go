package errors

import "testing"

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindLexical, "LexicalError"},
		{KindSyntactical, "SyntacticalError"},
		{KindSemantical, "SemanticalError"},
		{KindElaboration, "ElaborationError"},
		{KindSimulation, "SimulationError"},
	}
	for _, tc := range tests {
		if got := tc.kind.String(); got != tc.want {
			t.Errorf("String() = %q, want %q", got, tc.want)
		}
	}
}

func TestFloteErrorMessageFormatting(t *testing.T) {
	err := NewLexicalError(3, "invalid character '@'")
	if got, want := err.Error(), "LexicalError: invalid character '@' (line 3)"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestFloteErrorWithoutLine(t *testing.T) {
	err := NewSemanticalErrorNoLine("module declares no components")
	if got, want := err.Error(), "SemanticalError: module declares no components"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestElaborationErrorUnwrapsToCause(t *testing.T) {
	cause := NewSemanticalError(5, "width mismatch")
	wrapped := NewElaborationError("failed to build component", cause)

	if !Is(wrapped, KindSemantical) {
		t.Errorf("expected Is(wrapped, KindSemantical) to see through the wrapper")
	}
	if wrapped.Unwrap() != cause {
		t.Errorf("Unwrap() did not return the original cause")
	}
}

func TestIsRejectsMismatchedKind(t *testing.T) {
	err := NewSyntacticalError(1, "unexpected token")
	if Is(err, KindLexical) {
		t.Errorf("did not expect Is(err, KindLexical) to match a SyntacticalError")
	}
}

func TestIsRejectsNonFloteError(t *testing.T) {
	if Is(nil, KindLexical) {
		t.Errorf("did not expect Is(nil, ...) to match")
	}
}

func TestWithSnippetRendersLineGutter(t *testing.T) {
	err := NewSemanticalError(2, `bus "x" has already been declared`)
	source := "comp a {\n  in bit x;\n  in bit x;\n}\n"

	snippet := err.WithSnippet(source)
	if got, want := snippet, "SemanticalError: bus \"x\" has already been declared (line 2)\n  --> line 2\n   |\n 2 |   in bit x;\n   |\n"; got != want {
		t.Errorf("WithSnippet() =\n%q\nwant\n%q", got, want)
	}
}

func TestWithSnippetFallsBackWithoutLine(t *testing.T) {
	err := NewSemanticalErrorNoLine("module declares no components")
	if got := err.WithSnippet("irrelevant source"); got != err.Error() {
		t.Errorf("WithSnippet() = %q, want %q", got, err.Error())
	}
}
