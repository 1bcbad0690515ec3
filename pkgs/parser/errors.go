package parser

import (
	"fmt"

	"github.com/icarogabryel/flote/pkgs/lexer"
)

// newUnexpectedTokenError reports that expected was wanted but got was
// observed, citing got's line, matching the teacher's
// "expected X, got Y" message shape (pkgs/parser/errors.go).
func (p *Parser) newUnexpectedTokenError(expected string, got lexer.Token) error {
	return p.syntacticalErrorf(got.Line, "expected %s, got %s", expected, got.Type)
}

// newMissingTokenError reports that expected was wanted at the current
// position but nothing usable was found.
func (p *Parser) newMissingTokenError(expected string) error {
	return p.syntacticalErrorf(p.current().Line, "expected %s", expected)
}

func (p *Parser) syntacticalErrorf(line int, format string, args ...interface{}) error {
	return p.newSyntacticalError(line, fmt.Sprintf(format, args...))
}
