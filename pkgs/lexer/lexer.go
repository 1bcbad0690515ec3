package lexer

import (
	"regexp"

	flerrors "github.com/icarogabryel/flote/pkgs/errors"
)

var (
	identRe    = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*$`)
	bitFieldRe = regexp.MustCompile(`^"[01]+"$`)
	decRe      = regexp.MustCompile(`^(0|[1-9][0-9]*)$`)
	allDigitRe = regexp.MustCompile(`^[0-9]+$`)
)

// Lexer tokenizes Flote source text into a single-pass, non-restartable
// stream of Tokens, per spec §4.1.
type Lexer struct {
	input   string
	pos     int // index of ch in input
	readPos int // index of the next byte to read
	ch      byte
	line    int
}

// New creates a Lexer over source. The lexer is positioned on the first
// character, before the first token; call NextToken to begin scanning.
func New(source string) *Lexer {
	l := &Lexer{input: source, line: 1}
	l.readChar()
	return l
}

func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0
	} else {
		l.ch = l.input[l.readPos]
	}
	l.pos = l.readPos
	l.readPos++
}

func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

func (l *Lexer) isEOF() bool {
	return l.pos >= len(l.input)
}

// skipIgnored advances past whitespace and `//` line comments, tracking
// the line counter on every newline consumed.
func (l *Lexer) skipIgnored() {
	for !l.isEOF() {
		for !l.isEOF() && (l.ch == ' ' || l.ch == '\t' || l.ch == '\n') {
			if l.ch == '\n' {
				l.line++
			}
			l.readChar()
		}

		if l.ch == '/' && l.peekChar() == '/' {
			for !l.isEOF() && l.ch != '\n' {
				l.readChar()
			}
			continue
		}

		break
	}
}

// scanLexeme accumulates characters up to the next punctuation character
// or whitespace, per spec §4.1.
func (l *Lexer) scanLexeme() string {
	start := l.pos
	for !l.isEOF() {
		if _, isPunct := punctuation[l.ch]; isPunct {
			break
		}
		if l.ch == ' ' || l.ch == '\t' || l.ch == '\n' {
			break
		}
		l.readChar()
	}
	return l.input[start:l.pos]
}

// NextToken returns the next Token in the stream, or an EOF token when
// the input is exhausted. It returns a *flerrors.FloteError of kind
// KindLexical on an invalid lexeme or invalid character.
func (l *Lexer) NextToken() (Token, error) {
	l.skipIgnored()

	line := l.line

	if l.isEOF() {
		return Token{Type: EOF, Lexeme: "", Line: line}, nil
	}

	if tt, ok := punctuation[l.ch]; ok {
		lexeme := string(l.ch)
		l.readChar()
		return Token{Type: tt, Lexeme: lexeme, Line: line}, nil
	}

	if isWordStart(l.ch) {
		lexeme := l.scanLexeme()

		if kw, ok := keywords[lexeme]; ok {
			return Token{Type: kw, Lexeme: lexeme, Line: line}, nil
		}
		if identRe.MatchString(lexeme) {
			return Token{Type: ID, Lexeme: lexeme, Line: line}, nil
		}
		if bitFieldRe.MatchString(lexeme) {
			return Token{Type: BIT_FIELD, Lexeme: lexeme, Line: line}, nil
		}
		if decRe.MatchString(lexeme) {
			return Token{Type: DEC, Lexeme: lexeme, Line: line}, nil
		}
		if allDigitRe.MatchString(lexeme) {
			return Token{}, flerrors.NewLexicalError(line, "decimal number cannot begin with 0: "+lexeme)
		}

		return Token{}, flerrors.NewLexicalError(line, "invalid lexeme: "+lexeme)
	}

	ch := l.ch
	l.readChar()
	return Token{}, flerrors.NewLexicalError(line, "invalid character: "+string(ch))
}

func isWordStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || (ch >= '0' && ch <= '9') || ch == '"'
}

// TokenizeToSlice scans the entire input into a slice terminated by EOF,
// stopping early and returning the first lexical error encountered.
func (l *Lexer) TokenizeToSlice() ([]Token, error) {
	var tokens []Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, tok)
		if tok.Type == EOF {
			break
		}
	}
	return tokens, nil
}
