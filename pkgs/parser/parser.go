// Package parser implements the hand-written recursive-descent parser for
// Flote source text, producing the AST defined in pkgs/ast (spec §4.2).
package parser

import (
	"strconv"
	"strings"

	"github.com/icarogabryel/flote/pkgs/ast"
	flerrors "github.com/icarogabryel/flote/pkgs/errors"
	"github.com/icarogabryel/flote/pkgs/lexer"
)

// Parser is an LL(1) recursive-descent parser over a pre-scanned token
// slice. It trusts the lexer to have already classified every lexeme and
// focuses purely on assembling the AST.
type Parser struct {
	tokens []lexer.Token
	pos    int
}

// Parse tokenizes and parses source into a Module AST, or returns the
// first LexicalError or SyntacticalError encountered.
func Parse(source string) (*ast.Module, error) {
	tokens, err := lexer.New(source).TokenizeToSlice()
	if err != nil {
		return nil, err
	}

	p := &Parser{tokens: tokens}
	return p.parseModule()
}

func (p *Parser) newSyntacticalError(line int, message string) error {
	return flerrors.NewSyntacticalError(line, message)
}

// --- token cursor helpers ---

func (p *Parser) current() lexer.Token {
	return p.tokens[p.pos]
}

func (p *Parser) check(tt lexer.TokenType) bool {
	return p.current().Type == tt
}

func (p *Parser) advance() lexer.Token {
	tok := p.current()
	if tok.Type != lexer.EOF {
		p.pos++
	}
	return tok
}

// consume advances past the current token if it matches tt, otherwise
// returns a SyntacticalError naming expected and the token actually seen.
func (p *Parser) consume(tt lexer.TokenType, expected string) (lexer.Token, error) {
	if !p.check(tt) {
		return lexer.Token{}, p.newUnexpectedTokenError(expected, p.current())
	}
	return p.advance(), nil
}

// --- grammar: module = { component } , EOF ; ---

func (p *Parser) parseModule() (*ast.Module, error) {
	var components []ast.Component

	for !p.check(lexer.EOF) {
		comp, err := p.parseComponent()
		if err != nil {
			return nil, err
		}
		components = append(components, *comp)
	}

	return &ast.Module{Components: components}, nil
}

// component = [ "main" ] , "comp" , ID , "{" , { statement } , "}" ;
func (p *Parser) parseComponent() (*ast.Component, error) {
	isMain := false
	if p.check(lexer.MAIN) {
		isMain = true
		p.advance()
	}

	compTok, err := p.consume(lexer.COMP, "'comp'")
	if err != nil {
		return nil, err
	}

	idTok, err := p.consume(lexer.ID, "component identifier")
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(lexer.LBRACE, "'{'"); err != nil {
		return nil, err
	}

	var stmts []ast.Statement
	for !p.check(lexer.RBRACE) {
		if p.check(lexer.EOF) {
			return nil, p.newUnexpectedTokenError("'}'", p.current())
		}
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}

	if _, err := p.consume(lexer.RBRACE, "'}'"); err != nil {
		return nil, err
	}

	return &ast.Component{
		ID:         idTok.Lexeme,
		IsMain:     isMain,
		Statements: stmts,
		Line:       compTok.Line,
	}, nil
}

// statement = decl | assign ;
func (p *Parser) parseStatement() (ast.Statement, error) {
	switch p.current().Type {
	case lexer.IN, lexer.OUT, lexer.BIT:
		return p.parseDecl()
	case lexer.ID:
		return p.parseAssign()
	default:
		return nil, p.newUnexpectedTokenError("a declaration or assignment", p.current())
	}
}

// decl = [ "in" | "out" ] , "bit" , [ dim ] , ID , [ "=" , expr ] , ";" ;
// dim  = "[" , DEC , "]" ;
func (p *Parser) parseDecl() (*ast.Decl, error) {
	line := p.current().Line

	conn := ast.Internal
	switch p.current().Type {
	case lexer.IN:
		conn = ast.Input
		p.advance()
	case lexer.OUT:
		conn = ast.Output
		p.advance()
	}

	if _, err := p.consume(lexer.BIT, "'bit'"); err != nil {
		return nil, err
	}

	var dim *ast.Size
	if p.check(lexer.LBRACKET) {
		p.advance()
		decTok, err := p.consume(lexer.DEC, "a decimal width")
		if err != nil {
			return nil, err
		}
		width, convErr := strconv.Atoi(decTok.Lexeme)
		if convErr != nil {
			return nil, p.newSyntacticalError(decTok.Line, "invalid width: "+decTok.Lexeme)
		}
		if _, err := p.consume(lexer.RBRACKET, "']'"); err != nil {
			return nil, err
		}
		dim = &ast.Size{Value: width, Line: decTok.Line}
	}

	idTok, err := p.consume(lexer.ID, "bus identifier")
	if err != nil {
		return nil, err
	}

	var init ast.Expr
	if p.check(lexer.ASSIGN) {
		p.advance()
		init, err = p.parseExpr()
		if err != nil {
			return nil, err
		}
	}

	if _, err := p.consume(lexer.SEMICOLON, "';'"); err != nil {
		return nil, err
	}

	return &ast.Decl{
		ID:          idTok.Lexeme,
		Connection:  conn,
		Dimension:   dim,
		Initializer: init,
		Line:        line,
	}, nil
}

// assign = ID , "=" , expr , ";" ;
func (p *Parser) parseAssign() (*ast.Assign, error) {
	idTok, err := p.consume(lexer.ID, "bus identifier")
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(lexer.ASSIGN, "'='"); err != nil {
		return nil, err
	}

	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	if _, err := p.consume(lexer.SEMICOLON, "';'"); err != nil {
		return nil, err
	}

	return &ast.Assign{
		Destiny: ast.Identifier{ID: idTok.Lexeme, Line: idTok.Line},
		Expr:    expr,
		Line:    idTok.Line,
	}, nil
}

// --- expressions, precedence ladder low to high: or/nor, xor/xnor, and/nand, unary not ---

// expr = term , { ("or" | "nor") , term } ;
func (p *Parser) parseExpr() (ast.Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for p.check(lexer.OR) || p.check(lexer.NOR) {
		opTok := p.advance()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		kind := ast.BinOr
		if opTok.Type == lexer.NOR {
			kind = ast.BinNor
		}
		left = ast.Binary{Kind: kind, Left: left, Right: right, Line: opTok.Line}
	}

	return left, nil
}

// term = factor , { ("xor" | "xnor") , factor } ;
func (p *Parser) parseTerm() (ast.Expr, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}

	for p.check(lexer.XOR) || p.check(lexer.XNOR) {
		opTok := p.advance()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}
		kind := ast.BinXor
		if opTok.Type == lexer.XNOR {
			kind = ast.BinXnor
		}
		left = ast.Binary{Kind: kind, Left: left, Right: right, Line: opTok.Line}
	}

	return left, nil
}

// factor = primary , { ("and" | "nand") , primary } ;
func (p *Parser) parseFactor() (ast.Expr, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for p.check(lexer.AND) || p.check(lexer.NAND) {
		opTok := p.advance()
		right, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		kind := ast.BinAnd
		if opTok.Type == lexer.NAND {
			kind = ast.BinNand
		}
		left = ast.Binary{Kind: kind, Left: left, Right: right, Line: opTok.Line}
	}

	return left, nil
}

// primary = "not" , primary | "(" , expr , ")" | ID | BIT_FIELD ;
func (p *Parser) parsePrimary() (ast.Expr, error) {
	switch p.current().Type {
	case lexer.NOT:
		tok := p.advance()
		expr, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		return ast.Not{Expr: expr, Line: tok.Line}, nil

	case lexer.LPAREN:
		p.advance()
		expr, err := p.parseExpr()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(lexer.RPAREN, "')'"); err != nil {
			return nil, err
		}
		return expr, nil

	case lexer.ID:
		tok := p.advance()
		return ast.Identifier{ID: tok.Lexeme, Line: tok.Line}, nil

	case lexer.BIT_FIELD:
		tok := p.advance()
		return ast.BitField{Value: strings.Trim(tok.Lexeme, `"`), Line: tok.Line}, nil

	default:
		return nil, p.newUnexpectedTokenError("an identifier, bit field, 'not', or '('", p.current())
	}
}
