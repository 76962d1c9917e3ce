// parser.go — recursive-descent parser for Lox.
//
// OVERVIEW
// --------
// The parser consumes the token slice produced by the lexer and builds the
// statement list for one program (or one REPL line). Expressions use an
// explicit precedence ladder, lowest to highest:
//
//	assignment → equality → comparison → term → factor → unary → primary
//
// Each binary level is left-associative: parse one operand at the next-higher
// level, then fold in further operands while a matching operator is present,
// producing a left-leaning tree. Assignment is right-associative and only
// valid when its left-hand side parsed as a Variable; any other shape is
// reported and the already-parsed expression is returned as a best-effort
// node.
//
// Statement grammar:
//
//	program     → declaration* EOF
//	declaration → "var" IDENTIFIER ( "=" expression )? ";"
//	            | statement
//	statement   → "print" expression ";"
//	            | "{" declaration* "}"
//	            | expression ";"
//
// ERROR RECOVERY
// --------------
// There is no panic-based unwinding: every parse function returns
// (node, error) and the failure propagates explicitly up to the declaration
// loop. A failed consume reports through the shared Reporter (distinguishing
// "at end" from "at '<lexeme>'"), then the loop resynchronizes — tokens are
// discarded through the next ";" or up to a token that starts a new statement
// — so a single pass reports every independent syntax fault it can reach.
//
// INTERACTIVE MODE
// ----------------
// In interactive mode a missing token at EOF yields *ParseError with
// Incomplete set instead of a report, letting a REPL distinguish "this line
// is wrong" from "this line isn't finished" and prompt for a continuation.
package lox

import (
	"errors"
	"fmt"
)

// ParseError is a syntax fault anchored at a token. Incomplete marks the
// interactive-mode case where input simply ended mid-statement.
type ParseError struct {
	Token      Token
	Msg        string
	Incomplete bool
}

func (e *ParseError) Error() string {
	if e.Incomplete {
		return fmt.Sprintf("incomplete input at line %d: %s", e.Token.Line, e.Msg)
	}
	return fmt.Sprintf("parse error at line %d: %s", e.Token.Line, e.Msg)
}

// IsIncomplete reports whether err marks interactive input that ended before
// the current statement could be finished.
func IsIncomplete(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe) && pe.Incomplete
}

// Parser consumes a token slice with single-token lookahead.
type Parser struct {
	toks        []Token
	cur         int
	rep         *Reporter
	interactive bool
}

// NewParser creates a parser over toks, reporting faults to rep.
func NewParser(toks []Token, rep *Reporter) *Parser {
	return &Parser{toks: toks, rep: rep}
}

// NewParserInteractive creates a REPL-mode parser; see the overview.
func NewParserInteractive(toks []Token, rep *Reporter) *Parser {
	p := NewParser(toks, rep)
	p.interactive = true
	return p
}

// Parse parses declarations until EOF. Syntax faults are reported and
// recovered from; the returned error is non-nil only for interactive
// incomplete input (check with IsIncomplete).
func (p *Parser) Parse() ([]Stmt, error) {
	var stmts []Stmt
	for !p.atEnd() {
		s, err := p.declaration()
		if err != nil {
			if IsIncomplete(err) {
				return nil, err
			}
			p.synchronize()
			continue
		}
		stmts = append(stmts, s)
	}
	return stmts, nil
}

// ----- token basics -----

func (p *Parser) atEnd() bool { return p.peek().Type == EOF }

func (p *Parser) peek() Token { return p.toks[p.cur] }

func (p *Parser) prev() Token { return p.toks[p.cur-1] }

func (p *Parser) check(tt TokenType) bool {
	if p.atEnd() {
		return false
	}
	return p.peek().Type == tt
}

func (p *Parser) advance() Token {
	if !p.atEnd() {
		p.cur++
	}
	return p.prev()
}

func (p *Parser) match(tts ...TokenType) bool {
	for _, tt := range tts {
		if p.check(tt) {
			p.advance()
			return true
		}
	}
	return false
}

// need consumes a token of type tt or fails with msg.
func (p *Parser) need(tt TokenType, msg string) (Token, error) {
	if p.check(tt) {
		return p.advance(), nil
	}
	return Token{}, p.fail(p.peek(), msg)
}

// fail reports a syntax fault at tok and returns the matching error. In
// interactive mode a fault at EOF is classified incomplete and not reported.
func (p *Parser) fail(tok Token, msg string) *ParseError {
	if p.interactive && tok.Type == EOF {
		return &ParseError{Token: tok, Msg: msg, Incomplete: true}
	}
	p.rep.ErrorAt(tok, msg)
	return &ParseError{Token: tok, Msg: msg}
}

// synchronize discards tokens up to the next statement boundary: just past a
// ";", or just before a token that starts a new statement.
func (p *Parser) synchronize() {
	p.advance()
	for !p.atEnd() {
		if p.prev().Type == SEMICOLON {
			return
		}
		switch p.peek().Type {
		case CLASS, FOR, FUN, IF, PRINT, RETURN, VAR, WHILE:
			return
		}
		p.advance()
	}
}

// ----- statements -----

func (p *Parser) declaration() (Stmt, error) {
	if p.match(VAR) {
		return p.varDeclaration()
	}
	return p.statement()
}

func (p *Parser) varDeclaration() (Stmt, error) {
	name, err := p.need(IDENTIFIER, "Expect variable name.")
	if err != nil {
		return nil, err
	}
	var init Expr
	if p.match(EQUAL) {
		if init, err = p.expression(); err != nil {
			return nil, err
		}
	}
	if _, err = p.need(SEMICOLON, "Expect ';' after variable declaration."); err != nil {
		return nil, err
	}
	return &VarStmt{Name: name, Initializer: init}, nil
}

func (p *Parser) statement() (Stmt, error) {
	if p.match(PRINT) {
		return p.printStatement()
	}
	if p.match(LEFT_BRACE) {
		return p.block()
	}
	return p.expressionStatement()
}

func (p *Parser) printStatement() (Stmt, error) {
	value, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err = p.need(SEMICOLON, "Expect ';' after value."); err != nil {
		return nil, err
	}
	return &PrintStmt{Expr: value}, nil
}

// block recovers from inner faults itself, like the top-level loop, so one
// bad statement does not abandon the rest of the block.
func (p *Parser) block() (Stmt, error) {
	var stmts []Stmt
	for !p.check(RIGHT_BRACE) && !p.atEnd() {
		s, err := p.declaration()
		if err != nil {
			if IsIncomplete(err) {
				return nil, err
			}
			p.synchronize()
			continue
		}
		stmts = append(stmts, s)
	}
	if _, err := p.need(RIGHT_BRACE, "Expect '}' after block."); err != nil {
		return nil, err
	}
	return &BlockStmt{Statements: stmts}, nil
}

func (p *Parser) expressionStatement() (Stmt, error) {
	expr, err := p.expression()
	if err != nil {
		return nil, err
	}
	if _, err = p.need(SEMICOLON, "Expect ';' after expression."); err != nil {
		return nil, err
	}
	return &ExpressionStmt{Expr: expr}, nil
}

// ----- expressions -----

func (p *Parser) expression() (Expr, error) {
	return p.assignment()
}

func (p *Parser) assignment() (Expr, error) {
	expr, err := p.equality()
	if err != nil {
		return nil, err
	}
	if p.match(EQUAL) {
		equals := p.prev()
		value, err := p.assignment()
		if err != nil {
			return nil, err
		}
		if v, ok := expr.(*Variable); ok {
			return &Assign{Name: v.Name, Value: value}, nil
		}
		// Best effort: report, keep the parsed left-hand side.
		p.rep.ErrorAt(equals, "Invalid assignment target.")
	}
	return expr, nil
}

// binaryLevel folds left-associative operators of one precedence level.
func (p *Parser) binaryLevel(operand func() (Expr, error), tts ...TokenType) (Expr, error) {
	expr, err := operand()
	if err != nil {
		return nil, err
	}
	for p.match(tts...) {
		op := p.prev()
		right, err := operand()
		if err != nil {
			return nil, err
		}
		expr = &Binary{Operator: op, Left: expr, Right: right}
	}
	return expr, nil
}

func (p *Parser) equality() (Expr, error) {
	return p.binaryLevel(p.comparison, BANG_EQUAL, EQUAL_EQUAL)
}

func (p *Parser) comparison() (Expr, error) {
	return p.binaryLevel(p.term, GREATER, GREATER_EQUAL, LESS, LESS_EQUAL)
}

func (p *Parser) term() (Expr, error) {
	return p.binaryLevel(p.factor, MINUS, PLUS)
}

func (p *Parser) factor() (Expr, error) {
	return p.binaryLevel(p.unary, SLASH, STAR)
}

func (p *Parser) unary() (Expr, error) {
	if p.match(BANG, MINUS) {
		op := p.prev()
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		return &Unary{Operator: op, Operand: operand}, nil
	}
	return p.primary()
}

func (p *Parser) primary() (Expr, error) {
	switch {
	case p.match(FALSE):
		return &Literal{Value: Bool(false)}, nil
	case p.match(TRUE):
		return &Literal{Value: Bool(true)}, nil
	case p.match(NIL):
		return &Literal{Value: Nil}, nil
	case p.match(NUMBER):
		return &Literal{Value: Num(p.prev().Literal.(float64))}, nil
	case p.match(STRING):
		return &Literal{Value: Str(p.prev().Literal.(string))}, nil
	case p.match(IDENTIFIER):
		return &Variable{Name: p.prev()}, nil
	case p.match(LEFT_PAREN):
		inner, err := p.expression()
		if err != nil {
			return nil, err
		}
		if _, err = p.need(RIGHT_PAREN, "Expect ')' after expression."); err != nil {
			return nil, err
		}
		return &Grouping{Inner: inner}, nil
	}
	return nil, p.fail(p.peek(), "Expect expression.")
}
