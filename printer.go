// printer.go — S-expression rendering of AST nodes.
//
// The renderings are compact Lisp-style forms used by tests to pin tree
// shapes and by the CLI's --ast flag:
//
//	1 + 2 * 3;      →  (+ 1 (* 2 3))
//	var x = 1;      →  (var x 1)
//	{ print x; }    →  (block (print x))
package lox

import (
	"fmt"
	"strconv"
	"strings"
)

// PrintExpr renders an expression tree as a parenthesized S-expression.
func PrintExpr(e Expr) string {
	switch ex := e.(type) {
	case *Literal:
		if ex.Value.Tag == VTStr {
			return strconv.Quote(ex.Value.Data.(string))
		}
		return FormatValue(ex.Value)
	case *Grouping:
		return parenthesize("group", PrintExpr(ex.Inner))
	case *Unary:
		return parenthesize(ex.Operator.Lexeme, PrintExpr(ex.Operand))
	case *Binary:
		return parenthesize(ex.Operator.Lexeme, PrintExpr(ex.Left), PrintExpr(ex.Right))
	case *Variable:
		return ex.Name.Lexeme
	case *Assign:
		return parenthesize("assign", ex.Name.Lexeme, PrintExpr(ex.Value))
	default:
		return fmt.Sprintf("<%T>", e)
	}
}

// PrintStmtNode renders a statement tree as a parenthesized S-expression.
func PrintStmtNode(s Stmt) string {
	switch st := s.(type) {
	case *ExpressionStmt:
		return parenthesize("expr", PrintExpr(st.Expr))
	case *PrintStmt:
		return parenthesize("print", PrintExpr(st.Expr))
	case *VarStmt:
		if st.Initializer == nil {
			return parenthesize("var", st.Name.Lexeme)
		}
		return parenthesize("var", st.Name.Lexeme, PrintExpr(st.Initializer))
	case *BlockStmt:
		parts := make([]string, 0, len(st.Statements))
		for _, inner := range st.Statements {
			parts = append(parts, PrintStmtNode(inner))
		}
		return parenthesize("block", parts...)
	default:
		return fmt.Sprintf("<%T>", s)
	}
}

// PrintProgram renders a statement list one S-expression per line.
func PrintProgram(stmts []Stmt) string {
	var b strings.Builder
	for _, s := range stmts {
		b.WriteString(PrintStmtNode(s))
		b.WriteByte('\n')
	}
	return b.String()
}

func parenthesize(tag string, parts ...string) string {
	if len(parts) == 0 {
		return "(" + tag + ")"
	}
	return "(" + tag + " " + strings.Join(parts, " ") + ")"
}
