// ast.go — node types for the parsed program.
//
// Expressions and statements are closed variant sets. Every node owns its
// children outright: trees, no sharing, no cycles. Nodes keep the Token that
// introduced them only where diagnostics need it (operators, names).
package lox

// Expr is an expression node.
type Expr interface{ isExpr() }

// Literal evaluates to its stored value unchanged.
type Literal struct {
	Value Value
}

// Grouping is a parenthesized expression.
type Grouping struct {
	Inner Expr
}

// Unary is a prefix "!" or "-" application.
type Unary struct {
	Operator Token
	Operand  Expr
}

// Binary is a left-leaning infix application.
type Binary struct {
	Operator    Token
	Left, Right Expr
}

// Variable is a name read.
type Variable struct {
	Name Token
}

// Assign stores into an already-declared name and yields the stored value.
type Assign struct {
	Name  Token
	Value Expr
}

func (*Literal) isExpr()  {}
func (*Grouping) isExpr() {}
func (*Unary) isExpr()    {}
func (*Binary) isExpr()   {}
func (*Variable) isExpr() {}
func (*Assign) isExpr()   {}

// Stmt is a statement node. A program is an ordered statement slice; order is
// execution order.
type Stmt interface{ isStmt() }

// ExpressionStmt evaluates an expression and discards the result.
type ExpressionStmt struct {
	Expr Expr
}

// PrintStmt evaluates an expression and writes its rendering to the output
// channel.
type PrintStmt struct {
	Expr Expr
}

// VarStmt declares a name in the innermost scope. Initializer is nil when
// absent; the binding then defaults to nil.
type VarStmt struct {
	Name        Token
	Initializer Expr
}

// BlockStmt executes its statements in a fresh child environment.
type BlockStmt struct {
	Statements []Stmt
}

func (*ExpressionStmt) isStmt() {}
func (*PrintStmt) isStmt()      {}
func (*VarStmt) isStmt()        {}
func (*BlockStmt) isStmt()      {}
