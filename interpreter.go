// interpreter.go — tree-walking evaluator.
//
// The interpreter executes a statement list against one live global
// environment. For whole-file runs the environment lives for the run; for the
// interactive session it is held across Execute calls so declarations persist
// between lines. Evaluation is single-threaded and fail-fast: the first
// runtime fault aborts the remaining statements, and side effects already
// applied (prints, bindings) stand.
//
// Evaluation rules (all operand checks are tag checks, never coercions):
//
//	unary  "-"  needs Num            unary "!" negates truthiness
//	binary "-" "/" "*" need Num,Num  "+" is Num+Num or Str+Str only
//	">" ">=" "<" "<=" need Num,Num   "==" "!=" never fault
//
// "print" renders through FormatValue to the interpreter's output writer.
package lox

import (
	"fmt"
	"io"
)

// RuntimeError is an evaluation-time fault carrying the offending token for
// line attribution.
type RuntimeError struct {
	Token Token
	Msg   string
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("runtime error at line %d: %s", e.Token.Line, e.Msg)
}

// Interpreter walks statement trees against a chain of environments.
type Interpreter struct {
	Globals *Env
	env     *Env      // innermost scope; equals Globals outside blocks
	Out     io.Writer // destination for "print"
}

// NewInterpreter creates an interpreter whose print output goes to out.
func NewInterpreter(out io.Writer) *Interpreter {
	g := NewEnv(nil)
	return &Interpreter{Globals: g, env: g, Out: out}
}

// Execute runs the statements in order, stopping at the first runtime fault.
// The returned error, if any, is a *RuntimeError.
func (ip *Interpreter) Execute(stmts []Stmt) error {
	for _, s := range stmts {
		if err := ip.execStmt(s); err != nil {
			return err
		}
	}
	return nil
}

func (ip *Interpreter) execStmt(s Stmt) error {
	switch st := s.(type) {
	case *ExpressionStmt:
		_, err := ip.eval(st.Expr)
		return err
	case *PrintStmt:
		v, err := ip.eval(st.Expr)
		if err != nil {
			return err
		}
		fmt.Fprintln(ip.Out, FormatValue(v))
		return nil
	case *VarStmt:
		v := Nil
		if st.Initializer != nil {
			var err error
			if v, err = ip.eval(st.Initializer); err != nil {
				return err
			}
		}
		ip.env.Define(st.Name.Lexeme, v)
		return nil
	case *BlockStmt:
		return ip.executeBlock(st.Statements, NewEnv(ip.env))
	default:
		return fmt.Errorf("unknown statement node %T", s)
	}
}

// executeBlock runs stmts in env, restoring the previous scope afterward even
// on fault.
func (ip *Interpreter) executeBlock(stmts []Stmt, env *Env) error {
	prev := ip.env
	ip.env = env
	defer func() { ip.env = prev }()
	return ip.Execute(stmts)
}

func (ip *Interpreter) eval(e Expr) (Value, error) {
	switch ex := e.(type) {
	case *Literal:
		return ex.Value, nil
	case *Grouping:
		return ip.eval(ex.Inner)
	case *Unary:
		return ip.evalUnary(ex)
	case *Binary:
		return ip.evalBinary(ex)
	case *Variable:
		v, ok := ip.env.Get(ex.Name.Lexeme)
		if !ok {
			return Nil, undefined(ex.Name)
		}
		return v, nil
	case *Assign:
		v, err := ip.eval(ex.Value)
		if err != nil {
			return Nil, err
		}
		if !ip.env.Assign(ex.Name.Lexeme, v) {
			return Nil, undefined(ex.Name)
		}
		return v, nil
	default:
		return Nil, fmt.Errorf("unknown expression node %T", e)
	}
}

func (ip *Interpreter) evalUnary(ex *Unary) (Value, error) {
	operand, err := ip.eval(ex.Operand)
	if err != nil {
		return Nil, err
	}
	switch ex.Operator.Type {
	case MINUS:
		if operand.Tag != VTNum {
			return Nil, &RuntimeError{Token: ex.Operator, Msg: "Operand must be a number."}
		}
		return Num(-operand.Data.(float64)), nil
	case BANG:
		return Bool(!operand.Truthy()), nil
	}
	return Nil, fmt.Errorf("unknown unary operator %q", ex.Operator.Lexeme)
}

func (ip *Interpreter) evalBinary(ex *Binary) (Value, error) {
	left, err := ip.eval(ex.Left)
	if err != nil {
		return Nil, err
	}
	right, err := ip.eval(ex.Right)
	if err != nil {
		return Nil, err
	}

	op := ex.Operator
	switch op.Type {
	case EQUAL_EQUAL:
		return Bool(ValuesEqual(left, right)), nil
	case BANG_EQUAL:
		return Bool(!ValuesEqual(left, right)), nil
	case PLUS:
		if left.Tag == VTNum && right.Tag == VTNum {
			return Num(left.Data.(float64) + right.Data.(float64)), nil
		}
		if left.Tag == VTStr && right.Tag == VTStr {
			return Str(left.Data.(string) + right.Data.(string)), nil
		}
		return Nil, &RuntimeError{Token: op, Msg: "Operands must be two numbers or two strings."}
	}

	// Everything below needs two numbers.
	if left.Tag != VTNum || right.Tag != VTNum {
		return Nil, &RuntimeError{Token: op, Msg: "Operands must be numbers."}
	}
	a, b := left.Data.(float64), right.Data.(float64)
	switch op.Type {
	case MINUS:
		return Num(a - b), nil
	case SLASH:
		return Num(a / b), nil
	case STAR:
		return Num(a * b), nil
	case GREATER:
		return Bool(a > b), nil
	case GREATER_EQUAL:
		return Bool(a >= b), nil
	case LESS:
		return Bool(a < b), nil
	case LESS_EQUAL:
		return Bool(a <= b), nil
	}
	return Nil, fmt.Errorf("unknown binary operator %q", op.Lexeme)
}

func undefined(name Token) *RuntimeError {
	return &RuntimeError{Token: name, Msg: fmt.Sprintf("Undefined variable '%s'.", name.Lexeme)}
}
