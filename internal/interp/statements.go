package interp

import (
	"github.com/antogp24/javaclone/internal/ast"
	"github.com/antogp24/javaclone/internal/errors"
	"github.com/antogp24/javaclone/internal/types"
)

func (interp *Interpreter) execute(stmt ast.Statement) error {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := interp.evaluate(s.Expr)
		return err

	case *ast.PrintStmt:
		v, err := interp.evaluate(s.Value)
		if err != nil {
			return err
		}
		interp.out.WriteString(v.Print())
		if s.Newline {
			interp.out.WriteString("\n")
		}
		return nil

	case *ast.VarStmt:
		return interp.executeVar(s)

	case *ast.BlockStmt:
		return interp.ExecuteBlock(s.Statements, NewChildEnvironment(interp.current))

	case *ast.IfStmt:
		return interp.executeIf(s)

	case *ast.WhileStmt:
		return interp.executeWhile(s)

	case *ast.FunctionStmt:
		fn := &UserFunction{Decl: s, Closure: interp.current}
		return interp.current.DefineCallable(s.Name, FunctionValue(fn))

	case *ast.ClassStmt:
		return interp.executeClass(s)

	case *ast.ReturnStmt:
		if s.Value == nil {
			return returnSignal{Value: Void}
		}
		v, err := interp.evaluate(s.Value)
		if err != nil {
			return err
		}
		return returnSignal{Value: v}

	case *ast.BreakStmt:
		return breakSignal{}

	case *ast.ContinueStmt:
		return continueSignal{}

	default:
		return nil
	}
}

func (interp *Interpreter) executeVar(s *ast.VarStmt) error {
	declared := TagForTypeToken(s.TypeTok)
	for i, name := range s.Names {
		var value Value
		has := false
		if s.Initializers[i] != nil {
			v, err := interp.evaluate(s.Initializers[i])
			if err != nil {
				return err
			}
			value = v
			has = true
		}
		if err := interp.current.Define(name, declared, s.Visibility, s.IsStatic, s.IsFinal, value, has); err != nil {
			return err
		}
	}
	return nil
}

// ExecuteBlock runs stmts with env installed as the current frame,
// restoring the previous frame on every exit path including an unwinding
// signal or error.
func (interp *Interpreter) ExecuteBlock(stmts []ast.Statement, env *Environment) error {
	prev := interp.current
	interp.current = env
	defer func() { interp.current = prev }()

	for _, stmt := range stmts {
		if err := interp.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (interp *Interpreter) executeIf(s *ast.IfStmt) error {
	cond, err := interp.evaluate(s.Condition)
	if err != nil {
		return err
	}
	if cond.Tag != types.Boolean {
		return errors.NewRuntimeError(s.Tok, "Condition must be a boolean.")
	}
	if cond.Bool {
		return interp.execute(s.Then)
	}
	for _, ei := range s.ElseIfs {
		c, err := interp.evaluate(ei.Condition)
		if err != nil {
			return err
		}
		if c.Tag != types.Boolean {
			return errors.NewRuntimeError(s.Tok, "Condition must be a boolean.")
		}
		if c.Bool {
			return interp.execute(ei.Then)
		}
	}
	if s.Else != nil {
		return interp.execute(s.Else)
	}
	return nil
}

func (interp *Interpreter) executeWhile(s *ast.WhileStmt) error {
	for {
		cond, err := interp.evaluate(s.Condition)
		if err != nil {
			return err
		}
		if cond.Tag != types.Boolean {
			return errors.NewRuntimeError(s.Tok, "Condition must be a boolean.")
		}
		if !cond.Bool {
			return nil
		}

		err = interp.execute(s.Body)
		if err == nil {
			continue
		}
		switch err.(type) {
		case breakSignal:
			return nil
		case continueSignal:
			if s.HasIncrement {
				if block, ok := s.Body.(*ast.BlockStmt); ok && len(block.Statements) > 0 {
					last := block.Statements[len(block.Statements)-1]
					if ierr := interp.execute(last); ierr != nil {
						return ierr
					}
				}
			}
			continue
		default:
			return err
		}
	}
}
