package interp

import (
	"fmt"

	"github.com/antogp24/javaclone/internal/ast"
	"github.com/antogp24/javaclone/internal/errors"
	"github.com/antogp24/javaclone/internal/types"
	"github.com/antogp24/javaclone/pkg/token"
)

// fieldInfo is the per-instance-field metadata a class carries: its
// declared type, visibility, and finality, plus the initializer
// expression (if any) evaluated fresh for every new instance.
type fieldInfo struct {
	Declared   types.Tag
	Visibility types.Visibility
	IsFinal    bool
	Init       ast.Expression
}

// Class is a class declaration's runtime descriptor. It is itself
// Callable: calling it instantiates the class. Static fields and static
// methods live in StaticFields, a single slot table shared by every
// instance; instance fields and bound methods are copied per-instance in
// Instance.fields by Call.
type Class struct {
	Decl           *ast.ClassStmt
	Name           string
	IsAbstract     bool
	HasSuperclass  bool
	SuperclassName string

	Fields       map[string]fieldInfo
	Methods      map[string]*UserFunction // instance methods, unbound
	StaticFields *Environment
	Constructor  *UserFunction
}

func (c *Class) String() string { return fmt.Sprintf("<class %s>", c.Name) }

// Arity reports the constructor's parameter count, or zero for a class
// with no declared constructor.
func (c *Class) Arity() int {
	if c.Constructor == nil {
		return 0
	}
	return c.Constructor.Arity()
}

// Call instantiates c: allocating the instance, evaluating every field
// initializer with `this` bound to it, binding every instance method to
// it, and finally running the constructor body if one was declared.
func (c *Class) Call(interp *Interpreter, paren token.Token, args []Value) (Value, error) {
	if c.IsAbstract {
		return Value{}, errors.NewRuntimeError(paren, "Can't instantiate abstract class '%s'.", c.Name)
	}
	if c.HasSuperclass {
		return Value{}, errors.NewRuntimeError(paren, "Class '%s' extends '%s', but inheritance is not supported.", c.Name, c.SuperclassName)
	}

	inst := newInstance(c, interp.nextInstanceID())

	prevClass, prevThis := interp.currentClass, interp.currentThis
	interp.currentClass = c
	interp.currentThis = inst

	for name, info := range c.Fields {
		var value Value
		if info.Init != nil {
			v, err := interp.evaluate(info.Init)
			if err != nil {
				interp.currentClass, interp.currentThis = prevClass, prevThis
				return Value{}, err
			}
			converted, err := ConvertForDeclaredType(paren, info.Declared, v)
			if err != nil {
				interp.currentClass, interp.currentThis = prevClass, prevThis
				return Value{}, err
			}
			value = converted
		} else {
			value = zeroValue(info.Declared)
		}
		inst.fields[name] = &slot{
			value:       value,
			declared:    info.Declared,
			visibility:  info.Visibility,
			isFinal:     info.IsFinal,
			initialized: true,
		}
	}

	for name, method := range c.Methods {
		bound := method.Bind(inst)
		inst.fields[name] = &slot{
			value:       FunctionValue(bound),
			declared:    types.Function,
			visibility:  method.Decl.Visibility,
			isFinal:     true,
			initialized: true,
		}
	}

	interp.currentClass, interp.currentThis = prevClass, prevThis

	if c.Constructor != nil {
		if len(args) != c.Constructor.Arity() {
			return Value{}, errors.NewRuntimeError(paren, "Expected %d arguments but got %d.", c.Constructor.Arity(), len(args))
		}
		bound := c.Constructor.Bind(inst)
		if _, err := bound.Call(interp, paren, args); err != nil {
			return Value{}, err
		}
	} else if len(args) != 0 {
		return Value{}, errors.NewRuntimeError(paren, "Expected 0 arguments but got %d.", len(args))
	}

	return InstanceValue(inst), nil
}

// executeClass builds a Class descriptor from decl, evaluates its static
// field initializers once (in a scope with no `this`, since static
// context has no receiver), installs its static methods, and defines the
// class value in the enclosing environment.
func (interp *Interpreter) executeClass(decl *ast.ClassStmt) error {
	class := &Class{
		Decl:         decl,
		Name:         decl.Name.Lexeme,
		IsAbstract:   decl.IsAbstract,
		Fields:       make(map[string]fieldInfo),
		Methods:      make(map[string]*UserFunction),
		StaticFields: NewChildEnvironment(interp.global),
	}
	if decl.Superclass != nil {
		class.HasSuperclass = true
		class.SuperclassName = decl.Superclass.Lexeme
	}

	prevClass := interp.currentClass
	interp.currentClass = class
	defer func() { interp.currentClass = prevClass }()

	for _, attr := range decl.Attributes {
		declared := TagForTypeToken(attr.TypeTok)
		for i, name := range attr.Names {
			if attr.IsStatic {
				var value Value
				has := false
				if attr.Initializers[i] != nil {
					v, err := interp.evaluate(attr.Initializers[i])
					if err != nil {
						return err
					}
					value = v
					has = true
				}
				if err := class.StaticFields.Define(name, declared, attr.Visibility, true, attr.IsFinal, value, has); err != nil {
					return err
				}
				continue
			}
			class.Fields[name.Lexeme] = fieldInfo{
				Declared:   declared,
				Visibility: attr.Visibility,
				IsFinal:    attr.IsFinal,
				Init:       attr.Initializers[i],
			}
		}
	}

	for _, m := range decl.Methods {
		fn := &UserFunction{Decl: m, Closure: interp.global, Owner: class}
		if m.IsStatic {
			if err := class.StaticFields.DefineCallable(m.Name, FunctionValue(fn)); err != nil {
				return err
			}
			continue
		}
		class.Methods[m.Name.Lexeme] = fn
	}

	if decl.Constructor != nil {
		class.Constructor = &UserFunction{Decl: decl.Constructor, Closure: interp.global, Owner: class}
	}

	return interp.current.DefineCallable(decl.Name, ClassValue(class))
}
