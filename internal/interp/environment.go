package interp

import (
	"github.com/antogp24/javaclone/internal/errors"
	"github.com/antogp24/javaclone/internal/types"
	"github.com/antogp24/javaclone/pkg/token"
)

// slot is a variable's storage cell: the data model's (value, visibility,
// is_static, is_final, is_uninitialized) tuple, plus the declared type the
// conversion policy narrows/widens against.
type slot struct {
	value       Value
	declared    types.Tag
	visibility  types.Visibility
	isStatic    bool
	isFinal     bool
	initialized bool
}

// Environment is a name→slot map with an optional parent, forming the
// chain described in section 4.3. Definition only ever touches the
// innermost frame; lookup and assignment walk the chain outward.
type Environment struct {
	values map[string]*slot
	parent *Environment
}

// NewEnvironment returns a root environment with no parent.
func NewEnvironment() *Environment {
	return &Environment{values: make(map[string]*slot)}
}

// NewChildEnvironment returns an environment whose lookups fall through to
// parent once exhausted locally. Every Block and function call acquires
// one of these and discards it on exit.
func NewChildEnvironment(parent *Environment) *Environment {
	return &Environment{values: make(map[string]*slot), parent: parent}
}

// Define installs a new variable in the innermost frame. It fails if the
// name already exists in this frame or declared is Void.
func (e *Environment) Define(name token.Token, declared types.Tag, visibility types.Visibility, isStatic, isFinal bool, initial Value, hasInitial bool) error {
	if _, exists := e.values[name.Lexeme]; exists {
		return errors.NewRuntimeError(name, "Variable '%s' is already defined in this scope.", name.Lexeme)
	}
	if declared == types.Void {
		return errors.NewRuntimeError(name, "Can't declare a variable of type void.")
	}
	s := &slot{declared: declared, visibility: visibility, isStatic: isStatic, isFinal: isFinal}
	if hasInitial {
		converted, err := ConvertForDeclaredType(name, declared, initial)
		if err != nil {
			return err
		}
		s.value = converted
		s.initialized = true
	}
	e.values[name.Lexeme] = s
	return nil
}

// DefineCallable installs name as a public, final, initialized slot
// holding a Function or Class value — the path used for top-level
// function and class declarations, which bypass the ordinary numeric
// conversion policy entirely.
func (e *Environment) DefineCallable(name token.Token, v Value) error {
	if _, exists := e.values[name.Lexeme]; exists {
		return errors.NewRuntimeError(name, "'%s' is already defined in this scope.", name.Lexeme)
	}
	e.values[name.Lexeme] = &slot{
		value:       v,
		declared:    v.Tag,
		visibility:  types.VisibilityPublic,
		isFinal:     true,
		initialized: true,
	}
	return nil
}

// DefineNative installs a built-in callable as a public, static, final,
// initialized slot in this frame, per section 4.3's define_native
// contract.
func (e *Environment) DefineNative(name string, fn Callable) {
	e.values[name] = &slot{
		value:       FunctionValue(fn),
		declared:    types.Function,
		visibility:  types.VisibilityPublic,
		isStatic:    true,
		isFinal:     true,
		initialized: true,
	}
}

func (e *Environment) find(name string) *slot {
	for env := e; env != nil; env = env.parent {
		if s, ok := env.values[name]; ok {
			return s
		}
	}
	return nil
}

// Get walks the chain for name, returning the first enclosing frame's
// value. It fails "uninitialized" for a declared-but-unset slot and
// "undefined" when name is nowhere in the chain.
func (e *Environment) Get(name token.Token) (Value, error) {
	s := e.find(name.Lexeme)
	if s == nil {
		return Value{}, errors.NewRuntimeError(name, "Undefined variable '%s'.", name.Lexeme)
	}
	if !s.initialized {
		return Value{}, errors.NewRuntimeError(name, "Variable '%s' is uninitialized.", name.Lexeme)
	}
	return s.value, nil
}

// Assign walks the chain for name and writes value into the first frame
// that declares it. A final slot may be written exactly once: the first
// successful Assign (or the declaration's own initializer) counts as that
// write.
func (e *Environment) Assign(name token.Token, value Value) (Value, error) {
	s := e.find(name.Lexeme)
	if s == nil {
		return Value{}, errors.NewRuntimeError(name, "Undefined variable '%s'.", name.Lexeme)
	}
	if s.isFinal && s.initialized {
		return Value{}, errors.NewRuntimeError(name, "Variable '%s' is final.", name.Lexeme)
	}
	if value.Tag == types.Void {
		return Value{}, errors.NewRuntimeError(name, "Can't assign void to a variable.")
	}
	converted, err := ConvertForDeclaredType(name, s.declared, value)
	if err != nil {
		return Value{}, err
	}
	s.value = converted
	s.initialized = true
	return converted, nil
}

// Increment reads name's current value, adds direction (+1 or -1) at the
// variable's numeric type, writes it back, and returns the new value —
// the shared implementation behind prefix and postfix ++/--.
func (e *Environment) Increment(name token.Token, direction int64) (Value, error) {
	s := e.find(name.Lexeme)
	if s == nil {
		return Value{}, errors.NewRuntimeError(name, "Undefined variable '%s'.", name.Lexeme)
	}
	if !s.initialized {
		return Value{}, errors.NewRuntimeError(name, "Variable '%s' is uninitialized.", name.Lexeme)
	}
	if !s.value.Tag.IsNumber() {
		return Value{}, errors.NewRuntimeError(name, "'++'/'--' only apply to numbers.")
	}
	if s.isFinal {
		return Value{}, errors.NewRuntimeError(name, "Variable '%s' is final.", name.Lexeme)
	}
	var updated Value
	if s.declared == types.Float || s.declared == types.Double {
		updated = ConvertNumber(Double(s.value.AsDouble()+float64(direction)), s.declared)
	} else {
		updated = ConvertNumber(Long(s.value.AsLong()+direction), s.declared)
	}
	s.value = updated
	return updated, nil
}
