// Package interp implements the tree-walking evaluator: the runtime value
// representation, the environment chain, the callable/class/instance
// model, and the statement/expression evaluator itself. These pieces are
// kept in one package because they share a single representation (Value)
// that none of them can be meaningfully separated from, mirroring how the
// teacher project's own interp package keeps its runtime and evaluator
// together.
package interp

import (
	"fmt"

	"github.com/antogp24/javaclone/internal/types"
)

// Value is the tagged union described by the data model: every runtime
// value carries exactly one live field, selected by Tag. Using a single
// struct instead of an interface keeps arithmetic and widening allocation
// free, per the design notes' guidance to avoid allocating on the
// numeric hot path.
type Value struct {
	Tag types.Tag

	Bool   bool
	Byte   int8
	Char   uint16
	Int    int32
	Long   int64
	Float  float32
	Double float64
	Str    string

	Fn   Callable
	Inst *Instance
	Cls  *Class

	IsNull bool
}

// Void is the sentinel value yielded by statements and void-returning
// calls; it can never be stored in a slot (Environment.Define and Assign
// both reject it).
var Void = Value{Tag: types.Void}

// NullLiteral is the value produced by the `null` literal before it has
// been resolved against a destination's declared type.
var NullLiteral = Value{Tag: types.Null, IsNull: true}

func Bool(b bool) Value        { return Value{Tag: types.Boolean, Bool: b} }
func Byte(v int8) Value        { return Value{Tag: types.Byte, Byte: v} }
func Char(v uint16) Value      { return Value{Tag: types.Char, Char: v} }
func Int(v int32) Value        { return Value{Tag: types.Int, Int: v} }
func Long(v int64) Value       { return Value{Tag: types.Long, Long: v} }
func Float(v float32) Value    { return Value{Tag: types.Float, Float: v} }
func Double(v float64) Value   { return Value{Tag: types.Double, Double: v} }
func String(s string) Value    { return Value{Tag: types.String, Str: s} }
func NullString() Value        { return Value{Tag: types.String, IsNull: true} }
func FunctionValue(c Callable) Value { return Value{Tag: types.Function, Fn: c} }
func ClassValue(c *Class) Value      { return Value{Tag: types.Class, Cls: c} }
func InstanceValue(i *Instance) Value {
	if i == nil {
		return Value{Tag: types.Instance, IsNull: true}
	}
	return Value{Tag: types.Instance, Inst: i}
}
func NullInstance() Value { return Value{Tag: types.Instance, IsNull: true} }

// IsReference reports whether v's tag is one of the two reference types
// for which IsNull is meaningful.
func (v Value) IsReference() bool {
	return v.Tag == types.String || v.Tag == types.Instance
}

// Truthy requires v to be Boolean; callers enforce that before calling
// this (the spec treats a non-boolean condition as a runtime error, not
// an implicit conversion).
func (v Value) Truthy() bool { return v.Bool }

// AsDouble returns v's numeric payload widened to float64. v must carry a
// number tag.
func (v Value) AsDouble() float64 {
	switch v.Tag {
	case types.Byte:
		return float64(v.Byte)
	case types.Char:
		return float64(v.Char)
	case types.Int:
		return float64(v.Int)
	case types.Long:
		return float64(v.Long)
	case types.Float:
		return float64(v.Float)
	case types.Double:
		return v.Double
	default:
		return 0
	}
}

// AsLong returns v's numeric payload narrowed/widened to int64. v must
// carry a whole-number tag (or any number tag; fractional parts of
// Float/Double are truncated).
func (v Value) AsLong() int64 {
	switch v.Tag {
	case types.Byte:
		return int64(v.Byte)
	case types.Char:
		return int64(v.Char)
	case types.Int:
		return int64(v.Int)
	case types.Long:
		return v.Long
	case types.Float:
		return int64(v.Float)
	case types.Double:
		return int64(v.Double)
	default:
		return 0
	}
}

// Print renders v using the per-tag format from the external interfaces
// section: the same format `sout`/`soutln` and the REPL use.
func (v Value) Print() string {
	if v.IsReference() && v.IsNull {
		return "null"
	}
	switch v.Tag {
	case types.Null:
		return "null"
	case types.Boolean:
		if v.Bool {
			return "true"
		}
		return "false"
	case types.Byte:
		return fmt.Sprintf("0x%x", v.Byte)
	case types.Char:
		return fmt.Sprintf("'%c'", rune(v.Char))
	case types.Int:
		return fmt.Sprintf("%d", v.Int)
	case types.Long:
		return fmt.Sprintf("%d", v.Long)
	case types.Float:
		return fmt.Sprintf("%ff", v.Float)
	case types.Double:
		return fmt.Sprintf("%f", v.Double)
	case types.String:
		return v.Str
	case types.Function:
		if v.Fn == nil {
			return "<fn ?>"
		}
		return v.Fn.String()
	case types.Class:
		if v.Cls == nil {
			return "<class ?>"
		}
		return fmt.Sprintf("<class %s>", v.Cls.Name)
	case types.Instance:
		if v.Inst == nil {
			return "null"
		}
		return v.Inst.String()
	default:
		return "null"
	}
}
