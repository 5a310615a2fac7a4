package interp

import (
	"github.com/antogp24/javaclone/internal/errors"
	"github.com/antogp24/javaclone/internal/types"
	"github.com/antogp24/javaclone/pkg/token"
)

// ConvertNumber narrows or widens a number-tagged value to target, per the
// design notes' per-destination conversion table. target must itself be a
// number tag.
func ConvertNumber(v Value, target types.Tag) Value {
	switch target {
	case types.Byte:
		return Byte(int8(v.AsLong()))
	case types.Char:
		return Char(uint16(v.AsLong()))
	case types.Int:
		return Int(int32(v.AsLong()))
	case types.Long:
		return Long(v.AsLong())
	case types.Float:
		return Float(float32(v.AsDouble()))
	case types.Double:
		return Double(v.AsDouble())
	default:
		return v
	}
}

// ConvertForDeclaredType implements the environment's implicit conversion
// policy from section 4.3: exact match passes through; a number widens or
// narrows to a number-typed destination; a Null literal resolves to a
// nulled value of a reference-typed destination; an Instance passes
// through to a UserDefined destination; anything else is a diagnostic
// anchored at tok.
func ConvertForDeclaredType(tok token.Token, declared types.Tag, v Value) (Value, error) {
	if declared == v.Tag {
		return v, nil
	}
	if declared.IsNumber() && v.Tag.IsNumber() {
		return ConvertNumber(v, declared), nil
	}
	if v.Tag == types.Null {
		switch declared {
		case types.String:
			return NullString(), nil
		case types.UserDefined:
			return NullInstance(), nil
		default:
			return Value{}, errors.NewRuntimeError(tok, "Can't assign null to a variable of type '%s'.", declared)
		}
	}
	if declared == types.UserDefined && v.Tag == types.Instance {
		return v, nil
	}
	return Value{}, errors.NewRuntimeError(tok, "Can't implicitly convert a value of type '%s' to '%s'.", v.Tag, declared)
}

// TagForTypeToken maps a type-position token (a primitive keyword, String,
// ArrayList, or a registered class identifier) to the TypeTag used as a
// slot's declared type.
func TagForTypeToken(tok token.Token) types.Tag {
	switch tok.Type {
	case token.TYPE_VOID:
		return types.Void
	case token.TYPE_BOOLEAN:
		return types.Boolean
	case token.TYPE_BYTE:
		return types.Byte
	case token.TYPE_CHAR:
		return types.Char
	case token.TYPE_INT:
		return types.Int
	case token.TYPE_LONG:
		return types.Long
	case token.TYPE_FLOAT:
		return types.Float
	case token.TYPE_DOUBLE:
		return types.Double
	case token.TYPE_STRING:
		return types.String
	case token.TYPE_ARRAYLIST:
		return types.UserDefined
	default:
		return types.UserDefined
	}
}
