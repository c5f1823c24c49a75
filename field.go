package odbcbatch

import (
	"fmt"
	"reflect"
	"time"
)

// Type is the semantic type code of a column, parameter or field.
type Type int

const (
	TypeBoolean Type = iota
	TypeInteger
	TypeFloatingPoint
	TypeString
	TypeDate
	TypeTimestamp
)

func (t Type) String() string {
	switch t {
	case TypeBoolean:
		return "boolean"
	case TypeInteger:
		return "integer"
	case TypeFloatingPoint:
		return "floating_point"
	case TypeString:
		return "string"
	case TypeDate:
		return "date"
	case TypeTimestamp:
		return "timestamp"
	default:
		return fmt.Sprintf("type(%d)", int(t))
	}
}

// ScanType returns the Go type values of this type are delivered as.
func (t Type) ScanType() reflect.Type {
	switch t {
	case TypeBoolean:
		return reflect.TypeOf(false)
	case TypeInteger:
		return reflect.TypeOf(int64(0))
	case TypeFloatingPoint:
		return reflect.TypeOf(float64(0))
	case TypeString:
		return reflect.TypeOf("")
	case TypeDate, TypeTimestamp:
		return reflect.TypeOf(time.Time{})
	default:
		return reflect.TypeOf((*interface{})(nil)).Elem()
	}
}

// Field is a single typed scalar value. Only the member matching Type is
// meaningful. Dates and timestamps are stored as UTC time.Time values.
type Field struct {
	typ Type
	i   int64
	f   float64
	b   bool
	s   string
	t   time.Time
}

// IntegerField returns a 64-bit integer field.
func IntegerField(v int64) Field { return Field{typ: TypeInteger, i: v} }

// FloatField returns a double precision field.
func FloatField(v float64) Field { return Field{typ: TypeFloatingPoint, f: v} }

// BooleanField returns a boolean field.
func BooleanField(v bool) Field { return Field{typ: TypeBoolean, b: v} }

// StringField returns a string field.
func StringField(v string) Field { return Field{typ: TypeString, s: v} }

// DateField returns a date field. The clock part of v is dropped.
func DateField(v time.Time) Field {
	y, m, d := v.Date()
	return Field{typ: TypeDate, t: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// TimestampField returns a timestamp field with microsecond precision.
// Sub-microsecond digits of v are truncated.
func TimestampField(v time.Time) Field {
	v = v.UTC()
	return Field{typ: TypeTimestamp, t: v.Truncate(time.Microsecond)}
}

// Type returns the field's type code.
func (f Field) Type() Type { return f.typ }

// Integer returns the value of an integer field.
func (f Field) Integer() int64 { return f.i }

// Float returns the value of a floating point field.
func (f Field) Float() float64 { return f.f }

// Boolean returns the value of a boolean field.
func (f Field) Boolean() bool { return f.b }

// String returns the value of a string field.
func (f Field) String() string { return f.s }

// Time returns the value of a date or timestamp field.
func (f Field) Time() time.Time { return f.t }

// Value returns the field as a plain Go value.
func (f Field) Value() interface{} {
	switch f.typ {
	case TypeBoolean:
		return f.b
	case TypeInteger:
		return f.i
	case TypeFloatingPoint:
		return f.f
	case TypeString:
		return f.s
	case TypeDate, TypeTimestamp:
		return f.t
	default:
		return nil
	}
}

// Equal reports whether two fields have the same type and value.
func (f Field) Equal(other Field) bool {
	if f.typ != other.typ {
		return false
	}
	switch f.typ {
	case TypeBoolean:
		return f.b == other.b
	case TypeInteger:
		return f.i == other.i
	case TypeFloatingPoint:
		return f.f == other.f
	case TypeString:
		return f.s == other.s
	case TypeDate, TypeTimestamp:
		return f.t.Equal(other.t)
	default:
		return false
	}
}

// NullableField is a Field or the absence of a value.
type NullableField struct {
	Field Field
	Valid bool
}

// Null returns an absent field.
func Null() NullableField { return NullableField{} }

// Some wraps a present field.
func Some(f Field) NullableField { return NullableField{Field: f, Valid: true} }

// Value returns the plain Go value, or nil for an absent field.
func (n NullableField) Value() interface{} {
	if !n.Valid {
		return nil
	}
	return n.Field.Value()
}

// Equal reports whether both fields are absent or both hold equal values.
func (n NullableField) Equal(other NullableField) bool {
	if n.Valid != other.Valid {
		return false
	}
	return !n.Valid || n.Field.Equal(other.Field)
}

// FieldFromValue converts a Go value into a nullable field.
func FieldFromValue(v interface{}) (NullableField, error) {
	switch val := v.(type) {
	case nil:
		return Null(), nil
	case NullableField:
		return val, nil
	case Field:
		return Some(val), nil
	case bool:
		return Some(BooleanField(val)), nil
	case int:
		return Some(IntegerField(int64(val))), nil
	case int8:
		return Some(IntegerField(int64(val))), nil
	case int16:
		return Some(IntegerField(int64(val))), nil
	case int32:
		return Some(IntegerField(int64(val))), nil
	case int64:
		return Some(IntegerField(val)), nil
	case uint8:
		return Some(IntegerField(int64(val))), nil
	case uint16:
		return Some(IntegerField(int64(val))), nil
	case uint32:
		return Some(IntegerField(int64(val))), nil
	case float32:
		return Some(FloatField(float64(val))), nil
	case float64:
		return Some(FloatField(val)), nil
	case string:
		return Some(StringField(val)), nil
	case []byte:
		return Some(StringField(string(val))), nil
	case time.Time:
		return Some(TimestampField(val)), nil
	default:
		return Null(), newInvalidValueError("unsupported value type %T", v)
	}
}
