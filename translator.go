package odbcbatch

import (
	"bytes"
	"encoding/binary"
	"math"
)

// codec converts between one native buffer element and a Field of a single type.
type codec struct {
	read  func(e Element) Field
	write func(e Element, f Field) error
}

// codecs is the dispatch table shared by descriptions and translators.
var codecs = [...]codec{
	TypeBoolean: {
		read: func(e Element) Field {
			return BooleanField(e.Data[0] != 0)
		},
		write: func(e Element, f Field) error {
			if f.b {
				e.Data[0] = 1
			} else {
				e.Data[0] = 0
			}
			*e.Indicator = 1
			return nil
		},
	},
	TypeInteger: {
		read: func(e Element) Field {
			return IntegerField(int64(binary.NativeEndian.Uint64(e.Data)))
		},
		write: func(e Element, f Field) error {
			binary.NativeEndian.PutUint64(e.Data, uint64(f.i))
			*e.Indicator = 8
			return nil
		},
	},
	TypeFloatingPoint: {
		read: func(e Element) Field {
			return FloatField(math.Float64frombits(binary.NativeEndian.Uint64(e.Data)))
		},
		write: func(e Element, f Field) error {
			binary.NativeEndian.PutUint64(e.Data, math.Float64bits(f.f))
			*e.Indicator = 8
			return nil
		},
	},
	TypeString: {
		read:  readString,
		write: writeString,
	},
	TypeDate: {
		read: func(e Element) Field {
			return Field{typ: TypeDate, t: dateFromStruct(e.Data)}
		},
		write: func(e Element, f Field) error {
			putDate(e.Data, f.t)
			*e.Indicator = dateStructSize
			return nil
		},
	},
	TypeTimestamp: {
		read: func(e Element) Field {
			return Field{typ: TypeTimestamp, t: timestampFromStruct(e.Data)}
		},
		write: func(e Element, f Field) error {
			putTimestamp(e.Data, f.t)
			*e.Indicator = timestampStructSize
			return nil
		},
	},
}

func codecFor(t Type) (codec, bool) {
	if t < 0 || int(t) >= len(codecs) {
		return codec{}, false
	}
	return codecs[t], true
}

// readString reads a NUL terminated string. A non-negative indicator is the
// byte length; drivers report the untruncated length, so it is clipped to
// the element. Other negative indicators (SQL_NO_TOTAL) fall back to the
// terminator.
func readString(e Element) Field {
	limit := len(e.Data) - 1
	n := int(*e.Indicator)
	if n < 0 {
		n = bytes.IndexByte(e.Data[:limit], 0)
		if n < 0 {
			n = limit
		}
	} else if n > limit {
		n = limit
	}
	return StringField(string(e.Data[:n]))
}

func writeString(e Element, f Field) error {
	limit := len(e.Data) - 1
	if len(f.s) > limit {
		return newInvalidValueError("string of %d bytes exceeds maximum length %d", len(f.s), limit)
	}
	n := copy(e.Data, f.s)
	e.Data[n] = 0
	*e.Indicator = int64(n)
	return nil
}

// FieldTranslator converts buffer elements of one type into fields and back.
type FieldTranslator interface {
	// MakeField reads an element; a null indicator yields an absent field
	// regardless of the element's bytes.
	MakeField(e Element) NullableField
	// SetField writes value into an element, or the null sentinel when the
	// value is absent.
	SetField(e Element, value NullableField) error
}

type fieldTranslator struct {
	typ   Type
	codec codec
}

// MakeFieldTranslator returns the translator for a type code. It fails with
// ErrLogic for type codes the client cannot represent.
func MakeFieldTranslator(t Type) (FieldTranslator, error) {
	c, ok := codecFor(t)
	if !ok {
		return nil, newLogicError("unsupported type code %d", int(t))
	}
	return &fieldTranslator{typ: t, codec: c}, nil
}

func (ft *fieldTranslator) MakeField(e Element) NullableField {
	if e.IsNull() {
		return Null()
	}
	return Some(ft.codec.read(e))
}

func (ft *fieldTranslator) SetField(e Element, value NullableField) error {
	if !value.Valid {
		e.SetNull()
		return nil
	}
	if value.Field.typ != ft.typ {
		return newInvalidValueError("cannot store %s value in %s element", value.Field.typ, ft.typ)
	}
	return ft.codec.write(e, value.Field)
}
