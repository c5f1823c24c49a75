package odbcbatch

import (
	"go.uber.org/zap"
)

// maxIntegerDecimalPrecision is the largest DECIMAL/NUMERIC precision that
// still fits into a 64-bit integer when the scale is zero.
const maxIntegerDecimalPrecision = 18

// Description is the immutable layout of one column or parameter. It is a
// closed set of variants selected by Type; MaxLength only applies to strings.
type Description struct {
	Name      string
	Type      Type
	MaxLength int
	Nullable  bool
}

// BooleanDescription describes a boolean column.
func BooleanDescription(name string, nullable bool) Description {
	return Description{Name: name, Type: TypeBoolean, Nullable: nullable}
}

// IntegerDescription describes a 64-bit integer column.
func IntegerDescription(name string, nullable bool) Description {
	return Description{Name: name, Type: TypeInteger, Nullable: nullable}
}

// FloatingPointDescription describes a double precision column.
func FloatingPointDescription(name string, nullable bool) Description {
	return Description{Name: name, Type: TypeFloatingPoint, Nullable: nullable}
}

// StringDescription describes a string column of at most maxLength bytes.
func StringDescription(name string, maxLength int, nullable bool) Description {
	return Description{Name: name, Type: TypeString, MaxLength: maxLength, Nullable: nullable}
}

// DateDescription describes a date column.
func DateDescription(name string, nullable bool) Description {
	return Description{Name: name, Type: TypeDate, Nullable: nullable}
}

// TimestampDescription describes a timestamp column.
func TimestampDescription(name string, nullable bool) Description {
	return Description{Name: name, Type: TypeTimestamp, Nullable: nullable}
}

// ElementSize returns the number of buffer bytes one value occupies.
func (d Description) ElementSize() int {
	switch d.Type {
	case TypeBoolean:
		return 1
	case TypeInteger, TypeFloatingPoint:
		return 8
	case TypeString:
		return d.MaxLength + 1
	case TypeDate:
		return dateStructSize
	case TypeTimestamp:
		return timestampStructSize
	default:
		return 0
	}
}

// CType returns the native C type the buffer is bound as.
func (d Description) CType() CType {
	switch d.Type {
	case TypeBoolean:
		return CTypeBit
	case TypeInteger:
		return CTypeSBigInt
	case TypeFloatingPoint:
		return CTypeDouble
	case TypeString:
		return CTypeChar
	case TypeDate:
		return CTypeDate
	default:
		return CTypeTimestamp
	}
}

// SQLType returns the SQL type used when binding the description as a parameter.
func (d Description) SQLType() SQLType {
	switch d.Type {
	case TypeBoolean:
		return SQLTypeBit
	case TypeInteger:
		return SQLTypeBigInt
	case TypeFloatingPoint:
		return SQLTypeDouble
	case TypeString:
		return SQLTypeVarchar
	case TypeDate:
		return SQLTypeDate
	default:
		return SQLTypeTimestamp
	}
}

// SetField writes f into e. It fails with ErrInvalidValue when f does not
// fit this layout: a different type, or a string longer than MaxLength.
func (d Description) SetField(e Element, f Field) error {
	if f.typ != d.Type {
		return newInvalidValueError("cannot store %s value in %s %q", f.typ, d.Type, d.Name)
	}
	if d.Type == TypeString && len(f.s) > d.MaxLength {
		return newInvalidValueError("string of %d bytes exceeds maximum length %d of %q", len(f.s), d.MaxLength, d.Name)
	}
	c, ok := codecFor(d.Type)
	if !ok {
		return newLogicError("unsupported type code %d", int(d.Type))
	}
	return c.write(e, f)
}

// MakeColumnDescription derives the layout for a result column.
func MakeColumnDescription(col ColumnDescriptor, opts Options) (Description, error) {
	d, err := describeSQLType(col.DataType, col.Size, col.DecimalDigits, opts)
	if err != nil {
		return Description{}, err
	}
	d.Name = col.Name
	d.Nullable = col.Nullable
	return d, nil
}

// MakeParameterDescription derives the layout for a statement parameter.
func MakeParameterDescription(index int, param ParameterDescriptor, opts Options) (Description, error) {
	d, err := describeSQLType(param.DataType, param.Size, param.DecimalDigits, opts)
	if err != nil {
		return Description{}, err
	}
	d.Name = "parameter"
	d.Nullable = param.Nullable
	logger.Debug("described parameter",
		zap.Int("index", index),
		zap.Stringer("type", d.Type),
		zap.Int("element_size", d.ElementSize()))
	return d, nil
}

func describeSQLType(sqlType SQLType, size, digits int, opts Options) (Description, error) {
	switch sqlType {
	case SQLTypeChar, SQLTypeVarchar, SQLTypeLongVarchar,
		SQLTypeWChar, SQLTypeWVarchar, SQLTypeWLongVarchar:
		return Description{Type: TypeString, MaxLength: stringLength(size, opts)}, nil
	case SQLTypeTinyInt, SQLTypeSmallInt, SQLTypeInteger, SQLTypeBigInt:
		return Description{Type: TypeInteger}, nil
	case SQLTypeReal, SQLTypeFloat, SQLTypeDouble:
		return Description{Type: TypeFloatingPoint}, nil
	case SQLTypeBit, SQLTypeBoolean:
		return Description{Type: TypeBoolean}, nil
	case SQLTypeDate:
		return Description{Type: TypeDate}, nil
	case SQLTypeTimestamp:
		return Description{Type: TypeTimestamp}, nil
	case SQLTypeNumeric, SQLTypeDecimal:
		if digits == 0 && size <= maxIntegerDecimalPrecision {
			return Description{Type: TypeInteger}, nil
		}
		// sign and decimal point
		return Description{Type: TypeString, MaxLength: stringLength(size+2, opts)}, nil
	default:
		return Description{}, newLogicError("unsupported SQL type %d", int(sqlType))
	}
}

// stringLength caps reported string sizes. Drivers report 0 or huge values
// for unbounded types such as VARCHAR(MAX).
func stringLength(size int, opts Options) int {
	limit := opts.VarcharMaxCharacterLimit
	if limit <= 0 {
		limit = DefaultVarcharMaxCharacterLimit
	}
	if size <= 0 || size > limit {
		return limit
	}
	return size
}

// MakeDescriptionForValue infers a layout that fits value. It is used when a
// parameter value does not fit the layout the driver described.
func MakeDescriptionForValue(value Field) Description {
	switch value.typ {
	case TypeString:
		n := len(value.s)
		if n < 1 {
			n = 1
		}
		return StringDescription("parameter", n, true)
	default:
		return Description{Name: "parameter", Type: value.typ, Nullable: true}
	}
}
