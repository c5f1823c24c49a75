package odbcbatch

import (
	"database/sql"
	"database/sql/driver"
	"io"
	"reflect"

	"go.uber.org/atomic"
)

// DriverRows adapts a result set to database/sql/driver.Rows.
type DriverRows struct {
	rs      *RowBasedResultSet
	columns []string
	infos   []ColumnInfo
	closed  *atomic.Bool
}

var (
	_ driver.Rows                           = (*DriverRows)(nil)
	_ driver.RowsColumnTypeScanType         = (*DriverRows)(nil)
	_ driver.RowsColumnTypeNullable         = (*DriverRows)(nil)
	_ driver.RowsColumnTypeDatabaseTypeName = (*DriverRows)(nil)
)

// NewDriverRows wraps a result set. Closing the rows closes the result set.
func NewDriverRows(base ResultSet) (*DriverRows, error) {
	rs, err := NewRowBasedResultSet(base)
	if err != nil {
		return nil, err
	}
	infos := rs.ColumnInfo()
	columns := make([]string, len(infos))
	for i, info := range infos {
		columns[i] = info.Name
	}
	return &DriverRows{rs: rs, columns: columns, infos: infos, closed: atomic.NewBool(false)}, nil
}

// Columns returns the column names.
func (r *DriverRows) Columns() []string {
	return r.columns
}

// Close closes the rows and the underlying result set.
func (r *DriverRows) Close() error {
	if !r.closed.CAS(false, true) {
		return nil
	}
	return r.rs.Close()
}

// Next moves to the next row. It returns io.EOF at the end of the data.
func (r *DriverRows) Next(dest []driver.Value) error {
	if r.closed.Load() {
		return io.EOF
	}
	row, err := r.rs.FetchRow()
	if err != nil {
		return err
	}
	if len(row) == 0 {
		return io.EOF
	}
	for i := 0; i < len(row) && i < len(dest); i++ {
		dest[i] = row[i].Value()
	}
	return nil
}

// ColumnTypeScanType returns the Go type values of column index are scanned as.
// Nullable columns report the matching sql.Null type.
func (r *DriverRows) ColumnTypeScanType(index int) reflect.Type {
	if index < 0 || index >= len(r.infos) {
		return nil
	}
	info := r.infos[index]
	if info.SupportsNull {
		if t, ok := nullScanTypes[info.Type]; ok {
			return t
		}
	}
	return info.Type.ScanType()
}

var nullScanTypes = map[Type]reflect.Type{
	TypeBoolean:       reflect.TypeOf(sql.NullBool{}),
	TypeInteger:       reflect.TypeOf(sql.NullInt64{}),
	TypeFloatingPoint: reflect.TypeOf(sql.NullFloat64{}),
	TypeString:        reflect.TypeOf(sql.NullString{}),
	TypeDate:          reflect.TypeOf(sql.NullTime{}),
	TypeTimestamp:     reflect.TypeOf(sql.NullTime{}),
}

// ColumnTypeNullable reports whether column index may contain NULL.
func (r *DriverRows) ColumnTypeNullable(index int) (nullable, ok bool) {
	if index < 0 || index >= len(r.infos) {
		return false, false
	}
	return r.infos[index].SupportsNull, true
}

// ColumnTypeDatabaseTypeName returns the semantic type name of column index.
func (r *DriverRows) ColumnTypeDatabaseTypeName(index int) string {
	if index < 0 || index >= len(r.infos) {
		return ""
	}
	switch r.infos[index].Type {
	case TypeBoolean:
		return "BOOLEAN"
	case TypeInteger:
		return "BIGINT"
	case TypeFloatingPoint:
		return "DOUBLE"
	case TypeString:
		return "VARCHAR"
	case TypeDate:
		return "DATE"
	case TypeTimestamp:
		return "TIMESTAMP"
	default:
		return ""
	}
}
