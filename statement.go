package odbcbatch

// CType is the native C type tag a buffer is bound with (SQL_C_*).
type CType int16

// SQLType is the driver-side SQL type tag (SQL_*).
type SQLType int16

// Attribute identifies a statement attribute (SQL_ATTR_*).
type Attribute int32

// C type tags used for bound buffers
const (
	CTypeChar      CType = 1
	CTypeDouble    CType = 8
	CTypeDate      CType = 91
	CTypeTimestamp CType = 93
	CTypeBit       CType = -7
	CTypeSBigInt   CType = -25
)

// SQL type tags reported by drivers
const (
	SQLTypeUnknown      SQLType = 0
	SQLTypeChar         SQLType = 1
	SQLTypeNumeric      SQLType = 2
	SQLTypeDecimal      SQLType = 3
	SQLTypeInteger      SQLType = 4
	SQLTypeSmallInt     SQLType = 5
	SQLTypeFloat        SQLType = 6
	SQLTypeReal         SQLType = 7
	SQLTypeDouble       SQLType = 8
	SQLTypeVarchar      SQLType = 12
	SQLTypeBoolean      SQLType = 16
	SQLTypeDate         SQLType = 91
	SQLTypeTimestamp    SQLType = 93
	SQLTypeLongVarchar  SQLType = -1
	SQLTypeBigInt       SQLType = -5
	SQLTypeTinyInt      SQLType = -6
	SQLTypeBit          SQLType = -7
	SQLTypeWChar        SQLType = -8
	SQLTypeWVarchar     SQLType = -9
	SQLTypeWLongVarchar SQLType = -10
)

// Statement attributes set by the result sets and the query
const (
	AttrParamsetSize Attribute = 22
	AttrRowArraySize Attribute = 27
)

// ColumnDescriptor is the metadata a driver reports for one result column.
type ColumnDescriptor struct {
	Name          string
	DataType      SQLType
	Size          int
	DecimalDigits int
	Nullable      bool
}

// ParameterDescriptor is the metadata a driver reports for one statement parameter.
type ParameterDescriptor struct {
	DataType      SQLType
	Size          int
	DecimalDigits int
	Nullable      bool
}

//go:generate mockgen -destination=mock_statement_test.go -package=odbcbatch . Statement

// Statement is a prepared statement handle of the underlying driver.
//
// Column and parameter indices are 1-based. Every method may fail with an
// ErrDriver error. Buffers passed to the bind methods stay owned by the
// caller; the driver may keep referencing their memory until the next bind
// or CloseCursor call, and bindings may be invalidated by Fetch, which is
// why result sets rebind before every batch.
type Statement interface {
	NumberOfColumns() (int, error)
	NumberOfParameters() (int, error)
	DescribeColumn(index int) (ColumnDescriptor, error)
	DescribeParameter(index int) (ParameterDescriptor, error)

	BindColumn(index int, cType CType, buffer *Buffer) error
	BindInputParameter(index int, cType CType, sqlType SQLType, buffer *Buffer) error
	// BindRowsFetched registers the counter the driver writes the number of
	// rows delivered by each Fetch into.
	BindRowsFetched(counter *int64) error
	SetAttribute(attr Attribute, value int) error

	ExecutePrepared() error
	// Fetch fetches the next rowset into the bound column buffers. At the
	// end of the result it sets the rows-fetched counter to zero and
	// returns nil.
	Fetch() error
	RowCount() (int64, error)
	CloseCursor() error
}
