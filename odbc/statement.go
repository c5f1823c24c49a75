package odbc

import (
	"runtime"
	"sync"
	"unsafe"

	"github.com/pkg/errors"

	"github.com/semihalev/go-odbcbatch"
)

// invalidCursorState is reported by SQLCloseCursor when no cursor is open.
const invalidCursorState = "24000"

var _ odbcbatch.Statement = (*Statement)(nil)

// pinSet keeps Go memory handed to the driver manager in place until it is
// unbound.
type pinSet struct {
	pinner runtime.Pinner
	seen   map[unsafe.Pointer]struct{}
}

func (p *pinSet) pin(ptrs ...unsafe.Pointer) {
	if p.seen == nil {
		p.seen = make(map[unsafe.Pointer]struct{})
	}
	for _, ptr := range ptrs {
		if _, ok := p.seen[ptr]; ok {
			continue
		}
		p.pinner.Pin(ptr)
		p.seen[ptr] = struct{}{}
	}
}

func (p *pinSet) release() {
	p.pinner.Unpin()
	p.seen = nil
}

// Statement is a prepared statement handle.
type Statement struct {
	mu     sync.Mutex
	handle uintptr

	columnPins    pinSet
	parameterPins map[int]*pinSet
	rowsFetched   *int64
	closed        bool
}

func newStatement(handle uintptr) *Statement {
	return &Statement{
		handle:        handle,
		parameterPins: make(map[int]*pinSet),
	}
}

func (s *Statement) check(r sqlReturn, call string) error {
	return diagnose(r, handleStmt, s.handle, call)
}

// NumberOfColumns returns the number of result columns.
func (s *Statement) NumberOfColumns() (int, error) {
	var count int16
	if err := s.check(sqlNumResultCols(s.handle, &count), "SQLNumResultCols"); err != nil {
		return 0, err
	}
	return int(count), nil
}

// NumberOfParameters returns the number of parameter markers.
func (s *Statement) NumberOfParameters() (int, error) {
	var count int16
	if err := s.check(sqlNumParams(s.handle, &count), "SQLNumParams"); err != nil {
		return 0, err
	}
	return int(count), nil
}

// DescribeColumn describes the 1-based result column index.
func (s *Statement) DescribeColumn(index int) (odbcbatch.ColumnDescriptor, error) {
	var out describeResult
	if err := s.check(sqlDescribeCol(s.handle, index, &out), "SQLDescribeCol"); err != nil {
		return odbcbatch.ColumnDescriptor{}, err
	}
	return odbcbatch.ColumnDescriptor{
		Name:          cString(out.name[:]),
		DataType:      odbcbatch.SQLType(out.dataType),
		Size:          int(out.size),
		DecimalDigits: int(out.digits),
		Nullable:      out.nullable == sqlNullable,
	}, nil
}

// DescribeParameter describes the 1-based parameter index.
func (s *Statement) DescribeParameter(index int) (odbcbatch.ParameterDescriptor, error) {
	var out describeResult
	if err := s.check(sqlDescribeParam(s.handle, index, &out), "SQLDescribeParam"); err != nil {
		return odbcbatch.ParameterDescriptor{}, err
	}
	return odbcbatch.ParameterDescriptor{
		DataType:      odbcbatch.SQLType(out.dataType),
		Size:          int(out.size),
		DecimalDigits: int(out.digits),
		Nullable:      out.nullable == sqlNullable,
	}, nil
}

// BindColumn binds buffer to the result column index. The buffer stays
// pinned until CloseCursor or Close.
func (s *Statement) BindColumn(index int, cType odbcbatch.CType, buffer *odbcbatch.Buffer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.columnPins.pin(buffer.DataPointer(), buffer.IndicatorPointer())
	return s.check(sqlBindCol(s.handle, index, int16(cType),
		buffer.DataPointer(), buffer.ElementSize(), buffer.IndicatorPointer()), "SQLBindCol")
}

// BindInputParameter binds buffer to the parameter index. The buffer
// previously bound to index is released once the new one is in place.
func (s *Statement) BindInputParameter(index int, cType odbcbatch.CType, sqlType odbcbatch.SQLType, buffer *odbcbatch.Buffer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	pins := &pinSet{}
	pins.pin(buffer.DataPointer(), buffer.IndicatorPointer())
	columnSize, digits := parameterSize(sqlType, buffer.ElementSize())
	err := s.check(sqlBindParameter(s.handle, index, int16(cType), int16(sqlType), columnSize, digits,
		buffer.DataPointer(), buffer.ElementSize(), buffer.IndicatorPointer()), "SQLBindParameter")
	if err != nil {
		pins.release()
		return err
	}
	if old, ok := s.parameterPins[index]; ok {
		old.release()
	}
	s.parameterPins[index] = pins
	return nil
}

// parameterSize returns the column size and decimal digits declared for a
// parameter of sqlType bound with elements of elementSize bytes.
func parameterSize(sqlType odbcbatch.SQLType, elementSize int) (columnSize, digits int) {
	switch sqlType {
	case odbcbatch.SQLTypeVarchar:
		if elementSize > 1 {
			return elementSize - 1, 0
		}
		return 1, 0
	case odbcbatch.SQLTypeTimestamp:
		return 26, 6
	case odbcbatch.SQLTypeDate:
		return 10, 0
	case odbcbatch.SQLTypeBigInt:
		return 19, 0
	case odbcbatch.SQLTypeDouble:
		return 15, 0
	case odbcbatch.SQLTypeBit:
		return 1, 0
	default:
		return 0, 0
	}
}

// BindRowsFetched registers counter as SQL_ATTR_ROWS_FETCHED_PTR.
func (s *Statement) BindRowsFetched(counter *int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.columnPins.pin(unsafe.Pointer(counter))
	s.rowsFetched = counter
	return s.check(sqlSetStmtAttr(s.handle, sqlAttrRowsFetched, uintptr(unsafe.Pointer(counter))), "SQLSetStmtAttr(ROWS_FETCHED_PTR)")
}

// SetAttribute sets an integer statement attribute.
func (s *Statement) SetAttribute(attr odbcbatch.Attribute, value int) error {
	return s.check(sqlSetStmtAttr(s.handle, int32(attr), uintptr(value)), "SQLSetStmtAttr")
}

// ExecutePrepared executes the prepared statement with the bound parameters.
func (s *Statement) ExecutePrepared() error {
	r := sqlExecute(s.handle)
	if r == sqlNoData {
		// searched UPDATE or DELETE that affected no rows
		return nil
	}
	return s.check(r, "SQLExecute")
}

// Fetch fetches the next rowset into the bound columns.
func (s *Statement) Fetch() error {
	r := sqlFetch(s.handle)
	if r == sqlNoData {
		if s.rowsFetched != nil {
			*s.rowsFetched = 0
		}
		return nil
	}
	return s.check(r, "SQLFetch")
}

// RowCount returns the rows affected by the last execution.
func (s *Statement) RowCount() (int64, error) {
	var count int64
	if err := s.check(sqlRowCount(s.handle, &count), "SQLRowCount"); err != nil {
		return 0, err
	}
	return count, nil
}

// CloseCursor closes an open cursor and unbinds the result columns. It
// succeeds when no cursor is open.
func (s *Statement) CloseCursor() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := s.check(sqlCloseCursor(s.handle), "SQLCloseCursor")
	if err != nil && !hasState(err, invalidCursorState) {
		return err
	}
	if err := s.check(sqlFreeStmt(s.handle, sqlUnbind), "SQLFreeStmt(UNBIND)"); err != nil {
		return err
	}
	s.rowsFetched = nil
	s.columnPins.release()
	return nil
}

// Close releases the statement handle and all buffers pinned for it.
func (s *Statement) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	err := s.check(sqlFreeHandle(handleStmt, s.handle), "SQLFreeHandle(STMT)")
	s.columnPins.release()
	for index, pins := range s.parameterPins {
		pins.release()
		delete(s.parameterPins, index)
	}
	return err
}

func hasState(err error, state string) bool {
	var driverErr *odbcbatch.Error
	return errors.As(err, &driverErr) && driverErr.State == state
}
