package odbcbatch

import (
	"go.uber.org/zap"
)

// BoundResultSet fetches batches straight into one set of column buffers.
type BoundResultSet struct {
	stmt         Statement
	columns      []*Column
	rowsToBuffer int
	// rowsFetched is written by the driver during Fetch.
	rowsFetched int64
	mode        string
	closed      bool
}

// NewBoundResultSet describes the statement's result columns, allocates a
// buffer of the requested size for each and binds them.
func NewBoundResultSet(stmt Statement, size BufferSize, opts Options) (*BoundResultSet, error) {
	return newBoundResultSet(stmt, size, opts, modeBound)
}

func newBoundResultSet(stmt Statement, size BufferSize, opts Options, mode string) (*BoundResultSet, error) {
	count, err := stmt.NumberOfColumns()
	if err != nil {
		return nil, driverCall(err, "number of result columns")
	}

	descriptions := make([]Description, 0, count)
	for i := 1; i <= count; i++ {
		col, err := stmt.DescribeColumn(i)
		if err != nil {
			return nil, driverCall(err, "describe column %d", i)
		}
		d, err := MakeColumnDescription(col, opts)
		if err != nil {
			return nil, err
		}
		descriptions = append(descriptions, d)
	}

	rs := &BoundResultSet{
		stmt:         stmt,
		rowsToBuffer: DetermineRowsToBuffer(size, descriptions),
		mode:         mode,
	}
	rs.columns = make([]*Column, len(descriptions))
	for i, d := range descriptions {
		rs.columns[i] = NewColumn(stmt, i+1, rs.rowsToBuffer, d)
	}

	if err := rs.Rebind(); err != nil {
		return nil, err
	}
	logger.Debug("bound result set",
		zap.Int("columns", len(rs.columns)),
		zap.Int("rows_to_buffer", rs.rowsToBuffer),
		zap.String("mode", mode))
	return rs, nil
}

// Rebind sets the row array size and binds all column buffers and the
// rows-fetched counter to the statement again.
func (rs *BoundResultSet) Rebind() error {
	if err := rs.stmt.SetAttribute(AttrRowArraySize, rs.rowsToBuffer); err != nil {
		return driverCall(err, "set row array size %d", rs.rowsToBuffer)
	}
	for _, c := range rs.columns {
		if err := c.Bind(); err != nil {
			return err
		}
	}
	return driverCall(rs.stmt.BindRowsFetched(&rs.rowsFetched), "bind rows fetched counter")
}

// FetchNextBatch fetches the next batch and returns its row count.
func (rs *BoundResultSet) FetchNextBatch() (int, error) {
	if rs.closed {
		return 0, NewError(ErrClosed, "result set is closed")
	}
	if err := rs.stmt.Fetch(); err != nil {
		return 0, driverCall(err, "fetch")
	}
	rows := int(rs.rowsFetched)
	if rows > 0 {
		batchesFetched.WithLabelValues(rs.mode).Inc()
		rowsFetched.WithLabelValues(rs.mode).Add(float64(rows))
	}
	return rows, nil
}

// ColumnInfo returns the metadata of all columns.
func (rs *BoundResultSet) ColumnInfo() []ColumnInfo {
	infos := make([]ColumnInfo, len(rs.columns))
	for i, c := range rs.columns {
		infos[i] = c.Info()
	}
	return infos
}

// Buffers returns the live column buffers.
func (rs *BoundResultSet) Buffers() []*Buffer {
	buffers := make([]*Buffer, len(rs.columns))
	for i, c := range rs.columns {
		buffers[i] = c.Buffer()
	}
	return buffers
}

// RowsToBuffer returns the batch capacity.
func (rs *BoundResultSet) RowsToBuffer() int {
	return rs.rowsToBuffer
}

// Close releases the result set. The statement is owned by the caller and
// stays open.
func (rs *BoundResultSet) Close() error {
	rs.closed = true
	return nil
}
