package odbcbatch

import (
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Query runs a prepared statement. It stages parameter rows in batches and,
// after Execute, exposes the statement's result set.
//
// The statement is owned by the caller and must outlive the query; Close
// stops any background fetching before it closes the cursor.
type Query struct {
	stmt       Statement
	opts       Options
	parameters []*Parameter

	// currentParameterSet is the number of rows staged in the parameter buffers.
	currentParameterSet int
	rowCount            int64
	result              ResultSet
	closed              bool
}

// NewQuery describes the statement's parameters and binds a buffer of
// opts.ParameterSetsToBuffer rows to each of them.
func NewQuery(stmt Statement, opts Options) (*Query, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	count, err := stmt.NumberOfParameters()
	if err != nil {
		return nil, driverCall(err, "number of parameters")
	}

	q := &Query{
		stmt:       stmt,
		opts:       opts,
		parameters: make([]*Parameter, 0, count),
	}
	for i := 1; i <= count; i++ {
		desc, err := stmt.DescribeParameter(i)
		if err != nil {
			return nil, driverCall(err, "describe parameter %d", i)
		}
		d, err := MakeParameterDescription(i, desc, opts)
		if err != nil {
			return nil, err
		}
		p, err := NewParameter(stmt, i, opts.ParameterSetsToBuffer, d)
		if err != nil {
			return nil, err
		}
		q.parameters = append(q.parameters, p)
	}
	return q, nil
}

// AddParameterSet stages one row of parameter values. A full batch is sent
// to the driver first. It fails with ErrArgumentCountMismatch, without
// touching any buffer, when len(values) differs from the parameter count.
func (q *Query) AddParameterSet(values []NullableField) error {
	if q.closed {
		return NewError(ErrClosed, "query is closed")
	}
	if len(values) != len(q.parameters) {
		return errors.WithStack(NewError(ErrArgumentCountMismatch,
			fmt.Sprintf("invalid number of parameters (expected %d, got %d)", len(q.parameters), len(values))))
	}

	if q.currentParameterSet == q.opts.ParameterSetsToBuffer {
		if _, err := q.ExecuteBatch(); err != nil {
			return err
		}
	}

	for i, v := range values {
		if err := q.addParameter(i, v); err != nil {
			return err
		}
	}
	q.currentParameterSet++
	return nil
}

// AddParameterValues converts Go values with FieldFromValue and stages them
// as one row.
func (q *Query) AddParameterValues(values ...interface{}) error {
	fields := make([]NullableField, len(values))
	for i, v := range values {
		f, err := FieldFromValue(v)
		if err != nil {
			return errors.Wrapf(err, "parameter %d", i+1)
		}
		fields[i] = f
	}
	return q.AddParameterSet(fields)
}

// addParameter stores value for the 0-based parameter index in the current
// row. When the value does not fit the parameter's layout, the rows staged
// so far are sent, the parameters before index carry their values for the
// current row over to row 0, and the parameter is rebound with a layout
// that fits the value.
//
// Parameters after index get no such carry-over. They have not been written
// for the current row yet, so the plain low-to-high order never needs it.
func (q *Query) addParameter(index int, value NullableField) error {
	err := q.parameters[index].Set(q.currentParameterSet, value)
	if err == nil || !IsError(err, ErrInvalidValue) {
		return err
	}

	lastActiveRow, err := q.ExecuteBatch()
	if err != nil {
		return err
	}
	for i := 0; i < index; i++ {
		q.parameters[i].CopyToFirstRow(lastActiveRow)
	}

	description := MakeDescriptionForValue(value.Field)
	logger.Debug("value does not fit parameter layout",
		zap.Int("index", index+1),
		zap.Int("rows_flushed", lastActiveRow),
		zap.Stringer("new_type", description.Type),
		zap.Int("new_element_size", description.ElementSize()))
	if err := q.parameters[index].Rebind(description); err != nil {
		return err
	}
	parameterRebinds.Inc()
	return q.parameters[index].Set(q.currentParameterSet, value)
}

// ExecuteBatch sends the staged parameter rows and returns how many were
// sent. A statement without parameters is executed unconditionally.
func (q *Query) ExecuteBatch() (int, error) {
	if len(q.parameters) != 0 {
		if err := q.stmt.SetAttribute(AttrParamsetSize, q.currentParameterSet); err != nil {
			return 0, driverCall(err, "set parameter set size %d", q.currentParameterSet)
		}
	}

	sent := q.currentParameterSet
	if sent == 0 && len(q.parameters) != 0 {
		return 0, nil
	}

	if err := q.stmt.ExecutePrepared(); err != nil {
		return 0, driverCall(err, "execute")
	}
	if err := q.updateRowCount(); err != nil {
		return 0, err
	}
	q.currentParameterSet = 0
	parameterBatchesExecuted.Inc()
	parameterRowsSent.Add(float64(sent))
	return sent, nil
}

func (q *Query) updateRowCount() error {
	columns, err := q.stmt.NumberOfColumns()
	if err != nil {
		return driverCall(err, "number of result columns")
	}
	count, err := q.stmt.RowCount()
	if err != nil {
		return driverCall(err, "row count")
	}
	if columns != 0 {
		q.rowCount = count
	} else {
		q.rowCount += count
	}
	return nil
}

// Execute sends the remaining staged parameters and opens the result set if
// the statement produces one.
func (q *Query) Execute() error {
	if q.closed {
		return NewError(ErrClosed, "query is closed")
	}
	if q.result != nil {
		if err := q.closeResult(); err != nil {
			return err
		}
		if err := q.stmt.CloseCursor(); err != nil {
			return driverCall(err, "close cursor")
		}
	}
	if _, err := q.ExecuteBatch(); err != nil {
		return err
	}

	columns, err := q.stmt.NumberOfColumns()
	if err != nil {
		return driverCall(err, "number of result columns")
	}
	if columns == 0 {
		return nil
	}

	if q.opts.UseAsyncIO {
		q.result, err = NewDoubleBufferedResultSet(q.stmt, q.opts.ReadBufferSize, q.opts)
	} else {
		q.result, err = NewBoundResultSet(q.stmt, q.opts.ReadBufferSize, q.opts)
	}
	if err != nil {
		q.result = nil
		return err
	}
	return nil
}

// ResultSet returns the result set of the last Execute, or nil when the
// statement produced none.
func (q *Query) ResultSet() ResultSet {
	return q.result
}

// RowCount returns the driver reported row count: the rows of the result
// set, or the rows affected by all executed batches.
func (q *Query) RowCount() int64 {
	return q.rowCount
}

// Parameters returns the statement's parameters in index order.
func (q *Query) Parameters() []*Parameter {
	return q.parameters
}

func (q *Query) closeResult() error {
	if q.result == nil {
		return nil
	}
	err := q.result.Close()
	q.result = nil
	return err
}

// Close stops the result set, waiting for a background fetch in flight, and
// then closes the statement's cursor.
func (q *Query) Close() error {
	if q.closed {
		return nil
	}
	q.closed = true
	if err := q.closeResult(); err != nil {
		return err
	}
	return driverCall(q.stmt.CloseCursor(), "close cursor")
}
