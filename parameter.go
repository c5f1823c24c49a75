package odbcbatch

import (
	"go.uber.org/zap"
)

// Parameter owns the buffer holding a batch of values for one statement
// parameter. Its layout is fixed until Rebind replaces it wholesale.
type Parameter struct {
	stmt        Statement
	index       int
	capacity    int
	description Description
	buffer      *Buffer
}

// NewParameter allocates a buffer for batchCapacity values of the parameter
// at the 1-based index and binds it as an input parameter.
func NewParameter(stmt Statement, index, batchCapacity int, description Description) (*Parameter, error) {
	p := &Parameter{
		stmt:     stmt,
		index:    index,
		capacity: batchCapacity,
	}
	if err := p.Rebind(description); err != nil {
		return nil, err
	}
	return p, nil
}

// Rebind replaces the parameter's layout with description, allocates a new
// buffer for it and binds that buffer. Values staged in the old buffer are
// discarded. On failure the parameter keeps its previous layout.
func (p *Parameter) Rebind(description Description) error {
	buffer := NewBuffer(description.ElementSize(), p.capacity)
	err := p.stmt.BindInputParameter(p.index, description.CType(), description.SQLType(), buffer)
	if err != nil {
		return driverCall(err, "bind parameter %d", p.index)
	}
	if p.buffer != nil {
		logger.Debug("rebound parameter",
			zap.Int("index", p.index),
			zap.Stringer("old_type", p.description.Type),
			zap.Int("old_element_size", p.description.ElementSize()),
			zap.Stringer("new_type", description.Type),
			zap.Int("new_element_size", description.ElementSize()))
	}
	p.description = description
	p.buffer = buffer
	return nil
}

// Set stores value in the given row. It fails with ErrInvalidValue when the
// value does not fit the parameter's layout.
func (p *Parameter) Set(row int, value NullableField) error {
	element := p.buffer.Element(row)
	if !value.Valid {
		element.SetNull()
		return nil
	}
	return p.description.SetField(element, value.Field)
}

// CopyToFirstRow copies the raw element in row to row 0.
func (p *Parameter) CopyToFirstRow(row int) {
	p.buffer.Element(row).CopyTo(p.buffer.Element(0))
}

// Description returns the current layout.
func (p *Parameter) Description() Description {
	return p.description
}

// Buffer returns the current buffer.
func (p *Parameter) Buffer() *Buffer {
	return p.buffer
}
