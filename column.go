package odbcbatch

// ColumnInfo is the static metadata of a result column.
type ColumnInfo struct {
	Name         string
	Type         Type
	SupportsNull bool
}

// Column owns the buffer one result column is fetched into.
type Column struct {
	stmt        Statement
	index       int
	description Description
	buffer      *Buffer
}

// NewColumn allocates a buffer for batchCapacity values of the column at the
// 1-based index. The buffer is not bound until Bind is called.
func NewColumn(stmt Statement, index, batchCapacity int, description Description) *Column {
	return &Column{
		stmt:        stmt,
		index:       index,
		description: description,
		buffer:      NewBuffer(description.ElementSize(), batchCapacity),
	}
}

// Bind registers the buffer with the driver. Drivers may drop bindings
// between fetches, so this runs before every batch.
func (c *Column) Bind() error {
	return driverCall(c.stmt.BindColumn(c.index, c.description.CType(), c.buffer),
		"bind column %d", c.index)
}

// Info returns the column's metadata.
func (c *Column) Info() ColumnInfo {
	return ColumnInfo{
		Name:         c.description.Name,
		Type:         c.description.Type,
		SupportsNull: c.description.Nullable,
	}
}

// Description returns the column's layout.
func (c *Column) Description() Description {
	return c.description
}

// Buffer returns the column's buffer.
func (c *Column) Buffer() *Buffer {
	return c.buffer
}
