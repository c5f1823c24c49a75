package odbcbatch

// FieldResultSet translates whole batches into typed fields.
type FieldResultSet struct {
	base        ResultSet
	translators []FieldTranslator
}

// NewFieldResultSet wraps base. It fails with ErrLogic if a column type has
// no translator.
func NewFieldResultSet(base ResultSet) (*FieldResultSet, error) {
	translators, err := makeTranslators(base.ColumnInfo())
	if err != nil {
		return nil, err
	}
	return &FieldResultSet{base: base, translators: translators}, nil
}

// ColumnInfo returns the column metadata of the underlying result set.
func (rs *FieldResultSet) ColumnInfo() []ColumnInfo {
	return rs.base.ColumnInfo()
}

// FetchNextBatch fetches the next batch and returns its rows. An empty
// result signals the end of the data.
func (rs *FieldResultSet) FetchNextBatch() ([][]NullableField, error) {
	n, err := rs.base.FetchNextBatch()
	if err != nil || n == 0 {
		return nil, err
	}
	buffers := rs.base.Buffers()
	rows := make([][]NullableField, n)
	for r := range rows {
		row := make([]NullableField, len(rs.translators))
		for c, t := range rs.translators {
			row[c] = t.MakeField(buffers[c].Element(r))
		}
		rows[r] = row
	}
	return rows, nil
}

// Close closes the underlying result set.
func (rs *FieldResultSet) Close() error {
	return rs.base.Close()
}
