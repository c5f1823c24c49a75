package odbcbatch

// RowBasedResultSet hands out a batch oriented result set one row at a time.
type RowBasedResultSet struct {
	base        ResultSet
	translators []FieldTranslator
	buffers     []*Buffer
	currentRow  int
	rowsInBatch int
}

// NewRowBasedResultSet wraps base. It fails with ErrLogic if a column type
// has no translator.
func NewRowBasedResultSet(base ResultSet) (*RowBasedResultSet, error) {
	translators, err := makeTranslators(base.ColumnInfo())
	if err != nil {
		return nil, err
	}
	return &RowBasedResultSet{
		base:        base,
		translators: translators,
	}, nil
}

func makeTranslators(infos []ColumnInfo) ([]FieldTranslator, error) {
	translators := make([]FieldTranslator, len(infos))
	for i, info := range infos {
		t, err := MakeFieldTranslator(info.Type)
		if err != nil {
			return nil, err
		}
		translators[i] = t
	}
	return translators, nil
}

// ColumnInfo returns the column metadata of the underlying result set.
func (rs *RowBasedResultSet) ColumnInfo() []ColumnInfo {
	return rs.base.ColumnInfo()
}

// FetchRow returns the next row. An empty row signals the end of the data.
func (rs *RowBasedResultSet) FetchRow() ([]NullableField, error) {
	if rs.currentRow == rs.rowsInBatch {
		rows, err := rs.base.FetchNextBatch()
		if err != nil {
			return nil, err
		}
		rs.currentRow = 0
		rs.rowsInBatch = rows
		// buffers are only valid for the batch just fetched
		rs.buffers = rs.base.Buffers()
	}
	if rs.rowsInBatch == 0 {
		return nil, nil
	}

	row := make([]NullableField, len(rs.translators))
	for i, t := range rs.translators {
		row[i] = t.MakeField(rs.buffers[i].Element(rs.currentRow))
	}
	rs.currentRow++
	return row, nil
}

// Close closes the underlying result set.
func (rs *RowBasedResultSet) Close() error {
	return rs.base.Close()
}
