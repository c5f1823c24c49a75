package odbcbatch

// ResultSet is a sequence of batches.
//
// FetchNextBatch returns the number of rows in the new batch, zero at the end
// of the result. Buffers returned by Buffers are only valid until the next
// FetchNextBatch call and have to be re-acquired after every fetch.
type ResultSet interface {
	ColumnInfo() []ColumnInfo
	FetchNextBatch() (int, error)
	Buffers() []*Buffer
	Close() error
}
