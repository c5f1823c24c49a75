package odbcbatch

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var mixedColumns = []ColumnDescriptor{
	{Name: "id", DataType: SQLTypeInteger},
	{Name: "name", DataType: SQLTypeVarchar, Size: 10, Nullable: true},
	{Name: "score", DataType: SQLTypeDouble, Nullable: true},
	{Name: "active", DataType: SQLTypeBit},
	{Name: "born", DataType: SQLTypeDate, Nullable: true},
	{Name: "seen", DataType: SQLTypeTimestamp, Nullable: true},
}

func mixedRows() [][]NullableField {
	born := time.Date(1990, 4, 1, 0, 0, 0, 0, time.UTC)
	seen := time.Date(2024, 6, 1, 12, 30, 45, 250000000, time.UTC)
	return [][]NullableField{
		{Some(IntegerField(1)), Some(StringField("ada")), Some(FloatField(9.5)), Some(BooleanField(true)), Some(DateField(born)), Some(TimestampField(seen))},
		{Some(IntegerField(2)), Null(), Null(), Some(BooleanField(false)), Null(), Null()},
		{Some(IntegerField(3)), Some(StringField("0123456789")), Some(FloatField(-1)), Some(BooleanField(true)), Some(DateField(born)), Some(TimestampField(seen))},
	}
}

// fieldComparer compares nullable fields by value.
var fieldComparer = cmp.Comparer(func(a, b NullableField) bool { return a.Equal(b) })

func TestRowBasedResultSet(t *testing.T) {
	for _, async := range []bool{false, true} {
		stmt := newStubStatement(mixedColumns, mixedRows())
		opts := NewOptions(WithReadBufferSize(Rows(2)), WithAsyncIO(async))

		var base ResultSet
		var err error
		if async {
			base, err = NewDoubleBufferedResultSet(stmt, opts.ReadBufferSize, opts)
		} else {
			base, err = NewBoundResultSet(stmt, opts.ReadBufferSize, opts)
		}
		require.NoError(t, err)

		rs, err := NewRowBasedResultSet(base)
		require.NoError(t, err)
		assert.Len(t, rs.ColumnInfo(), len(mixedColumns))

		var got [][]NullableField
		for {
			row, err := rs.FetchRow()
			require.NoError(t, err)
			if len(row) == 0 {
				break
			}
			got = append(got, row)
		}
		if diff := cmp.Diff(mixedRows(), got, fieldComparer); diff != "" {
			t.Errorf("async=%v rows mismatch (-want +got):\n%s", async, diff)
		}

		// the end of data is sticky
		row, err := rs.FetchRow()
		require.NoError(t, err)
		assert.Empty(t, row)
		require.NoError(t, rs.Close())
	}
}

func TestRowBasedResultSetScenario(t *testing.T) {
	columns := []ColumnDescriptor{
		{Name: "id", DataType: SQLTypeInteger},
		{Name: "name", DataType: SQLTypeVarchar, Size: 10},
	}
	data := [][]NullableField{
		{Some(IntegerField(1)), Some(StringField("ab"))},
		{Some(IntegerField(2)), Some(StringField("cdefghij"))},
		{Some(IntegerField(3)), Some(StringField("xy"))},
	}

	batches, err := NewBoundResultSet(newStubStatement(columns, data), Rows(2), DefaultOptions())
	require.NoError(t, err)
	var sizes []int
	for {
		n, err := batches.FetchNextBatch()
		require.NoError(t, err)
		sizes = append(sizes, n)
		if n == 0 {
			break
		}
	}
	assert.Equal(t, []int{2, 1, 0}, sizes)

	stmt := newStubStatement(columns, data)
	base, err := NewBoundResultSet(stmt, Rows(2), DefaultOptions())
	require.NoError(t, err)
	rs, err := NewRowBasedResultSet(base)
	require.NoError(t, err)
	defer rs.Close()

	for _, want := range data {
		row, err := rs.FetchRow()
		require.NoError(t, err)
		if diff := cmp.Diff(want, row, fieldComparer); diff != "" {
			t.Errorf("row mismatch (-want +got):\n%s", diff)
		}
	}
	row, err := rs.FetchRow()
	require.NoError(t, err)
	assert.Empty(t, row)
	assert.Equal(t, 3, stmt.fetchCount())
}

func TestRowBasedResultSetFetchError(t *testing.T) {
	stmt := newStubStatement([]ColumnDescriptor{integerColumn("a")}, integerRows(3))
	stmt.fetchErr = NewDriverError("HY000", "general error")
	base, err := NewBoundResultSet(stmt, Rows(2), DefaultOptions())
	require.NoError(t, err)
	rs, err := NewRowBasedResultSet(base)
	require.NoError(t, err)

	_, err = rs.FetchRow()
	assert.True(t, IsError(err, ErrDriver))
}

func TestFieldResultSet(t *testing.T) {
	stmt := newStubStatement(mixedColumns, mixedRows())
	base, err := NewBoundResultSet(stmt, Rows(2), DefaultOptions())
	require.NoError(t, err)
	rs, err := NewFieldResultSet(base)
	require.NoError(t, err)
	defer rs.Close()
	assert.Equal(t, "name", rs.ColumnInfo()[1].Name)

	var got [][]NullableField
	for {
		batch, err := rs.FetchNextBatch()
		require.NoError(t, err)
		if len(batch) == 0 {
			break
		}
		assert.LessOrEqual(t, len(batch), 2)
		got = append(got, batch...)
	}
	if diff := cmp.Diff(mixedRows(), got, fieldComparer); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
}

type unsupportedResultSet struct{ ResultSet }

func (unsupportedResultSet) ColumnInfo() []ColumnInfo {
	return []ColumnInfo{{Name: "x", Type: Type(17)}}
}

func TestResultSetWrappersRejectUnknownTypes(t *testing.T) {
	_, err := NewRowBasedResultSet(unsupportedResultSet{})
	assert.True(t, IsError(err, ErrLogic))
	_, err = NewFieldResultSet(unsupportedResultSet{})
	assert.True(t, IsError(err, ErrLogic))
}
