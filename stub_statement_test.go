package odbcbatch

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var typeForCType = map[CType]Type{
	CTypeBit:       TypeBoolean,
	CTypeSBigInt:   TypeInteger,
	CTypeDouble:    TypeFloatingPoint,
	CTypeChar:      TypeString,
	CTypeDate:      TypeDate,
	CTypeTimestamp: TypeTimestamp,
}

type boundBuffer struct {
	cType  CType
	buffer *Buffer
}

// stubStatement is an in-memory driver. Fetch copies rows of data into the
// bound column buffers; ExecutePrepared reads the bound parameter buffers
// back into received.
type stubStatement struct {
	mu sync.Mutex

	columns []ColumnDescriptor
	params  []ParameterDescriptor
	data    [][]NullableField

	fetchDelay time.Duration
	// fetchErr is returned by every fetch after the first failAfter ones.
	fetchErr  error
	failAfter int
	// fetchPanic makes every fetch panic.
	fetchPanic bool
	// rejectParamSize makes BindInputParameter fail for string buffers
	// wider than this many bytes when positive.
	rejectParamSize int

	rowArraySize int
	paramsetSize int
	rowsFetched  *int64
	boundColumns map[int]boundBuffer
	boundParams  map[int]boundBuffer
	cursor       int

	fetches       int
	executions    int
	cursorCloses  int
	paramBinds    int
	received      [][]NullableField
	executedSizes []int
	affected      int64
}

func newStubStatement(columns []ColumnDescriptor, data [][]NullableField) *stubStatement {
	return &stubStatement{
		columns:      columns,
		data:         data,
		boundColumns: make(map[int]boundBuffer),
		boundParams:  make(map[int]boundBuffer),
	}
}

func newStubParameterStatement(params ...ParameterDescriptor) *stubStatement {
	s := newStubStatement(nil, nil)
	s.params = params
	return s
}

func (s *stubStatement) NumberOfColumns() (int, error) {
	return len(s.columns), nil
}

func (s *stubStatement) NumberOfParameters() (int, error) {
	return len(s.params), nil
}

func (s *stubStatement) DescribeColumn(index int) (ColumnDescriptor, error) {
	if index < 1 || index > len(s.columns) {
		return ColumnDescriptor{}, NewDriverError("07009", fmt.Sprintf("invalid column index %d", index))
	}
	return s.columns[index-1], nil
}

func (s *stubStatement) DescribeParameter(index int) (ParameterDescriptor, error) {
	if index < 1 || index > len(s.params) {
		return ParameterDescriptor{}, NewDriverError("07009", fmt.Sprintf("invalid parameter index %d", index))
	}
	return s.params[index-1], nil
}

func (s *stubStatement) BindColumn(index int, cType CType, buffer *Buffer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.boundColumns[index] = boundBuffer{cType: cType, buffer: buffer}
	return nil
}

func (s *stubStatement) BindInputParameter(index int, cType CType, sqlType SQLType, buffer *Buffer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rejectParamSize > 0 && cType == CTypeChar && buffer.ElementSize() > s.rejectParamSize {
		return NewDriverError("HY104", "invalid precision value")
	}
	s.paramBinds++
	s.boundParams[index] = boundBuffer{cType: cType, buffer: buffer}
	return nil
}

func (s *stubStatement) BindRowsFetched(counter *int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rowsFetched = counter
	return nil
}

func (s *stubStatement) SetAttribute(attr Attribute, value int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch attr {
	case AttrRowArraySize:
		s.rowArraySize = value
	case AttrParamsetSize:
		s.paramsetSize = value
	default:
		return NewDriverError("HY092", fmt.Sprintf("invalid attribute %d", attr))
	}
	return nil
}

func (s *stubStatement) ExecutePrepared() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.executions++
	s.cursor = 0
	if len(s.params) == 0 {
		return nil
	}
	s.executedSizes = append(s.executedSizes, s.paramsetSize)
	for r := 0; r < s.paramsetSize; r++ {
		row := make([]NullableField, len(s.params))
		for p := range s.params {
			bound := s.boundParams[p+1]
			t, err := MakeFieldTranslator(typeForCType[bound.cType])
			if err != nil {
				return err
			}
			row[p] = t.MakeField(bound.buffer.Element(r))
		}
		s.received = append(s.received, row)
	}
	s.affected = int64(s.paramsetSize)
	return nil
}

func (s *stubStatement) Fetch() error {
	if s.fetchDelay > 0 {
		time.Sleep(s.fetchDelay)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fetches++
	if s.fetchPanic {
		panic("driver crashed")
	}
	if s.fetchErr != nil && s.fetches > s.failAfter {
		return s.fetchErr
	}

	n := 0
	for n < s.rowArraySize && s.cursor < len(s.data) {
		for c, value := range s.data[s.cursor] {
			bound := s.boundColumns[c+1]
			t, err := MakeFieldTranslator(typeForCType[bound.cType])
			if err != nil {
				return err
			}
			if err := t.SetField(bound.buffer.Element(n), value); err != nil {
				return err
			}
		}
		n++
		s.cursor++
	}
	*s.rowsFetched = int64(n)
	return nil
}

func (s *stubStatement) RowCount() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.columns) != 0 {
		return int64(len(s.data)), nil
	}
	return s.affected, nil
}

func (s *stubStatement) CloseCursor() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cursorCloses++
	s.cursor = 0
	return nil
}

func (s *stubStatement) fetchCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fetches
}

// integerRows returns n single column rows holding 1..n.
func integerRows(n int) [][]NullableField {
	rows := make([][]NullableField, n)
	for i := range rows {
		rows[i] = []NullableField{Some(IntegerField(int64(i + 1)))}
	}
	return rows
}

func integerColumn(name string) ColumnDescriptor {
	return ColumnDescriptor{Name: name, DataType: SQLTypeBigInt, Nullable: true}
}

// readIntegers translates the first n elements of an integer buffer.
func readIntegers(t *testing.T, buffer *Buffer, n int) []int64 {
	t.Helper()
	translator, err := MakeFieldTranslator(TypeInteger)
	require.NoError(t, err)
	values := make([]int64, n)
	for i := range values {
		f := translator.MakeField(buffer.Element(i))
		require.True(t, f.Valid)
		values[i] = f.Field.Integer()
	}
	return values
}
