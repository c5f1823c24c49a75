package odbcbatch

import (
	"fmt"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type bufferUnit int

const (
	unitRows bufferUnit = iota
	unitMegabytes
)

// BufferSize is how large a result set batch should be: either a fixed
// number of rows or a memory budget in megabytes.
type BufferSize struct {
	unit  bufferUnit
	value int
}

// Rows returns a buffer size of n rows.
func Rows(n int) BufferSize {
	return BufferSize{unit: unitRows, value: n}
}

// Megabytes returns a buffer size of m megabytes.
func Megabytes(m int) BufferSize {
	return BufferSize{unit: unitMegabytes, value: m}
}

// IsRows reports whether the size is given in rows.
func (b BufferSize) IsRows() bool { return b.unit == unitRows }

// IsMegabytes reports whether the size is given in megabytes.
func (b BufferSize) IsMegabytes() bool { return b.unit == unitMegabytes }

// Value returns the number of rows or megabytes.
func (b BufferSize) Value() int { return b.value }

func (b BufferSize) String() string {
	if b.unit == unitMegabytes {
		return fmt.Sprintf("megabytes(%d)", b.value)
	}
	return fmt.Sprintf("rows(%d)", b.value)
}

type bufferSizeYAML struct {
	Rows      *int `yaml:"rows,omitempty"`
	Megabytes *int `yaml:"megabytes,omitempty"`
}

// UnmarshalYAML accepts {rows: n} or {megabytes: m}.
func (b *BufferSize) UnmarshalYAML(node *yaml.Node) error {
	if b == nil {
		return errors.New("can't unmarshal a nil *BufferSize")
	}
	var raw bufferSizeYAML
	if err := node.Decode(&raw); err != nil {
		return errors.Wrap(err, "decode buffer size")
	}
	switch {
	case raw.Rows != nil && raw.Megabytes != nil:
		return errors.Errorf("line %d: buffer size takes either rows or megabytes, not both", node.Line)
	case raw.Rows != nil:
		*b = Rows(*raw.Rows)
	case raw.Megabytes != nil:
		*b = Megabytes(*raw.Megabytes)
	default:
		return errors.Errorf("line %d: buffer size needs rows or megabytes", node.Line)
	}
	return nil
}

// MarshalYAML writes the size in the form UnmarshalYAML reads.
func (b BufferSize) MarshalYAML() (interface{}, error) {
	v := b.value
	if b.unit == unitMegabytes {
		return bufferSizeYAML{Megabytes: &v}, nil
	}
	return bufferSizeYAML{Rows: &v}, nil
}

// DetermineRowsToBuffer returns the batch capacity for a set of columns.
// A rows size is used as is (at least one row); a megabytes size is divided
// by the summed element sizes of one row, rounding down but never below one.
func DetermineRowsToBuffer(size BufferSize, columns []Description) int {
	if size.unit == unitRows {
		if size.value <= 0 {
			return 1
		}
		return size.value
	}

	rowWidth := 0
	for _, c := range columns {
		rowWidth += c.ElementSize()
	}
	if rowWidth == 0 {
		return 1
	}
	rows := int(int64(size.value) * 1024 * 1024 / int64(rowWidth))
	if rows < 1 {
		rows = 1
	}
	logger.Debug("determined rows to buffer",
		zap.Stringer("buffer_size", size),
		zap.Int("row_width", rowWidth),
		zap.Int("rows", rows))
	return rows
}

// HalveBufferSize returns half of size, rounding up.
func HalveBufferSize(size BufferSize) BufferSize {
	return BufferSize{unit: size.unit, value: (size.value + 1) / 2}
}
