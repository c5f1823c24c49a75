package odbcbatch

import (
	"fmt"
	"unsafe"
)

// NullIndicator is the indicator value marking an element as NULL.
const NullIndicator int64 = -1

// Element is a view of one buffer slot: its fixed-size byte region and its
// length/null indicator. An Element is only valid until the owning buffer
// is rebound or replaced.
type Element struct {
	Data      []byte
	Indicator *int64
}

// IsNull reports whether the element holds the null sentinel.
func (e Element) IsNull() bool {
	return *e.Indicator == NullIndicator
}

// SetNull marks the element as NULL.
func (e Element) SetNull() {
	*e.Indicator = NullIndicator
}

// CopyTo copies the raw bytes and the indicator of e into dst.
func (e Element) CopyTo(dst Element) {
	copy(dst.Data, e.Data)
	*dst.Indicator = *e.Indicator
}

// Buffer is a row-major block of equally sized elements plus one indicator
// per element. The memory layout matches what ODBC expects for column-wise
// binding, so drivers can hand DataPointer and IndicatorPointer to native code.
type Buffer struct {
	data        []byte
	indicators  []int64
	elementSize int
}

// NewBuffer allocates a zeroed buffer for capacity elements of elementSize bytes.
func NewBuffer(elementSize, capacity int) *Buffer {
	if elementSize <= 0 {
		panic(fmt.Sprintf("odbcbatch: invalid element size %d", elementSize))
	}
	if capacity <= 0 {
		panic(fmt.Sprintf("odbcbatch: invalid buffer capacity %d", capacity))
	}
	return &Buffer{
		data:        make([]byte, elementSize*capacity),
		indicators:  make([]int64, capacity),
		elementSize: elementSize,
	}
}

// Element returns a mutable view of the i-th element.
func (b *Buffer) Element(i int) Element {
	if i < 0 || i >= len(b.indicators) {
		panic(fmt.Sprintf("odbcbatch: element index %d out of range [0, %d)", i, len(b.indicators)))
	}
	offset := i * b.elementSize
	return Element{
		// Capacity is clipped so appends can never spill into element i+1
		Data:      b.data[offset : offset+b.elementSize : offset+b.elementSize],
		Indicator: &b.indicators[i],
	}
}

// ElementSize returns the number of bytes per element.
func (b *Buffer) ElementSize() int {
	return b.elementSize
}

// Capacity returns the number of elements.
func (b *Buffer) Capacity() int {
	return len(b.indicators)
}

// DataPointer returns the address of the first data byte.
func (b *Buffer) DataPointer() unsafe.Pointer {
	return unsafe.Pointer(&b.data[0])
}

// IndicatorPointer returns the address of the first indicator.
func (b *Buffer) IndicatorPointer() unsafe.Pointer {
	return unsafe.Pointer(&b.indicators[0])
}
