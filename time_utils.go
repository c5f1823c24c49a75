package odbcbatch

import (
	"encoding/binary"
	"time"
)

// Sizes of SQL_DATE_STRUCT and SQL_TIMESTAMP_STRUCT.
const (
	dateStructSize      = 6
	timestampStructSize = 16
)

// putDate writes t as SQL_DATE_STRUCT{year int16, month uint16, day uint16}.
func putDate(dst []byte, t time.Time) {
	y, m, d := t.Date()
	binary.NativeEndian.PutUint16(dst[0:], uint16(int16(y)))
	binary.NativeEndian.PutUint16(dst[2:], uint16(m))
	binary.NativeEndian.PutUint16(dst[4:], uint16(d))
}

// dateFromStruct reads a SQL_DATE_STRUCT.
func dateFromStruct(src []byte) time.Time {
	y := int16(binary.NativeEndian.Uint16(src[0:]))
	m := binary.NativeEndian.Uint16(src[2:])
	d := binary.NativeEndian.Uint16(src[4:])
	return time.Date(int(y), time.Month(m), int(d), 0, 0, 0, 0, time.UTC)
}

// putTimestamp writes t as SQL_TIMESTAMP_STRUCT. The struct fraction is in
// nanoseconds; only microsecond precision is kept.
func putTimestamp(dst []byte, t time.Time) {
	t = t.UTC()
	y, mo, d := t.Date()
	h, mi, s := t.Clock()
	micros := t.Nanosecond() / 1000
	binary.NativeEndian.PutUint16(dst[0:], uint16(int16(y)))
	binary.NativeEndian.PutUint16(dst[2:], uint16(mo))
	binary.NativeEndian.PutUint16(dst[4:], uint16(d))
	binary.NativeEndian.PutUint16(dst[6:], uint16(h))
	binary.NativeEndian.PutUint16(dst[8:], uint16(mi))
	binary.NativeEndian.PutUint16(dst[10:], uint16(s))
	binary.NativeEndian.PutUint32(dst[12:], uint32(micros*1000))
}

// timestampFromStruct reads a SQL_TIMESTAMP_STRUCT, truncating the
// nanosecond fraction to microseconds.
func timestampFromStruct(src []byte) time.Time {
	y := int16(binary.NativeEndian.Uint16(src[0:]))
	mo := binary.NativeEndian.Uint16(src[2:])
	d := binary.NativeEndian.Uint16(src[4:])
	h := binary.NativeEndian.Uint16(src[6:])
	mi := binary.NativeEndian.Uint16(src[8:])
	s := binary.NativeEndian.Uint16(src[10:])
	micros := binary.NativeEndian.Uint32(src[12:]) / 1000
	return time.Date(int(y), time.Month(mo), int(d), int(h), int(mi), int(s), int(micros)*1000, time.UTC)
}
