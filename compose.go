package octseq

import (
	"encoding/binary"

	"golang.org/x/exp/constraints"
)

// Builder-side companions to the parser's fixed-width reads. Big-endian is
// the unsuffixed default; signed values are appended by casting to the
// unsigned width, the encoding/binary convention.

// AppendUint8 appends a single byte.
func AppendUint8(b Builder, v uint8) error {
	return b.AppendSlice([]byte{v})
}

// AppendUint16 appends v in big-endian byte order.
func AppendUint16(b Builder, v uint16) error {
	buf := make([]byte, 2)
	binary.BigEndian.PutUint16(buf, v)
	return b.AppendSlice(buf)
}

// AppendUint16LE appends v in little-endian byte order.
func AppendUint16LE(b Builder, v uint16) error {
	buf := make([]byte, 2)
	binary.LittleEndian.PutUint16(buf, v)
	return b.AppendSlice(buf)
}

// AppendUint32 appends v in big-endian byte order.
func AppendUint32(b Builder, v uint32) error {
	buf := make([]byte, 4)
	binary.BigEndian.PutUint32(buf, v)
	return b.AppendSlice(buf)
}

// AppendUint32LE appends v in little-endian byte order.
func AppendUint32LE(b Builder, v uint32) error {
	buf := make([]byte, 4)
	binary.LittleEndian.PutUint32(buf, v)
	return b.AppendSlice(buf)
}

// AppendUint64 appends v in big-endian byte order.
func AppendUint64(b Builder, v uint64) error {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, v)
	return b.AppendSlice(buf)
}

// AppendUint64LE appends v in little-endian byte order.
func AppendUint64LE(b Builder, v uint64) error {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint64(buf, v)
	return b.AppendSlice(buf)
}

// AppendUint128 appends the sixteen-byte value hi<<64|lo in big-endian
// byte order.
func AppendUint128(b Builder, hi, lo uint64) error {
	buf := make([]byte, 16)
	binary.BigEndian.PutUint64(buf[:8], hi)
	binary.BigEndian.PutUint64(buf[8:], lo)
	return b.AppendSlice(buf)
}

// AppendUint128LE appends the sixteen-byte value hi<<64|lo in little-endian
// byte order.
func AppendUint128LE(b Builder, hi, lo uint64) error {
	buf := make([]byte, 16)
	binary.LittleEndian.PutUint64(buf[:8], lo)
	binary.LittleEndian.PutUint64(buf[8:], hi)
	return b.AppendSlice(buf)
}

// AppendUvarint appends v as an unsigned varint in the encoding/binary
// format, the inverse of Parser.ReadUvarint.
func AppendUvarint[T constraints.Integer](b Builder, v T) error {
	buf := make([]byte, 0, binary.MaxVarintLen64)
	return b.AppendSlice(binary.AppendUvarint(buf, uint64(v)))
}
