package octseq

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// Parser is a bounds-checked cursor over an octets value. It never mutates
// the underlying storage, and it is a cheap value type: copying a Parser
// yields an independent cursor over the same bytes.
//
// Two indexes drive everything: pos, the current position, and len, the
// effective length of the sequence being parsed. The invariant
// 0 <= pos <= len <= len(octets) holds at all times. ReadBlock narrows len
// temporarily to impose a block boundary; nothing else changes it.
//
// Every consuming read is all-or-nothing. On failure the position stays
// where it was (ReadBlock's upfront length check is the single documented
// exception) so a caller can reposition and retry.
type Parser[O Octets[O]] struct {
	octets O
	pos    int
	len    int
}

// NewParser returns a parser positioned at the start of octets.
func NewParser[O Octets[O]](octets O) Parser[O] {
	return Parser[O]{octets: octets, len: len(octets.Bytes())}
}

// NewParserAt returns a parser positioned pos bytes in. It panics when pos
// lies outside the sequence: a bad start offset is a construction-time
// programmer error, not a parse error.
func NewParserAt[O Octets[O]](octets O, pos int) Parser[O] {
	p := NewParser(octets)
	if pos < 0 || pos > p.len {
		panic(fmt.Sprintf("octseq: parser start %d outside sequence of length %d", pos, p.len))
	}
	p.pos = pos
	return p
}

// Octets returns the underlying octets handle.
func (p *Parser[O]) Octets() O { return p.octets }

// Pos returns the current position, counted from the start of the sequence.
func (p *Parser[O]) Pos() int { return p.pos }

// Len returns the effective length of the sequence. This is not the number
// of bytes left to parse; that is Remaining.
func (p *Parser[O]) Len() int { return p.len }

// Remaining returns the number of bytes between the position and the end.
func (p *Parser[O]) Remaining() int { return p.len - p.pos }

// Done reports whether nothing is left to parse. A fully consumed parser
// over a nonempty sequence is Done yet keeps its nonzero Len; only a parser
// constructed over an empty sequence has Len 0.
func (p *Parser[O]) Done() bool { return p.pos == p.len }

// Bytes returns the whole effective sequence, consumed or not.
func (p *Parser[O]) Bytes() []byte { return p.octets.Bytes()[:p.len] }

// PeekAll returns everything between the position and the end without
// advancing.
func (p *Parser[O]) PeekAll() []byte { return p.octets.Bytes()[p.pos:p.len] }

// Peek returns the next n bytes without advancing, or ErrShortInput when
// fewer than n remain.
func (p *Parser[O]) Peek(n int) ([]byte, error) {
	if err := p.CheckLen(n); err != nil {
		return nil, err
	}
	return p.octets.Bytes()[p.pos : p.pos+n], nil
}

// Seek repositions the parser absolutely. Positions past the end (or
// negative) fail with ErrShortInput without moving.
func (p *Parser[O]) Seek(pos int) error {
	if pos < 0 || pos > p.len {
		return ErrShortInput
	}
	p.pos = pos
	return nil
}

// Advance moves the position n bytes forward, or fails with ErrShortInput
// leaving the position untouched.
func (p *Parser[O]) Advance(n int) error {
	if err := p.CheckLen(n); err != nil {
		return err
	}
	p.pos += n
	return nil
}

// AdvanceToEnd moves the position to the end of the sequence.
func (p *Parser[O]) AdvanceToEnd() { p.pos = p.len }

// CheckLen fails with ErrShortInput when fewer than n bytes remain. It
// never moves the position.
func (p *Parser[O]) CheckLen(n int) error {
	if n < 0 || n > p.len-p.pos {
		return ErrShortInput
	}
	return nil
}

// ReadRange consumes the next n bytes and returns them as an owned range of
// the underlying sequence.
func (p *Parser[O]) ReadRange(n int) (O, error) {
	if err := p.CheckLen(n); err != nil {
		var zero O
		return zero, err
	}
	r := p.octets.Range(p.pos, p.pos+n)
	p.pos += n
	return r, nil
}

// ReadFull consumes exactly len(buf) bytes, copying them into buf.
func (p *Parser[O]) ReadFull(buf []byte) error {
	if err := p.CheckLen(len(buf)); err != nil {
		return err
	}
	p.pos += copy(buf, p.octets.Bytes()[p.pos:])
	return nil
}

// ReadUint8 consumes one byte.
func (p *Parser[O]) ReadUint8() (uint8, error) {
	if err := p.CheckLen(1); err != nil {
		return 0, err
	}
	v := p.octets.Bytes()[p.pos]
	p.pos++
	return v, nil
}

// ReadInt8 consumes one byte as a signed integer.
func (p *Parser[O]) ReadInt8() (int8, error) {
	v, err := p.ReadUint8()
	return int8(v), err
}

// ReadUint16 consumes two bytes in big-endian (network) byte order.
func (p *Parser[O]) ReadUint16() (uint16, error) {
	if err := p.CheckLen(2); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint16(p.octets.Bytes()[p.pos:])
	p.pos += 2
	return v, nil
}

// ReadUint16LE consumes two bytes in little-endian byte order.
func (p *Parser[O]) ReadUint16LE() (uint16, error) {
	if err := p.CheckLen(2); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint16(p.octets.Bytes()[p.pos:])
	p.pos += 2
	return v, nil
}

// ReadInt16 consumes two bytes as a big-endian signed integer.
func (p *Parser[O]) ReadInt16() (int16, error) {
	v, err := p.ReadUint16()
	return int16(v), err
}

// ReadInt16LE consumes two bytes as a little-endian signed integer.
func (p *Parser[O]) ReadInt16LE() (int16, error) {
	v, err := p.ReadUint16LE()
	return int16(v), err
}

// ReadUint32 consumes four bytes in big-endian (network) byte order.
func (p *Parser[O]) ReadUint32() (uint32, error) {
	if err := p.CheckLen(4); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint32(p.octets.Bytes()[p.pos:])
	p.pos += 4
	return v, nil
}

// ReadUint32LE consumes four bytes in little-endian byte order.
func (p *Parser[O]) ReadUint32LE() (uint32, error) {
	if err := p.CheckLen(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(p.octets.Bytes()[p.pos:])
	p.pos += 4
	return v, nil
}

// ReadInt32 consumes four bytes as a big-endian signed integer.
func (p *Parser[O]) ReadInt32() (int32, error) {
	v, err := p.ReadUint32()
	return int32(v), err
}

// ReadInt32LE consumes four bytes as a little-endian signed integer.
func (p *Parser[O]) ReadInt32LE() (int32, error) {
	v, err := p.ReadUint32LE()
	return int32(v), err
}

// ReadUint64 consumes eight bytes in big-endian (network) byte order.
func (p *Parser[O]) ReadUint64() (uint64, error) {
	if err := p.CheckLen(8); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint64(p.octets.Bytes()[p.pos:])
	p.pos += 8
	return v, nil
}

// ReadUint64LE consumes eight bytes in little-endian byte order.
func (p *Parser[O]) ReadUint64LE() (uint64, error) {
	if err := p.CheckLen(8); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint64(p.octets.Bytes()[p.pos:])
	p.pos += 8
	return v, nil
}

// ReadInt64 consumes eight bytes as a big-endian signed integer.
func (p *Parser[O]) ReadInt64() (int64, error) {
	v, err := p.ReadUint64()
	return int64(v), err
}

// ReadInt64LE consumes eight bytes as a little-endian signed integer.
func (p *Parser[O]) ReadInt64LE() (int64, error) {
	v, err := p.ReadUint64LE()
	return int64(v), err
}

// ReadUint128 consumes sixteen bytes in big-endian byte order. Go has no
// 128-bit integer type, so the value comes back as a hi/lo pair with
// v = hi<<64 | lo.
func (p *Parser[O]) ReadUint128() (hi, lo uint64, err error) {
	if err = p.CheckLen(16); err != nil {
		return 0, 0, err
	}
	b := p.octets.Bytes()[p.pos:]
	hi = binary.BigEndian.Uint64(b)
	lo = binary.BigEndian.Uint64(b[8:])
	p.pos += 16
	return hi, lo, nil
}

// ReadUint128LE consumes sixteen bytes in little-endian byte order,
// returning the hi/lo pair with v = hi<<64 | lo.
func (p *Parser[O]) ReadUint128LE() (hi, lo uint64, err error) {
	if err = p.CheckLen(16); err != nil {
		return 0, 0, err
	}
	b := p.octets.Bytes()[p.pos:]
	lo = binary.LittleEndian.Uint64(b)
	hi = binary.LittleEndian.Uint64(b[8:])
	p.pos += 16
	return hi, lo, nil
}

// ReadInt128 consumes sixteen bytes as a big-endian signed integer in
// two's complement, returned as a signed hi and unsigned lo pair.
func (p *Parser[O]) ReadInt128() (hi int64, lo uint64, err error) {
	uhi, lo, err := p.ReadUint128()
	return int64(uhi), lo, err
}

// ReadInt128LE is the little-endian variant of ReadInt128.
func (p *Parser[O]) ReadInt128LE() (hi int64, lo uint64, err error) {
	uhi, lo, err := p.ReadUint128LE()
	return int64(uhi), lo, err
}

// ReadUvarint consumes an unsigned varint in the encoding/binary format.
// Truncated input fails with ErrShortInput; a value wider than 64 bits
// fails with ErrVarintOverflow. Neither failure moves the position.
func (p *Parser[O]) ReadUvarint() (uint64, error) {
	v, n := binary.Uvarint(p.PeekAll())
	switch {
	case n > 0:
		p.pos += n
		return v, nil
	case n == 0:
		return 0, ErrShortInput
	default:
		return 0, ErrVarintOverflow
	}
}

// SubParser splits off a parser over exactly the next n bytes and advances
// past them. The sub-parser shares storage with p but is otherwise
// independent: its Len is its own block, and moving it never moves p.
func (p *Parser[O]) SubParser(n int) (Parser[O], error) {
	if err := p.CheckLen(n); err != nil {
		return Parser[O]{}, err
	}
	sub := *p
	sub.len = sub.pos + n
	p.pos += n
	return sub, nil
}

// ReadBlock runs op over exactly the next limit bytes. For the duration of
// op the parser's effective length narrows to the block, so op cannot read
// past it; the outer length is restored afterwards no matter how op ends.
//
// Failure modes:
//   - Fewer than limit bytes remain: the parser advances to its own end and
//     ReadBlock fails with ErrShortInput. This is the one operation that
//     moves the position on failure, so callers must not rely on it there.
//   - op fails with ErrShortInput: it ran into the block boundary. Inside a
//     declared-length block that means the length lied, so the failure is
//     upgraded to the structural ErrShortField.
//   - op succeeds without consuming the whole block: ErrTrailingData.
//   - Any other error from op passes through unchanged.
func (p *Parser[O]) ReadBlock(limit int, op func(*Parser[O]) error) error {
	if err := p.CheckLen(limit); err != nil {
		p.pos = p.len
		return err
	}
	outer := p.len
	p.len = p.pos + limit
	err := op(p)
	end := p.len
	p.len = outer
	switch {
	case err == nil:
		if p.pos != end {
			return ErrTrailingData
		}
		return nil
	case errors.Is(err, ErrShortInput):
		return ErrShortField
	default:
		return err
	}
}
