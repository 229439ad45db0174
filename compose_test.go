package octseq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeRoundTrip(t *testing.T) {
	assert := assert.New(t)

	var s Slice
	assert.Nil(AppendUint8(&s, 0x7f))
	assert.Nil(AppendUint16(&s, 0x1234))
	assert.Nil(AppendUint16LE(&s, 0x1234))
	assert.Nil(AppendUint32(&s, 0xdeadbeef))
	assert.Nil(AppendUint32LE(&s, 0xdeadbeef))
	assert.Nil(AppendUint64(&s, 0x0102030405060708))
	assert.Nil(AppendUint64LE(&s, 0x0102030405060708))
	assert.Nil(AppendUint128(&s, 0x0102030405060708, 0x090a0b0c0d0e0f10))
	assert.Nil(AppendUint128LE(&s, 0x0102030405060708, 0x090a0b0c0d0e0f10))

	p := NewParser(s)

	v8, err := p.ReadUint8()
	assert.Nil(err)
	assert.Equal(uint8(0x7f), v8)

	v16, err := p.ReadUint16()
	assert.Nil(err)
	assert.Equal(uint16(0x1234), v16)

	v16, err = p.ReadUint16LE()
	assert.Nil(err)
	assert.Equal(uint16(0x1234), v16)

	v32, err := p.ReadUint32()
	assert.Nil(err)
	assert.Equal(uint32(0xdeadbeef), v32)

	v32, err = p.ReadUint32LE()
	assert.Nil(err)
	assert.Equal(uint32(0xdeadbeef), v32)

	v64, err := p.ReadUint64()
	assert.Nil(err)
	assert.Equal(uint64(0x0102030405060708), v64)

	v64, err = p.ReadUint64LE()
	assert.Nil(err)
	assert.Equal(uint64(0x0102030405060708), v64)

	hi, lo, err := p.ReadUint128()
	assert.Nil(err)
	assert.Equal(uint64(0x0102030405060708), hi)
	assert.Equal(uint64(0x090a0b0c0d0e0f10), lo)

	hi, lo, err = p.ReadUint128LE()
	assert.Nil(err)
	assert.Equal(uint64(0x0102030405060708), hi)
	assert.Equal(uint64(0x090a0b0c0d0e0f10), lo)

	assert.True(p.Done())
}

func TestComposeEndianness(t *testing.T) {
	assert := assert.New(t)

	var s Slice
	assert.Nil(AppendUint16(&s, 0x1234))
	assert.Equal(Slice{0x12, 0x34}, s)

	s = nil
	assert.Nil(AppendUint16LE(&s, 0x1234))
	assert.Equal(Slice{0x34, 0x12}, s)

	s = nil
	assert.Nil(AppendUint128(&s, 0x0102030405060708, 0x090a0b0c0d0e0f10))
	assert.Equal(
		Slice{0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f, 0x10},
		s,
	)
}

func TestAppendUvarint(t *testing.T) {
	assert := assert.New(t)

	var s Slice
	assert.Nil(AppendUvarint(&s, 42))
	assert.Nil(AppendUvarint(&s, uint32(300)))
	assert.Nil(AppendUvarint(&s, int64(1)))

	p := NewParser(s)
	for _, want := range []uint64{42, 300, 1} {
		v, err := p.ReadUvarint()
		assert.Nil(err)
		assert.Equal(want, v)
	}
	assert.True(p.Done())
}

func TestComposeIntoFixedCapacity(t *testing.T) {
	assert := assert.New(t)

	a := NewArray(3)
	assert.Nil(AppendUint16(a, 0xbeef))
	assert.ErrorIs(AppendUint32(a, 1), ErrShortBuf)
	assert.Equal([]byte{0xbe, 0xef}, a.Bytes())
}
