package tlv

import "github.com/NLnetLabs/octseq"

// Constructors compose each wire form through the octseq append helpers.
// The sink is a growable Slice, so the appends cannot fail.

// NewFieldUint8 builds a field carrying v as a single byte.
func NewFieldUint8(id uint16, v uint8) Field {
	var value octseq.Slice
	_ = octseq.AppendUint8(&value, v)
	return Field{ID: id, Type: TypeU8, Value: value}
}

// NewFieldUint16 builds a field carrying v in the two-byte wire form.
func NewFieldUint16(id uint16, v uint16) Field {
	var value octseq.Slice
	_ = octseq.AppendUint16(&value, v)
	return Field{ID: id, Type: TypeU16, Value: value}
}

// NewFieldUint32 builds a field carrying v in the four-byte wire form.
func NewFieldUint32(id uint16, v uint32) Field {
	var value octseq.Slice
	_ = octseq.AppendUint32(&value, v)
	return Field{ID: id, Type: TypeU32, Value: value}
}

// NewFieldUint64 builds a field carrying v in the eight-byte wire form.
func NewFieldUint64(id uint16, v uint64) Field {
	var value octseq.Slice
	_ = octseq.AppendUint64(&value, v)
	return Field{ID: id, Type: TypeU64, Value: value}
}

// NewFieldBool builds a field carrying v as one byte, 0 or 1.
func NewFieldBool(id uint16, v bool) Field {
	var b uint8
	if v {
		b = 1
	}
	var value octseq.Slice
	_ = octseq.AppendUint8(&value, b)
	return Field{ID: id, Type: TypeBool, Value: value}
}

// NewFieldString builds a field carrying the raw bytes of v.
func NewFieldString(id uint16, v string) Field {
	return Field{ID: id, Type: TypeString, Value: []byte(v)}
}

// NewFieldBytes builds a field carrying a private copy of v.
func NewFieldBytes(id uint16, v []byte) Field {
	var value octseq.Slice
	_ = value.AppendSlice(v)
	return Field{ID: id, Type: TypeBytes, Value: value}
}

// valueParser checks the type code and returns a cursor over the value.
// A value the accessor does not consume exactly is the wrong width for
// its type.
func (f Field) valueParser(typeID uint8) (octseq.Parser[octseq.Slice], error) {
	if f.Type != typeID {
		return octseq.Parser[octseq.Slice]{}, ErrFieldTypeMismatch
	}
	return octseq.NewParser(octseq.Slice(f.Value)), nil
}

// Uint8 decodes a one-byte value.
func (f Field) Uint8() (uint8, error) {
	p, err := f.valueParser(TypeU8)
	if err != nil {
		return 0, err
	}
	v, err := p.ReadUint8()
	if err != nil || !p.Done() {
		return 0, ErrInvalidLength
	}
	return v, nil
}

// Uint16 decodes a two-byte big-endian value.
func (f Field) Uint16() (uint16, error) {
	p, err := f.valueParser(TypeU16)
	if err != nil {
		return 0, err
	}
	v, err := p.ReadUint16()
	if err != nil || !p.Done() {
		return 0, ErrInvalidLength
	}
	return v, nil
}

// Uint32 decodes a four-byte big-endian value.
func (f Field) Uint32() (uint32, error) {
	p, err := f.valueParser(TypeU32)
	if err != nil {
		return 0, err
	}
	v, err := p.ReadUint32()
	if err != nil || !p.Done() {
		return 0, ErrInvalidLength
	}
	return v, nil
}

// Uint64 decodes an eight-byte big-endian value.
func (f Field) Uint64() (uint64, error) {
	p, err := f.valueParser(TypeU64)
	if err != nil {
		return 0, err
	}
	v, err := p.ReadUint64()
	if err != nil || !p.Done() {
		return 0, ErrInvalidLength
	}
	return v, nil
}

// Bool decodes a one-byte value that must be 0 or 1.
func (f Field) Bool() (bool, error) {
	p, err := f.valueParser(TypeBool)
	if err != nil {
		return false, err
	}
	v, err := p.ReadUint8()
	if err != nil || !p.Done() {
		return false, ErrInvalidLength
	}
	switch v {
	case 0:
		return false, nil
	case 1:
		return true, nil
	default:
		return false, ErrInvalidBool
	}
}

// String decodes the value as a utf-8 string. Invalid contents are
// rejected, not replaced.
func (f Field) String() (string, error) {
	if f.Type != TypeString {
		return "", ErrFieldTypeMismatch
	}
	s, err := octseq.StrFromUTF8(octseq.Slice(f.Value))
	if err != nil {
		return "", err
	}
	return s.String(), nil
}

// Bytes returns a private copy of the value.
func (f Field) Bytes() ([]byte, error) {
	if f.Type != TypeBytes {
		return nil, ErrFieldTypeMismatch
	}
	var out octseq.Slice
	_ = out.AppendSlice(f.Value)
	return out, nil
}
