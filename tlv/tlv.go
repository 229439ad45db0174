package tlv

import (
	"fmt"

	"github.com/NLnetLabs/octseq"
)

// Wire shape per field: id uint16 BE | type uint8 | length uint32 BE | value.
const HeaderLen = 7

// Type IDs from the field contract.
const (
	TypeU8     uint8 = 1
	TypeU16    uint8 = 2
	TypeU32    uint8 = 3
	TypeU64    uint8 = 4
	TypeBool   uint8 = 5
	TypeString uint8 = 6
	TypeBytes  uint8 = 7
)

// Field is one decoded TLV field.
type Field struct {
	ID    uint16
	Type  uint8
	Value []byte
}

// AppendField appends the wire form of f. A failed append rolls the builder
// back to its starting length, so no partial field is ever left behind.
func AppendField(b octseq.Builder, f Field) error {
	return octseq.AppendAll(b, func(b octseq.Builder) error {
		if err := octseq.AppendUint16(b, f.ID); err != nil {
			return err
		}
		if err := octseq.AppendUint8(b, f.Type); err != nil {
			return err
		}
		if err := octseq.AppendUint32(b, uint32(len(f.Value))); err != nil {
			return err
		}
		return b.AppendSlice(f.Value)
	})
}

// EncodeFields encodes fields back to back into a fresh sequence.
func EncodeFields(fields []Field) (octseq.Slice, error) {
	var out octseq.Slice
	for _, f := range fields {
		if err := AppendField(&out, f); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// ParseField consumes one field. On failure the parser stays where it was:
// a truncated header reports ErrShortFieldHeader, a declared length longer
// than the remaining input reports ErrShortFieldValue. The value is copied
// out, so the field does not pin the parsed sequence.
func ParseField[O octseq.Octets[O]](p *octseq.Parser[O]) (Field, error) {
	c := *p
	id, err := c.ReadUint16()
	if err != nil {
		return Field{}, ErrShortFieldHeader
	}
	typeID, err := c.ReadUint8()
	if err != nil {
		return Field{}, ErrShortFieldHeader
	}
	length, err := c.ReadUint32()
	if err != nil {
		return Field{}, ErrShortFieldHeader
	}
	if err := c.CheckLen(int(length)); err != nil {
		return Field{}, ErrShortFieldValue
	}
	value := make([]byte, int(length))
	if err := c.ReadFull(value); err != nil {
		return Field{}, ErrShortFieldValue
	}
	*p = c
	return Field{ID: id, Type: typeID, Value: value}, nil
}

// ParseFields consumes fields until the end of the sequence.
func ParseFields[O octseq.Octets[O]](p *octseq.Parser[O]) ([]Field, error) {
	fields := make([]Field, 0)
	for !p.Done() {
		f, err := ParseField(p)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	return fields, nil
}

// ParseBlock consumes an n-byte region holding whole fields. The region must
// be filled exactly; a region longer than the remaining input fails with
// octseq.ErrShortInput and leaves the parser at its end.
func ParseBlock[O octseq.Octets[O]](p *octseq.Parser[O], n int) ([]Field, error) {
	var fields []Field
	err := p.ReadBlock(n, func(p *octseq.Parser[O]) error {
		var err error
		fields, err = ParseFields(p)
		return err
	})
	if err != nil {
		return nil, err
	}
	return fields, nil
}

// DecodeFields parses a whole payload of back-to-back fields.
func DecodeFields(payload []byte) ([]Field, error) {
	p := octseq.NewParser(octseq.Slice(payload))
	return ParseFields(&p)
}

// GetField returns the first field with the given id.
func GetField(fields []Field, id uint16) (Field, bool) {
	for _, f := range fields {
		if f.ID == id {
			return f, true
		}
	}
	return Field{}, false
}

// MustType fails when f does not carry the expected type code.
func MustType(f Field, expected uint8) error {
	if f.Type != expected {
		return fmt.Errorf("%w: field %d got %d want %d", ErrFieldTypeMismatch, f.ID, f.Type, expected)
	}
	return nil
}
