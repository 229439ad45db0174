package tlv

import (
	"fmt"

	"github.com/rs/zerolog/log"
)

// FieldSpec declares a known field within a schema.
type FieldSpec struct {
	ID       uint16
	Type     uint8
	Required bool
}

// Schema defines the known fields of one message shape. Fields not listed
// are unknown; validation ignores them so old readers keep working against
// extended writers.
type Schema struct {
	Name   string
	Fields []FieldSpec
}

// Value is a decoded field value. Type selects which member is set.
type Value struct {
	Type   uint8
	Uint8  uint8
	Uint16 uint16
	Uint32 uint32
	Uint64 uint64
	Bool   bool
	String string
	Bytes  []byte
}

// Semantic is a field set validated and typed against a schema.
type Semantic struct {
	Schema  string
	Fields  map[uint16]Value
	Unknown []Field
}

// ValidationError reports why a field set does not satisfy a schema. A zero
// FieldID means the failure is not tied to one field.
type ValidationError struct {
	Schema  string
	FieldID uint16
	Reason  string
}

func (e ValidationError) Error() string {
	if e.FieldID == 0 {
		return fmt.Sprintf("tlv: schema %s: %s", e.Schema, e.Reason)
	}
	return fmt.Sprintf("tlv: schema %s field=%d: %s", e.Schema, e.FieldID, e.Reason)
}

// MissingFieldError indicates a required field was not present.
type MissingFieldError struct {
	FieldID uint16
}

func (e MissingFieldError) Error() string {
	return fmt.Sprintf("tlv: missing required field %d", e.FieldID)
}

// Validate enforces required fields and declared field types.
// Unknown fields are ignored.
func Validate(schema Schema, fields []Field) error {
	log.Debug().Str("schema", schema.Name).Int("fields", len(fields)).Msg("tlv validate")
	for _, spec := range schema.Fields {
		f, found := GetField(fields, spec.ID)
		if !found {
			if !spec.Required {
				continue
			}
			log.Error().
				Str("schema", schema.Name).
				Uint16("field_id", spec.ID).
				Msg("tlv validate missing field")
			return ValidationError{Schema: schema.Name, FieldID: spec.ID, Reason: "missing required field"}
		}
		if f.Type != spec.Type {
			log.Error().
				Str("schema", schema.Name).
				Uint16("field_id", spec.ID).
				Uint8("got", f.Type).
				Uint8("want", spec.Type).
				Msg("tlv validate type mismatch")
			return ValidationError{Schema: schema.Name, FieldID: spec.ID, Reason: "type mismatch"}
		}
	}
	log.Debug().Str("schema", schema.Name).Msg("tlv validate ok")
	return nil
}

// ParseSemantic validates fields against schema and returns typed values
// keyed by field id. Fields the schema does not know are preserved in
// Unknown rather than dropped.
func ParseSemantic(schema Schema, fields []Field) (*Semantic, error) {
	known := make(map[uint16]FieldSpec, len(schema.Fields))
	required := make(map[uint16]struct{})
	for _, spec := range schema.Fields {
		known[spec.ID] = spec
		if spec.Required {
			required[spec.ID] = struct{}{}
		}
	}

	semantic := &Semantic{
		Schema: schema.Name,
		Fields: make(map[uint16]Value),
	}

	for _, field := range fields {
		spec, ok := known[field.ID]
		if !ok {
			semantic.Unknown = append(semantic.Unknown, field)
			continue
		}
		value, err := decodeValue(field, spec.Type)
		if err != nil {
			log.Error().
				Str("schema", schema.Name).
				Uint16("field_id", field.ID).
				Err(err).
				Msg("tlv semantic decode failed")
			return nil, err
		}
		semantic.Fields[field.ID] = value
		delete(required, field.ID)
	}

	if len(required) != 0 {
		for id := range required {
			log.Error().
				Str("schema", schema.Name).
				Uint16("field_id", id).
				Msg("tlv semantic missing field")
			return nil, MissingFieldError{FieldID: id}
		}
	}

	return semantic, nil
}

func decodeValue(field Field, expected uint8) (Value, error) {
	if field.Type != expected {
		return Value{}, ErrFieldTypeMismatch
	}
	value := Value{Type: field.Type}
	switch field.Type {
	case TypeU8:
		v, err := field.Uint8()
		if err != nil {
			return Value{}, err
		}
		value.Uint8 = v
	case TypeU16:
		v, err := field.Uint16()
		if err != nil {
			return Value{}, err
		}
		value.Uint16 = v
	case TypeU32:
		v, err := field.Uint32()
		if err != nil {
			return Value{}, err
		}
		value.Uint32 = v
	case TypeU64:
		v, err := field.Uint64()
		if err != nil {
			return Value{}, err
		}
		value.Uint64 = v
	case TypeBool:
		v, err := field.Bool()
		if err != nil {
			return Value{}, err
		}
		value.Bool = v
	case TypeString:
		v, err := field.String()
		if err != nil {
			return Value{}, err
		}
		value.String = v
	case TypeBytes:
		v, err := field.Bytes()
		if err != nil {
			return Value{}, err
		}
		value.Bytes = v
	default:
		return Value{}, ErrFieldTypeMismatch
	}
	return value, nil
}
