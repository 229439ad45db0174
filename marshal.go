package octseq

import "encoding/json"

// Marshal glue so sequence types embed cleanly in messages and documents.
// Byte contents travel as base64 in JSON, matching encoding/json's []byte
// convention (Slice gets that for free from its underlying type); Str
// travels as text.

// MarshalBinary returns a copy of the contents.
func (s Slice) MarshalBinary() ([]byte, error) {
	return append([]byte(nil), s...), nil
}

// UnmarshalBinary replaces the contents with a copy of p.
func (s *Slice) UnmarshalBinary(p []byte) error {
	*s = append(Slice(nil), p...)
	return nil
}

// MarshalBinary returns a copy of the contents.
func (v View) MarshalBinary() ([]byte, error) {
	return v.ByteSlice(), nil
}

// UnmarshalBinary replaces the contents with a copy of p.
func (v *View) UnmarshalBinary(p []byte) error {
	v.octets = append([]byte(nil), p...)
	return nil
}

// MarshalJSON encodes the contents as a base64 string.
func (v View) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.octets)
}

// UnmarshalJSON decodes a base64 string into the view.
func (v *View) UnmarshalJSON(p []byte) error {
	var b []byte
	if err := json.Unmarshal(p, &b); err != nil {
		return err
	}
	v.octets = b
	return nil
}

// MarshalBinary returns a copy of the contents.
func (a *Array) MarshalBinary() ([]byte, error) {
	return append([]byte(nil), a.octets...), nil
}

// UnmarshalBinary replaces the contents with a copy of p. Unmarshaling into
// a zero Array adopts len(p) as the capacity; otherwise the existing
// capacity is enforced with ErrShortBuf.
func (a *Array) UnmarshalBinary(p []byte) error {
	if a.octets == nil {
		a.octets = make([]byte, 0, len(p))
	}
	if len(p) > cap(a.octets) {
		return ErrShortBuf
	}
	a.octets = append(a.octets[:0], p...)
	return nil
}

// MarshalJSON encodes the contents as a base64 string.
func (a *Array) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.octets)
}

// UnmarshalJSON decodes a base64 string, enforcing capacity the same way
// UnmarshalBinary does.
func (a *Array) UnmarshalJSON(p []byte) error {
	var b []byte
	if err := json.Unmarshal(p, &b); err != nil {
		return err
	}
	return a.UnmarshalBinary(b)
}

// MarshalText returns the UTF-8 contents, so a Str travels as a plain
// string in JSON and other text encodings.
func (s Str[O]) MarshalText() ([]byte, error) {
	return append([]byte(nil), s.octets.Bytes()...), nil
}
