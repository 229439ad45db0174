package octseq

import "bytes"

// Octets is the contract for an immutable byte sequence whose sub-ranges
// are values of the same representation R.
//
// Bytes exposes the whole contents as one contiguous view without
// allocating; callers must treat the returned slice as read-only. Range
// produces the sub-sequence [start:end) and panics on impossible bounds,
// exactly like Go slicing. Parser layers the checked, error-returning
// variants on top.
//
// Parser requires a self-ranging implementation, that is an O satisfying
// Octets[O].
type Octets[R any] interface {
	Bytes() []byte
	Range(start, end int) R
}

// Prefix returns the first n bytes of o.
func Prefix[O Octets[O]](o O, n int) O {
	return o.Range(0, n)
}

// Suffix returns everything from start to the end of o.
func Suffix[O Octets[O]](o O, start int) O {
	return o.Range(start, len(o.Bytes()))
}

// Slice is the []byte-backed default octets implementation. Through its
// pointer it is also the default growable Builder: appends never fail.
type Slice []byte

// Bytes returns the slice itself.
func (s Slice) Bytes() []byte { return s }

// Range returns the sub-sequence [start:end). The result is capacity-capped
// so that appending to an escaped range can never write into s.
func (s Slice) Range(start, end int) Slice { return s[start:end:end] }

// Len reports the number of bytes accumulated.
func (s Slice) Len() int { return len(s) }

// AppendSlice appends p, growing as needed. The error is always nil.
func (s *Slice) AppendSlice(p []byte) error {
	*s = append(*s, p...)
	return nil
}

// Truncate shrinks the sequence to n bytes. No-op when n >= Len.
func (s *Slice) Truncate(n int) {
	if n < len(*s) {
		*s = (*s)[:n]
	}
}

// Freeze hands the accumulated bytes over to an immutable View and resets
// the builder to empty.
func (s *Slice) Freeze() View {
	v := View{octets: *s}
	*s = nil
	return v
}

// View is an immutable octets implementation built for cheap sharing:
// sub-ranges alias the same backing storage instead of copying. The zero
// View is empty and ready to use.
type View struct {
	octets []byte
}

// NewView copies p into a fresh View. The view owns the copy, so later
// changes to p do not show through.
func NewView(p []byte) View {
	return View{octets: append([]byte(nil), p...)}
}

// Bytes returns the contents. The slice is shared with the view and must
// not be modified; use ByteSlice for a private copy.
func (v View) Bytes() []byte { return v.octets }

// Range returns the sub-view [start:end) sharing the same storage.
func (v View) Range(start, end int) View {
	return View{octets: v.octets[start:end:end]}
}

// Len reports the number of bytes in the view.
func (v View) Len() int { return len(v.octets) }

// ByteSlice returns a copy of the contents that the caller may modify.
func (v View) ByteSlice() []byte { return append([]byte(nil), v.octets...) }

// Equal reports whether v and o hold the same bytes.
func (v View) Equal(o View) bool { return bytes.Equal(v.octets, o.octets) }

// EqualBytes reports whether v holds exactly the bytes of p.
func (v View) EqualBytes(p []byte) bool { return bytes.Equal(v.octets, p) }

// IntoBuilder copies the contents into a fresh growable builder, the
// reverse of (*Slice).Freeze.
func (v View) IntoBuilder() Slice { return append(Slice(nil), v.octets...) }
