package octseq

// Array is a fixed-capacity byte sequence. It serves both sides of the
// contract at once: a capacity-limited Builder and an octets value whose
// ranges are Slice. The capacity is set at construction and never grows.
type Array struct {
	octets []byte
}

// NewArray returns an empty Array that can hold up to capacity bytes.
func NewArray(capacity int) *Array {
	return &Array{octets: make([]byte, 0, capacity)}
}

// ArrayFrom copies p into a fresh Array of the given capacity. It fails
// with ErrShortBuf when p does not fit.
func ArrayFrom(capacity int, p []byte) (*Array, error) {
	if len(p) > capacity {
		return nil, ErrShortBuf
	}
	a := NewArray(capacity)
	a.octets = append(a.octets, p...)
	return a, nil
}

// Bytes returns the current contents. The slice is shared with the array
// and must not be modified by callers.
func (a *Array) Bytes() []byte { return a.octets }

// Range returns the sub-sequence [start:end) as a Slice sharing storage.
// To parse an Array's contents, construct a parser the same way:
// NewParser(Slice(a.Bytes())).
func (a *Array) Range(start, end int) Slice {
	return Slice(a.octets[start:end:end])
}

// Len reports the number of bytes currently held.
func (a *Array) Len() int { return len(a.octets) }

// Cap reports the fixed capacity.
func (a *Array) Cap() int { return cap(a.octets) }

// Clear empties the array, keeping its capacity.
func (a *Array) Clear() { a.octets = a.octets[:0] }

// Truncate shrinks the contents to n bytes. No-op when n >= Len.
func (a *Array) Truncate(n int) {
	if n < len(a.octets) {
		a.octets = a.octets[:n]
	}
}

// AppendSlice appends p, failing with ErrShortBuf when the result would
// exceed the capacity. A failed append changes nothing.
func (a *Array) AppendSlice(p []byte) error {
	if len(a.octets)+len(p) > cap(a.octets) {
		return ErrShortBuf
	}
	a.octets = append(a.octets, p...)
	return nil
}
