package octseq

import (
	"fmt"
	"unicode/utf8"
)

// Str is a byte sequence guaranteed to hold valid UTF-8. Go strings carry
// no such guarantee, so the validation at construction is the whole point
// of the type.
type Str[O Octets[O]] struct {
	octets O
}

// StrFromUTF8 wraps octets after validating the contents. The error is an
// InvalidUTF8Error naming the first offending byte.
func StrFromUTF8[O Octets[O]](octets O) (Str[O], error) {
	if i, bad := invalidUTF8Index(octets.Bytes()); bad {
		return Str[O]{}, InvalidUTF8Error{Index: i}
	}
	return Str[O]{octets: octets}, nil
}

// String returns the contents as a Go string.
func (s Str[O]) String() string { return string(s.octets.Bytes()) }

// Bytes returns the raw UTF-8 bytes. Shared; must not be modified.
func (s Str[O]) Bytes() []byte { return s.octets.Bytes() }

// Octets returns the underlying octets handle.
func (s Str[O]) Octets() O { return s.octets }

// Len returns the length in bytes, not in runes.
func (s Str[O]) Len() int { return len(s.octets.Bytes()) }

// InvalidUTF8Error reports the position of the first byte that is not part
// of a valid UTF-8 encoding.
type InvalidUTF8Error struct {
	Index int
}

func (e InvalidUTF8Error) Error() string {
	return fmt.Sprintf("octseq: invalid utf-8 at byte %d", e.Index)
}

// StrBuilder accumulates valid UTF-8 over the growable builder. The zero
// value is an empty builder ready to use.
type StrBuilder struct {
	octets Slice
}

// NewStrBuilder returns an empty builder.
func NewStrBuilder() *StrBuilder { return &StrBuilder{} }

// StrBuilderFromUTF8 copies p into a fresh builder after validating it.
func StrBuilderFromUTF8(p []byte) (*StrBuilder, error) {
	if i, bad := invalidUTF8Index(p); bad {
		return nil, InvalidUTF8Error{Index: i}
	}
	return &StrBuilder{octets: append(Slice(nil), p...)}, nil
}

// StrBuilderFromUTF8Lossy copies p into a fresh builder, replacing each
// maximal invalid subsequence with one U+FFFD replacement character.
func StrBuilderFromUTF8Lossy(p []byte) *StrBuilder {
	b := &StrBuilder{octets: make(Slice, 0, len(p))}
	for i := 0; i < len(p); {
		r, size := utf8.DecodeRune(p[i:])
		if r == utf8.RuneError && size == 1 {
			b.octets = Slice(utf8.AppendRune(b.octets, utf8.RuneError))
			i += invalidSubpartLen(p[i:])
			continue
		}
		b.octets = append(b.octets, p[i:i+size]...)
		i += size
	}
	return b
}

// invalidSubpartLen returns the length of the maximal subpart of the
// ill-formed sequence starting at p[0]: the lead byte plus any continuation
// bytes still acceptable for that lead (Unicode "substitution of maximal
// subparts"). A stray continuation byte or an impossible lead has length 1;
// a sequence cut short by the end of input keeps everything read so far.
func invalidSubpartLen(p []byte) int {
	var want int
	var lo, hi byte
	switch lead := p[0]; {
	case lead < 0xC2 || 0xF4 < lead:
		return 1
	case lead < 0xE0:
		want, lo, hi = 2, 0x80, 0xBF
	case lead == 0xE0:
		want, lo, hi = 3, 0xA0, 0xBF
	case lead == 0xED:
		want, lo, hi = 3, 0x80, 0x9F
	case lead < 0xF0:
		want, lo, hi = 3, 0x80, 0xBF
	case lead == 0xF0:
		want, lo, hi = 4, 0x90, 0xBF
	case lead < 0xF4:
		want, lo, hi = 4, 0x80, 0xBF
	default:
		want, lo, hi = 4, 0x80, 0x8F
	}
	if len(p) < 2 || p[1] < lo || hi < p[1] {
		return 1
	}
	n := 2
	for n < want && n < len(p) && 0x80 <= p[n] && p[n] <= 0xBF {
		n++
	}
	return n
}

// WriteString appends v after validating it. Go strings may hold arbitrary
// bytes, so the check cannot be skipped. On failure nothing is appended.
func (b *StrBuilder) WriteString(v string) (int, error) {
	if i, bad := invalidUTF8IndexString(v); bad {
		return 0, InvalidUTF8Error{Index: i}
	}
	b.octets = append(b.octets, v...)
	return len(v), nil
}

// WriteRune appends the UTF-8 encoding of r. Invalid runes encode as
// U+FFFD, the strings.Builder behavior.
func (b *StrBuilder) WriteRune(r rune) (int, error) {
	n := len(b.octets)
	b.octets = Slice(utf8.AppendRune(b.octets, r))
	return len(b.octets) - n, nil
}

// Grow ensures space for n more bytes without reallocation.
func (b *StrBuilder) Grow(n int) {
	if n > 0 && cap(b.octets)-len(b.octets) < n {
		grown := make(Slice, len(b.octets), len(b.octets)+n)
		copy(grown, b.octets)
		b.octets = grown
	}
}

// Len returns the length in bytes, not in runes.
func (b *StrBuilder) Len() int { return len(b.octets) }

// String returns the contents accumulated so far.
func (b *StrBuilder) String() string { return string(b.octets) }

// Truncate shrinks the contents to n bytes. No-op when n >= Len. It panics
// when n does not lie on a rune boundary, which would break the UTF-8
// guarantee.
func (b *StrBuilder) Truncate(n int) {
	if n >= len(b.octets) {
		return
	}
	if !utf8.RuneStart(b.octets[n]) {
		panic("octseq: truncate position splits a utf-8 sequence")
	}
	b.octets = b.octets[:n]
}

// Pop removes and returns the last rune. ok is false on an empty builder.
func (b *StrBuilder) Pop() (r rune, ok bool) {
	if len(b.octets) == 0 {
		return 0, false
	}
	r, size := utf8.DecodeLastRune(b.octets)
	b.octets = b.octets[:len(b.octets)-size]
	return r, true
}

// Clear empties the builder, keeping capacity.
func (b *StrBuilder) Clear() { b.octets = b.octets[:0] }

// Freeze hands the contents over to a Str and resets the builder.
func (b *StrBuilder) Freeze() Str[Slice] {
	s := Str[Slice]{octets: b.octets}
	b.octets = nil
	return s
}

// IntoBuilder hands the raw bytes over to a plain growable builder,
// abandoning the UTF-8 guarantee, and resets the StrBuilder.
func (b *StrBuilder) IntoBuilder() Slice {
	s := b.octets
	b.octets = nil
	return s
}

func invalidUTF8Index(p []byte) (int, bool) {
	for i := 0; i < len(p); {
		r, size := utf8.DecodeRune(p[i:])
		if r == utf8.RuneError && size == 1 {
			return i, true
		}
		i += size
	}
	return 0, false
}

func invalidUTF8IndexString(s string) (int, bool) {
	for i, r := range s {
		if r == utf8.RuneError {
			_, size := utf8.DecodeRuneInString(s[i:])
			if size == 1 {
				return i, true
			}
		}
	}
	return 0, false
}
