package octseq

import (
	"bytes"
	"testing"
)

var (
	_ Octets[Slice] = Slice(nil)
	_ Octets[View]  = View{}
	_ Octets[Slice] = (*Array)(nil)
	_ Builder       = (*Slice)(nil)
	_ Builder       = (*Array)(nil)
)

func TestSliceRangeIsCapacityCapped(t *testing.T) {
	s := Slice("abcdef")
	r := s.Range(0, 3)
	if !bytes.Equal(r, []byte("abc")) {
		t.Fatalf("range = %q", r)
	}

	_ = append(r, 'X')
	if !bytes.Equal(s, []byte("abcdef")) {
		t.Fatalf("append through a range corrupted the parent: %q", s)
	}
}

func TestPrefixSuffix(t *testing.T) {
	s := Slice("abcdef")
	if got := Prefix(s, 2); !bytes.Equal(got, []byte("ab")) {
		t.Fatalf("prefix = %q", got)
	}
	if got := Suffix(s, 4); !bytes.Equal(got, []byte("ef")) {
		t.Fatalf("suffix = %q", got)
	}

	v := NewView([]byte("abcdef"))
	if got := Prefix(v, 3); !got.EqualBytes([]byte("abc")) {
		t.Fatalf("view prefix = %q", got.Bytes())
	}
}

func TestNewViewCopies(t *testing.T) {
	src := []byte("hello")
	v := NewView(src)
	src[0] = 'X'
	if !v.EqualBytes([]byte("hello")) {
		t.Fatalf("view shares caller storage: %q", v.Bytes())
	}
}

func TestViewRangeSharesStorage(t *testing.T) {
	v := NewView([]byte("hello world"))
	r := v.Range(6, 11)
	if !r.EqualBytes([]byte("world")) {
		t.Fatalf("range = %q", r.Bytes())
	}
	if &r.Bytes()[0] != &v.Bytes()[6] {
		t.Fatalf("view range must alias the parent storage")
	}
	if r.Len() != 5 {
		t.Fatalf("range length = %d", r.Len())
	}
}

func TestViewByteSliceIsPrivateCopy(t *testing.T) {
	v := NewView([]byte("abc"))
	p := v.ByteSlice()
	p[0] = 'X'
	if !v.EqualBytes([]byte("abc")) {
		t.Fatalf("ByteSlice exposed view storage: %q", v.Bytes())
	}
}

func TestViewEqual(t *testing.T) {
	a := NewView([]byte("abc"))
	b := NewView([]byte("abc"))
	c := NewView([]byte("abd"))
	if !a.Equal(b) || a.Equal(c) {
		t.Fatalf("equality mismatch")
	}
	if !a.EqualBytes([]byte("abc")) || a.EqualBytes([]byte("ab")) {
		t.Fatalf("byte equality mismatch")
	}
}

func TestSliceFreezeRoundTrip(t *testing.T) {
	var b Slice
	if err := b.AppendSlice([]byte("frozen")); err != nil {
		t.Fatalf("append: %v", err)
	}

	v := b.Freeze()
	if b.Len() != 0 {
		t.Fatalf("freeze left %d bytes in the builder", b.Len())
	}
	if !v.EqualBytes([]byte("frozen")) {
		t.Fatalf("frozen view = %q", v.Bytes())
	}

	back := v.IntoBuilder()
	if err := back.AppendSlice([]byte("!")); err != nil {
		t.Fatalf("append to thawed builder: %v", err)
	}
	if !v.EqualBytes([]byte("frozen")) {
		t.Fatalf("thawed builder shares view storage: %q", v.Bytes())
	}
	if !bytes.Equal(back, []byte("frozen!")) {
		t.Fatalf("thawed contents = %q", back)
	}
}
