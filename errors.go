package octseq

import "errors"

var (
	// ErrShortInput means an operation needed more octets than remain. It
	// carries no further information: feeding the same data plus more input
	// may well succeed.
	ErrShortInput = errors.New("octseq: unexpected end of input")

	// ErrShortBuf means an append would exceed a builder's capacity.
	ErrShortBuf = errors.New("octseq: buffer size exceeded")
)

// FormError reports structurally invalid data: input that is long enough to
// read but whose shape contradicts what it declares about itself. The
// diagnostic is static, so form errors allocate nothing and compare cleanly
// under errors.Is. More input can never fix a FormError.
type FormError string

func (e FormError) Error() string { return string(e) }

const (
	// ErrTrailingData means a length-delimited block was not consumed
	// exactly: the declared length exceeds the content actually parsed.
	ErrTrailingData = FormError("octseq: trailing data")

	// ErrShortField means parsing ran out of input inside a
	// length-delimited block. The block boundary is authoritative, so the
	// truncation is a defect of the data, not a request for more input.
	ErrShortField = FormError("octseq: short field")

	// ErrVarintOverflow means a varint encodes a value wider than 64 bits.
	ErrVarintOverflow = FormError("octseq: varint overflow")
)
