package octseq

// Builder is the write-side contract: an append-only byte sink.
//
// AppendSlice is all-or-nothing; when it fails (ErrShortBuf on a
// capacity-limited sink) the sink is unchanged. Truncate shrinks the
// contents to n bytes and is a no-op when n >= Len. Growable sinks never
// fail an append; whether a sink is growable or fixed-capacity is a
// property of the implementation, not of the contract.
type Builder interface {
	AppendSlice(p []byte) error
	Truncate(n int)
	Len() int
}

// AppendAll applies op to b and rolls the sink back to its pre-call length
// when op fails, so a failed multi-part append leaves no partial data
// behind. The error from op is returned unchanged.
func AppendAll[B Builder](b B, op func(B) error) error {
	mark := b.Len()
	if err := op(b); err != nil {
		b.Truncate(mark)
		return err
	}
	return nil
}
