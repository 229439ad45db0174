package octseq

import "testing"

func BenchmarkParser(b *testing.B) {
	payload := make(Slice, 1024)
	for i := range payload {
		payload[i] = byte(i)
	}

	b.Run("uint32", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			p := NewParser(payload)
			for p.Remaining() >= 4 {
				if _, err := p.ReadUint32(); err != nil {
					b.Fatal(err)
				}
			}
		}
	})

	b.Run("uint64", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			p := NewParser(payload)
			for p.Remaining() >= 8 {
				if _, err := p.ReadUint64(); err != nil {
					b.Fatal(err)
				}
			}
		}
	})

	b.Run("range", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			p := NewParser(payload)
			for p.Remaining() >= 64 {
				if _, err := p.ReadRange(64); err != nil {
					b.Fatal(err)
				}
			}
		}
	})

	b.Run("block", func(b *testing.B) {
		var frame Slice
		for i := 0; i < 32; i++ {
			_ = AppendUint16(&frame, 4)
			_ = AppendUint32(&frame, uint32(i))
		}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			p := NewParser(frame)
			for !p.Done() {
				n, err := p.ReadUint16()
				if err != nil {
					b.Fatal(err)
				}
				err = p.ReadBlock(int(n), func(p *Parser[Slice]) error {
					_, err := p.ReadUint32()
					return err
				})
				if err != nil {
					b.Fatal(err)
				}
			}
		}
	})
}

func BenchmarkCompose(b *testing.B) {
	b.Run("uint64", func(b *testing.B) {
		var s Slice
		for i := 0; i < b.N; i++ {
			s.Truncate(0)
			for j := 0; j < 16; j++ {
				if err := AppendUint64(&s, uint64(j)); err != nil {
					b.Fatal(err)
				}
			}
		}
	})

	b.Run("uvarint", func(b *testing.B) {
		var s Slice
		for i := 0; i < b.N; i++ {
			s.Truncate(0)
			for j := 0; j < 16; j++ {
				if err := AppendUvarint(&s, uint64(j)*300); err != nil {
					b.Fatal(err)
				}
			}
		}
	})

	b.Run("append-all", func(b *testing.B) {
		var s Slice
		for i := 0; i < b.N; i++ {
			s.Truncate(0)
			err := AppendAll(&s, func(b *Slice) error {
				if err := AppendUint32(b, uint32(i)); err != nil {
					return err
				}
				return b.AppendSlice([]byte("record"))
			})
			if err != nil {
				b.Fatal(err)
			}
		}
	})
}
