package main

import (
	"fmt"
	"io"

	"github.com/NLnetLabs/octseq"
	"github.com/NLnetLabs/octseq/tlv"
	"github.com/rs/zerolog/log"
)

type parser = octseq.Parser[octseq.Slice]

// dumpLayout walks the layout over data, printing one line per field. The
// input must be consumed exactly; leftovers are an error, the same way a
// block boundary is.
func dumpLayout(w io.Writer, lay layout, data []byte) error {
	p := octseq.NewParser(octseq.Slice(data))
	fmt.Fprintf(w, "layout %s (%d bytes)\n", lay.Name, p.Len())
	if err := walkFields(w, &p, lay.Fields, ""); err != nil {
		return err
	}
	if !p.Done() {
		return fmt.Errorf("%d trailing bytes after the last field", p.Remaining())
	}
	return nil
}

func walkFields(w io.Writer, p *parser, specs []fieldSpec, indent string) error {
	for _, spec := range specs {
		if err := walkField(w, p, spec, indent); err != nil {
			return err
		}
	}
	return nil
}

func walkField(w io.Writer, p *parser, spec fieldSpec, indent string) error {
	log.Debug().
		Str("field", spec.Name).
		Str("kind", string(spec.Kind)).
		Int("pos", p.Pos()).
		Msg("walk field")

	switch spec.Kind {
	case kindU8:
		v, err := p.ReadUint8()
		if err != nil {
			return fieldErr(spec, err)
		}
		fmt.Fprintf(w, "%s%s: %d\n", indent, spec.Name, v)

	case kindU16:
		var v uint16
		var err error
		if spec.ByteOrder == orderLE {
			v, err = p.ReadUint16LE()
		} else {
			v, err = p.ReadUint16()
		}
		if err != nil {
			return fieldErr(spec, err)
		}
		fmt.Fprintf(w, "%s%s: %d\n", indent, spec.Name, v)

	case kindU32:
		var v uint32
		var err error
		if spec.ByteOrder == orderLE {
			v, err = p.ReadUint32LE()
		} else {
			v, err = p.ReadUint32()
		}
		if err != nil {
			return fieldErr(spec, err)
		}
		fmt.Fprintf(w, "%s%s: %d\n", indent, spec.Name, v)

	case kindU64:
		var v uint64
		var err error
		if spec.ByteOrder == orderLE {
			v, err = p.ReadUint64LE()
		} else {
			v, err = p.ReadUint64()
		}
		if err != nil {
			return fieldErr(spec, err)
		}
		fmt.Fprintf(w, "%s%s: %d\n", indent, spec.Name, v)

	case kindU128:
		var hi, lo uint64
		var err error
		if spec.ByteOrder == orderLE {
			hi, lo, err = p.ReadUint128LE()
		} else {
			hi, lo, err = p.ReadUint128()
		}
		if err != nil {
			return fieldErr(spec, err)
		}
		fmt.Fprintf(w, "%s%s: 0x%016x%016x\n", indent, spec.Name, hi, lo)

	case kindUvarint:
		v, err := p.ReadUvarint()
		if err != nil {
			return fieldErr(spec, err)
		}
		fmt.Fprintf(w, "%s%s: %d\n", indent, spec.Name, v)

	case kindBytes:
		n, err := fieldLen(p, spec)
		if err != nil {
			return fieldErr(spec, err)
		}
		r, err := p.ReadRange(n)
		if err != nil {
			return fieldErr(spec, err)
		}
		fmt.Fprintf(w, "%s%s: %d bytes [% x]\n", indent, spec.Name, n, []byte(r))

	case kindStr:
		n, err := fieldLen(p, spec)
		if err != nil {
			return fieldErr(spec, err)
		}
		r, err := p.ReadRange(n)
		if err != nil {
			return fieldErr(spec, err)
		}
		s, err := octseq.StrFromUTF8(r)
		if err != nil {
			return fieldErr(spec, err)
		}
		fmt.Fprintf(w, "%s%s: %q\n", indent, spec.Name, s.String())

	case kindBlock:
		n, err := fieldLen(p, spec)
		if err != nil {
			return fieldErr(spec, err)
		}
		fmt.Fprintf(w, "%s%s: block (%d bytes)\n", indent, spec.Name, n)
		err = p.ReadBlock(n, func(p *parser) error {
			return walkFields(w, p, spec.Fields, indent+"  ")
		})
		if err != nil {
			return fieldErr(spec, err)
		}

	case kindRest:
		r, err := p.ReadRange(p.Remaining())
		if err != nil {
			return fieldErr(spec, err)
		}
		fmt.Fprintf(w, "%s%s: %d bytes [% x]\n", indent, spec.Name, len(r), []byte(r))
	}
	return nil
}

// fieldLen resolves the length of a bytes/str/block field, consuming the
// length prefix when the layout declares one.
func fieldLen(p *parser, spec fieldSpec) (int, error) {
	switch spec.LenPrefix {
	case prefixU8:
		v, err := p.ReadUint8()
		return int(v), err
	case prefixU16:
		if spec.ByteOrder == orderLE {
			v, err := p.ReadUint16LE()
			return int(v), err
		}
		v, err := p.ReadUint16()
		return int(v), err
	case prefixU32:
		if spec.ByteOrder == orderLE {
			v, err := p.ReadUint32LE()
			return int(v), err
		}
		v, err := p.ReadUint32()
		return int(v), err
	default:
		return spec.Size, nil
	}
}

func fieldErr(spec fieldSpec, err error) error {
	return fmt.Errorf("field %s: %w", spec.Name, err)
}

func dumpTLV(w io.Writer, data []byte) error {
	fields, err := tlv.DecodeFields(data)
	if err != nil {
		return fmt.Errorf("decode tlv: %w", err)
	}
	fmt.Fprintf(w, "tlv payload (%d bytes, %d fields)\n", len(data), len(fields))
	for _, f := range fields {
		fmt.Fprintf(w, "field %d: %s\n", f.ID, renderFieldValue(f))
	}
	return nil
}

// renderFieldValue decodes through the typed accessors; anything that does
// not decode cleanly falls back to a raw hex rendering rather than failing
// the dump.
func renderFieldValue(f tlv.Field) string {
	switch f.Type {
	case tlv.TypeU8:
		if v, err := f.Uint8(); err == nil {
			return fmt.Sprintf("u8 %d", v)
		}
	case tlv.TypeU16:
		if v, err := f.Uint16(); err == nil {
			return fmt.Sprintf("u16 %d", v)
		}
	case tlv.TypeU32:
		if v, err := f.Uint32(); err == nil {
			return fmt.Sprintf("u32 %d", v)
		}
	case tlv.TypeU64:
		if v, err := f.Uint64(); err == nil {
			return fmt.Sprintf("u64 %d", v)
		}
	case tlv.TypeBool:
		if v, err := f.Bool(); err == nil {
			return fmt.Sprintf("bool %t", v)
		}
	case tlv.TypeString:
		if s, err := f.String(); err == nil {
			return fmt.Sprintf("string %q", s)
		}
	case tlv.TypeBytes:
		if b, err := f.Bytes(); err == nil {
			return fmt.Sprintf("bytes [% x]", b)
		}
	}
	return fmt.Sprintf("type=%d raw [% x]", f.Type, f.Value)
}
