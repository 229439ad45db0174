package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
)

type byteOrder string

const (
	orderBE byteOrder = "be"
	orderLE byteOrder = "le"
)

type fieldKind string

const (
	kindU8      fieldKind = "u8"
	kindU16     fieldKind = "u16"
	kindU32     fieldKind = "u32"
	kindU64     fieldKind = "u64"
	kindU128    fieldKind = "u128"
	kindUvarint fieldKind = "uvarint"
	kindBytes   fieldKind = "bytes"
	kindStr     fieldKind = "str"
	kindBlock   fieldKind = "block"
	kindRest    fieldKind = "rest"
)

type lenPrefix string

const (
	prefixNone lenPrefix = ""
	prefixU8   lenPrefix = "u8"
	prefixU16  lenPrefix = "u16"
	prefixU32  lenPrefix = "u32"
)

// fileLayout mirrors the TOML shape; layout/fieldSpec carry the validated
// form the walker runs on.
type fileLayout struct {
	Name      string      `toml:"name"`
	ByteOrder string      `toml:"byte_order"`
	Fields    []fileField `toml:"field"`
}

type fileField struct {
	Name      string      `toml:"name"`
	Kind      string      `toml:"kind"`
	Size      int         `toml:"size"`
	ByteOrder string      `toml:"byte_order"`
	LenPrefix string      `toml:"len_prefix"`
	Fields    []fileField `toml:"field"`
}

type layout struct {
	Name      string
	ByteOrder byteOrder
	Fields    []fieldSpec
}

type fieldSpec struct {
	Name      string
	Kind      fieldKind
	Size      int
	ByteOrder byteOrder
	LenPrefix lenPrefix
	Fields    []fieldSpec
}

func loadLayout(path string) (layout, error) {
	var raw fileLayout
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return layout{}, fmt.Errorf("load layout: %w", err)
	}

	lay := layout{Name: strings.TrimSpace(raw.Name), ByteOrder: orderBE}
	if lay.Name == "" {
		return layout{}, errors.New("layout missing name")
	}
	if meta.IsDefined("byte_order") {
		order, err := parseByteOrder(raw.ByteOrder)
		if err != nil {
			return layout{}, err
		}
		lay.ByteOrder = order
	}
	if len(raw.Fields) == 0 {
		return layout{}, fmt.Errorf("layout %s: no fields", lay.Name)
	}
	fields, err := parseFieldSpecs(raw.Fields, lay.ByteOrder)
	if err != nil {
		return layout{}, fmt.Errorf("layout %s: %w", lay.Name, err)
	}
	lay.Fields = fields
	return lay, nil
}

func parseFieldSpecs(raw []fileField, inherited byteOrder) ([]fieldSpec, error) {
	specs := make([]fieldSpec, 0, len(raw))
	for i, rf := range raw {
		spec, err := parseFieldSpec(rf, inherited)
		if err != nil {
			return nil, err
		}
		if spec.Kind == kindRest && i != len(raw)-1 {
			return nil, fmt.Errorf("field %s: rest must be the last field", spec.Name)
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

func parseFieldSpec(rf fileField, inherited byteOrder) (fieldSpec, error) {
	name := strings.TrimSpace(rf.Name)
	if name == "" {
		return fieldSpec{}, fmt.Errorf("field missing name (kind %q)", rf.Kind)
	}
	spec := fieldSpec{Name: name, ByteOrder: inherited}

	if strings.TrimSpace(rf.ByteOrder) != "" {
		order, err := parseByteOrder(rf.ByteOrder)
		if err != nil {
			return fieldSpec{}, fmt.Errorf("field %s: %w", name, err)
		}
		spec.ByteOrder = order
	}

	kind := fieldKind(strings.ToLower(strings.TrimSpace(rf.Kind)))
	switch kind {
	case kindU8, kindU16, kindU32, kindU64, kindU128, kindUvarint:
		if rf.Size != 0 || rf.LenPrefix != "" || len(rf.Fields) != 0 {
			return fieldSpec{}, fmt.Errorf("field %s: kind %q takes no size, len_prefix or nested fields", name, kind)
		}
	case kindBytes, kindStr:
		if len(rf.Fields) != 0 {
			return fieldSpec{}, fmt.Errorf("field %s: kind %q takes no nested fields", name, kind)
		}
		if err := parseFieldLength(&spec, rf, name); err != nil {
			return fieldSpec{}, err
		}
	case kindBlock:
		if len(rf.Fields) == 0 {
			return fieldSpec{}, fmt.Errorf("field %s: block needs nested fields", name)
		}
		if err := parseFieldLength(&spec, rf, name); err != nil {
			return fieldSpec{}, err
		}
		children, err := parseFieldSpecs(rf.Fields, spec.ByteOrder)
		if err != nil {
			return fieldSpec{}, fmt.Errorf("field %s: %w", name, err)
		}
		spec.Fields = children
	case kindRest:
		if rf.Size != 0 || rf.LenPrefix != "" || len(rf.Fields) != 0 {
			return fieldSpec{}, fmt.Errorf("field %s: rest takes no size, len_prefix or nested fields", name)
		}
	default:
		return fieldSpec{}, fmt.Errorf("field %s: unknown kind %q", name, rf.Kind)
	}
	spec.Kind = kind
	return spec, nil
}

func parseFieldLength(spec *fieldSpec, rf fileField, name string) error {
	switch {
	case rf.Size < 0:
		return fmt.Errorf("field %s: negative size %d", name, rf.Size)
	case rf.Size > 0 && rf.LenPrefix != "":
		return fmt.Errorf("field %s: size and len_prefix are mutually exclusive", name)
	case rf.Size > 0:
		spec.Size = rf.Size
	case rf.LenPrefix != "":
		prefix, err := parseLenPrefix(rf.LenPrefix)
		if err != nil {
			return fmt.Errorf("field %s: %w", name, err)
		}
		spec.LenPrefix = prefix
	default:
		return fmt.Errorf("field %s: needs size or len_prefix", name)
	}
	return nil
}

func parseByteOrder(raw string) (byteOrder, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "be", "big", "big-endian":
		return orderBE, nil
	case "le", "little", "little-endian":
		return orderLE, nil
	default:
		return orderBE, fmt.Errorf("unknown byte_order %q", raw)
	}
}

func parseLenPrefix(raw string) (lenPrefix, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "u8":
		return prefixU8, nil
	case "u16":
		return prefixU16, nil
	case "u32":
		return prefixU32, nil
	default:
		return prefixNone, fmt.Errorf("unknown len_prefix %q", raw)
	}
}
