package main

import (
	"os"
	"path/filepath"
	"testing"
)

func writeLayout(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "layout.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write layout: %v", err)
	}
	return path
}

func TestLoadLayoutDefaultsAndOverrides(t *testing.T) {
	path := writeLayout(t, `
name = "frame"

[[field]]
name = "version"
kind = "u8"

[[field]]
name = "window"
kind = "u32"
byte_order = "le"

[[field]]
name = "tag"
kind = "str"
len_prefix = "u8"

[[field]]
name = "body"
kind = "block"
size = 6

  [[field.field]]
  name = "inner"
  kind = "u16"

  [[field.field]]
  name = "payload"
  kind = "rest"
`)

	lay, err := loadLayout(path)
	if err != nil {
		t.Fatalf("load layout: %v", err)
	}
	if lay.Name != "frame" {
		t.Fatalf("unexpected name: %q", lay.Name)
	}
	if lay.ByteOrder != orderBE {
		t.Fatalf("expected big-endian default, got %q", lay.ByteOrder)
	}
	if len(lay.Fields) != 4 {
		t.Fatalf("unexpected field count: %d", len(lay.Fields))
	}
	if lay.Fields[0].Kind != kindU8 || lay.Fields[0].ByteOrder != orderBE {
		t.Fatalf("unexpected version field: %+v", lay.Fields[0])
	}
	if lay.Fields[1].ByteOrder != orderLE {
		t.Fatalf("expected little-endian override: %+v", lay.Fields[1])
	}
	if lay.Fields[2].LenPrefix != prefixU8 {
		t.Fatalf("unexpected len_prefix: %+v", lay.Fields[2])
	}
	if lay.Fields[3].Kind != kindBlock || lay.Fields[3].Size != 6 {
		t.Fatalf("unexpected block field: %+v", lay.Fields[3])
	}
	if len(lay.Fields[3].Fields) != 2 || lay.Fields[3].Fields[1].Kind != kindRest {
		t.Fatalf("unexpected block children: %+v", lay.Fields[3].Fields)
	}
}

func TestLoadLayoutTopLevelByteOrder(t *testing.T) {
	path := writeLayout(t, `
name = "le-frame"
byte_order = "little"

[[field]]
name = "a"
kind = "u16"

[[field]]
name = "b"
kind = "u16"
byte_order = "be"
`)

	lay, err := loadLayout(path)
	if err != nil {
		t.Fatalf("load layout: %v", err)
	}
	if lay.ByteOrder != orderLE {
		t.Fatalf("expected little-endian default, got %q", lay.ByteOrder)
	}
	if lay.Fields[0].ByteOrder != orderLE {
		t.Fatalf("field did not inherit byte order: %+v", lay.Fields[0])
	}
	if lay.Fields[1].ByteOrder != orderBE {
		t.Fatalf("field override lost: %+v", lay.Fields[1])
	}
}

func TestLoadLayoutMissingName(t *testing.T) {
	path := writeLayout(t, `
[[field]]
name = "a"
kind = "u8"
`)
	if _, err := loadLayout(path); err == nil {
		t.Fatalf("expected error")
	}
}

func TestLoadLayoutUnknownKind(t *testing.T) {
	path := writeLayout(t, `
name = "frame"

[[field]]
name = "a"
kind = "float64"
`)
	if _, err := loadLayout(path); err == nil {
		t.Fatalf("expected error")
	}
}

func TestLoadLayoutBytesNeedsLength(t *testing.T) {
	path := writeLayout(t, `
name = "frame"

[[field]]
name = "a"
kind = "bytes"
`)
	if _, err := loadLayout(path); err == nil {
		t.Fatalf("expected error")
	}
}

func TestLoadLayoutSizeAndPrefixExclusive(t *testing.T) {
	path := writeLayout(t, `
name = "frame"

[[field]]
name = "a"
kind = "bytes"
size = 4
len_prefix = "u16"
`)
	if _, err := loadLayout(path); err == nil {
		t.Fatalf("expected error")
	}
}

func TestLoadLayoutRestMustBeLast(t *testing.T) {
	path := writeLayout(t, `
name = "frame"

[[field]]
name = "a"
kind = "rest"

[[field]]
name = "b"
kind = "u8"
`)
	if _, err := loadLayout(path); err == nil {
		t.Fatalf("expected error")
	}
}

func TestLoadLayoutIntegerTakesNoSize(t *testing.T) {
	path := writeLayout(t, `
name = "frame"

[[field]]
name = "a"
kind = "u32"
size = 4
`)
	if _, err := loadLayout(path); err == nil {
		t.Fatalf("expected error")
	}
}
