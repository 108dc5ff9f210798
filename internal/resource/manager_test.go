package resource

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultTable(t *testing.T) {
	m := Default()

	if err := m.Require(Background, Block, BlockSolid, Paddle, Face); err != nil {
		t.Fatalf("default table is missing a texture: %v", err)
	}
	h := m.MustLookup(BlockSolid)
	if got := m.Texture(h).Rune(); got != '█' {
		t.Errorf("block_solid glyph = %q, expected '█'", got)
	}
}

func TestHandlesFollowListOrder(t *testing.T) {
	m, err := New([]Texture{{"a", "1"}, {"b", "2"}})
	if err != nil {
		t.Fatal(err)
	}
	if h, _ := m.Lookup("b"); h != 1 {
		t.Errorf("Lookup(b) = %d, expected 1", h)
	}
	if m.Len() != 2 {
		t.Errorf("Len() = %d, expected 2", m.Len())
	}
	if got := m.Texture(Handle(5)); got != (Texture{}) {
		t.Errorf("out of range Texture() = %+v, expected zero", got)
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := Default().Lookup("nope")
	if !errors.Is(err, ErrUnknownTexture) {
		t.Errorf("Lookup(nope) error = %v, expected ErrUnknownTexture", err)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"empty table", "textures: []\n"},
		{"missing name", "textures:\n  - glyph: x\n"},
		{"missing glyph", "textures:\n  - name: block\n"},
		{"duplicate", "textures:\n  - {name: a, glyph: x}\n  - {name: a, glyph: y}\n"},
		{"not yaml", "textures: [\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.yaml)); !errors.Is(err, ErrBadTable) {
				t.Errorf("Parse() error = %v, expected ErrBadTable", err)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	write := func(name, data string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	full := write("textures.yaml", `textures:
  - {name: background, glyph: " "}
  - {name: block, glyph: "#"}
  - {name: block_solid, glyph: "@"}
  - {name: paddle, glyph: "="}
  - {name: face, glyph: "o"}
`)
	m, err := Load(full)
	if err != nil {
		t.Fatalf("Load error = %v", err)
	}
	if got := m.Texture(m.MustLookup(Block)).Rune(); got != '#' {
		t.Errorf("block glyph = %q, expected '#'", got)
	}

	partial := write("partial.yaml", "textures:\n  - {name: block, glyph: \"#\"}\n")
	if _, err := Load(partial); !errors.Is(err, ErrUnknownTexture) {
		t.Errorf("table without game textures: error = %v, expected ErrUnknownTexture", err)
	}

	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing file should fail")
	}
}
