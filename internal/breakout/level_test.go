package breakout

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/resource"
)

func testTextures(t *testing.T) Textures {
	t.Helper()
	tex, err := ResolveTextures(resource.Default())
	if err != nil {
		t.Fatalf("ResolveTextures: %v", err)
	}
	return tex
}

func TestParseGrid(t *testing.T) {
	in := "1 1  1\n\n  2 0 5 \n3\t4 0\n"
	grid, err := ParseGrid(strings.NewReader(in))
	if err != nil {
		t.Fatalf("ParseGrid error = %v", err)
	}

	want := [][]int{{1, 1, 1}, {2, 0, 5}, {3, 4, 0}}
	if len(grid) != len(want) {
		t.Fatalf("got %d rows, expected %d", len(grid), len(want))
	}
	for y := range want {
		for x := range want[y] {
			if grid[y][x] != want[y][x] {
				t.Errorf("grid[%d][%d] = %d, expected %d", y, x, grid[y][x], want[y][x])
			}
		}
	}
}

func TestParseGridErrors(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    error
		mention string
	}{
		{"empty file", "", ErrEmptyLevel, ""},
		{"only blank lines", "\n   \n\t\n", ErrEmptyLevel, ""},
		{"ragged row", "1 1 1\n2 2\n", ErrRaggedRow, "line 2"},
		{"ragged after blank", "1 1\n\n2 2 2\n", ErrRaggedRow, "line 3"},
		{"word", "1 x 1\n", ErrBadTile, "line 1"},
		{"negative", "1 1\n1 -1\n", ErrBadTile, "line 2"},
		{"float", "1.5\n", ErrBadTile, "line 1"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseGrid(strings.NewReader(tc.in))
			if !errors.Is(err, tc.want) {
				t.Fatalf("error = %v, expected %v", err, tc.want)
			}
			if tc.mention != "" && !strings.Contains(err.Error(), tc.mention) {
				t.Errorf("error %q should mention %q", err, tc.mention)
			}
		})
	}
}

func TestNewLevelTilesRegion(t *testing.T) {
	tex := testTextures(t)
	grid := [][]int{
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		{2, 2, 2, 2, 2, 2, 2, 2, 2, 2},
		{3, 3, 3, 0, 0, 0, 0, 3, 3, 3},
		{4, 4, 4, 4, 4, 4, 4, 4, 4, 4},
		{5, 5, 5, 5, 5, 5, 5, 5, 5, 9},
	}

	lvl := NewLevel(LevelSpec{ID: "t", Name: "T", Grid: grid}, 800, 300, tex, 10)

	if got := len(lvl.Bricks); got != 46 {
		t.Fatalf("got %d bricks, expected 46 (4 empty tiles)", got)
	}
	for i, b := range lvl.Bricks {
		if b.Size != core.V2(80, 60) {
			t.Fatalf("brick %d size = %v, expected 80x60", i, b.Size)
		}
	}

	for i := 0; i < 10; i++ {
		b := lvl.Bricks[i]
		if !b.Solid || b.Texture != tex.BlockSolid || b.Points != 0 {
			t.Errorf("first row brick %d = %+v, expected solid block_solid", i, b)
		}
		if b.Position != core.V2(float32(i)*80, 0) {
			t.Errorf("first row brick %d at %v", i, b.Position)
		}
	}

	// Row 2 skips the four empty tiles: brick 23 is column 7.
	if got := lvl.Bricks[23].Position; got != core.V2(560, 120) {
		t.Errorf("brick after the gap at %v, expected (560, 120)", got)
	}

	blue := lvl.Bricks[10]
	if blue.Solid || blue.Texture != tex.Block || blue.Tint != core.RGB(0.2, 0.6, 1.0) || blue.Points != 20 {
		t.Errorf("tile 2 brick = %+v", blue)
	}
	last := lvl.Bricks[len(lvl.Bricks)-1]
	if last.Tint != core.White || last.Points != 90 {
		t.Errorf("tile 9 brick = %+v, expected white worth 90", last)
	}
}

func TestTileTint(t *testing.T) {
	tests := []struct {
		tile int
		want core.Color
	}{
		{1, core.RGB(0.8, 0.8, 0.7)},
		{2, core.RGB(0.2, 0.6, 1.0)},
		{3, core.RGB(0.0, 0.7, 0.0)},
		{4, core.RGB(0.8, 0.8, 0.4)},
		{5, core.RGB(1.0, 0.5, 0.0)},
		{6, core.White},
	}

	for _, tc := range tests {
		if got := TileTint(tc.tile); got != tc.want {
			t.Errorf("TileTint(%d) = %v, expected %v", tc.tile, got, tc.want)
		}
	}
}

func TestLevelCompletion(t *testing.T) {
	tex := testTextures(t)
	lvl := NewLevel(LevelSpec{Grid: [][]int{{1, 2, 3}}}, 300, 100, tex, 10)

	if lvl.Completed() || lvl.Remaining() != 2 {
		t.Fatalf("fresh level: Completed=%v Remaining=%d", lvl.Completed(), lvl.Remaining())
	}
	lvl.Bricks[1].Destroyed = true
	if lvl.Completed() || lvl.Remaining() != 1 {
		t.Errorf("one left: Completed=%v Remaining=%d", lvl.Completed(), lvl.Remaining())
	}
	lvl.Bricks[2].Destroyed = true
	if !lvl.Completed() || lvl.Remaining() != 0 {
		t.Errorf("cleared: Completed=%v Remaining=%d", lvl.Completed(), lvl.Remaining())
	}

	solidOnly := NewLevel(LevelSpec{Grid: [][]int{{1, 0, 1}}}, 300, 100, tex, 10)
	if solidOnly.Completed() {
		t.Error("a level with nothing breakable can never be completed")
	}
}

func TestParseLevelName(t *testing.T) {
	tests := []struct {
		file, id, name string
	}{
		{"space_invader.lvl", "space_invader", "Space Invader"},
		{"dir/two-words.lvl", "two-words", "Two Words"},
		{"émeute.lvl", "émeute", "Émeute"},
	}

	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			spec, err := ParseLevel(tt.file, strings.NewReader("2 2\n"))
			if err != nil {
				t.Fatal(err)
			}
			if spec.ID != tt.id || spec.Name != tt.name {
				t.Errorf("ParseLevel(%q) = %q/%q, expected %q/%q", tt.file, spec.ID, spec.Name, tt.id, tt.name)
			}
		})
	}
}

func TestLevelSpecBricks(t *testing.T) {
	spec := LevelSpec{Grid: [][]int{{1, 0, 2}, {3, 1, 0}}}
	breakable, solid := spec.Bricks()
	if breakable != 2 || solid != 2 {
		t.Errorf("Bricks() = %d, %d; expected 2, 2", breakable, solid)
	}
}

func TestLoadBuiltinLevels(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	specs, err := LoadLevels(cfg.Levels)
	if err != nil {
		t.Fatalf("LoadLevels error = %v", err)
	}
	if len(specs) != len(cfg.Levels.Files) {
		t.Fatalf("loaded %d levels, expected %d", len(specs), len(cfg.Levels.Files))
	}

	wantIDs := []string{"standard", "gaps", "space_invader", "bounce_galore"}
	for i, id := range wantIDs {
		if specs[i].ID != id {
			t.Errorf("level %d ID = %q, expected %q", i, specs[i].ID, id)
		}
		if b, _ := specs[i].Bricks(); b == 0 {
			t.Errorf("level %q has no breakable bricks", id)
		}
	}
	if specs[2].Name != "Space Invader" {
		t.Errorf("Name = %q, expected %q", specs[2].Name, "Space Invader")
	}

	if got := len(BuiltinLevelFiles()); got != 4 {
		t.Errorf("BuiltinLevelFiles() returned %d files, expected 4", got)
	}
}

func TestLoadLevelsFromDir(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	write("one.lvl", "2 2\n1 1\n")
	write("broken.lvl", "2 2\n1\n")

	specs, err := LoadLevels(config.LevelsConfig{Dir: dir, Files: []string{"one.lvl"}})
	if err != nil {
		t.Fatalf("LoadLevels error = %v", err)
	}
	if len(specs) != 1 || specs[0].ID != "one" || len(specs[0].Grid) != 2 {
		t.Errorf("specs = %+v", specs)
	}

	_, err = LoadLevels(config.LevelsConfig{Dir: dir, Files: []string{"one.lvl", "broken.lvl"}})
	if !errors.Is(err, ErrRaggedRow) || !strings.Contains(err.Error(), "broken.lvl") {
		t.Errorf("broken file error = %v, expected ErrRaggedRow naming the file", err)
	}

	if _, err := LoadLevels(config.LevelsConfig{Dir: dir, Files: []string{"missing.lvl"}}); err == nil {
		t.Error("missing file should fail")
	}
	if _, err := LoadLevels(config.LevelsConfig{Dir: dir}); err == nil {
		t.Error("empty file list should fail")
	}

	spec, err := LoadLevelFile(filepath.Join(dir, "one.lvl"))
	if err != nil || spec.ID != "one" {
		t.Errorf("LoadLevelFile = %+v, %v", spec, err)
	}
}
