package breakout

import (
	"bufio"
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/resource"
)

//go:embed levels/*.lvl
var builtinLevels embed.FS

// Level file errors. All of them abort loading; no partial level is built.
var (
	ErrEmptyLevel = errors.New("breakout: empty level")
	ErrRaggedRow  = errors.New("breakout: rows differ in length")
	ErrBadTile    = errors.New("breakout: bad tile")
)

// Tile values.
const (
	TileEmpty = 0
	TileSolid = 1
)

// Brick tints by tile value. Breakable values not listed here are white.
var tileTints = map[int]core.Color{
	TileSolid: core.RGB(0.8, 0.8, 0.7),
	2:         core.RGB(0.2, 0.6, 1.0),
	3:         core.RGB(0.0, 0.7, 0.0),
	4:         core.RGB(0.8, 0.8, 0.4),
	5:         core.RGB(1.0, 0.5, 0.0),
}

// TileTint returns the brick color for a tile value.
func TileTint(tile int) core.Color {
	if c, ok := tileTints[tile]; ok {
		return c
	}
	return core.White
}

// LevelSpec is a parsed level file. The game keeps it so a reset can rebuild
// the level from scratch.
type LevelSpec struct {
	ID   string // File stem, used as the high score key
	Name string
	Grid [][]int
}

// Bricks counts non-empty tiles in the grid.
func (s LevelSpec) Bricks() (breakable, solid int) {
	for _, row := range s.Grid {
		for _, v := range row {
			switch {
			case v == TileSolid:
				solid++
			case v > TileSolid:
				breakable++
			}
		}
	}
	return breakable, solid
}

// Level is the ordered set of bricks built from a LevelSpec.
// Destroyed bricks stay in Bricks so indices are stable.
type Level struct {
	ID     string
	Name   string
	Bricks []Entity
}

// Textures are the resolved handles the game draws with.
type Textures struct {
	Background resource.Handle
	Block      resource.Handle
	BlockSolid resource.Handle
	Paddle     resource.Handle
	Face       resource.Handle
}

// ResolveTextures looks up every texture the game needs.
func ResolveTextures(m *resource.Manager) (Textures, error) {
	var t Textures
	for _, f := range []struct {
		name string
		dst  *resource.Handle
	}{
		{resource.Background, &t.Background},
		{resource.Block, &t.Block},
		{resource.BlockSolid, &t.BlockSolid},
		{resource.Paddle, &t.Paddle},
		{resource.Face, &t.Face},
	} {
		h, err := m.Lookup(f.name)
		if err != nil {
			return Textures{}, err
		}
		*f.dst = h
	}
	return t, nil
}

// NewLevel tiles the grid over a width x height region. Each brick is
// width/cols by height/rows pixels. brickPoints is multiplied by the tile
// value to score a breakable brick.
func NewLevel(spec LevelSpec, width, height float32, tex Textures, brickPoints int) *Level {
	lvl := &Level{ID: spec.ID, Name: spec.Name}
	if len(spec.Grid) == 0 || len(spec.Grid[0]) == 0 {
		return lvl
	}

	rows := len(spec.Grid)
	cols := len(spec.Grid[0])
	unit := core.V2(width/float32(cols), height/float32(rows))

	for y, row := range spec.Grid {
		for x, v := range row {
			if v == TileEmpty {
				continue
			}
			brick := Entity{
				Position: core.V2(unit.X*float32(x), unit.Y*float32(y)),
				Size:     unit,
				Tint:     TileTint(v),
				Texture:  tex.Block,
				Points:   v * brickPoints,
			}
			if v == TileSolid {
				brick.Solid = true
				brick.Texture = tex.BlockSolid
				brick.Points = 0
			}
			lvl.Bricks = append(lvl.Bricks, brick)
		}
	}
	return lvl
}

// Completed reports whether the level had breakable bricks and all of them are gone.
func (l *Level) Completed() bool {
	breakable := 0
	for _, b := range l.Bricks {
		if b.Solid {
			continue
		}
		breakable++
		if !b.Destroyed {
			return false
		}
	}
	return breakable > 0
}

// Remaining counts breakable bricks not yet destroyed.
func (l *Level) Remaining() int {
	n := 0
	for _, b := range l.Bricks {
		if !b.Solid && !b.Destroyed {
			n++
		}
	}
	return n
}

// ParseGrid reads rows of whitespace-separated non-negative integers.
// Blank lines are skipped. Every row must have the same length.
func ParseGrid(r io.Reader) ([][]int, error) {
	var grid [][]int
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		row := make([]int, len(fields))
		for i, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil || v < 0 {
				return nil, fmt.Errorf("%w %q on line %d", ErrBadTile, f, line)
			}
			row[i] = v
		}
		if len(grid) > 0 && len(row) != len(grid[0]) {
			return nil, fmt.Errorf("%w: line %d has %d tiles, expected %d", ErrRaggedRow, line, len(row), len(grid[0]))
		}
		grid = append(grid, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("breakout: read level: %w", err)
	}
	if len(grid) == 0 {
		return nil, ErrEmptyLevel
	}
	return grid, nil
}

// ParseLevel parses a level file named file.
func ParseLevel(file string, r io.Reader) (LevelSpec, error) {
	grid, err := ParseGrid(r)
	if err != nil {
		return LevelSpec{}, fmt.Errorf("%s: %w", file, err)
	}
	id := strings.TrimSuffix(path.Base(filepath.ToSlash(file)), path.Ext(file))
	return LevelSpec{ID: id, Name: levelName(id), Grid: grid}, nil
}

// LoadLevelFile reads and parses a single level file from disk.
func LoadLevelFile(file string) (LevelSpec, error) {
	f, err := os.Open(file)
	if err != nil {
		return LevelSpec{}, fmt.Errorf("breakout: open level: %w", err)
	}
	defer f.Close()
	return ParseLevel(file, f)
}

// LoadLevels loads the configured level files in order, from cfg.Dir or,
// when it is empty, from the built-in set.
func LoadLevels(cfg config.LevelsConfig) ([]LevelSpec, error) {
	var fsys fs.FS
	if cfg.Dir != "" {
		fsys = os.DirFS(cfg.Dir)
	} else {
		sub, err := fs.Sub(builtinLevels, "levels")
		if err != nil {
			return nil, err
		}
		fsys = sub
	}

	if len(cfg.Files) == 0 {
		return nil, fmt.Errorf("breakout: no level files configured")
	}

	specs := make([]LevelSpec, 0, len(cfg.Files))
	for _, name := range cfg.Files {
		spec, err := loadFromFS(fsys, name)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}
	return specs, nil
}

// BuiltinLevelFiles lists the embedded level files.
func BuiltinLevelFiles() []string {
	entries, err := builtinLevels.ReadDir("levels")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func loadFromFS(fsys fs.FS, name string) (LevelSpec, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return LevelSpec{}, fmt.Errorf("breakout: open level: %w", err)
	}
	defer f.Close()
	return ParseLevel(name, f)
}

// levelName turns a file stem like "space_invader" into "Space Invader".
func levelName(id string) string {
	words := strings.FieldsFunc(id, func(r rune) bool { return r == '_' || r == '-' })
	for i, w := range words {
		r, n := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + w[n:]
	}
	return strings.Join(words, " ")
}
