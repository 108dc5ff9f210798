// Package resource owns the texture table. Entities refer to textures by
// Handle only; the Manager is read-only once built and may be shared.
package resource

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/textures.yaml
var defaultTexturesYAML []byte

// Texture names the game looks up.
const (
	Background = "background"
	Block      = "block"
	BlockSolid = "block_solid"
	Paddle     = "paddle"
	Face       = "face"
)

var (
	ErrUnknownTexture = errors.New("resource: unknown texture")
	ErrBadTable       = errors.New("resource: invalid texture table")
)

// Handle indexes the Manager's texture table. The zero Handle is the first texture.
type Handle int

// Texture is a named glyph.
type Texture struct {
	Name  string `yaml:"name"`
	Glyph string `yaml:"glyph"`
}

// Rune returns the first rune of the glyph.
func (t Texture) Rune() rune {
	r, _ := utf8.DecodeRuneInString(t.Glyph)
	return r
}

type table struct {
	Textures []Texture `yaml:"textures"`
}

// Manager maps texture names to handles.
type Manager struct {
	textures []Texture
	byName   map[string]Handle
}

// Load reads a texture table from path, or the embedded table when path is empty.
func Load(path string) (*Manager, error) {
	if path == "" {
		return Parse(defaultTexturesYAML)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("resource: read %s: %w", path, err)
	}
	m, err := Parse(data)
	if err == nil {
		err = m.Require(Background, Block, BlockSolid, Paddle, Face)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Default returns the embedded texture table.
func Default() *Manager {
	m, err := Parse(defaultTexturesYAML)
	if err != nil {
		panic(err)
	}
	return m
}

// Parse builds a Manager from YAML.
func Parse(data []byte) (*Manager, error) {
	var t table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadTable, err)
	}
	return New(t.Textures)
}

// New builds a Manager from an explicit list. Handles follow list order.
func New(textures []Texture) (*Manager, error) {
	if len(textures) == 0 {
		return nil, fmt.Errorf("%w: no textures", ErrBadTable)
	}
	m := &Manager{
		textures: make([]Texture, len(textures)),
		byName:   make(map[string]Handle, len(textures)),
	}
	for i, t := range textures {
		switch {
		case t.Name == "":
			return nil, fmt.Errorf("%w: entry %d has no name", ErrBadTable, i)
		case t.Glyph == "":
			return nil, fmt.Errorf("%w: texture %q has no glyph", ErrBadTable, t.Name)
		}
		if _, dup := m.byName[t.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate texture %q", ErrBadTable, t.Name)
		}
		m.textures[i] = t
		m.byName[t.Name] = Handle(i)
	}
	return m, nil
}

// Lookup resolves a texture name.
func (m *Manager) Lookup(name string) (Handle, error) {
	h, ok := m.byName[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownTexture, name)
	}
	return h, nil
}

// MustLookup is Lookup for names that are known to exist.
func (m *Manager) MustLookup(name string) Handle {
	h, err := m.Lookup(name)
	if err != nil {
		panic(err)
	}
	return h
}

// Texture returns the texture for h. Out of range handles return the zero Texture.
func (m *Manager) Texture(h Handle) Texture {
	if h < 0 || int(h) >= len(m.textures) {
		return Texture{}
	}
	return m.textures[h]
}

// Len reports the number of textures.
func (m *Manager) Len() int {
	return len(m.textures)
}

// Require checks that every name resolves.
func (m *Manager) Require(names ...string) error {
	for _, n := range names {
		if _, err := m.Lookup(n); err != nil {
			return err
		}
	}
	return nil
}
