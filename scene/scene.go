// Package scene describes a grid and the shapes drawn on it in TOML.
//
// A scene file looks like:
//
//	width = 6
//	height = 4
//	fill = " "
//
//	[[shape]]
//	kind = "border"
//	width = 6
//	height = 4
//	style = "double"
//
//	[[shape]]
//	kind = "fill"
//	x = 1
//	y = 1
//	width = 4
//	height = 2
//	char = "░"
//
// Shapes are drawn in file order, so later shapes overwrite earlier ones.
package scene

import (
	"fmt"
	"grux/art"
	"grux/core"
	"grux/grid"
	"io"
	"os"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
)

// Shape kinds
const (
	KindBorder = "border"
	KindFill   = "fill"
	KindHLine  = "hline"
	KindVLine  = "vline"
)

// DefaultBorderStyle is used by border shapes that set neither style nor glyphs.
const DefaultBorderStyle = "single"

// Scene is a grid size, a background character and an ordered list of shapes.
type Scene struct {
	Width  int     `toml:"width"`
	Height int     `toml:"height"`
	Fill   string  `toml:"fill"`
	Shapes []Shape `toml:"shape"`
}

// Shape is one placed sprite. Which fields apply depends on Kind:
//   - border: Width, Height and either Style or Glyphs
//   - fill: Width, Height, Char
//   - hline, vline: Length, Char
type Shape struct {
	Kind   string `toml:"kind"`
	X      int    `toml:"x"`
	Y      int    `toml:"y"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Length int    `toml:"length"`
	Char   string `toml:"char"`
	Style  string `toml:"style"`
	Glyphs string `toml:"glyphs"`
}

// Load decodes and validates a scene. Keys that do not belong to a scene or
// shape are rejected.
func Load(r io.Reader) (*Scene, error) {
	var s Scene
	md, err := toml.NewDecoder(r).Decode(&s)
	if err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("decode scene: unknown key %q", undecoded[0].String())
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// LoadFile reads a scene from path.
func LoadFile(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	s, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Validate checks the grid size, the fill character and that every shape can
// be built. It does not check that shapes fit the grid; drawing reports that.
func (s *Scene) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("scene size %dx%d: %w", s.Width, s.Height, grid.ErrInvalidSize)
	}
	if _, err := s.FillRune(); err != nil {
		return err
	}
	_, err := s.Placements()
	return err
}

// FillRune returns the background character, ' ' when unset.
func (s *Scene) FillRune() (rune, error) {
	if s.Fill == "" {
		return ' ', nil
	}
	r, err := singleRune(s.Fill)
	if err != nil {
		return 0, fmt.Errorf("fill: %w", err)
	}
	return r, nil
}

// Placements builds a sprite for every shape, in order.
func (s *Scene) Placements() ([]art.Placement[rune], error) {
	placements := make([]art.Placement[rune], 0, len(s.Shapes))
	for i, sh := range s.Shapes {
		sprite, err := sh.Sprite()
		if err != nil {
			return nil, fmt.Errorf("shape %d: %w", i, err)
		}
		placements = append(placements, art.Placement[rune]{
			Sprite: sprite,
			Origin: core.Point{X: sh.X, Y: sh.Y},
		})
	}
	return placements, nil
}

// NewArray allocates a grid of the scene's size filled with its fill
// character.
func (s *Scene) NewArray() (*grid.Array[rune], error) {
	fill, err := s.FillRune()
	if err != nil {
		return nil, err
	}
	return grid.NewArray(s.Width, s.Height, fill)
}

// Draw stamps every shape onto g in order and stops at the first error.
func (s *Scene) Draw(g grid.Writer[rune]) error {
	placements, err := s.Placements()
	if err != nil {
		return err
	}
	return art.DrawAll(g, placements...)
}

// Sprite builds the sprite described by the shape.
func (sh Shape) Sprite() (art.Sprite[rune], error) {
	switch sh.Kind {
	case KindBorder:
		style, err := sh.borderStyle()
		if err != nil {
			return nil, err
		}
		rect, err := style.Rect(sh.Width, sh.Height)
		if err != nil {
			return nil, err
		}
		return rect, nil

	case KindFill:
		r, err := sh.char()
		if err != nil {
			return nil, err
		}
		rect, err := art.NewFillRect(sh.Width, sh.Height, r)
		if err != nil {
			return nil, err
		}
		return rect, nil

	case KindHLine, KindVLine:
		r, err := sh.char()
		if err != nil {
			return nil, err
		}
		build := art.HorizontalLine[rune]
		if sh.Kind == KindVLine {
			build = art.VerticalLine[rune]
		}
		line, err := build(sh.Length, r)
		if err != nil {
			return nil, err
		}
		return line, nil

	case "":
		return nil, fmt.Errorf("missing kind")
	default:
		return nil, fmt.Errorf("unknown kind %q", sh.Kind)
	}
}

func (sh Shape) borderStyle() (art.BorderStyle, error) {
	if sh.Glyphs != "" {
		if sh.Style != "" {
			return art.BorderStyle{}, fmt.Errorf("border sets both style %q and glyphs", sh.Style)
		}
		return art.ParseStyle(sh.Glyphs)
	}

	name := sh.Style
	if name == "" {
		name = DefaultBorderStyle
	}
	style, ok := art.LookupStyle(name)
	if !ok {
		return art.BorderStyle{}, fmt.Errorf("unknown border style %q (known: %v)", name, art.StyleNames())
	}
	return style, nil
}

func (sh Shape) char() (rune, error) {
	r, err := singleRune(sh.Char)
	if err != nil {
		return 0, fmt.Errorf("%s char: %w", sh.Kind, err)
	}
	return r, nil
}

func singleRune(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%w: %q is not a single character", grid.ErrInvalidCell, s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if err := grid.CheckRune(r); err != nil {
		return 0, err
	}
	return r, nil
}
