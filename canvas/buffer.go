package canvas

import (
	"grux/core"
	"grux/grid"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/cellbuf"
)

// Buffer implements grid.Grid[rune] on top of a *cellbuf.Buffer. Every cell
// written through Set carries the buffer's current style.
//
// Only single-column runes are accepted, so one grid cell is always one
// buffer cell.
type Buffer struct {
	buf   *cellbuf.Buffer
	style cellbuf.Style
}

var _ grid.Grid[rune] = (*Buffer)(nil)

// NewBuffer wraps buf. The lipgloss style is converted once; later changes
// to the lipgloss value have no effect until SetStyle is called.
func NewBuffer(buf *cellbuf.Buffer, style lipgloss.Style) *Buffer {
	return &Buffer{buf: buf, style: lipglossToStyle(style)}
}

// SetStyle changes the style applied by subsequent writes.
func (b *Buffer) SetStyle(style lipgloss.Style) {
	b.style = lipglossToStyle(style)
}

// Unwrap returns the underlying cell buffer.
func (b *Buffer) Unwrap() *cellbuf.Buffer {
	return b.buf
}

// Size returns the width and height of the underlying buffer.
func (b *Buffer) Size() (width, height int) {
	return b.buf.Width(), b.buf.Height()
}

// Set places r at p with the buffer's style.
func (b *Buffer) Set(p core.Point, r rune) error {
	width, height := b.Size()
	if err := grid.CheckBounds(p, width, height); err != nil {
		return err
	}
	if err := grid.CheckRune(r); err != nil {
		return err
	}

	b.buf.SetCell(p.X, p.Y, &cellbuf.Cell{
		Rune:  r,
		Width: 1,
		Style: b.style,
	})
	return nil
}

// Get returns the rune at p. Cells that were never written read as ' '.
func (b *Buffer) Get(p core.Point) (rune, error) {
	width, height := b.Size()
	if err := grid.CheckBounds(p, width, height); err != nil {
		return 0, err
	}
	return cellRune(b.buf.Cell(p.X, p.Y)), nil
}

// WriteTo renders the buffer as plain text without styling.
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	width, height := b.Size()
	return grid.WriteRows(w, height, func(buf []byte, y int) []byte {
		for x := 0; x < width; x++ {
			buf = grid.AppendCell(buf, cellRune(b.buf.Cell(x, y)))
		}
		return buf
	})
}

// Styled renders the buffer with ANSI styling. Rows are separated by "\r\n"
// as cellbuf does for raw terminals; there is no trailing separator.
func (b *Buffer) Styled() string {
	return cellbuf.Render(b.buf)
}

func cellRune(c *cellbuf.Cell) rune {
	if c == nil || c.Width == 0 || c.Rune < ' ' {
		return ' '
	}
	return c.Rune
}

func lipglossToStyle(ls lipgloss.Style) cellbuf.Style {
	var cs cellbuf.Style
	if _, isNoColor := ls.GetForeground().(lipgloss.NoColor); !isNoColor {
		cs.Fg = ls.GetForeground()
	}
	if _, isNoColor := ls.GetBackground().(lipgloss.NoColor); !isNoColor {
		cs.Bg = ls.GetBackground()
	}
	if ls.GetBold() {
		cs.Bold(true)
	}
	if ls.GetFaint() {
		cs.Faint(true)
	}
	if ls.GetItalic() {
		cs.Italic(true)
	}
	if ls.GetUnderline() {
		cs.Underline(true)
	}
	if ls.GetStrikethrough() {
		cs.Strikethrough(true)
	}
	if ls.GetReverse() {
		cs.Reverse(true)
	}
	return cs
}
