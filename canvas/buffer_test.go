package canvas

import (
	"grux/art"
	"grux/core"
	"grux/grid"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/cellbuf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBuffer(width, height int) *Buffer {
	return NewBuffer(cellbuf.NewBuffer(width, height), lipgloss.NewStyle())
}

func TestBuffer_Blank(t *testing.T) {
	b := newTestBuffer(3, 3)

	out, err := grid.String(b)
	require.NoError(t, err)
	assert.Equal(t, "   \n   \n   \n", out)
}

func TestBuffer_GetSet(t *testing.T) {
	b := newTestBuffer(20, 10)

	tests := []struct {
		name  string
		point core.Point
		char  rune
		valid bool
	}{
		{"Origin", core.Point{X: 0, Y: 0}, '╭', true},
		{"Center", core.Point{X: 10, Y: 5}, '┼', true},
		{"Bottom right", core.Point{X: 19, Y: 9}, '╯', true},
		{"Out of bounds X", core.Point{X: 20, Y: 5}, 'X', false},
		{"Out of bounds Y", core.Point{X: 10, Y: 10}, 'Y', false},
		{"Negative X", core.Point{X: -1, Y: 5}, 'N', false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := b.Set(tt.point, tt.char)
			if !tt.valid {
				assert.ErrorIs(t, err, grid.ErrOutOfBounds)
				return
			}
			require.NoError(t, err)

			got, err := b.Get(tt.point)
			require.NoError(t, err)
			assert.Equal(t, tt.char, got)
		})
	}
}

func TestBuffer_RejectsWideRune(t *testing.T) {
	b := newTestBuffer(4, 1)

	assert.ErrorIs(t, b.Set(core.Point{X: 0, Y: 0}, '世'), grid.ErrInvalidCell)

	got, err := b.Get(core.Point{X: 1, Y: 0})
	require.NoError(t, err)
	assert.Equal(t, ' ', got)
}

func TestBuffer_BorderRect(t *testing.T) {
	b := newTestBuffer(4, 3)

	rect, err := art.Double.Rect(4, 3)
	require.NoError(t, err)
	require.NoError(t, rect.Draw(b, core.Point{}))

	out, err := grid.String(b)
	require.NoError(t, err)
	assert.Equal(t, "╔══╗\n║  ║\n╚══╝\n", out)
}

func TestBuffer_Style(t *testing.T) {
	b := NewBuffer(cellbuf.NewBuffer(2, 1), lipgloss.NewStyle().Bold(true))
	require.NoError(t, b.Set(core.Point{X: 0, Y: 0}, '#'))

	b.SetStyle(lipgloss.NewStyle().Italic(true))
	require.NoError(t, b.Set(core.Point{X: 1, Y: 0}, '#'))

	first := b.Unwrap().Cell(0, 0)
	second := b.Unwrap().Cell(1, 0)
	require.NotNil(t, first)
	require.NotNil(t, second)

	assert.True(t, first.Style.Attrs.Contains(cellbuf.BoldAttr))
	assert.False(t, first.Style.Attrs.Contains(cellbuf.ItalicAttr))
	assert.True(t, second.Style.Attrs.Contains(cellbuf.ItalicAttr))
}

func TestBuffer_Styled(t *testing.T) {
	b := NewBuffer(cellbuf.NewBuffer(3, 2), lipgloss.NewStyle().Bold(true))
	fill, err := art.NewFillRect(3, 2, '█')
	require.NoError(t, err)
	require.NoError(t, fill.Draw(b, core.Point{}))

	out := b.Styled()
	assert.Contains(t, out, "\x1b[")
	assert.Contains(t, out, "\r\n")
	assert.Equal(t, 6, strings.Count(out, "█"))

	plain, err := grid.String(b)
	require.NoError(t, err)
	assert.Equal(t, "███\n███\n", plain)
}
