package terminal

import (
	"grux/art"
	"grux/core"
	"grux/grid"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSimScreen(t *testing.T, width, height int) tcell.SimulationScreen {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, sim.Init())
	sim.SetSize(width, height)
	t.Cleanup(sim.Fini)
	return sim
}

func TestScreen_Blank(t *testing.T) {
	s := NewScreen(newSimScreen(t, 3, 3), tcell.StyleDefault)

	out, err := grid.String(s)
	require.NoError(t, err)
	assert.Equal(t, "   \n   \n   \n", out)
}

func TestScreen_GetSet(t *testing.T) {
	s := NewScreen(newSimScreen(t, 10, 5), tcell.StyleDefault)

	require.NoError(t, s.Set(core.Point{X: 9, Y: 4}, '#'))
	got, err := s.Get(core.Point{X: 9, Y: 4})
	require.NoError(t, err)
	assert.Equal(t, '#', got)

	assert.ErrorIs(t, s.Set(core.Point{X: 10, Y: 0}, '#'), grid.ErrOutOfBounds)
	assert.ErrorIs(t, s.Set(core.Point{X: 0, Y: 5}, '#'), grid.ErrOutOfBounds)
	assert.ErrorIs(t, s.Set(core.Point{X: 0, Y: 0}, '世'), grid.ErrInvalidCell)

	_, err = s.Get(core.Point{X: -1, Y: 0})
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)
}

func TestScreen_Style(t *testing.T) {
	sim := newSimScreen(t, 2, 1)
	style := tcell.StyleDefault.Foreground(tcell.ColorRed)
	s := NewScreen(sim, style)

	require.NoError(t, s.Set(core.Point{X: 0, Y: 0}, 'x'))
	_, _, got, _ := sim.GetContent(0, 0)
	assert.Equal(t, style, got)
}

func TestScreen_ShowAndClear(t *testing.T) {
	sim := newSimScreen(t, 4, 3)
	s := NewScreen(sim, tcell.StyleDefault)

	rect, err := art.Double.Rect(4, 3)
	require.NoError(t, err)
	require.NoError(t, rect.Draw(s, core.Point{}))
	s.Show()

	cells, width, height := sim.GetContents()
	require.Equal(t, 4, width)
	require.Equal(t, 3, height)
	assert.Equal(t, []rune{'╔'}, cells[0].Runes)

	out, err := grid.String(s)
	require.NoError(t, err)
	assert.Equal(t, "╔══╗\n║  ║\n╚══╝\n", out)

	s.Clear()
	out, err = grid.String(s)
	require.NoError(t, err)
	assert.Equal(t, "    \n    \n    \n", out)
}
