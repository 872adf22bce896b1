package grid

import (
	"grux/core"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewText(t *testing.T) {
	tests := []struct {
		name       string
		s          string
		width      int
		wantHeight int
		wantErr    error
	}{
		{"Square", "012345678", 3, 3, nil},
		{"Single row", "abcd", 4, 1, nil},
		{"Empty", "", 5, 0, nil},
		{"Box drawing", "╔══╗╚══╝", 4, 2, nil},
		{"Ragged", "abcde", 3, 0, ErrInvalidSize},
		{"Zero width", "abc", 0, 0, ErrInvalidSize},
		{"Newline", "ab\ncd", 5, 0, ErrInvalidCell},
		{"Wide rune", "日本", 2, 0, ErrInvalidCell},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewText(tt.s, tt.width)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)

			w, h := g.Size()
			assert.Equal(t, tt.width, w)
			assert.Equal(t, tt.wantHeight, h)
			assert.Equal(t, tt.s, g.String())
		})
	}
}

func TestText_OffsetMapping(t *testing.T) {
	g, err := NewText("012345678", 3)
	require.NoError(t, err)

	require.NoError(t, g.Set(core.Point{X: 1, Y: 1}, '9'))
	assert.Equal(t, "012395678", g.String())

	r, err := g.Get(core.Point{X: 2, Y: 2})
	require.NoError(t, err)
	assert.Equal(t, '8', r)

	out, err := String(g)
	require.NoError(t, err)
	assert.Equal(t, "012\n395\n678\n", out)
}

func TestText_SetRejectsWideRune(t *testing.T) {
	g, err := BlankText(2, 2, ' ')
	require.NoError(t, err)

	assert.ErrorIs(t, g.Set(core.Point{X: 0, Y: 0}, '界'), ErrInvalidCell)
	assert.ErrorIs(t, g.Set(core.Point{X: 0, Y: 0}, '\t'), ErrInvalidCell)
	assert.Equal(t, "    ", g.String())
}

func TestBlankText_InvalidSize(t *testing.T) {
	_, err := BlankText(0, 2, ' ')
	assert.ErrorIs(t, err, ErrInvalidSize)

	_, err = BlankText(2, -1, ' ')
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestText_ZeroValue(t *testing.T) {
	var txt Text

	w, h := txt.Size()
	assert.Equal(t, 0, w)
	assert.Equal(t, 0, h)

	assert.ErrorIs(t, txt.Set(core.Point{X: 0, Y: 0}, 'x'), ErrOutOfBounds)
	_, err := txt.Get(core.Point{X: 0, Y: 0})
	assert.ErrorIs(t, err, ErrOutOfBounds)

	out, err := String(&txt)
	require.NoError(t, err)
	assert.Empty(t, out)
}
