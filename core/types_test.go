package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBounds_Contains(t *testing.T) {
	b := Rect(Point{X: 1, Y: 1}, 2, 3)

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"Min corner", Point{X: 1, Y: 1}, true},
		{"Last cell", Point{X: 2, Y: 3}, true},
		{"Max X exclusive", Point{X: 3, Y: 1}, false},
		{"Max Y exclusive", Point{X: 1, Y: 4}, false},
		{"Left of min", Point{X: 0, Y: 2}, false},
		{"Negative", Point{X: -1, Y: -1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, b.Contains(tt.p))
		})
	}
}

func TestBounds_Size(t *testing.T) {
	b := Rect(Point{X: 2, Y: 5}, 4, 3)
	assert.Equal(t, 4, b.Width())
	assert.Equal(t, 3, b.Height())
	assert.False(t, b.Empty())
	assert.True(t, Rect(Point{}, 0, 3).Empty())
}

func TestPoint_String(t *testing.T) {
	assert.Equal(t, "(3,-1)", Point{X: 3, Y: -1}.String())
	assert.Equal(t, Point{X: 4, Y: 6}, Point{X: 1, Y: 2}.Add(3, 4))
}
