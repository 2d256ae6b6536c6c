package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewLine(t *testing.T) {
	line := NewLine(2, -4)
	assert.Equal(t, 2.0, line.X)
	assert.False(t, line.IsVertical())
	assert.Equal(t, 6.0, line.YAt(5))

	horizontal := NewLine(0, 3)
	assert.True(t, horizontal.IsHorizontal())
	assert.True(t, math.IsNaN(horizontal.X))

	vertical := NewVerticalLine(7)
	assert.True(t, vertical.IsVertical())
	assert.True(t, math.IsNaN(vertical.YAt(7)))
}

func TestNewLineThrough(t *testing.T) {
	line := NewLineThrough(Vec(1, 1), Vec(3, 5))
	assert.Equal(t, 2.0, line.K)
	assert.Equal(t, -1.0, line.B)

	vertical := NewLineThrough(Vec(4, 1), Vec(4, -2))
	assert.True(t, vertical.IsVertical())
	assert.Equal(t, 4.0, vertical.X)

	point := NewLineThrough(Vec(4, 1), Vec(4, 1))
	assert.True(t, point.IsVertical())
	assert.Equal(t, 4.0, point.X)
}

func TestLineIntersectionWithLine(t *testing.T) {
	cases := []struct {
		name     string
		a, b     Line
		point    Vector
		relation Relation
	}{
		{"crossing", NewLine(1, 0), NewLine(-1, 4), Vec(2, 2), Intersecting},
		{"vertical first", NewVerticalLine(3), NewLine(2, 1), Vec(3, 7), Intersecting},
		{"vertical second", NewLine(2, 1), NewVerticalLine(3), Vec(3, 7), Intersecting},
		{"vertical and horizontal", NewVerticalLine(-1), NewLine(0, 2), Vec(-1, 2), Intersecting},
		{"parallel", NewLine(1, 0), NewLine(1, 1), Vector{}, None},
		{"parallel verticals", NewVerticalLine(1), NewVerticalLine(2), Vector{}, None},
		{"same line", NewLine(1, 1), NewLineThrough(Vec(0, 1), Vec(1, 2)), Vector{}, Coincident},
		{"same vertical", NewVerticalLine(2), NewLineThrough(Vec(2, 0), Vec(2, 9)), Vector{}, Coincident},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			point, relation := c.a.IntersectionWithLine(c.b)
			assert.Equal(t, c.relation, relation)
			assert.Equal(t, c.point, point)
		})
	}
}

func TestLineString(t *testing.T) {
	assert.Equal(t, "Line(y = 2x + -1)", NewLine(2, -1).String())
	assert.Equal(t, "Line(x = 3)", NewVerticalLine(3).String())
}
