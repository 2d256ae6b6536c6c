package geom

import (
	"math"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircleConstruct(t *testing.T) {
	circle, err := NewCircle(Vec(10, 10), 10)
	require.NoError(t, err)
	assert.True(t, circle.Center.Equals(Vec(10, 10)))
	assert.InDelta(t, math.Pi*100, circle.Area(), 1e-9)
	assert.InDelta(t, math.Pi*20, circle.Circumference(), 1e-9)
	assert.Equal(t, 20.0, circle.Diameter())
	assert.Equal(t, Rectangle{Min: Vec(0, 0), Max: Vec(20, 20)}, circle.Bounds())

	point, err := NewCircle(Vec(1, 1), 0)
	require.NoError(t, err)
	assert.True(t, point.Valid())

	_, err = NewCircle(Vec(1, 1), -1)
	assert.Equal(t, ErrNegativeRadius, errors.Cause(err))
	assert.False(t, Circle{Radius: -1}.Valid())
}

func TestCircleContains(t *testing.T) {
	circle := Circle{Center: Vec(0, 0), Radius: 5}
	assert.True(t, circle.Contains(Vec(3, 4)))
	assert.True(t, circle.Contains(Vec(1, 1)))
	assert.False(t, circle.Contains(Vec(4, 4)))
}

func TestCircleIntersectionWithCircle(t *testing.T) {
	t.Run("two points", func(t *testing.T) {
		points, relation := Circle{Vec(0, 0), 5}.IntersectionWithCircle(Circle{Vec(0, 8), 5})
		assert.Equal(t, Intersecting, relation)
		require.Len(t, points, 2)
		assert.True(t, points[0].ApproxEquals(Vec(-3, 4)), "%s", points[0])
		assert.True(t, points[1].ApproxEquals(Vec(3, 4)), "%s", points[1])
	})

	// Both points lie on both circles, whatever the arrangement
	t.Run("points on both circles", func(t *testing.T) {
		a := Circle{Vec(1, -2), 3}
		for _, b := range []Circle{{Vec(3, 1), 2}, {Vec(-1, 0), 4}, {Vec(3.5, -2), 0.75}} {
			points, relation := a.IntersectionWithCircle(b)
			assert.Equal(t, Intersecting, relation)
			require.Len(t, points, 2)
			for _, p := range points {
				assert.InDelta(t, a.Radius, p.DistanceTo(a.Center), 1e-9)
				assert.InDelta(t, b.Radius, p.DistanceTo(b.Center), 1e-9)
			}
		}
	})

	t.Run("tangent", func(t *testing.T) {
		points, relation := Circle{Vec(0, 0), 1}.IntersectionWithCircle(Circle{Vec(0, -3), 2})
		assert.Equal(t, Intersecting, relation)
		require.Len(t, points, 1)
		assert.True(t, points[0].ApproxEquals(Vec(0, -1)), "%s", points[0])
	})

	t.Run("nearly tangent", func(t *testing.T) {
		points, _ := Circle{Vec(0, 0), 1}.IntersectionWithCircle(Circle{Vec(0, -3), 2 + 1e-12})
		assert.Len(t, points, 1)
	})

	t.Run("none", func(t *testing.T) {
		points, relation := Circle{Vec(0, 0), 1}.IntersectionWithCircle(Circle{Vec(5, 0), 1})
		assert.Equal(t, None, relation)
		assert.Empty(t, points)
	})

	t.Run("coincident", func(t *testing.T) {
		points, relation := Circle{Vec(2, 2), 1}.IntersectionWithCircle(Circle{Vec(2, 2), 1})
		assert.Equal(t, Coincident, relation)
		assert.Empty(t, points)
	})
}
