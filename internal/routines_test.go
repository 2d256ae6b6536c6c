package internal

import (
	"fmt"
	"math"
	"testing"

	"github.com/osuushi/intersect/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func circle(x, y, r float64) geom.Circle {
	return geom.Circle{Center: geom.Vec(x, y), Radius: r}
}

func segment(x1, y1, x2, y2 float64) geom.LineSegment {
	return geom.NewLineSegment(geom.Vec(x1, y1), geom.Vec(x2, y2))
}

func TestCircleToAxisX(t *testing.T) {
	t.Run("miss", func(t *testing.T) {
		result := circleToAxisX(circle(0, 2, 1))
		assert.Equal(t, geom.None, result.Relation)
		assert.Empty(t, result.Points)
	})

	t.Run("tangent above and below", func(t *testing.T) {
		assert.Equal(t, []geom.Vector{geom.Vec(3, 0)}, circleToAxisX(circle(3, 1, 1)).Points)
		assert.Equal(t, []geom.Vector{geom.Vec(3, 0)}, circleToAxisX(circle(3, -1, 1)).Points)
	})

	t.Run("secant", func(t *testing.T) {
		result := circleToAxisX(circle(1, 3, 5))
		assert.Equal(t, geom.Intersecting, result.Relation)
		assert.Equal(t, []geom.Vector{geom.Vec(-3, 0), geom.Vec(5, 0)}, result.Points)
	})

	t.Run("point circle on axis", func(t *testing.T) {
		assert.Equal(t, []geom.Vector{geom.Vec(2, 0)}, circleToAxisX(circle(2, 0, 0)).Points)
	})
}

func TestLineToCircle(t *testing.T) {
	t.Run("horizontal tangent", func(t *testing.T) {
		result := lineToCircle(geom.NewLine(0, 1), circle(0, 0, 1))
		require.Len(t, result.Points, 1)
		assertPointNear(t, geom.Vec(0, 1), result.Points[0])
	})

	t.Run("vertical tangent", func(t *testing.T) {
		result := lineToCircle(geom.NewVerticalLine(3), circle(1, 1, 2))
		require.Len(t, result.Points, 1)
		assertPointNear(t, geom.Vec(3, 1), result.Points[0])
	})

	t.Run("vertical secant", func(t *testing.T) {
		result := lineToCircle(geom.NewVerticalLine(1), circle(1, 1, 2))
		assertSamePoints(t, []geom.Vector{geom.Vec(1, -1), geom.Vec(1, 3)}, result.Points)
	})

	t.Run("negative vertical sentinel", func(t *testing.T) {
		line := geom.Line{K: math.Inf(-1), X: 1}
		result := lineToCircle(line, circle(1, 1, 2))
		assertSamePoints(t, []geom.Vector{geom.Vec(1, -1), geom.Vec(1, 3)}, result.Points)
	})

	t.Run("diagonal tangent", func(t *testing.T) {
		result := lineToCircle(geom.NewLine(1, 2), circle(0, 0, math.Sqrt2))
		require.Len(t, result.Points, 1)
		assertPointNear(t, geom.Vec(-1, 1), result.Points[0])
	})

	t.Run("diagonal secant", func(t *testing.T) {
		result := lineToCircle(geom.NewLine(1, 0), circle(0, 0, 1))
		h := math.Sqrt2 / 2
		assertSamePoints(t, []geom.Vector{geom.Vec(-h, -h), geom.Vec(h, h)}, result.Points)
	})

	// A line at distance d from the center hits the circle twice when d < r,
	// once when d == r, and never when d > r.
	t.Run("distance from center", func(t *testing.T) {
		c := circle(2, -1, 3)
		for _, theta := range []float64{0, 0.3, 1.1, 2.0, 2.9, 4.2, 5.5} {
			for _, d := range []float64{0, 1.5, 2.999, 3, 3.001, 4.5} {
				t.Run(fmt.Sprintf("theta %.1f d %.3f", theta, d), func(t *testing.T) {
					direction := geom.Vec(math.Cos(theta), math.Sin(theta))
					normal := geom.Vec(-direction.Y, direction.X)
					p := c.Center.AddScaled(normal, d)
					line := geom.NewLineThrough(p, p.Add(direction))

					result := lineToCircle(line, c)
					switch {
					case d < c.Radius:
						assert.Len(t, result.Points, 2)
					case d == c.Radius:
						assert.Len(t, result.Points, 1)
					default:
						assert.Empty(t, result.Points)
					}
					for _, point := range result.Points {
						assert.InDelta(t, c.Radius, point.DistanceTo(c.Center), 1e-9)
						assert.InDelta(t, line.YAt(point.X), point.Y, 1e-9)
					}
				})
			}
		}
	})
}

func TestLineSegmentToCircle(t *testing.T) {
	c := circle(0, 0, 5)

	t.Run("both points inside span", func(t *testing.T) {
		result := lineSegmentToCircle(segment(-10, 0, 10, 0), c)
		assertSamePoints(t, []geom.Vector{geom.Vec(-5, 0), geom.Vec(5, 0)}, result.Points)
	})

	t.Run("one point filtered", func(t *testing.T) {
		result := lineSegmentToCircle(segment(0, 0, 10, 0), c)
		assertSamePoints(t, []geom.Vector{geom.Vec(5, 0)}, result.Points)
	})

	t.Run("segment inside circle", func(t *testing.T) {
		result := lineSegmentToCircle(segment(-1, 0, 1, 0), c)
		assert.Equal(t, geom.None, result.Relation)
	})

	t.Run("ends on circle", func(t *testing.T) {
		result := lineSegmentToCircle(segment(0, 0, 3, 4), c)
		assertSamePoints(t, []geom.Vector{geom.Vec(3, 4)}, result.Points)
	})

	t.Run("vertical", func(t *testing.T) {
		result := lineSegmentToCircle(segment(3, -10, 3, 0), c)
		assertSamePoints(t, []geom.Vector{geom.Vec(3, -4)}, result.Points)
	})

	t.Run("degenerate segment on circle", func(t *testing.T) {
		result := lineSegmentToCircle(segment(0, 5, 0, 5), c)
		assertSamePoints(t, []geom.Vector{geom.Vec(0, 5)}, result.Points)
	})

	t.Run("degenerate segment off circle", func(t *testing.T) {
		result := lineSegmentToCircle(segment(0, 4, 0, 4), c)
		assert.Empty(t, result.Points)
	})
}

func TestLineToLine(t *testing.T) {
	result := lineToLine(geom.NewLine(1, 0), geom.NewLine(-1, 2))
	assert.Equal(t, []geom.Vector{geom.Vec(1, 1)}, result.Points)

	assert.Equal(t, geom.None, lineToLine(geom.NewLine(1, 0), geom.NewLine(1, 2)).Relation)
	assert.Equal(t, geom.Coincident, lineToLine(geom.NewLine(1, 2), geom.NewLine(1, 2)).Relation)
	assert.Empty(t, lineToLine(geom.NewLine(1, 2), geom.NewLine(1, 2)).Points)
}

func TestLineToLineSegment(t *testing.T) {
	line := geom.NewLine(0, 1)
	assert.Equal(t, []geom.Vector{geom.Vec(1, 1)}, lineToLineSegment(line, segment(0, 0, 2, 2)).Points)
	assert.Equal(t, geom.None, lineToLineSegment(line, segment(2, 2, 3, 3)).Relation)
	assert.Equal(t, geom.None, lineToLineSegment(line, segment(0, 0, 5, 0)).Relation, "parallel")
	assert.Equal(t, geom.Coincident, lineToLineSegment(line, segment(-1, 1, 4, 1)).Relation)

	vertical := geom.NewVerticalLine(1)
	assert.Equal(t, []geom.Vector{geom.Vec(1, 1)}, lineToLineSegment(vertical, segment(0, 0, 2, 2)).Points)
	assert.Equal(t, []geom.Vector{geom.Vec(1, 1)}, lineToLineSegment(line, segment(1, 0, 1, 1)).Points, "vertical segment, touching end")
	assert.Equal(t, geom.None, lineToLineSegment(line, segment(1, 0, 1, 0.5)).Relation, "vertical segment, short")
}

func TestLineSegmentToLineSegment(t *testing.T) {
	t.Run("crossing", func(t *testing.T) {
		result := lineSegmentToLineSegment(segment(0, 0, 2, 2), segment(0, 2, 2, 0))
		assert.Equal(t, geom.Intersecting, result.Relation)
		assert.Equal(t, []geom.Vector{geom.Vec(1, 1)}, result.Points)
	})

	t.Run("uneven crossing", func(t *testing.T) {
		result := lineSegmentToLineSegment(segment(0, 0, 4, 0), segment(1, -1, 1, 3))
		require.Len(t, result.Points, 1)
		assertPointNear(t, geom.Vec(1, 0), result.Points[0])
	})

	t.Run("parallel", func(t *testing.T) {
		result := lineSegmentToLineSegment(segment(0, 0, 1, 0), segment(0, 1, 1, 1))
		assert.Equal(t, geom.None, result.Relation)
	})

	t.Run("lines cross beyond the segments", func(t *testing.T) {
		result := lineSegmentToLineSegment(segment(0, 0, 1, 1), segment(3, 0, 2, 1))
		assert.Equal(t, geom.None, result.Relation)
	})

	// Endpoints collinear with the other segment are reported as such, without
	// a point, whether or not the segments actually meet.
	t.Run("T junction", func(t *testing.T) {
		result := lineSegmentToLineSegment(segment(0, 0, 2, 0), segment(1, 0, 1, 5))
		assert.Equal(t, geom.Collinear, result.Relation)
		assert.Empty(t, result.Points)
	})

	t.Run("shared endpoint", func(t *testing.T) {
		result := lineSegmentToLineSegment(segment(0, 0, 2, 0), segment(2, 0, 3, 3))
		assert.Equal(t, geom.Collinear, result.Relation)
	})

	t.Run("overlapping", func(t *testing.T) {
		result := lineSegmentToLineSegment(segment(0, 0, 2, 0), segment(1, 0, 3, 0))
		assert.Equal(t, geom.Collinear, result.Relation)
	})

	t.Run("collinear apart", func(t *testing.T) {
		result := lineSegmentToLineSegment(segment(0, 0, 1, 0), segment(2, 0, 2, 5))
		assert.Equal(t, geom.Collinear, result.Relation)
	})

	t.Run("fractional cross products", func(t *testing.T) {
		result := lineSegmentToLineSegment(segment(0, 0, 0.5, 0.5), segment(0, 0.5, 0.5, 0))
		require.Len(t, result.Points, 1)
		assertPointNear(t, geom.Vec(0.25, 0.25), result.Points[0])
	})
}

func TestLineSegmentToRectangle(t *testing.T) {
	rect := geom.NewRectangle(0, 0, 2, 2)

	t.Run("through two sides", func(t *testing.T) {
		result := lineSegmentToRectangle(segment(-1, 1, 3, 1), rect)
		// Edges are tested bottom, right, top, left
		assert.Equal(t, []geom.Vector{geom.Vec(2, 1), geom.Vec(0, 1)}, result.Points)
	})

	// Each corner belongs to two edges, and is hit once per edge
	t.Run("through corners", func(t *testing.T) {
		result := lineSegmentToRectangle(segment(-1, -1, 3, 3), rect)
		assert.Equal(t, []geom.Vector{
			geom.Vec(0, 0),
			geom.Vec(2, 2),
			geom.Vec(2, 2),
			geom.Vec(0, 0),
		}, result.Points)
	})

	t.Run("close but distinct hits", func(t *testing.T) {
		thin := geom.NewRectangle(0, 0, 1e-10, 1)
		result := lineSegmentToRectangle(segment(-1, 0.5, 1, 0.5), thin)
		require.Len(t, result.Points, 2)
		assert.InDelta(t, 1e-10, result.Points[0].X, 1e-12)
		assert.Equal(t, 0.0, result.Points[1].X)
		assert.False(t, result.Points[0].Equals(result.Points[1]))
	})

	t.Run("ends inside", func(t *testing.T) {
		result := lineSegmentToRectangle(segment(1, 1, 1, 5), rect)
		assertSamePoints(t, []geom.Vector{geom.Vec(1, 2)}, result.Points)
	})

	t.Run("inside", func(t *testing.T) {
		result := lineSegmentToRectangle(segment(0.5, 0.5, 1.5, 1.5), rect)
		assert.Equal(t, geom.None, result.Relation)
	})

	t.Run("bounding boxes apart", func(t *testing.T) {
		result := lineSegmentToRectangle(segment(5, 5, 6, 6), rect)
		assert.Equal(t, geom.None, result.Relation)
	})

	t.Run("bounding boxes overlap without a hit", func(t *testing.T) {
		result := lineSegmentToRectangle(segment(1.9, 2.5, 2.5, 1.9), rect)
		assert.Equal(t, geom.None, result.Relation)
	})
}

func TestLineSegmentToTriangle(t *testing.T) {
	tri := geom.NewTriangle(geom.Vec(0, 0), geom.Vec(4, 0), geom.Vec(0, 4))
	result := lineSegmentToTriangle(segment(-1, 1, 5, 1), tri)
	assertSamePoints(t, []geom.Vector{geom.Vec(3, 1), geom.Vec(0, 1)}, result.Points)

	assert.Equal(t, geom.None, lineSegmentToTriangle(segment(3, 3, 5, 5), tri).Relation)
}

func TestCircleToCircle(t *testing.T) {
	cases := []struct {
		name     string
		a, b     geom.Circle
		relation geom.Relation
		points   []geom.Vector
	}{
		{"two points", circle(0, 0, 5), circle(8, 0, 5), geom.Intersecting, []geom.Vector{geom.Vec(4, 3), geom.Vec(4, -3)}},
		{"outer tangent", circle(0, 0, 5), circle(10, 0, 5), geom.Intersecting, []geom.Vector{geom.Vec(5, 0)}},
		{"inner tangent", circle(0, 0, 5), circle(2, 0, 3), geom.Intersecting, []geom.Vector{geom.Vec(5, 0)}},
		{"apart", circle(0, 0, 1), circle(5, 0, 1), geom.None, nil},
		{"nested", circle(0, 0, 5), circle(1, 0, 1), geom.None, nil},
		{"concentric", circle(0, 0, 5), circle(0, 0, 1), geom.None, nil},
		{"coincident", circle(1, 1, 2), circle(1, 1, 2), geom.Coincident, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			result := circleToCircle(c.a, c.b)
			assert.Equal(t, c.relation, result.Relation)
			assertSamePoints(t, c.points, result.Points)
			for _, p := range result.Points {
				assert.InDelta(t, c.a.Radius, p.DistanceTo(c.a.Center), 1e-9)
				assert.InDelta(t, c.b.Radius, p.DistanceTo(c.b.Center), 1e-9)
			}
		})
	}
}

func assertPointNear(t *testing.T, expected, actual geom.Vector) {
	t.Helper()
	assert.InDelta(t, expected.X, actual.X, 1e-9, "expected %v, got %v", expected, actual)
	assert.InDelta(t, expected.Y, actual.Y, 1e-9, "expected %v, got %v", expected, actual)
}
