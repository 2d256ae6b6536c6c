package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/osuushi/intersect/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	shapes := []geom.Shape{
		circle(0, 0, 5),
		segment(-10, 0, 10, 0),
		geom.NewVerticalLine(2),
	}
	points := NewEngine(nil, nil).DetectIntersections(shapes)
	c := Render(shapes, points, 10)

	// The segment sets the width, the circle the height
	assert.Equal(t, 20*10+drawPadding*2, c.Width())
	assert.Equal(t, 10*10+drawPadding*2, c.Height())

	path := filepath.Join(t.TempDir(), "scene.png")
	require.NoError(t, c.SavePNG(path))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}

func TestRenderOnlyLines(t *testing.T) {
	c := Render([]geom.Shape{geom.NewLine(1, 0), geom.NewLine(-1, 0)}, nil, 2)
	assert.Equal(t, 2*defaultHalfExtent*2+drawPadding*2, c.Width())
}

func TestSceneBounds(t *testing.T) {
	_, ok := sceneBounds(nil, nil)
	assert.False(t, ok)

	bounds, ok := sceneBounds([]geom.Shape{geom.NewLine(1, 0)}, []geom.Vector{geom.Vec(3, 4)})
	require.True(t, ok)
	assert.Equal(t, geom.Vec(2, 3), bounds.Min)
	assert.Equal(t, geom.Vec(4, 5), bounds.Max)
}

func TestClipLine(t *testing.T) {
	visible := geom.Rectangle{Min: geom.Vec(-1, -2), Max: geom.Vec(3, 4)}
	a, b := clipLine(geom.NewLine(2, 1), visible)
	assert.Equal(t, geom.Vec(-1, -1), a)
	assert.Equal(t, geom.Vec(3, 7), b)

	a, b = clipLine(geom.NewVerticalLine(1), visible)
	assert.Equal(t, geom.Vec(1, -2), a)
	assert.Equal(t, geom.Vec(1, 4), b)
}
