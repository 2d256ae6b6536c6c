package internal

import (
	"image/color"
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/intersect/geom"
	"github.com/osuushi/intersect/internal/dbg"
	"github.com/pkg/errors"
	"golang.org/x/image/font/basicfont"
)

// Padding around the scene, in pixels
const drawPadding = 40

// Lines have no extent, so a scene with nothing else gets this much room
// around the origin.
const defaultHalfExtent = 10

var (
	shapeColor = color.RGBA{0, 255, 255, 255}
	pointColor = color.RGBA{255, 64, 64, 255}
)

// Render shapes and intersection points to an image. The y axis points up.
// Infinite lines are clipped to the visible area.
func Render(shapes []geom.Shape, points []geom.Vector, scale float64) *gg.Context {
	bounds, ok := sceneBounds(shapes, points)
	if !ok {
		bounds = geom.Rectangle{
			Min: geom.Vec(-defaultHalfExtent, -defaultHalfExtent),
			Max: geom.Vec(defaultHalfExtent, defaultHalfExtent),
		}
	}

	width := int(scale*bounds.Width()) + drawPadding*2
	height := int(scale*bounds.Height()) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	c.SetFontFace(basicfont.Face7x13)

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-bounds.Min.X, -bounds.Min.Y)

	// Everything a line could cross, in scene coordinates
	pad := drawPadding / scale
	visible := geom.Rectangle{
		Min: bounds.Min.SubScalar(pad),
		Max: bounds.Max.AddScalar(pad),
	}

	c.SetLineWidth(2 / scale)
	for _, shape := range shapes {
		c.SetColor(shapeColor)
		drawShape(c, shape, visible)
		c.Stroke()
	}

	c.SetColor(pointColor)
	for _, p := range points {
		c.DrawCircle(p.X, p.Y, 3/scale)
		c.Fill()
	}

	for _, shape := range shapes {
		label(c, shape, visible)
	}
	return c
}

// Save the image and print it to the terminal (iTerm only).
func Preview(c *gg.Context, path string) error {
	if err := c.SavePNG(path); err != nil {
		return errors.Wrapf(err, "saving %s", path)
	}
	imgcat.CatFile(path, os.Stdout)
	return nil
}

func drawShape(c *gg.Context, shape geom.Shape, visible geom.Rectangle) {
	switch s := shape.(type) {
	case geom.Line:
		a, b := clipLine(s, visible)
		c.MoveTo(a.X, a.Y)
		c.LineTo(b.X, b.Y)
	case geom.LineSegment:
		c.MoveTo(s.P1.X, s.P1.Y)
		c.LineTo(s.P2.X, s.P2.Y)
	case geom.Circle:
		c.DrawCircle(s.Center.X, s.Center.Y, s.Radius)
	case geom.Rectangle:
		c.DrawRectangle(s.Min.X, s.Min.Y, s.Width(), s.Height())
	case geom.Triangle:
		c.MoveTo(s.A.X, s.A.Y)
		c.LineTo(s.B.X, s.B.Y)
		c.LineTo(s.C.X, s.C.Y)
		c.ClosePath()
	}
}

// Write the shape's debug name next to it
func label(c *gg.Context, shape geom.Shape, visible geom.Rectangle) {
	var anchor geom.Vector
	switch s := shape.(type) {
	case geom.Line:
		a, b := clipLine(s, visible)
		anchor = a.Lerp(b, 0.25)
	case geom.LineSegment:
		anchor = s.P1.Lerp(s.P2, 0.5)
	case geom.Circle:
		anchor = s.Center.Add(geom.Vec(0, s.Radius))
	case geom.Rectangle:
		anchor = geom.Vec(s.Min.X, s.Max.Y)
	case geom.Triangle:
		anchor = s.A
	default:
		return
	}
	// We have to go back to identity to draw the text, so get the point in
	// native coordinates
	x, y := c.TransformPoint(anchor.X, anchor.Y)
	c.Push()
	c.Identity()
	c.SetRGB(1, 1, 1)
	c.DrawStringAnchored(dbg.Name(shape), x, y, 0, -0.5)
	c.Pop()
}

// The two points where a line leaves the visible rectangle.
func clipLine(l geom.Line, visible geom.Rectangle) (geom.Vector, geom.Vector) {
	if l.IsVertical() {
		return geom.Vec(l.X, visible.Min.Y), geom.Vec(l.X, visible.Max.Y)
	}
	return geom.Vec(visible.Min.X, l.YAt(visible.Min.X)), geom.Vec(visible.Max.X, l.YAt(visible.Max.X))
}

// Bounding box of everything with a finite extent.
func sceneBounds(shapes []geom.Shape, points []geom.Vector) (geom.Rectangle, bool) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	include := func(r geom.Rectangle) {
		minX = math.Min(minX, r.Min.X)
		minY = math.Min(minY, r.Min.Y)
		maxX = math.Max(maxX, r.Max.X)
		maxY = math.Max(maxY, r.Max.Y)
	}
	for _, shape := range shapes {
		switch s := shape.(type) {
		case geom.LineSegment:
			include(s.ToRectangle())
		case geom.Circle:
			include(s.Bounds())
		case geom.Rectangle:
			include(s)
		case geom.Triangle:
			include(s.Bounds())
		}
	}
	for _, p := range points {
		include(geom.Rectangle{Min: p, Max: p})
	}
	if math.IsInf(minX, 1) {
		return geom.Rectangle{}, false
	}
	// A single point or a flat scene still needs some area
	if maxX-minX == 0 {
		minX, maxX = minX-1, maxX+1
	}
	if maxY-minY == 0 {
		minY, maxY = minY-1, maxY+1
	}
	return geom.Rectangle{Min: geom.Vec(minX, minY), Max: geom.Vec(maxX, maxY)}, true
}
