package scene

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/intersect/geom"
	"github.com/pkg/errors"
)

// This is not a full (or even correct) SVG reader. It walks the document in
// order and converts the basic shapes it knows about, ignoring everything else,
// including transforms. Elements with class="ignore" are skipped, which lets
// fixtures carry annotations.
func LoadSVG(r io.Reader) ([]geom.Shape, error) {
	// Shape attributes are checked here, so that errors like a negative radius
	// are reported the same way as for YAML scenes
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg scene")
	}
	var shapes []geom.Shape
	if err := walk(root, &shapes); err != nil {
		return nil, err
	}
	return shapes, nil
}

func walk(el *svgparser.Element, shapes *[]geom.Shape) error {
	if el.Attributes["class"] == "ignore" {
		return nil
	}
	converted, err := convertElement(el)
	if err != nil {
		return errors.Wrapf(err, "<%s>", el.Name)
	}
	*shapes = append(*shapes, converted...)
	for _, child := range el.Children {
		if err := walk(child, shapes); err != nil {
			return err
		}
	}
	return nil
}

func convertElement(el *svgparser.Element) ([]geom.Shape, error) {
	attrs := attributeReader{el: el}
	switch el.Name {
	case "line":
		p1 := geom.Vec(attrs.float("x1"), attrs.float("y1"))
		p2 := geom.Vec(attrs.float("x2"), attrs.float("y2"))
		if attrs.err != nil {
			return nil, attrs.err
		}
		return []geom.Shape{geom.NewLineSegment(p1, p2)}, nil
	case "circle":
		center := geom.Vec(attrs.float("cx"), attrs.float("cy"))
		radius := attrs.float("r")
		if attrs.err != nil {
			return nil, attrs.err
		}
		circle, err := geom.NewCircle(center, radius)
		if err != nil {
			return nil, err
		}
		return []geom.Shape{circle}, nil
	case "rect":
		rect := geom.NewRectangle(attrs.float("x"), attrs.float("y"), attrs.float("width"), attrs.float("height"))
		if attrs.err != nil {
			return nil, attrs.err
		}
		return []geom.Shape{rect}, nil
	case "polygon", "polyline":
		points, err := parsePoints(el.Attributes["points"])
		if err != nil {
			return nil, err
		}
		closed := el.Name == "polygon"
		if closed && len(points) == 3 {
			return []geom.Shape{geom.NewTriangle(points[0], points[1], points[2])}, nil
		}
		return chain(points, closed), nil
	}
	return nil, nil
}

// Consecutive points as segments, wrapping around if closed.
func chain(points []geom.Vector, closed bool) []geom.Shape {
	var segments []geom.Shape
	for i := 0; i+1 < len(points); i++ {
		segments = append(segments, geom.NewLineSegment(points[i], points[i+1]))
	}
	if closed && len(points) > 2 {
		segments = append(segments, geom.NewLineSegment(points[len(points)-1], points[0]))
	}
	return segments
}

// Parse a points attribute. Both "x,y x,y" and "x y x y" are accepted.
func parsePoints(s string) ([]geom.Vector, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates in %q", s)
	}
	points := make([]geom.Vector, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", fields[i+1])
		}
		points = append(points, geom.Vec(x, y))
	}
	return points, nil
}

// Reads numeric attributes, keeping the first error. Missing attributes are
// zero, as in SVG.
type attributeReader struct {
	el  *svgparser.Element
	err error
}

func (a *attributeReader) float(name string) float64 {
	raw, ok := a.el.Attributes[name]
	if !ok || a.err != nil {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(raw), "px"), 64)
	if err != nil {
		a.err = errors.Wrapf(err, "invalid %s value %q", name, raw)
	}
	return v
}
