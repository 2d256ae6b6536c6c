package scene

import (
	"io"

	"github.com/osuushi/intersect/geom"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Points are written as [x, y]
type point struct {
	X, Y float64
}

func (p *point) UnmarshalYAML(node *yaml.Node) error {
	var xy []float64
	if err := node.Decode(&xy); err != nil {
		return err
	}
	if len(xy) != 2 {
		return errors.Errorf("line %d: point needs 2 coordinates, got %d", node.Line, len(xy))
	}
	p.X, p.Y = xy[0], xy[1]
	return nil
}

func (p point) MarshalYAML() (interface{}, error) {
	return []float64{p.X, p.Y}, nil
}

func (p point) vector() geom.Vector {
	return geom.Vec(p.X, p.Y)
}

type document struct {
	Shapes []shapeSpec `yaml:"shapes"`
}

type shapeSpec struct {
	Type   string   `yaml:"type"`
	Points []point  `yaml:"points,omitempty"`
	K      *float64 `yaml:"k,omitempty"`
	B      *float64 `yaml:"b,omitempty"`
	X      *float64 `yaml:"x,omitempty"`
	Center *point   `yaml:"center,omitempty"`
	Radius *float64 `yaml:"radius,omitempty"`
	Origin *point   `yaml:"origin,omitempty"`
	Size   *point   `yaml:"size,omitempty"`
}

func LoadYAML(r io.Reader) ([]geom.Shape, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, errors.Wrap(err, "decoding yaml scene")
	}
	shapes := make([]geom.Shape, 0, len(doc.Shapes))
	for i, spec := range doc.Shapes {
		shape, err := spec.shape()
		if err != nil {
			return nil, errors.Wrapf(err, "shape %d", i)
		}
		shapes = append(shapes, shape)
	}
	return shapes, nil
}

func (s shapeSpec) shape() (geom.Shape, error) {
	switch s.Type {
	case "line":
		switch {
		case s.X != nil:
			return geom.NewVerticalLine(*s.X), nil
		case s.K != nil && s.B != nil:
			return geom.NewLine(*s.K, *s.B), nil
		case len(s.Points) == 2:
			return geom.NewLineThrough(s.Points[0].vector(), s.Points[1].vector()), nil
		}
		return nil, errors.New("line needs x, k and b, or two points")
	case "segment":
		if len(s.Points) != 2 {
			return nil, errors.Errorf("segment needs 2 points, got %d", len(s.Points))
		}
		return geom.NewLineSegment(s.Points[0].vector(), s.Points[1].vector()), nil
	case "circle":
		if s.Center == nil || s.Radius == nil {
			return nil, errors.New("circle needs center and radius")
		}
		circle, err := geom.NewCircle(s.Center.vector(), *s.Radius)
		if err != nil {
			return nil, err
		}
		return circle, nil
	case "rectangle":
		if s.Origin == nil || s.Size == nil {
			return nil, errors.New("rectangle needs origin and size")
		}
		return geom.NewRectangle(s.Origin.X, s.Origin.Y, s.Size.X, s.Size.Y), nil
	case "triangle":
		if len(s.Points) != 3 {
			return nil, errors.Errorf("triangle needs 3 points, got %d", len(s.Points))
		}
		return geom.NewTriangle(s.Points[0].vector(), s.Points[1].vector(), s.Points[2].vector()), nil
	}
	return nil, errors.Errorf("unknown shape type %q", s.Type)
}

// Write shapes in the format LoadYAML reads. Lines are written by slope and
// intercept, or by x when vertical.
func SaveYAML(w io.Writer, shapes []geom.Shape) error {
	doc := document{Shapes: make([]shapeSpec, 0, len(shapes))}
	for _, shape := range shapes {
		spec, err := specFor(shape)
		if err != nil {
			return err
		}
		doc.Shapes = append(doc.Shapes, spec)
	}
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(doc); err != nil {
		return errors.Wrap(err, "encoding yaml scene")
	}
	return encoder.Close()
}

func specFor(shape geom.Shape) (shapeSpec, error) {
	pt := func(v geom.Vector) point { return point{v.X, v.Y} }
	f := func(v float64) *float64 { return &v }
	switch s := shape.(type) {
	case geom.Line:
		if s.IsVertical() {
			return shapeSpec{Type: "line", X: f(s.X)}, nil
		}
		return shapeSpec{Type: "line", K: f(s.K), B: f(s.B)}, nil
	case geom.LineSegment:
		return shapeSpec{Type: "segment", Points: []point{pt(s.P1), pt(s.P2)}}, nil
	case geom.Circle:
		center := pt(s.Center)
		return shapeSpec{Type: "circle", Center: &center, Radius: f(s.Radius)}, nil
	case geom.Rectangle:
		origin := pt(s.Min)
		size := point{s.Width(), s.Height()}
		return shapeSpec{Type: "rectangle", Origin: &origin, Size: &size}, nil
	case geom.Triangle:
		return shapeSpec{Type: "triangle", Points: []point{pt(s.A), pt(s.B), pt(s.C)}}, nil
	}
	return shapeSpec{}, errors.Errorf("cannot save %T", shape)
}
