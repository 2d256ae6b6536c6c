// Loading lists of primitives from scene files.
//
// Two formats are understood. YAML scenes describe each primitive explicitly:
//
//	shapes:
//	  - type: line
//	    points: [[0, 0], [1, 1]]
//	  - type: line
//	    k: 2
//	    b: -1
//	  - type: line
//	    x: 3          # vertical
//	  - type: segment
//	    points: [[0, 0], [2, 2]]
//	  - type: circle
//	    center: [0, 0]
//	    radius: 1
//	  - type: rectangle
//	    origin: [0, 0]
//	    size: [2, 1]
//	  - type: triangle
//	    points: [[0, 0], [1, 0], [0, 1]]
//
// SVG scenes map <line> to segments, <circle> to circles, <rect> to
// rectangles, three point <polygon>s to triangles, and the edges of any other
// <polygon> or <polyline> to segments. Coordinates are taken as they are, so
// the y axis points down compared to a YAML scene.
package scene

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/osuushi/intersect/geom"
	"github.com/pkg/errors"
)

type Format string

const (
	FormatYAML Format = "yaml"
	FormatSVG  Format = "svg"
)

// Guess the format from a file extension. Anything other than .svg is YAML.
func FormatForPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return FormatSVG
	}
	return FormatYAML
}

func Load(r io.Reader, format Format) ([]geom.Shape, error) {
	switch format {
	case FormatYAML:
		return LoadYAML(r)
	case FormatSVG:
		return LoadSVG(r)
	}
	return nil, errors.Errorf("unknown scene format %q", format)
}

func LoadFile(path string, format Format) ([]geom.Shape, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "opening scene")
	}
	defer f.Close()
	shapes, err := Load(f, format)
	if err != nil {
		return nil, errors.Wrapf(err, "loading %s", path)
	}
	return shapes, nil
}
