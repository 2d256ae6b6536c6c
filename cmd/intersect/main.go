package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/osuushi/intersect/advanced"
	"github.com/osuushi/intersect/geom"
	"github.com/osuushi/intersect/internal"
	"github.com/osuushi/intersect/scene"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"
)

// Demo of intersection detection. Reads a scene of primitives (YAML, or SVG by
// extension), prints every intersection point, one "x y" pair per line, and
// optionally renders the scene with the points marked.
var (
	app       = kingpin.New("intersect", "Find all intersection points in a scene of 2D primitives.")
	input     = app.Arg("scene", "Scene file. Reads YAML from stdin if omitted.").ExistingFile()
	format    = app.Flag("format", "Scene format. Defaults to the file extension.").Enum(string(scene.FormatYAML), string(scene.FormatSVG))
	output    = app.Flag("png", "Render the scene and its intersections to this PNG file.").String()
	preview   = app.Flag("imgcat", "Also print the rendered PNG to the terminal (iTerm only).").Bool()
	scale     = app.Flag("scale", "Pixels per scene unit when rendering.").Default("40").Float64()
	workers   = app.Flag("workers", "Number of goroutines for pairwise detection.").Default("1").Int()
	verbose   = app.Flag("verbose", "Log each dispatch.").Short('v').Bool()
	saveScene = app.Flag("save-yaml", "Write the loaded scene back out as YAML to this file.").String()
)

func main() {
	kingpin.MustParse(app.Parse(os.Args[1:]))

	logger := zap.NewNop()
	if *verbose {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	err := run(logger, os.Stdout)
	if err != nil {
		logger.Error("failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, err)
	}
	// os.Exit skips deferred calls, so flush first
	_ = logger.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func run(logger *zap.Logger, out io.Writer) error {
	shapes, err := readScene()
	if err != nil {
		return err
	}
	logger.Info("loaded scene", zap.Int("primitives", len(shapes)))

	if *saveScene != "" {
		if err := writeScene(*saveScene, shapes); err != nil {
			return err
		}
	}

	engine := advanced.NewEngine(advanced.Options{Logger: logger, Workers: *workers})
	points, err := engine.DetectIntersections(context.Background(), shapes)
	if err != nil {
		return err
	}
	for _, p := range points {
		fmt.Fprintf(out, "%g %g\n", p.X, p.Y)
	}

	if *output != "" {
		c := internal.Render(shapes, points, *scale)
		if *preview {
			return internal.Preview(c, *output)
		}
		return c.SavePNG(*output)
	}
	return nil
}

// Save the shapes as YAML. A failed close is reported, since that is where a
// buffered write error surfaces.
func writeScene(path string, shapes []geom.Shape) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "saving scene")
	}
	defer func() {
		if closeErr := f.Close(); err == nil && closeErr != nil {
			err = errors.Wrap(closeErr, "saving scene")
		}
	}()
	return scene.SaveYAML(f, shapes)
}

func readScene() ([]geom.Shape, error) {
	if *input == "" {
		return scene.LoadYAML(os.Stdin)
	}
	f := scene.FormatForPath(*input)
	if *format != "" {
		f = scene.Format(*format)
	}
	return scene.LoadFile(*input, f)
}
