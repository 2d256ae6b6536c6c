package internal

import (
	"fmt"
	"strings"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/intersect/geom"
)

// The outcome of intersecting two primitives. Points is only populated for
// Intersecting results, and its order is deterministic for a given input.
type Result struct {
	Relation geom.Relation
	Points   []geom.Vector
}

var noIntersection = Result{Relation: geom.None}

// Build a result from zero or more points.
func pointsResult(points ...geom.Vector) Result {
	if len(points) == 0 {
		return noIntersection
	}
	return Result{Relation: geom.Intersecting, Points: points}
}

func relationResult(relation geom.Relation, points ...geom.Vector) Result {
	if relation == geom.Intersecting {
		return pointsResult(points...)
	}
	return Result{Relation: relation}
}

func (r Result) Empty() bool {
	return len(r.Points) == 0
}

func (r Result) String() string {
	var relation string
	switch r.Relation {
	case geom.Intersecting:
		relation = aurora.Green(r.Relation).String()
	case geom.None:
		relation = aurora.Red(r.Relation).String()
	default:
		relation = aurora.Cyan(r.Relation).String()
	}
	parts := make([]string, len(r.Points))
	for i, p := range r.Points {
		parts[i] = p.String()
	}
	return fmt.Sprintf("%s [%s]", relation, strings.Join(parts, ", "))
}
