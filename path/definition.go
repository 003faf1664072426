package path

import (
	"fmt"

	"github.com/matt-g-everett/anim8/calc"
	"github.com/matt-g-everett/anim8/easing"
)

// Definition describes a path in configuration. Which fields are read
// depends on Type.
type Definition struct {
	Type       string        `yaml:"type"`
	Name       string        `yaml:"name"`
	Calculator string        `yaml:"calculator"`
	Start      interface{}   `yaml:"start"`
	End        interface{}   `yaml:"end"`
	P0         interface{}   `yaml:"p0"`
	P1         interface{}   `yaml:"p1"`
	P2         interface{}   `yaml:"p2"`
	P3         interface{}   `yaml:"p3"`
	Point      interface{}   `yaml:"point"`
	Points     []interface{} `yaml:"points"`
	Deltas     []float64     `yaml:"deltas"`
	Easing     string        `yaml:"easing"`
	Easings    []string      `yaml:"easings"`
	Path       *Definition   `yaml:"path"`
	Random     *Definition   `yaml:"random"`
	PointCount int           `yaml:"pointCount"`
}

// FromDefinition builds the path a Definition describes.
func FromDefinition(def *Definition) (Path, error) {
	name := def.Calculator
	if name == "" {
		name = "default"
	}
	c, err := calc.Lookup(name)
	if err != nil {
		return nil, err
	}

	switch def.Type {
	case "tween":
		return NewTween(def.Name, c, c.Parse(def.Start, c.Create()), c.Parse(def.End, c.Create())), nil
	case "quadratic":
		return NewQuadratic(def.Name, c, c.Parse(def.P0, c.Create()), c.Parse(def.P1, c.Create()), c.Parse(def.P2, c.Create())), nil
	case "cubic":
		return NewCubic(def.Name, c, c.Parse(def.P0, c.Create()), c.Parse(def.P1, c.Create()), c.Parse(def.P2, c.Create()), c.Parse(def.P3, c.Create())), nil
	case "point":
		if def.Random != nil {
			random, err := randomPoint(def)
			if err != nil {
				return nil, err
			}
			return NewPoint(def.Name, c, random), nil
		}
		return NewPoint(def.Name, c, c.Parse(def.Point, c.Create())), nil
	case "jump", "delta", "keyframe":
		points, err := parsePoints(def, c)
		if err != nil {
			return nil, err
		}
		if def.Deltas != nil && len(def.Deltas) != len(points) {
			return nil, fmt.Errorf("path %q: %d deltas for %d points", def.Name, len(def.Deltas), len(points))
		}
		switch def.Type {
		case "jump":
			return NewJump(def.Name, c, points), nil
		case "delta":
			return NewDelta(def.Name, c, points, def.Deltas), nil
		}
		easings, err := parseEasings(def, len(points))
		if err != nil {
			return nil, err
		}
		return NewKeyframe(def.Name, c, points, def.Deltas, easings), nil
	case "compiled":
		if def.Path == nil {
			return nil, fmt.Errorf("path %q: compiled path has no source path", def.Name)
		}
		if def.PointCount < 1 {
			return nil, fmt.Errorf("path %q: compiled path needs a positive pointCount", def.Name)
		}
		source, err := FromDefinition(def.Path)
		if err != nil {
			return nil, fmt.Errorf("path %q: %w", def.Name, err)
		}
		return NewCompiled(def.Name, source, def.PointCount), nil
	}

	return nil, &calc.UnknownKindError{Kind: "path", Name: def.Type}
}

// randomPoint builds a point picked at random along def.Random each time the
// path starts. The random path uses def's calculator unless it names one.
func randomPoint(def *Definition) (calc.Value, error) {
	inner := *def.Random
	if inner.Calculator == "" {
		inner.Calculator = def.Calculator
	}
	source, err := FromDefinition(&inner)
	if err != nil {
		return nil, fmt.Errorf("path %q: %w", def.Name, err)
	}
	return calc.RandomPath{Path: source}, nil
}

func parsePoints(def *Definition, c calc.Calculator) ([]calc.Value, error) {
	if len(def.Points) == 0 {
		return nil, fmt.Errorf("path %q: %s path has no points", def.Name, def.Type)
	}
	points := make([]calc.Value, len(def.Points))
	for i, raw := range def.Points {
		points[i] = c.Parse(raw, nil)
		if points[i] == nil {
			return nil, fmt.Errorf("path %q: invalid point %v", def.Name, raw)
		}
	}
	return points, nil
}

// parseEasings uses Easings when given, otherwise Easing for every segment.
func parseEasings(def *Definition, n int) ([]easing.Func, error) {
	names := def.Easings
	if names == nil {
		names = make([]string, n)
		for i := range names {
			names[i] = def.Easing
			if names[i] == "" {
				names[i] = "linear"
			}
		}
	}
	easings := make([]easing.Func, len(names))
	for i, name := range names {
		fn, err := easing.Lookup(name)
		if err != nil {
			return nil, fmt.Errorf("path %q: %w", def.Name, err)
		}
		easings[i] = fn
	}
	return easings, nil
}
