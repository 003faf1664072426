// Package easing provides named easing functions which map linear progress
// to eased progress.
package easing

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/fogleman/ease"
)

// Func maps progress in [0, 1] to eased progress. Most easings return 0 at 0
// and 1 at 1 but may overshoot in between.
type Func func(float64) float64

// Type derives a new easing from a base easing.
type Type func(Func) Func

// UnknownError is returned for easing and easing type names that are not
// registered.
type UnknownError struct {
	Name string
}

func (e *UnknownError) Error() string {
	return fmt.Sprintf("unknown easing %q", e.Name)
}

// Linear is the identity easing.
var Linear Func = ease.Linear

// Default is the easing used when none is given.
const Default = "ease"

var easings = map[string]Func{
	"linear":        ease.Linear,
	"quad":          ease.InQuad,
	"quad-out":      ease.OutQuad,
	"quad-inout":    ease.InOutQuad,
	"cubic":         ease.InCubic,
	"cubic-out":     ease.OutCubic,
	"cubic-inout":   ease.InOutCubic,
	"quartic":       ease.InQuart,
	"quartic-out":   ease.OutQuart,
	"quartic-inout": ease.InOutQuart,
	"quintic":       ease.InQuint,
	"quintic-out":   ease.OutQuint,
	"quintic-inout": ease.InOutQuint,
	"sine":          ease.InSine,
	"sine-out":      ease.OutSine,
	"sine-inout":    ease.InOutSine,
	"expo":          ease.InExpo,
	"expo-out":      ease.OutExpo,
	"expo-inout":    ease.InOutExpo,
	"circ":          ease.InCirc,
	"circ-out":      ease.OutCirc,
	"circ-inout":    ease.InOutCirc,
	"elastic":       ease.InElastic,
	"elastic-out":   ease.OutElastic,
	"elastic-inout": ease.InOutElastic,
	"back":          ease.InBack,
	"back-out":      ease.OutBack,
	"back-inout":    ease.InOutBack,
	"bounce":        ease.OutBounce,
	"bounce-in":     ease.InBounce,
	"bounce-inout":  ease.InOutBounce,
	"ease":          Ease,
	"gentle":        Gentle,
	"overshot":      Overshot,
	"hesitant":      Hesitant,
	"sqrt":          math.Sqrt,
	"circular":      Circular,
	"slingshot":     Slingshot,
}

var types = map[string]Type{
	"in":      In,
	"out":     Out,
	"inout":   InOut,
	"yoyo":    Yoyo,
	"mirror":  Mirror,
	"reverse": Reverse,
}

// Lookup returns the easing registered under name. A name may also be an
// easing type ("out" applies to the default easing) or "<easing>-<type>".
// An empty name returns the default easing.
func Lookup(name string) (Func, error) {
	if name == "" {
		name = Default
	}
	if fn, ok := easings[name]; ok {
		return fn, nil
	}
	if t, ok := types[name]; ok {
		return t(easings[Default]), nil
	}
	if i := strings.LastIndex(name, "-"); i != -1 {
		fn, okf := easings[name[:i]]
		t, okt := types[name[i+1:]]
		if okf && okt {
			return t(fn), nil
		}
	}
	return nil, &UnknownError{Name: name}
}

// Register adds or replaces a named easing.
func Register(name string, fn Func) {
	easings[name] = fn
}

// Names lists the registered easing names.
func Names() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// In returns fn unchanged.
func In(fn Func) Func {
	return fn
}

// Out plays fn backwards and upside down.
func Out(fn Func) Func {
	return func(x float64) float64 {
		return 1.0 - fn(1.0-x)
	}
}

// InOut eases in over the first half and out over the second.
func InOut(fn Func) Func {
	return func(x float64) float64 {
		if x < 0.5 {
			return fn(2.0*x) * 0.5
		}
		return 1.0 - fn(2.0-2.0*x)*0.5
	}
}

// Yoyo eases to 1 by the midpoint and back to 0.
func Yoyo(fn Func) Func {
	return func(x float64) float64 {
		if x < 0.5 {
			return fn(2.0 * x)
		}
		return fn(2.0 - 2.0*x)
	}
}

// Mirror eases to 1 by the midpoint and returns along the mirrored curve.
func Mirror(fn Func) Func {
	return func(x float64) float64 {
		if x < 0.5 {
			return fn(2.0 * x)
		}
		return 1.0 - fn(2.0*x-1.0)
	}
}

// Reverse plays fn backwards.
func Reverse(fn Func) Func {
	return func(x float64) float64 {
		return fn(1.0 - x)
	}
}

// Ease starts slowly, speeds up and settles gently.
func Ease(x float64) float64 {
	i := 1.0 - x
	i2 := i * i
	x2 := x * x
	eq1 := (0.3 * i2 * x) + (3.0 * i * x2) + (x2 * x)
	eq2 := 1.0 - i2*i2
	return eq1*i + eq2*x
}

func Gentle(x float64) float64 {
	return (3.0 * (1.0 - x) * x * x) + (x * x * x)
}

func Overshot(x float64) float64 {
	return (1.0 - x*(7.0/10)) * x * (10.0 / 3.0)
}

func Hesitant(x float64) float64 {
	return math.Cos(x*x*12.0)*x*(1.0-x) + x
}

func Circular(x float64) float64 {
	return 1.0 - math.Sqrt(1-x*x)
}

func Slingshot(x float64) float64 {
	if x < 0.7 {
		return x * -0.357
	}
	d := x - 0.7
	return (d*d*27.5 - 0.5) * 0.5
}

// Bezier returns a CSS style cubic-bezier timing function with control points
// (x1, y1) and (x2, y2). The curve parameter for x is found with Newton
// iteration.
func Bezier(x1, y1, x2, y2 float64) Func {
	a := func(a1, a2 float64) float64 { return 1.0 - 3.0*a2 + 3.0*a1 }
	b := func(a1, a2 float64) float64 { return 3.0*a2 - 6.0*a1 }
	c := func(a1 float64) float64 { return 3.0 * a1 }
	calcBezier := func(t, a1, a2 float64) float64 {
		return ((a(a1, a2)*t+b(a1, a2))*t + c(a1)) * t
	}
	slope := func(t, a1, a2 float64) float64 {
		return 3.0*a(a1, a2)*t*t + 2.0*b(a1, a2)*t + c(a1)
	}
	return func(x float64) float64 {
		t := x
		for i := 0; i < 4; i++ {
			s := slope(t, x1, x2)
			if s == 0 {
				break
			}
			t -= (calcBezier(t, x1, x2) - x) / s
		}
		return calcBezier(t, y1, y2)
	}
}
