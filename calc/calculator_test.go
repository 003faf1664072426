package calc

import (
	"errors"
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/lucasb-eyer/go-colorful"
)

func diff(t *testing.T, want, got interface{}, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var approx = cmpopts.EquateApprox(0, 1e-9)

var samples = []struct {
	calc   Calculator
	values []Value
}{
	{Number, []Value{0.0, 1.5, -42.0}},
	{Point2d, []Value{Vec2{}, Vec2{X: 3, Y: -4}, Vec2{X: 1e6, Y: 0.25}}},
	{Point3d, []Value{Vec3{X: 1, Y: 2, Z: 3}, Vec3{X: -0.5}}},
	{Quat, []Value{Quaternion{Z: 1, Angle: 90}, Quaternion{X: 1, Y: 1, Angle: -30}}},
	{RGB, []Value{colorful.Color{R: 1}, colorful.Color{R: 0.2, G: 0.4, B: 0.6}}},
	{RGBA, []Value{RGBAColor{Color: colorful.Color{G: 1}, A: 0.5}, RGBAColor{A: 1}}},
}

func TestInterpolateSameValue(t *testing.T) {
	for _, s := range samples {
		for _, v := range s.values {
			for _, delta := range []float64{0, 0.1, 0.5, 0.9, 1} {
				got := s.calc.Interpolate(s.calc.Create(), v, v, delta)
				diff(t, v, got)
			}
		}
	}
}

func TestCopyClone(t *testing.T) {
	for _, s := range samples {
		for _, v := range s.values {
			got := s.calc.Copy(s.calc.Create(), s.calc.Clone(v))
			diff(t, v, got)
		}
	}
}

func TestInterpolateMidpoint(t *testing.T) {
	got := Point2d.Interpolate(nil, Vec2{X: 0, Y: 10}, Vec2{X: 10, Y: 20}, 0.5)
	diff(t, Vec2{X: 5, Y: 15}, got)

	got = RGB.Interpolate(nil, colorful.Color{}, colorful.Color{R: 1, G: 0.5}, 0.5)
	diff(t, colorful.Color{R: 0.5, G: 0.25}, got, approx)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		calc Calculator
		raw  interface{}
		def  Value
		want Value
	}{
		{"number literal", Number, 5, nil, 5.0},
		{"number string", Number, "2.5", nil, 2.5},
		{"number relative", Number, "+5", nil, Relative{Amount: 5.0}},
		{"number negative relative", Number, "-5", nil, Relative{Amount: -5.0}},
		{"number current", Number, true, nil, Current{}},
		{"number garbage", Number, "abc", nil, nil},
		{"number garbage default", Number, "abc", 3.0, 3.0},
		{"2d uniform", Point2d, 3, nil, Vec2{X: 3, Y: 3}},
		{"2d array", Point2d, []interface{}{1, 2}, nil, Vec2{X: 1, Y: 2}},
		{"2d float array", Point2d, []float64{4, 5}, nil, Vec2{X: 4, Y: 5}},
		{"2d aliases", Point2d, "center top", nil, Vec2{X: 50, Y: 0}},
		{"2d single alias", Point2d, "right", nil, Vec2{X: 100, Y: 100}},
		{"2d relative", Point2d, "+5", nil, Relative{Amount: Vec2{X: 5, Y: 5}}},
		{"2d masked", Point2d, map[string]interface{}{"x": "+5", "y": 7}, nil,
			Relative{Amount: Vec2{X: 5, Y: 7}, Mask: Vec2{X: 1, Y: 0}}},
		{"2d partial object", Point2d, map[string]interface{}{"y": 7}, Vec2{X: 1, Y: 2}, Vec2{X: 1, Y: 7}},
		{"2d yaml object", Point2d, map[interface{}]interface{}{"x": 1, "y": 2}, nil, Vec2{X: 1, Y: 2}},
		{"3d uniform", Point3d, 2, nil, Vec3{X: 2, Y: 2, Z: 2}},
		{"quaternion angle", Quat, 45, nil, Quaternion{Z: 1, Angle: 45}},
		{"quaternion relative", Quat, "+45", nil, Relative{Amount: Quaternion{Angle: 45}}},
		{"rgb hex", RGB, "#ff0000", nil, colorful.Color{R: 1}},
		{"rgb grey", RGB, 0.5, nil, colorful.Color{R: 0.5, G: 0.5, B: 0.5}},
		{"rgba hex", RGBA, "#00ff00", nil, RGBAColor{Color: colorful.Color{G: 1}, A: 1}},
		{"literal passthrough", Point2d, Vec2{X: 9}, nil, Vec2{X: 9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diff(t, tt.want, tt.calc.Parse(tt.raw, tt.def), approx)
		})
	}
}

func TestParseComputedPassthrough(t *testing.T) {
	r := RandomRange{Min: 0, Max: 1}
	diff(t, r, Number.Parse(r, nil))

	live := Live(func() Value { return 1.0 })
	if _, ok := Number.Parse(live, nil).(Live); !ok {
		t.Error("live value was not passed through")
	}
}

func TestResolve(t *testing.T) {
	got := Resolve(Point2d, Relative{Amount: Vec2{X: 5, Y: 7}, Mask: Vec2{X: 1, Y: 0}}, Vec2{X: 10, Y: 10}, nil)
	diff(t, Vec2{X: 15, Y: 7}, got)

	got = Resolve(Number, Relative{Amount: -2.0}, 10.0, nil)
	diff(t, 8.0, got)

	got = Resolve(Number, Current{}, 4.0, nil)
	diff(t, 4.0, got)

	rnd := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		n := Resolve(Number, RandomRange{Min: 2, Max: 3}, 0.0, rnd).(float64)
		if n < 2 || n > 3 {
			t.Fatalf("random value %g outside [2, 3]", n)
		}
	}

	n := Resolve(Number, RandomChoice{Choices: []interface{}{7, 7}}, 0.0, rnd)
	diff(t, 7.0, n)
}

func TestClamp(t *testing.T) {
	diff(t, Vec2{}, Point2d.Clamp(Vec2{}, 1, 2))
	diff(t, Vec2{X: 0, Y: 2}, Point2d.Clamp(Vec2{Y: 10}, 0, 2), approx)
	diff(t, Vec2{X: 1, Y: 0}, Point2d.Clamp(Vec2{X: 0.5}, 1, 2), approx)
	diff(t, Vec2{X: 3, Y: 4}, Point2d.Clamp(Vec2{X: 3, Y: 4}, 1, 10))
	diff(t, Vec2{X: 0.6, Y: 0.8}, Point2d.SetLength(Vec2{X: 3, Y: 4}, 1), approx)
}

func TestMetrics(t *testing.T) {
	a, b := Vec3{X: 1, Y: 2, Z: 2}, Vec3{}
	if got := Point3d.Distance(a, b); got != 3 {
		t.Errorf("got distance %g, want 3", got)
	}
	if got := Point3d.Dot(a, a); got != 9 {
		t.Errorf("got dot %g, want 9", got)
	}
	if !Point3d.IsZero(Vec3{X: 1e-5}, 1e-4) {
		t.Error("expected value to be zero within epsilon")
	}
	if Point3d.IsEqual(a, b, 1e-4) {
		t.Error("expected values to differ")
	}
	if !Number.IsNaN(math.NaN()) {
		t.Error("expected NaN")
	}
	diff(t, Vec2{X: 1, Y: 4}, Point2d.Min(nil, Vec2{X: 1, Y: 5}, Vec2{X: 2, Y: 4}))
	diff(t, Vec2{X: 2, Y: 5}, Point2d.Max(nil, Vec2{X: 1, Y: 5}, Vec2{X: 2, Y: 4}))
	diff(t, []float64{1, 2, 2}, Point3d.Components(a))
	diff(t, a, Point3d.FromComponents([]float64{1, 2, 2}))
}

func TestLookup(t *testing.T) {
	c, err := Lookup("2d")
	if err != nil {
		t.Fatal(err)
	}
	if c != Point2d {
		t.Errorf("got %s, want 2d", c.Name())
	}

	_, err = Lookup("hsv")
	var unknown *UnknownKindError
	if !errors.As(err, &unknown) || unknown.Name != "hsv" {
		t.Errorf("got %v, want unknown calculator error", err)
	}
}
