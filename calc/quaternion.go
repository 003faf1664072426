package calc

// Quaternion is a rotation of Angle around the axis (X, Y, Z). Components are
// animated independently.
type Quaternion struct {
	X     float64 `yaml:"x" json:"x"`
	Y     float64 `yaml:"y" json:"y"`
	Z     float64 `yaml:"z" json:"z"`
	Angle float64 `yaml:"angle" json:"angle"`
}

// QuaternionCalculator animates Quaternion values.
type QuaternionCalculator struct {
	vector
}

// NewQuaternionCalculator creates an instance of a QuaternionCalculator.
func NewQuaternionCalculator() *QuaternionCalculator {
	c := new(QuaternionCalculator)
	c.vector = vector{name: "quaternion", codec: quaternionCodec{}}
	return c
}

// Parse accepts a number (an angle around the Z axis), [x, y, z, angle],
// {x, y, z, angle} with optional relative components and a relative string
// which rotates the current value by that many degrees.
func (c *QuaternionCalculator) Parse(raw interface{}, defaultValue Value) Value {
	return c.parse(raw, defaultValue, nil)
}

type quaternionCodec struct{}

func (quaternionCodec) size() int {
	return 4
}

func (quaternionCodec) keys() []string {
	return []string{"x", "y", "z", "angle"}
}

func (quaternionCodec) split(v Value) components {
	switch q := v.(type) {
	case Quaternion:
		return components{q.X, q.Y, q.Z, q.Angle}
	case *Quaternion:
		return components{q.X, q.Y, q.Z, q.Angle}
	}
	return components{}
}

func (quaternionCodec) join(c components) Value {
	return Quaternion{X: c[0], Y: c[1], Z: c[2], Angle: c[3]}
}

func (quaternionCodec) valid(v Value) bool {
	switch v.(type) {
	case Quaternion, *Quaternion:
		return true
	}
	return false
}

func (quaternionCodec) uniform(n float64) components {
	return components{0, 0, 1, n}
}

func (quaternionCodec) relative(n float64) (components, components, bool) {
	return components{0, 0, 0, n}, components{}, false
}
