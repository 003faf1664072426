package calc

// NumberCalculator animates float64 values.
type NumberCalculator struct {
	vector
}

// NewNumberCalculator creates an instance of a NumberCalculator.
func NewNumberCalculator() *NumberCalculator {
	c := new(NumberCalculator)
	c.vector = vector{name: "number", codec: numberCodec{}}
	return c
}

// Parse accepts numbers, numeric strings and relative strings such as "+10".
func (c *NumberCalculator) Parse(raw interface{}, defaultValue Value) Value {
	return c.parse(raw, defaultValue, nil)
}

type numberCodec struct{}

func (numberCodec) size() int {
	return 1
}

func (numberCodec) keys() []string {
	return []string{"value"}
}

func (numberCodec) split(v Value) components {
	n, _ := toFloat(v)
	return components{n}
}

func (numberCodec) join(c components) Value {
	return c[0]
}

func (numberCodec) valid(v Value) bool {
	_, ok := v.(float64)
	return ok
}

func (numberCodec) uniform(n float64) components {
	return components{n}
}

func (numberCodec) relative(n float64) (components, components, bool) {
	return components{n}, components{}, false
}
