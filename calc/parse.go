package calc

import (
	"fmt"
	"strconv"
	"strings"
)

// parse handles the input forms every kind understands. str, when given, is
// consulted for strings that are not relative amounts.
func (v vector) parse(raw interface{}, def Value, str func(s string, def components) (Value, bool)) Value {
	var base components
	if def != nil {
		base = v.codec.split(def)
	}

	switch x := raw.(type) {
	case nil:
	case Computed:
		return x
	case Live:
		return x
	case func() Value:
		return Live(x)
	case bool:
		if x {
			return Current{}
		}
	case string:
		if isRelative(x) {
			if n, ok := toFloat(x); ok {
				amount, mask, masked := v.codec.relative(n)
				r := Relative{Amount: v.codec.join(amount)}
				if masked {
					r.Mask = v.codec.join(mask)
				}
				return r
			}
		}
		if str != nil {
			if parsed, ok := str(x, base); ok {
				return parsed
			}
		}
		if n, ok := toFloat(x); ok {
			return v.codec.join(v.codec.uniform(n))
		}
	case []float64:
		items := make([]interface{}, len(x))
		for i := range x {
			items[i] = x[i]
		}
		if parsed, ok := v.parseArray(items, base); ok {
			return parsed
		}
	case []interface{}:
		if parsed, ok := v.parseArray(x, base); ok {
			return parsed
		}
	case map[string]interface{}:
		if parsed, ok := v.parseObject(x, base); ok {
			return parsed
		}
	case map[interface{}]interface{}:
		m := make(map[string]interface{}, len(x))
		for key, value := range x {
			m[fmt.Sprint(key)] = value
		}
		if parsed, ok := v.parseObject(m, base); ok {
			return parsed
		}
	default:
		if v.codec.valid(x) {
			return v.Clone(x)
		}
		if n, ok := toFloat(x); ok {
			return v.codec.join(v.codec.uniform(n))
		}
	}

	if def != nil {
		return v.Clone(def)
	}
	return nil
}

func (v vector) parseArray(items []interface{}, base components) (Value, bool) {
	keys := v.codec.keys()
	m := make(map[string]interface{}, len(keys))
	for i, key := range keys {
		if i < len(items) {
			m[key] = items[i]
		}
	}
	return v.parseObject(m, base)
}

// parseObject reads one entry per component key. Components given as relative
// strings make the result a Relative whose mask selects them.
func (v vector) parseObject(m map[string]interface{}, base components) (Value, bool) {
	var amount, mask components
	relative := false

	for i, key := range v.codec.keys() {
		raw, ok := m[key]
		if !ok || raw == nil {
			amount[i] = base[i]
			continue
		}
		n, ok := toFloat(raw)
		if !ok {
			return nil, false
		}
		amount[i] = n
		if s, isString := raw.(string); isString && isRelative(s) {
			mask[i] = 1
			relative = true
		}
	}

	if relative {
		return Relative{Amount: v.codec.join(amount), Mask: v.codec.join(mask)}, true
	}
	return v.codec.join(amount), true
}

// isRelative reports whether s is a signed amount such as "+5" or "-2.5".
func isRelative(s string) bool {
	return len(s) > 0 && (s[0] == '+' || s[0] == '-')
}

func toFloat(x interface{}) (float64, bool) {
	switch n := x.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	}
	return 0, false
}
