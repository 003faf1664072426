package easing

// GenerateLut samples fn at length evenly spaced points between 0 and 1
// inclusive.
func GenerateLut(fn Func, length int) []float64 {
	if length < 2 {
		return []float64{fn(1)}
	}
	increment := 1.0 / float64(length-1)
	lut := make([]float64, length)
	for i := 0; i < length; i++ {
		lut[i] = fn(float64(i) * increment)
	}
	return lut
}

// GeneratePulseLut builds a table that eases in over the first half and back
// out over the second half.
func GeneratePulseLut(fn Func, length int) []float64 {
	increment := 1.0 / float64(length/2)
	lut := make([]float64, length)
	for i, j := 0, length-1; i < length/2; i, j = i+1, j-1 {
		value := float64(i) * increment
		lut[i] = fn(value)
		lut[j] = fn(value)
	}
	return lut
}

// Lut returns an easing that reads from a table sampled from fn, trading
// accuracy for a constant lookup cost.
func Lut(fn Func, length int) Func {
	return table(GenerateLut(fn, length))
}

// PulseLut returns an easing that reads from a pulse table of fn, rising over
// the first half and falling back over the second.
func PulseLut(fn Func, length int) Func {
	if length < 2 {
		length = 2
	}
	return table(GeneratePulseLut(fn, length))
}

func table(lut []float64) Func {
	last := len(lut) - 1
	return func(x float64) float64 {
		if x <= 0 || last == 0 {
			return lut[0]
		}
		if x >= 1 {
			return lut[last]
		}
		f := x * float64(last)
		i := int(f)
		d := f - float64(i)
		return lut[i] + (lut[i+1]-lut[i])*d
	}
}
