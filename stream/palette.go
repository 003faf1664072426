package stream

import (
	"fmt"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

// A Palette picks colours at random without picking the same one twice in a
// row. An empty palette picks random hues.
type Palette struct {
	colours []colorful.Color
	current int
	rnd     *rand.Rand
}

// NewPalette creates an instance of a Palette from hex colours.
func NewPalette(hexes []string, rnd *rand.Rand) (*Palette, error) {
	p := new(Palette)
	p.rnd = rnd
	p.current = -1
	for _, hex := range hexes {
		c, err := colorful.Hex(hex)
		if err != nil {
			return nil, fmt.Errorf("palette: %w", err)
		}
		p.colours = append(p.colours, c)
	}
	return p, nil
}

// Next returns a colour different from the previous one.
func (p *Palette) Next() colorful.Color {
	switch len(p.colours) {
	case 0:
		return colorful.Hsl(p.rnd.Float64()*360.0, 1.0, 0.2)
	case 1:
		p.current = 0
		return p.colours[0]
	}

	for {
		next := p.rnd.Intn(len(p.colours))
		if next != p.current {
			p.current = next
			break
		}
	}
	return p.colours[p.current]
}
