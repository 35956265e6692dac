package game

// blueBox scores the Cantor pairing of the smallest and largest weight it
// has absorbed so far, i.e. pairing(smallest, largest).
type blueBox struct {
	box
}

// NewBlueBox creates a blue box with the given initial weight.
func NewBlueBox(initial float64) Box {
	return &blueBox{box{weight: initial}}
}

func (b *blueBox) Absorb(weight float64) float64 {
	b.push(weight)
	return b.Score()
}

func (b *blueBox) Score() float64 {
	if len(b.absorbed) == 0 {
		return 0.0
	}
	// min/max over the full history, recomputed each time
	smallest, largest := b.absorbed[0], b.absorbed[0]
	for _, w := range b.absorbed[1:] {
		if w < smallest {
			smallest = w
		}
		if w > largest {
			largest = w
		}
	}
	return cantorPairing(smallest, largest)
}

// cantorPairing maps a pair of non-negative values to a single value, e.g.
// cantorPairing(0, 1) = 2. Argument order matters: callers pass the smaller
// value first.
func cantorPairing(a, b float64) float64 {
	return 0.5*(a+b)*(a+b+1) + b
}
