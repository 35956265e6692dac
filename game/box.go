package game

// Box is a stateful accumulator. It absorbs token weights, adds them to its
// running weight, and emits a score after every absorption. How the score is
// calculated depends on the variant (green or blue).
type Box interface {
	// Absorb records weight in the box's history, adds it to the running
	// weight, and returns the resulting score. Weights are not validated;
	// zero and negative values are absorbed like any other.
	Absorb(weight float64) float64
	// Score computes the box's current score from its absorption history.
	// A box that has absorbed nothing scores 0.0.
	Score() float64
	// Weight returns the box's current total weight.
	Weight() float64
}

// box carries the state shared by both variants: the running weight and the
// append-only history of absorbed token weights.
type box struct {
	weight   float64
	absorbed []float64
}

func (b *box) Weight() float64 { return b.weight }

func (b *box) push(weight float64) {
	b.absorbed = append(b.absorbed, weight)
	b.weight += weight
}

// Lightest returns the box with the smallest current weight. Ties keep the
// earliest box in slice order, so selection is deterministic.
func Lightest(boxes []Box) Box {
	lightest := boxes[0]
	for _, b := range boxes[1:] {
		if b.Weight() < lightest.Weight() {
			lightest = b
		}
	}
	return lightest
}
