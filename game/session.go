package game

// StandardBoxes returns the fixed box set every game is played with: two
// green boxes with initial weights 0.0 and 0.1, and two blue boxes with
// initial weights 0.2 and 0.3. Slice order is the tie-break order for
// lightest-box selection and must not change.
func StandardBoxes() []Box {
	return []Box{
		NewGreenBox(0.0),
		NewGreenBox(0.1),
		NewBlueBox(0.2),
		NewBlueBox(0.3),
	}
}
