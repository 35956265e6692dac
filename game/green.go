package game

import "boxgame/utils"

// greenBox scores the square of the mean of the 3 most recently absorbed
// weights (of all absorbed weights if there are fewer than 3).
type greenBox struct {
	box
}

// NewGreenBox creates a green box with the given initial weight.
func NewGreenBox(initial float64) Box {
	return &greenBox{box{weight: initial}}
}

func (g *greenBox) Absorb(weight float64) float64 {
	g.push(weight)
	return g.Score()
}

func (g *greenBox) Score() float64 {
	n := len(g.absorbed)
	if n == 0 {
		return 0.0
	}
	k := n
	if k > 3 {
		k = 3
	}
	mean := utils.Sum(g.absorbed[n-k:]) / float64(k)
	return mean * mean
}
