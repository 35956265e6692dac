package player

import (
	"boxgame/game"
	"boxgame/utils"
)

// Player represents a game player.
type Player struct {
	ID    int
	score float64
}

// New creates a new Player instance.
func New(id int) *Player {
	return &Player{ID: id}
}

// TakeTurn feeds the token weight to the lightest of the given boxes and
// adds the absorption score to the player's own total. The box collection
// is never empty within a game session. It reports the index of the chosen
// box and the score it produced.
func (p *Player) TakeTurn(weight float64, boxes []game.Box) (int, float64) {
	chosen := game.Lightest(boxes)
	score := chosen.Absorb(weight)
	p.score += score
	return utils.FindIndex(boxes, chosen), score
}

// Score returns the player's cumulative score.
func (p *Player) Score() float64 {
	return p.score
}
