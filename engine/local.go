package engine

import (
	"time"

	"boxgame/experiments/metrics"
	"boxgame/game"
	"boxgame/player"

	"github.com/rs/zerolog/log"
)

// LocalGame runs one game in-process: it owns the standard four-box session
// and both players for the duration of a single Run.
type LocalGame struct {
	Boxes   []game.Box
	Players [2]*player.Player
	weights []uint32
}

// NewLocalGame sets up a fresh session over the given input token weights.
// Player 1 is player A and always takes the first turn.
func NewLocalGame(weights []uint32) *LocalGame {
	return &LocalGame{
		Boxes:   game.StandardBoxes(),
		Players: [2]*player.Player{player.New(1), player.New(2)},
		weights: weights,
	}
}

// Run consumes the input sequence one token per turn, alternating players,
// and returns the final scores with the game and turn metrics.
func (g *LocalGame) Run() (Scores, metrics.GameMetric, []metrics.TurnMetric) {
	start := time.Now()
	turnMetrics := make([]metrics.TurnMetric, 0, len(g.weights))

	for i, token := range g.weights {
		p := g.Players[i%2]
		box, score := p.TakeTurn(float64(token), g.Boxes)

		log.Debug().
			Int("turn", i+1).
			Int("player", p.ID).
			Int("box", box).
			Uint32("token", token).
			Float64("score", score).
			Msg("turn resolved")

		turnMetrics = append(turnMetrics, metrics.TurnMetric{
			Step:   i + 1,
			Player: p.ID,
			Box:    box,
			Token:  token,
			Score:  score,
		})
	}

	scores := Scores{A: g.Players[0].Score(), B: g.Players[1].Score()}
	end := time.Now()
	gameMetric := metrics.GameMetric{
		StartingPlayer: g.Players[0].ID,
		Winner:         winner(scores),
		ScoreA:         scores.A,
		ScoreB:         scores.B,
		StartTime:      start,
		EndTime:        end,
		Duration:       end.Sub(start),
		TotalTurns:     len(g.weights),
	}

	log.Info().
		Float64("scoreA", scores.A).
		Float64("scoreB", scores.B).
		Str("winner", gameMetric.Winner).
		Int("turns", gameMetric.TotalTurns).
		Msg("game finished")

	return scores, gameMetric, turnMetrics
}

// winner labels the player with the highest final score.
func winner(s Scores) string {
	switch {
	case s.A > s.B:
		return "A"
	case s.B > s.A:
		return "B"
	default:
		return "draw"
	}
}

// Play runs one game over the given input token weights and returns the
// final scores of player A and player B. An empty input returns (0, 0).
func Play(weights []uint32) (float64, float64) {
	scores, _, _ := NewLocalGame(weights).Run()
	return scores.A, scores.B
}
