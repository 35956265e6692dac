package engine

import "boxgame/experiments/metrics"

// Scores holds the final cumulative scores of both players.
type Scores struct {
	A float64
	B float64
}

type Engine interface {
	// Run plays the whole input token sequence and returns the final scores
	Run() (scores Scores, gameMetric metrics.GameMetric, turnMetrics []metrics.TurnMetric)
}
