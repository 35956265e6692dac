package metrics

import "time"

// SequenceConfig describes how an experiment generates a random input token
// sequence: how many tokens, the largest token value, and the RNG seed.
type SequenceConfig struct {
	ID       int
	Length   int
	MaxToken uint32
	Seed     uint64
}

// TurnMetric records a single resolved turn.
type TurnMetric struct {
	Step   int // 1-based turn number
	Player int // Player ID
	Box    int // index of the chosen box in session order
	Token  uint32
	Score  float64
}

// GameMetric summarizes a finished game.
type GameMetric struct {
	StartingPlayer int    // Player ID
	Winner         string // "A", "B" or "draw"
	ScoreA         float64
	ScoreB         float64
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalTurns     int
}

type GameRecord struct {
	ID       int
	Sequence int // SequenceConfig.ID
	GameMetric
}

type TurnRecord struct {
	Game int // GameRecord.ID
	TurnMetric
}
