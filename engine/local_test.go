package engine

import (
	"testing"

	"boxgame/experiments/metrics"

	"github.com/stretchr/testify/require"
)

func TestPlay(t *testing.T) {
	t.Run("empty input returns zero scores", func(t *testing.T) {
		scoreA, scoreB := Play([]uint32{})

		require.Equal(t, 0.0, scoreA)
		require.Equal(t, 0.0, scoreB)
	})

	t.Run("final scores for first 4 Fibonacci numbers", func(t *testing.T) {
		scoreA, scoreB := Play([]uint32{1, 1, 2, 3})

		require.Equal(t, 13.0, scoreA)
		require.Equal(t, 25.0, scoreB)
	})

	t.Run("final scores for first 8 Fibonacci numbers", func(t *testing.T) {
		scoreA, scoreB := Play([]uint32{1, 1, 2, 3, 5, 8, 13, 21})

		require.Equal(t, 155.0, scoreA)
		require.Equal(t, 366.25, scoreB)
	})
}

func TestRunTurnTranscript(t *testing.T) {
	_, _, turnMetrics := NewLocalGame([]uint32{1, 1, 2, 3}).Run()

	// Each token lands in the next box in session order: the green boxes
	// fill up first, then the blue boxes.
	require.Equal(t, []metrics.TurnMetric{
		{Step: 1, Player: 1, Box: 0, Token: 1, Score: 1.0},
		{Step: 2, Player: 2, Box: 1, Token: 1, Score: 1.0},
		{Step: 3, Player: 1, Box: 2, Token: 2, Score: 12.0},
		{Step: 4, Player: 2, Box: 3, Token: 3, Score: 24.0},
	}, turnMetrics)
}

func TestRunAlternation(t *testing.T) {
	input := []uint32{4, 4, 4, 4, 4}
	_, gameMetric, turnMetrics := NewLocalGame(input).Run()

	require.Len(t, turnMetrics, len(input))
	turnsA, turnsB := 0, 0
	for i, tm := range turnMetrics {
		require.Equal(t, i+1, tm.Step)
		if i%2 == 0 {
			require.Equal(t, 1, tm.Player, "player A takes the even turns")
			turnsA++
		} else {
			require.Equal(t, 2, tm.Player, "player B takes the odd turns")
			turnsB++
		}
	}
	require.Equal(t, 3, turnsA)
	require.Equal(t, 2, turnsB)
	require.Equal(t, 1, gameMetric.StartingPlayer)
}

func TestRunGameMetric(t *testing.T) {
	t.Run("winner is the player with the highest score", func(t *testing.T) {
		_, gameMetric, _ := NewLocalGame([]uint32{1, 1, 2, 3}).Run()

		require.Equal(t, "B", gameMetric.Winner)
		require.Equal(t, 13.0, gameMetric.ScoreA)
		require.Equal(t, 25.0, gameMetric.ScoreB)
		require.Equal(t, 4, gameMetric.TotalTurns)
	})

	t.Run("empty input is a draw", func(t *testing.T) {
		_, gameMetric, _ := NewLocalGame(nil).Run()

		require.Equal(t, "draw", gameMetric.Winner)
		require.Equal(t, 0, gameMetric.TotalTurns)
	})
}

func TestRunIsDeterministic(t *testing.T) {
	input := []uint32{7, 0, 3, 3, 9, 2, 5}

	scores1, _, turns1 := NewLocalGame(input).Run()
	scores2, _, turns2 := NewLocalGame(input).Run()

	require.Equal(t, scores1, scores2)
	require.Equal(t, turns1, turns2)
}
