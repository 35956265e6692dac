package player

import (
	"testing"

	"boxgame/game"
)

func TestTakeTurnSelectsLightestBox(t *testing.T) {
	boxes := []game.Box{game.NewGreenBox(0.5), game.NewGreenBox(0.2), game.NewBlueBox(0.9)}
	p := New(1)

	box, score := p.TakeTurn(3, boxes)

	if box != 1 {
		t.Errorf("expected the lightest box at index 1, got %d", box)
	}
	if score != 9.0 {
		t.Errorf("expected score 9.0 from the green box, got %v", score)
	}
	if p.Score() != 9.0 {
		t.Errorf("expected cumulative score 9.0, got %v", p.Score())
	}
}

func TestTakeTurnTieBreaksOnFirstBox(t *testing.T) {
	boxes := []game.Box{game.NewGreenBox(0.5), game.NewBlueBox(0.5)}
	p := New(1)

	box, _ := p.TakeTurn(1, boxes)

	if box != 0 {
		t.Errorf("expected the first box to win the tie, got index %d", box)
	}
}

func TestScoreAccumulatesAcrossTurns(t *testing.T) {
	boxes := game.StandardBoxes()
	p := New(1)

	if p.Score() != 0.0 {
		t.Errorf("expected initial score 0.0, got %v", p.Score())
	}

	// Green(0.0) absorbs 1, then Green(0.1) absorbs 2
	p.TakeTurn(1, boxes)
	p.TakeTurn(2, boxes)

	if p.Score() != 5.0 {
		t.Errorf("expected cumulative score 5.0 after two turns, got %v", p.Score())
	}
}
