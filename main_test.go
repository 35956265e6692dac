package main

import (
	"testing"
)

func TestParseWeights(t *testing.T) {
	weights, err := parseWeights([]string{"1", "0", "4294967295"})
	if err != nil {
		t.Fatalf("expected no error for valid weights, got %v", err)
	}
	expected := []uint32{1, 0, 4294967295}
	for i, w := range expected {
		if weights[i] != w {
			t.Errorf("expected weight %d at index %d, got %d", w, i, weights[i])
		}
	}

	if _, err := parseWeights([]string{"-1"}); err == nil {
		t.Error("expected error for a negative weight, got none")
	}
	if _, err := parseWeights([]string{"2.5"}); err == nil {
		t.Error("expected error for a non-integer weight, got none")
	}
}
