package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"boxgame/engine"
	"boxgame/experiments"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	experiment := flag.Bool("experiment", false, "Run the score spread experiment instead of a single game")
	verbose := flag.Bool("verbose", false, "Log every resolved turn")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	if *experiment {
		experiments.RunScoreSpreadExperiment()
		return
	}

	weights, err := parseWeights(flag.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] [token weights...]: %v\n", os.Args[0], err)
		os.Exit(2)
	}

	scoreA, scoreB := engine.Play(weights)
	fmt.Printf("Scores: player A %v, player B %v\n", scoreA, scoreB)
}

// parseWeights reads the input token sequence from command-line arguments.
func parseWeights(args []string) ([]uint32, error) {
	weights := make([]uint32, 0, len(args))
	for _, arg := range args {
		w, err := strconv.ParseUint(arg, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid token weight %q: %w", arg, err)
		}
		weights = append(weights, uint32(w))
	}
	return weights, nil
}
