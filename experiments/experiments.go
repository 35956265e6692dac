package experiments

import (
	"fmt"

	"boxgame/engine"
	"boxgame/experiments/metrics"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

const NumGames = 30 // Per sequence config

var sequenceConfigs = []metrics.SequenceConfig{
	{ID: 1, Length: 4, MaxToken: 100, Seed: 1},
	{ID: 2, Length: 8, MaxToken: 100, Seed: 2},
	{ID: 3, Length: 16, MaxToken: 100, Seed: 3},
	{ID: 4, Length: 32, MaxToken: 100, Seed: 4},
	{ID: 5, Length: 64, MaxToken: 1000, Seed: 5},
	{ID: 6, Length: 128, MaxToken: 1000, Seed: 6},
}

// RunScoreSpreadExperiment plays batches of games over random input
// sequences of increasing length and stores the resulting game and turn
// records for score-distribution analysis.
func RunScoreSpreadExperiment() {
	runExperiment("score_spread", sequenceConfigs)
}

func runExperiment(name string, configs []metrics.SequenceConfig) {
	// Run a number of games for each sequence config
	count := 0
	gameRecords := []metrics.GameRecord{}
	turnRecords := []metrics.TurnRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for ci, config := range configs {
		log.Info().Msgf("starting config %d of %d: %+v...", ci+1, len(configs), config)

		rng := rand.New(rand.NewSource(config.Seed))
		for i := 0; i < NumGames; i++ {
			weights := randomWeights(config, rng)
			_, gameMetric, turnMetrics := engine.NewLocalGame(weights).Run()
			count++
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Sequence:   config.ID,
				GameMetric: gameMetric,
			})
			for _, tm := range turnMetrics {
				turnRecords = append(turnRecords, metrics.TurnRecord{
					Game:       count,
					TurnMetric: tm,
				})
			}
		}
		log.Info().Msgf("completed config %d of %d", ci+1, len(configs))
	}

	log.Info().Msgf("completed %s experiment", name)

	// Store experiment metadata
	writer, err := metrics.NewWriter(name)
	if err != nil {
		panic(fmt.Sprintf("failed to create experiment writer: %v", err))
	}

	err = writer.WriteSequenceConfigs(configs)
	if err != nil {
		panic(fmt.Sprintf("failed to store sequence configs: %v", err))
	}
	log.Info().Msg("stored sequence configs")

	// Store experiment results
	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to write game records: %v", err))
	}
	log.Info().Msg("stored game records")

	err = writer.WriteTurnRecords(turnRecords)
	if err != nil {
		panic(fmt.Sprintf("failed to write turn records: %v", err))
	}
	log.Info().Msg("stored turn records")
}

// randomWeights draws a token sequence in [0, MaxToken] per the config.
func randomWeights(config metrics.SequenceConfig, rng *rand.Rand) []uint32 {
	weights := make([]uint32, config.Length)
	for i := range weights {
		weights[i] = uint32(rng.Uint64n(uint64(config.MaxToken) + 1))
	}
	return weights
}
