package experiments

import (
	"context"
	"fmt"

	"draughts/experiments/metrics"
	"draughts/game"
	"draughts/searcher"

	"github.com/rs/zerolog/log"
)

// RunThroughput times depth-limited searches of increasing depth from the
// starting position and stores the node counts.
func RunThroughput(rules game.Rules, output string, maxDepth int) ([]metrics.ThroughputRecord, error) {
	records := []metrics.ThroughputRecord{}

	log.Info().Msgf("starting throughput experiment for %s up to depth %d...", rules.Name(), maxDepth)

	board := rules.NewBoard()
	for depth := 1; depth <= maxDepth; depth++ {
		s, err := searcher.NewDepthLimited(rules, depth, searcher.WithMetrics())
		if err != nil {
			return nil, err
		}
		_, _, metric := s.Find(context.Background(), board, game.Dark, game.Light)
		records = append(records, metrics.ThroughputRecord{Variant: rules.Name(), SearchMetric: metric})

		log.Info().Msgf("depth %d: %d nodes, %d cutoffs in %v", depth, metric.Nodes, metric.Cutoffs, metric.Duration)
	}

	writer, err := metrics.NewWriter(output, "throughput")
	if err != nil {
		return nil, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	err = writer.WriteThroughputRecords(records)
	if err != nil {
		return nil, fmt.Errorf("failed to write throughput records: %w", err)
	}
	log.Info().Msgf("stored throughput records in %s", writer.Dir())

	return records, nil
}
