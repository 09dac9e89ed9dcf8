package main

import (
	"flag"
	"io"
	"os"
	"time"

	"draughts/config"
	"draughts/experiments"
	"draughts/experiments/metrics"
	"draughts/game"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	experiment := flag.String("experiment", cfg.Experiment, "Experiment to run: comparison or throughput")
	variant := flag.String("variant", cfg.Variant, "Rules to play: english or international")
	games := flag.Int("games", cfg.Games, "Number of games to play")
	maxTurns := flag.Int("max-turns", cfg.MaxTurns, "Moves after which a game is drawn")
	maxDepth := flag.Int("max-depth", cfg.MaxDepth, "Deepest search of the throughput experiment")
	output := flag.String("output", cfg.Output, "Directory to store experiment results in")
	level := flag.String("log-level", cfg.LogLevel, "Log level")
	firstKind := flag.String("first", cfg.First.Kind, "First agent: depth, time, random or softmax")
	firstDepth := flag.Int("first-depth", cfg.First.Depth, "Search depth of the first agent")
	firstDuration := flag.Duration("first-duration", cfg.First.Duration, "Search budget of the first agent")
	secondKind := flag.String("second", cfg.Second.Kind, "Second agent: depth, time, random or softmax")
	secondDepth := flag.Int("second-depth", cfg.Second.Depth, "Search depth of the second agent")
	secondDuration := flag.Duration("second-duration", cfg.Second.Duration, "Search budget of the second agent")
	flag.Parse()

	setupLogging(*level, os.Stderr)

	rules, err := game.RulesByName(*variant)
	if err != nil {
		log.Fatal().Err(err).Msgf("available variants: %s, %s", game.English{}.Name(), game.International{}.Name())
	}

	switch *experiment {
	case "comparison":
		first := agentConfig(1, cfg.First, *firstKind, *firstDepth, *firstDuration, cfg.Seed)
		second := agentConfig(2, cfg.Second, *secondKind, *secondDepth, *secondDuration, cfg.Seed+1)
		summary, err := experiments.RunSearchComparison(experiments.Comparison{
			Name:     "comparison",
			Output:   *output,
			Rules:    rules,
			Games:    *games,
			MaxTurns: *maxTurns,
			Agents:   [2]metrics.AgentConfig{first, second},
		})
		if err != nil {
			log.Fatal().Err(err).Msgf("comparison failed (evaluators: %v)", game.EvaluatorNames())
		}
		log.Info().
			Str("run", summary.RunID).
			Int("first", summary.Wins[first.ID]).
			Int("second", summary.Wins[second.ID]).
			Int("draws", summary.Draws).
			Msg("comparison complete")
	case "throughput":
		if _, err := experiments.RunThroughput(rules, *output, *maxDepth); err != nil {
			log.Fatal().Err(err).Msg("throughput experiment failed")
		}
	default:
		log.Fatal().Msgf("unknown experiment %q", *experiment)
	}
}

func setupLogging(level string, out io.Writer) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: out, TimeFormat: time.TimeOnly})
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		log.Warn().Err(err).Msgf("unknown log level %q, using info", level)
		return
	}
	zerolog.SetGlobalLevel(parsed)
}

func agentConfig(id int, spec config.AgentSpec, kind string, depth int, duration time.Duration, seed uint64) metrics.AgentConfig {
	return metrics.AgentConfig{
		ID:            id,
		Kind:          kind,
		Depth:         depth,
		Duration:      duration,
		Evaluator:     spec.Evaluator,
		CheckInterval: spec.CheckInterval,
		Temperature:   spec.Temperature,
		Seed:          seed,
	}
}
