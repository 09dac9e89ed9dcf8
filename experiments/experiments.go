package experiments

import (
	"errors"
	"fmt"

	"draughts/engine"
	"draughts/experiments/metrics"
	"draughts/game"
	"draughts/searcher"
	"draughts/searcher/agent"

	"github.com/rs/zerolog/log"
)

var ErrUnknownAgent = errors.New("unknown agent kind")

// Comparison pits two agents against each other over a number of games.
type Comparison struct {
	Name     string
	Output   string
	Rules    game.Rules
	Games    int
	MaxTurns int
	Agents   [2]metrics.AgentConfig
}

type Summary struct {
	RunID string
	Dir   string
	Wins  map[int]int // By AgentConfig.ID
	Draws int
}

// RunSearchComparison plays the games of c, swapping colours after every
// game, and stores agent configs, game records and move records.
func RunSearchComparison(c Comparison) (Summary, error) {
	// Fail on bad configs before playing anything
	for _, config := range c.Agents {
		if _, err := createAgent(c.Rules, config); err != nil {
			return Summary{}, err
		}
	}

	count := 0
	summary := Summary{Wins: map[int]int{}}
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment between agent1=%+v and agent2=%+v...", c.Name, c.Agents[0], c.Agents[1])

	for i := 0; i < c.Games; i++ {
		// Alternate which agent moves first
		dark, light := c.Agents[i%2], c.Agents[(i+1)%2]

		log.Info().Msgf("starting game %d of %d with dark=%d light=%d...", i+1, c.Games, dark.ID, light.ID)

		winner, gameMetric, moveMetrics, err := runGame(c.Rules, c.MaxTurns, dark, light)
		if err != nil {
			return Summary{}, err
		}
		count++
		gameRecords = append(gameRecords, metrics.GameRecord{
			ID:         count,
			Dark:       dark.ID,
			Light:      light.ID,
			GameMetric: gameMetric,
		})
		for _, mm := range moveMetrics {
			moveRecords = append(moveRecords, metrics.MoveRecord{
				Game:       count,
				MoveMetric: mm,
			})
		}

		switch winner {
		case game.Dark.String():
			summary.Wins[dark.ID]++
		case game.Light.String():
			summary.Wins[light.ID]++
		default:
			summary.Draws++
		}
		log.Info().Msgf("completed game %d with winner: %q", i+1, winner)
	}

	log.Info().Msgf("completed %s experiment: %v wins, %d draws", c.Name, summary.Wins, summary.Draws)

	// Store experiment metadata and results
	writer, err := metrics.NewWriter(c.Output, c.Name)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	summary.RunID = writer.RunID()
	summary.Dir = writer.Dir()

	err = writer.WriteAgentConfigs(c.Agents[:])
	if err != nil {
		return Summary{}, fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	err = writer.WriteGameRecords(gameRecords)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteMoveRecords(moveRecords)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored move records in %s", summary.Dir)

	return summary, nil
}

// runGame executes a single game between two agents and returns the winner
func runGame(rules game.Rules, maxTurns int, dark, light metrics.AgentConfig) (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	darkAgent, err := createAgent(rules, dark)
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}
	lightAgent, err := createAgent(rules, light)
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}
	var runner engine.Runner = engine.LocalEngine(rules, game.Dark, maxTurns, darkAgent, lightAgent)

	winner, gameMetric, moveMetrics := runner.Run()

	return winner, gameMetric, moveMetrics, nil
}

func createAgent(rules game.Rules, config metrics.AgentConfig) (agent.Agent, error) {
	evaluate := game.EvaluateMaterial
	if config.Evaluator != "" {
		var err error
		evaluate, err = game.EvaluatorByName(config.Evaluator)
		if err != nil {
			return nil, err
		}
	}

	options := []searcher.Option{searcher.WithEvaluationFn(evaluate), searcher.WithMetrics()}
	if config.CheckInterval > 0 {
		options = append(options, searcher.WithCheckInterval(config.CheckInterval))
	}

	switch config.Kind {
	case "depth":
		s, err := searcher.NewDepthLimited(rules, config.Depth, options...)
		if err != nil {
			return nil, err
		}
		return agent.NewSearchAgent(s), nil
	case "time":
		s, err := searcher.NewTimeLimited(rules, config.Duration, options...)
		if err != nil {
			return nil, err
		}
		return agent.NewSearchAgent(s), nil
	case "random":
		return agent.NewRandomAgent(rules, config.Seed), nil
	case "softmax":
		if config.Temperature <= 0 {
			return nil, fmt.Errorf("temperature must be positive, got %v", config.Temperature)
		}
		return agent.NewSoftmaxAgent(rules, evaluate, config.Temperature, config.Seed), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAgent, config.Kind)
}
