package agent

import (
	"math"
	"time"

	"draughts/experiments/metrics"
	"draughts/game"

	"golang.org/x/exp/rand"
)

type randomAgent struct {
	rules game.Rules
	rng   *rand.Rand
}

// NewRandomAgent returns a baseline agent playing uniformly random legal moves.
func NewRandomAgent(rules game.Rules, seed uint64) Agent {
	return &randomAgent{rules: rules, rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) FindMove(board *game.Board, player, opponent game.Colour) (game.Move, metrics.SearchMetric) {
	start := time.Now()
	moves := a.rules.FindMoves(board, player)
	if len(moves) == 0 {
		return game.Move{}, metrics.SearchMetric{}
	}
	return moves[a.rng.Intn(len(moves))], metrics.SearchMetric{Duration: time.Since(start), Nodes: 1}
}

type softmaxAgent struct {
	rules       game.Rules
	evaluate    game.Evaluate
	temperature float64
	rng         *rand.Rand
}

// NewSoftmaxAgent returns an agent that samples moves by their one ply
// evaluation. Low temperatures play greedily, high ones close to randomly.
func NewSoftmaxAgent(rules game.Rules, evaluate game.Evaluate, temperature float64, seed uint64) Agent {
	if temperature <= 0 {
		panic("temperature must be positive")
	}
	return &softmaxAgent{
		rules:       rules,
		evaluate:    evaluate,
		temperature: temperature,
		rng:         rand.New(rand.NewSource(seed)),
	}
}

func (a *softmaxAgent) FindMove(board *game.Board, player, opponent game.Colour) (game.Move, metrics.SearchMetric) {
	start := time.Now()
	moves := a.rules.FindMoves(board, player)
	if len(moves) == 0 {
		return game.Move{}, metrics.SearchMetric{}
	}

	scores := make([]float64, len(moves))
	for i, move := range moves {
		performed := a.rules.Perform(move, board)
		scores[i] = a.evaluate(board, player)
		performed.Undo()
	}
	move := moves[sample(adjustTemperature(scores, a.temperature), a.rng.Float64())]
	return move, metrics.SearchMetric{Duration: time.Since(start), Nodes: len(moves), Depth: 1}
}

// adjustTemperature turns scores into a probability distribution.
func adjustTemperature(scores []float64, temperature float64) []float64 {
	highest := math.Inf(-1)
	for _, score := range scores {
		highest = max(highest, score)
	}
	sum := 0.0
	probs := make([]float64, len(scores))
	for i, score := range scores {
		probs[i] = math.Exp((score - highest) / temperature) // Shifted for stability
		sum += probs[i]
	}
	// Normalize
	for i := range probs {
		probs[i] /= sum
	}
	return probs
}

func sample(probs []float64, sampled float64) int {
	cumulative := 0.0
	for i, prob := range probs {
		cumulative += prob
		if sampled < cumulative {
			return i
		}
	}
	return len(probs) - 1 // Fallback in case of rounding errors
}
