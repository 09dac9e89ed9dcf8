package game

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"
)

var ErrUnknownEvaluator = errors.New("unknown evaluator")

var (
	// EvaluateMaterial counts every piece equally.
	EvaluateMaterial = MaterialDifference(1, 1)
	// EvaluateWeightedMaterial values crowned pieces above men.
	EvaluateWeightedMaterial = MaterialDifference(1, 1.5)
)

var evaluators = map[string]Evaluate{
	"material": EvaluateMaterial,
	"weighted": EvaluateWeightedMaterial,
}

// MaterialDifference scores a board as the owner's weighted piece count
// minus the opponent's.
func MaterialDifference(manWeight, kingWeight float64) Evaluate {
	return func(b *Board, owner Colour) float64 {
		score := 0.0
		for _, piece := range b.pieces {
			if piece == nil {
				continue
			}
			weight := manWeight
			if piece.IsCrowned() {
				weight = kingWeight
			}
			if piece.colour == owner {
				score += weight
			} else {
				score -= weight
			}
		}
		return score
	}
}

// EvaluatorByName returns a registered evaluator.
func EvaluatorByName(name string) (Evaluate, error) {
	evaluate, ok := evaluators[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEvaluator, name)
	}
	return evaluate, nil
}

// EvaluatorNames lists the registered evaluators in sorted order.
func EvaluatorNames() []string {
	names := make([]string, 0, len(evaluators))
	for name := range evaluators {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
