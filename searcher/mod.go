package searcher

import (
	"context"
	"fmt"

	"draughts/experiments/metrics"
	"draughts/game"
	"draughts/meta"
)

// MoveSearch picks a move for player. It reports false only when player has
// no legal move.
type MoveSearch interface {
	Search(board *game.Board, player, opponent game.Colour) (game.Move, bool)
}

// Finder is a MoveSearch that can be cancelled and reports how it went.
type Finder interface {
	MoveSearch
	Find(ctx context.Context, board *game.Board, player, opponent game.Colour) (game.Move, bool, metrics.SearchMetric)
}

type Option func(s *search)

// search holds what both alpha-beta searches share.
type search struct {
	rules         game.Rules
	evaluate      game.Evaluate
	metrics       metrics.Collector
	checkInterval int
	maxDepth      int
}

func WithEvaluationFn(evaluate game.Evaluate) Option {
	return func(s *search) {
		if evaluate != nil {
			s.evaluate = evaluate
		}
	}
}

func WithMetrics() Option {
	return func(s *search) {
		s.metrics = metrics.NewCollector()
	}
}

// WithCheckInterval sets how many nodes are visited between two checks of the
// deadline or the context.
func WithCheckInterval(nodes int) Option {
	return func(s *search) {
		if nodes > 0 {
			s.checkInterval = nodes
		}
	}
}

// WithMaxDepth bounds iterative deepening.
func WithMaxDepth(depth int) Option {
	return func(s *search) {
		if depth > 0 {
			s.maxDepth = depth
		}
	}
}

func newSearch(rules game.Rules, options []Option) search {
	s := search{ // Default values
		rules:         rules,
		evaluate:      game.EvaluateMaterial,
		metrics:       metrics.NewDummyCollector(),
		checkInterval: meta.DEFAULT_CHECK_INTERVAL,
		maxDepth:      meta.MAX_DEPTH,
	}
	for _, option := range options {
		option(&s)
	}
	return s
}

// checkSides rejects searches that could never alternate turns properly.
func checkSides(board *game.Board, player, opponent game.Colour) {
	if board == nil {
		panic("cannot search a nil board")
	}
	if opponent != player.Opponent() {
		panic(fmt.Sprintf("%v cannot play against %v", player, opponent))
	}
}

// stopper returns a poll for ctx, or nil if ctx can never be cancelled.
func stopper(ctx context.Context) func() bool {
	if ctx.Done() == nil {
		return nil
	}
	return func() bool {
		return ctx.Err() != nil
	}
}
