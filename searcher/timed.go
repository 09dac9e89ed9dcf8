package searcher

import (
	"context"
	"fmt"
	"time"

	"draughts/experiments/metrics"
	"draughts/game"

	"github.com/rs/zerolog/log"
)

// TimeLimited deepens the search one ply at a time until its budget runs out.
// The deadline is polled before every root move and every checkInterval
// nodes, so a search overruns its budget by at most that many nodes.
type TimeLimited struct {
	search
	budget time.Duration
}

func NewTimeLimited(rules game.Rules, budget time.Duration, options ...Option) (*TimeLimited, error) {
	if rules == nil {
		return nil, fmt.Errorf("time-limited search needs rules")
	}
	if budget <= 0 {
		return nil, fmt.Errorf("budget must be positive, got %v", budget)
	}
	return &TimeLimited{search: newSearch(rules, options), budget: budget}, nil
}

func (t *TimeLimited) Budget() time.Duration {
	return t.budget
}

func (t *TimeLimited) Search(board *game.Board, player, opponent game.Colour) (game.Move, bool) {
	move, ok, _ := t.Find(context.Background(), board, player, opponent)
	return move, ok
}

// Find returns the best move of the deepest iteration that finished. An
// interrupted iteration still counts if it completed at least one root move:
// the previous best move is always searched first, so the partial result is
// never based on a shallower search.
func (t *TimeLimited) Find(ctx context.Context, board *game.Board, player, opponent game.Colour) (game.Move, bool, metrics.SearchMetric) {
	checkSides(board, player, opponent)
	t.metrics.Start()
	moves := t.rules.FindMoves(board, player)
	if len(moves) == 0 {
		return game.Move{}, false, t.metrics.Complete()
	}
	if len(moves) == 1 { // Nothing to decide
		return moves[0], true, t.metrics.Complete()
	}

	ctx, cancel := context.WithTimeout(ctx, t.budget)
	defer cancel()

	w := t.newWalk(board, player, opponent, stopper(ctx))
	best := moves[0]
	for depth := 1; depth <= t.maxDepth; depth++ {
		w.horizon = false
		move, score, completed, err := w.root(moves, depth)
		if err != nil {
			if completed > 0 {
				best = move
			}
			t.metrics.SetTimedOut()
			log.Debug().Int("depth", depth).Int("completed", completed).Int("moves", len(moves)).Dur("budget", t.Budget()).Msg("iteration interrupted")
			break
		}

		best = move
		t.metrics.SetDepth(depth)
		log.Debug().Int("depth", depth).Int("nodes", w.nodes).Float64("score", score).Stringer("move", best).Msg("iteration complete")

		if !w.horizon { // Every line ended before the depth limit
			break
		}
		moves = promote(moves, best)
	}
	return best, true, t.metrics.Complete()
}
