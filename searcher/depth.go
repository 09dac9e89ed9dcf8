package searcher

import (
	"context"
	"fmt"

	"draughts/experiments/metrics"
	"draughts/game"

	"github.com/rs/zerolog/log"
)

// DepthLimited searches every move to a fixed ply depth. For a given board,
// depth and evaluator it always returns the same move.
type DepthLimited struct {
	search
	depth int
}

func NewDepthLimited(rules game.Rules, depth int, options ...Option) (*DepthLimited, error) {
	if rules == nil {
		return nil, fmt.Errorf("depth-limited search needs rules")
	}
	if depth < 1 {
		return nil, fmt.Errorf("depth must be positive, got %d", depth)
	}
	return &DepthLimited{search: newSearch(rules, options), depth: depth}, nil
}

func (d *DepthLimited) Depth() int {
	return d.depth
}

func (d *DepthLimited) Search(board *game.Board, player, opponent game.Colour) (game.Move, bool) {
	move, ok, _ := d.Find(context.Background(), board, player, opponent)
	return move, ok
}

// Find searches to the configured depth. If ctx is cancelled first, the best
// of the root moves completed so far is returned, or the first legal move if
// none completed.
func (d *DepthLimited) Find(ctx context.Context, board *game.Board, player, opponent game.Colour) (game.Move, bool, metrics.SearchMetric) {
	checkSides(board, player, opponent)
	d.metrics.Start()
	moves := d.rules.FindMoves(board, player)
	if len(moves) == 0 {
		return game.Move{}, false, d.metrics.Complete()
	}

	w := d.newWalk(board, player, opponent, stopper(ctx))
	best, score, completed, err := w.root(moves, d.depth)
	if err != nil {
		d.metrics.SetTimedOut()
		if completed == 0 {
			best = moves[0]
		}
		log.Debug().Int("completed", completed).Int("moves", len(moves)).Msg("depth-limited search cancelled")
	} else {
		d.metrics.SetDepth(d.Depth())
		log.Debug().Int("depth", d.Depth()).Int("nodes", w.nodes).Float64("score", score).Stringer("move", best).Msg("search complete")
	}
	return best, true, d.metrics.Complete()
}
