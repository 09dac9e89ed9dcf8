package agent

import (
	"draughts/experiments/metrics"
	"draughts/game"
)

type Agent interface {
	// FindMove returns the chosen move and the metrics (if collected) of the search behind it.
	// The board is the agent's own copy.
	FindMove(board *game.Board, player, opponent game.Colour) (game.Move, metrics.SearchMetric)
}
