package agent

import (
	"context"

	"draughts/experiments/metrics"
	"draughts/game"
	"draughts/searcher"
)

type searchAgent struct {
	finder searcher.Finder
}

// NewSearchAgent returns an agent that plays the move its searcher finds.
func NewSearchAgent(finder searcher.Finder) Agent {
	return searchAgent{finder: finder}
}

func (a searchAgent) FindMove(board *game.Board, player, opponent game.Colour) (game.Move, metrics.SearchMetric) {
	move, _, metric := a.finder.Find(context.Background(), board, player, opponent)
	return move, metric
}
