package searcher

import (
	"errors"
	"math"

	"draughts/game"

	"golang.org/x/exp/slices"
)

var errStopped = errors.New("search stopped")

// walk is the state of one alpha-beta traversal. The board is mutated in
// place and every performed move is undone before control returns, on the
// stopping path as well.
type walk struct {
	search
	board    *game.Board
	player   game.Colour
	opponent game.Colour
	stop     func() bool // Nil when the walk cannot be interrupted
	nodes    int
	horizon  bool // Set once a leaf is cut off by the depth limit
}

func (s search) newWalk(board *game.Board, player, opponent game.Colour, stop func() bool) *walk {
	return &walk{
		search:   s,
		board:    board,
		player:   player,
		opponent: opponent,
		stop:     stop,
	}
}

func (w *walk) next(colour game.Colour) game.Colour {
	if colour == w.player {
		return w.opponent
	}
	return w.player
}

// root scores every move to the given depth and returns the first one with
// the highest score. On a stop it returns the best of the moves completed
// so far.
func (w *walk) root(moves []game.Move, depth int) (best game.Move, score float64, completed int, err error) {
	alpha, beta := math.Inf(-1), math.Inf(1)
	for i, move := range moves {
		if w.stop != nil && w.stop() {
			return best, score, i, errStopped
		}

		performed := w.rules.Perform(move, w.board)
		value, err := w.minimax(depth-1, w.opponent, alpha, beta)
		performed.Undo()
		if err != nil {
			return best, score, i, err
		}

		if i == 0 || value > score {
			best, score = move, value
		}
		alpha = max(alpha, score)
	}
	return best, score, len(moves), nil
}

// minimax returns the value of the board for the searching player with
// colour to move.
func (w *walk) minimax(depth int, colour game.Colour, alpha, beta float64) (float64, error) {
	w.nodes++
	w.metrics.AddNode()
	if w.stop != nil && w.nodes%w.checkInterval == 0 && w.stop() {
		return 0, errStopped
	}

	if depth == 0 {
		w.horizon = true
		return w.evaluate(w.board, w.player), nil
	}
	moves := w.rules.FindMoves(w.board, colour)
	if len(moves) == 0 { // Terminal
		return w.evaluate(w.board, w.player), nil
	}

	maximising := colour == w.player
	best := math.Inf(1)
	if maximising {
		best = math.Inf(-1)
	}
	for _, move := range moves {
		performed := w.rules.Perform(move, w.board)
		value, err := w.minimax(depth-1, w.next(colour), alpha, beta)
		performed.Undo()
		if err != nil {
			return 0, err
		}

		if maximising {
			best = max(best, value)
			alpha = max(alpha, best)
		} else {
			best = min(best, value)
			beta = min(beta, best)
		}
		if alpha >= beta {
			w.metrics.AddCutoff()
			break
		}
	}
	return best, nil
}

// promote moves best to the front, keeping the order of the others.
func promote(moves []game.Move, best game.Move) []game.Move {
	i := slices.IndexFunc(moves, best.Equal)
	if i <= 0 {
		return moves
	}
	ordered := make([]game.Move, 0, len(moves))
	ordered = append(ordered, moves[i])
	ordered = append(ordered, moves[:i]...)
	return append(ordered, moves[i+1:]...)
}
