package gamemaster

import (
	"errors"
	"fmt"

	"draughts/game"

	"golang.org/x/exp/slices"
)

var (
	ErrGameOver    = errors.New("game is over")
	ErrIllegalMove = errors.New("illegal move")
)

// Match referees a single game. Moves are committed to its board and never
// undone.
type Match struct {
	rules    game.Rules
	board    *game.Board
	turn     game.Colour
	maxTurns int
	moves    int
	legal    []game.Move // Legal moves of the side to move
	winner   game.Colour
	over     bool
	decided  bool
}

// NewMatch sets up the starting position of the variant with first to move.
// A game that reaches maxTurns moves is a draw; zero means no limit.
func NewMatch(rules game.Rules, first game.Colour, maxTurns int) *Match {
	return NewMatchFrom(rules, rules.NewBoard(), first, maxTurns)
}

// NewMatchFrom continues a game from the given position, which the match
// takes ownership of.
func NewMatchFrom(rules game.Rules, board *game.Board, first game.Colour, maxTurns int) *Match {
	m := &Match{
		rules:    rules,
		board:    board,
		turn:     first,
		maxTurns: maxTurns,
	}
	m.update()
	return m
}

func (m *Match) Rules() game.Rules {
	return m.rules
}

// Board returns a copy of the current position that callers may mutate.
func (m *Match) Board() *game.Board {
	return m.board.Copy()
}

func (m *Match) Turn() game.Colour {
	return m.turn
}

// Moves returns the number of moves played so far.
func (m *Match) Moves() int {
	return m.moves
}

func (m *Match) LegalMoves() []game.Move {
	return slices.Clone(m.legal)
}

func (m *Match) IsOver() bool {
	return m.over
}

// Winner reports the winning colour. It returns false while the game is
// running and for draws.
func (m *Match) Winner() (game.Colour, bool) {
	return m.winner, m.decided
}

func (m *Match) Play(move game.Move) error {
	if m.over {
		return ErrGameOver
	}
	if !slices.ContainsFunc(m.legal, move.Equal) {
		return fmt.Errorf("%w: %v for %v", ErrIllegalMove, move, m.turn)
	}

	m.rules.Perform(move, m.board)
	m.moves++
	m.turn = m.turn.Opponent()
	m.update()
	return nil
}

// update lists the legal moves of the side to move and detects the end of
// the game: a side without moves loses.
func (m *Match) update() {
	m.legal = m.rules.FindMoves(m.board, m.turn)
	switch {
	case len(m.legal) == 0:
		m.over = true
		m.decided = true
		m.winner = m.turn.Opponent()
	case m.maxTurns > 0 && m.moves >= m.maxTurns:
		m.over = true
	}
}
