package game

import "fmt"

type diagonal struct {
	dx, dy int
}

var (
	upLeft    = diagonal{dx: -1, dy: -1}
	upRight   = diagonal{dx: 1, dy: -1}
	downLeft  = diagonal{dx: -1, dy: 1}
	downRight = diagonal{dx: 1, dy: 1}

	upDiagonals   = []diagonal{upLeft, upRight}
	downDiagonals = []diagonal{downLeft, downRight}
	allDiagonals  = []diagonal{upLeft, upRight, downLeft, downRight}
)

// forwardDiagonals returns the diagonals a piece travelling in the given
// direction may move along.
func forwardDiagonals(direction Direction) []diagonal {
	switch direction {
	case Up:
		return upDiagonals
	case Down:
		return downDiagonals
	case Both:
		return allDiagonals
	}
	panic(fmt.Sprintf("unhandled direction %v", direction))
}

func isOpponent(piece *Piece, colour Colour) bool {
	return piece != nil && piece.colour != colour
}

// appendStepJump adds the capture over the adjacent square along d, if the
// adjacent square holds an opponent and the square beyond it is empty.
func appendStepJump(b *Board, from Position, colour Colour, d diagonal, jumps []Jump) []Jump {
	jumped := from.step(d)
	to := jumped.step(d)
	if isOpponent(b.PieceAt(jumped), colour) && b.IsEmpty(to) {
		jumps = append(jumps, Jump{From: from, To: to, Jumped: jumped})
	}
	return jumps
}

// appendFlyingJumps adds every capture along d for a flying piece: the first
// occupied square must hold an opponent, and each empty square beyond it up
// to the next obstacle is a landing square.
func appendFlyingJumps(b *Board, from Position, colour Colour, d diagonal, jumps []Jump) []Jump {
	jumped := from.step(d)
	for b.IsEmpty(jumped) {
		jumped = jumped.step(d)
	}
	if !isOpponent(b.PieceAt(jumped), colour) {
		return jumps
	}
	for to := jumped.step(d); b.IsEmpty(to); to = to.step(d) {
		jumps = append(jumps, Jump{From: from, To: to, Jumped: jumped})
	}
	return jumps
}

func appendStepMove(b *Board, from Position, d diagonal, moves []Move) []Move {
	if to := from.step(d); b.IsEmpty(to) {
		moves = append(moves, NewMove(from, to))
	}
	return moves
}

func appendFlyingMoves(b *Board, from Position, d diagonal, moves []Move) []Move {
	for to := from.step(d); b.IsEmpty(to); to = to.step(d) {
		moves = append(moves, NewMove(from, to))
	}
	return moves
}

// chain holds the variant specific parts of move generation.
type chain struct {
	// jumps appends the single captures available to piece standing at from.
	jumps func(b *Board, piece *Piece, from Position, jumps []Jump) []Jump
	// moves appends the non-capturing moves available to piece at from.
	moves func(b *Board, piece *Piece, from Position, moves []Move) []Move
}

// findMoves lists all legal moves for the colour. Captures are compulsory:
// once any piece can capture, simple moves are no longer collected and only
// complete capture sequences are returned.
func (c chain) findMoves(b *Board, colour Colour) []Move {
	if b == nil {
		panic("cannot find moves on a nil board")
	}
	var jumps []Jump
	var moves []Move
	for i := 0; i < b.Len(); i++ {
		piece := b.PieceAtIndex(i)
		if piece == nil || piece.colour != colour {
			continue
		}
		from := b.PositionAt(i)
		jumps = c.jumps(b, piece, from, jumps)
		if len(jumps) == 0 {
			moves = c.moves(b, piece, from, moves)
		}
	}
	if len(jumps) == 0 {
		return moves
	}

	sequences := make([]Move, 0, len(jumps))
	for _, jump := range jumps {
		sequences = c.explore(b, b.PieceAt(jump.From), jump, nil, sequences)
	}
	return sequences
}

// explore performs jump on the board, then recursively follows every further
// capture available from the landing square. Each path that cannot be
// extended becomes one move. The board is restored before returning.
func (c chain) explore(b *Board, piece *Piece, jump Jump, path []Jump, sequences []Move) []Move {
	// Never share the backing array with sibling branches
	path = append(path[:len(path):len(path)], jump)

	var undo undoLog
	undo.set(b, jump.Jumped, nil)
	undo.set(b, jump.From, nil)
	undo.set(b, jump.To, piece)
	defer undo.rollback(b)

	further := c.jumps(b, piece, jump.To, nil)
	if len(further) == 0 {
		return append(sequences, Move{from: path[0].From, to: jump.To, jumps: path})
	}
	for _, next := range further {
		sequences = c.explore(b, piece, next, path, sequences)
	}
	return sequences
}
