package game

// International implements international draughts: a 10x10 board, men move
// forwards but capture in all four directions, and crowned pieces fly along
// open diagonals when moving and capturing.
type International struct{}

var internationalChain = chain{
	jumps: func(b *Board, piece *Piece, from Position, jumps []Jump) []Jump {
		if piece.IsCrowned() {
			for _, d := range allDiagonals {
				jumps = appendFlyingJumps(b, from, piece.colour, d, jumps)
			}
			return jumps
		}
		for _, d := range allDiagonals {
			jumps = appendStepJump(b, from, piece.colour, d, jumps)
		}
		return jumps
	},
	moves: func(b *Board, piece *Piece, from Position, moves []Move) []Move {
		if piece.IsCrowned() {
			for _, d := range allDiagonals {
				moves = appendFlyingMoves(b, from, d, moves)
			}
			return moves
		}
		for _, d := range forwardDiagonals(piece.direction) {
			moves = appendStepMove(b, from, d, moves)
		}
		return moves
	},
}

func (International) Name() string {
	return "international"
}

// NewBoard returns the starting position: 20 men each on the four rows
// nearest each player.
func (International) NewBoard() *Board {
	return newStandardBoard(10, 4)
}

func (International) FindMoves(board *Board, colour Colour) []Move {
	return internationalChain.findMoves(board, colour)
}

func (International) Perform(move Move, board *Board) *PerformedMove {
	return perform(move, board)
}
