package game

// English implements English draughts (checkers): an 8x8 board, men move
// and capture forwards only, crowned pieces move one square in any
// direction. A man that reaches the far row by capturing stops there since
// it cannot capture any further forwards.
type English struct{}

var englishChain = chain{
	jumps: func(b *Board, piece *Piece, from Position, jumps []Jump) []Jump {
		for _, d := range forwardDiagonals(piece.direction) {
			jumps = appendStepJump(b, from, piece.colour, d, jumps)
		}
		return jumps
	},
	moves: func(b *Board, piece *Piece, from Position, moves []Move) []Move {
		for _, d := range forwardDiagonals(piece.direction) {
			moves = appendStepMove(b, from, d, moves)
		}
		return moves
	},
}

func (English) Name() string {
	return "english"
}

// NewBoard returns the starting position: 12 men each, dark on the top
// three rows moving down, light on the bottom three moving up.
func (English) NewBoard() *Board {
	return newStandardBoard(8, 3)
}

func (English) FindMoves(board *Board, colour Colour) []Move {
	return englishChain.findMoves(board, colour)
}

func (English) Perform(move Move, board *Board) *PerformedMove {
	return perform(move, board)
}
