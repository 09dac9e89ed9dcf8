package game

// MoveGenerator lists every legal move for a colour. The board may be
// mutated while generating but is always restored before returning.
type MoveGenerator interface {
	FindMoves(board *Board, colour Colour) []Move
}

// MovePerformer applies a move to a board in place. The returned handle
// restores the board to its exact prior state when undone.
type MovePerformer interface {
	Perform(move Move, board *Board) *PerformedMove
}

// Rules bundles the generator and performer of a draughts variant together
// with its starting layout.
type Rules interface {
	MoveGenerator
	MovePerformer
	Name() string
	NewBoard() *Board
}

// Evaluate scores a board from the owner's perspective, higher is better.
// Implementations must not modify the board.
type Evaluate func(board *Board, owner Colour) float64
