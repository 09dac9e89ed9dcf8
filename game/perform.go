package game

import "fmt"

type undoOp struct {
	pos   Position
	piece *Piece // Piece to put back at pos
}

// undoLog records every square write so that it can be reverted.
type undoLog []undoOp

func (l *undoLog) set(b *Board, pos Position, piece *Piece) {
	*l = append(*l, undoOp{pos: pos, piece: b.SetPieceAt(pos, piece)})
}

// rollback replays the inverse of each write, most recent first.
func (l undoLog) rollback(b *Board) {
	for i := len(l) - 1; i >= 0; i-- {
		b.SetPieceAt(l[i].pos, l[i].piece)
	}
}

// PerformedMove is the undo handle of a move applied to a board.
type PerformedMove struct {
	board *Board
	ops   undoLog
}

// Undo restores the board to the state it had before the move. It must be
// called at most once, and only while no later move is still applied.
func (p *PerformedMove) Undo() {
	p.ops.rollback(p.board)
}

// perform vacates the origin, places the piece at the destination, removes
// every captured piece and crowns the piece if it reached its crowning row.
func perform(move Move, b *Board) *PerformedMove {
	if b == nil {
		panic("cannot perform a move on a nil board")
	}
	piece := b.PieceAt(move.from)
	if piece == nil {
		panic(fmt.Sprintf("no piece at %v to perform %v", move.from, move))
	}

	ops := make(undoLog, 0, 3+len(move.jumps))
	ops.set(b, move.from, nil)
	ops.set(b, move.to, piece)
	for _, jump := range move.jumps {
		ops.set(b, jump.Jumped, nil)
	}
	if !piece.IsCrowned() && isCrowningRow(b, move.to.Y, piece.direction) {
		ops.set(b, move.to, piece.Crowned())
	}
	return &PerformedMove{board: b, ops: ops}
}

// isCrowningRow reports whether row y is the far row for a man moving in the
// given direction.
func isCrowningRow(b *Board, y int, direction Direction) bool {
	switch direction {
	case Up:
		return y == 0
	case Down:
		return y == b.height-1
	}
	panic(fmt.Sprintf("no crowning row for direction %v", direction))
}
