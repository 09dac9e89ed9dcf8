package game

import (
	"fmt"
	"strings"
)

// Position is a square on a board. X runs left to right and Y top to bottom.
type Position struct {
	X, Y int
}

func (p Position) step(d diagonal) Position {
	return Position{X: p.X + d.dx, Y: p.Y + d.dy}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Board is a fixed size grid of squares. Only the playable (dark) squares
// can hold pieces; they are kept in a dense array, in scan order, so that
// move generation can skip the rest of the grid. The grid itself only stores
// indices into the dense array, so both views always agree.
type Board struct {
	width     int
	height    int
	index     []int      // Grid square -> dense index, -1 if not playable
	positions []Position // Playable squares
	pieces    []*Piece   // Piece per playable square, nil if empty
}

// NewBoard creates an empty board whose playable squares are the dark
// squares of the pattern.
func NewBoard(pattern CheckeredPattern) *Board {
	b := &Board{
		width:  pattern.Width(),
		height: pattern.Height(),
		index:  make([]int, pattern.Width()*pattern.Height()),
	}
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			i := y*b.width + x
			if pattern.ColourAt(x, y) != DarkSquare {
				b.index[i] = -1
				continue
			}
			b.index[i] = len(b.positions)
			b.positions = append(b.positions, Position{X: x, Y: y})
		}
	}
	b.pieces = make([]*Piece, len(b.positions))
	return b
}

func (b *Board) Width() int {
	return b.width
}

func (b *Board) Height() int {
	return b.height
}

// Contains reports whether the position lies within the grid.
func (b *Board) Contains(pos Position) bool {
	return pos.X >= 0 && pos.Y >= 0 && pos.X < b.width && pos.Y < b.height
}

func (b *Board) IsPlayable(pos Position) bool {
	return b.Contains(pos) && b.index[pos.Y*b.width+pos.X] >= 0
}

// PieceAt returns the piece at the position, or nil if the square is empty,
// not playable or off the board.
func (b *Board) PieceAt(pos Position) *Piece {
	if !b.Contains(pos) {
		return nil
	}
	i := b.index[pos.Y*b.width+pos.X]
	if i < 0 {
		return nil
	}
	return b.pieces[i]
}

// IsEmpty reports whether the position is a playable square with no piece.
func (b *Board) IsEmpty(pos Position) bool {
	return b.IsPlayable(pos) && b.pieces[b.index[pos.Y*b.width+pos.X]] == nil
}

// SetPieceAt places the piece (nil to clear) and returns what was there.
func (b *Board) SetPieceAt(pos Position, piece *Piece) *Piece {
	if !b.IsPlayable(pos) {
		panic(fmt.Sprintf("position %v is not a playable square", pos))
	}
	i := b.index[pos.Y*b.width+pos.X]
	previous := b.pieces[i]
	b.pieces[i] = piece
	return previous
}

// Len returns the number of playable squares.
func (b *Board) Len() int {
	return len(b.positions)
}

// PositionAt returns the i-th playable square.
func (b *Board) PositionAt(i int) Position {
	return b.positions[i]
}

// PieceAtIndex returns the piece on the i-th playable square.
func (b *Board) PieceAtIndex(i int) *Piece {
	return b.pieces[i]
}

// Copy returns a board with the same layout and pieces. Pieces are shared
// since they are immutable.
func (b *Board) Copy() *Board {
	c := &Board{
		width:     b.width,
		height:    b.height,
		index:     b.index,
		positions: b.positions,
		pieces:    make([]*Piece, len(b.pieces)),
	}
	copy(c.pieces, b.pieces)
	return c
}

// Equal reports whether both boards have the same layout and equal pieces
// on every square.
func (b *Board) Equal(other *Board) bool {
	if b.width != other.width || b.height != other.height || len(b.pieces) != len(other.pieces) {
		return false
	}
	for i, piece := range b.pieces {
		if b.positions[i] != other.positions[i] || !piece.Equal(other.pieces[i]) {
			return false
		}
	}
	return true
}

// Count tallies the men and crowned pieces of a colour.
func (b *Board) Count(colour Colour) (men, kings int) {
	for _, piece := range b.pieces {
		if piece == nil || piece.colour != colour {
			continue
		}
		if piece.IsCrowned() {
			kings++
		} else {
			men++
		}
	}
	return men, kings
}

// String draws the board one row per line: d/l for men, D/L for crowned
// pieces, '.' for empty playable squares and ' ' for the rest.
func (b *Board) String() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			pos := Position{X: x, Y: y}
			if !b.IsPlayable(pos) {
				sb.WriteByte(' ')
				continue
			}
			sb.WriteByte(symbol(b.PieceAt(pos)))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func symbol(piece *Piece) byte {
	if piece == nil {
		return '.'
	}
	s := byte('d')
	if piece.colour == Light {
		s = 'l'
	}
	if piece.IsCrowned() {
		s -= 'a' - 'A'
	}
	return s
}
