package game

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/require"
)

// emptyBoard returns a size x size board with a light top-left square and no
// pieces.
func emptyBoard(t *testing.T, size int) *Board {
	t.Helper()
	pattern, err := NewCheckeredPattern(LightSquare, size, size)
	require.NoError(t, err)
	return NewBoard(pattern)
}

func place(b *Board, x, y int, colour Colour, direction Direction) *Piece {
	piece := NewPiece(colour, direction)
	b.SetPieceAt(Position{X: x, Y: y}, piece)
	return piece
}

func pos(x, y int) Position {
	return Position{X: x, Y: y}
}

var moveCmpOptions = []cmp.Option{
	cmp.AllowUnexported(Move{}),
	cmpopts.EquateEmpty(),
	cmpopts.SortSlices(func(a, b Move) bool { return a.String() < b.String() }),
}

// requireSameMoves compares two move lists regardless of order.
func requireSameMoves(t *testing.T, want, got []Move) {
	t.Helper()
	if diff := cmp.Diff(want, got, moveCmpOptions...); diff != "" {
		t.Fatalf("moves mismatch (-want +got):\n%s", diff)
	}
}
