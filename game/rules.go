package game

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownVariant = errors.New("unknown variant")

// RulesByName selects a variant by its name.
func RulesByName(name string) (Rules, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case English{}.Name():
		return English{}, nil
	case International{}.Name():
		return International{}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}

// newStandardBoard lays out a size x size board with a light top-left square
// and fills the dark squares of the first and last rows with men.
func newStandardBoard(size, rows int) *Board {
	pattern, err := NewCheckeredPattern(LightSquare, size, size)
	if err != nil {
		panic(err)
	}
	b := NewBoard(pattern)
	for i := 0; i < b.Len(); i++ {
		pos := b.PositionAt(i)
		switch {
		case pos.Y < rows:
			b.SetPieceAt(pos, NewPiece(Dark, Down))
		case pos.Y >= size-rows:
			b.SetPieceAt(pos, NewPiece(Light, Up))
		}
	}
	return b
}
