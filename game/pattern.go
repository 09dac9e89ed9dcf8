package game

import (
	"errors"
	"fmt"
)

var ErrInvalidDimensions = errors.New("pattern dimensions must be positive")

type SquareColour int

const (
	LightSquare SquareColour = iota
	DarkSquare
)

func (s SquareColour) opposite() SquareColour {
	if s == LightSquare {
		return DarkSquare
	}
	return LightSquare
}

// CheckeredPattern alternates square colours starting from the top-left
// square. Pieces only ever stand on dark squares.
type CheckeredPattern struct {
	first  SquareColour
	width  int
	height int
}

func NewCheckeredPattern(first SquareColour, width, height int) (CheckeredPattern, error) {
	if first != LightSquare && first != DarkSquare {
		return CheckeredPattern{}, fmt.Errorf("unknown square colour %d", first)
	}
	if width < 1 || height < 1 {
		return CheckeredPattern{}, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, width, height)
	}
	return CheckeredPattern{first: first, width: width, height: height}, nil
}

func (p CheckeredPattern) Width() int {
	return p.width
}

func (p CheckeredPattern) Height() int {
	return p.height
}

// ColourAt returns the colour of the square at (x, y). Squares outside the
// pattern are light.
func (p CheckeredPattern) ColourAt(x, y int) SquareColour {
	if x < 0 || y < 0 || x >= p.width || y >= p.height {
		return LightSquare
	}
	if (x+y)%2 == 0 {
		return p.first
	}
	return p.first.opposite()
}
