package game

import "fmt"

// Colour identifies the owner of a piece.
type Colour int

const (
	Dark Colour = iota
	Light
)

// Opponent returns the opposing colour.
func (c Colour) Opponent() Colour {
	if c == Dark {
		return Light
	}
	return Dark
}

func (c Colour) String() string {
	switch c {
	case Dark:
		return "dark"
	case Light:
		return "light"
	default:
		return fmt.Sprintf("colour(%d)", int(c))
	}
}

// Direction is the way a piece may travel along the Y axis of a board.
type Direction int

const (
	Up   Direction = iota // Towards row 0
	Down                  // Towards the last row
	Both                  // Crowned pieces only
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Both:
		return "both"
	default:
		return fmt.Sprintf("direction(%d)", int(d))
	}
}

// Piece is a value that never changes after construction. Crowning a piece
// returns a new piece so that boards sharing the original are unaffected.
type Piece struct {
	colour    Colour
	direction Direction
}

func NewPiece(colour Colour, direction Direction) *Piece {
	if colour != Dark && colour != Light {
		panic(fmt.Sprintf("unknown colour %d", colour))
	}
	if direction < Up || direction > Both {
		panic(fmt.Sprintf("unknown direction %d", direction))
	}
	return &Piece{colour: colour, direction: direction}
}

func (p *Piece) Colour() Colour {
	return p.colour
}

func (p *Piece) Direction() Direction {
	return p.direction
}

func (p *Piece) IsCrowned() bool {
	return p.direction == Both
}

// Copy returns an equal piece with a distinct identity.
func (p *Piece) Copy() *Piece {
	c := *p
	return &c
}

// Crowned returns a crowned copy of the piece.
func (p *Piece) Crowned() *Piece {
	return &Piece{colour: p.colour, direction: Both}
}

// Equal reports whether both pieces have the same colour and direction.
// Two nil pieces (empty squares) are equal.
func (p *Piece) Equal(other *Piece) bool {
	if p == nil || other == nil {
		return p == other
	}
	return p.colour == other.colour && p.direction == other.direction
}

func (p *Piece) String() string {
	if p == nil {
		return "empty"
	}
	return fmt.Sprintf("%s %s", p.colour, p.direction)
}
