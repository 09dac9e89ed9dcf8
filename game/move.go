package game

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Jump is a single capture. The captured square is recorded explicitly as
// flying captures may land several squares beyond it.
type Jump struct {
	From   Position
	To     Position
	Jumped Position
}

// Move relocates a piece, optionally through a chain of captures. Moves are
// never modified after construction.
type Move struct {
	from  Position
	to    Position
	jumps []Jump
}

// NewMove returns a non-capturing move.
func NewMove(from, to Position) Move {
	return Move{from: from, to: to}
}

// NewJumpMove returns a capturing move through the given chain of jumps.
func NewJumpMove(jumps ...Jump) Move {
	if len(jumps) == 0 {
		panic("a capturing move needs at least one jump")
	}
	for i := 1; i < len(jumps); i++ {
		if jumps[i].From != jumps[i-1].To {
			panic(fmt.Sprintf("jump %d starts at %v but the previous one ends at %v", i, jumps[i].From, jumps[i-1].To))
		}
	}
	return Move{
		from:  jumps[0].From,
		to:    jumps[len(jumps)-1].To,
		jumps: slices.Clone(jumps),
	}
}

func (m Move) From() Position {
	return m.from
}

func (m Move) To() Position {
	return m.to
}

// Jumps returns a copy of the capture chain, empty for simple moves.
func (m Move) Jumps() []Jump {
	return slices.Clone(m.jumps)
}

func (m Move) IsCapture() bool {
	return len(m.jumps) > 0
}

// Captures returns the number of pieces the move takes.
func (m Move) Captures() int {
	return len(m.jumps)
}

func (m Move) Equal(other Move) bool {
	return m.from == other.from && m.to == other.to && slices.Equal(m.jumps, other.jumps)
}

func (m Move) String() string {
	if len(m.jumps) == 0 {
		return fmt.Sprintf("%v-%v", m.from, m.to)
	}
	var sb strings.Builder
	sb.WriteString(m.from.String())
	for _, jump := range m.jumps {
		sb.WriteByte('x')
		sb.WriteString(jump.To.String())
	}
	return sb.String()
}
