package searcher

import (
	"math"
	"testing"

	"draughts/game"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

// exhaustive is minimax without pruning.
func exhaustive(rules game.Rules, b *game.Board, depth int, colour, player game.Colour, evaluate game.Evaluate) float64 {
	if depth == 0 {
		return evaluate(b, player)
	}
	moves := rules.FindMoves(b, colour)
	if len(moves) == 0 {
		return evaluate(b, player)
	}
	best := math.Inf(1)
	if colour == player {
		best = math.Inf(-1)
	}
	for _, move := range moves {
		performed := rules.Perform(move, b)
		value := exhaustive(rules, b, depth-1, colour.Opponent(), player, evaluate)
		performed.Undo()
		if colour == player {
			best = max(best, value)
		} else {
			best = min(best, value)
		}
	}
	return best
}

func exhaustiveBest(rules game.Rules, b *game.Board, depth int, player game.Colour, evaluate game.Evaluate) game.Move {
	var best game.Move
	score := math.Inf(-1)
	for i, move := range rules.FindMoves(b, player) {
		performed := rules.Perform(move, b)
		value := exhaustive(rules, b, depth-1, player.Opponent(), player, evaluate)
		performed.Undo()
		if i == 0 || value > score {
			best, score = move, value
		}
	}
	return best
}

// playout plays random moves from the starting position and returns the
// board with the side to move.
func playout(rules game.Rules, rng *rand.Rand, plies int) (*game.Board, game.Colour) {
	b := rules.NewBoard()
	colour := game.Light
	for i := 0; i < plies; i++ {
		moves := rules.FindMoves(b, colour)
		if len(moves) == 0 {
			break
		}
		rules.Perform(moves[rng.Intn(len(moves))], b)
		colour = colour.Opponent()
	}
	return b, colour
}

func TestAlphaBeta(t *testing.T) {
	cases := []struct {
		rules    game.Rules
		depth    int
		evaluate game.Evaluate
	}{
		{game.English{}, 4, game.EvaluateMaterial},
		{game.English{}, 3, game.EvaluateWeightedMaterial},
		{game.International{}, 2, game.EvaluateWeightedMaterial},
	}

	for _, c := range cases {
		t.Run(c.rules.Name()+" pruning picks the same move as plain minimax", func(t *testing.T) {
			rng := rand.New(rand.NewSource(42))
			s, err := NewDepthLimited(c.rules, c.depth, WithEvaluationFn(c.evaluate))
			require.NoError(t, err)

			for i := 0; i < 15; i++ {
				b, colour := playout(c.rules, rng, 10+rng.Intn(30))
				if len(c.rules.FindMoves(b, colour)) == 0 {
					continue
				}
				want := exhaustiveBest(c.rules, b, c.depth, colour, c.evaluate)

				got, ok := s.Search(b, colour, colour.Opponent())

				require.True(t, ok)
				require.True(t, want.Equal(got), "Expected %v but searched %v on\n%v", want, got, b)
			}
		})
	}

	t.Run("board is restored after searching", func(t *testing.T) {
		rng := rand.New(rand.NewSource(3))
		b, colour := playout(game.International{}, rng, 20)
		before := b.Copy()
		s, err := NewDepthLimited(game.International{}, 3)
		require.NoError(t, err)

		s.Search(b, colour, colour.Opponent())

		require.True(t, before.Equal(b), "Search should leave the board untouched")
	})

	t.Run("stopping mid search restores the board", func(t *testing.T) {
		b := game.English{}.NewBoard()
		before := b.Copy()
		calls := 0
		w := newSearch(game.English{}, []Option{WithCheckInterval(1)}).newWalk(b, game.Light, game.Dark, func() bool {
			calls++
			return calls > 50
		})

		_, _, _, err := w.root(game.English{}.FindMoves(b, game.Light), 6)

		require.ErrorIs(t, err, errStopped)
		require.True(t, before.Equal(b), "Stopping should undo every performed move")
	})
}

func TestInterruptedRoot(t *testing.T) {
	// Dark moves in generation order: (4,3)-(3,4) hands light a capture,
	// (4,3)-(5,4) and (7,6)-(6,7) keep the material.
	setup := func(t *testing.T) (*game.Board, []game.Move) {
		b := emptyBoard(t, 8)
		place(b, 4, 3, game.Dark, game.Down)
		place(b, 7, 6, game.Dark, game.Down)
		place(b, 2, 5, game.Light, game.Up)
		moves := game.English{}.FindMoves(b, game.Dark)
		require.Len(t, moves, 3)
		require.Equal(t, game.Position{X: 3, Y: 4}, moves[0].To())
		require.Equal(t, game.Position{X: 5, Y: 4}, moves[1].To())
		return b, moves
	}
	// stopAfter lets the given number of root moves start, then stops.
	stopAfter := func(roots int) func() bool {
		calls := 0
		return func() bool {
			calls++
			return calls > roots
		}
	}

	t.Run("best of the completed root moves is kept", func(t *testing.T) {
		b, moves := setup(t)
		before := b.Copy()
		w := newSearch(game.English{}, nil).newWalk(b, game.Dark, game.Light, stopAfter(2))

		best, score, completed, err := w.root(moves, 2)

		require.ErrorIs(t, err, errStopped)
		require.Equal(t, 2, completed)
		require.True(t, moves[1].Equal(best), "Expected %v but got %v", moves[1], best)
		require.Equal(t, 1.0, score)
		require.True(t, before.Equal(b))
	})

	t.Run("previous best searched first survives an early stop", func(t *testing.T) {
		b, moves := setup(t)
		w := newSearch(game.English{}, nil).newWalk(b, game.Dark, game.Light, stopAfter(1))

		best, _, completed, err := w.root(promote(moves, moves[1]), 2)

		require.ErrorIs(t, err, errStopped)
		require.Equal(t, 1, completed)
		require.True(t, moves[1].Equal(best), "Expected %v but got %v", moves[1], best)
	})

	t.Run("uninterrupted root picks the same move", func(t *testing.T) {
		b, moves := setup(t)
		w := newSearch(game.English{}, nil).newWalk(b, game.Dark, game.Light, stopAfter(len(moves)))

		best, _, completed, err := w.root(moves, 2)

		require.NoError(t, err)
		require.Equal(t, 3, completed)
		require.True(t, moves[1].Equal(best))
	})
}

func TestPromote(t *testing.T) {
	a := game.NewMove(game.Position{X: 1, Y: 2}, game.Position{X: 0, Y: 3})
	b := game.NewMove(game.Position{X: 1, Y: 2}, game.Position{X: 2, Y: 3})
	c := game.NewMove(game.Position{X: 3, Y: 2}, game.Position{X: 4, Y: 3})

	t.Run("moves best to the front", func(t *testing.T) {
		got := promote([]game.Move{a, b, c}, c)
		require.Equal(t, []game.Move{c, a, b}, got)
	})

	t.Run("keeps the order when best is first or missing", func(t *testing.T) {
		moves := []game.Move{a, b}
		require.Equal(t, moves, promote(moves, a))
		require.Equal(t, moves, promote(moves, c))
	})
}
