package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRulesByName(t *testing.T) {
	t.Run("known variants", func(t *testing.T) {
		rules, err := RulesByName("English")
		require.NoError(t, err)
		require.IsType(t, English{}, rules)

		rules, err = RulesByName(" international ")
		require.NoError(t, err)
		require.IsType(t, International{}, rules)
	})

	t.Run("unknown variant", func(t *testing.T) {
		_, err := RulesByName("russian")
		require.ErrorIs(t, err, ErrUnknownVariant)
	})
}

func TestMove(t *testing.T) {
	t.Run("simple move", func(t *testing.T) {
		m := NewMove(pos(1, 3), pos(1, 5))
		require.Equal(t, pos(1, 3), m.From())
		require.Equal(t, pos(1, 5), m.To())
		require.False(t, m.IsCapture())
		require.Empty(t, m.Jumps())
		require.Equal(t, "(1,3)-(1,5)", m.String())
	})

	t.Run("jump move ends on its last leg", func(t *testing.T) {
		m := NewJumpMove(
			Jump{From: pos(5, 6), To: pos(3, 4), Jumped: pos(4, 5)},
			Jump{From: pos(3, 4), To: pos(1, 2), Jumped: pos(2, 3)},
		)
		require.Equal(t, pos(5, 6), m.From())
		require.Equal(t, pos(1, 2), m.To())
		require.Equal(t, 2, m.Captures())
		require.Equal(t, "(5,6)x(3,4)x(1,2)", m.String())
	})

	t.Run("jumps cannot be modified from outside", func(t *testing.T) {
		jumps := []Jump{{From: pos(3, 4), To: pos(1, 2), Jumped: pos(2, 3)}}
		m := NewJumpMove(jumps...)

		jumps[0].To = pos(7, 7)
		m.Jumps()[0].To = pos(7, 7)

		require.Equal(t, pos(1, 2), m.Jumps()[0].To)
	})

	t.Run("panics on broken chains", func(t *testing.T) {
		require.Panics(t, func() { NewJumpMove() })
		require.Panics(t, func() {
			NewJumpMove(
				Jump{From: pos(5, 6), To: pos(3, 4), Jumped: pos(4, 5)},
				Jump{From: pos(1, 4), To: pos(3, 2), Jumped: pos(2, 3)},
			)
		})
	})

	t.Run("equality", func(t *testing.T) {
		a := NewJumpMove(Jump{From: pos(3, 4), To: pos(1, 2), Jumped: pos(2, 3)})
		b := NewJumpMove(Jump{From: pos(3, 4), To: pos(1, 2), Jumped: pos(2, 3)})
		require.True(t, a.Equal(b))
		require.False(t, a.Equal(NewMove(pos(3, 4), pos(1, 2))))
	})
}
