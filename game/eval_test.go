package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMaterialDifference(t *testing.T) {
	t.Run("balanced opening scores zero", func(t *testing.T) {
		b := English{}.NewBoard()
		require.Zero(t, EvaluateMaterial(b, Dark))
		require.Zero(t, EvaluateMaterial(b, Light))
	})

	t.Run("weights crowned pieces", func(t *testing.T) {
		b := emptyBoard(t, 8)
		place(b, 1, 0, Dark, Down)
		place(b, 3, 0, Dark, Both)
		place(b, 0, 7, Light, Up)

		require.Equal(t, 1.0, EvaluateMaterial(b, Dark))
		require.Equal(t, 1.5, EvaluateWeightedMaterial(b, Dark))
		require.Equal(t, 4.0, MaterialDifference(1, 4)(b, Dark))
	})

	t.Run("antisymmetric between owners", func(t *testing.T) {
		b := emptyBoard(t, 8)
		place(b, 1, 0, Dark, Down)
		place(b, 3, 0, Dark, Both)
		place(b, 0, 7, Light, Up)
		place(b, 2, 7, Light, Up)
		place(b, 4, 7, Light, Up)

		for _, evaluate := range []Evaluate{EvaluateMaterial, EvaluateWeightedMaterial} {
			require.Equal(t, evaluate(b, Dark), -evaluate(b, Light))
		}
	})

	t.Run("does not modify the board", func(t *testing.T) {
		b := International{}.NewBoard()
		before := b.Copy()

		EvaluateWeightedMaterial(b, Light)

		require.True(t, before.Equal(b))
	})

	t.Run("lookup by name", func(t *testing.T) {
		evaluate, err := EvaluatorByName("weighted")
		require.NoError(t, err)
		require.NotNil(t, evaluate)

		_, err = EvaluatorByName("mobility")
		require.ErrorIs(t, err, ErrUnknownEvaluator)
		require.Equal(t, []string{"material", "weighted"}, EvaluatorNames())
	})
}
