package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateBoard(t *testing.T) {
	t.Run("Places the known multipliers", func(t *testing.T) {
		// Given: a freshly generated board
		board := GenerateBoard()

		// When / Then: well-known spaces carry the classic effects
		assert.Equal(t, EffectTripleWord, board[Index(0, 0)].Effect)
		assert.Equal(t, EffectTripleWord, board[Index(7, 0)].Effect)
		assert.Equal(t, EffectTripleWord, board[Index(14, 14)].Effect)
		assert.Equal(t, EffectDoubleWord, board[CenterIndex].Effect)
		assert.Equal(t, EffectDoubleWord, board[Index(1, 1)].Effect)
		assert.Equal(t, EffectTripleLetter, board[Index(5, 5)].Effect)
		assert.Equal(t, EffectTripleLetter, board[Index(1, 5)].Effect)
		assert.Equal(t, EffectDoubleLetter, board[Index(6, 6)].Effect)
		assert.Equal(t, EffectDoubleLetter, board[Index(3, 0)].Effect)
		assert.Equal(t, EffectDoubleLetter, board[Index(7, 3)].Effect)
		assert.Equal(t, EffectDoubleLetter, board[102].Effect)
		assert.Equal(t, EffectNone, board[Index(1, 0)].Effect)
	})

	t.Run("Has the classic number of each effect", func(t *testing.T) {
		// Given: a freshly generated board
		board := GenerateBoard()

		// When: counting the effects
		counts := make(map[Effect]int)
		for _, space := range board {
			counts[space.Effect]++
		}

		// Then: the layout matches the classic board
		assert.Equal(t, 8, counts[EffectTripleWord])
		assert.Equal(t, 17, counts[EffectDoubleWord])
		assert.Equal(t, 12, counts[EffectTripleLetter])
		assert.Equal(t, 24, counts[EffectDoubleLetter])
	})

	t.Run("Is symmetric on both axes and the diagonal", func(t *testing.T) {
		for x := 0; x < BoardSize; x++ {
			for y := 0; y < BoardSize; y++ {
				effect := EffectAt(x, y)

				require.Equal(t, effect, EffectAt(BoardSize-1-x, y), "x=%d y=%d", x, y)
				require.Equal(t, effect, EffectAt(x, BoardSize-1-y), "x=%d y=%d", x, y)
				require.Equal(t, effect, EffectAt(y, x), "x=%d y=%d", x, y)
			}
		}
	})

	t.Run("Is deterministic and empty", func(t *testing.T) {
		// Given / When: two generated boards
		first, second := GenerateBoard(), GenerateBoard()

		// Then: they are equal and nothing is placed
		assert.Equal(t, first, second)
		for i := range first {
			assert.False(t, first.Occupied(i))
			assert.Empty(t, first[i].Owner)
		}
	})
}

func TestEffect_Multipliers(t *testing.T) {
	tests := []struct {
		effect Effect
		letter int
		word   int
	}{
		{EffectNone, 1, 1},
		{EffectDoubleLetter, 2, 1},
		{EffectTripleLetter, 3, 1},
		{EffectDoubleWord, 1, 2},
		{EffectTripleWord, 1, 3},
	}

	for _, tt := range tests {
		t.Run(string(tt.effect), func(t *testing.T) {
			assert.Equal(t, tt.letter, tt.effect.LetterMultiplier())
			assert.Equal(t, tt.word, tt.effect.WordMultiplier())
		})
	}
}

func TestBoard_Occupied(t *testing.T) {
	t.Run("Is false outside the board", func(t *testing.T) {
		board := GenerateBoard()
		board[0].Letter = "A"

		assert.True(t, board.Occupied(0))
		assert.False(t, board.Occupied(-1))
		assert.False(t, board.Occupied(BoardCells))
	})
}

func TestBoard_Clone(t *testing.T) {
	t.Run("Changes to the clone do not leak", func(t *testing.T) {
		// Given: a board and its clone
		board := GenerateBoard()
		clone := board.Clone()

		// When: the clone is modified
		clone[CenterIndex].Letter = "Z"

		// Then: the original stays empty
		assert.False(t, board.Occupied(CenterIndex))
		assert.True(t, clone.Occupied(CenterIndex))
	})
}

func TestBoard_Coordinates(t *testing.T) {
	assert.Equal(t, 112, CenterIndex)
	assert.Equal(t, 7, Col(CenterIndex))
	assert.Equal(t, 7, Row(CenterIndex))
	assert.Equal(t, 102, Index(12, 6))
	assert.True(t, InBounds(224))
	assert.False(t, InBounds(225))
}
