package scrabble

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/wordroom-backend/internal/entity"
)

func place(board *entity.Board, letters map[int]string) []int {
	placed := make([]int, 0, len(letters))
	for pos, letter := range letters {
		board[pos].Letter = letter
		placed = append(placed, pos)
	}
	return placed
}

func TestScore(t *testing.T) {
	t.Run("Plain word on a board without effects", func(t *testing.T) {
		// Given: a board with no multipliers and CAT placed on row 6
		var board entity.Board
		placed := place(&board, map[int]string{100: "C", 101: "A", 102: "T"})

		// When: scoring the placement
		words, points := Score(&board, placed)

		// Then: C=3, A=1, T=1
		assert.Equal(t, []string{"CAT"}, words)
		assert.Equal(t, 5, points)
	})

	t.Run("Two letter word across the center doubles", func(t *testing.T) {
		// Given: a generated board, AT with A on the center
		board := entity.GenerateBoard()
		placed := place(&board, map[int]string{entity.CenterIndex: "A", entity.CenterIndex + 1: "T"})

		// When: scoring the placement
		words, points := Score(&board, placed)

		// Then: (1 + 1) * 2
		assert.Equal(t, []string{"AT"}, words)
		assert.Equal(t, 4, points)
	})

	t.Run("Effects under committed letters count again", func(t *testing.T) {
		// Given: A committed on the center, T placed below it
		board := entity.GenerateBoard()
		board[entity.CenterIndex].Letter = "A"
		placed := place(&board, map[int]string{entity.CenterIndex + entity.BoardSize: "T"})

		// When: scoring only the new tile
		words, points := Score(&board, placed)

		// Then: the center still doubles the word
		assert.Equal(t, []string{"AT"}, words)
		assert.Equal(t, 4, points)
	})

	t.Run("Single letters score nothing", func(t *testing.T) {
		var board entity.Board
		placed := place(&board, map[int]string{entity.CenterIndex: "Q"})

		words, points := Score(&board, placed)

		assert.Empty(t, words)
		assert.Zero(t, points)
	})
}

func TestExtractWords(t *testing.T) {
	t.Run("Finds the main word and the cross words once", func(t *testing.T) {
		// Given: CAT committed on row 7, then O and G placed below C to spell COG
		var board entity.Board
		board[111].Letter = "C"
		board[112].Letter = "A"
		board[113].Letter = "T"
		placed := place(&board, map[int]string{126: "O", 141: "G"})

		// When: extracting words
		words := ExtractWords(&board, placed)

		// Then: only the vertical word is new
		require.Len(t, words, 1)
		assert.Equal(t, "COG", words[0].Text)
		assert.Equal(t, Vertical, words[0].Direction)
		assert.Equal(t, 111, words[0].Start)
		assert.Equal(t, 141, words[0].End)
		assert.Equal(t, 3+1+2, words[0].Points)
	})

	t.Run("Parallel play forms a cross word per tile", func(t *testing.T) {
		// Given: AT committed at 112..113, and ON placed directly under it
		var board entity.Board
		board[112].Letter = "A"
		board[113].Letter = "T"
		placed := place(&board, map[int]string{127: "O", 128: "N"})

		// When: extracting words
		words := ExtractWords(&board, placed)

		// Then: the main word and two cross words, ordered by start then direction
		texts := make([]string, len(words))
		for i, w := range words {
			texts[i] = w.Text
		}
		assert.Equal(t, []string{"AO", "TN", "ON"}, texts)
	})

	t.Run("Rows never wrap", func(t *testing.T) {
		// Given: letters at the end of row 0 and the start of row 1
		var board entity.Board
		placed := place(&board, map[int]string{14: "A", 15: "T"})

		// When: extracting words
		words := ExtractWords(&board, placed)

		// Then: the two letters are not one word
		assert.Empty(t, words)
	})

	t.Run("Ignores positions without a letter", func(t *testing.T) {
		var board entity.Board

		assert.Empty(t, ExtractWords(&board, []int{entity.CenterIndex}))
	})
}
