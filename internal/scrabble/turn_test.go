package scrabble

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/wordroom-backend/internal/apperror"
	"github.com/rocketscienceinc/wordroom-backend/internal/entity"
)

func TestEvaluateTurn(t *testing.T) {
	dict := NewDictionary("cat", "at", "act")
	rack := []string{"C", "A", "T", "X"}

	t.Run("Prices a valid opening word", func(t *testing.T) {
		// Given: an empty board and CAT laid out from the center
		board := entity.GenerateBoard()
		before := board
		placements := entity.Pending{
			{Position: 112, RackIndex: 1},
			{Position: 111, RackIndex: 0},
			{Position: 113, RackIndex: 2},
		}

		// When: evaluating the turn
		result, err := EvaluateTurn(&board, placements, rack, dict)

		// Then: CAT doubled by the center, board untouched
		require.NoError(t, err)
		assert.Equal(t, []string{"CAT"}, result.Texts())
		assert.Equal(t, 10, result.Points)
		assert.Equal(t, before, board)
	})

	t.Run("Replays placements in submitted order", func(t *testing.T) {
		// Given: the same tiles but starting off center
		board := entity.GenerateBoard()
		placements := entity.Pending{
			{Position: 111, RackIndex: 0},
			{Position: 112, RackIndex: 1},
			{Position: 113, RackIndex: 2},
		}

		// When: evaluating the turn
		_, err := EvaluateTurn(&board, placements, rack, dict)

		// Then: the first tile is floating
		require.ErrorIs(t, err, apperror.ErrNotConnected)
	})

	t.Run("Blank tile matches any letter and scores zero", func(t *testing.T) {
		board := entity.GenerateBoard()
		placements := entity.Pending{
			{Position: 112, RackIndex: 1},
			{Position: 111, RackIndex: 0},
			{Position: 113, RackIndex: 2},
		}

		result, err := EvaluateTurn(&board, placements, []string{"C", entity.BlankTile, "T"}, dict)

		require.NoError(t, err)
		assert.Equal(t, []string{"C?T"}, result.Texts())
		assert.Equal(t, (3+0+1)*2, result.Points)
	})

	errorTests := []struct {
		name       string
		committed  map[int]string
		placements entity.Pending
		wantErr    error
	}{
		{
			name:    "Nothing placed",
			wantErr: apperror.ErrNoTilesPlaced,
		},
		{
			name:       "Rack index off the rack",
			placements: entity.Pending{{Position: 112, RackIndex: 4}},
			wantErr:    apperror.ErrInvalidRackIndex,
		},
		{
			name:       "Negative rack index",
			placements: entity.Pending{{Position: 112, RackIndex: -1}},
			wantErr:    apperror.ErrInvalidRackIndex,
		},
		{
			name:       "Rack index used twice",
			placements: entity.Pending{{Position: 112, RackIndex: 0}, {Position: 113, RackIndex: 0}},
			wantErr:    apperror.ErrInvalidRackIndex,
		},
		{
			name:       "Single tile forms no word",
			placements: entity.Pending{{Position: 112, RackIndex: 0}},
			wantErr:    apperror.ErrNoWordFormed,
		},
		{
			name:       "Word not in the dictionary",
			placements: entity.Pending{{Position: 112, RackIndex: 2}, {Position: 113, RackIndex: 3}},
			wantErr:    apperror.ErrUnknownWord,
		},
		{
			name:       "Placement on a committed letter",
			committed:  map[int]string{112: "A"},
			placements: entity.Pending{{Position: 112, RackIndex: 0}},
			wantErr:    apperror.ErrCellOccupied,
		},
		{
			name:       "Tiles not on one line",
			placements: entity.Pending{{Position: 112, RackIndex: 0}, {Position: 113, RackIndex: 1}, {Position: 128, RackIndex: 2}},
			wantErr:    apperror.ErrNotAligned,
		},
	}

	for _, tt := range errorTests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: a board with the committed letters
			board := entity.GenerateBoard()
			for pos, letter := range tt.committed {
				board[pos].Letter = letter
			}
			before := board

			// When: evaluating the turn
			result, err := EvaluateTurn(&board, tt.placements, rack, dict)

			// Then: it is rejected and nothing changed
			require.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, result)
			assert.Equal(t, before, board)
		})
	}
}

func TestCommitTurn(t *testing.T) {
	t.Run("Writes tiles, spends the rack, scores and refills", func(t *testing.T) {
		// Given: a user holding C A T X and an evaluated turn
		board := entity.GenerateBoard()
		user := entity.NewUser("u1", "alice", 7)
		user.Tiles = []string{"C", "A", "T", "X"}
		user.Score = 3

		placements := entity.Pending{
			{Position: 112, RackIndex: 1},
			{Position: 111, RackIndex: 0},
			{Position: 113, RackIndex: 2},
		}

		// When: committing it
		CommitTurn(&board, user, placements, 10, rand.New(rand.NewSource(7)))

		// Then: the board carries the letters with their owner
		assert.Equal(t, entity.Space{Letter: "C", Owner: "u1"}, board[111])
		assert.Equal(t, "A", board[112].Letter)
		assert.Equal(t, entity.EffectDoubleWord, board[112].Effect)
		assert.Equal(t, "T", board[113].Letter)

		// And: the rack kept X first and was topped up
		require.Len(t, user.Tiles, 7)
		assert.Equal(t, "X", user.Tiles[0])
		assert.Equal(t, 13, user.Score)
	})
}
