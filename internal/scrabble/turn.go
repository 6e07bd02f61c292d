package scrabble

import (
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/wordroom-backend/internal/apperror"
	"github.com/rocketscienceinc/wordroom-backend/internal/entity"
)

type wordChecker interface {
	Contains(word string) bool
}

type TurnResult struct {
	Words  []Word `json:"words"`
	Points int    `json:"points"`
}

func (that *TurnResult) Texts() []string {
	texts := make([]string, len(that.Words))
	for i, word := range that.Words {
		texts[i] = word.Text
	}
	return texts
}

// EvaluateTurn - validates a whole turn against the committed board and prices it.
// Placements are replayed in the order they were made. The board is left untouched.
func EvaluateTurn(board *entity.Board, placements entity.Pending, rack []string, dict wordChecker) (*TurnResult, error) {
	if len(placements) == 0 {
		return nil, apperror.ErrNoTilesPlaced
	}

	if err := validateRackIndexes(placements, len(rack)); err != nil {
		return nil, err
	}

	pending := make(entity.Pending, 0, len(placements))
	for _, placement := range placements {
		if err := IsValidPlacement(placement.Position, board, pending); err != nil {
			return nil, fmt.Errorf("invalid placement: %w", err)
		}

		pending = append(pending, placement)
	}

	working := board.Clone()
	for _, placement := range pending {
		working[placement.Position].Letter = rack[placement.RackIndex]
	}

	words := ExtractWords(working, pending.Positions())
	if len(words) == 0 {
		return nil, apperror.ErrNoWordFormed
	}

	result := &TurnResult{Words: words}
	for _, word := range words {
		if dict != nil && !dict.Contains(word.Text) {
			return nil, fmt.Errorf("%w: %s", apperror.ErrUnknownWord, word.Text)
		}

		result.Points += word.Points
	}

	return result, nil
}

// CommitTurn - writes the placed tiles into the board, spends them from the rack, adds the points
// and refills the rack.
func CommitTurn(board *entity.Board, user *entity.User, placements entity.Pending, points int, rng *rand.Rand) {
	for _, placement := range placements {
		board[placement.Position].Letter = user.Tiles[placement.RackIndex]
		board[placement.Position].Owner = user.ID
	}

	user.SpendTiles(placements.RackIndexes())
	user.Score += points
	user.Tiles = entity.Refill(user.Tiles, user.TileLimit, rng)
}

func validateRackIndexes(placements entity.Pending, rackSize int) error {
	used := make(map[int]struct{}, len(placements))

	for _, placement := range placements {
		if placement.RackIndex < 0 || placement.RackIndex >= rackSize {
			return fmt.Errorf("%w: %d", apperror.ErrInvalidRackIndex, placement.RackIndex)
		}

		if _, ok := used[placement.RackIndex]; ok {
			return fmt.Errorf("%w: %d used twice", apperror.ErrInvalidRackIndex, placement.RackIndex)
		}

		used[placement.RackIndex] = struct{}{}
	}

	return nil
}
