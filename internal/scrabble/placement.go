package scrabble

import (
	"fmt"

	"github.com/rocketscienceinc/wordroom-backend/internal/apperror"
	"github.com/rocketscienceinc/wordroom-backend/internal/entity"
)

// IsValidPlacement - checks whether a tile may be put on pos given the committed board and the
// tiles already pending this turn. It never mutates its arguments.
func IsValidPlacement(pos int, board *entity.Board, pending entity.Pending) error {
	if !entity.InBounds(pos) {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidPosition, pos)
	}

	if pending.Has(pos) {
		return fmt.Errorf("%w: %d", apperror.ErrDuplicatePosition, pos)
	}

	if board.Occupied(pos) {
		return fmt.Errorf("%w: %d", apperror.ErrCellOccupied, pos)
	}

	if pos == entity.CenterIndex {
		return nil
	}

	if err := validateAlignment(pos, pending); err != nil {
		return err
	}

	if !isConnected(pos, board, pending) {
		return fmt.Errorf("%w: %d", apperror.ErrNotConnected, pos)
	}

	return nil
}

// IsValid - boolean form of IsValidPlacement.
func IsValid(pos int, board *entity.Board, pending entity.Pending) bool {
	return IsValidPlacement(pos, board, pending) == nil
}

// validateAlignment - a single pending tile allows its row or its column, two or more fix the axis.
func validateAlignment(pos int, pending entity.Pending) error {
	switch len(pending) {
	case 0:
		return nil
	case 1:
		first := pending[0].Position
		if sameRow(first, pos) || sameCol(first, pos) {
			return nil
		}
	default:
		first, second := pending[0].Position, pending[1].Position
		switch {
		case sameRow(first, second) && sameRow(first, pos):
			return nil
		case sameCol(first, second) && sameCol(first, pos):
			return nil
		}
	}

	return fmt.Errorf("%w: %d", apperror.ErrNotAligned, pos)
}

func isConnected(pos int, board *entity.Board, pending entity.Pending) bool {
	for _, n := range neighbors(pos) {
		if board.Occupied(n) || pending.Has(n) {
			return true
		}
	}

	return false
}

// neighbors - orthogonal neighbors of pos; left and right never wrap to another row.
func neighbors(pos int) []int {
	col, row := entity.Col(pos), entity.Row(pos)
	result := make([]int, 0, 4)

	if row > 0 {
		result = append(result, pos-entity.BoardSize)
	}
	if row < entity.BoardSize-1 {
		result = append(result, pos+entity.BoardSize)
	}
	if col > 0 {
		result = append(result, pos-1)
	}
	if col < entity.BoardSize-1 {
		result = append(result, pos+1)
	}

	return result
}

func sameRow(a, b int) bool {
	return entity.Row(a) == entity.Row(b)
}

func sameCol(a, b int) bool {
	return entity.Col(a) == entity.Col(b)
}
