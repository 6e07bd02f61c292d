package apperror

import "errors"

var (
	ErrInvalidPosition   = errors.New("position is outside the board")
	ErrDuplicatePosition = errors.New("position is already pending")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrNotAligned        = errors.New("tile is not aligned with the pending tiles")
	ErrNotConnected      = errors.New("tile is not connected to any letter")
	ErrInvalidRackIndex  = errors.New("invalid rack index")
	ErrNoTilesPlaced     = errors.New("no tiles placed")
	ErrNoWordFormed      = errors.New("no word formed")
	ErrUnknownWord       = errors.New("word is not in the dictionary")

	ErrRoomNotFound     = errors.New("room not found")
	ErrUserNotFound     = errors.New("user not found")
	ErrRoomClosed       = errors.New("room is closed")
	ErrMalformedMessage = errors.New("malformed message")
)
