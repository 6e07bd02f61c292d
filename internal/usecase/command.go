package usecase

import (
	"fmt"
	"time"

	"github.com/rocketscienceinc/wordroom-backend/internal/entity"
	"github.com/rocketscienceinc/wordroom-backend/internal/scrabble"
)

// Command is the closed set of actions a user can apply to their room.
// Every command runs on the room goroutine.
type Command interface {
	apply(room *Room, user *entity.User) error
}

// PageLoaded - the client (re)loaded the page; its cursor is reset.
type PageLoaded struct{}

// MouseMove - the user's cursor moved.
type MouseMove struct {
	X int
	Y int
}

// RefillRack - tops the user's rack up to its tile limit.
type RefillRack struct{}

// PlayTurn - commit of the tiles the user placed this turn. Points is what the client computed;
// the server prices the turn itself.
type PlayTurn struct {
	Placements entity.Pending
	Points     int
}

// Unknown - a message tag the server does not handle.
type Unknown struct {
	Tag string
}

func (PageLoaded) apply(_ *Room, user *entity.User) error {
	user.ResetCursor()
	return nil
}

func (that MouseMove) apply(_ *Room, user *entity.User) error {
	user.State = entity.Cursor{X: that.X, Y: that.Y}
	return nil
}

func (RefillRack) apply(room *Room, user *entity.User) error {
	user.Tiles = entity.Refill(user.Tiles, user.TileLimit, room.rng)
	return nil
}

func (that PlayTurn) apply(room *Room, user *entity.User) error {
	log := room.logger.With("method", "PlayTurn", "userID", user.ID)

	result, err := scrabble.EvaluateTurn(&room.board, that.Placements, user.Tiles, room.dict)
	if err != nil {
		log.Info("turn rejected", "error", err)
		return fmt.Errorf("turn rejected: %w", err)
	}

	if result.Points != that.Points {
		log.Warn("client reported different points", "client", that.Points, "server", result.Points)
	}

	scrabble.CommitTurn(&room.board, user, that.Placements, result.Points, room.rng)

	room.recordTurn(entity.TurnRecord{
		UserID:     user.ID,
		Username:   user.Username,
		Words:      result.Texts(),
		Points:     result.Points,
		Placements: that.Placements,
		At:         time.Now().UTC(),
	})

	log.Info("turn committed", "words", result.Texts(), "points", result.Points)

	return nil
}

func (that Unknown) apply(room *Room, user *entity.User) error {
	room.logger.Warn("unrecognized message", "tag", that.Tag, "userID", user.ID)
	return nil
}
