package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/wordroom-backend/internal/apperror"
	"github.com/rocketscienceinc/wordroom-backend/internal/entity"
)

const defaultInboxSize = 64

type RoomOptions struct {
	TileLimit int
	InboxSize int

	// Seed fixes the tile draws of every room; zero seeds from the clock.
	Seed int64
}

// RoomManager maps room ids to live rooms. A room is created by its first join and destroyed
// with its last leave; nothing of it survives. mu guards only the map.
type RoomManager struct {
	logger  *slog.Logger
	dict    wordChecker
	turnLog turnLog
	options RoomOptions

	mu    sync.Mutex
	rooms map[string]*Room
}

func NewRoomManager(logger *slog.Logger, dict wordChecker, turnLog turnLog, options RoomOptions) *RoomManager {
	if options.TileLimit <= 0 {
		options.TileLimit = entity.DefaultTileLimit
	}

	if options.InboxSize <= 0 {
		options.InboxSize = defaultInboxSize
	}

	return &RoomManager{
		logger:  logger.With("component", "roomManager"),
		dict:    dict,
		turnLog: turnLog,
		options: options,

		rooms: make(map[string]*Room),
	}
}

// Join - puts a new user into the room, creating the room if needed. The registry lock is never held
// while a room works; a join that races with the room emptying retries on a fresh room.
func (that *RoomManager) Join(ctx context.Context, roomID, username string, sender Sender) (*Room, *entity.User, error) {
	if roomID == "" {
		roomID = entity.DefaultRoomID
	}

	user := entity.NewUser(entity.NewUserID(), username, that.options.TileLimit)

	for {
		if err := ctx.Err(); err != nil {
			return nil, nil, fmt.Errorf("failed to join room %s: %w", roomID, err)
		}

		room := that.getOrCreate(roomID)

		err := room.Join(ctx, user, sender)
		switch {
		case err == nil:
			return room, user, nil
		case errors.Is(err, apperror.ErrRoomClosed):
			that.release(room)
		default:
			// the join may still run later; leaving undoes it and stops a room nobody entered
			go that.abandon(room, user.ID)

			return nil, nil, fmt.Errorf("failed to join room %s: %w", roomID, err)
		}
	}
}

// Leave - removes the user. The room stops itself and leaves the registry when it is emptied.
func (that *RoomManager) Leave(ctx context.Context, room *Room, userID string) error {
	if _, err := room.Leave(ctx, userID); err != nil {
		return fmt.Errorf("failed to leave room %s: %w", room.ID(), err)
	}

	return nil
}

func (that *RoomManager) Get(roomID string) (*Room, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	room, ok := that.rooms[roomID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperror.ErrRoomNotFound, roomID)
	}

	return room, nil
}

func (that *RoomManager) Count() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return len(that.rooms)
}

// Shutdown - closes every room and clears their turn logs.
func (that *RoomManager) Shutdown() {
	that.mu.Lock()
	rooms := that.rooms
	that.rooms = make(map[string]*Room)
	that.mu.Unlock()

	for _, room := range rooms {
		room.Close()
		that.clearTurnLog(room.ID())

		that.logger.Info("closed room", "roomID", room.ID())
	}
}

func (that *RoomManager) getOrCreate(roomID string) *Room {
	that.mu.Lock()
	defer that.mu.Unlock()

	room, ok := that.rooms[roomID]
	if !ok {
		room = newRoom(that.logger, roomID, that.options, that.dict, that.turnLog, that.release)
		that.rooms[roomID] = room

		that.logger.Info("created room", "roomID", roomID)
	}

	return room
}

// release - forgets the room if it is still the one registered under its id.
func (that *RoomManager) release(room *Room) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.rooms[room.ID()] == room {
		delete(that.rooms, room.ID())

		that.logger.Info("destroyed room", "roomID", room.ID())
	}
}

func (that *RoomManager) abandon(room *Room, userID string) {
	if _, err := room.Leave(context.Background(), userID); err != nil {
		that.logger.Debug("abandoned join", "roomID", room.ID(), "userID", userID, "error", err)
	}
}

func (that *RoomManager) clearTurnLog(roomID string) {
	if that.turnLog == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), turnLogTimeout)
	defer cancel()

	if err := that.turnLog.Delete(ctx, roomID); err != nil {
		that.logger.Error("failed to delete turn log", "roomID", roomID, "error", err)
	}
}
