package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/rocketscienceinc/wordroom-backend/internal/apperror"
	"github.com/rocketscienceinc/wordroom-backend/internal/entity"
)

const turnLogTimeout = 2 * time.Second

// Sender delivers a serialized view to one connection. It must not block; false means the
// payload was dropped.
type Sender interface {
	Send(payload []byte) bool
}

type wordChecker interface {
	Contains(word string) bool
}

type turnLog interface {
	Append(ctx context.Context, roomID string, record entity.TurnRecord) error
	Delete(ctx context.Context, roomID string) error
}

// Room owns one board and its users. All state is touched only by the room goroutine; callers
// submit work through the inbox.
type Room struct {
	id     string
	logger *slog.Logger

	board   entity.Board
	users   map[string]*entity.User
	senders map[string]Sender

	tileLimit int
	rng       *rand.Rand
	dict      wordChecker
	turnLog   turnLog

	// stopping is set on the room goroutine once the last user left; no task runs after it.
	stopping bool
	onEmpty  func(room *Room)

	inbox     chan func()
	done      chan struct{}
	closeOnce sync.Once
}

// newRoom - starts the room goroutine. onEmpty runs on that goroutine after the last user left.
func newRoom(
	logger *slog.Logger, id string, opts RoomOptions, dict wordChecker, log turnLog, onEmpty func(room *Room),
) *Room {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	room := &Room{
		id:     id,
		logger: logger.With("component", "room", "roomID", id),

		board:   entity.GenerateBoard(),
		users:   make(map[string]*entity.User),
		senders: make(map[string]Sender),

		tileLimit: opts.TileLimit,
		rng:       rand.New(rand.NewSource(seed)), //nolint: gosec // game randomness
		dict:      dict,
		turnLog:   log,
		onEmpty:   onEmpty,

		inbox: make(chan func(), opts.InboxSize),
		done:  make(chan struct{}),
	}

	go room.run()

	return room
}

func (that *Room) ID() string {
	return that.id
}

func (that *Room) run() {
	// a log left by an earlier room with the same id must not leak into this one
	that.clearTurnLog()

	for {
		if that.closed() {
			return
		}

		select {
		case task := <-that.inbox:
			task()

			if that.stopping {
				that.Close()
				return
			}
		case <-that.done:
			return
		}
	}
}

// do - runs fn on the room goroutine and waits for it to finish.
func (that *Room) do(ctx context.Context, fn func()) error {
	if that.closed() {
		return apperror.ErrRoomClosed
	}

	finished := make(chan struct{})
	task := func() {
		defer close(finished)
		fn()
	}

	select {
	case that.inbox <- task:
	case <-that.done:
		return apperror.ErrRoomClosed
	case <-ctx.Done():
		return fmt.Errorf("failed to submit to room %s: %w", that.id, ctx.Err())
	}

	select {
	case <-finished:
		return nil
	case <-that.done:
		select {
		case <-finished:
			return nil
		default:
			return apperror.ErrRoomClosed
		}
	case <-ctx.Done():
		return fmt.Errorf("failed to wait for room %s: %w", that.id, ctx.Err())
	}
}

// Join - adds the user with its connection and broadcasts the new membership.
func (that *Room) Join(ctx context.Context, user *entity.User, sender Sender) error {
	return that.do(ctx, func() {
		that.users[user.ID] = user
		that.senders[user.ID] = sender

		that.logger.Info("user joined", "userID", user.ID, "username", user.Username, "users", len(that.users))

		that.broadcast(nil)
	})
}

// Leave - removes the user and returns how many users remain. A room left empty stops itself,
// even when ctx expired while the leave was queued.
func (that *Room) Leave(ctx context.Context, userID string) (int, error) {
	var remaining int
	var leaveErr error

	err := that.do(ctx, func() {
		user, ok := that.users[userID]
		if ok {
			delete(that.users, userID)
			delete(that.senders, userID)

			that.logger.Info("user left", "userID", userID, "username", user.Username, "users", len(that.users))
		} else {
			leaveErr = fmt.Errorf("%w: %s", apperror.ErrUserNotFound, userID)
		}

		remaining = len(that.users)

		switch {
		case remaining == 0:
			that.stop()
		case ok:
			that.broadcast(nil)
		}
	})
	if err != nil {
		return 0, err
	}

	return remaining, leaveErr
}

// Apply - runs a command for the user and broadcasts the room. A rejected command is reported
// only to its sender and leaves the room unchanged.
func (that *Room) Apply(ctx context.Context, userID string, cmd Command) error {
	var applyErr error

	err := that.do(ctx, func() {
		user, ok := that.users[userID]
		if !ok {
			applyErr = fmt.Errorf("%w: %s", apperror.ErrUserNotFound, userID)
			return
		}

		if applyErr = cmd.apply(that, user); applyErr != nil {
			that.broadcast(map[string]string{userID: applyErr.Error()})
			return
		}

		that.broadcast(nil)
	})
	if err != nil {
		return err
	}

	return applyErr
}

// Snapshot - the view the user would receive right now.
func (that *Room) Snapshot(ctx context.Context, userID string) (*View, error) {
	var view *View
	var snapErr error

	err := that.do(ctx, func() {
		if _, ok := that.users[userID]; !ok {
			snapErr = fmt.Errorf("%w: %s", apperror.ErrUserNotFound, userID)
			return
		}

		v := Project(that.id, that.board.Clone(), that.users, userID, "")
		view = &v
	})
	if err != nil {
		return nil, err
	}

	return view, snapErr
}

// Close - stops the room goroutine. Pending and later calls fail with ErrRoomClosed.
func (that *Room) Close() {
	that.closeOnce.Do(func() {
		close(that.done)
	})
}

// stop - must run on the room goroutine. The turn log is cleared before the registry forgets the
// room so a room created under the same id never loses its own turns.
func (that *Room) stop() {
	that.stopping = true

	that.clearTurnLog()

	if that.onEmpty != nil {
		that.onEmpty(that)
	}

	that.logger.Info("room emptied")
}

func (that *Room) closed() bool {
	select {
	case <-that.done:
		return true
	default:
		return false
	}
}

// broadcast - sends every member its own view. Delivery is best effort per connection.
func (that *Room) broadcast(errs map[string]string) {
	log := that.logger.With("method", "broadcast")

	for userID, sender := range that.senders {
		view := Project(that.id, &that.board, that.users, userID, errs[userID])

		payload, err := json.Marshal(view)
		if err != nil {
			log.Error("failed to marshal view", "userID", userID, "error", err)
			continue
		}

		if !sender.Send(payload) {
			log.Warn("dropped view for slow connection", "userID", userID)
		}
	}
}

func (that *Room) recordTurn(record entity.TurnRecord) {
	if that.turnLog == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), turnLogTimeout)
	defer cancel()

	if err := that.turnLog.Append(ctx, that.id, record); err != nil {
		that.logger.Error("failed to append turn log", "error", err)
	}
}

func (that *Room) clearTurnLog() {
	if that.turnLog == nil {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), turnLogTimeout)
	defer cancel()

	if err := that.turnLog.Delete(ctx, that.id); err != nil {
		that.logger.Error("failed to delete turn log", "error", err)
	}
}
