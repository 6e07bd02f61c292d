package usecase

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/wordroom-backend/internal/entity"
	"github.com/rocketscienceinc/wordroom-backend/internal/scrabble"
	mockedUseCase "github.com/rocketscienceinc/wordroom-backend/mocks/usecase"
)

// recordingSender keeps every payload it is given.
type recordingSender struct {
	mu       sync.Mutex
	payloads [][]byte
	refuse   bool
}

func (that *recordingSender) Send(payload []byte) bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.refuse {
		return false
	}

	that.payloads = append(that.payloads, payload)
	return true
}

func (that *recordingSender) count() int {
	that.mu.Lock()
	defer that.mu.Unlock()

	return len(that.payloads)
}

func (that *recordingSender) last(t *testing.T) View {
	t.Helper()

	that.mu.Lock()
	defer that.mu.Unlock()

	require.NotEmpty(t, that.payloads, "no view received")

	var view View
	require.NoError(t, json.Unmarshal(that.payloads[len(that.payloads)-1], &view))

	return view
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestManager(t *testing.T) (*RoomManager, *mockedUseCase.MockturnLog) {
	t.Helper()

	turnLog := mockedUseCase.NewMockturnLog(t)
	// every room clears its log when it starts and when it empties
	turnLog.EXPECT().Delete(mock.Anything, mock.Anything).Return(nil).Maybe()

	dict := scrabble.NewDictionary("cat", "at", "act")

	manager := NewRoomManager(testLogger(), dict, turnLog, RoomOptions{Seed: 1})

	return manager, turnLog
}

// setTiles - replaces the user's rack from inside the room goroutine.
func setTiles(t *testing.T, room *Room, userID string, tiles ...string) {
	t.Helper()

	require.NoError(t, room.do(context.Background(), func() {
		room.users[userID].Tiles = tiles
	}))
}

func boardOf(t *testing.T, room *Room) entity.Board {
	t.Helper()

	var board entity.Board
	require.NoError(t, room.do(context.Background(), func() {
		board = room.board
	}))

	return board
}
