package repository

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/wordroom-backend/internal/entity"
)

// memoryTurnLog is used when Redis is disabled. It is lost on restart.
type memoryTurnLog struct {
	mu    sync.RWMutex
	turns map[string][]entity.TurnRecord
}

func NewMemoryTurnLogRepository() TurnLogRepository {
	return &memoryTurnLog{turns: make(map[string][]entity.TurnRecord)}
}

func (that *memoryTurnLog) Append(_ context.Context, roomID string, record entity.TurnRecord) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.turns[roomID] = append(that.turns[roomID], record)

	return nil
}

func (that *memoryTurnLog) List(_ context.Context, roomID string) ([]entity.TurnRecord, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	records := make([]entity.TurnRecord, len(that.turns[roomID]))
	copy(records, that.turns[roomID])

	return records, nil
}

func (that *memoryTurnLog) Delete(_ context.Context, roomID string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	delete(that.turns, roomID)

	return nil
}
