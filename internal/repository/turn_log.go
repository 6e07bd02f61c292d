package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/wordroom-backend/internal/entity"
)

// TurnLogRepository keeps the committed turns of live rooms, oldest first.
type TurnLogRepository interface {
	Append(ctx context.Context, roomID string, record entity.TurnRecord) error
	List(ctx context.Context, roomID string) ([]entity.TurnRecord, error)
	Delete(ctx context.Context, roomID string) error
}

type dbTurnLog struct {
	client *redis.Client
	ttl    time.Duration
}

// NewTurnLogRepository - Redis list per room. A positive ttl expires idle logs.
func NewTurnLogRepository(client *redis.Client, ttl time.Duration) TurnLogRepository {
	return &dbTurnLog{
		client: client,
		ttl:    ttl,
	}
}

func turnsKey(roomID string) string {
	return "turns:" + roomID
}

func (that *dbTurnLog) Append(ctx context.Context, roomID string, record entity.TurnRecord) error {
	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to marshal turn: %w", err)
	}

	key := turnsKey(roomID)

	pipe := that.client.TxPipeline()
	pipe.RPush(ctx, key, recordJSON)
	if that.ttl > 0 {
		pipe.Expire(ctx, key, that.ttl)
	}

	if _, err = pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append turn: %w", err)
	}

	return nil
}

func (that *dbTurnLog) List(ctx context.Context, roomID string) ([]entity.TurnRecord, error) {
	values, err := that.client.LRange(ctx, turnsKey(roomID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list turns: %w", err)
	}

	records := make([]entity.TurnRecord, 0, len(values))
	for _, value := range values {
		var record entity.TurnRecord
		if err = json.Unmarshal([]byte(value), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal turn: %w", err)
		}

		records = append(records, record)
	}

	return records, nil
}

func (that *dbTurnLog) Delete(ctx context.Context, roomID string) error {
	if err := that.client.Del(ctx, turnsKey(roomID)).Err(); err != nil {
		return fmt.Errorf("failed to delete turns: %w", err)
	}

	return nil
}
