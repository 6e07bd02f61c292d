package websocket

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/wordroom-backend/internal/apperror"
	"github.com/rocketscienceinc/wordroom-backend/internal/entity"
	"github.com/rocketscienceinc/wordroom-backend/internal/usecase"
)

const (
	TagPageLoaded = "page_loaded"
	TagMouseMove  = "mouse_move"
	TagHelloWorld = "hello_world"
	TagPlayTurn   = "play_turn"
)

// Message is the inbound envelope.
type Message struct {
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

type cursorPayload struct {
	X *int `json:"cursorX"`
	Y *int `json:"cursorY"`
}

type playTurnPayload struct {
	Tiles  [][2]int `json:"tiles"`
	Points int      `json:"points"`
}

// ParseCommand - decodes a text frame into a room command. Frames that are not a valid envelope, or
// whose data does not fit a known tag, fail with ErrMalformedMessage.
func ParseCommand(raw []byte) (usecase.Command, error) {
	var msg Message
	if err := json.Unmarshal(raw, &msg); err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrMalformedMessage, err)
	}

	if msg.Message == "" {
		return nil, fmt.Errorf("%w: missing message tag", apperror.ErrMalformedMessage)
	}

	switch msg.Message {
	case TagPageLoaded:
		return usecase.PageLoaded{}, nil
	case TagMouseMove:
		return parseMouseMove(msg.Data)
	case TagHelloWorld:
		return usecase.RefillRack{}, nil
	case TagPlayTurn:
		return parsePlayTurn(msg.Data)
	default:
		return usecase.Unknown{Tag: msg.Message}, nil
	}
}

// parseMouseMove - accepts [x, y] or {"cursorX": x, "cursorY": y}.
func parseMouseMove(data json.RawMessage) (usecase.Command, error) {
	data = bytes.TrimSpace(data)

	if bytes.HasPrefix(data, []byte("[")) {
		var xy []int
		if err := json.Unmarshal(data, &xy); err != nil || len(xy) != 2 {
			return nil, fmt.Errorf("%w: mouse_move wants [x, y]", apperror.ErrMalformedMessage)
		}

		return usecase.MouseMove{X: xy[0], Y: xy[1]}, nil
	}

	var cursor cursorPayload
	if err := json.Unmarshal(data, &cursor); err != nil || cursor.X == nil || cursor.Y == nil {
		return nil, fmt.Errorf("%w: mouse_move wants cursorX and cursorY", apperror.ErrMalformedMessage)
	}

	return usecase.MouseMove{X: *cursor.X, Y: *cursor.Y}, nil
}

// parsePlayTurn - accepts {"tiles": [[pos, rackIndex], ...], "points": n} or [[[pos, rackIndex], ...], n].
func parsePlayTurn(data json.RawMessage) (usecase.Command, error) {
	data = bytes.TrimSpace(data)

	var payload playTurnPayload

	if bytes.HasPrefix(data, []byte("[")) {
		var parts []json.RawMessage
		if err := json.Unmarshal(data, &parts); err != nil || len(parts) != 2 {
			return nil, fmt.Errorf("%w: play_turn wants [tiles, points]", apperror.ErrMalformedMessage)
		}

		if err := json.Unmarshal(parts[0], &payload.Tiles); err != nil {
			return nil, fmt.Errorf("%w: play_turn tiles: %w", apperror.ErrMalformedMessage, err)
		}

		if err := json.Unmarshal(parts[1], &payload.Points); err != nil {
			return nil, fmt.Errorf("%w: play_turn points: %w", apperror.ErrMalformedMessage, err)
		}
	} else if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("%w: play_turn: %w", apperror.ErrMalformedMessage, err)
	}

	placements := make(entity.Pending, 0, len(payload.Tiles))
	for _, tile := range payload.Tiles {
		placements = append(placements, entity.Placement{Position: tile[0], RackIndex: tile[1]})
	}

	return usecase.PlayTurn{Placements: placements, Points: payload.Points}, nil
}
