package websocket

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rocketscienceinc/wordroom-backend/internal/apperror"
	"github.com/rocketscienceinc/wordroom-backend/internal/usecase"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 8192

	// Time allowed for the room to apply one message.
	applyTimeout = 5 * time.Second
)

// Client is one connected user. The room writes into send; writePump drains it.
type Client struct {
	logger *slog.Logger
	conn   *websocket.Conn

	mu     sync.Mutex
	send   chan []byte
	closed bool

	room   *usecase.Room
	userID string
}

func newClient(logger *slog.Logger, conn *websocket.Conn, sendBuffer int) *Client {
	return &Client{
		logger: logger,
		conn:   conn,
		send:   make(chan []byte, sendBuffer),
	}
}

// Send - queues a payload without blocking. A client that cannot keep up is closed.
func (that *Client) Send(payload []byte) bool {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed {
		return false
	}

	select {
	case that.send <- payload:
		return true
	default:
		that.closeLocked()
		return false
	}
}

func (that *Client) close() {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.closeLocked()
}

func (that *Client) closeLocked() {
	if !that.closed {
		that.closed = true
		close(that.send)
	}
}

// readPump - feeds frames into the room until the connection drops.
func (that *Client) readPump(ctx context.Context) {
	log := that.logger.With("method", "readPump")

	that.conn.SetReadLimit(maxMessageSize)
	_ = that.conn.SetReadDeadline(time.Now().Add(pongWait))
	that.conn.SetPongHandler(func(string) error {
		return that.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := that.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Error("error reading message", "error", err)
			}
			return
		}

		cmd, err := ParseCommand(raw)
		if err != nil {
			log.Debug("dropped message", "error", err)
			continue
		}

		that.apply(ctx, cmd)
	}
}

func (that *Client) apply(ctx context.Context, cmd usecase.Command) {
	log := that.logger.With("method", "apply")

	applyCtx, cancel := context.WithTimeout(ctx, applyTimeout)
	defer cancel()

	err := that.room.Apply(applyCtx, that.userID, cmd)
	switch {
	case err == nil:
	case errors.Is(err, apperror.ErrUserNotFound), errors.Is(err, apperror.ErrRoomClosed):
		log.Warn("message for a user that left", "error", err)
	default:
		log.Info("message not applied", "error", err)
	}
}

// writePump - drains send into the connection and keeps it alive with pings.
func (that *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = that.conn.Close()
	}()

	for {
		select {
		case message, ok := <-that.send:
			_ = that.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = that.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := that.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				that.logger.Debug("failed to write message", "error", err)
				that.close()
				return
			}

		case <-ticker.C:
			_ = that.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := that.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				that.close()
				return
			}
		}
	}
}
