package websocket

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rocketscienceinc/wordroom-backend/internal/entity"
	"github.com/rocketscienceinc/wordroom-backend/internal/usecase"
)

const (
	defaultSendBuffer = 16
	leaveTimeout      = 5 * time.Second
)

type roomManager interface {
	Join(ctx context.Context, roomID, username string, sender usecase.Sender) (*usecase.Room, *entity.User, error)
	Leave(ctx context.Context, room *usecase.Room, userID string) error
}

type Server struct {
	logger     *slog.Logger
	rooms      roomManager
	sendBuffer int
	upgrader   websocket.Upgrader
}

func New(logger *slog.Logger, rooms roomManager, sendBuffer int) *Server {
	if sendBuffer <= 0 {
		sendBuffer = defaultSendBuffer
	}

	return &Server{
		logger:     logger.With("component", "websocket"),
		rooms:      rooms,
		sendBuffer: sendBuffer,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// the client is served from the same origin; dev builds run on another port
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Handler - upgrades /ws?username=&roomID= requests. ctx bounds the lifetime of every connection.
func (that *Server) Handler(ctx context.Context) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		that.serveWS(ctx, w, r)
	}
}

func (that *Server) serveWS(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "serveWS")

	username, roomID := connectionParams(r)

	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	// hijacked connections outlive http.Server.Shutdown
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	client := newClient(that.logger, conn, that.sendBuffer)

	room, user, err := that.rooms.Join(ctx, roomID, username, client)
	if err != nil {
		log.Error("failed to join room", "roomID", roomID, "error", err)
		_ = conn.Close()
		return
	}

	client.room = room
	client.userID = user.ID
	client.logger = that.logger.With("roomID", roomID, "userID", user.ID)

	log.Info("new connection", "roomID", roomID, "username", user.Username, "userID", user.ID)

	go client.writePump()

	client.readPump(ctx)

	leaveCtx, cancel := context.WithTimeout(context.Background(), leaveTimeout)
	defer cancel()

	if err = that.rooms.Leave(leaveCtx, room, user.ID); err != nil {
		log.Warn("failed to leave room", "roomID", roomID, "error", err)
	}

	client.close()

	log.Info("user disconnected", "roomID", roomID, "username", user.Username)
}

// connectionParams - username and room from the query; roomId is accepted as an alias.
func connectionParams(r *http.Request) (string, string) {
	query := r.URL.Query()

	username := query.Get("username")
	if username == "" {
		username = entity.DefaultUsername
	}

	roomID := query.Get("roomID")
	if roomID == "" {
		roomID = query.Get("roomId")
	}
	if roomID == "" {
		roomID = entity.DefaultRoomID
	}

	return username, roomID
}
