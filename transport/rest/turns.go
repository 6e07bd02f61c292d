package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rocketscienceinc/wordroom-backend/internal/entity"
)

type turnLister interface {
	List(ctx context.Context, roomID string) ([]entity.TurnRecord, error)
}

type TurnsHandler interface {
	TurnsHandler(w http.ResponseWriter, r *http.Request)
}

type turnsHandler struct {
	logger *slog.Logger
	turns  turnLister
}

func NewTurnsHandler(logger *slog.Logger, turns turnLister) TurnsHandler {
	return &turnsHandler{
		logger: logger.With("component", "turnsHandler"),
		turns:  turns,
	}
}

// TurnsHandler - the committed turns of a live room, oldest first.
func (that *turnsHandler) TurnsHandler(w http.ResponseWriter, r *http.Request) {
	roomID := chi.URLParam(r, "roomID")

	records, err := that.turns.List(r.Context(), roomID)
	if err != nil {
		that.logger.Error("failed to list turns", "roomID", roomID, "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(records); err != nil {
		that.logger.Error("failed to write turns", "roomID", roomID, "error", err)
	}
}
