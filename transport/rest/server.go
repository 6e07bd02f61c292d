package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const shutdownTimeout = 10 * time.Second

type Server struct {
	logger *slog.Logger
	srv    *http.Server
}

type Handlers struct {
	Ping      PingHandler
	Turns     TurnsHandler
	WebSocket http.Handler
	StaticDir string
}

// NewRouter - /ping, /ws and /rooms/{roomID}/turns; everything else is the client app.
func NewRouter(handlers Handlers) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Recoverer)

	router.Get("/ping", handlers.Ping.PingHandler)
	router.Handle("/ws", handlers.WebSocket)
	router.Get("/rooms/{roomID}/turns", handlers.Turns.TurnsHandler)
	router.NotFound(StaticHandler(handlers.StaticDir))

	return router
}

func New(logger *slog.Logger, port string, handler http.Handler) *Server {
	return &Server{
		logger: logger.With("component", "http"),
		srv: &http.Server{
			Addr:         ":" + port,
			Handler:      handler,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  30 * time.Second,
		},
	}
}

// Start - serves until ctx is canceled, then shuts down gracefully.
func (that *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		that.logger.Info("listening", "addr", that.srv.Addr)

		if err := that.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}

		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if !ok {
			return nil
		}

		return fmt.Errorf("failed to start server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := that.srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown server: %w", err)
	}

	return nil
}
