package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/wordroom-backend/internal/config"
	"github.com/rocketscienceinc/wordroom-backend/internal/repository"
	"github.com/rocketscienceinc/wordroom-backend/internal/repository/storage"
	"github.com/rocketscienceinc/wordroom-backend/internal/scrabble"
	"github.com/rocketscienceinc/wordroom-backend/internal/usecase"
	"github.com/rocketscienceinc/wordroom-backend/transport/rest"
	"github.com/rocketscienceinc/wordroom-backend/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)
	go func() {
		select {
		case sig := <-sigs:
			log.Info("Received signal, shutting down", "signal", sig)
			cancel()
		case <-ctx.Done():
		}
	}()

	dict, err := scrabble.LoadDictionary(conf.DictionaryPath)
	if err != nil {
		return fmt.Errorf("could not load dictionary: %w", err)
	}

	log.Info("Loaded dictionary", "words", dict.Len(), "path", conf.DictionaryPath)

	turnLog, closeTurnLog, err := initTurnLog(ctx, log, conf)
	if err != nil {
		return err
	}
	defer closeTurnLog()

	rooms := usecase.NewRoomManager(logger, dict, turnLog, usecase.RoomOptions{
		TileLimit: conf.TileLimit,
		InboxSize: conf.Room.InboxSize,
	})
	defer rooms.Shutdown()

	wsServer := websocket.New(logger, rooms, conf.Room.SendBuffer)

	router := rest.NewRouter(rest.Handlers{
		Ping:      rest.NewPingHandler(),
		Turns:     rest.NewTurnsHandler(logger, turnLog),
		WebSocket: wsServer.Handler(ctx),
		StaticDir: conf.StaticDir,
	})

	log.Info("Starting HTTP server", "port", conf.HTTPPort)

	if err = rest.New(logger, conf.HTTPPort, router).Start(ctx); err != nil {
		return fmt.Errorf("HTTP server error: %w", err)
	}

	log.Info("Application context canceled, shutting down")

	return nil
}

// initTurnLog - Redis when enabled, otherwise in memory.
func initTurnLog(ctx context.Context, log *slog.Logger, conf *config.Config) (repository.TurnLogRepository, func(), error) {
	if !conf.Redis.Enabled {
		return repository.NewMemoryTurnLogRepository(), func() {}, nil
	}

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return nil, nil, ErrAddrNotFound
	}

	redisStorage, err := storage.NewRedisStorage(ctx, redisAddrString)
	if err != nil {
		return nil, nil, fmt.Errorf("could not connect to redis storage: %w", err)
	}

	closeFn := func() {
		if err := redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}

	log.Info("Using redis turn log", "addr", redisAddrString, "ttl", conf.Redis.TurnLogTTL)

	return repository.NewTurnLogRepository(redisStorage.Connection, conf.Redis.TurnLogTTL), closeFn, nil
}
