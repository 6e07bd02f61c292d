package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	app "github.com/rocketscienceinc/wordroom-backend/internal"
	"github.com/rocketscienceinc/wordroom-backend/internal/config"
)

// main - is the entry point of the application. It initializes the configuration, logger, and runs the application.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	// .env is optional
	_ = godotenv.Load()

	if err := newCommand().Run(context.Background(), os.Args); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
	}
}

func newCommand() *cli.Command {
	return &cli.Command{
		Name:  "wordroom",
		Usage: "multiplayer word board game server",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Usage:   "path to the yaml config file",
				Value:   "./config.yml",
				Sources: cli.EnvVars("WORDROOM_CONFIG"),
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error; overrides the config file",
			},
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			conf := config.MustLoad(cmd.String("config"))
			if level := cmd.String("log-level"); level != "" {
				conf.LogLevel = level
			}

			return app.RunApp(initLogger(conf), conf)
		},
	}
}

// initialize logger.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
