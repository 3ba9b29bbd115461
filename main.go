package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v3"

	app "github.com/rocketscienceinc/battleship-backend/internal"
	"github.com/rocketscienceinc/battleship-backend/internal/config"
)

// main - is the entry point of the application. It parses flags, loads the configuration and runs the ruleset check.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	cmd := &cli.Command{
		Name:  "battleship",
		Usage: "validate a battleship ruleset and its preset layouts",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   "./config.yml",
				Usage:   "path to the config file",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "overrides log-level from the config file (debug, info)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			conf := config.MustLoad(cmd.String("config"))
			if level := cmd.String("log-level"); level != "" {
				conf.LogLevel = level
			}

			return app.RunApp(ctx, initLogger(conf), conf)
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		panic(fmt.Errorf("app run failed: %w", err))
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
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}
