package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/allodocta/backoffice/internal/buildinfo"
	"github.com/allodocta/backoffice/internal/client/cli"
	"github.com/allodocta/backoffice/internal/client/config"
	"github.com/allodocta/backoffice/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)
}
