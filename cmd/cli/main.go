package main

import (
	"context"
	"log/slog"
	"os"

	"filedrop/internal/buildinfo"
	"filedrop/internal/client/cli"
	"filedrop/internal/client/config"
	"filedrop/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	level := slog.LevelWarn
	if os.Getenv("FILEDROP_DEBUG") != "" {
		level = slog.LevelDebug
	}
	log := logging.NewDefault(os.Stderr, level)

	app := cli.NewApp(cfg, log)
	app.Run(ctx)
}
