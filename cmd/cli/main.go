package main

import (
	"context"
	"log"
	"os"

	"github.com/attendmark/attendmark/internal/buildinfo"
	"github.com/attendmark/attendmark/internal/client/cli"
	"github.com/attendmark/attendmark/internal/client/config"
	"github.com/attendmark/attendmark/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.Setup(cfg.LogLevel)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}
}
