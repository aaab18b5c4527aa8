package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/influeapp/influe-cli/internal/buildinfo"
	"github.com/influeapp/influe-cli/internal/client/cli"
	"github.com/influeapp/influe-cli/internal/client/config"
	"github.com/influeapp/influe-cli/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.NewTextLogger(os.Stderr, slog.LevelInfo)

	app, err := cli.NewApp(cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}
	defer app.Close()

	app.Run(ctx)

}
