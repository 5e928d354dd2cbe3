package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/textfix/internal/buildinfo"
	"github.com/dmitrijs2005/textfix/internal/client/cli"
	"github.com/dmitrijs2005/textfix/internal/client/config"
	"github.com/dmitrijs2005/textfix/internal/client/tui"
	"github.com/dmitrijs2005/textfix/internal/filex"
	"github.com/dmitrijs2005/textfix/internal/logging"
)

func main() {

	cfg := config.LoadConfig()
	if cfg.UI == config.UIRepl {
		buildinfo.PrintBuildData(os.Stdout)
	}

	dataDir, err := filex.EnsureDir(cfg.DataDir)
	if err != nil {
		log.Fatalf("%v", err)
	}

	logFile, err := os.OpenFile(cfg.LogPath(dataDir), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer logFile.Close()
	logger := logging.New(logFile, cfg.LogLevel, "text")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	if cfg.UI == config.UITui {
		if err := tui.Run(ctx, cfg, dataDir, logger); err != nil {
			logger.Error(ctx, "tui exited", "error", err)
			log.Printf("%v", err)
		}
		return
	}

	app, err := cli.NewApp(ctx, cfg, dataDir, logger)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
