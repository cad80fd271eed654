package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Almaash/community-app-admin/internal/cli"
	"github.com/Almaash/community-app-admin/internal/config"
	"github.com/Almaash/community-app-admin/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	log := logger.New("community-app-admin", cfg.LogLevel, cfg.LogFormat)

	app, err := cli.NewApp(cfg, os.Stdout, log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := app.Run(ctx, os.Args[1:]); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		cli.RenderError(os.Stderr, err)
		os.Exit(1)
	}
}
