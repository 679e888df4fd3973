package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/imbecility/mp3-submit/pkg/api"
	"github.com/imbecility/mp3-submit/pkg/config"
	"github.com/imbecility/mp3-submit/pkg/dom"
	"github.com/imbecility/mp3-submit/pkg/logger"
	"github.com/imbecility/mp3-submit/pkg/submit"
)

func main() {
	cfg, err := config.Parse(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Printf("Invalid configuration: %v\n", err)
		os.Exit(2)
	}

	logger.SetupGlobal(cfg.Debug, cfg.JSONLogs)

	page := dom.NewConvertPage()
	h, err := submit.New(cfg, page)
	if err != nil {
		slog.Error("Initialization failed", "err", err)
		os.Exit(1)
	}

	// Web UI
	if cfg.APIMode {
		srv := &api.Server{
			Port:        cfg.APIPort,
			Handler:     h,
			Page:        page,
			ServiceBase: cfg.ServiceBase,
		}
		if sterr := srv.Start(); sterr != nil {
			slog.Error("Server crashed", "err", sterr)
			os.Exit(1)
		}
		return
	}

	// CLI
	if cfg.VideoURL == "" {
		slog.Error("Usage: -url <LINK> or -api")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	page.VideoURL.SetValue(cfg.VideoURL)
	_, err = h.Handle(ctx)

	state := page.Snapshot()
	if err != nil {
		fmt.Printf("Conversion request failed: %v\n", err)
		stop()
		os.Exit(1)
	}
	fmt.Printf("Conversion queued. Download: %s%s\n", cfg.ServiceBase, state.DownloadHref)
}
