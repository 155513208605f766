package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"strings"
	"syscall"
	"time"

	"padview/internal/bridge"
	"padview/internal/config"
	"padview/internal/hub"
	"padview/internal/logging"
	"padview/internal/server"
	"padview/internal/tray"
)

// Cross-platform signal handling: os.Interrupt covers Ctrl+C on Windows and
// SIGINT on Unix.
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := logging.NewLogger("padview", cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, shutdownSignals...)

	// Host events flow in from websocket clients; poll commands flow back out.
	inbound := make(chan []byte, 256)
	outbound := make(chan []byte, 64)

	b := bridge.New(bridge.Config{
		Inbound:      inbound,
		Outbound:     outbound,
		TickInterval: cfg.TickInterval(),
		Logger:       logger.Named("bridge"),
	})
	bridgeDone := make(chan struct{})
	go func() {
		b.Run(ctx)
		close(bridgeDone)
	}()

	h := hub.NewHub(logger.Named("hub"))
	go h.Run()

	broadcaster := hub.NewBroadcaster(h, b.Changes(), outbound, logger.Named("broadcast"))
	go broadcaster.Run()

	srv := server.New(h, broadcaster, inbound, getFrontendFS(), cfg.Addr, logger.Named("server"))
	serverErrCh := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErrCh <- err
		}
	}()

	url := serveURL(cfg.Addr)
	logger.Infow("padview started", "url", url)

	// Channel for tray-triggered shutdown
	shutdownRequested := make(chan struct{})

	if runtime.GOOS == "windows" {
		go func() {
			t := tray.New(url, func() {
				close(shutdownRequested)
			}, logger.Named("tray"))
			t.Run(tray.GetIcon())
		}()
	} else {
		logger.Infow("press Ctrl+C to exit")
	}

	select {
	case <-sigCh:
		logger.Infow("shutting down")
		cancel()
	case <-shutdownRequested:
		logger.Infow("shutdown requested from tray")
		cancel()
	case err := <-serverErrCh:
		logger.Errorw("http server error", "error", err)
		cancel()
	}

	<-bridgeDone

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorw("http server shutdown error", "error", err)
	}

	logger.Infow("padview stopped")
}

// serveURL turns a listen address into something a browser can open.
func serveURL(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "http://localhost" + addr
	}
	return "http://" + addr
}
