package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/1broseidon/wmhttp/internal/config"
	"github.com/1broseidon/wmhttp/internal/httpapi"
	"github.com/1broseidon/wmhttp/internal/platform"
)

func runServe(args []string) int {
	fs := flag.NewFlagSet("serve", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	path := fs.String("config", "", "Config file path (default: built-in settings)")
	verbose := fs.Bool("verbose", false, "Log every request (debug level)")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: wmhttp serve [--config PATH] [--verbose]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Serve GET /windows, GET /state and POST /move-window on the configured")
		fmt.Fprintln(os.Stderr, "address until interrupted.")
		fmt.Fprintln(os.Stderr, "")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "serve takes no arguments")
		fs.Usage()
		return 2
	}

	cfg, err := config.LoadFromPath(*path)
	if err != nil {
		log.Printf("Failed to load configuration: %v", err)
		return 1
	}

	level := cfg.SlogLevel()
	if *verbose {
		level = slog.LevelDebug
	}
	logger := newLogger(level)
	slog.SetDefault(logger)

	backend, err := platform.NewLinuxBackendFromDisplay()
	if err != nil {
		log.Printf("Failed to connect to display: %v", err)
		return 1
	}
	defer backend.Disconnect()

	// Drain X events so the connection's reader never stalls behind them.
	go backend.EventLoop()
	defer backend.Quit()

	server, err := httpapi.NewServer(cfg, backend, logger)
	if err != nil {
		log.Printf("Failed to create control server: %v", err)
		return 1
	}
	if err := server.Start(); err != nil {
		log.Printf("Failed to start control server: %v", err)
		return 1
	}
	defer server.Stop()

	if cfg.CredentialDigest == config.DefaultCredentialDigest {
		logger.Warn("using the built-in credential; set credential_digest (see 'wmhttp hash') before exposing this port")
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("shutting down", "signal", sig.String())
	return 0
}

func newLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
