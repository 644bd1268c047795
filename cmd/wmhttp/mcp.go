package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/1broseidon/wmhttp/internal/mcp"
	"github.com/1broseidon/wmhttp/internal/platform"
)

func printMCPUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: wmhttp mcp <command>")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  serve    Start the MCP server (stdio transport)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'wmhttp mcp <command> --help' for command-specific options.")
}

func runMCP(args []string) int {
	if len(args) == 0 {
		printMCPUsage(os.Stderr)
		return 2
	}

	switch args[0] {
	case "serve":
		return runMCPServe(args[1:])
	case "help", "-h", "--help":
		printMCPUsage(os.Stdout)
		return 0
	default:
		fmt.Fprintf(os.Stderr, "Unknown mcp command: %s\n\n", args[0])
		printMCPUsage(os.Stderr)
		return 2
	}
}

func runMCPServe(args []string) int {
	if len(args) > 0 && (args[0] == "help" || args[0] == "-h" || args[0] == "--help") {
		fmt.Fprintln(os.Stdout, "Usage: wmhttp mcp serve")
		fmt.Fprintln(os.Stdout, "")
		fmt.Fprintln(os.Stdout, "Start the MCP server on stdio, exposing list_windows, get_state and")
		fmt.Fprintln(os.Stdout, "move_window as tools. Designed to be invoked by an MCP client.")
		return 0
	}

	// stdout carries the protocol; logs go to stderr.
	logger := newLogger(slog.LevelInfo)

	backend, err := platform.NewLinuxBackendFromDisplay()
	if err != nil {
		log.Printf("Failed to connect to display: %v", err)
		return 1
	}
	defer backend.Disconnect()
	go backend.EventLoop()
	defer backend.Quit()

	server, err := mcp.NewServer(backend, logger)
	if err != nil {
		log.Printf("Failed to create MCP server: %v", err)
		return 1
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		cancel()
	}()

	if err := server.Run(ctx); err != nil {
		log.Printf("MCP server error: %v", err)
		return 1
	}
	return 0
}
