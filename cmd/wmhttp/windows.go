package main

import (
	"fmt"
	"os"

	"github.com/1broseidon/wmhttp/internal/platform"
	"github.com/1broseidon/wmhttp/internal/tui"
)

func runWindows(args []string) int {
	if len(args) > 0 && (args[0] == "help" || args[0] == "-h" || args[0] == "--help") {
		fmt.Fprintln(os.Stdout, "Usage: wmhttp windows")
		fmt.Fprintln(os.Stdout, "")
		fmt.Fprintln(os.Stdout, "Browse managed windows interactively; focus, minimize, stick or move them.")
		return 0
	}
	if len(args) != 0 {
		fmt.Fprintln(os.Stderr, "windows takes no arguments")
		return 2
	}

	backend, err := platform.NewLinuxBackendFromDisplay()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to connect to display: %v\n", err)
		return 1
	}
	defer backend.Disconnect()
	go backend.EventLoop()
	defer backend.Quit()

	if err := tui.Run(backend); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}
