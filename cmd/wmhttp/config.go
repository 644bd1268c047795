package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/1broseidon/wmhttp/internal/config"
)

func runConfig(args []string) int {
	if len(args) == 0 || args[0] == "help" || args[0] == "-h" || args[0] == "--help" {
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "  wmhttp config validate --config PATH")
		fmt.Fprintln(os.Stderr, "  wmhttp config print [--config PATH]")
		return 2
	}

	switch args[0] {
	case "validate":
		fs := flag.NewFlagSet("validate", flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		path := fs.String("config", "", "Config file path")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}
		if *path == "" {
			fmt.Fprintln(os.Stderr, "validate requires --config")
			return 2
		}
		if _, err := config.LoadFromPath(*path); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Println("config: ok")
		return 0

	case "print":
		fs := flag.NewFlagSet("print", flag.ContinueOnError)
		fs.SetOutput(os.Stderr)
		path := fs.String("config", "", "Config file path (default: built-in settings)")
		if err := fs.Parse(args[1:]); err != nil {
			return 2
		}
		cfg, err := config.LoadFromPath(*path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		data, err := cfg.Marshal()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
		fmt.Print(string(data))
		return 0

	default:
		fmt.Fprintf(os.Stderr, "Unknown config command: %s\n", args[0])
		return 2
	}
}
