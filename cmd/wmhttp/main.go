package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printMainUsage(os.Stdout)
		os.Exit(0)
	}

	switch os.Args[1] {
	case "serve":
		os.Exit(runServe(os.Args[2:]))
	case "hash":
		os.Exit(runHash(os.Args[2:]))
	case "config":
		os.Exit(runConfig(os.Args[2:]))
	case "windows":
		os.Exit(runWindows(os.Args[2:]))
	case "mcp":
		os.Exit(runMCP(os.Args[2:]))
	case "help", "-h", "--help":
		printMainUsage(os.Stdout)
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", os.Args[1])
		printMainUsage(os.Stderr)
		os.Exit(2)
	}
}

func printMainUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: wmhttp <command> [options]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  serve               Start the HTTP control server (foreground)")
	fmt.Fprintln(w, "  hash [SECRET]       Print the credential digest for a secret")
	fmt.Fprintln(w, "  windows             Browse and arrange windows interactively")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  config validate     Validate a configuration file")
	fmt.Fprintln(w, "  config print        Print the effective configuration")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  mcp serve           Start MCP server (stdio transport)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'wmhttp <command> --help' for command-specific options.")
}
