package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/1broseidon/wmhttp/internal/httpapi"
)

func runHash(args []string) int {
	fs := flag.NewFlagSet("hash", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: wmhttp hash [SECRET]")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Print the SHA-256 digest to use as credential_digest. Without SECRET the")
		fmt.Fprintln(os.Stderr, "secret is read from the terminal without echo, or from the first line of stdin.")
	}
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}
	if fs.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "hash takes at most one argument")
		fs.Usage()
		return 2
	}

	var secret string
	if fs.NArg() == 1 {
		secret = fs.Arg(0)
	} else {
		var err error
		secret, err = readSecret(os.Stdin, os.Stderr)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 1
		}
	}

	fmt.Println(httpapi.HashCredential(secret))
	return 0
}

// readSecret prompts on a terminal and otherwise takes the first line of in.
func readSecret(in *os.File, prompt io.Writer) (string, error) {
	fd := int(in.Fd())
	if term.IsTerminal(fd) {
		fmt.Fprint(prompt, "Secret: ")
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(prompt)
		if err != nil {
			return "", fmt.Errorf("failed to read secret: %w", err)
		}
		return string(b), nil
	}
	return readSecretLine(in)
}

func readSecretLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read secret: %w", err)
	}
	if line == "" && errors.Is(err, io.EOF) {
		return "", errors.New("no secret on stdin")
	}
	return strings.TrimRight(line, "\r\n"), nil
}
