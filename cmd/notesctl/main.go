// Command notesctl is a terminal client for the notes server.
package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/joho/godotenv"
	"golang.org/x/term"

	"jotter/m/internal/client"
	"jotter/m/internal/config"
)

func main() {
	_ = godotenv.Load()
	cfg := config.LoadClient()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app := &cli{
		tokens: client.TokenFile{Path: cfg.TokenFile},
		out:    os.Stdout,
		prompt: terminalPrompt(bufio.NewReader(os.Stdin)),
	}
	if err := app.run(ctx, cfg.APIURL, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// terminalPrompt reads secrets without echo when stdin is a terminal and
// falls back to plain line reads otherwise.
func terminalPrompt(r *bufio.Reader) func(label string) (string, error) {
	return func(label string) (string, error) {
		fmt.Fprint(os.Stderr, label)
		fd := int(os.Stdin.Fd())
		if term.IsTerminal(fd) {
			b, err := term.ReadPassword(fd)
			fmt.Fprintln(os.Stderr)
			return string(b), err
		}
		line, err := r.ReadString('\n')
		if err != nil && line == "" {
			return "", err
		}
		return strings.TrimRight(line, "\r\n"), nil
	}
}
