// Package cli is an interactive console for the list engine. It opens the
// same database the server uses and runs commands in-process, which makes
// it handy for trying commands or repairing an owner's lists by hand.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/dmitrijs2005/listbot/internal/server"
	"github.com/dmitrijs2005/listbot/internal/server/config"
	"golang.org/x/term"
)

// isTerminal is a test seam for term.IsTerminal.
var isTerminal = term.IsTerminal

type App struct {
	server *server.App
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	// Logs would interleave with replies on stdout.
	if c.LogFile == "" {
		c.LogLevel = "error"
	}

	s, err := server.NewApp(ctx, c)
	if err != nil {
		return nil, err
	}
	return &App{server: s}, nil
}

// Run reads commands from stdin until EOF or exit.
func (a *App) Run(ctx context.Context) {
	defer a.server.Close()

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a.server.Engine(), scanner, isTerminal(int(os.Stdin.Fd())))
}
