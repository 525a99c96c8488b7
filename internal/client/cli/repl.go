package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// errUnknownCommand marks a command the current screen does not handle.
var errUnknownCommand = errors.New("unknown command")

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a stub.
type execIface interface {
	isLoggedIn() bool
	Help()
	ShowRoutes()
	Open(ctx context.Context, path string)
	Login(ctx context.Context)
	ResetPassword(ctx context.Context)
	Refresh(ctx context.Context)
	Logout(ctx context.Context)
	Exec(ctx context.Context, cmd string, args []string)
}

// runREPL is the read-eval-print loop of the back-office client.
//
// It reads a line from the scanner, parses the first token as the command,
// and dispatches to methods on 'a'. The loop exits on scanner EOF or when
// the user types "exit" or "quit".
//
// Global commands:
//   - help            — commands for the current screen
//   - routes          — the full route table
//   - open <route>    — navigate (the route guard may redirect)
//   - login / reset   — auth screens
//   - refresh         — renew the bearer token
//   - logout          — end the session
//   - exit | quit     — leave the program
//
// Everything else is forwarded to the current screen via Exec. Command
// handlers report their own errors; the loop itself never fails.
func runREPL(ctx context.Context, a execIface, scanner *bufio.Scanner, promptFn func() string) {
	for {
		printlnFn(promptFn())
		if !scanner.Scan() {
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "help":
			a.Help()

		case "routes":
			a.ShowRoutes()

		case "open":
			if len(args) == 0 {
				printlnFn("Usage: open <route>")
				continue
			}
			a.Open(ctx, args[0])

		case "login":
			a.Login(ctx)

		case "reset":
			a.ResetPassword(ctx)

		case "refresh":
			a.Refresh(ctx)

		case "logout":
			a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Au revoir!")
			return

		default:
			a.Exec(ctx, cmd, args)
		}
	}
}
