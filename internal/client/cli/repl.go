package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	SubmitPhoto(ctx context.Context) error
	SubmitText(ctx context.Context) error
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	Logout(ctx context.Context) error
	Credits(ctx context.Context) error
	Profile(ctx context.Context) error
	Buy(ctx context.Context) error
	Privacy(ctx context.Context) error
}

// runREPL reads a line from the scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or on "exit"/"quit".
//
// Errors returned by command handlers are ignored here; handlers surface
// their own feedback through the view. This keeps the loop focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("influe %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: photo, text, credits, profile, buy, privacy, logout, exit")
			} else {
				printlnFn("Available commands: photo, text, credits, buy, privacy, login, register, exit")
			}

		case "photo":
			_ = a.SubmitPhoto(ctx)

		case "text":
			_ = a.SubmitText(ctx)

		case "login":
			_ = a.Login(ctx)

		case "register":
			_ = a.Register(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "credits":
			_ = a.Credits(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "buy":
			_ = a.Buy(ctx)

		case "privacy":
			_ = a.Privacy(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
