package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/textfix/internal/client/ui"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	currentView() ui.View
	Login(ctx context.Context) error
	Signup(ctx context.Context) error
	OTP(ctx context.Context) error
	Switch(ctx context.Context, view ui.View) error
	Dropdown(ctx context.Context) error
	Send(ctx context.Context, text string) error
	Paste(ctx context.Context) error
	Load(ctx context.Context, arg string) error
	Delete(ctx context.Context, arg string) error
	NewChat(ctx context.Context) error
	Export(ctx context.Context, arg string) error
	Logout(ctx context.Context) error
}

const (
	helpLoggedOut = "Available commands: login, signup, otp, exit"
	helpLoggedIn  = "Available commands: chat, history, dropdown, profile, send <text>, paste, load <id>, delete <id>, new, export [file], logout, exit\nIn the chat view any other line is sent for correction."
)

// runREPL starts a simple read–eval–print loop for the textfix CLI.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a'. In the chat view, a line that is not a
// command is sent for correction when logged in. The loop exits on EOF or
// when the user types "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers
// report to the user themselves. This keeps the REPL loop resilient.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("textfix %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		cmd, rest, _ := strings.Cut(trimmed, " ")
		rest = strings.TrimSpace(rest)

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(helpLoggedIn)
			} else {
				printlnFn(helpLoggedOut)
			}

		case "login":
			_ = a.Login(ctx)

		case "signup", "register":
			_ = a.Signup(ctx)

		case "otp":
			_ = a.OTP(ctx)

		case "chat", "history", "profile":
			_ = a.Switch(ctx, ui.View(cmd))

		case "dropdown":
			_ = a.Dropdown(ctx)

		case "send":
			_ = a.Send(ctx, rest)

		case "paste":
			_ = a.Paste(ctx)

		case "load":
			_ = a.Load(ctx, rest)

		case "delete":
			_ = a.Delete(ctx, rest)

		case "new":
			_ = a.NewChat(ctx)

		case "export":
			_ = a.Export(ctx, rest)

		case "logout":
			_ = a.Logout(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			if a.currentView() == ui.ViewChat && a.isLoggedIn() {
				_ = a.Send(ctx, trimmed)
				continue
			}
			printlnFn("Unknown command:", cmd)
		}

		if err != nil {
			return
		}
	}
}
