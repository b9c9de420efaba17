package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it
// with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a
// lightweight stub.
type execIface interface {
	isLoggedIn() bool
	SignUp(ctx context.Context) error
	Login(ctx context.Context) error
	Google(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Events(ctx context.Context) error
	Show(ctx context.Context, id string) error
	Add(ctx context.Context) error
	Upload(ctx context.Context, args []string) error
	SendQR(ctx context.Context, id string) error
	Mark(ctx context.Context) error
	MarkManual(ctx context.Context) error
}

// runREPL starts a read–eval–print loop over the attendance commands.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands:
//
//	Not logged in:
//	  - help | signup | login | google | exit | quit
//
//	Logged in:
//	  - help           — show available commands
//	  - events         — list your events
//	  - show <id>      — show one event with per-day attendance
//	  - add            — create an event
//	  - upload <id> <file> — upload a participant list
//	  - sendqr <id>    — mail QR codes to participants
//	  - mark           — mark attendance from a scanned QR payload
//	  - manual         — mark attendance by typing the fields
//	  - whoami         — show the stored session token's claims
//	  - logout | exit | quit
//
// Each dispatched command runs under a context derived from ctx, so
// abandoning the loop cancels in-flight requests. Errors returned by
// handlers are printed and the loop continues.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("att %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]
		args := parts[1:]

		cmdCtx, cancel := context.WithCancel(ctx)
		err := dispatch(cmdCtx, a, cmd, args)
		cancel()

		if err == errExitREPL {
			return
		}
		if err != nil {
			printlnFn("Error:", err.Error())
		}
	}
}

// errExitREPL signals a clean exit from the loop.
var errExitREPL = fmt.Errorf("exit")

func dispatch(ctx context.Context, a execIface, cmd string, args []string) error {
	switch cmd {
	case "help":
		if a.isLoggedIn() {
			printlnFn("Available commands: events, show <id>, add, upload <id> <file>, sendqr <id>, mark, manual, whoami, logout, exit")
		} else {
			printlnFn("Available commands: signup, login, google, exit")
		}
		return nil
	case "signup":
		return a.SignUp(ctx)
	case "login":
		return a.Login(ctx)
	case "google":
		return a.Google(ctx)
	case "logout":
		return a.Logout(ctx)
	case "whoami":
		return a.Whoami(ctx)
	case "events":
		return a.Events(ctx)
	case "show":
		if len(args) == 0 {
			printlnFn("Usage: show <event-id>")
			return nil
		}
		return a.Show(ctx, args[0])
	case "add":
		return a.Add(ctx)
	case "upload":
		return a.Upload(ctx, args)
	case "sendqr":
		if len(args) == 0 {
			printlnFn("Usage: sendqr <event-id>")
			return nil
		}
		return a.SendQR(ctx, args[0])
	case "mark":
		return a.Mark(ctx)
	case "manual":
		return a.MarkManual(ctx)
	case "exit", "quit":
		printlnFn("Bye!")
		return errExitREPL
	default:
		printlnFn("Unknown command:", cmd)
		return nil
	}
}
