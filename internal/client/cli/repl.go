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
	Onboard(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	ShowProfile(ctx context.Context) error
	Menu(ctx context.Context, category string) error
	Search(ctx context.Context, query string) error
	ShowDish(ctx context.Context, id string) error
	AddFavorite(ctx context.Context, id string) error
	RemoveFavorite(ctx context.Context, id string) error
	ListFavorites(ctx context.Context) error
	PlaceOrder(ctx context.Context, args []string) error
	ListOrders(ctx context.Context) error
	Sync(ctx context.Context) error
	DeleteAccount(ctx context.Context) error
	ResetAll(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the Trattoria CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Browsing commands (menu, search, dish) work with or without a logged-in
// user; everything touching per-user state requires login first.
//
// Any errors returned by command handlers are ignored here; handlers should
// log their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("trattoria %s> ", statusFn()))
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

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: profile, menu [category], search <text>, dish <id>, fav <add|rm|list> [id], order <id>[xN]..., orders, sync, logout, delete, wipe, exit")
			} else {
				printlnFn("Available commands: onboard, login, menu [category], search <text>, dish <id>, wipe, exit")
			}

		case "onboard":
			_ = a.Onboard(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "profile", "whoami":
			_ = a.ShowProfile(ctx)

		case "m", "menu":
			category := ""
			if len(args) > 0 {
				category = args[0]
			}
			_ = a.Menu(ctx, category)

		case "search":
			if len(args) == 0 {
				printlnFn("Usage: search <text>")
				continue
			}
			_ = a.Search(ctx, strings.Join(args, " "))

		case "dish":
			if len(args) == 0 {
				printlnFn("Usage: dish <id>")
				continue
			}
			_ = a.ShowDish(ctx, args[0])

		case "fav":
			if len(args) == 0 {
				printlnFn("Usage: fav <add|rm|list> [id]")
				continue
			}
			switch args[0] {
			case "add":
				if len(args) < 2 {
					printlnFn("Usage: fav add <id>")
					continue
				}
				_ = a.AddFavorite(ctx, args[1])
			case "rm":
				if len(args) < 2 {
					printlnFn("Usage: fav rm <id>")
					continue
				}
				_ = a.RemoveFavorite(ctx, args[1])
			case "list":
				_ = a.ListFavorites(ctx)
			default:
				printlnFn("Usage: fav <add|rm|list> [id]")
			}

		case "order":
			if len(args) == 0 {
				printlnFn("Usage: order <id>[xN] [<id>[xN] ...]")
				continue
			}
			_ = a.PlaceOrder(ctx, args)

		case "orders", "history":
			_ = a.ListOrders(ctx)

		case "sync":
			_ = a.Sync(ctx)

		case "delete":
			_ = a.DeleteAccount(ctx)

		case "wipe":
			_ = a.ResetAll(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
