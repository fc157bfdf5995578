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
	isAdmin() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Rates(ctx context.Context) error
	SetCurrency(ctx context.Context, args []string) error
	SetAmount(ctx context.Context, args []string) error
	Quote(ctx context.Context) error
	Connect(ctx context.Context) error
	Buy(ctx context.Context) error
	History(ctx context.Context) error
	Admin(ctx context.Context) error
}

const (
	helpGuest = "Available commands: register, login, rates, currency <ETH|BNB|BTC>, amount <value>, quote, connect, buy, exit"
	helpUser  = "Available commands: whoami, rates, currency <ETH|BNB|BTC>, amount <value>, quote, connect, buy, history, logout, exit"
	helpAdmin = helpUser + ", admin"
)

// runREPL reads commands line by line from reader and dispatches them to a.
// The loop exits at end of input or on "exit"/"quit".
//
// Errors returned by handlers are ignored here; handlers report to the user
// themselves, and no failure ends the session.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("presale (%s)> ", statusFn()))
		line, ok := readLine(reader)
		if !ok {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := strings.ToLower(parts[0]), parts[1:]

		switch cmd {
		case "help":
			switch {
			case a.isAdmin():
				printlnFn(helpAdmin)
			case a.isLoggedIn():
				printlnFn(helpUser)
			default:
				printlnFn(helpGuest)
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "rates":
			_ = a.Rates(ctx)

		case "currency":
			_ = a.SetCurrency(ctx, args)

		case "amount":
			_ = a.SetAmount(ctx, args)

		case "quote":
			_ = a.Quote(ctx)

		case "connect":
			_ = a.Connect(ctx)

		case "buy":
			_ = a.Buy(ctx)

		case "history":
			_ = a.History(ctx)

		case "admin":
			_ = a.Admin(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
