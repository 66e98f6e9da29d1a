package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/dmitrijs2005/authkeeper/internal/session"
)

// Root runs the interactive command loop until the user exits or stdin is
// closed.
func (a *App) Root(ctx context.Context) error {

	log.Println("Welcome to authkeeper CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	for {
		fmt.Printf("ak (%s)> ", a.statusLabel())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		a.monitor.Activity(session.SignalKeyDown)

		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.controller.CurrentUser() != nil {
				fmt.Println("Available commands: whoami, can, quota, use, export, refresh, logout, exit")
			} else {
				fmt.Println("Available commands: login, whoami, exit")
			}
		case "login":
			a.login(ctx)
		case "logout":
			a.logout(ctx)
		case "whoami":
			a.whoami()
		case "can":
			a.can(ctx, args)
		case "quota":
			a.quota()
		case "use":
			a.use(ctx, args)
		case "export":
			a.export(ctx)
		case "refresh":
			a.refresh(ctx)
		case "exit", "quit":
			fmt.Println("Bye!")
			return nil
		default:
			fmt.Println("Unknown command. Type 'help'.")
		}
	}

	return scanner.Err()
}
