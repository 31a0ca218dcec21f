package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return fmt.Sprintf("(%s) ", a.userName)
}

func (a *App) Root(ctx context.Context) {

	fmt.Fprintln(a.out, "Digital Product Organizer (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	a.Login(ctx)

	if a.isLoggedIn() && a.emailStore.IsMissing() {
		fmt.Fprintln(a.out, "Email is not configured yet; run 'setup' before sending.")
	}

	for {
		fmt.Fprintf(a.out, "dporg %s> ", a.getStatus())
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		cmd := parts[0]

		switch cmd {
		case "help":
			a.help()
		case "register":
			a.Register(ctx)
		case "login":
			a.Login(ctx)
		case "logout":
			a.Logout(ctx)
		case "exit", "quit":
			fmt.Fprintln(a.out, "Bye!")
			return
		default:
			if !a.isLoggedIn() {
				fmt.Fprintln(a.out, "Please login first.")
				continue
			}
			a.dispatch(ctx, cmd)
		}
	}
}

func (a *App) dispatch(ctx context.Context, cmd string) {
	switch cmd {
	case "clients":
		a.listClients(ctx)
	case "addclient":
		a.addClient(ctx)
	case "editclient":
		a.editClient(ctx)
	case "delclient":
		a.deleteClient(ctx)
	case "files":
		a.listFiles(ctx)
	case "addfile":
		a.addFiles(ctx)
	case "rmfile":
		a.removeFile(ctx)
	case "emails":
		a.listSentEmails(ctx)
	case "receipt":
		a.makeReceipt(ctx)
	case "receipts":
		a.listReceipts(ctx)
	case "rmreceipt":
		a.removeReceipt(ctx)
	case "send":
		a.send(ctx)
	case "setup":
		a.setupEmail(ctx)
	default:
		fmt.Fprintln(a.out, "Unknown command:", cmd)
	}
}

func (a *App) help() {
	if a.isLoggedIn() {
		fmt.Fprintln(a.out, "Available commands: clients, addclient, editclient, delclient,")
		fmt.Fprintln(a.out, "  files, addfile, rmfile, emails, receipt, receipts, rmreceipt,")
		fmt.Fprintln(a.out, "  send, setup, logout, exit")
	} else {
		fmt.Fprintln(a.out, "Available commands: register, login, exit")
	}
}
