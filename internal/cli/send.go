package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/dporg/internal/clients"
	"github.com/dmitrijs2005/dporg/internal/mailer"
)

// send drives the main workflow: pick a client and files, optionally render
// a body template and a receipt, deliver the email, then record the client
// and the (name, email) pair for future suggestions.
func (a *App) send(ctx context.Context) {
	name, err := GetSimpleText(a.reader, "Client name", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	a.suggestEmails(ctx, name)

	email, err := GetSimpleText(a.reader, "Client email", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	fileNames, err := GetList(a.reader, "Files to send (comma separated names from the managed folder)", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	if name == "" || email == "" || len(fileNames) == 0 {
		fmt.Fprintln(a.out, "Name, email, and at least one file are required.")
		return
	}

	price, tax, discount, ok := a.readMoneyLines()
	if !ok {
		return
	}

	body := a.chooseTemplateBody(name)

	withReceipt, err := GetSimpleText(a.reader, "Attach receipt? [Y/n]", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	filePaths := make([]string, 0, len(fileNames))
	for _, f := range fileNames {
		filePaths = append(filePaths, a.assets.Path(f))
	}

	receiptPath := ""
	if !strings.EqualFold(withReceipt, "n") {
		receiptPath, err = a.receipts.Compose(ctx, name, filePaths, price, tax, discount)
		if err != nil {
			fmt.Fprintf(a.out, "error: %v\n", err)
			return
		}
		a.log.Info(ctx, "receipt created", "path", receiptPath)
	}

	if err := a.dispatcher.Send(ctx, email, name, filePaths, receiptPath, body); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	if err := a.clients.Append(ctx, clients.Record{Name: name, Email: email, Files: filePaths}); err != nil {
		fmt.Fprintf(a.out, "warning: delivery succeeded but saving the client failed: %v\n", err)
	}
	if err := a.sent.Add(ctx, name, email); err != nil {
		fmt.Fprintf(a.out, "warning: could not record the sent email: %v\n", err)
	}

	fmt.Fprintln(a.out, "Files sent successfully.")
}

func (a *App) suggestEmails(ctx context.Context, name string) {
	if name == "" {
		return
	}
	emails, err := a.sent.EmailsFor(ctx, name)
	if err != nil || len(emails) == 0 {
		return
	}
	fmt.Fprintf(a.out, "Known addresses for %s: %s\n", name, strings.Join(emails, ", "))
}

// chooseTemplateBody offers the available body templates and renders the
// chosen one. An empty answer, or any failure, falls back to the default
// greeting (returned as an empty body).
func (a *App) chooseTemplateBody(clientName string) string {
	names, err := mailer.Templates(a.config.TemplatesDir)
	if err != nil || len(names) == 0 {
		return ""
	}

	choice, err := GetSimpleText(a.reader,
		fmt.Sprintf("Template (%s; empty for default)", strings.Join(names, ", ")), a.out)
	if err != nil || choice == "" {
		return ""
	}

	body, err := mailer.RenderTemplate(filepath.Join(a.config.TemplatesDir, choice), clientName)
	if err != nil {
		fmt.Fprintf(a.out, "could not load template: %v\n", err)
		return ""
	}
	return body
}
