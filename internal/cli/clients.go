package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/dporg/internal/clients"
)

func (a *App) listClients(ctx context.Context) {
	records, err := a.clients.List(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if len(records) == 0 {
		fmt.Fprintln(a.out, "No clients yet.")
		return
	}

	for _, rec := range records {
		fmt.Fprintf(a.out, "%s | %s | %s | %s\n",
			rec.Name, rec.Email, rec.Date, strings.Join(rec.Files, ", "))
	}
}

func (a *App) addClient(ctx context.Context) {
	name, err := GetSimpleText(a.reader, "Client name", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	email, err := GetSimpleText(a.reader, "Client email", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	files, err := GetList(a.reader, "Files (comma separated, optional)", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	rec := clients.Record{Name: name, Email: email, Files: files}
	if err := a.clients.Append(ctx, rec); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	a.log.Info(ctx, "client added", "name", name, "email", email)
	fmt.Fprintln(a.out, "Client saved.")
}

// editClient locates a record by its natural key (name, email, date) and
// replaces name, email and files. If duplicates share the key, only the
// first one is edited.
func (a *App) editClient(ctx context.Context) {
	key, ok := a.readClientKey(ctx)
	if !ok {
		return
	}

	newName, err := GetSimpleText(a.reader, "New name", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	newEmail, err := GetSimpleText(a.reader, "New email", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	newFiles, err := GetList(a.reader, "New files (comma separated)", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	updated := clients.Record{Name: newName, Email: newEmail, Files: newFiles}
	if err := a.clients.Update(ctx, key, updated); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	a.log.Info(ctx, "client updated", "name", newName)
	fmt.Fprintln(a.out, "Client updated.")
}

// deleteClient removes every record matching the given (name, email) pair.
func (a *App) deleteClient(ctx context.Context) {
	name, err := GetSimpleText(a.reader, "Client name", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	email, err := GetSimpleText(a.reader, "Client email", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	confirm, err := GetSimpleText(a.reader, fmt.Sprintf("Delete client %s (%s)? [y/N]", name, email), a.out)
	if err != nil || !strings.EqualFold(confirm, "y") {
		fmt.Fprintln(a.out, "Cancelled.")
		return
	}

	if err := a.clients.Delete(ctx, name, email); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	a.log.Info(ctx, "client deleted", "name", name, "email", email)
	fmt.Fprintln(a.out, "Client deleted.")
}

func (a *App) readClientKey(ctx context.Context) (clients.Key, bool) {
	name, err := GetSimpleText(a.reader, "Current name", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return clients.Key{}, false
	}
	email, err := GetSimpleText(a.reader, "Current email", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return clients.Key{}, false
	}
	date, err := GetSimpleText(a.reader, "Creation date (YYYY-MM-DD HH:MM)", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return clients.Key{}, false
	}
	return clients.Key{Name: name, Email: email, Date: date}, true
}

func (a *App) listSentEmails(ctx context.Context) {
	records, err := a.sent.List(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if len(records) == 0 {
		fmt.Fprintln(a.out, "No sent emails recorded yet.")
		return
	}
	for _, rec := range records {
		fmt.Fprintf(a.out, "%s <%s>\n", rec.Name, rec.Email)
	}
}
