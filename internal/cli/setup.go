package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/dporg/internal/common"
	"github.com/dmitrijs2005/dporg/internal/config"
)

// setupEmail prompts for the sender credentials and SMTP endpoint and
// overwrites the persisted email configuration.
func (a *App) setupEmail(ctx context.Context) {
	sender, err := GetSimpleText(a.reader, "Sender email address", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	password, err := GetPassword(a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	defer common.WipeByteArray(password)

	if sender == "" || len(password) == 0 {
		fmt.Fprintln(a.out, "Email and password are required.")
		return
	}

	host, err := GetSimpleText(a.reader,
		fmt.Sprintf("SMTP host (empty for %s)", config.DefaultSMTPHost), a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	if host == "" {
		host = config.DefaultSMTPHost
	}

	portLine, err := GetSimpleText(a.reader,
		fmt.Sprintf("SMTP port (empty for %d)", config.DefaultSMTPPort), a.out)
	if err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}
	port := config.DefaultSMTPPort
	if portLine != "" {
		port, err = strconv.Atoi(portLine)
		if err != nil {
			fmt.Fprintf(a.out, "error: %q is not a valid port\n", portLine)
			return
		}
	}

	cfg := &config.EmailConfig{
		Sender:   sender,
		Password: string(password),
		SMTPHost: host,
		SMTPPort: port,
	}
	if err := a.emailStore.Save(cfg); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
		return
	}

	a.log.Info(ctx, "email configuration saved", "sender", sender, "host", host, "port", port)
	fmt.Fprintln(a.out, "Email configuration saved.")
}
