package cli

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/dmitrijs2005/dporg/internal/assets"
	"github.com/dmitrijs2005/dporg/internal/clients"
	"github.com/dmitrijs2005/dporg/internal/config"
	"github.com/dmitrijs2005/dporg/internal/logging"
	"github.com/dmitrijs2005/dporg/internal/mailer"
	"github.com/dmitrijs2005/dporg/internal/receipts"
	"github.com/dmitrijs2005/dporg/internal/sentmail"
	"github.com/dmitrijs2005/dporg/internal/users"
)

// App wires the stores and services together and drives the REPL.
type App struct {
	config *config.Config
	log    logging.Logger
	reader *bufio.Reader
	out    io.Writer

	clients    clients.Repository
	sent       sentmail.Repository
	auth       *users.Service
	assets     *assets.Manager
	receipts   *receipts.Composer
	dispatcher *mailer.Dispatcher
	emailStore *config.EmailStore

	userName string
}

func NewApp(c *config.Config, log logging.Logger) *App {
	emailStore := config.NewEmailStore(c.EmailConfigPath)

	return &App{
		config:     c,
		log:        log,
		reader:     bufio.NewReader(os.Stdin),
		out:        os.Stdout,
		clients:    clients.NewCSVRepository(c.ClientsCSV),
		sent:       sentmail.NewCSVRepository(c.SentEmailsCSV),
		auth:       users.NewService(users.NewCSVRepository(c.UsersCSV)),
		assets:     assets.NewManager(c.FilesDir, log),
		receipts:   receipts.NewComposer(c.ReceiptsDir, "assets/logo.png"),
		dispatcher: mailer.NewDispatcher(emailStore, log),
		emailStore: emailStore,
	}
}

func (a *App) isLoggedIn() bool {
	return a.userName != ""
}

func (a *App) Run(ctx context.Context) {
	a.Root(ctx)
}
