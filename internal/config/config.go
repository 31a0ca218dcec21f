// Package config handles configuration for the organizer: application file
// locations (defaults, JSON overlay, command-line flags) and the persisted
// email settings document.
package config

// Config holds the file and folder locations the organizer works with.
//
// Fields:
//   - ClientsCSV: client records store.
//   - SentEmailsCSV: (name,email) suggestion history.
//   - UsersCSV: credential store.
//   - EmailConfigPath: persisted SMTP/sender settings document.
//   - FilesDir: the managed flat folder holding product files.
//   - ReceiptsDir: generated PDF receipts.
//   - TemplatesDir: optional plain-text email body templates.
//   - LogPath: application log file.
type Config struct {
	ClientsCSV      string
	SentEmailsCSV   string
	UsersCSV        string
	EmailConfigPath string
	FilesDir        string
	ReceiptsDir     string
	TemplatesDir    string
	LogPath         string
}

// LoadDefaults populates c with the conventional relative locations.
func (c *Config) LoadDefaults() {
	c.ClientsCSV = "clients.csv"
	c.SentEmailsCSV = "assets/client/emails.csv"
	c.UsersCSV = "users.csv"
	c.EmailConfigPath = "email_config.json"
	c.FilesDir = "assets/files"
	c.ReceiptsDir = "receipts"
	c.TemplatesDir = "templates"
	c.LogPath = "logs/dpo.log"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
