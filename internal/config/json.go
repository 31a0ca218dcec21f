package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/dporg/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Only fields
// present in the file override the running Config.
type JsonConfig struct {
	ClientsCSV      string `json:"clients_csv"`
	SentEmailsCSV   string `json:"sent_emails_csv"`
	UsersCSV        string `json:"users_csv"`
	EmailConfigPath string `json:"email_config_path"`
	FilesDir        string `json:"files_dir"`
	ReceiptsDir     string `json:"receipts_dir"`
	TemplatesDir    string `json:"templates_dir"`
	LogPath         string `json:"log_path"`
}

// parseJson overlays Config with values loaded from a JSON file whose path is
// given via the -c or -config flags. With no such flag the function returns
// without touching cfg. Read or unmarshal errors panic; the caller decides
// whether a broken explicit config file is recoverable.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ClientsCSV != "" {
		cfg.ClientsCSV = jc.ClientsCSV
	}
	if jc.SentEmailsCSV != "" {
		cfg.SentEmailsCSV = jc.SentEmailsCSV
	}
	if jc.UsersCSV != "" {
		cfg.UsersCSV = jc.UsersCSV
	}
	if jc.EmailConfigPath != "" {
		cfg.EmailConfigPath = jc.EmailConfigPath
	}
	if jc.FilesDir != "" {
		cfg.FilesDir = jc.FilesDir
	}
	if jc.ReceiptsDir != "" {
		cfg.ReceiptsDir = jc.ReceiptsDir
	}
	if jc.TemplatesDir != "" {
		cfg.TemplatesDir = jc.TemplatesDir
	}
	if jc.LogPath != "" {
		cfg.LogPath = jc.LogPath
	}
}
