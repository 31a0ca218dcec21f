package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Default SMTP endpoint applied when the persisted document leaves it out.
const (
	DefaultSMTPHost = "smtp.gmail.com"
	DefaultSMTPPort = 587
)

// EmailConfig holds the sender identity and SMTP endpoint used for delivery.
// The persisted schema is lowercase keys: sender, password, smtp, port.
type EmailConfig struct {
	Sender   string `json:"sender"`
	Password string `json:"password"`
	SMTPHost string `json:"smtp"`
	SMTPPort int    `json:"port"`
}

// EmailStore persists an EmailConfig as a small JSON document.
//
// Load never fails: a missing or unparsable document yields a config with an
// empty sender and password, which IsMissing reports as incomplete. That
// predicate is what a presentation layer uses to decide whether to prompt
// for setup.
type EmailStore struct {
	path string
}

func NewEmailStore(path string) *EmailStore {
	return &EmailStore{path: path}
}

// Load reads the persisted config. On a missing file or parse failure it
// returns a zero config; the SMTP endpoint falls back to the Gmail defaults
// when unset.
func (s *EmailStore) Load() *EmailConfig {
	cfg := &EmailConfig{}

	data, err := os.ReadFile(s.path)
	if err == nil {
		if jsonErr := json.Unmarshal(data, cfg); jsonErr != nil {
			*cfg = EmailConfig{}
		}
	}

	if cfg.SMTPHost == "" {
		cfg.SMTPHost = DefaultSMTPHost
	}
	if cfg.SMTPPort == 0 {
		cfg.SMTPPort = DefaultSMTPPort
	}

	return cfg
}

// Save overwrites the persisted document in full.
func (s *EmailStore) Save(cfg *EmailConfig) error {
	data, err := json.MarshalIndent(cfg, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal email config: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write email config %s: %w", s.path, err)
	}
	return nil
}

// IsMissing reports whether the configuration still needs interactive setup:
// no stored document, a parse failure, or an empty sender or password after
// trimming whitespace.
func (s *EmailStore) IsMissing() bool {
	if _, err := os.Stat(s.path); err != nil {
		return true
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return true
	}

	var cfg EmailConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return true
	}

	return strings.TrimSpace(cfg.Sender) == "" || strings.TrimSpace(cfg.Password) == ""
}
