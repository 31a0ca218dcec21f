package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/dporg/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-f string   managed files folder
//	-r string   receipts folder
//	-t string   email templates folder
//	-l string   log file path
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-f", "-r", "-t", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.FilesDir, "f", cfg.FilesDir, "managed files folder")
	fs.StringVar(&cfg.ReceiptsDir, "r", cfg.ReceiptsDir, "receipts folder")
	fs.StringVar(&cfg.TemplatesDir, "t", cfg.TemplatesDir, "email templates folder")
	fs.StringVar(&cfg.LogPath, "l", cfg.LogPath, "log file path")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
