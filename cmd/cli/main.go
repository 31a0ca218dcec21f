package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/dmitrijs2005/dporg/internal/buildinfo"
	"github.com/dmitrijs2005/dporg/internal/cli"
	"github.com/dmitrijs2005/dporg/internal/config"
	"github.com/dmitrijs2005/dporg/internal/filex"
	"github.com/dmitrijs2005/dporg/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logFile, err := openLogFile(cfg.LogPath)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer logFile.Close()

	logger := logging.NewZerolog("dporg", logFile)

	// the managed and receipts folders exist before the first command
	for _, dir := range []string{cfg.FilesDir, cfg.ReceiptsDir} {
		if err := filex.EnsureDir(dir); err != nil {
			log.Fatalf("%v", err)
		}
	}

	app := cli.NewApp(cfg, logger)
	app.Run(ctx)
}

func openLogFile(path string) (*os.File, error) {
	if err := filex.EnsureParentDir(path); err != nil {
		return nil, err
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o660)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	return f, nil
}
