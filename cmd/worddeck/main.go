// Package main is the worddeck entry point: the desktop form by default,
// batch generation when -i or -o is given.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/aerissecure/worddeck/internal/app"
	"github.com/aerissecure/worddeck/internal/cli"
	"github.com/aerissecure/worddeck/internal/config"
	"github.com/aerissecure/worddeck/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	log, closeLog, err := app.NewLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	if _, err := app.ApplyLicense(cfg.License); err != nil {
		log.Warn("license not applied, decks will carry the unlicensed notice", slog.Any("error", err))
	}

	fallback := func(err error) bool { return errors.Is(err, ui.ErrUnavailable) }
	rootCmd := cli.NewRootCmd(cfg, log, ui.Run, fallback)
	err = rootCmd.Execute()
	_ = closeLog()
	if err != nil {
		os.Exit(1)
	}
}
