//go:build nogui

package ui

import (
	"log/slog"

	"github.com/aerissecure/worddeck/internal/config"
)

func Run(*config.Config, *slog.Logger) error {
	return ErrUnavailable
}
