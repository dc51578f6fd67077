package impl

import (
	"io"
	"log/slog"

	"gatekeeper/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Secrets.PasswordServerSalt = "server-salt"
	cfg.Secrets.AuthTokenSecret = "token-secret"

	return cfg
}
