package bootstrap

import (
	"log/slog"

	"courtbook/internal/client"
	"courtbook/internal/pkg/clock"
	"courtbook/internal/pkg/config"

	"go.uber.org/fx"
)

var ClientModule = fx.Module("client",
	fx.Provide(
		clock.NewRealClock,
		NewCredentialStore,
		NewAPIClient,
	),
)

func NewCredentialStore(cfg config.Config) client.CredentialStore {
	if cfg.API.CredentialsFile == "" {
		return client.NewMemoryStore()
	}
	return client.NewFileStore(cfg.API.CredentialsFile)
}

func NewAPIClient(cfg config.Config, store client.CredentialStore, clk clock.Clock, logger *slog.Logger) (*client.Client, error) {
	onUnauthenticated := func(returnTo string) {
		logger.Warn("session expired, sign-in required", "return_to", returnTo)
	}
	return client.New(cfg.API, store, clk, logger, onUnauthenticated)
}
