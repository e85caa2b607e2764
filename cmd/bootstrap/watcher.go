package bootstrap

import (
	"context"
	"log/slog"

	"courtbook/internal/client"
	"courtbook/internal/pkg/clock"
	"courtbook/internal/pkg/config"
	"courtbook/internal/watcher"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/fx"
)

var WatcherModule = fx.Module("watcher",
	fx.Provide(
		NewWatchList,
		NewNotifier,
		NewWatcher,
	),
	fx.Invoke(StartWatcher),
)

func NewWatchList(cfg config.Config, logger *slog.Logger) (*config.WatchList, error) {
	wl, err := config.LoadWatchList(cfg.Watcher.TargetsFile)
	if err != nil {
		return nil, err
	}
	logger.Info("watch list loaded", "path", cfg.Watcher.TargetsFile, "targets", len(wl.Targets))
	return wl, nil
}

// NewNotifier picks telegram when a bot token is configured, otherwise
// falls back to log-only delivery.
func NewNotifier(cfg config.Config, logger *slog.Logger) (watcher.Notifier, error) {
	if cfg.Telegram.BotToken == "" {
		logger.Info("no telegram bot token configured, logging notifications only")
		return watcher.NewLogNotifier(logger), nil
	}

	bot, err := tgbotapi.NewBotAPI(cfg.Telegram.BotToken)
	if err != nil {
		return nil, err
	}
	logger.Info("telegram notifier ready", "bot", bot.Self.UserName)
	return watcher.NewTelegramNotifier(bot), nil
}

func NewWatcher(
	apiClient *client.Client,
	store *watcher.SnapshotStore,
	notifier watcher.Notifier,
	targets *config.WatchList,
	clk clock.Clock,
	logger *slog.Logger,
) *watcher.Watcher {
	return watcher.New(apiClient, store, notifier, targets, clk, logger)
}

func StartWatcher(lc fx.Lifecycle, w *watcher.Watcher, cfg config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return w.Start(cfg.Watcher.CronSpec)
		},
		OnStop: func(_ context.Context) error {
			w.Stop()
			return nil
		},
	})
}
