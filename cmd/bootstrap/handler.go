package bootstrap

import (
	"courtbook/internal/client"
	"courtbook/internal/handler"
	"courtbook/internal/handler/api"
	"courtbook/internal/watcher"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		func(c *client.Client) api.AvailabilityReader { return c },
		func(w *watcher.Watcher) api.TargetLister { return w },
		api.NewAvailabilityHandler,
		api.NewQuoteHandler,
		api.NewWatchHandler,
	),
	fx.Invoke(handler.NewRouter),
)
