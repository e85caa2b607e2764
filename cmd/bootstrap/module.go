package bootstrap

import (
	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	ClientModule,
	RedisModule,
	WatcherModule,
	HandlerModule,
)
