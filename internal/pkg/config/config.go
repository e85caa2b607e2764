package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (backend URL, credentials),
//   security settings
// - default: Values common across all environments (timeouts, poll schedule),
//   standard settings
// -----------------------------------------------------------------------------

type Config struct {
	Server   ServerConfig
	API      APIConfig
	Redis    RedisConfig
	Telegram TelegramConfig
	Watcher  WatcherConfig
	CORS     CORSConfig
	Log      LogConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8090"`
}

// APIConfig points at the remote court-booking backend.
type APIConfig struct {
	BaseURL         string        `envconfig:"API_BASE_URL" required:"true"`
	Timeout         time.Duration `envconfig:"API_TIMEOUT" default:"15s"`
	CredentialsFile string        `envconfig:"API_CREDENTIALS_FILE" default:"./var/credentials.json"`
}

type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type TelegramConfig struct {
	BotToken string `envconfig:"TELEGRAM_BOT_TOKEN" default:""`
}

type WatcherConfig struct {
	// CronSpec follows the standard 5-field cron format.
	CronSpec    string `envconfig:"WATCH_CRON" default:"*/20 * * * *"`
	TargetsFile string `envconfig:"WATCH_TARGETS_FILE" default:"./var/watch.yaml"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8090"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"America/Argentina/Buenos_Aires"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"-10800"` // -3*60*60
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8899", // Test port
		},
		API: APIConfig{
			BaseURL:         "http://localhost:8000",
			Timeout:         15 * time.Second,
			CredentialsFile: "", // tests use the in-memory store
		},
		Watcher: WatcherConfig{
			CronSpec: "*/20 * * * *",
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "America/Argentina/Buenos_Aires",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: -10800,
		},
	}
}
