package config

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"reflect"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	// WebServer Configuration
	WebServerPort int    `mapstructure:"WEBSERVER_PORT" validate:"min=1,max=65535"`
	SessionSecret string `mapstructure:"SESSION_SECRET"`

	// Database Configuration. Workspaces are kept in memory when the DSN is empty.
	DatabaseDSN     string `mapstructure:"DATABASE_DSN"`
	DatabaseRetries int    `mapstructure:"DATABASE_RETRIES" validate:"min=1"`

	// Migration bounds for pg-migrator. -1 leaves a bound unset.
	MigrateUpTo   int64 `mapstructure:"GOOSE_UP_TO" validate:"min=-1"`
	MigrateDownTo int64 `mapstructure:"GOOSE_DOWN_TO" validate:"min=-1"`

	// Logging
	LogLevel  string `mapstructure:"LOG_LEVEL" validate:"oneof=debug info warn error"`
	LogFormat string `mapstructure:"LOG_FORMAT" validate:"oneof=console json"`
	LogFile   string `mapstructure:"LOG_FILE"`
}

// HasDatabase reports whether a Postgres store is configured.
func (c Config) HasDatabase() bool {
	return c.DatabaseDSN != ""
}

// LogValue keeps secrets out of logs.
func (c Config) LogValue() slog.Value {
	secret := ""
	if c.SessionSecret != "" {
		secret = "[redacted]"
	}
	return slog.GroupValue(
		slog.Int("webserver_port", c.WebServerPort),
		slog.String("session_secret", secret),
		slog.String("database_dsn", redactDSN(c.DatabaseDSN)),
		slog.Int("database_retries", c.DatabaseRetries),
		slog.Int64("migrate_up_to", c.MigrateUpTo),
		slog.Int64("migrate_down_to", c.MigrateDownTo),
		slog.String("log_level", c.LogLevel),
		slog.String("log_format", c.LogFormat),
		slog.String("log_file", c.LogFile),
	)
}

func redactDSN(dsn string) string {
	u, err := url.Parse(dsn)
	if err != nil || u.User == nil {
		return dsn
	}
	if _, ok := u.User.Password(); ok {
		u.User = url.UserPassword(u.User.Username(), "xxxxx")
	}
	return u.String()
}

// use reflect to bind environment variables based on mapstructure tags
func bindEnv(c Config) {
	val := reflect.ValueOf(c)
	typ := val.Type()

	for i := 0; i < val.NumField(); i++ {
		field := typ.Field(i)
		if tag := field.Tag.Get("mapstructure"); tag != "" {
			_ = viper.BindEnv(tag)
		}
	}
}

func LoadConfig(ctx context.Context) (*Config, error) {
	bindEnv(Config{})
	viper.AutomaticEnv()

	// Defaults
	viper.SetDefault("WEBSERVER_PORT", 8080)
	viper.SetDefault("DATABASE_RETRIES", 10)
	viper.SetDefault("GOOSE_UP_TO", -1)
	viper.SetDefault("GOOSE_DOWN_TO", -1)
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_FORMAT", "console")

	cfg := Config{}
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	slog.InfoContext(ctx, "Loaded configuration", "config", cfg)
	return &cfg, nil
}
