package config

import (
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds the application configuration, read from the environment.
type Config struct {
	Env          string `env:"APP_ENV" env-default:"development"`
	LogLevel     string `env:"LOG_LEVEL" env-default:"info"`
	ServerPort   int    `env:"PORT" env-default:"8080"`
	DatabasePath string `env:"DATABASE_PATH" env-default:"./megahand.db"`

	SessionSecret string        `env:"SESSION_SECRET" env-default:"megahand-secret-key"`
	SessionTTL    time.Duration `env:"SESSION_TTL" env-default:"24h"`

	SMTPHost     string `env:"SMTP_HOST" env-default:"smtp-relay.brevo.com"`
	SMTPPort     int    `env:"SMTP_PORT" env-default:"587"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	ContactFrom  string `env:"CONTACT_FROM" env-default:"noreply@megahand.az"`
	ContactTo    string `env:"CONTACT_TO" env-default:"info@megahand.az"`

	// Root of the tree served by the /api/download archive endpoint.
	DownloadRoot string `env:"DOWNLOAD_ROOT" env-default:"."`

	Seed bool `env:"SEED" env-default:"true"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// IsProduction reports whether the app runs in the production environment.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
