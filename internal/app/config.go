package app

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the application core.
type Config struct {
	AppEnv    string `envconfig:"APP_ENV" default:"development"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`

	// RedisAddr selects the redis backed session store. When empty the core
	// falls back to the local file store at SessionPath.
	RedisAddr   string        `envconfig:"REDIS_ADDR" default:""`
	SessionKey  string        `envconfig:"SESSION_KEY" default:"auth-user"`
	SessionPath string        `envconfig:"SESSION_PATH" default:".assetdesk/session.json"`
	SessionTTL  time.Duration `envconfig:"SESSION_TTL" default:"720h"`

	// Simulated round-trip latency of the mock identity provider.
	LoginDelay   time.Duration `envconfig:"LOGIN_DELAY" default:"1s"`
	LogoutDelay  time.Duration `envconfig:"LOGOUT_DELAY" default:"500ms"`
	ProfileDelay time.Duration `envconfig:"PROFILE_DELAY" default:"800ms"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}
