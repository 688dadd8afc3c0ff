package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/labstack/gommon/log"
)

type Config struct {
	OrderHTTPPort       string        `envconfig:"ORDER_HTTP_PORT" default:"3002"`
	UserHTTPPort        string        `envconfig:"USER_HTTP_PORT" default:"3001"`
	OrderServiceVersion string        `envconfig:"ORDER_SERVICE_VERSION" default:"1.2.0"`
	UserServiceVersion  string        `envconfig:"USER_SERVICE_VERSION" default:"1.0.0"`
	AppEnv              string        `envconfig:"APP_ENV" default:"development"`
	LogLevel            string        `envconfig:"LOG_LEVEL"`
	EchoLogLevel        string        `envconfig:"ECHO_LOG_LEVEL" default:"error"`
	OrderStatsSchedule  string        `envconfig:"ORDER_STATS_SCHEDULE" default:"*/30 * * * * *"`
	ShutdownTimeout     time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"5s"`
}

// LoadConfig reads an optional .env file and then the process environment.
// Values already present in the environment win over the file.
func LoadConfig(envFiles ...string) (Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load(envFiles...)

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if _, err := cfg.EchoLogLvl(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// EchoLogLvl maps ECHO_LOG_LEVEL onto the gommon level used by echo's own logger.
func (c Config) EchoLogLvl() (log.Lvl, error) {
	switch strings.ToLower(c.EchoLogLevel) {
	case "debug":
		return log.DEBUG, nil
	case "info":
		return log.INFO, nil
	case "warn":
		return log.WARN, nil
	case "error", "":
		return log.ERROR, nil
	case "off":
		return log.OFF, nil
	default:
		return 0, fmt.Errorf("unknown ECHO_LOG_LEVEL %q", c.EchoLogLevel)
	}
}
