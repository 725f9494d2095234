package config

import (
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/go-faster/errors"
	"github.com/joho/godotenv"
)

const (
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
)

type Config struct {
	Port      string
	LogLevel  string
	LogFormat string

	CatalogBackend string
	DatabaseURL    string

	MetricsEnabled bool
	MetricsToken   string

	ShutdownTimeout time.Duration
}

func (c Config) Addr() string {
	return ":" + c.Port
}

// Load reads the optional env files (".env" when none are given) and then
// the process environment. Variables already set in the environment win
// over the files.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, errors.Wrap(err, "load env file")
	}

	cfg := Config{
		Port:           getenv("PORT", "8000"),
		LogLevel:       getenv("LOG_LEVEL", "info"),
		LogFormat:      getenv("LOG_FORMAT", "json"),
		CatalogBackend: getenv("CATALOG_BACKEND", BackendMemory),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		MetricsToken:   os.Getenv("METRICS_TOKEN"),
	}

	var err error
	if cfg.MetricsEnabled, err = getBool("METRICS_ENABLED", true); err != nil {
		return Config{}, err
	}
	if cfg.ShutdownTimeout, err = getDuration("SHUTDOWN_TIMEOUT", 10*time.Second); err != nil {
		return Config{}, err
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.CatalogBackend {
	case BackendMemory:
	case BackendPostgres:
		if c.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required for the postgres catalog backend")
		}
	default:
		return errors.Errorf("unknown CATALOG_BACKEND %q", c.CatalogBackend)
	}

	if c.ShutdownTimeout <= 0 {
		return errors.New("SHUTDOWN_TIMEOUT must be positive")
	}
	return nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func getBool(k string, def bool) (bool, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, errors.Wrapf(err, "parse %s", k)
	}
	return b, nil
}

func getDuration(k string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, errors.Wrapf(err, "parse %s", k)
	}
	return d, nil
}
