package config

import (
	"errors"
	"os"
	"time"

	errorsUtils "github.com/Egor213/BotStats/pkg/errors"

	"github.com/ilyakaznacheev/cleanenv"
	log "github.com/sirupsen/logrus"

	"github.com/joho/godotenv"
)

type (
	Config struct {
		App        `yaml:"app"`
		Log        `yaml:"log"`
		HTTP       `yaml:"http"`
		Prometheus `yaml:"prometheus"`
		Retention  `yaml:"retention"`
		Archive    `yaml:"archive"`
	}

	App struct {
		Name    string `yaml:"name" env-required:"true"`
		Version string `yaml:"version" env-required:"true"`
	}

	Log struct {
		Level string `yaml:"level" env:"LOG_LEVEL" env-default:"info"`
		File  string `yaml:"file" env:"LOG_FILE"`
	}

	HTTP struct {
		Port     string `yaml:"port" env:"HTTP_PORT" env-default:"8000"`
		HTMLPath string `yaml:"html_path" env:"HTML_PATH"`
	}

	Prometheus struct {
		Port string `env-required:"true" yaml:"port" env:"PROMETHEUS_PORT"`
	}

	// Retention.Threshold of 0 in yaml is indistinguishable from unset and falls back to
	// the default; use RETENTION_THRESHOLD=0 or the command flag for a deep reset.
	Retention struct {
		Interval  time.Duration `yaml:"interval" env:"RETENTION_INTERVAL" env-default:"6h"`
		Threshold int           `yaml:"threshold" env:"RETENTION_THRESHOLD" env-default:"100"`
	}

	Archive struct {
		Timeout  time.Duration `yaml:"timeout" env:"ARCHIVE_TIMEOUT" env-default:"3s"`
		Dir      string        `yaml:"dir" env:"ARCHIVE_DIR"`
		Postgres PG            `yaml:"postgres"`
		Kafka    Kafka         `yaml:"kafka"`
	}

	PG struct {
		Enabled     bool   `yaml:"enabled" env:"PG_ENABLED"`
		MaxPoolSize int    `yaml:"max_pool_size" env:"MAX_POOL_SIZE" env-default:"10"`
		URL         string `yaml:"url" env:"PG_URL"`
	}

	Kafka struct {
		Enabled bool     `yaml:"enabled" env:"KAFKA_ENABLED"`
		Brokers []string `yaml:"brokers" env:"KAFKA_BROKERS" env-separator:","`
		Topic   string   `yaml:"topic" env:"KAFKA_TOPIC" env-default:"botstats.archives"`
	}
)

const (
	ENV_PATH    = "infra/.env"
	CONFIG_PATH = "infra/config.yaml"
)

var (
	ErrPostgresURLRequired  = errors.New("archive.postgres.url is required when postgres is enabled")
	ErrKafkaBrokersRequired = errors.New("archive.kafka.brokers is required when kafka is enabled")
	ErrNegativeThreshold    = errors.New("retention.threshold must not be negative")
	ErrNonPositiveInterval  = errors.New("retention.interval must be positive")
)

// New reads the yaml config at path, then applies environment overrides. An empty path
// falls back to APP_CONFIG_PATH and then to infra/config.yaml.
func New(path string) (*Config, error) {
	if err := godotenv.Load(ENV_PATH); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, errorsUtils.WrapPathErr(err)
	}

	cfg := &Config{}

	if path == "" {
		pathToConfig, ok := os.LookupEnv("APP_CONFIG_PATH")
		if !ok || pathToConfig == "" {
			log.WithField("env_var", "APP_CONFIG_PATH").
				Info("Config path is not set, using default")
			pathToConfig = CONFIG_PATH
		}
		path = pathToConfig
	}

	if err := cleanenv.ReadConfig(path, cfg); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	if err := cleanenv.UpdateEnv(cfg); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errorsUtils.WrapPathErr(err)
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	switch {
	case c.Retention.Threshold < 0:
		return ErrNegativeThreshold
	case c.Retention.Interval <= 0:
		return ErrNonPositiveInterval
	case c.Archive.Postgres.Enabled && c.Archive.Postgres.URL == "":
		return ErrPostgresURLRequired
	case c.Archive.Kafka.Enabled && len(c.Archive.Kafka.Brokers) == 0:
		return ErrKafkaBrokersRequired
	}
	return nil
}
