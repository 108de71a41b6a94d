package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type (
	Tasks struct {
		LedgerStatsInterval time.Duration `env:"BACKGROUND_LEDGER_STATS_INTERVAL"`
	}

	HTTPServer struct {
		Port             string        `env:"PORT"`
		RequestTimeout   time.Duration `env:"MIDDLEWARE_REQUEST_TIMEOUT"`  // middleware timeout
		RateLimiterQPS   int           `env:"MIDDLEWARE_RATE_LIMIT_QPS"`   // rate limiter capacity
		RateLimiterBurst int           `env:"MIDDLEWARE_RATE_LIMIT_BURST"` // rate limiter refill, токенов/сек
		PprofEnabled     bool          `env:"PPROF_ENABLED"`
		PprofPort        string        `env:"PPROF_PORT"`
	}

	Database struct {
		Host     string `env:"POSTGRES_HOST"`
		Port     string `env:"POSTGRES_PORT"`
		User     string `env:"POSTGRES_USER"`
		Password string `env:"POSTGRES_PASSWORD"`
		DBName   string `env:"POSTGRES_DB"`
		SSLMode  string `env:"POSTGRES_SSLMODE"`
	}

	Kafka struct {
		PortHealthcheck string        `env:"KAFKA_HTTP_HEALTHCHECK_PORT"`
		Brokers         string        `env:"KAFKA_BROKERS"`
		Topic           string        `env:"KAFKA_TOPIC"`
		ConsumerGroup   string        `env:"KAFKA_CONSUMER_GROUP"`
		Sarama          Sarama        `envPrefix:"KAFKA_SARAMA_"`
		Handlers        KafkaHandlers `envPrefix:"KAFKA_HANDLER_"`
	}

	Sarama struct {
		Version                   string `env:"VERSION"`
		ConsumerOffsetsAutocommit bool   `env:"OFFSETS_AUTOCOMMIT"`
	}

	KafkaHandlers struct {
		PaymentRequested PaymentRequested `envPrefix:"PAYMENT_REQUESTED_"`
	}

	PaymentRequested struct {
		ProcessTimeout time.Duration `env:"PROCESS_TIMEOUT"`
	}

	Config struct {
		Tasks    Tasks
		Server   HTTPServer
		Database Database
		Kafka    Kafka
	}
)

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.Port == "" {
		return errors.New("server port is required (set via PORT env variable)")
	}
	if cfg.Server.RequestTimeout <= 0 {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT is required")
	}
	if cfg.Server.RateLimiterQPS <= 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS is required")
	}
	if cfg.Server.RateLimiterBurst <= 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST is required")
	}
	if cfg.Server.PprofPort == "" && cfg.Server.PprofEnabled {
		return errors.New("PprofPort is required (set via PPROF_PORT env variable)")
	}

	if cfg.Database.Host == "" {
		return errors.New("POSTGRES_HOST is required")
	}
	if cfg.Database.Port == "" {
		return errors.New("POSTGRES_PORT is required")
	}
	if cfg.Database.User == "" {
		return errors.New("POSTGRES_USER is required")
	}
	if cfg.Database.Password == "" {
		return errors.New("POSTGRES_PASSWORD is required")
	}
	if cfg.Database.DBName == "" {
		return errors.New("POSTGRES_DB is required")
	}
	if cfg.Database.SSLMode == "" {
		return errors.New("POSTGRES_SSLMODE is required")
	}

	if cfg.Tasks.LedgerStatsInterval <= 0 {
		return errors.New("BACKGROUND_LEDGER_STATS_INTERVAL is required")
	}

	if cfg.Kafka.Brokers == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Topic == "" {
		return errors.New("KAFKA_TOPIC is required")
	}
	if cfg.Kafka.ConsumerGroup == "" {
		return errors.New("KAFKA_CONSUMER_GROUP is required")
	}
	if cfg.Kafka.PortHealthcheck == "" {
		return errors.New("KAFKA_HTTP_HEALTHCHECK_PORT is required")
	}
	if cfg.Kafka.Sarama.Version == "" {
		return errors.New("KAFKA_SARAMA_VERSION is required")
	}
	if cfg.Kafka.Handlers.PaymentRequested.ProcessTimeout <= 0 {
		return errors.New("KAFKA_HANDLER_PAYMENT_REQUESTED_PROCESS_TIMEOUT is required")
	}

	return nil
}
