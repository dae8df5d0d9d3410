// Package config loads runtime settings from the environment (prefix
// STOREFRONT_) and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/fjod/go_storefront/internal/storage"
)

const envPrefix = "STOREFRONT"

type Config struct {
	HTTPPort           string        `envconfig:"HTTP_PORT" default:"8080"`
	RequestTimeout     time.Duration `envconfig:"REQUEST_TIMEOUT" default:"30s"`
	ShutdownTimeout    time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	MaxRequestBodySize int64         `envconfig:"MAX_REQUEST_BODY_SIZE" default:"1048576"`

	StorageBackend string `envconfig:"STORAGE_BACKEND" default:"sqlite"`
	SQLitePath     string `envconfig:"SQLITE_PATH" default:"./storefront.db"`
	RedisAddr      string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword  string `envconfig:"REDIS_PASSWORD"`
	RedisDB        int    `envconfig:"REDIS_DB" default:"0"`
	MongoURI       string `envconfig:"MONGO_URI" default:"mongodb://localhost:27017"`
	MongoDatabase  string `envconfig:"MONGO_DB_NAME" default:"storefront"`

	OpenAIAPIKey      string `envconfig:"OPENAI_API_KEY"`
	OpenAIModel       string `envconfig:"OPENAI_MODEL" default:"gpt-3.5-turbo"`
	OpenAIBaseURL     string `envconfig:"OPENAI_BASE_URL"`
	GeneratedProducts int    `envconfig:"GENERATED_PRODUCTS" default:"15"`

	KafkaBrokers []string `envconfig:"KAFKA_BROKERS"`
	KafkaTopic   string   `envconfig:"KAFKA_TOPIC" default:"checkout-outbox"`

	CheckoutDelay time.Duration `envconfig:"CHECKOUT_DELAY" default:"2s"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`
}

// Load reads envFiles (missing files are ignored) and then the environment.
func Load(envFiles ...string) (*Config, error) {
	for _, f := range envFiles {
		// Real environment variables take precedence over the file.
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", f, err)
		}
	}

	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch strings.ToLower(c.StorageBackend) {
	case storage.BackendMemory, storage.BackendSQLite, storage.BackendRedis, storage.BackendMongo:
		c.StorageBackend = strings.ToLower(c.StorageBackend)
	default:
		return fmt.Errorf("%w: %q", storage.ErrUnknownBackend, c.StorageBackend)
	}
	if c.GeneratedProducts <= 0 {
		return fmt.Errorf("GENERATED_PRODUCTS must be positive, got %d", c.GeneratedProducts)
	}
	return nil
}

func (c *Config) StorageOptions() storage.Options {
	return storage.Options{
		Backend:       c.StorageBackend,
		SQLitePath:    c.SQLitePath,
		RedisAddr:     c.RedisAddr,
		RedisPassword: c.RedisPassword,
		RedisDB:       c.RedisDB,
		MongoURI:      c.MongoURI,
		MongoDatabase: c.MongoDatabase,
	}
}
