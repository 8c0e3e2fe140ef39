package cmd

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config carries everything the application reads from the environment.
// Constructed once in main and injected; nothing else reads env vars.
type Config struct {
	HTTPPort string `envconfig:"HTTP_PORT" default:"8080"`

	DBHost     string `envconfig:"DB_HOST" required:"true"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
	DBUser     string `envconfig:"DB_USER" required:"true"`
	DBPassword string `envconfig:"DB_PASSWORD" required:"true"`
	DBName     string `envconfig:"DB_NAME" required:"true"`
	DBSslMode  string `envconfig:"DB_SSLMODE" default:"disable"`

	KafkaBrokers           string `envconfig:"KAFKA_BROKERS" required:"true"`
	KafkaOrderChangedTopic string `envconfig:"KAFKA_ORDER_CHANGED_TOPIC" default:"order-status-changed"`

	ReviewReminderAfter time.Duration `envconfig:"REVIEW_REMINDER_AFTER" default:"30m"`

	OpenAPIPath string `envconfig:"OPENAPI_PATH" default:"api/openapi.yml"`
}

// LoadConfig reads configuration from a local .env file (when present)
// and the process environment.
func LoadConfig() (Config, error) {
	// Missing .env is fine in deployed environments.
	_ = godotenv.Load(".env")

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return Config{}, fmt.Errorf("failed to process configuration: %w", err)
	}

	return config, nil
}

// DatabaseDSN renders the lib/pq connection string.
func (c Config) DatabaseDSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}
