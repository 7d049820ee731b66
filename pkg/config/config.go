package config

import (
	"errors"
	"os"

	"github.com/caarlos0/env/v7"
	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort         int    `env:"HTTP_PORT" envDefault:"8080"`
	PostgresDSN      string `env:"POSTGRES_DSN"`
	PostgresMaxConns int32  `env:"POSTGRES_MAX_CONNS" envDefault:"10"`
	AuthServiceURL   string `env:"AUTH_SERVICE_URL"`
	AuthEnabled      bool   `env:"AUTH_ENABLED" envDefault:"false"`
	RecentListLimit  uint64 `env:"RECENT_LIST_LIMIT" envDefault:"50"`
	S3               S3
	Kafka            Kafka
}

type S3 struct {
	Region        string `env:"S3_REGION" envDefault:"eu-west-2"`
	Endpoint      string `env:"S3_ENDPOINT"`
	QuotesBucket  string `env:"S3_QUOTES_BUCKET" envDefault:"quotes-pdf"`
	InvoiceBucket string `env:"S3_INVOICES_BUCKET" envDefault:"invoices"`
}

type Kafka struct {
	Brokers            []string `env:"KAFKA_BROKERS"`
	DocumentSavedTopic string   `env:"KAFKA_DOCUMENT_SAVED_TOPIC" envDefault:"documents.saved"`
}

func New(envPath string) (Config, error) {
	var c Config

	err := godotenv.Load(envPath)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, err
	}

	err = env.Parse(&c)
	if err != nil {
		return Config{}, err
	}

	return c, nil
}
