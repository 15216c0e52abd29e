package config

import (
	"github.com/caarlos0/env/v11"
)

type Config struct {
	Server    ServerConfig    `envPrefix:"SERVER_"`
	Catalog   CatalogConfig   `envPrefix:"CATALOG_"`
	LeadStore LeadStoreConfig `envPrefix:"LEAD_STORE_"`
	Database  DatabaseConfig  `envPrefix:"DATABASE_"`
	Postgres  PostgresConfig  `envPrefix:"POSTGRES_"`
	Chat      ChatConfig      `envPrefix:"CHAT_"`
	Kafka     KafkaConfig     `envPrefix:"KAFKA_"`
	Checkout  CheckoutConfig  `envPrefix:"CHECKOUT_"`
}

type ServerConfig struct {
	Addr string `env:"ADDR" envDefault:":8080"`
}

type CatalogConfig struct {
	Path string `env:"PATH" envDefault:"catalog.json"`
}

// LeadStoreConfig selects the persistence backend at startup. Valid
// backends are "mongo", "postgres" and "memory"; the engine itself only
// ever sees the leadstore.Store interface.
type LeadStoreConfig struct {
	Backend string `env:"BACKEND" envDefault:"memory"`
}

type DatabaseConfig struct {
	URI      string `env:"URI" envDefault:"mongodb://localhost:27017"`
	Database string `env:"DATABASE" envDefault:"commerce_bot"`
}

type PostgresConfig struct {
	DSN string `env:"DSN" envDefault:"postgres://localhost:5432/commerce_bot"`
}

// ChatConfig carries the intent vocabularies for the conversation router.
// The two vocabularies must not overlap; the router refuses to start
// otherwise.
type ChatConfig struct {
	BotID            string   `env:"BOT_ID" envDefault:"commerce-bot"`
	CatalogIntents   []string `env:"CATALOG_INTENTS" envDefault:"catalog,products,browse,see"`
	RecommendIntents []string `env:"RECOMMEND_INTENTS" envDefault:"recommend,suggest,advice"`
}

type KafkaConfig struct {
	Enabled    bool     `env:"ENABLED" envDefault:"false"`
	Brokers    []string `env:"BROKERS" envDefault:"localhost:9092"`
	Topic      string   `env:"TOPIC" envDefault:"chat-messages"`
	ReplyTopic string   `env:"REPLY_TOPIC" envDefault:"chat-replies"`
	GroupID    string   `env:"GROUP_ID" envDefault:"commerce-bot"`
}

type CheckoutConfig struct {
	BaseURL    string `env:"BASE_URL"`
	APIKey     string `env:"API_KEY"`
	SuccessURL string `env:"SUCCESS_URL" envDefault:"http://localhost:8080/success.html"`
	CancelURL  string `env:"CANCEL_URL" envDefault:"http://localhost:8080/cancel.html"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}
