package configs

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v9"
)

const (
	BackendXLSX     = "xlsx"
	BackendPostgres = "postgres"
)

type Config struct {
	POSHTTPAddr    string `env:"POS_HTTP_ADDR" envDefault:":8080"`
	MirrorHTTPAddr string `env:"MIRROR_HTTP_ADDR" envDefault:":8081"`

	StoreBackend string `env:"STORE_BACKEND" envDefault:"xlsx"`
	StorePath    string `env:"STORE_PATH" envDefault:"data/base_datos_ventas.xlsx"`
	CatalogPath  string `env:"CATALOG_PATH" envDefault:"data/precios.json"`

	DraftTTL    time.Duration `env:"DRAFT_TTL" envDefault:"12h"`
	CacheShards int           `env:"CACHE_SHARDS" envDefault:"0"`

	KafkaEnabled     bool          `env:"KAFKA_ENABLED" envDefault:"false"`
	KafkaBrokers     string        `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	KafkaTopic       string        `env:"KAFKA_TOPIC" envDefault:"uniform-sales"`
	KafkaGroupID     string        `env:"KAFKA_GROUP_ID" envDefault:"sales-mirror"`
	KafkaDLQ         string        `env:"KAFKA_DLQ" envDefault:"uniform-sales-dlq"`
	KafkaMaxRetries  int           `env:"KAFKA_MAX_RETRIES" envDefault:"5"`
	KafkaBaseBackoff time.Duration `env:"KAFKA_BASE_BACKOFF" envDefault:"200ms"`

	DatabaseURL     string `env:"DATABASE_URL" envDefault:""`
	PostgresHost    string `env:"POSTGRES_HOST" envDefault:"localhost"`
	PostgresPort    string `env:"POSTGRES_PORT" envDefault:"5432"`
	PostgresUser    string `env:"POSTGRES_USER" envDefault:"postgres"`
	PostgresPass    string `env:"POSTGRES_PASSWORD" envDefault:"postgres"`
	PostgresDB      string `env:"POSTGRES_DB" envDefault:"uniforms"`
	PostgresSSLMode string `env:"POSTGRES_SSLMODE" envDefault:"disable"`
}

func LoadConfig(_ string) (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("config parse: %w", err)
	}
	switch c.StoreBackend {
	case BackendXLSX, BackendPostgres:
	default:
		return Config{}, fmt.Errorf("config parse: unknown STORE_BACKEND %q", c.StoreBackend)
	}
	return c, nil
}

func (c Config) KafkaBrokersSlice() []string {
	parts := strings.Split(c.KafkaBrokers, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func (c Config) PgDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.PostgresUser,
		c.PostgresPass,
		c.PostgresHost,
		c.PostgresPort,
		c.PostgresDB,
		c.PostgresSSLMode,
	)
}
