package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Режимы хранения спотов. Выбирается ровно один, данные между ними не переносятся.
const (
	StorageModePostgres = "postgres"
	StorageModeLocal    = "local"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	StorageMode    string `env:"STORAGE_MODE" envDefault:"postgres"`
	DatabaseURL    string `env:"DATABASE_URL"`
	MigrationsPath string `env:"MIGRATIONS_PATH" envDefault:"migrations"`

	// Local slot Config
	LocalDBPath  string `env:"LOCAL_DB_PATH" envDefault:"spots.db"`
	LocalSlotKey string `env:"LOCAL_SLOT_KEY" envDefault:"spots_v3"`

	HTTPPort  string `env:"HTTP_PORT" envDefault:"8080"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`

	// Redis Config, пустой адрес отключает кэш и вебхуки
	RedisAddr string        `env:"REDIS_ADDR"`
	RedisPass string        `env:"REDIS_PASSWORD"`
	RedisDB   int           `env:"REDIS_DB" envDefault:"0"`
	CacheTTL  time.Duration `env:"CACHE_TTL" envDefault:"5m"`

	// Webhook Config
	WebhookURL        string        `env:"WEBHOOK_URL"`
	WebhookSecret     string        `env:"WEBHOOK_SECRET"`
	WebhookTimeout    time.Duration `env:"WEBHOOK_TIMEOUT" envDefault:"5s"`
	WebhookMaxRetries int           `env:"WEBHOOK_MAX_RETRIES" envDefault:"3"`
	WebhookBaseDelay  time.Duration `env:"WEBHOOK_BASE_DELAY" envDefault:"1s"`

	// Пасскод для удаления спотов. Это защита от случайного клика, а не безопасность.
	DeletePasscode string `env:"DELETE_PASSCODE" envDefault:"1111"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("ошибка разбора переменных окружения: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate проверяет согласованность настроек
func (c *Config) Validate() error {
	switch c.StorageMode {
	case StorageModePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL environment variable is required for %s storage", StorageModePostgres)
		}
	case StorageModeLocal:
		if c.LocalDBPath == "" || c.LocalSlotKey == "" {
			return fmt.Errorf("LOCAL_DB_PATH and LOCAL_SLOT_KEY are required for %s storage", StorageModeLocal)
		}
	default:
		return fmt.Errorf("unknown STORAGE_MODE %q", c.StorageMode)
	}

	if c.DeletePasscode == "" {
		return fmt.Errorf("DELETE_PASSCODE must not be empty")
	}
	return nil
}

// RedisEnabled сообщает, настроен ли Redis
func (c *Config) RedisEnabled() bool {
	return c.RedisAddr != ""
}
