package config

import (
	"flag"
	"net/url"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/fsdevblog/tinyurl/internal/db"
	"github.com/fsdevblog/tinyurl/internal/expiry"
	"github.com/fsdevblog/tinyurl/internal/models"
	"github.com/pkg/errors"
)

// Варианты кеша разрешения.
const (
	CacheOff   = "off"
	CacheLocal = "local"
	CacheRedis = "redis"
)

const (
	minCodeLength = 4
	maxCodeLength = 64
)

type Config struct {
	// Адрес, на котором запустится сервер
	ServerAddress string `env:"SERVER_ADDRESS"`
	// Базовый адрес результирующего сокращенного URL
	BaseURL string `env:"BASE_URL"`
	// Строка подключения к PostgreSQL
	DatabaseDSN string `env:"DATABASE_DSN"`
	// Путь к базе sqlite, используется если DatabaseDSN пуст
	SQLitePath string `env:"SQLITE_PATH"`
	// Файл бекапа хранилища в памяти
	FileStoragePath string `env:"FILE_STORAGE_PATH"`
	// Кеш разрешения: off, local или redis. Пустое значение - redis если задан RedisAddr, иначе off.
	// local хранит записи в памяти процесса и годится только для одного экземпляра сервиса.
	Cache     string        `env:"CACHE"`
	RedisAddr string        `env:"REDIS_ADDR"`
	CacheTTL  time.Duration `env:"CACHE_TTL"`

	CodeLength  int `env:"CODE_LENGTH"`
	MaxAttempts int `env:"CODE_MAX_ATTEMPTS"`

	// unbounded или bounded
	ExpiryPolicy string        `env:"EXPIRY_POLICY"`
	DefaultTTL   time.Duration `env:"EXPIRY_DEFAULT_TTL"`
	MaxTTL       time.Duration `env:"EXPIRY_MAX_TTL"`

	DedupByURL      bool          `env:"DEDUP_BY_URL"`
	CleanupInterval time.Duration `env:"CLEANUP_INTERVAL"`

	// 0 - синхронный учет переходов
	VisitWorkers   int `env:"VISIT_WORKERS"`
	VisitQueueSize int `env:"VISIT_QUEUE_SIZE"`

	LogLevel string `env:"LOG_LEVEL"`
}

// LoadConfig собирает конфигурацию из флагов args и переменных окружения. ENV имеет приоритет.
func LoadConfig(args []string) (*Config, error) {
	var flagsConfig, envConfig Config

	if err := env.Parse(&envConfig); err != nil {
		return nil, errors.Wrapf(err, "parse ENV config error")
	}

	if err := loadFlags(&flagsConfig, args); err != nil {
		return nil, errors.Wrap(err, "parse flags error")
	}

	conf := mergeConfig(&envConfig, &flagsConfig)
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	return conf, nil
}

// MustLoadConfig вызывает панику если конфигурация некорректна.
func MustLoadConfig() *Config {
	conf, err := LoadConfig(os.Args[1:])
	if err != nil {
		panic(err)
	}
	return conf
}

// loadFlags парсит флаги командной строки.
func loadFlags(flagsConfig *Config, args []string) error {
	fs := flag.NewFlagSet("shortener", flag.ContinueOnError)

	fs.StringVar(&flagsConfig.ServerAddress, "a", "localhost:8080", "Адрес сервера")
	fs.StringVar(&flagsConfig.BaseURL, "b", "",
		"Базовый адрес результирующего сокращенного URL (по умолчанию Scheme://Host запроса)")
	fs.StringVar(&flagsConfig.DatabaseDSN, "d", "", "Строка подключения к PostgreSQL")
	fs.StringVar(&flagsConfig.SQLitePath, "s", "", "Путь к базе sqlite")
	fs.StringVar(&flagsConfig.FileStoragePath, "f", "", "Файл бекапа хранилища в памяти")
	fs.StringVar(&flagsConfig.Cache, "cache", "", "Кеш разрешения: off|local|redis")
	fs.StringVar(&flagsConfig.RedisAddr, "r", "", "Адрес redis для кеша")
	fs.DurationVar(&flagsConfig.CacheTTL, "cache-ttl", 10*time.Minute, "Время жизни записи в кеше")
	fs.IntVar(&flagsConfig.CodeLength, "code-length", models.DefaultShortIdentifierLength,
		"Длина генерируемого идентификатора")
	fs.IntVar(&flagsConfig.MaxAttempts, "code-attempts", 16, "Число попыток подобрать свободный идентификатор")
	fs.StringVar(&flagsConfig.ExpiryPolicy, "expiry", string(expiry.ModeUnbounded), "Политика сроков: unbounded|bounded")
	fs.DurationVar(&flagsConfig.DefaultTTL, "expiry-default", expiry.DefaultTTL, "Срок по умолчанию (bounded)")
	fs.DurationVar(&flagsConfig.MaxTTL, "expiry-max", expiry.MaxTTL, "Максимальный срок (bounded)")
	fs.BoolVar(&flagsConfig.DedupByURL, "dedup", false, "Переиспользовать запись для уже сокращенной ссылки")
	fs.DurationVar(&flagsConfig.CleanupInterval, "cleanup", 24*time.Hour, "Период удаления истекших записей, 0 - выкл")
	fs.IntVar(&flagsConfig.VisitWorkers, "visit-workers", 0, "Число воркеров учета переходов")
	fs.IntVar(&flagsConfig.VisitQueueSize, "visit-queue", 1024, "Размер очереди учета переходов")
	fs.StringVar(&flagsConfig.LogLevel, "l", "", "Уровень логирования")

	return fs.Parse(args) //nolint:wrapcheck
}

// mergeConfig сливает структуры для env и флагов.
func mergeConfig(envConfig, flagsConfig *Config) *Config {
	return &Config{
		ServerAddress:   defaultIfBlank(envConfig.ServerAddress, flagsConfig.ServerAddress),
		BaseURL:         defaultIfBlank(envConfig.BaseURL, flagsConfig.BaseURL),
		DatabaseDSN:     defaultIfBlank(envConfig.DatabaseDSN, flagsConfig.DatabaseDSN),
		SQLitePath:      defaultIfBlank(envConfig.SQLitePath, flagsConfig.SQLitePath),
		FileStoragePath: defaultIfBlank(envConfig.FileStoragePath, flagsConfig.FileStoragePath),
		Cache:           defaultIfBlank(envConfig.Cache, flagsConfig.Cache),
		RedisAddr:       defaultIfBlank(envConfig.RedisAddr, flagsConfig.RedisAddr),
		CacheTTL:        defaultIfBlank(envConfig.CacheTTL, flagsConfig.CacheTTL),
		CodeLength:      defaultIfBlank(envConfig.CodeLength, flagsConfig.CodeLength),
		MaxAttempts:     defaultIfBlank(envConfig.MaxAttempts, flagsConfig.MaxAttempts),
		ExpiryPolicy:    defaultIfBlank(envConfig.ExpiryPolicy, flagsConfig.ExpiryPolicy),
		DefaultTTL:      defaultIfBlank(envConfig.DefaultTTL, flagsConfig.DefaultTTL),
		MaxTTL:          defaultIfBlank(envConfig.MaxTTL, flagsConfig.MaxTTL),
		DedupByURL:      envConfig.DedupByURL || flagsConfig.DedupByURL,
		CleanupInterval: defaultIfBlank(envConfig.CleanupInterval, flagsConfig.CleanupInterval),
		VisitWorkers:    defaultIfBlank(envConfig.VisitWorkers, flagsConfig.VisitWorkers),
		VisitQueueSize:  defaultIfBlank(envConfig.VisitQueueSize, flagsConfig.VisitQueueSize),
		LogLevel:        defaultIfBlank(envConfig.LogLevel, flagsConfig.LogLevel),
	}
}

func defaultIfBlank[T comparable](value T, defaultValue T) T {
	var zero T
	if value == zero {
		return defaultValue
	}
	return value
}

// Validate проверяет конфигурацию и нормализует BaseURL (отсекаются Path и Query).
func (c *Config) Validate() error {
	if c.CodeLength < minCodeLength || c.CodeLength > maxCodeLength {
		return errors.Errorf("code length must be within [%d, %d], got %d", minCodeLength, maxCodeLength, c.CodeLength)
	}
	if c.MaxAttempts <= 0 {
		return errors.Errorf("code attempts must be positive, got %d", c.MaxAttempts)
	}
	if c.VisitWorkers < 0 {
		return errors.Errorf("visit workers must not be negative, got %d", c.VisitWorkers)
	}
	switch c.CacheKind() {
	case CacheOff, CacheLocal:
	case CacheRedis:
		if c.RedisAddr == "" {
			return errors.New("redis cache requires redis address")
		}
	default:
		return errors.Errorf("unknown cache `%s`", c.Cache)
	}
	if _, err := c.Policy(); err != nil {
		return errors.Wrap(err, "invalid expiry policy")
	}
	if c.BaseURL != "" {
		parsedURL, err := url.ParseRequestURI(c.BaseURL)
		if err != nil {
			return errors.Wrap(err, "failed to parse base url")
		}
		c.BaseURL = (&url.URL{Scheme: parsedURL.Scheme, Host: parsedURL.Host}).String()
	}
	return nil
}

// CacheKind выбранный кеш разрешения.
func (c *Config) CacheKind() string {
	switch {
	case c.Cache != "":
		return c.Cache
	case c.RedisAddr != "":
		return CacheRedis
	default:
		return CacheOff
	}
}

// Policy политика сроков жизни ссылок.
func (c *Config) Policy() (expiry.Policy, error) {
	return expiry.NewPolicy(expiry.Mode(c.ExpiryPolicy), c.DefaultTTL, c.MaxTTL) //nolint:wrapcheck
}

// StorageType выбирает хранилище: PostgreSQL, затем sqlite, иначе память.
func (c *Config) StorageType() db.StorageType {
	switch {
	case c.DatabaseDSN != "":
		return db.StorageTypePostgres
	case c.SQLitePath != "":
		return db.StorageTypeSQLite
	default:
		return db.StorageTypeInMemory
	}
}
