package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// セッション記録の保存先
const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
	StorageRedis    = "redis"
)

// Configはアプリ全体の設定
type Config struct {
	Port string // サーバーポート（8080）

	StorageDriver string // memory / postgres / redis

	DatabaseURL      string // あれば最優先
	PostgresUser     string // DBユーザー
	PostgresPassword string // DBパスワード
	PostgresDB       string // DB名
	PostgresHost     string // DBホスト（localhost）
	PostgresPort     int    // DBポート（5432）
	PostgresSSLMode  string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	SessionKey           string        // セッション記録のキー（user）
	SessionSigningSecret string        // 空ならJSONのまま保存
	LoginDelay           time.Duration // 疑似的な通信待ち（800ms）
	BcryptCost           int

	LogLevel  string // debug/info/warn/error
	LogFormat string // text/json
}

// Loadは環境変数（未設定はデフォルト）
func Load() (Config, error) {
	var err error
	cfg := Config{
		Port:                 getenv("PORT", "8080"),
		StorageDriver:        strings.ToLower(getenv("STORAGE_DRIVER", StorageMemory)),
		DatabaseURL:          os.Getenv("DATABASE_URL"),
		PostgresUser:         getenv("POSTGRES_USER", "postgres"),
		PostgresPassword:     getenv("POSTGRES_PASSWORD", "postgres"),
		PostgresDB:           getenv("POSTGRES_DB", "storefront"),
		PostgresHost:         getenv("POSTGRES_HOST", "localhost"),
		PostgresSSLMode:      getenv("POSTGRES_SSLMODE", "disable"),
		RedisAddr:            getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:        os.Getenv("REDIS_PASSWORD"),
		SessionKey:           getenv("SESSION_KEY", "user"),
		SessionSigningSecret: os.Getenv("SESSION_SIGNING_SECRET"),
		LogLevel:             strings.ToLower(getenv("LOG_LEVEL", "info")),
		LogFormat:            strings.ToLower(getenv("LOG_FORMAT", "text")),
	}

	if cfg.PostgresPort, err = atoiDefault("POSTGRES_PORT", 5432); err != nil {
		return Config{}, err
	}
	if cfg.RedisDB, err = atoiDefault("REDIS_DB", 0); err != nil {
		return Config{}, err
	}
	if cfg.BcryptCost, err = atoiDefault("BCRYPT_COST", 10); err != nil {
		return Config{}, err
	}
	if cfg.LoginDelay, err = durationDefault("LOGIN_DELAY", 800*time.Millisecond); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// 値のチェック
func (c Config) Validate() error {
	switch c.StorageDriver {
	case StorageMemory, StoragePostgres, StorageRedis:
	default:
		return fmt.Errorf("STORAGE_DRIVER must be one of memory, postgres, redis: %q", c.StorageDriver)
	}
	if c.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if c.SessionKey == "" {
		return fmt.Errorf("SESSION_KEY is required")
	}
	if c.LoginDelay < 0 {
		return fmt.Errorf("LOGIN_DELAY must be >= 0")
	}
	if c.BcryptCost < 4 || c.BcryptCost > 31 {
		return fmt.Errorf("BCRYPT_COST must be between 4 and 31")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("LOG_LEVEL must be one of debug, info, warn, error: %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("LOG_FORMAT must be text or json: %q", c.LogFormat)
	}
	return nil
}

// ":8080" 形式
func (c Config) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

// postgresのDSN
func (c Config) PostgresDSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.PostgresHost, c.PostgresPort, c.PostgresUser, c.PostgresPassword, c.PostgresDB, c.PostgresSSLMode,
	)
}

func getenv(key string, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func atoiDefault(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be number: %w", key, err)
	}
	return i, nil
}

func durationDefault(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s must be duration: %w", key, err)
	}
	return d, nil
}
