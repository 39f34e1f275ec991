// File: internal/config/config.go
package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

type Config struct {
	DatabaseURL   string        `env:"DATABASE_URL,required"`
	RedisAddr     string        `env:"REDIS_ADDR,required"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB,default=0"`
	JWTSecret     string        `env:"JWT_SECRET,required"`
	AccessTTL     time.Duration `env:"ACCESS_TOKEN_TTL,default=15m"`
	RefreshTTL    time.Duration `env:"REFRESH_TOKEN_TTL,default=720h"`
	WorkerCount   int           `env:"WORKER_COUNT,default=1"`
	EventQueue    int           `env:"EVENT_QUEUE_SIZE,default=256"`
	EventsChannel string        `env:"EVENTS_CHANNEL,default=orders.events"`
	HTTPAddr      string        `env:"HTTP_ADDR,default=:8080"`
	LogLevel      string        `env:"LOG_LEVEL,default=info"`
}

var (
	dotenvLoad = godotenv.Load
	decodeEnv  = envdecode.StrictDecode
)

// Load 先讀取 .env (不存在時略過)，再從環境變數解析設定
func Load(files ...string) (*Config, error) {
	if err := dotenvLoad(files...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	var cfg Config
	if err := decodeEnv(&cfg); err != nil {
		return nil, err
	}
	if cfg.AccessTTL <= 0 || cfg.RefreshTTL <= 0 {
		return nil, errors.New("token TTLs must be positive")
	}
	return &cfg, nil
}
