package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type AppConfig struct {
	API      *APIConfig      `mapstructure:"api"`
	Gin      *GinConfig      `mapstructure:"gin"`
	Log      *LogConfig      `mapstructure:"log"`
	Database *DatabaseConfig `mapstructure:"database"`
	Postgres *PostgresConfig `mapstructure:"postgres"`
	SQLite   *SQLiteConfig   `mapstructure:"sqlite"`
	Redis    *RedisConfig    `mapstructure:"redis"`
	Cache    *CacheConfig    `mapstructure:"cache"`
	Session  *SessionConfig  `mapstructure:"session"`
	Media    *MediaConfig    `mapstructure:"media"`
}

type APIConfig struct {
	BaseURL            string   `mapstructure:"base_url"`
	Environment        string   `mapstructure:"environment"`
	Port               string   `mapstructure:"port"`
	AllowedCORSDomains []string `mapstructure:"allowed_cors_domains"`
}

// IsProduction reports whether error details must be hidden from clients.
func (c *APIConfig) IsProduction() bool {
	return c.Environment == "production"
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

type DatabaseConfig struct {
	Driver string `mapstructure:"driver"`
}

type PostgresConfig struct {
	URL      string `mapstructure:"url"`
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DB       string `mapstructure:"db"`
	SSLMode  string `mapstructure:"sslmode"`
}

type SQLiteConfig struct {
	Path string `mapstructure:"path"`
}

type RedisConfig struct {
	URL    string `mapstructure:"url"`
	Prefix string `mapstructure:"prefix"`
}

type CacheConfig struct {
	TTL  time.Duration `mapstructure:"ttl"`
	Size int           `mapstructure:"size"`
}

type SessionConfig struct {
	SigningKey    string        `mapstructure:"signing_key"`
	Lifetime      time.Duration `mapstructure:"lifetime"`
	Secure        bool          `mapstructure:"secure"`
	Domain        string        `mapstructure:"domain"`
	PruneInterval time.Duration `mapstructure:"prune_interval"`
}

type MediaConfig struct {
	Driver        string        `mapstructure:"driver"`
	Timeout       time.Duration `mapstructure:"timeout"`
	CloudinaryURL string        `mapstructure:"cloudinary_url"`
	S3            *S3Config     `mapstructure:"s3"`
	Local         *LocalConfig  `mapstructure:"local"`
}

type S3Config struct {
	Endpoint        string `mapstructure:"endpoint"`
	Region          string `mapstructure:"region"`
	AccessKeyID     string `mapstructure:"access_key_id"`
	SecretAccessKey string `mapstructure:"secret_access_key"`
	Bucket          string `mapstructure:"bucket"`
	PublicBaseURL   string `mapstructure:"public_base_url"`
}

type LocalConfig struct {
	Path          string `mapstructure:"path"`
	PublicBaseURL string `mapstructure:"public_base_url"`
}

// Load reads the YAML file at path. Every key can be overridden by an environment
// variable named after it with dots replaced by underscores, e.g. API_PORT.
func Load(path string) (*AppConfig, error) {
	v, err := newViper(path)
	if err != nil {
		return nil, err
	}

	return decode(v)
}

// Watch loads the file at path and calls onChange with the new configuration every
// time the file is written.
func Watch(path string, onChange func(conf *AppConfig)) (*AppConfig, error) {
	v, err := newViper(path)
	if err != nil {
		return nil, err
	}

	conf, err := decode(v)
	if err != nil {
		return nil, err
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}

		updated, err := decode(v)
		if err != nil {
			zap.L().Error("failed to reload config", zap.String("file", e.Name), zap.Error(err))
			return
		}
		zap.L().Info("config reloaded", zap.String("file", e.Name))
		onChange(updated)
	})
	v.WatchConfig()

	return conf, nil
}

func newViper(path string) (*viper.Viper, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigFile(path)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	shortcuts := map[string]string{
		"postgres.url":         "DATABASE_URL",
		"redis.url":            "REDIS_URL",
		"media.cloudinary_url": "CLOUDINARY_URL",
	}
	for key, env := range shortcuts {
		if err := v.BindEnv(key, strings.ToUpper(strings.ReplaceAll(key, ".", "_")), env); err != nil {
			return nil, fmt.Errorf("v.BindEnv -> %w", err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("v.ReadInConfig -> %w", err)
	}

	return v, nil
}

func decode(v *viper.Viper) (*AppConfig, error) {
	conf := &AppConfig{}
	if err := v.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("v.Unmarshal -> %w", err)
	}

	if conf.Session.SigningKey == "" {
		return nil, fmt.Errorf("session.signing_key must be set")
	}

	return conf, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("api.base_url", "localhost:8080")
	v.SetDefault("api.environment", "development")
	v.SetDefault("api.port", "8080")
	v.SetDefault("api.allowed_cors_domains", []string{"http://localhost:3000"})

	v.SetDefault("gin.mode", "debug")
	v.SetDefault("log.level", "info")

	v.SetDefault("database.driver", "postgres")
	v.SetDefault("postgres.url", "")
	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", "5432")
	v.SetDefault("postgres.user", "postgres")
	v.SetDefault("postgres.password", "")
	v.SetDefault("postgres.db", "raffles")
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("sqlite.path", "raffles.db")

	v.SetDefault("redis.url", "")
	v.SetDefault("redis.prefix", "raffles:")
	v.SetDefault("cache.ttl", time.Hour)
	v.SetDefault("cache.size", 1024)

	v.SetDefault("session.signing_key", "")
	v.SetDefault("session.lifetime", 120*time.Minute)
	v.SetDefault("session.secure", false)
	v.SetDefault("session.domain", "")
	v.SetDefault("session.prune_interval", 30*time.Minute)

	v.SetDefault("media.driver", "cloudinary")
	v.SetDefault("media.timeout", 15*time.Second)
	v.SetDefault("media.cloudinary_url", "")
	v.SetDefault("media.s3.endpoint", "")
	v.SetDefault("media.s3.region", "auto")
	v.SetDefault("media.s3.access_key_id", "")
	v.SetDefault("media.s3.secret_access_key", "")
	v.SetDefault("media.s3.bucket", "")
	v.SetDefault("media.s3.public_base_url", "")
	v.SetDefault("media.local.path", "storage/media")
	v.SetDefault("media.local.public_base_url", "http://localhost:8080/media")
}
