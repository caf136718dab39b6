package configs

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Addr           string        `mapstructure:"addr"`
	GinMode        string        `mapstructure:"gin_mode"`
	FrontendOrigin string        `mapstructure:"frontend_origin"`
	LogLevel       string        `mapstructure:"log_level"`
	JWTKey         string        `mapstructure:"jwt_key"`
	SessionMaxAge  time.Duration `mapstructure:"session_max_age"`
	Redis          RedisConfig   `mapstructure:"redis"`
	RateLimit      RateConfig    `mapstructure:"rate_limit"`
}

type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	GameTTL  time.Duration `mapstructure:"game_ttl"`
}

type RateConfig struct {
	PerSecond float64 `mapstructure:"per_second"`
	Burst     int     `mapstructure:"burst"`
}

// Load reads the yaml config at path, with RUMMIKUB_* environment variables
// taking precedence. A missing file is fine, defaults then apply.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.SetDefault("addr", ":8080")
	v.SetDefault("gin_mode", "debug")
	v.SetDefault("frontend_origin", "localhost:3000")
	v.SetDefault("log_level", "debug")
	v.SetDefault("jwt_key", "")
	v.SetDefault("session_max_age", 24*time.Hour)
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.game_ttl", time.Duration(0))
	v.SetDefault("rate_limit.per_second", 10.0)
	v.SetDefault("rate_limit.burst", 20)

	v.SetEnvPrefix("RUMMIKUB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !os.IsNotExist(err) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
