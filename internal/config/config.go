package config

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Database  DatabaseConfig  `mapstructure:"database"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	CORS      CORSConfig      `mapstructure:"cors"`
}

type AppConfig struct {
	Port        string `mapstructure:"port"`
	Environment string `mapstructure:"environment"`
}

type DatabaseConfig struct {
	DSN          string        `mapstructure:"dsn"`
	Optional     bool          `mapstructure:"optional"`
	MaxOpenConns int           `mapstructure:"max_open_conns"`
	MaxIdleConns int           `mapstructure:"max_idle_conns"`
	QueryTimeout time.Duration `mapstructure:"query_timeout"`
}

type AuthConfig struct {
	JWTSecret string `mapstructure:"jwt_secret"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// RateLimitConfig allows Limit requests per TTL window per client IP.
type RateLimitConfig struct {
	TTL   time.Duration `mapstructure:"ttl"`
	Limit int           `mapstructure:"limit"`
}

type CORSConfig struct {
	Origins []string `mapstructure:"origins"`
}

const devJWTSecret = "dev-secret-only"

// Load reads .env (if present), an optional config.yaml and the environment,
// in increasing order of precedence.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("config: .env file not found, using system environment variables")
	}
	return load(viper.New())
}

func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./configs")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Names used by earlier deployments.
	_ = v.BindEnv("database.dsn", "DATABASE_DSN", "MYSQL_DSN")
	_ = v.BindEnv("auth.jwt_secret", "AUTH_JWT_SECRET", "JWT_SECRET")
	_ = v.BindEnv("app.port", "APP_PORT", "PORT")
	_ = v.BindEnv("logging.level", "LOGGING_LEVEL", "LOG_LEVEL")
	_ = v.BindEnv("rate_limit.ttl", "RATE_LIMIT_TTL")
	_ = v.BindEnv("rate_limit.limit", "RATE_LIMIT_LIMIT")
	_ = v.BindEnv("cors.origins", "CORS_ORIGINS")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	normalize(&cfg)

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("app.port", "8080")
	v.SetDefault("app.environment", "development")
	v.SetDefault("database.dsn", "")
	v.SetDefault("database.optional", false)
	v.SetDefault("database.max_open_conns", 20)
	v.SetDefault("database.max_idle_conns", 5)
	v.SetDefault("database.query_timeout", 3*time.Second)
	v.SetDefault("auth.jwt_secret", "")
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")
	v.SetDefault("rate_limit.ttl", 60*time.Second)
	v.SetDefault("rate_limit.limit", 120)
	v.SetDefault("cors.origins", []string{})
}

func normalize(cfg *Config) {
	if cfg.Auth.JWTSecret == "" {
		cfg.Auth.JWTSecret = devJWTSecret
	}
	origins := make([]string, 0, len(cfg.CORS.Origins))
	for _, o := range cfg.CORS.Origins {
		for _, part := range strings.Split(o, ",") {
			if part = strings.TrimSpace(part); part != "" {
				origins = append(origins, part)
			}
		}
	}
	cfg.CORS.Origins = origins
	cfg.Logging.Level = strings.ToLower(strings.TrimSpace(cfg.Logging.Level))
}

func validate(cfg *Config) error {
	if cfg.Database.DSN == "" && !cfg.Database.Optional {
		return errors.New("database.dsn (MYSQL_DSN) is required")
	}
	if cfg.Database.QueryTimeout < 0 {
		return errors.New("database.query_timeout must not be negative")
	}
	if cfg.RateLimit.Limit < 0 || cfg.RateLimit.TTL < 0 {
		return errors.New("rate_limit values must not be negative")
	}
	if cfg.App.Port == "" {
		return errors.New("app.port is required")
	}
	return nil
}
