package config

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`
	JWTSecret string `env:"JWT_SECRET"`
	JWTHours  int    `env:"JWT_EXPIRATION_HOURS, default=24"`

	Mongo  MongoConfig
	Redis  RedisConfig
	Upload UploadConfig

	// Optional seed admin created at startup when both are set.
	AdminEmail    string `env:"ADMIN_EMAIL"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=tradeco_db"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type UploadConfig struct {
	Dir          string `env:"UPLOAD_DIR,    default=uploads/products"`
	MaxFileBytes int64  `env:"MAX_FILE_SIZE, default=5242880"`
}

// TokenTTL converts the configured expiration hours into a duration.
func (c *Config) TokenTTL() time.Duration {
	return time.Duration(c.JWTHours) * time.Hour
}

// Load reads configuration from environment variables using go-envconfig.
func Load(logger zerolog.Logger) *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		logger.Error().Err(err).Msg("failed to load configuration")
		panic(err)
	}
	return &cfg
}
