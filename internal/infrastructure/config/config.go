package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config carries the settings shared by the platform binaries. Each service
// reads the sections it needs; unused sections keep their defaults.
type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecretFile is preferred over JWTSecret when the file exists; both
	// hold the base64-encoded HMAC key shared by the gateway and the auth
	// service.
	JWTSecretFile string `env:"JWT_SECRET_FILE, default=/run/secrets/jwt_secret"`
	JWTSecret     string `env:"JWT_SECRET"`

	BcryptCost int `env:"BCRYPT_COST, default=10"`

	Mongo   MongoConfig
	Redis   RedisConfig
	Gateway GatewayConfig
	Seed    SeedConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=blogsite"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// GatewayConfig names the backends the edge proxies to.
type GatewayConfig struct {
	AuthServiceURL string `env:"AUTH_SERVICE_URL, default=http://localhost:8081"`
	BlogServiceURL string `env:"BLOG_SERVICE_URL, default=http://localhost:8082"`
}

// SeedConfig holds the bootstrap accounts created on first start. The
// defaults match the demo dataset and should be overridden in production.
type SeedConfig struct {
	AdminUsername string `env:"SEED_ADMIN_USERNAME, default=admin"`
	AdminEmail    string `env:"SEED_ADMIN_EMAIL,    default=admin@blogsite.com"`
	AdminPassword string `env:"SEED_ADMIN_PASSWORD, default=Admin1234"`
	UserUsername  string `env:"SEED_USER_USERNAME,  default=user"`
	UserEmail     string `env:"SEED_USER_EMAIL,     default=user@blogsite.com"`
	UserPassword  string `env:"SEED_USER_PASSWORD,  default=User1234"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return &cfg, nil
}
