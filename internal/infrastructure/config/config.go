package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// FrontendBaseURL is where the gateway finish callback redirects
	// browsers: <base>/payment/finish for single-device outcomes and
	// <base>/payment/close for the neutral QR-mode redirect.
	FrontendBaseURL string `env:"FRONTEND_BASE_URL, default=http://localhost:3000"`

	// SessionStore selects the scan-to-pay state backing: "memory" for a
	// single instance, "redis" when running more than one.
	SessionStore string `env:"SESSION_STORE, default=memory"`

	Mongo    MongoConfig
	Redis    RedisConfig
	Midtrans MidtransConfig
	Limits   LimitsConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=pos_payments"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type MidtransConfig struct {
	ServerKey  string `env:"MIDTRANS_SERVER_KEY"`
	Production bool   `env:"MIDTRANS_PRODUCTION, default=false"`
}

// LimitsConfig holds the two throttle tiers, expressed as requests per
// 60-second window.
type LimitsConfig struct {
	Global    int `env:"RATE_LIMIT_GLOBAL,    default=120"`
	Sensitive int `env:"RATE_LIMIT_SENSITIVE, default=10"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
