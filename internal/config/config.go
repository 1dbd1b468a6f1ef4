package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config contains server configuration parameters.
type Config struct {
	LogLevel int      `env:"LOG_LEVEL" envDefault:"0"`
	HTTP     HTTP     `envPrefix:"HTTP_"`
	GRPC     GRPC     `envPrefix:"GRPC_"`
	Database Database `envPrefix:"DATABASE_"`
	JWT      JWT      `envPrefix:"JWT_"`
	Storage  Storage  `envPrefix:"MINIO_"`
}

// HTTP contains HTTP API server parameters.
type HTTP struct {
	Port               string        `env:"PORT" envDefault:"8080"`
	EnableHTTPS        bool          `env:"ENABLE_HTTPS" envDefault:"false"`
	CertFileName       string        `env:"CERT_FILE_NAME" envDefault:"cert.pem"`
	PrivateKeyFileName string        `env:"PRIVATE_KEY_FILE_NAME" envDefault:"key.pem"`
	ReadTimeout        time.Duration `env:"READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout       time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	RequestTimeout     time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`
	LoginRateLimit     string        `env:"LOGIN_RATE_LIMIT" envDefault:"10-M"`
	SecureHeadersDev   bool          `env:"SECURE_HEADERS_DEV" envDefault:"true"`
}

// GRPC contains parameters of the gRPC health endpoint.
type GRPC struct {
	Enabled        bool          `env:"ENABLED" envDefault:"false"`
	Port           string        `env:"PORT" envDefault:"50051"`
	HealthInterval time.Duration `env:"HEALTH_INTERVAL" envDefault:"15s"`
}

// Database contains the location of the directory document.
type Database struct {
	Path string `env:"PATH" envDefault:"Data/database.json"`
}

// JWT contains token signing parameters.
type JWT struct {
	Secret            string `env:"SECRET" envDefault:"devsecret"`
	Issuer            string `env:"ISSUER" envDefault:"EmployeesAPI"`
	Audience          string `env:"AUDIENCE" envDefault:"EmployeesAPIUsers"`
	ExpirationMinutes int    `env:"EXPIRATION_MINUTES" envDefault:"5"`
}

// Expiration returns token lifetime as a duration.
func (j JWT) Expiration() time.Duration {
	return time.Duration(j.ExpirationMinutes) * time.Minute
}

// Storage contains snapshot mirror parameters. Mirroring is disabled when Endpoint is empty.
type Storage struct {
	Endpoint  string `env:"ENDPOINT"`
	AccessKey string `env:"ACCESS_KEY"`
	SecretKey string `env:"SECRET_KEY"`
	Bucket    string `env:"BUCKET_NAME" envDefault:"employees-snapshots"`
	UseSSL    bool   `env:"USE_SSL" envDefault:"false"`
	Prefix    string `env:"PREFIX" envDefault:"directory/"`
}

// Enabled reports whether snapshot mirroring is configured.
func (s Storage) Enabled() bool {
	return s.Endpoint != ""
}

// NewConfig loads configuration from environment variables, reading .env first when present.
func NewConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env file: %w", err)
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.JWT.ExpirationMinutes <= 0 {
		return nil, fmt.Errorf("invalid JWT_EXPIRATION_MINUTES: %d", cfg.JWT.ExpirationMinutes)
	}

	return &cfg, nil
}
