package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_DefaultValues(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, 0, cfg.LogLevel)
	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.False(t, cfg.HTTP.EnableHTTPS)
	assert.Equal(t, "cert.pem", cfg.HTTP.CertFileName)
	assert.Equal(t, "key.pem", cfg.HTTP.PrivateKeyFileName)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ReadTimeout)
	assert.Equal(t, 30*time.Second, cfg.HTTP.RequestTimeout)
	assert.Empty(t, cfg.HTTP.CORSAllowedOrigins)
	assert.Equal(t, "10-M", cfg.HTTP.LoginRateLimit)
	assert.False(t, cfg.GRPC.Enabled)
	assert.Equal(t, "50051", cfg.GRPC.Port)
	assert.Equal(t, 15*time.Second, cfg.GRPC.HealthInterval)
	assert.Equal(t, "Data/database.json", cfg.Database.Path)
	assert.Equal(t, "devsecret", cfg.JWT.Secret)
	assert.Equal(t, "EmployeesAPI", cfg.JWT.Issuer)
	assert.Equal(t, "EmployeesAPIUsers", cfg.JWT.Audience)
	assert.Equal(t, 5*time.Minute, cfg.JWT.Expiration())
	assert.False(t, cfg.Storage.Enabled())
	assert.Equal(t, "employees-snapshots", cfg.Storage.Bucket)
	assert.Equal(t, "directory/", cfg.Storage.Prefix)
}

func TestNewConfig_EnvironmentOverrides(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		expected func(*Config)
	}{
		{
			name: "log level override",
			envVars: map[string]string{
				"LOG_LEVEL": "-4",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, -4, cfg.LogLevel)
			},
		},
		{
			name: "http config override",
			envVars: map[string]string{
				"HTTP_PORT":                 "9090",
				"HTTP_ENABLE_HTTPS":         "true",
				"HTTP_REQUEST_TIMEOUT":      "5s",
				"HTTP_CORS_ALLOWED_ORIGINS": "http://a.test,http://b.test",
				"HTTP_LOGIN_RATE_LIMIT":     "off",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "9090", cfg.HTTP.Port)
				assert.True(t, cfg.HTTP.EnableHTTPS)
				assert.Equal(t, 5*time.Second, cfg.HTTP.RequestTimeout)
				assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.HTTP.CORSAllowedOrigins)
				assert.Equal(t, "off", cfg.HTTP.LoginRateLimit)
			},
		},
		{
			name: "database path override",
			envVars: map[string]string{
				"DATABASE_PATH": "/var/lib/employees/db.json",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "/var/lib/employees/db.json", cfg.Database.Path)
			},
		},
		{
			name: "jwt config override",
			envVars: map[string]string{
				"JWT_SECRET":             "customsecret",
				"JWT_ISSUER":             "issuer",
				"JWT_AUDIENCE":           "audience",
				"JWT_EXPIRATION_MINUTES": "60",
			},
			expected: func(cfg *Config) {
				assert.Equal(t, "customsecret", cfg.JWT.Secret)
				assert.Equal(t, "issuer", cfg.JWT.Issuer)
				assert.Equal(t, "audience", cfg.JWT.Audience)
				assert.Equal(t, time.Hour, cfg.JWT.Expiration())
			},
		},
		{
			name: "storage config override",
			envVars: map[string]string{
				"MINIO_ENDPOINT":    "minio.example.com:9000",
				"MINIO_ACCESS_KEY":  "access123",
				"MINIO_SECRET_KEY":  "secret123",
				"MINIO_BUCKET_NAME": "custom-bucket",
				"MINIO_USE_SSL":     "true",
			},
			expected: func(cfg *Config) {
				assert.True(t, cfg.Storage.Enabled())
				assert.Equal(t, "minio.example.com:9000", cfg.Storage.Endpoint)
				assert.Equal(t, "access123", cfg.Storage.AccessKey)
				assert.Equal(t, "secret123", cfg.Storage.SecretKey)
				assert.Equal(t, "custom-bucket", cfg.Storage.Bucket)
				assert.True(t, cfg.Storage.UseSSL)
			},
		},
		{
			name: "grpc health override",
			envVars: map[string]string{
				"GRPC_ENABLED":         "true",
				"GRPC_PORT":            "6000",
				"GRPC_HEALTH_INTERVAL": "1m",
			},
			expected: func(cfg *Config) {
				assert.True(t, cfg.GRPC.Enabled)
				assert.Equal(t, "6000", cfg.GRPC.Port)
				assert.Equal(t, time.Minute, cfg.GRPC.HealthInterval)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.envVars {
				t.Setenv(key, value)
			}

			cfg, err := NewConfig()
			require.NoError(t, err)

			tt.expected(cfg)
		})
	}
}

func TestNewConfig_InvalidExpiration(t *testing.T) {
	t.Setenv("JWT_EXPIRATION_MINUTES", "0")

	_, err := NewConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_EXPIRATION_MINUTES")
}
