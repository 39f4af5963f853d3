package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Vision   VisionConfig
	NLP      NLPConfig
	Queue    QueueConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// VisionConfig holds image-annotation vendor configuration
type VisionConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// NLPConfig holds entity-extraction vendor configuration
type NLPConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
	// Enabled controls whether the remote NLP service joins the fan-out;
	// the local pattern detector always runs.
	Enabled bool
}

// QueueConfig holds scan queue configuration
type QueueConfig struct {
	Workers int
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Vision: VisionConfig{
			BaseURL: getEnv("VISION_BASE_URL", ""),
			APIKey:  getEnv("VISION_API_KEY", ""),
			Timeout: getEnvAsDuration("VISION_TIMEOUT", 45*time.Second),
		},
		NLP: NLPConfig{
			BaseURL: getEnv("NLP_BASE_URL", ""),
			APIKey:  getEnv("NLP_API_KEY", ""),
			Timeout: getEnvAsDuration("NLP_TIMEOUT", 30*time.Second),
			Enabled: getEnvAsBool("NLP_ENABLED", true),
		},
		Queue: QueueConfig{
			Workers: getEnvAsInt("SCAN_WORKERS", 4),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// ValidateConfig validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Vision.BaseURL == "" {
		return NewAppError("CONFIG_ERROR", "VISION_BASE_URL is required", ErrInvalidInput)
	}
	if c.NLP.Enabled && c.NLP.BaseURL == "" {
		return NewAppError("CONFIG_ERROR", "NLP_BASE_URL is required when NLP_ENABLED", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	return nil
}
