package config

import (
	"os"
)

type ServerConfig struct {
	Port     string
	LogLevel string
}

type DatabaseConfig struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     string
}

func LoadServerConfig() ServerConfig {
	return ServerConfig{
		Port:     getEnvOrDefault("PORT", "3001"),
		LogLevel: getEnvOrDefault("LOG_LEVEL", "info"),
	}
}

func LoadDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		Host:     getEnvOrDefault("POSTGRES_HOST", "localhost"),
		User:     getEnvOrDefault("POSTGRES_USER", "postgres"),
		Password: getEnvOrDefault("POSTGRES_PASSWORD", "postgres"),
		Name:     getEnvOrDefault("POSTGRES_DB", "pedidos"),
		Port:     getEnvOrDefault("DB_PORT", "5432"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
