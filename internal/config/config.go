package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Upload  UploadConfig
	Session SessionConfig
	Report  ReportConfig
	Logging LoggingConfig
}

type ServerConfig struct {
	Port            string
	Host            string
	ShutdownTimeout time.Duration
}

type UploadConfig struct {
	MaxSize int64
}

type SessionConfig struct {
	TTL time.Duration
}

type ReportConfig struct {
	Title          string
	TopClients     int
	PDFTopClients  int
	XLSXTopClients int
	// ReferenceDate pins the date ages are measured against. Nil means the
	// wall clock at load time.
	ReferenceDate *time.Time
}

type LoggingConfig struct {
	Level string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using default values")
	}

	return &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT", 30*time.Second),
		},
		Upload: UploadConfig{
			MaxSize: int64(getIntEnv("MAX_UPLOAD_SIZE", 20<<20)),
		},
		Session: SessionConfig{
			TTL: getDurationEnv("SESSION_TTL", 2*time.Hour),
		},
		Report: ReportConfig{
			Title:          getEnv("REPORT_TITLE", "Dashboard Cuentas por Cobrar"),
			TopClients:     getIntEnv("TOP_CLIENTS", 10),
			PDFTopClients:  getIntEnv("PDF_TOP_CLIENTS", 10),
			XLSXTopClients: getIntEnv("XLSX_TOP_CLIENTS", 20),
			ReferenceDate:  getDateEnv("REFERENCE_DATE"),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getIntEnv(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil || value <= 0 {
		log.Printf("Invalid value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Invalid duration for %s: %s, using default: %s", key, valueStr, defaultValue)
		return defaultValue
	}

	return value
}

func getDateEnv(key string) *time.Time {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return nil
	}

	value, err := time.Parse(time.DateOnly, valueStr)
	if err != nil {
		log.Printf("Invalid date for %s: %s, using the current date", key, valueStr)
		return nil
	}

	return &value
}
