package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"rideadmin/internal/utils"

	"github.com/joho/godotenv"
)

type Config struct {
	App          *AppConfig          `yaml:"app"`
	Database     *DatabaseConfig     `yaml:"database"`
	Redis        *RedisConfig        `yaml:"redis"`
	WebSocket    *WebSocketConfig    `yaml:"websocket"`
	Poller       *PollerConfig       `yaml:"poller"`
	FareControls *FareControlsConfig `yaml:"fare_controls"`
	Push         *PushConfig         `yaml:"push"`
	SMS          *SMSConfig          `yaml:"sms"`
	Security     *SecurityConfig     `yaml:"security"`
}

type AppConfig struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Environment string `yaml:"environment"`
	Port        int    `yaml:"port"`
	Host        string `yaml:"host"`
	Debug       bool   `yaml:"debug"`
	LogLevel    string `yaml:"log_level"`
	LogFormat   string `yaml:"log_format"`
	LogOutput   string `yaml:"log_output"`
	Timezone    string `yaml:"timezone"`
}

type PollerConfig struct {
	Interval time.Duration `yaml:"interval"`
	Enabled  bool          `yaml:"enabled"`
}

type FareControlsConfig struct {
	DocumentID string `yaml:"document_id"`
}

type SecurityConfig struct {
	JWTSecret          string   `yaml:"jwt_secret"`
	CORSAllowedOrigins []string `yaml:"cors_allowed_origins"`
	TrustedProxies     []string `yaml:"trusted_proxies"`
}

func Load() (*Config, error) {
	loadDotEnvUp(6)

	config := &Config{
		App:          loadAppConfig(),
		Database:     loadDatabaseConfig(),
		Redis:        loadRedisConfig(),
		WebSocket:    loadWebSocketConfig(),
		Poller:       loadPollerConfig(),
		FareControls: loadFareControlsConfig(),
		Push:         loadPushConfig(),
		SMS:          loadSMSConfig(),
		Security:     loadSecurityConfig(),
	}

	return config, nil
}

func loadAppConfig() *AppConfig {
	return &AppConfig{
		Name:        getEnv("APP_NAME", utils.AppName),
		Version:     getEnv("APP_VERSION", utils.AppVersion),
		Environment: getEnv("APP_ENV", "development"),
		Port:        getEnvAsInt("APP_PORT", 3000),
		Host:        getEnv("APP_HOST", ""),
		Debug:       getEnvAsBool("APP_DEBUG", true),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", "text"),
		LogOutput:   getEnv("LOG_OUTPUT", "stdout"),
		Timezone:    getEnv("APP_TIMEZONE", "Local"),
	}
}

func loadPollerConfig() *PollerConfig {
	return &PollerConfig{
		Interval: getEnvAsDuration("EMERGENCY_POLL_INTERVAL", 10*time.Second),
		Enabled:  getEnvAsBool("EMERGENCY_POLL_ENABLED", true),
	}
}

func loadFareControlsConfig() *FareControlsConfig {
	return &FareControlsConfig{
		DocumentID: getEnv("FARE_CONTROLS_DOC_ID", "AvSIjnKaS5vdhJmFZny2"),
	}
}

func loadSecurityConfig() *SecurityConfig {
	return &SecurityConfig{
		JWTSecret:          getEnv("JWT_SECRET", ""),
		CORSAllowedOrigins: getEnvAsSlice("CORS_ALLOWED_ORIGINS", []string{"*"}),
		TrustedProxies:     getEnvAsSlice("TRUSTED_PROXIES", []string{}),
	}
}

// Location resolves the configured timezone used for clock formatting.
func (a *AppConfig) Location() *time.Location {
	if a.Timezone == "" || a.Timezone == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(a.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// loadDotEnvUp loads the first .env found in the working directory or its parents.
func loadDotEnvUp(maxDepth int) {
	dir, err := os.Getwd()
	if err != nil {
		_ = godotenv.Load()
		return
	}

	for i := 0; i <= maxDepth; i++ {
		p := filepath.Join(dir, ".env")
		if _, err := os.Stat(p); err == nil {
			_ = godotenv.Load(p)
			return
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return
		}
		dir = parent
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
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

func getEnvAsSlice(key string, defaultValue []string) []string {
	if value := os.Getenv(key); value != "" {
		parts := strings.Split(value, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		return out
	}
	return defaultValue
}
