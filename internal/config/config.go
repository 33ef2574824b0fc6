package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/alertlink/internal/logger"
)

// RedisConfig — Redis connection for the session store.
type RedisConfig struct {
	URL string `yaml:"url"`
}

// Config holds the application settings.
// Priority: environment variables > YAML file > defaults.
type Config struct {
	// Server
	ServerAddr   string        `yaml:"server_addr"`
	ReadTimeout  time.Duration `yaml:"-"`
	WriteTimeout time.Duration `yaml:"-"`
	IdleTimeout  time.Duration `yaml:"-"`

	// CORS
	CORSAllowedOrigins string `yaml:"cors_allowed_origins"`

	// Logging
	LogLevel string `yaml:"log_level"`

	// Auth: the demo one-time-password literal accepted by login.
	LoginOTP string `yaml:"login_otp"`

	// Locale
	DefaultLocale string `yaml:"default_locale"`

	// Message delivery simulation: delays for sent→delivered and
	// delivered→read.
	DeliveredDelay time.Duration `yaml:"-"`
	ReadDelay      time.Duration `yaml:"-"`

	// Voice recordings
	VoiceMaxBytes     int64         `yaml:"-"`
	VoiceRecordingTTL time.Duration `yaml:"-"`

	// Redis (session store; unused in -dev mode)
	Redis RedisConfig `yaml:"-"`
}

// yamlConfig is the intermediate structure for parsing the app YAML.
type yamlConfig struct {
	ServerAddr         string `yaml:"server_addr"`
	ReadTimeout        int    `yaml:"read_timeout"`
	WriteTimeout       int    `yaml:"write_timeout"`
	IdleTimeout        int    `yaml:"idle_timeout"`
	CORSAllowedOrigins string `yaml:"cors_allowed_origins"`
	LogLevel           string `yaml:"log_level"`
	LoginOTP           string `yaml:"login_otp"`
	DefaultLocale      string `yaml:"default_locale"`
	DeliveredDelayMS   int    `yaml:"delivered_delay_ms"`
	ReadDelayMS        int    `yaml:"read_delay_ms"`
	VoiceMaxMB         int    `yaml:"voice_max_mb"`
	VoiceRecordingTTL  int    `yaml:"voice_recording_ttl_seconds"`
}

// Load loads the configuration. Variables from .env are applied first
// (outside production), then the YAML file, then the environment (environment
// wins).
func Load() *Config {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	yc := yamlConfig{
		ServerAddr:         ":8080",
		ReadTimeout:        15,
		WriteTimeout:       15,
		IdleTimeout:        60,
		CORSAllowedOrigins: "*",
		LogLevel:           "info",
		LoginOTP:           "123456",
		DefaultLocale:      "en",
		DeliveredDelayMS:   1000,
		ReadDelayMS:        3000,
		VoiceMaxMB:         25,
		VoiceRecordingTTL:  300,
	}

	paths := []string{os.Getenv("CONFIG_PATH"), "config/api.yaml"}
	for _, path := range paths {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(data, &yc); err != nil {
			logger.Errorf("config: parse %s: %v (using defaults)", path, err)
		} else {
			logger.Infof("config: loaded %s", path)
		}
		break
	}

	cfg := &Config{
		ServerAddr:         envStr("SERVER_ADDR", yc.ServerAddr),
		ReadTimeout:        time.Duration(envInt("READ_TIMEOUT", yc.ReadTimeout)) * time.Second,
		WriteTimeout:       time.Duration(envInt("WRITE_TIMEOUT", yc.WriteTimeout)) * time.Second,
		IdleTimeout:        time.Duration(envInt("IDLE_TIMEOUT", yc.IdleTimeout)) * time.Second,
		CORSAllowedOrigins: envStr("CORS_ALLOWED_ORIGINS", yc.CORSAllowedOrigins),
		LogLevel:           envStr("LOG_LEVEL", yc.LogLevel),
		LoginOTP:           envStr("LOGIN_OTP", yc.LoginOTP),
		DefaultLocale:      envStr("DEFAULT_LOCALE", yc.DefaultLocale),
		DeliveredDelay:     time.Duration(envInt("DELIVERED_DELAY_MS", yc.DeliveredDelayMS)) * time.Millisecond,
		ReadDelay:          time.Duration(envInt("READ_DELAY_MS", yc.ReadDelayMS)) * time.Millisecond,
		VoiceMaxBytes:      int64(envInt("VOICE_MAX_MB", yc.VoiceMaxMB)) << 20,
		VoiceRecordingTTL:  time.Duration(envInt("VOICE_RECORDING_TTL_SECONDS", yc.VoiceRecordingTTL)) * time.Second,
		Redis:              RedisConfig{URL: envStr("REDIS_URL", "redis://localhost:6379")},
	}

	if os.Getenv("APP_ENV") == "production" {
		if cfg.CORSAllowedOrigins == "" || cfg.CORSAllowedOrigins == "*" {
			logger.Errorf("config: set CORS_ALLOWED_ORIGINS in production (explicit origin list, not *)")
		}
		if cfg.LoginOTP == "123456" {
			logger.Errorf("config: the demo LOGIN_OTP is active in production; this is not a real credential flow")
		}
	}

	return cfg
}

// envStr returns the environment value for key or fallback.
func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// envInt returns the numeric environment value for key or fallback.
func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
