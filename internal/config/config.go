package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	ServerPort     string
	DatabaseType   string // sqlite (default), postgres, mysql
	DatabasePath   string // sqlite file path
	DatabaseURL    string // postgres/mysql connection string
	MigrationsPath string
	AudioPath      string // directory for generated speech clips
	SpeechLang     string // language code for TTS

	SessionSecret   string
	SessionDuration time.Duration
	LessonIdleLimit time.Duration // abandoned lesson/diagnostic sessions are swept after this

	// ParentPIN guards destructive actions (progress reset) and report
	// sending. Empty disables the gate.
	ParentPIN string

	// Progress report email (disabled when SESFromEmail is empty)
	AWSRegion    string
	SESFromEmail string
	SESFromName  string
	ParentEmail  string

	Debug bool
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is honoured when present.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: failed to load .env file: %v", err)
	}

	return &Config{
		ServerPort:     getEnv("PORT", "8080"),
		DatabaseType:   getEnv("DB_TYPE", "sqlite"),
		DatabasePath:   getEnv("DB_PATH", "./learnread.db"),
		DatabaseURL:    getEnv("DB_URL", ""),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "./migrations"),
		AudioPath:      getEnv("AUDIO_PATH", "./static/audio"),
		SpeechLang:     getEnv("SPEECH_LANG", "ru"),

		SessionSecret:   getEnv("SESSION_SECRET", "learnread-dev-secret"),
		SessionDuration: getDurationEnv("SESSION_DURATION", 30*24*time.Hour),
		LessonIdleLimit: getDurationEnv("LESSON_IDLE_LIMIT", 2*time.Hour),

		ParentPIN: getEnv("PARENT_PIN", ""),

		AWSRegion:    getEnv("AWS_REGION", "eu-west-1"),
		SESFromEmail: getEnv("SES_FROM_EMAIL", ""),
		SESFromName:  getEnv("SES_FROM_NAME", "LearnRead"),
		ParentEmail:  getEnv("PARENT_EMAIL", ""),

		Debug: getBoolEnv("DEBUG", false),
	}
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getDurationEnv reads a duration environment variable or returns a default value
func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Warning: invalid %s value %q, using default", key, value)
		return defaultValue
	}
	return d
}

// getBoolEnv reads a boolean environment variable or returns a default value
func getBoolEnv(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue
	}
	return b
}
