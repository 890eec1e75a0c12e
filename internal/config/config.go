package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Server configuration
	Port            string        `json:"port"`
	Env             string        `json:"env"`
	ShutdownTimeout time.Duration `json:"shutdown_timeout"`
	HTTPTimeout     time.Duration `json:"http_timeout"`

	// Selection engine
	AIOnlyMode     bool    `json:"ai_only_mode"`
	MinAIKeywords  int     `json:"min_ai_keywords"`
	AIKeywordBoost float64 `json:"ai_keyword_boost"`
	MinAIScore     float64 `json:"min_ai_score"`
	MinAIDensity   float64 `json:"min_ai_density"`
	MaxArticles    int     `json:"max_articles"`
	MaxStories     int     `json:"max_stories"`

	// Collection politeness delay between sources
	SourceDelayMin time.Duration `json:"source_delay_min"`
	SourceDelayMax time.Duration `json:"source_delay_max"`

	// Ledger storage
	OutputDir        string `json:"output_dir"`
	CoverageTTLDays  int    `json:"coverage_ttl_days"`
	MediaTTLDays     int    `json:"media_ttl_days"`

	// Redis (optional classification skip cache)
	RedisURL    string        `json:"redis_url"`
	RedisPrefix string        `json:"redis_prefix"`
	CacheTTL    time.Duration `json:"cache_ttl"`

	// S3/R2 story publishing (optional)
	S3Bucket       string `json:"s3_bucket"`
	S3Region       string `json:"s3_region"`
	S3Prefix       string `json:"s3_prefix"`
	S3UsePathStyle bool   `json:"s3_use_path_style"`

	// Logging
	LogLevel string `json:"log_level"`
	LogFile  string `json:"log_file"`
}

// Load loads configuration from environment variables
func Load() *Config {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	cfg := &Config{
		// Server configuration
		Port:            getEnv("PORT", "8080"),
		Env:             getEnv("APP_ENV", "development"),
		ShutdownTimeout: getEnvAsDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		HTTPTimeout:     getEnvAsDuration("HTTP_TIMEOUT", 30*time.Second),

		// Selection engine
		AIOnlyMode:     getEnvAsBool("AI_ONLY_MODE", true),
		MinAIKeywords:  getEnvAsInt("MIN_AI_KEYWORDS", 1),
		AIKeywordBoost: getEnvAsFloat("AI_KEYWORD_BOOST", 2.0),
		MinAIScore:     getEnvAsFloat("MIN_AI_SCORE", 5.0),
		MinAIDensity:   getEnvAsFloat("MIN_AI_DENSITY", 0.3),
		MaxArticles:    getEnvAsInt("MAX_ARTICLES", 10),
		MaxStories:     getEnvAsInt("MAX_VIDEOS_PER_DAY", 1),

		SourceDelayMin: getEnvAsDuration("SOURCE_DELAY_MIN", 500*time.Millisecond),
		SourceDelayMax: getEnvAsDuration("SOURCE_DELAY_MAX", 2*time.Second),

		// Ledger storage
		OutputDir:       getEnv("OUTPUT_DIR", "artifacts"),
		CoverageTTLDays: getEnvAsInt("COVERAGE_TTL_DAYS", 30),
		MediaTTLDays:    getEnvAsInt("MEDIA_TTL_DAYS", 3),

		// Redis configuration
		RedisURL:    getEnv("REDIS_URL", ""),
		RedisPrefix: getEnv("REDIS_PREFIX", "storywire:"),
		CacheTTL:    getEnvAsDuration("CACHE_TTL", 72*time.Hour),

		// S3/R2 story publishing
		S3Bucket:       getEnv("S3_BUCKET", ""),
		S3Region:       getEnv("S3_REGION", ""),
		S3Prefix:       getEnv("S3_PREFIX", ""),
		S3UsePathStyle: getEnvAsBool("S3_USE_PATH_STYLE", false),

		// Logging
		LogLevel: getEnv("LOG_LEVEL", "info"),
		LogFile:  getEnv("LOG_FILE", ""),
	}

	return cfg
}

// Helper functions for environment variable handling
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(name string, defaultVal int) int {
	valueStr := getEnv(name, "")
	if valueStr == "" {
		return defaultVal
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid %s value: %v, using default: %d", name, err, defaultVal)
		return defaultVal
	}
	return value
}

func getEnvAsFloat(name string, defaultVal float64) float64 {
	valueStr := getEnv(name, "")
	if valueStr == "" {
		return defaultVal
	}
	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Invalid %s value: %v, using default: %g", name, err, defaultVal)
		return defaultVal
	}
	return value
}

func getEnvAsBool(name string, defaultVal bool) bool {
	valueStr := getEnv(name, "")
	if valueStr == "" {
		return defaultVal
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Invalid %s value: %v, using default: %t", name, err, defaultVal)
		return defaultVal
	}
	return value
}

func getEnvAsDuration(name string, defaultVal time.Duration) time.Duration {
	valueStr := getEnv(name, "")
	if valueStr == "" {
		return defaultVal
	}
	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Invalid %s value: %v, using default: %v", name, err, defaultVal)
		return defaultVal
	}
	return value
}
