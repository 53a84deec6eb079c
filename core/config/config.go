package config

import (
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration in a structured way.
type Config struct {
	App   AppConfig
	Model ModelConfig
	Cache CacheConfig
}

type AppConfig struct {
	Version  string
	Port     string
	Debug    bool
	BasePath string
}

type ModelConfig struct {
	// Dir is where the provisioner keeps the artifacts. Containers set
	// MODEL_DIR explicitly; the default follows the local storages layout.
	Dir              string
	SourceURL        string
	ModelFile        string
	PreprocessorFile string
}

type CacheConfig struct {
	MaxSize int
	TTL     time.Duration
}

// Global provides access to the loaded configuration globally.
var Global *Config

// LoadConfig loads configuration from a .env file (if present) and
// environment variables, falling back to defaults.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	modelDir := getEnv("MODEL_DIR", filepath.Join("storages", "model-files"))

	cfg := &Config{
		App: AppConfig{
			Version:  "v1.0.0",
			Port:     getEnv("APP_PORT", "8081"),
			Debug:    getEnvBool("APP_DEBUG", false),
			BasePath: getEnv("APP_BASE_PATH", ""),
		},
		Model: ModelConfig{
			Dir:              modelDir,
			SourceURL:        getEnv("MODEL_URL", ""),
			ModelFile:        filepath.Join(modelDir, "model.json"),
			PreprocessorFile: filepath.Join(modelDir, "preprocessor.json"),
		},
		Cache: CacheConfig{
			MaxSize: getEnvInt("CACHE_MAX_SIZE", 1000),
			TTL:     time.Duration(getEnvInt("CACHE_TTL_SECONDS", 3600)) * time.Second,
		},
	}

	Global = cfg
	return cfg, nil
}
