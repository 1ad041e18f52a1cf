// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into strongly-typed
Go structs, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Two schemas live here:

  - [Config]: the read API server (cmd/api).
  - [LoaderConfig]: the batch dataset loader (cmd/loader).

Both are read-only once loaded and are passed to components via constructors.
*/
package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

// # Configuration Schema

// Config holds all runtime configuration for the read API server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// Relational Database (PostgreSQL)
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`

	// RunMigrations applies the embedded schema on startup.
	RunMigrations bool `env:"RUN_MIGRATIONS" envDefault:"true"`

	// Optional shared cache for signed image URLs. Empty keeps the cache in-process.
	RedisURL string `env:"REDIS_URL"`

	// Object Storage (S3-compatible)
	Storage StorageConfig

	// Asset caches
	ImageURLTTL   time.Duration `env:"IMAGE_URL_TTL"   envDefault:"1h"`
	PoemCacheSize int           `env:"POEM_CACHE_SIZE" envDefault:"200"`

	// Cross-Origin Resource Sharing
	ExtraOrigins []string `env:"EXTRA_ORIGINS" envSeparator:","`
}

// StorageConfig describes the bucket holding rendered paintings and poem texts.
type StorageConfig struct {
	Bucket          string `env:"S3_BUCKET,required,notEmpty"`
	Region          string `env:"S3_REGION"     envDefault:"us-east-1"`
	Endpoint        string `env:"S3_ENDPOINT"`
	PathStyle       bool   `env:"S3_PATH_STYLE" envDefault:"false"`
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID"`
	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY"`
}

// LoaderConfig holds the configuration for the dataset loader.
type LoaderConfig struct {
	Debug       bool   `env:"DEBUG"        envDefault:"false"`
	DatabaseURL string `env:"DATABASE_URL,required,notEmpty"`

	// DataDir is the directory holding the offline dataset files.
	DataDir string `env:"DATA_DIR" envDefault:"./data"`

	PaintingFile    string `env:"PAINTING_FILE"      envDefault:"WikiArt-info-truncated.tsv"`
	EmotionPoemFile string `env:"EMOTION_POEM_FILE"  envDefault:"EmotionPoetryData-indexed.csv"`
	PoetryFile      string `env:"POETRY_FILE"        envDefault:"poetry_truncated.csv"`
	EmotionPairFile string `env:"EMOTION_PAIR_FILE"  envDefault:"emotional_pairings.csv"`
	CLIPPairFile    string `env:"CLIP_PAIR_FILE"     envDefault:"clip_pairings.csv"`
	ObjectPairFile  string `env:"OBJECT_PAIR_FILE"   envDefault:"scoring_results.csv"`
	TruncateEmotion bool   `env:"PAIRING_TRUNCATE_EMOTION" envDefault:"true"`
	TruncateCLIP    bool   `env:"PAIRING_TRUNCATE_CLIP"    envDefault:"true"`
	TruncateObject  bool   `env:"PAIRING_TRUNCATE_OBJECT"  envDefault:"false"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct.
func Load() (*Config, error) {
	cfg := &Config{}

	// This will fail if any field marked with 'required' is missing.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if cfg.PoemCacheSize < 1 {
		return nil, fmt.Errorf("config: POEM_CACHE_SIZE must be positive, got %d", cfg.PoemCacheSize)
	}

	if cfg.ImageURLTTL <= 0 {
		return nil, fmt.Errorf("config: IMAGE_URL_TTL must be positive, got %s", cfg.ImageURLTTL)
	}

	return cfg, nil
}

// LoadLoader parses environment variables into a [LoaderConfig] struct.
func LoadLoader() (*LoaderConfig, error) {
	cfg := &LoaderConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}
	return cfg, nil
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// AllowedOrigins returns the extra CORS origins accepted outside development.
func (c *Config) AllowedOrigins() []string {
	return c.ExtraOrigins
}

// Path joins a dataset file name onto [LoaderConfig.DataDir].
func (c *LoaderConfig) Path(file string) string {
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(c.DataDir, file)
}
