// Package config holds the environment-backed runtime settings.
// Secrets and model choices come from the environment (optionally via a
// .env file loaded in main); everything has a working default except
// the API key, whose absence is reported by the completion layer.
package config

import (
	"os"
	"strconv"
)

// Environment variable names.
const (
	EnvAPIKey             = "OPENAI_API_KEY"
	EnvModelExtractor     = "OPENAI_MODEL_EXTRACTOR"
	EnvModelPromptBuilder = "OPENAI_MODEL_PROMPT_BUILDER"
	EnvHost               = "HOST"
	EnvPort               = "PORT"
	EnvParallelism        = "PROMPTFORGE_PARALLELISM"
)

// Defaults.
const (
	DefaultHost        = "0.0.0.0"
	DefaultPort        = 4000
	DefaultModel       = "gpt-4o-mini"
	DefaultParallelism = 1
)

// Config holds runtime settings for the server and CLI.
type Config struct {
	Host               string
	Port               int
	APIKey             string
	ModelExtractor     string
	ModelPromptBuilder string
	// Parallelism bounds concurrent model calls per campaign build.
	// 1 (the default) keeps strictly sequential generation.
	Parallelism int
}

// FromEnv reads the configuration from the environment, applying
// defaults for everything except the API key.
func FromEnv() Config {
	return Config{
		Host:               envOr(EnvHost, DefaultHost),
		Port:               envIntOr(EnvPort, DefaultPort),
		APIKey:             os.Getenv(EnvAPIKey),
		ModelExtractor:     envOr(EnvModelExtractor, DefaultModel),
		ModelPromptBuilder: envOr(EnvModelPromptBuilder, DefaultModel),
		Parallelism:        envIntOr(EnvParallelism, DefaultParallelism),
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envIntOr(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
