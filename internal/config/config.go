package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	App       AppConfig
	Embedding EmbeddingConfig
	Dataset   DatasetConfig
	Model     ModelConfig
}

type AppConfig struct {
	AppName     string
	Environment string
	HTTPPort    string
}

type EmbeddingConfig struct {
	GeminiAPIKey string
	Model        string
	Workers      int
}

type DatasetConfig struct {
	JobsCSV    string
	CoursesCSV string
}

type ModelConfig struct {
	WeightsPath         string
	EdgeThreshold       float64
	ConfidenceThreshold float64
}

var errMissingRequiredEnv = errors.New("missing required environment variables")

func Load() (Config, error) {
	cfg := Config{}

	var missing []string
	req := func(key string) string {
		v := strings.TrimSpace(os.Getenv(key))
		if v == "" {
			missing = append(missing, key)
		}
		return v
	}
	opt := func(key string) string {
		return strings.TrimSpace(os.Getenv(key))
	}
	optInt := func(key string, def int) int {
		v := opt(key)
		if v == "" {
			return def
		}
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return def
		}
		return n
	}
	optFloat := func(key string, def float64) float64 {
		v := opt(key)
		if v == "" {
			return def
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil || f <= 0 || f >= 1 {
			return def
		}
		return f
	}

	cfg.App = AppConfig{
		AppName:     req("APP_NAME"),
		Environment: req("APP_ENV"),
		HTTPPort:    req("HTTP_PORT"),
	}

	cfg.Embedding = EmbeddingConfig{
		GeminiAPIKey: opt("GEMINI_API_KEY"),
		Model:        opt("EMBEDDING_MODEL"),
		Workers:      optInt("EMBED_WORKERS", 4),
	}

	cfg.Dataset = DatasetConfig{
		JobsCSV:    opt("JOBS_CSV"),
		CoursesCSV: opt("COURSES_CSV"),
	}

	cfg.Model = ModelConfig{
		WeightsPath:         opt("GNN_WEIGHTS_PATH"),
		EdgeThreshold:       optFloat("GRAPH_EDGE_THRESHOLD", 0.7),
		ConfidenceThreshold: optFloat("GNN_CONFIDENCE_THRESHOLD", 0.65),
	}

	if len(missing) > 0 {
		return Config{}, fmt.Errorf("%w: %s", errMissingRequiredEnv, strings.Join(missing, ", "))
	}

	return cfg, nil
}
