package config

import "testing"

func setRequired(t *testing.T) {
	t.Setenv("APP_NAME", "skill-bridge")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "8080")
}

func TestLoadRequiredEnv(t *testing.T) {
	setRequired(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.App.AppName != "skill-bridge" || cfg.App.HTTPPort != "8080" {
		t.Fatalf("unexpected app config: %+v", cfg.App)
	}
}

func TestLoadMissingRequiredEnv(t *testing.T) {
	t.Setenv("APP_NAME", "")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "8080")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing APP_NAME")
	}
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)
	t.Setenv("EMBED_WORKERS", "")
	t.Setenv("GRAPH_EDGE_THRESHOLD", "")
	t.Setenv("GNN_CONFIDENCE_THRESHOLD", "not-a-number")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Embedding.Workers != 4 {
		t.Fatalf("expected default workers 4, got %d", cfg.Embedding.Workers)
	}
	if cfg.Model.EdgeThreshold != 0.7 {
		t.Fatalf("expected default edge threshold 0.7, got %v", cfg.Model.EdgeThreshold)
	}
	if cfg.Model.ConfidenceThreshold != 0.65 {
		t.Fatalf("expected invalid threshold to fall back to 0.65, got %v", cfg.Model.ConfidenceThreshold)
	}
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("EMBED_WORKERS", "8")
	t.Setenv("GRAPH_EDGE_THRESHOLD", "0.8")
	t.Setenv("GEMINI_API_KEY", "test-key")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Embedding.Workers != 8 {
		t.Fatalf("expected 8 workers, got %d", cfg.Embedding.Workers)
	}
	if cfg.Model.EdgeThreshold != 0.8 {
		t.Fatalf("expected edge threshold 0.8, got %v", cfg.Model.EdgeThreshold)
	}
	if cfg.Embedding.GeminiAPIKey != "test-key" {
		t.Fatalf("unexpected api key: %q", cfg.Embedding.GeminiAPIKey)
	}
}
