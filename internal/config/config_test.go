package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Isaac25-lgtm/hickory/internal/config"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "no-such-file.yaml"))
	if err != nil {
		t.Fatalf("Load() on missing file returned error: %v", err)
	}

	if cfg.Model.Backend != "gob" {
		t.Errorf("default backend = %q, want %q", cfg.Model.Backend, "gob")
	}
	if cfg.Scrape.BaseURL != "https://thehickorykampala.com" {
		t.Errorf("default base URL = %q", cfg.Scrape.BaseURL)
	}
	if cfg.Scrape.TimeoutSeconds != 15 {
		t.Errorf("default timeout = %d, want 15", cfg.Scrape.TimeoutSeconds)
	}
	if cfg.Scrape.DelaySeconds != 1 {
		t.Errorf("default delay = %d, want 1", cfg.Scrape.DelaySeconds)
	}
	if cfg.Scrape.MinTextLen != 15 {
		t.Errorf("default min text length = %d, want 15", cfg.Scrape.MinTextLen)
	}
	if len(cfg.Scrape.Pages) != 7 {
		t.Errorf("default page count = %d, want 7", len(cfg.Scrape.Pages))
	}
	if len(cfg.Scrape.NoisePatterns) == 0 {
		t.Error("default noise patterns are empty")
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("default server addr = %q, want %q", cfg.Server.Addr, ":8080")
	}
}

func TestLoadAppliesOverridesAndFillsGaps(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hickory.yaml")
	data := `model:
  backend: onnx
  dir: /opt/hickory/models
scrape:
  base_url: http://127.0.0.1:9999
  delay_seconds: 2
  noise_patterns:
    - "^sponsored"
server:
  addr: ":9090"
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("writing config fixture: %v", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}

	// overridden values win
	if cfg.Model.Backend != "onnx" {
		t.Errorf("backend = %q, want %q", cfg.Model.Backend, "onnx")
	}
	if cfg.Scrape.BaseURL != "http://127.0.0.1:9999" {
		t.Errorf("base URL = %q", cfg.Scrape.BaseURL)
	}
	if cfg.Scrape.DelaySeconds != 2 {
		t.Errorf("delay = %d, want 2", cfg.Scrape.DelaySeconds)
	}
	if len(cfg.Scrape.NoisePatterns) != 1 || cfg.Scrape.NoisePatterns[0] != "^sponsored" {
		t.Errorf("noise patterns = %v, want the single override", cfg.Scrape.NoisePatterns)
	}
	if cfg.Server.Addr != ":9090" {
		t.Errorf("server addr = %q, want %q", cfg.Server.Addr, ":9090")
	}

	// unset values fall back to defaults
	if cfg.Model.Vectorizer != "tfidf_vectorizer.gob" {
		t.Errorf("vectorizer = %q, want default", cfg.Model.Vectorizer)
	}
	if cfg.Scrape.TimeoutSeconds != 15 {
		t.Errorf("timeout = %d, want default 15", cfg.Scrape.TimeoutSeconds)
	}
	if len(cfg.Scrape.Pages) != 7 {
		t.Errorf("page count = %d, want default 7", len(cfg.Scrape.Pages))
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hickory.yaml")
	if err := os.WriteFile(path, []byte("model: [not: valid"), 0o644); err != nil {
		t.Fatalf("writing config fixture: %v", err)
	}

	if _, err := config.Load(path); err == nil {
		t.Error("Load() on malformed YAML returned nil error")
	}
}

func TestModelArtifactPaths(t *testing.T) {
	m := config.ModelConfig{Dir: "models", Vectorizer: "vec.gob", Classifier: "clf.gob", OnnxModel: "clf.onnx"}

	if got := m.VectorizerPath(); got != filepath.Join("models", "vec.gob") {
		t.Errorf("VectorizerPath() = %q", got)
	}
	if got := m.ClassifierPath(); got != filepath.Join("models", "clf.gob") {
		t.Errorf("ClassifierPath() = %q", got)
	}
	if got := m.OnnxModelPath(); got != filepath.Join("models", "clf.onnx") {
		t.Errorf("OnnxModelPath() = %q", got)
	}
}

func TestFallbackOutput(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   string
	}{
		{"csv extension", "hickory_dataset.csv", "hickory_dataset_new.csv"},
		{"nested path", filepath.Join("out", "data.csv"), filepath.Join("out", "data_new.csv")},
		{"no extension", "dataset", "dataset_new"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := config.ScrapeConfig{Output: tt.output}
			if got := s.FallbackOutput(); got != tt.want {
				t.Errorf("FallbackOutput() = %q, want %q", got, tt.want)
			}
		})
	}
}
