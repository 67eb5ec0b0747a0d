// Package config loads hickory configuration from an optional YAML file;
// a missing file yields the compiled-in defaults for the original site.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds hickory configuration.
type Config struct {
	Model  ModelConfig  `yaml:"model"`
	Scrape ScrapeConfig `yaml:"scrape"`
	Server ServerConfig `yaml:"server"`
}

// ModelConfig locates the pre-trained artifacts and selects the inference backend.
type ModelConfig struct {
	Backend     string `yaml:"backend"`      // "gob" (native) or "onnx"
	Dir         string `yaml:"dir"`          // artifact directory
	Vectorizer  string `yaml:"vectorizer"`   // TF-IDF vectorizer artifact, relative to Dir
	Classifier  string `yaml:"classifier"`   // classifier artifact, relative to Dir
	OnnxModel   string `yaml:"onnx_model"`   // exported ONNX graph, relative to Dir
	OnnxLibrary string `yaml:"onnx_library"` // onnxruntime shared library path (empty = loader default)
}

// VectorizerPath returns the full path to the vectorizer artifact.
func (m ModelConfig) VectorizerPath() string {
	return filepath.Join(m.Dir, m.Vectorizer)
}

// ClassifierPath returns the full path to the classifier artifact.
func (m ModelConfig) ClassifierPath() string {
	return filepath.Join(m.Dir, m.Classifier)
}

// OnnxModelPath returns the full path to the ONNX graph.
func (m ModelConfig) OnnxModelPath() string {
	return filepath.Join(m.Dir, m.OnnxModel)
}

// ScrapeConfig drives the dataset builder. Everything the builder knows about
// the target site lives here so the page list and noise patterns can evolve
// with the site's markup instead of with this codebase.
type ScrapeConfig struct {
	BaseURL        string       `yaml:"base_url"`
	UserAgent      string       `yaml:"user_agent"`
	TimeoutSeconds int          `yaml:"timeout_seconds"` // per-request timeout
	DelaySeconds   int          `yaml:"delay_seconds"`   // polite crawling delay between fetches
	MinTextLen     int          `yaml:"min_text_len"`    // shorter extracted strings are always noise
	Output         string       `yaml:"output"`          // CSV output path
	Pages          []PageConfig `yaml:"pages"`
	NoisePatterns  []string     `yaml:"noise_patterns"` // case-insensitive regexes matched against extracted text
}

// PageConfig names one site page and the extraction role applied to it.
type PageConfig struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`
	Kind string `yaml:"kind"` // one of the Kind* constants
}

// Page kinds understood by the dataset builder.
const (
	KindHome    = "home"    // p + blockquote tags, category "description"
	KindMenu    = "menu"    // p + li tags with nav/footer exclusions, category = title-cased page name
	KindContact = "contact" // p + address tags, category "location_info"
)

// ServerConfig holds the HTTP API settings.
type ServerConfig struct {
	Addr string `yaml:"addr"` // listen address, e.g. ":8080"
}

// FallbackOutput derives the alternate CSV path used when the primary output
// is locked by another process, e.g. "hickory_dataset.csv" becomes
// "hickory_dataset_new.csv".
func (s ScrapeConfig) FallbackOutput() string {
	ext := filepath.Ext(s.Output)
	return strings.TrimSuffix(s.Output, ext) + "_new" + ext
}

// Load reads configuration from a YAML file.
// If the file doesn't exist, it returns the default config and no error.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %q: %w", path, err)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

func defaultConfig() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Model.Backend == "" {
		cfg.Model.Backend = "gob"
	}
	if cfg.Model.Dir == "" {
		cfg.Model.Dir = "models"
	}
	if cfg.Model.Vectorizer == "" {
		cfg.Model.Vectorizer = "tfidf_vectorizer.gob"
	}
	if cfg.Model.Classifier == "" {
		cfg.Model.Classifier = "best_model.gob"
	}
	if cfg.Model.OnnxModel == "" {
		cfg.Model.OnnxModel = "best_model.onnx"
	}

	if cfg.Scrape.BaseURL == "" {
		cfg.Scrape.BaseURL = "https://thehickorykampala.com"
	}
	if cfg.Scrape.UserAgent == "" {
		cfg.Scrape.UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
			"AppleWebKit/537.36 (KHTML, like Gecko) " +
			"Chrome/120.0.0.0 Safari/537.36"
	}
	if cfg.Scrape.TimeoutSeconds == 0 {
		cfg.Scrape.TimeoutSeconds = 15
	}
	if cfg.Scrape.DelaySeconds == 0 {
		cfg.Scrape.DelaySeconds = 1
	}
	if cfg.Scrape.MinTextLen == 0 {
		cfg.Scrape.MinTextLen = 15
	}
	if cfg.Scrape.Output == "" {
		cfg.Scrape.Output = "hickory_dataset.csv"
	}
	if len(cfg.Scrape.Pages) == 0 {
		cfg.Scrape.Pages = defaultPages()
	}
	if len(cfg.Scrape.NoisePatterns) == 0 {
		cfg.Scrape.NoisePatterns = defaultNoisePatterns()
	}

	if cfg.Server.Addr == "" {
		cfg.Server.Addr = ":8080"
	}
}

func defaultPages() []PageConfig {
	return []PageConfig{
		{Name: "home", Path: "/", Kind: KindHome},
		{Name: "food", Path: "/food/", Kind: KindMenu},
		{Name: "drinks", Path: "/drinks/", Kind: KindMenu},
		{Name: "wines", Path: "/wines/", Kind: KindMenu},
		{Name: "cake", Path: "/cake/", Kind: KindMenu},
		{Name: "events", Path: "/category/events/", Kind: KindMenu},
		{Name: "contact", Path: "/contact-us/", Kind: KindContact},
	}
}

// defaultNoisePatterns matches the navigation chrome, placeholder copy, and
// footer boilerplate observed on the live site. The list is ordinary config
// data; expect it to churn whenever the site's markup does.
func defaultNoisePatterns() []string {
	return []string{
		`^lorem ipsum`,
		`^food drinks wines`,
		`^drinks wines`,
		`^wines all drinks`,
		`^cake events`,
		`^food / food`,
		`^drinks / drinks`,
		`^wines / wines`,
		`^cake / cake`,
		`^contact us sed`,
		`^/ (food|drinks|wines|cake|events)`,
		`^follow us$`,
		`^view menu$`,
		`^see more$`,
		`^all drinks$`,
		`^events$`,
		`^gallery$`,
		`^contact us$`,
		`^food menu$`,
		`^drinks menu$`,
		`^cake menu$`,
		`^exquisite recipes$`,
		`^specials$`,
		`^cocktail$`,
		`^o'clock$`,
		`^search$`,
		`^menu$`,
		`^home$`,
		`^food$`,
		`^drinks$`,
		`^wines$`,
		`^cake$`,
		`^designed by`,
		`^copyright`,
		`©`,
		`designed by fortitude`,
		`^sed tincidunt`,
		`^get in touch`,
		`^opening hours`,
		`^reservation$`,
		`^book a table`,
		`^make a reservation`,
		`^\d+$`, // bare numbers
	}
}
