package inspect

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Isaac25-lgtm/hickory/internal/config"
)

const foodPageHTML = `<!DOCTYPE html>
<html>
<head><title>Food Menu</title></head>
<body>
<main>
<article>
<h1>Food Menu</h1>
<p>Slow smoked pork ribs basted in our house barbeque glaze, served with hand-cut chips and coleslaw on the side.</p>
<p>Deep fried whole tilapia with lemon butter, sourced fresh from Lake Victoria every morning for our kitchen.</p>
<p>Chocolate fudge cake layered with dark ganache and finished with a scoop of vanilla ice cream on the side.</p>
</article>
</main>
</body>
</html>`

func newInspectConfig(t *testing.T, baseURL string) *config.Config {
	t.Helper()

	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("config.Load() error: %v", err)
	}
	cfg.Scrape.BaseURL = baseURL
	return cfg
}

func TestRunResolvesPageName(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/food/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(foodPageHTML))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	cfg := newInspectConfig(t, server.URL)

	var out bytes.Buffer
	opts := Options{Source: "food", Selector: "article", Quiet: true}
	if err := Run(context.Background(), cfg, opts, &out); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	result := out.String()
	if !strings.Contains(result, "Slow smoked pork ribs") {
		t.Errorf("output should contain the ribs paragraph, got:\n%s", result)
	}
	if !strings.Contains(result, "tilapia") {
		t.Errorf("output should contain the tilapia paragraph, got:\n%s", result)
	}
}

func TestRunWithQuery(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/food/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(foodPageHTML))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	cfg := newInspectConfig(t, server.URL)

	var out bytes.Buffer
	opts := Options{
		Source:    "food",
		Selector:  "article",
		Query:     "tilapia lemon",
		MaxBlocks: 1,
		Quiet:     true,
	}
	if err := Run(context.Background(), cfg, opts, &out); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	result := out.String()
	if !strings.Contains(result, "tilapia") {
		t.Errorf("top block should mention tilapia, got:\n%s", result)
	}
	if strings.Contains(result, "Chocolate fudge") {
		t.Errorf("unrelated dessert block should be ranked out, got:\n%s", result)
	}
	if strings.Contains(result, "pork ribs") {
		t.Errorf("unrelated ribs block should be ranked out, got:\n%s", result)
	}
}

func TestRunFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "saved_page.html")
	html := `<html><body><p>Passion fruit mojito with fresh mint and crushed ice.</p></body></html>`
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	cfg := newInspectConfig(t, "https://thehickorykampala.com")

	var out bytes.Buffer
	opts := Options{Source: path, Raw: true, Quiet: true}
	if err := Run(context.Background(), cfg, opts, &out); err != nil {
		t.Fatalf("Run() error: %v", err)
	}

	if !strings.Contains(out.String(), "Passion fruit mojito") {
		t.Errorf("output should contain file content, got:\n%s", out.String())
	}
}

func TestRunFetchError(t *testing.T) {
	cfg := newInspectConfig(t, "https://thehickorykampala.com")

	var out bytes.Buffer
	opts := Options{Source: "/no/such/page.html", Quiet: true}
	err := Run(context.Background(), cfg, opts, &out)
	if err == nil {
		t.Fatal("Run() expected error for missing file, got nil")
	}
	if !strings.Contains(err.Error(), "does not exist") {
		t.Errorf("error should mention the missing file, got: %v", err)
	}
}

func TestResolveSource(t *testing.T) {
	cfg := newInspectConfig(t, "https://thehickorykampala.com")

	tests := []struct {
		name    string
		source  string
		want    string
		wantURL bool
	}{
		{
			name:    "configured page name",
			source:  "food",
			want:    "https://thehickorykampala.com/food/",
			wantURL: true,
		},
		{
			name:    "page name is case-insensitive",
			source:  "HOME",
			want:    "https://thehickorykampala.com/",
			wantURL: true,
		},
		{
			name:    "URL passes through",
			source:  "https://example.com/menu",
			want:    "https://example.com/menu",
			wantURL: true,
		},
		{
			name:    "file path passes through",
			source:  "saved_page.html",
			want:    "saved_page.html",
			wantURL: false,
		},
		{
			name:    "stdin passes through",
			source:  "-",
			want:    "-",
			wantURL: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, u := resolveSource(cfg.Scrape, tt.source)
			if got != tt.want {
				t.Errorf("resolveSource(%q) = %q, want %q", tt.source, got, tt.want)
			}
			if tt.wantURL && u == nil {
				t.Errorf("resolveSource(%q) should return a parsed URL", tt.source)
			}
			if !tt.wantURL && u != nil {
				t.Errorf("resolveSource(%q) should not return a URL, got %v", tt.source, u)
			}
		})
	}
}
