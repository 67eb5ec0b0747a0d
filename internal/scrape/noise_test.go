package scrape_test

import (
	"path/filepath"
	"testing"

	"github.com/Isaac25-lgtm/hickory/internal/config"
	"github.com/Isaac25-lgtm/hickory/internal/scrape"
)

func newDefaultFilter(t *testing.T) *scrape.NoiseFilter {
	t.Helper()
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if err != nil {
		t.Fatalf("loading default config: %v", err)
	}
	filter, err := scrape.NewNoiseFilter(cfg.Scrape.MinTextLen, cfg.Scrape.NoisePatterns)
	if err != nil {
		t.Fatalf("NewNoiseFilter() error: %v", err)
	}
	return filter
}

func TestIsNoise(t *testing.T) {
	filter := newDefaultFilter(t)

	tests := []struct {
		name  string
		text  string
		noise bool
	}{
		{
			name:  "real menu description",
			text:  "Grilled pork chops on creamy sukuma-wiki served with mushroom sauce",
			noise: false,
		},
		{
			name:  "short string",
			text:  "View Menu Now",
			noise: true,
		},
		{
			name:  "placeholder copy",
			text:  "Lorem ipsum dolor sit amet consectetur adipiscing elit",
			noise: true,
		},
		{
			name:  "nav bar prefix case insensitive",
			text:  "FOOD DRINKS WINES and everything else on offer",
			noise: true,
		},
		{
			name:  "breadcrumb trail",
			text:  "food / food menu overview page",
			noise: true,
		},
		{
			name:  "footer credit",
			text:  "Designed by Fortitude Solutions Kampala",
			noise: true,
		},
		{
			name:  "copyright symbol anywhere",
			text:  "All rights reserved © The Hickory 2024",
			noise: true,
		},
		{
			name:  "bare number",
			text:  "256758809187256",
			noise: true,
		},
		{
			name:  "whole page dump",
			text:  "Welcome to Food Drinks Wines All Drinks Cake Events our full menu",
			noise: true,
		},
		{
			name:  "opening hours heading",
			text:  "Opening Hours Monday to Sunday",
			noise: true,
		},
		{
			name:  "reservation prompt",
			text:  "Make a reservation for your next visit",
			noise: true,
		},
		{
			name:  "review text survives",
			text:  "Great food excellent customer service and the environment is really romantic",
			noise: false,
		},
		{
			name:  "leading whitespace trimmed before checks",
			text:  "   Copyright 2024 The Hickory Kampala   ",
			noise: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := filter.IsNoise(tt.text); got != tt.noise {
				t.Errorf("IsNoise(%q) = %v, want %v", tt.text, got, tt.noise)
			}
		})
	}
}

func TestNewNoiseFilterRejectsBadPattern(t *testing.T) {
	if _, err := scrape.NewNoiseFilter(15, []string{`^valid`, `[unclosed`}); err == nil {
		t.Error("NewNoiseFilter() accepted an invalid regex")
	}
}

func TestIsNoiseMinLengthZero(t *testing.T) {
	filter, err := scrape.NewNoiseFilter(0, nil)
	if err != nil {
		t.Fatalf("NewNoiseFilter() error: %v", err)
	}
	if filter.IsNoise("ok") {
		t.Error("IsNoise() rejected short text with no minimum configured")
	}
}
