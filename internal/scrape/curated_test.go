package scrape_test

import (
	"strings"
	"testing"

	"github.com/Isaac25-lgtm/hickory/internal/dataset"
	"github.com/Isaac25-lgtm/hickory/internal/scrape"
)

func TestCuratedRows(t *testing.T) {
	rows := scrape.CuratedRows()

	if len(rows) != 289 {
		t.Fatalf("CuratedRows() returned %d rows, want 289", len(rows))
	}

	// every record already survives deduplication on its own
	if unique := dataset.Dedup(rows); len(unique) != len(rows) {
		t.Errorf("Dedup() dropped %d curated rows", len(rows)-len(unique))
	}

	first := rows[0]
	if first.SourcePage != "about" || first.Category != "restaurant_description" || first.ItemName != "The Hickory Kampala" {
		t.Errorf("first curated row = %+v", first)
	}

	counts := make(map[string]int)
	for i, r := range rows {
		counts[r.SourcePage]++
		if r.Description == "" {
			t.Errorf("row %d (%s/%s) has an empty description", i, r.SourcePage, r.ItemName)
		}
	}

	wantCounts := map[string]int{
		"about":    15,
		"food":     113, // menu items plus sauces and sides
		"drinks":   73,
		"wines":    32,
		"cake":     13,
		"reviews":  30,
		"services": 13,
	}
	for page, want := range wantCounts {
		if counts[page] != want {
			t.Errorf("curated rows for %q = %d, want %d", page, counts[page], want)
		}
	}
}

func TestCuratedSaucesAndSides(t *testing.T) {
	rows := scrape.CuratedRows()

	var sauce, side *dataset.Row
	for i := range rows {
		switch {
		case sauce == nil && rows[i].Category == "Sauces":
			sauce = &rows[i]
		case side == nil && rows[i].Category == "Sides":
			side = &rows[i]
		}
	}

	if sauce == nil || side == nil {
		t.Fatal("curated rows missing Sauces or Sides categories")
	}

	if sauce.ItemName != "Tuscan sauce" {
		t.Errorf("first sauce item = %q, want %q", sauce.ItemName, "Tuscan sauce")
	}
	if want := "Tuscan sauce available as an accompaniment to main dishes and steaks"; sauce.Description != want {
		t.Errorf("sauce description = %q, want %q", sauce.Description, want)
	}
	if sauce.Price != "10" {
		t.Errorf("sauce price = %q, want %q", sauce.Price, "10")
	}

	if side.ItemName != "Steamed vegetables" {
		t.Errorf("first side item = %q, want %q", side.ItemName, "Steamed vegetables")
	}
	if !strings.HasSuffix(side.Description, "served as a side dish accompaniment to main courses") {
		t.Errorf("side description = %q", side.Description)
	}
	if side.Price != "12" {
		t.Errorf("side price = %q, want %q", side.Price, "12")
	}
}

func TestCuratedReviewSentiments(t *testing.T) {
	sentiments := make(map[string]int)
	for _, r := range scrape.CuratedRows() {
		if r.SourcePage != "reviews" {
			continue
		}
		if !strings.HasPrefix(r.Category, "customer_review_") {
			t.Errorf("review row has category %q", r.Category)
			continue
		}
		sentiments[strings.TrimPrefix(r.Category, "customer_review_")]++
		if r.ItemName != "" || r.Price != "" {
			t.Errorf("review row carries item name or price: %+v", r)
		}
	}

	want := map[string]int{"positive": 23, "negative": 5, "neutral": 2}
	for s, n := range want {
		if sentiments[s] != n {
			t.Errorf("%s reviews = %d, want %d", s, sentiments[s], n)
		}
	}
}
