package dataset_test

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/Isaac25-lgtm/hickory/internal/dataset"
)

func TestDedup(t *testing.T) {
	rows := []dataset.Row{
		{SourcePage: "food", Category: "Mains", Description: "Grilled chicken breast"},
		{SourcePage: "home", Category: "description", Description: "  grilled CHICKEN breast  "},
		{SourcePage: "drinks", Category: "Cocktails", Description: "Mojito with mint"},
		{SourcePage: "food", Category: "Sides", Description: "chips"}, // key too short
		{SourcePage: "food", Category: "Sides", Description: ""},
	}

	got := dataset.Dedup(rows)

	if len(got) != 2 {
		t.Fatalf("Dedup() kept %d rows, want 2: %+v", len(got), got)
	}
	// first occurrence wins
	if got[0].SourcePage != "food" || got[0].Description != "Grilled chicken breast" {
		t.Errorf("Dedup()[0] = %+v, want the first chicken row", got[0])
	}
	if got[1].Description != "Mojito with mint" {
		t.Errorf("Dedup()[1] = %+v", got[1])
	}
}

func TestDedupPreservesDistinctRows(t *testing.T) {
	rows := []dataset.Row{
		{Description: "Classic carrot cake with cream cheese frosting"},
		{Description: "Rich chocolate cake with chocolate frosting"},
	}
	if got := dataset.Dedup(rows); len(got) != 2 {
		t.Errorf("Dedup() kept %d rows, want 2", len(got))
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	rows := []dataset.Row{
		{SourcePage: "food", Category: "Mains", ItemName: "Pork Ribs", Description: "Spiced pork ribs, baked until golden-brown", Price: "57"},
		{SourcePage: "reviews", Category: "customer_review_positive", Description: "Great food and \"excellent\" service"},
	}

	path := filepath.Join(t.TempDir(), "dataset.csv")
	if err := dataset.WriteCSV(rows, path); err != nil {
		t.Fatalf("WriteCSV() error: %v", err)
	}

	got, err := dataset.ReadCSV(path)
	if err != nil {
		t.Fatalf("ReadCSV() error: %v", err)
	}
	if !reflect.DeepEqual(got, rows) {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, rows)
	}
}

func TestReadCSVRejectsWrongHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "other.csv")
	if err := os.WriteFile(path, []byte("a,b,c\n1,2,3\n"), 0o644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	if _, err := dataset.ReadCSV(path); err == nil {
		t.Error("ReadCSV() accepted a CSV with a foreign header")
	}
}

func TestWriteCSVWithFallback(t *testing.T) {
	dir := t.TempDir()
	rows := []dataset.Row{{SourcePage: "food", Description: "Grilled chicken breast"}}

	// primary inside a directory that does not exist; fallback is writable
	primary := filepath.Join(dir, "missing", "out.csv")
	fallback := filepath.Join(dir, "out_new.csv")

	wrote, err := dataset.WriteCSVWithFallback(rows, primary, fallback)
	if err != nil {
		t.Fatalf("WriteCSVWithFallback() error: %v", err)
	}
	if wrote != fallback {
		t.Errorf("wrote to %q, want fallback %q", wrote, fallback)
	}

	got, err := dataset.ReadCSV(fallback)
	if err != nil {
		t.Fatalf("ReadCSV() on fallback: %v", err)
	}
	if len(got) != 1 || got[0].Description != rows[0].Description {
		t.Errorf("fallback content = %+v", got)
	}
}

func TestWriteCSVWithFallbackBothFail(t *testing.T) {
	dir := t.TempDir()
	rows := []dataset.Row{{Description: "Grilled chicken breast"}}

	primary := filepath.Join(dir, "missing", "out.csv")
	fallback := filepath.Join(dir, "also-missing", "out_new.csv")

	if _, err := dataset.WriteCSVWithFallback(rows, primary, fallback); err == nil {
		t.Error("WriteCSVWithFallback() succeeded with both paths unwritable")
	}
}

func TestWriteCSVPrimarySucceeds(t *testing.T) {
	dir := t.TempDir()
	rows := []dataset.Row{{Description: "Grilled chicken breast"}}

	primary := filepath.Join(dir, "out.csv")
	fallback := filepath.Join(dir, "out_new.csv")

	wrote, err := dataset.WriteCSVWithFallback(rows, primary, fallback)
	if err != nil {
		t.Fatalf("WriteCSVWithFallback() error: %v", err)
	}
	if wrote != primary {
		t.Errorf("wrote to %q, want primary %q", wrote, primary)
	}
	if _, err := os.Stat(fallback); !os.IsNotExist(err) {
		t.Error("fallback file was created even though the primary write worked")
	}
}

func TestSummarize(t *testing.T) {
	rows := []dataset.Row{
		{SourcePage: "food", Category: "Mains", Description: "Grilled chicken breast with mushroom sauce"},
		{SourcePage: "food", Category: "Mains", Description: "Grilled pork chops with mushroom sauce"},
		{SourcePage: "drinks", Category: "Cocktails", Description: "Vodka cocktail with fresh lime"},
	}

	s := dataset.Summarize(rows, 2, nil)

	if s.Rows != 3 {
		t.Errorf("Rows = %d, want 3", s.Rows)
	}
	if s.Words != 17 {
		t.Errorf("Words = %d, want 17", s.Words)
	}
	if s.Units != -1 {
		t.Errorf("Units = %d, want -1 without a supplementary counter", s.Units)
	}

	wantPages := []dataset.FieldCount{{Name: "food", Count: 2}, {Name: "drinks", Count: 1}}
	if !reflect.DeepEqual(s.ByPage, wantPages) {
		t.Errorf("ByPage = %+v, want %+v", s.ByPage, wantPages)
	}

	if len(s.ByCategory) != 2 || s.ByCategory[0].Name != "Mains" || s.ByCategory[0].Count != 2 {
		t.Fatalf("ByCategory = %+v", s.ByCategory)
	}

	// grill and mushroom both appear twice and sort ahead of the other
	// twice-stemmed term alphabetically
	wantTop := []dataset.TermCount{{Term: "grill", Count: 2}, {Term: "mushroom", Count: 2}}
	if !reflect.DeepEqual(s.ByCategory[0].TopTerms, wantTop) {
		t.Errorf("Mains TopTerms = %+v, want %+v", s.ByCategory[0].TopTerms, wantTop)
	}

	wantCocktails := []dataset.TermCount{{Term: "cocktail", Count: 1}, {Term: "fresh", Count: 1}}
	if !reflect.DeepEqual(s.ByCategory[1].TopTerms, wantCocktails) {
		t.Errorf("Cocktails TopTerms = %+v, want %+v", s.ByCategory[1].TopTerms, wantCocktails)
	}
}

// fixedCounter pretends every description costs the same number of units.
type fixedCounter struct{ per int }

func (f fixedCounter) Count(text string) int { return f.per }
func (f fixedCounter) Name() string          { return "fixed" }

func TestSummarizeWithUnitCounter(t *testing.T) {
	rows := []dataset.Row{
		{SourcePage: "food", Category: "Mains", Description: "Grilled chicken breast"},
		{SourcePage: "food", Category: "Mains", Description: "Pork ribs with barbeque sauce"},
	}

	s := dataset.Summarize(rows, 0, fixedCounter{per: 7})
	if s.Units != 14 {
		t.Errorf("Units = %d, want 14", s.Units)
	}
	if len(s.ByCategory) != 1 || s.ByCategory[0].TopTerms != nil {
		t.Errorf("topN=0 should produce no top terms, got %+v", s.ByCategory)
	}
}
