package catalog

import "testing"

func TestForNicheKnown(t *testing.T) {
	for _, niche := range DefaultNiches {
		entries := ForNiche(niche)
		if len(entries) != 2 {
			t.Fatalf("niche %s: expected 2 catalog entries, got %d", niche, len(entries))
		}
		for _, e := range entries {
			if e.Title == "" || len(e.Keywords) == 0 {
				t.Errorf("niche %s: incomplete entry %+v", niche, e)
			}
			if e.PopularityScore <= 0 || e.PopularityScore > 99 {
				t.Errorf("niche %s: score out of range: %d", niche, e.PopularityScore)
			}
		}
	}
}

func TestForNicheUnknown(t *testing.T) {
	entries := ForNiche("cooking")
	if len(entries) != 1 {
		t.Fatalf("expected a single generic entry, got %d", len(entries))
	}
	e := entries[0]
	if e.Title != "Emerging Trends in Cooking" {
		t.Errorf("unexpected generic title %q", e.Title)
	}
	if e.PopularityScore != 80 {
		t.Errorf("expected generic score 80, got %d", e.PopularityScore)
	}
	if e.Keywords[0] != "cooking" {
		t.Errorf("expected niche as first keyword, got %v", e.Keywords)
	}
}

func TestForNicheReturnsCopy(t *testing.T) {
	first := ForNiche("tech")
	first[0].Title = "mutated"
	again := ForNiche("tech")
	if again[0].Title == "mutated" {
		t.Fatalf("ForNiche should return a copy of the catalog slice")
	}
}
