package textutil

import (
	"math"
	"testing"

	"costar/internal/overlap"
)

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Amélie", "amelie"},
		{"  Mission: Impossible – Fallout ", "mission impossible fallout"},
		{"Fast & Furious", "fast and furious"},
		{"ＨＥＡＴ", "heat"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := NormalizeTitle(tt.in); got != tt.want {
			t.Errorf("NormalizeTitle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestSplitYearHint(t *testing.T) {
	tests := []struct {
		in        string
		wantTitle string
		wantYear  int
	}{
		{"Heat (1995)", "Heat", 1995},
		{"Heat [1995]", "Heat", 1995},
		{"Blade Runner 2049", "Blade Runner 2049", 0},
		{"(1995)", "(1995)", 0},
		{"Heat", "Heat", 0},
	}
	for _, tt := range tests {
		title, year := SplitYearHint(tt.in)
		if title != tt.wantTitle || year != tt.wantYear {
			t.Errorf("SplitYearHint(%q) = (%q, %d), want (%q, %d)", tt.in, title, year, tt.wantTitle, tt.wantYear)
		}
	}
}

func TestReleaseYear(t *testing.T) {
	if got := ReleaseYear("1995-12-15"); got != "1995" {
		t.Fatalf("ReleaseYear = %q", got)
	}
	for _, in := range []string{"", "95", "abcd-01-01"} {
		if got := ReleaseYear(in); got != "N/A" {
			t.Fatalf("ReleaseYear(%q) = %q, want N/A", in, got)
		}
	}
}

func TestCosineSimilarity(t *testing.T) {
	if got := CosineSimilarity(nil, NewFingerprint("heat")); got != 0 {
		t.Fatalf("expected 0 for nil fingerprint, got %v", got)
	}
	a := NewFingerprint("The Dark Knight")
	b := NewFingerprint("the dark knight")
	if got := CosineSimilarity(a, b); math.Abs(got-1) > 1e-9 {
		t.Fatalf("expected identical titles to score 1, got %v", got)
	}
	if a.TokenCount() != 3 {
		t.Fatalf("expected 3 tokens, got %d", a.TokenCount())
	}
}

func TestRankTitlesPrefersExactThenFuzzy(t *testing.T) {
	movies := []overlap.Movie{
		{ID: 1, Title: "Heat Wave", ReleaseDate: "2022-01-01"},
		{ID: 2, Title: "The Heat", ReleaseDate: "2013-06-28"},
		{ID: 3, Title: "Heat", ReleaseDate: "1995-12-15"},
		{ID: 4, Title: "Unrelated"},
	}
	ranked := RankTitles("heat", movies)
	if ranked[0].Movie.ID != 3 {
		t.Fatalf("expected exact match first, got %#v", ranked[0])
	}
	if ranked[len(ranked)-1].Movie.ID != 4 {
		t.Fatalf("expected unrelated title last, got %#v", ranked[len(ranked)-1])
	}
}

func TestRankTitlesUsesYearHint(t *testing.T) {
	movies := []overlap.Movie{
		{ID: 10, Title: "Dune", ReleaseDate: "2021-09-15"},
		{ID: 11, Title: "Dune", ReleaseDate: "1984-12-14"},
	}
	best, ok := BestTitle("Dune (1984)", movies)
	if !ok || best.ID != 11 {
		t.Fatalf("expected 1984 release, got %#v ok=%v", best, ok)
	}
	best, ok = BestTitle("dune", movies)
	if !ok || best.ID != 10 {
		t.Fatalf("expected search order to break ties, got %#v ok=%v", best, ok)
	}
}

func TestBestTitleNoMatch(t *testing.T) {
	if _, ok := BestTitle("zzz", []overlap.Movie{{ID: 1, Title: "Heat"}}); ok {
		t.Fatal("expected no match")
	}
	if _, ok := BestTitle("heat", nil); ok {
		t.Fatal("expected no match for empty input")
	}
}
