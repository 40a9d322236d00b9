package source_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"alpha-radar/internal/adapters/source"
	"alpha-radar/internal/domain"
)

func TestSynthetic_KnownKeyword(t *testing.T) {
	// Arrange
	synth := source.NewSynthetic(1)

	// Act
	posts, err := synth.Search(context.Background(), domain.NewKeywordQuery("AAPL"), 100)

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(posts) != 10 {
		t.Fatalf("expected 10 posts, got %d", len(posts))
	}
	for _, p := range posts {
		if !strings.HasPrefix(p.ID, "post_AAPL_") {
			t.Errorf("id: got %v", p.ID)
		}
		if !p.Verified {
			t.Error("synthetic posts should be verified")
		}
	}
}

func TestSynthetic_TimestampsInsideRecentWindow(t *testing.T) {
	// Arrange
	synth := source.NewSynthetic(7)
	now := time.Now()

	// Act
	posts, err := synth.Search(context.Background(), domain.NewKeywordQuery("TSLA"), 100)

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, p := range posts {
		ts, parseErr := time.Parse(time.RFC3339, p.Timestamp)
		if parseErr != nil {
			t.Fatalf("timestamp %q not RFC3339: %v", p.Timestamp, parseErr)
		}
		if now.Sub(ts) > 3*24*time.Hour {
			t.Errorf("timestamp %v outside the 3-day window", p.Timestamp)
		}
	}
}

func TestSynthetic_UnknownKeywordFallsBackToDefault(t *testing.T) {
	// Arrange
	synth := source.NewSynthetic(1)

	// Act
	posts, err := synth.Search(context.Background(), domain.NewKeywordQuery("ZZZZ"), 100)

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(posts) != 10 {
		t.Fatalf("expected default set of 10, got %d", len(posts))
	}
	if posts[0].Text != "Great company with strong fundamentals!" {
		t.Errorf("unexpected first post: %q", posts[0].Text)
	}
}

func TestSynthetic_VariationLookupNormalizesTickers(t *testing.T) {
	// Arrange: "$aapl" should hit the AAPL set, not the default one
	synth := source.NewSynthetic(1)
	q := domain.KeywordQuery{Keyword: "AAPL", Variations: []string{"$aapl"}}

	// Act
	posts, err := synth.Search(context.Background(), q, 100)

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(posts) == 0 || !strings.Contains(posts[0].Text, "$AAPL") {
		t.Errorf("expected AAPL dataset posts, got %+v", posts)
	}
}

func TestSynthetic_RespectsLimit(t *testing.T) {
	synth := source.NewSynthetic(1)
	q := domain.KeywordQuery{Keyword: "AAPL", Variations: []string{"AAPL", "Apple"}}

	posts, err := synth.Search(context.Background(), q, 5)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(posts) != 5 {
		t.Errorf("expected 5 posts, got %d", len(posts))
	}
}

func TestSynthetic_Reproducible(t *testing.T) {
	// Same seed, same ids and timestamps
	a := source.NewSynthetic(42)
	b := source.NewSynthetic(42)

	pa, _ := a.Search(context.Background(), domain.NewKeywordQuery("MSFT"), 100)
	pb, _ := b.Search(context.Background(), domain.NewKeywordQuery("MSFT"), 100)

	if len(pa) != len(pb) {
		t.Fatalf("lengths differ: %d vs %d", len(pa), len(pb))
	}
	for i := range pa {
		if pa[i].ID != pb[i].ID {
			t.Errorf("ids differ at %d: %v vs %v", i, pa[i].ID, pb[i].ID)
		}
	}
}
