package source_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"alpha-radar/internal/adapters/source"
	"alpha-radar/internal/domain"
)

// stubAdapter is a configurable source for chain tests.
type stubAdapter struct {
	name  string
	posts []domain.Post
	err   error
	calls int
}

func (s *stubAdapter) Search(ctx context.Context, q domain.KeywordQuery, limit int) ([]domain.Post, error) {
	s.calls++
	return s.posts, s.err
}

func (s *stubAdapter) Name() string { return s.name }

func TestChain_FirstAdapterWins(t *testing.T) {
	// Arrange
	first := &stubAdapter{name: "live_api", posts: []domain.Post{{ID: "1", Text: "AAPL up"}}}
	second := &stubAdapter{name: "scraper"}
	chain := source.NewChain(time.Second, first, second)

	// Act
	posts, src, err := chain.Discover(context.Background(),
		[]domain.KeywordQuery{domain.NewKeywordQuery("AAPL")}, 10)

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(posts) != 1 {
		t.Fatalf("expected 1 post, got %d", len(posts))
	}
	if src != "live_api" {
		t.Errorf("source: got %v, want live_api", src)
	}
	if second.calls != 0 {
		t.Errorf("fallback should not run, got %d calls", second.calls)
	}
}

func TestChain_FallsThroughOnError(t *testing.T) {
	// Arrange
	first := &stubAdapter{name: "live_api", err: errors.New("boom")}
	second := &stubAdapter{name: "scraper", posts: []domain.Post{{ID: "2", Text: "TSLA down"}}}
	chain := source.NewChain(time.Second, first, second)

	// Act
	posts, src, err := chain.Discover(context.Background(),
		[]domain.KeywordQuery{domain.NewKeywordQuery("TSLA")}, 10)

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(posts) != 1 || src != "scraper" {
		t.Errorf("got %d posts from %q, want 1 from scraper", len(posts), src)
	}
}

func TestChain_FallsThroughOnEmptyResult(t *testing.T) {
	// Arrange: first source works but finds nothing
	first := &stubAdapter{name: "live_api"}
	second := &stubAdapter{name: "synthetic", posts: []domain.Post{{ID: "3", Text: "MSFT flat"}}}
	chain := source.NewChain(time.Second, first, second)

	// Act
	posts, src, err := chain.Discover(context.Background(),
		[]domain.KeywordQuery{domain.NewKeywordQuery("MSFT")}, 10)

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(posts) != 1 || src != "synthetic" {
		t.Errorf("got %d posts from %q, want 1 from synthetic", len(posts), src)
	}
}

func TestChain_AllSourcesFailYieldsEmpty(t *testing.T) {
	// Arrange
	first := &stubAdapter{name: "live_api", err: errors.New("down")}
	second := &stubAdapter{name: "scraper", err: errors.New("also down")}
	chain := source.NewChain(time.Second, first, second)

	// Act
	posts, src, err := chain.Discover(context.Background(),
		[]domain.KeywordQuery{domain.NewKeywordQuery("GOOGL")}, 10)

	// Assert: an empty discovery is a valid outcome, not an error
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(posts) != 0 {
		t.Errorf("expected no posts, got %d", len(posts))
	}
	if src != "none" {
		t.Errorf("source: got %v, want none", src)
	}
}

func TestChain_TagsPostsWithKeyword(t *testing.T) {
	// Arrange
	adapter := &stubAdapter{name: "synthetic", posts: []domain.Post{
		{ID: "4", Text: "Apple earnings beat expectations"},
	}}
	chain := source.NewChain(time.Second, adapter)
	q := domain.KeywordQuery{Keyword: "AAPL", Variations: []string{"AAPL", "Apple"}}

	// Act
	posts, _, err := chain.Discover(context.Background(), []domain.KeywordQuery{q}, 10)

	// Assert
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if posts[0].OriginalKeyword != "AAPL" {
		t.Errorf("OriginalKeyword: got %v", posts[0].OriginalKeyword)
	}
	if posts[0].MatchedVariation != "Apple" {
		t.Errorf("MatchedVariation: got %v, want Apple", posts[0].MatchedVariation)
	}
}

func TestChain_NoKeywords(t *testing.T) {
	chain := source.NewChain(time.Second, &stubAdapter{name: "synthetic"})

	_, _, err := chain.Discover(context.Background(), nil, 10)

	if !errors.Is(err, domain.ErrNoKeywords) {
		t.Errorf("got %v, want ErrNoKeywords", err)
	}
}

func TestSelect_AdapterOrder(t *testing.T) {
	live := &stubAdapter{name: "live_api"}
	scrape := &stubAdapter{name: "scraper"}
	synth := &stubAdapter{name: "synthetic"}

	cases := []struct {
		name string
		opts source.SelectOptions
		want []string
	}{
		{"forced synthetic", source.SelectOptions{ForceSynthetic: true, HasLiveCreds: true}, []string{"synthetic"}},
		{"forced scraper", source.SelectOptions{ForceScraper: true}, []string{"scraper"}},
		{"live creds", source.SelectOptions{HasLiveCreds: true}, []string{"live_api", "scraper"}},
		{"nothing configured", source.SelectOptions{}, []string{"synthetic"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := source.Select(tc.opts, live, scrape, synth)

			if len(got) != len(tc.want) {
				t.Fatalf("got %d adapters, want %d", len(got), len(tc.want))
			}
			for i := range got {
				if got[i].Name() != tc.want[i] {
					t.Errorf("adapter %d: got %v, want %v", i, got[i].Name(), tc.want[i])
				}
			}
		})
	}
}
