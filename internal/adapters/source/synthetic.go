package source

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"alpha-radar/internal/domain"
)

// Synthetic serves canned posts so the pipeline works end to end with no
// credentials and no browser. Posts get fresh ids and timestamps inside the
// recent window on every call.
type Synthetic struct {
	mu  sync.Mutex
	rng *rand.Rand
	now func() time.Time
}

// NewSynthetic creates the dataset-backed adapter. The seed makes generated
// ids and timestamps reproducible in tests; pass time.Now().UnixNano() in
// production wiring.
func NewSynthetic(seed int64) *Synthetic {
	return &Synthetic{
		rng: rand.New(rand.NewSource(seed)),
		now: time.Now,
	}
}

func (s *Synthetic) Name() string { return "synthetic" }

// Search looks up every variation in the dataset, like a real search would
// hit each spelling. Unknown variations fall back to the default set so a
// scan never comes back empty.
func (s *Synthetic) Search(ctx context.Context, q domain.KeywordQuery, limit int) ([]domain.Post, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	var posts []domain.Post

	for _, variation := range q.Variations {
		normalized := domain.NormalizeKeyword(variation)
		seeds, ok := syntheticDB[normalized]
		if !ok {
			seeds = syntheticDB["default"]
		}

		for _, seed := range seeds {
			if len(posts) >= limit {
				return posts, nil
			}

			// Random point inside the past 3 days so window filtering
			// behaves the same as with live data.
			daysAgo := s.rng.Intn(3)
			hoursAgo := s.rng.Intn(24)
			ts := now.Add(-time.Duration(daysAgo)*24*time.Hour - time.Duration(hoursAgo)*time.Hour)

			posts = append(posts, domain.Post{
				ID:        fmt.Sprintf("post_%s_%04d", normalized, 1000+s.rng.Intn(9000)),
				Text:      seed.Text,
				Author:    seed.Author,
				Timestamp: ts.Format(time.RFC3339),
				Likes:     seed.Likes,
				Retweets:  seed.Retweets,
				Views:     seed.Views,
				Verified:  true,
			})
		}
	}
	return posts, nil
}
