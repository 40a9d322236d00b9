package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"alpha-radar/internal/domain"
	"alpha-radar/pkg/log"
)

const defaultSearchBaseURL = "https://api.twitter.com/2/tweets/search/recent"

// recentWindow is how far back discovery looks for posts.
const recentWindow = 3 * 24 * time.Hour

// LiveAPI queries the X recent-search endpoint with a bearer token.
type LiveAPI struct {
	baseURL string
	token   string
	client  *http.Client

	// now is swappable in tests so the start_time window is deterministic.
	now func() time.Time
}

// NewLiveAPI creates the live search adapter. A nil client falls back to a
// default with a sane timeout.
func NewLiveAPI(token string, client *http.Client) *LiveAPI {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &LiveAPI{
		baseURL: defaultSearchBaseURL,
		token:   token,
		client:  client,
		now:     time.Now,
	}
}

func (a *LiveAPI) Name() string { return "live_api" }

// Search runs the verified-only recent search. On a 429 it retries once
// after backing off; on a 400 it retries once with the verified filter
// relaxed and applies it client-side instead, since not every API tier
// accepts the is:verified operator.
func (a *LiveAPI) Search(ctx context.Context, q domain.KeywordQuery, limit int) ([]domain.Post, error) {
	query := q.Merged() + " -is:retweet lang:en is:verified"

	posts, err := a.search(ctx, query, limit, false)
	if errors.Is(err, domain.ErrBadQuery) {
		log.GlobalDebug("live api rejected query, relaxing verified filter", "keyword", q.Keyword)
		relaxed := q.Merged() + " -is:retweet lang:en"
		return a.search(ctx, relaxed, limit, true)
	}
	return posts, err
}

func (a *LiveAPI) search(ctx context.Context, query string, limit int, filterVerified bool) ([]domain.Post, error) {
	body, err := a.request(ctx, query, limit)
	if err != nil {
		return nil, err
	}

	var payload searchResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("decode search response: %w", err)
	}

	users := map[string]searchUser{}
	for _, u := range payload.Includes.Users {
		users[u.ID] = u
	}

	posts := make([]domain.Post, 0, len(payload.Data))
	for _, item := range payload.Data {
		user := users[item.AuthorID]
		if filterVerified && !user.Verified {
			continue
		}

		views := item.PublicMetrics.ImpressionCount
		if views == 0 {
			// Impressions are tier-gated; estimate from the counts we have.
			views = (item.PublicMetrics.LikeCount + item.PublicMetrics.RetweetCount) * 10
		}

		posts = append(posts, domain.Post{
			ID:        item.ID,
			Text:      item.Text,
			Author:    "@" + user.Username,
			Timestamp: item.CreatedAt,
			Likes:     item.PublicMetrics.LikeCount,
			Retweets:  item.PublicMetrics.RetweetCount,
			Views:     views,
			Verified:  user.Verified || !filterVerified,
		})
	}
	return posts, nil
}

// request performs the HTTP call with a single retry on rate limiting.
func (a *LiveAPI) request(ctx context.Context, query string, limit int) ([]byte, error) {
	for attempt := 0; ; attempt++ {
		status, body, err := a.do(ctx, query, limit)
		if err != nil {
			return nil, err
		}

		switch {
		case status == http.StatusOK:
			return body, nil
		case status == http.StatusTooManyRequests && attempt == 0:
			log.GlobalWarn("live api rate limited, backing off")
			select {
			case <-time.After(5 * time.Second):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		case status == http.StatusTooManyRequests:
			return nil, domain.ErrRateLimited
		case status == http.StatusBadRequest:
			return nil, domain.ErrBadQuery
		default:
			return nil, fmt.Errorf("%w: status %d", domain.ErrSearchFailed, status)
		}
	}
}

func (a *LiveAPI) do(ctx context.Context, query string, limit int) (int, []byte, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("max_results", strconv.Itoa(clampResults(limit)))
	params.Set("start_time", a.now().Add(-recentWindow).UTC().Format(time.RFC3339))
	params.Set("tweet.fields", "created_at,public_metrics,author_id")
	params.Set("expansions", "author_id")
	params.Set("user.fields", "username,verified")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return 0, nil, err
	}
	req.Header.Set("Authorization", "Bearer "+a.token)

	resp, err := a.client.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%w: %v", domain.ErrSearchFailed, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, body, nil
}

// clampResults keeps max_results inside the endpoint's accepted 10..100 range.
func clampResults(limit int) int {
	if limit < 10 {
		return 10
	}
	if limit > 100 {
		return 100
	}
	return limit
}

type searchResponse struct {
	Data []struct {
		ID            string `json:"id"`
		Text          string `json:"text"`
		AuthorID      string `json:"author_id"`
		CreatedAt     string `json:"created_at"`
		PublicMetrics struct {
			RetweetCount    int `json:"retweet_count"`
			LikeCount       int `json:"like_count"`
			ImpressionCount int `json:"impression_count"`
		} `json:"public_metrics"`
	} `json:"data"`
	Includes struct {
		Users []searchUser `json:"users"`
	} `json:"includes"`
}

type searchUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Verified bool   `json:"verified"`
}
