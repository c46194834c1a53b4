// Package images adapts third-party keyword photo search behind the
// domain.ImageProvider port. Providers are interchangeable; all failures
// degrade to placeholders at the resolver, never to caller-visible errors.
package images

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"staybook/internal/adapters/observability"
	"staybook/internal/domain"
)

const defaultHTTPTimeout = 10 * time.Second

// PexelsClient queries the Pexels photo search API.
type PexelsClient struct {
	base string
	key  string
	hc   *http.Client
	rl   *rate.Limiter
}

func NewPexels(base, key string, rps int) *PexelsClient {
	if rps <= 0 {
		rps = 2
	}
	return &PexelsClient{
		base: base,
		key:  key,
		hc:   &http.Client{Timeout: defaultHTTPTimeout},
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}
}

func (c *PexelsClient) Name() string { return "pexels" }

// Search runs a single attempt; retrying is pointless for a best-effort
// decorator that has a placeholder fallback anyway.
func (c *PexelsClient) Search(ctx context.Context, query string, count int) ([]string, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return nil, err
	}

	u := fmt.Sprintf("%s/v1/search?query=%s&per_page=%d", c.base, url.QueryEscape(query), count)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", c.key)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal(c.Name(), "search", 0, time.Since(start))
		return nil, fmt.Errorf("pexels search: %w: %w", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()
	observability.ObserveExternal(c.Name(), "search", resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("pexels search: %w: status %d", domain.ErrUpstream, resp.StatusCode)
	}

	var body struct {
		Photos []struct {
			Src struct {
				Large string `json:"large"`
			} `json:"src"`
		} `json:"photos"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("pexels search: %w: %w", domain.ErrUpstream, err)
	}

	urls := make([]string, 0, len(body.Photos))
	for _, p := range body.Photos {
		if p.Src.Large != "" {
			urls = append(urls, p.Src.Large)
		}
	}
	return urls, nil
}
