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

// UnsplashClient queries the Unsplash photo search API. Same functional
// contract as PexelsClient; only auth and payload shape differ.
type UnsplashClient struct {
	base string
	key  string
	hc   *http.Client
	rl   *rate.Limiter
}

func NewUnsplash(base, key string, rps int) *UnsplashClient {
	if rps <= 0 {
		rps = 2
	}
	return &UnsplashClient{
		base: base,
		key:  key,
		hc:   &http.Client{Timeout: defaultHTTPTimeout},
		rl:   rate.NewLimiter(rate.Limit(rps), rps),
	}
}

func (c *UnsplashClient) Name() string { return "unsplash" }

func (c *UnsplashClient) Search(ctx context.Context, query string, count int) ([]string, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return nil, err
	}

	u := fmt.Sprintf("%s/search/photos?query=%s&per_page=%d", c.base, url.QueryEscape(query), count)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Client-ID "+c.key)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		observability.ObserveExternal(c.Name(), "search", 0, time.Since(start))
		return nil, fmt.Errorf("unsplash search: %w: %w", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()
	observability.ObserveExternal(c.Name(), "search", resp.StatusCode, time.Since(start))

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("unsplash search: %w: status %d", domain.ErrUpstream, resp.StatusCode)
	}

	var body struct {
		Results []struct {
			URLs struct {
				Regular string `json:"regular"`
			} `json:"urls"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("unsplash search: %w: %w", domain.ErrUpstream, err)
	}

	urls := make([]string, 0, len(body.Results))
	for _, r := range body.Results {
		if r.URLs.Regular != "" {
			urls = append(urls, r.URLs.Regular)
		}
	}
	return urls, nil
}
