package images_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staybook/internal/adapters/images"
	"staybook/internal/domain"
)

func TestPexels_Search(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/search", r.URL.Path)
		assert.Equal(t, "Sochi hotel", r.URL.Query().Get("query"))
		assert.Equal(t, "secret", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"photos": []map[string]any{
				{"src": map[string]any{"large": "https://img.example/1.jpg"}},
				{"src": map[string]any{"large": "https://img.example/2.jpg"}},
			},
		})
	}))
	defer ts.Close()

	c := images.NewPexels(ts.URL, "secret", 100)
	urls, err := c.Search(context.Background(), "Sochi hotel", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://img.example/1.jpg", "https://img.example/2.jpg"}, urls)
}

func TestPexels_UpstreamStatusIsError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	c := images.NewPexels(ts.URL, "secret", 100)
	_, err := c.Search(context.Background(), "anything", 3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUpstream))
}

func TestUnsplash_Search(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/photos", r.URL.Path)
		assert.Equal(t, "Client-ID token", r.Header.Get("Authorization"))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{
				{"urls": map[string]any{"regular": "https://unsplash.example/a.jpg"}},
			},
		})
	}))
	defer ts.Close()

	c := images.NewUnsplash(ts.URL, "token", 100)
	urls, err := c.Search(context.Background(), "Kazan hotel", 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"https://unsplash.example/a.jpg"}, urls)
}

// ---- resolver ----

type stubProvider struct {
	name  string
	urls  []string
	err   error
	calls int32
}

func (s *stubProvider) Name() string { return s.name }
func (s *stubProvider) Search(ctx context.Context, query string, count int) ([]string, error) {
	atomic.AddInt32(&s.calls, 1)
	if s.err != nil {
		return nil, s.err
	}
	if len(s.urls) > count {
		return s.urls[:count], nil
	}
	return s.urls, nil
}

func TestResolver_FallsThroughProviders(t *testing.T) {
	broken := &stubProvider{name: "broken", err: domain.ErrUpstream}
	working := &stubProvider{name: "working", urls: []string{"https://ok/1.jpg"}}
	r := images.NewResolver([]domain.ImageProvider{broken, working}, 2)

	urls := r.Resolve(context.Background(), "Moscow hotel", 1)
	assert.Equal(t, []string{"https://ok/1.jpg"}, urls)
	assert.EqualValues(t, 1, atomic.LoadInt32(&broken.calls))
}

func TestResolver_AllFailuresYieldNil(t *testing.T) {
	r := images.NewResolver([]domain.ImageProvider{
		&stubProvider{name: "a", err: errors.New("boom")},
		&stubProvider{name: "b", err: errors.New("boom")},
	}, 2)

	// an error never escapes; the caller just gets nothing
	assert.Nil(t, r.Resolve(context.Background(), "q", 3))
}

func TestResolver_EmptyResultTreatedLikeFailure(t *testing.T) {
	empty := &stubProvider{name: "empty"}
	full := &stubProvider{name: "full", urls: []string{"https://ok/2.jpg"}}
	r := images.NewResolver([]domain.ImageProvider{empty, full}, 2)

	urls := r.Resolve(context.Background(), "q", 1)
	assert.Equal(t, []string{"https://ok/2.jpg"}, urls)
}

func TestResolver_DecorateKeepsPlaceholdersOnFailure(t *testing.T) {
	r := images.NewResolver([]domain.ImageProvider{
		&stubProvider{name: "down", err: domain.ErrUpstream},
	}, 3)

	hotels := []domain.Hotel{
		{ID: 1, Location: "Sochi", Images: []string{"/images/hotels/standard-1.jpg"}},
		{ID: 2, Location: "Kazan", Images: []string{"/images/hotels/budget-1.jpg"}},
	}
	r.Decorate(context.Background(), hotels)

	assert.Equal(t, []string{"/images/hotels/standard-1.jpg"}, hotels[0].Images)
	assert.Equal(t, []string{"/images/hotels/budget-1.jpg"}, hotels[1].Images)
}

func TestResolver_DecorateReplacesWhenProviderResponds(t *testing.T) {
	p := &stubProvider{name: "up", urls: []string{"https://ok/x.jpg", "https://ok/y.jpg"}}
	r := images.NewResolver([]domain.ImageProvider{p}, 2)

	hotels := make([]domain.Hotel, 20)
	for i := range hotels {
		hotels[i] = domain.Hotel{ID: i + 1, Location: "Moscow", Images: []string{"/p.jpg", "/q.jpg"}}
	}
	r.Decorate(context.Background(), hotels)

	for _, h := range hotels {
		assert.Equal(t, []string{"https://ok/x.jpg", "https://ok/y.jpg"}, h.Images)
	}
	assert.EqualValues(t, 20, atomic.LoadInt32(&p.calls))
}
