package app

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"time"

	"staybook/internal/domain"
	"staybook/internal/query"
)

// SearchAllParams is the catalog-wide query: filters, sort and pagination.
type SearchAllParams struct {
	Filters query.Filters
	Sort    query.SortKey
	Page    int
	Limit   int
}

// HotelsPage is the /api/hotels/all response envelope.
type HotelsPage struct {
	Hotels     []domain.Hotel `json:"hotels"`
	Total      int            `json:"total"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	TotalPages int            `json:"totalPages"`
}

// searchBatchSize is how many hotels a location search materializes before
// filtering.
const searchBatchSize = 12

// QueryService answers read queries over the population, caching response
// pages for a short TTL.
type QueryService struct {
	store    domain.HotelSource
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewQueryService(store domain.HotelSource, cache domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{store: store, cache: cache, cacheTTL: ttl}
}

// SearchAll filters, sorts and paginates the full population, in that
// order. The population slice itself is never reordered.
func (s *QueryService) SearchAll(ctx context.Context, p SearchAllParams) (HotelsPage, error) {
	key := cacheKey("hotels:all", p)
	var page HotelsPage
	if ok, _ := s.cache.Get(ctx, key, &page); ok {
		return page, nil
	}

	filtered := query.Apply(s.store.All(ctx), p.Filters)
	query.Sort(filtered, p.Sort)
	pageSlice, totalPages := query.Paginate(filtered, p.Page, p.Limit)

	page = HotelsPage{
		Hotels:     pageSlice,
		Total:      len(filtered),
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: totalPages,
	}
	_ = s.cache.Set(ctx, key, page, int(s.cacheTTL.Seconds()))
	return page, nil
}

// SearchLocation generates a fresh batch for location, then filters and
// sorts it. No pagination envelope on this path.
func (s *QueryService) SearchLocation(ctx context.Context, location string, f query.Filters, sortKey query.SortKey) ([]domain.Hotel, error) {
	key := cacheKey("hotels:loc:"+location, struct {
		F query.Filters
		S query.SortKey
	}{f, sortKey})
	var hotels []domain.Hotel
	if ok, _ := s.cache.Get(ctx, key, &hotels); ok {
		return hotels, nil
	}

	hotels = query.Apply(s.store.ForLocation(ctx, location, searchBatchSize), f)
	query.Sort(hotels, sortKey)

	_ = s.cache.Set(ctx, key, hotels, int(s.cacheTTL.Seconds()))
	return hotels, nil
}

func (s *QueryService) GetHotel(ctx context.Context, id int) (domain.Hotel, error) {
	return s.store.ByID(ctx, id)
}

// cacheKey hashes the marshalled params so any filter combination gets its
// own entry without hand-building key strings.
func cacheKey(prefix string, v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return prefix
	}
	sum := sha1.Sum(b)
	return prefix + ":" + hex.EncodeToString(sum[:])
}
