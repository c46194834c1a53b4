// Package query applies conjunctive filters, a stable single-key sort and
// 1-indexed pagination to hotel collections, always in that order.
package query

import (
	"math"
	"sort"
	"strings"

	"staybook/internal/domain"
)

// Filters are conjunctive: a hotel must satisfy every non-nil predicate.
type Filters struct {
	MinPrice          *int
	MaxPrice          *int
	Stars             *int
	MinRating         *float64
	AccommodationType *string
	MealType          *string
	HotelChain        *string
	HasSpecialOffers  *bool
	Country           *string
	Amenities         []string
}

// Match reports whether h passes every supplied predicate.
func (f Filters) Match(h domain.Hotel) bool {
	if f.MinPrice != nil && h.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && h.Price > *f.MaxPrice {
		return false
	}
	if f.Stars != nil && h.Stars != *f.Stars {
		return false
	}
	if f.MinRating != nil && h.Rating < *f.MinRating {
		return false
	}
	if f.AccommodationType != nil && h.AccommodationType != *f.AccommodationType {
		return false
	}
	if f.MealType != nil && h.MealType != *f.MealType {
		return false
	}
	if f.HotelChain != nil {
		if h.HotelChain == nil || *h.HotelChain != *f.HotelChain {
			return false
		}
	}
	if f.HasSpecialOffers != nil && h.HasSpecialOffers != *f.HasSpecialOffers {
		return false
	}
	if f.Country != nil &&
		!strings.Contains(strings.ToLower(h.Country), strings.ToLower(*f.Country)) {
		return false
	}
	for _, a := range f.Amenities {
		if !h.Amenities.Has(a) {
			return false
		}
	}
	return true
}

// Apply returns the hotels passing f, in input order.
func Apply(hotels []domain.Hotel, f Filters) []domain.Hotel {
	out := make([]domain.Hotel, 0, len(hotels))
	for _, h := range hotels {
		if f.Match(h) {
			out = append(out, h)
		}
	}
	return out
}

type SortKey int

const (
	SortRatingDesc SortKey = iota // default
	SortPriceAsc
	SortPriceDesc
)

// ParseSortKey accepts both naming styles that clients send.
func ParseSortKey(s string) SortKey {
	switch s {
	case "priceAsc", "price_asc":
		return SortPriceAsc
	case "priceDesc", "price_desc":
		return SortPriceDesc
	default:
		return SortRatingDesc
	}
}

// Sort orders hotels in place. The sort is stable so that equal keys retain
// generator order; there is no secondary tie-break key.
func Sort(hotels []domain.Hotel, key SortKey) {
	switch key {
	case SortPriceAsc:
		sort.SliceStable(hotels, func(i, j int) bool { return hotels[i].Price < hotels[j].Price })
	case SortPriceDesc:
		sort.SliceStable(hotels, func(i, j int) bool { return hotels[i].Price > hotels[j].Price })
	default:
		sort.SliceStable(hotels, func(i, j int) bool { return hotels[i].Rating > hotels[j].Rating })
	}
}

// Paginate slices out page (1-indexed) of size limit and returns the total
// page count over the whole input.
func Paginate(hotels []domain.Hotel, page, limit int) ([]domain.Hotel, int) {
	totalPages := int(math.Ceil(float64(len(hotels)) / float64(limit)))
	start := (page - 1) * limit
	if start >= len(hotels) {
		return nil, totalPages
	}
	end := start + limit
	if end > len(hotels) {
		end = len(hotels)
	}
	return hotels[start:end], totalPages
}
