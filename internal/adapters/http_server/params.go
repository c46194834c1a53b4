package httpserver

import (
	"fmt"
	"net/url"
	"strconv"

	"staybook/internal/domain"
	"staybook/internal/query"
)

// Numeric query parameters are validated strictly: a malformed value is a
// 400, never silently ignored. The same policy applies on every endpoint.

func intParam(q url.Values, name string) (*int, error) {
	s := q.Get(name)
	if s == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be an integer", domain.ErrInvalidArgument, name)
	}
	return &n, nil
}

func floatParam(q url.Values, name string) (*float64, error) {
	s := q.Get(name)
	if s == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a number", domain.ErrInvalidArgument, name)
	}
	return &f, nil
}

func strParam(q url.Values, name string) *string {
	if s := q.Get(name); s != "" {
		return &s
	}
	return nil
}

// flagParam matches the lenient legacy contract: the filter engages only
// when the client sends the literal "true".
func flagParam(q url.Values, name string) *bool {
	if q.Get(name) == "true" {
		t := true
		return &t
	}
	return nil
}

func pageParams(q url.Values, defaultLimit int) (page, limit int, err error) {
	page, limit = 1, defaultLimit
	if p, err := intParam(q, "page"); err != nil {
		return 0, 0, err
	} else if p != nil {
		if *p < 1 {
			return 0, 0, fmt.Errorf("%w: page must be >= 1", domain.ErrInvalidArgument)
		}
		page = *p
	}
	if l, err := intParam(q, "limit"); err != nil {
		return 0, 0, err
	} else if l != nil {
		if *l < 1 || *l > 100 {
			return 0, 0, fmt.Errorf("%w: limit must be between 1 and 100", domain.ErrInvalidArgument)
		}
		limit = *l
	}
	return page, limit, nil
}

// catalogFilters parses the /api/hotels/all filter set (exact stars, no
// amenity flags).
func catalogFilters(q url.Values) (query.Filters, error) {
	var f query.Filters
	var err error
	if f.MinPrice, err = intParam(q, "minPrice"); err != nil {
		return f, err
	}
	if f.MaxPrice, err = intParam(q, "maxPrice"); err != nil {
		return f, err
	}
	if f.Stars, err = intParam(q, "stars"); err != nil {
		return f, err
	}
	f.AccommodationType = strParam(q, "accommodationType")
	f.MealType = strParam(q, "mealType")
	f.HasSpecialOffers = flagParam(q, "hasSpecialOffers")
	f.Country = strParam(q, "country")
	return f, nil
}

// searchFilters parses the /api/hotels filter set (minRating lower bound,
// chain equality, per-amenity flags).
func searchFilters(q url.Values) (query.Filters, error) {
	var f query.Filters
	var err error
	if f.MinPrice, err = intParam(q, "minPrice"); err != nil {
		return f, err
	}
	if f.MaxPrice, err = intParam(q, "maxPrice"); err != nil {
		return f, err
	}
	if f.MinRating, err = floatParam(q, "minRating"); err != nil {
		return f, err
	}
	f.AccommodationType = strParam(q, "accommodationType")
	f.MealType = strParam(q, "mealType")
	f.HotelChain = strParam(q, "hotelChain")
	f.HasSpecialOffers = flagParam(q, "hasSpecialOffers")
	for _, name := range domain.AmenityNames {
		if q.Get(name) == "true" {
			f.Amenities = append(f.Amenities, name)
		}
	}
	return f, nil
}
