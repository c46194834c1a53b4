// Package generator synthesizes realistic hotel records from weighted
// random choices. One latent category draw fixes every commercial field;
// shape is deterministic, values are not (unless a seeded Source is used).
package generator

import (
	"fmt"
	"math"
	"time"

	"staybook/internal/catalog"
	"staybook/internal/domain"
)

// Coordinate jitter anchor (Moscow) and amplitude.
const (
	anchorLat    = 55.7558
	anchorLng    = 37.6173
	coordsJitter = 0.05
)

const russianLocationBias = 0.7

type Generator struct {
	src Source
}

func New(src Source) *Generator {
	return &Generator{src: src}
}

// Hotels produces count hotels with ids 1..count. A negative count is the
// caller's bug and is rejected rather than left as undefined behavior.
func (g *Generator) Hotels(count int, location string) ([]domain.Hotel, error) {
	if count < 0 {
		return nil, fmt.Errorf("count must be >= 0, got %d: %w", count, domain.ErrInvalidArgument)
	}
	hotels := make([]domain.Hotel, 0, count)
	for id := 1; id <= count; id++ {
		hotels = append(hotels, g.Hotel(id, location))
	}
	return hotels, nil
}

// Hotel builds one fully-populated record. Pure computation, cannot fail.
func (g *Generator) Hotel(id int, location string) domain.Hotel {
	cat := g.drawCategory()

	country := ""
	if location == "" {
		location, country = g.drawLocation()
	}

	stars := starsFor(cat, g.src)
	pr := priceRanges[cat]
	price := pr.min + g.src.Intn(pr.max-pr.min+1)

	lat := anchorLat + (g.src.Float64()*2-1)*coordsJitter
	lng := anchorLng + (g.src.Float64()*2-1)*coordsJitter

	var chain *string
	if g.src.Float64() < 0.6 {
		c := hotelChains[g.src.Intn(len(hotelChains))]
		chain = &c
	}

	buckets := imageBuckets[cat]
	images := buckets[g.src.Intn(len(buckets))]

	return domain.Hotel{
		ID:                id,
		Name:              pick(g.src, nameTemplates[cat]) + " " + location,
		Location:          location,
		Address:           fmt.Sprintf("%s %d, %s", pick(g.src, streetNames), 1+g.src.Intn(200), location),
		Description:       pick(g.src, descriptions[cat]),
		Price:             price,
		Rating:            round1(3.0 + g.src.Float64()*2.0),
		Stars:             stars,
		AccommodationType: pick(g.src, accommodationTypes[cat]),
		MealType:          pick(g.src, mealTypes[cat]),
		Amenities:         amenityBundles[cat],
		Latitude:          lat,
		Longitude:         lng,
		Coordinates:       domain.GeoPoint{Lat: lat, Lng: lng},
		Reviews:           g.reviews(),
		HotelChain:        chain,
		HasSpecialOffers:  g.src.Float64() < 0.2,
		Images:            append([]string(nil), images...),
		Country:           country,
	}
}

// drawCategory samples the weighted distribution premium 0.1 / business 0.3 /
// standard 0.4 / budget 0.2 by walking cumulative weights.
func (g *Generator) drawCategory() domain.Category {
	u := g.src.Float64()
	cum := 0.0
	for _, cw := range categoryWeights {
		cum += cw.weight
		if u < cum {
			return cw.cat
		}
	}
	// float sums can land an epsilon short of 1.0
	return categoryWeights[len(categoryWeights)-1].cat
}

func (g *Generator) drawLocation() (city, country string) {
	if g.src.Float64() < russianLocationBias {
		return pick(g.src, catalog.RussianCities), ""
	}
	w := catalog.WorldCities[g.src.Intn(len(catalog.WorldCities))]
	return w.Name, w.Country
}

func (g *Generator) reviews() []domain.Review {
	n := g.src.Intn(6)
	if n == 0 {
		return nil
	}
	out := make([]domain.Review, n)
	for i := range out {
		daysAgo := g.src.Intn(365)
		out[i] = domain.Review{
			ID:      i + 1,
			Author:  pick(g.src, reviewAuthors),
			Rating:  3 + g.src.Intn(3),
			Comment: pick(g.src, reviewComments),
			Date:    time.Now().AddDate(0, 0, -daysAgo).Format("2006-01-02"),
		}
	}
	return out
}

func starsFor(cat domain.Category, src Source) int {
	switch cat {
	case domain.CategoryPremium:
		return 5
	case domain.CategoryBusiness:
		return 4
	case domain.CategoryStandard:
		return 3
	default:
		return 1 + src.Intn(2)
	}
}

func pick(src Source, list []string) string {
	return list[src.Intn(len(list))]
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}
