package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staybook/internal/domain"
	"staybook/internal/generator"
	"staybook/internal/query"
)

func ptr[T any](v T) *T { return &v }

func population(t *testing.T, n int) []domain.Hotel {
	t.Helper()
	g := generator.New(generator.NewSeededSource(404))
	hs, err := g.Hotels(n, "")
	require.NoError(t, err)
	return hs
}

func TestFilters_Conjunction(t *testing.T) {
	hotels := population(t, 400)
	f := query.Filters{
		MinPrice:          ptr(5000),
		MaxPrice:          ptr(40000),
		Stars:             ptr(4),
		AccommodationType: ptr("hotel"),
	}

	got := query.Apply(hotels, f)
	for _, h := range got {
		assert.GreaterOrEqual(t, h.Price, 5000)
		assert.LessOrEqual(t, h.Price, 40000)
		assert.Equal(t, 4, h.Stars)
		assert.Equal(t, "hotel", h.AccommodationType)
	}

	// nothing satisfying all four predicates was dropped
	want := 0
	for _, h := range hotels {
		if h.Price >= 5000 && h.Price <= 40000 && h.Stars == 4 && h.AccommodationType == "hotel" {
			want++
		}
	}
	assert.Len(t, got, want)
}

func TestFilters_AmenityFlags(t *testing.T) {
	hotels := population(t, 300)
	got := query.Apply(hotels, query.Filters{Amenities: []string{"pool", "spa"}})
	require.NotEmpty(t, got)
	for _, h := range got {
		assert.True(t, h.Amenities.Pool)
		assert.True(t, h.Amenities.Spa)
		// pool+spa only exist in the premium bundle
		assert.Equal(t, domain.CategoryPremium, domain.CategoryOf(h))
	}
}

func TestFilters_CountrySubstringCaseInsensitive(t *testing.T) {
	hotels := []domain.Hotel{
		{ID: 1, Country: "France"},
		{ID: 2, Country: "Italy"},
		{ID: 3, Country: ""},
	}
	got := query.Apply(hotels, query.Filters{Country: ptr("fRaN")})
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].ID)
}

func TestFilters_HotelChain(t *testing.T) {
	chain := "Azimut"
	other := "Hilton"
	hotels := []domain.Hotel{
		{ID: 1, HotelChain: &chain},
		{ID: 2, HotelChain: &other},
		{ID: 3, HotelChain: nil},
	}
	got := query.Apply(hotels, query.Filters{HotelChain: ptr("Azimut")})
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].ID)
}

func TestSort_StableAndRepeatable(t *testing.T) {
	hotels := population(t, 200)

	a := append([]domain.Hotel(nil), hotels...)
	query.Sort(a, query.SortPriceAsc)
	for i := 1; i < len(a); i++ {
		assert.LessOrEqual(t, a[i-1].Price, a[i].Price)
	}

	// sorting an already-sorted copy again must not reorder anything
	b := append([]domain.Hotel(nil), a...)
	query.Sort(b, query.SortPriceAsc)
	assert.Equal(t, a, b)

	// equal prices retain generator order
	for i := 1; i < len(a); i++ {
		if a[i-1].Price == a[i].Price {
			assert.Less(t, a[i-1].ID, a[i].ID)
		}
	}
}

func TestSort_DefaultIsRatingDesc(t *testing.T) {
	hotels := population(t, 100)
	query.Sort(hotels, query.ParseSortKey("anything-else"))
	for i := 1; i < len(hotels); i++ {
		assert.GreaterOrEqual(t, hotels[i-1].Rating, hotels[i].Rating)
	}
}

func TestParseSortKey_BothSpellings(t *testing.T) {
	assert.Equal(t, query.SortPriceAsc, query.ParseSortKey("priceAsc"))
	assert.Equal(t, query.SortPriceAsc, query.ParseSortKey("price_asc"))
	assert.Equal(t, query.SortPriceDesc, query.ParseSortKey("priceDesc"))
	assert.Equal(t, query.SortPriceDesc, query.ParseSortKey("price_desc"))
	assert.Equal(t, query.SortRatingDesc, query.ParseSortKey(""))
	assert.Equal(t, query.SortRatingDesc, query.ParseSortKey("rating"))
}

func TestPaginate_Idempotence(t *testing.T) {
	hotels := population(t, 237)
	f := query.Filters{MinPrice: ptr(3000)}
	filtered := query.Apply(hotels, f)
	query.Sort(filtered, query.SortPriceDesc)

	const limit = 10
	var walked []domain.Hotel
	_, totalPages := query.Paginate(filtered, 1, limit)
	for p := 1; p <= totalPages; p++ {
		pageSlice, tp := query.Paginate(filtered, p, limit)
		assert.Equal(t, totalPages, tp)
		walked = append(walked, pageSlice...)
	}

	// concatenating every page reproduces the filtered+sorted set exactly
	assert.Equal(t, filtered, walked)
}

func TestPaginate_PastEnd(t *testing.T) {
	hotels := population(t, 30)
	pageSlice, totalPages := query.Paginate(hotels, 4, 10)
	assert.Empty(t, pageSlice)
	assert.Equal(t, 3, totalPages)

	pageSlice, totalPages = query.Paginate(hotels, 99, 10)
	assert.Empty(t, pageSlice)
	assert.Equal(t, 3, totalPages)
}

func TestPaginate_ThousandByTen(t *testing.T) {
	hotels := population(t, 1000)
	pageSlice, totalPages := query.Paginate(hotels, 1, 10)
	assert.Len(t, pageSlice, 10)
	assert.Equal(t, 100, totalPages)
}
