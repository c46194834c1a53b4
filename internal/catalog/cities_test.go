package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"staybook/internal/catalog"
)

func TestCityBySlug(t *testing.T) {
	c, ok := catalog.CityBySlug("saint-petersburg")
	require.True(t, ok)
	assert.Equal(t, "Saint Petersburg", c.Name)
	assert.Equal(t, "Russia", c.Country)

	_, ok = catalog.CityBySlug("nowhere")
	assert.False(t, ok)
}

func TestAllCities_ReturnsDetachedCopy(t *testing.T) {
	a := catalog.AllCities()
	require.NotEmpty(t, a)
	a[0].Name = "MUTATED"

	b := catalog.AllCities()
	assert.NotEqual(t, "MUTATED", b[0].Name)
}

func TestPopularCities_OnlyFlagged(t *testing.T) {
	popular := catalog.PopularCities()
	require.NotEmpty(t, popular)
	assert.Less(t, len(popular), len(catalog.AllCities()))
	for _, c := range popular {
		assert.True(t, c.PopularDestination)
	}
}

func TestSlugsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, c := range catalog.AllCities() {
		assert.False(t, seen[c.Slug], "duplicate slug %q", c.Slug)
		seen[c.Slug] = true
	}
}
