// Package catalog holds the static reference data behind the generator and
// the city endpoints: the destination catalog plus the location pools the
// generator draws from when no location is supplied.
package catalog

import "staybook/internal/domain"

var cities = []domain.City{
	{ID: 1, Name: "Moscow", Country: "Russia", Description: "The capital with the Kremlin, Red Square and endless museums.", Image: "/images/cities/moscow.jpg", Slug: "moscow", PopularDestination: true},
	{ID: 2, Name: "Saint Petersburg", Country: "Russia", Description: "Imperial palaces, canals and the Hermitage.", Image: "/images/cities/saint-petersburg.jpg", Slug: "saint-petersburg", PopularDestination: true},
	{ID: 3, Name: "Sochi", Country: "Russia", Description: "Black Sea resort town framed by the Caucasus mountains.", Image: "/images/cities/sochi.jpg", Slug: "sochi", PopularDestination: true},
	{ID: 4, Name: "Kazan", Country: "Russia", Description: "Volga city where Europe and Asia meet.", Image: "/images/cities/kazan.jpg", Slug: "kazan", PopularDestination: true},
	{ID: 5, Name: "Kaliningrad", Country: "Russia", Description: "Baltic exclave with Prussian heritage and amber beaches.", Image: "/images/cities/kaliningrad.jpg", Slug: "kaliningrad", PopularDestination: false},
	{ID: 6, Name: "Yekaterinburg", Country: "Russia", Description: "Ural gateway on the border of two continents.", Image: "/images/cities/yekaterinburg.jpg", Slug: "yekaterinburg", PopularDestination: false},
	{ID: 7, Name: "Nizhny Novgorod", Country: "Russia", Description: "Historic kremlin above the Volga-Oka confluence.", Image: "/images/cities/nizhny-novgorod.jpg", Slug: "nizhny-novgorod", PopularDestination: false},
	{ID: 8, Name: "Vladivostok", Country: "Russia", Description: "Pacific port at the end of the Trans-Siberian railway.", Image: "/images/cities/vladivostok.jpg", Slug: "vladivostok", PopularDestination: false},
	{ID: 9, Name: "Paris", Country: "France", Description: "Cafés, boulevards and the Eiffel Tower.", Image: "/images/cities/paris.jpg", Slug: "paris", PopularDestination: true},
	{ID: 10, Name: "Rome", Country: "Italy", Description: "Two and a half thousand years of history in open air.", Image: "/images/cities/rome.jpg", Slug: "rome", PopularDestination: true},
	{ID: 11, Name: "Barcelona", Country: "Spain", Description: "Gaudí, beaches and late dinners.", Image: "/images/cities/barcelona.jpg", Slug: "barcelona", PopularDestination: false},
	{ID: 12, Name: "Istanbul", Country: "Turkey", Description: "A city spanning two continents and two empires.", Image: "/images/cities/istanbul.jpg", Slug: "istanbul", PopularDestination: true},
	{ID: 13, Name: "Dubai", Country: "UAE", Description: "Desert skyline, souks and year-round sun.", Image: "/images/cities/dubai.jpg", Slug: "dubai", PopularDestination: false},
	{ID: 14, Name: "Prague", Country: "Czech Republic", Description: "Gothic spires and the Charles Bridge.", Image: "/images/cities/prague.jpg", Slug: "prague", PopularDestination: false},
}

// AllCities returns a copy of the catalog so callers cannot mutate it.
func AllCities() []domain.City {
	out := make([]domain.City, len(cities))
	copy(out, cities)
	return out
}

// PopularCities returns only the destinations flagged popular.
func PopularCities() []domain.City {
	var out []domain.City
	for _, c := range cities {
		if c.PopularDestination {
			out = append(out, c)
		}
	}
	return out
}

// CityBySlug looks a city up by its URL-stable identifier.
func CityBySlug(slug string) (domain.City, bool) {
	for _, c := range cities {
		if c.Slug == slug {
			return c, true
		}
	}
	return domain.City{}, false
}

// RussianCities is drawn with 70% probability when the generator picks a
// location itself.
var RussianCities = []string{
	"Moscow", "Saint Petersburg", "Sochi", "Kazan", "Kaliningrad",
	"Yekaterinburg", "Nizhny Novgorod", "Vladivostok", "Samara", "Rostov-on-Don",
}

// WorldCities carry their country so generated records can expose it.
var WorldCities = []struct {
	Name    string
	Country string
}{
	{"Paris", "France"},
	{"Rome", "Italy"},
	{"Barcelona", "Spain"},
	{"Istanbul", "Turkey"},
	{"Dubai", "UAE"},
	{"Prague", "Czech Republic"},
	{"Vienna", "Austria"},
	{"Amsterdam", "Netherlands"},
	{"Lisbon", "Portugal"},
	{"Bangkok", "Thailand"},
}
