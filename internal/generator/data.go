package generator

import "staybook/internal/domain"

// categoryWeights is the fixed discrete distribution the category draw
// samples from, via cumulative weights against a uniform [0,1) draw.
var categoryWeights = []struct {
	cat    domain.Category
	weight float64
}{
	{domain.CategoryPremium, 0.1},
	{domain.CategoryBusiness, 0.3},
	{domain.CategoryStandard, 0.4},
	{domain.CategoryBudget, 0.2},
}

type priceRange struct{ min, max int }

var priceRanges = map[domain.Category]priceRange{
	domain.CategoryPremium:  {35000, 120000},
	domain.CategoryBusiness: {15000, 35000},
	domain.CategoryStandard: {5000, 15000},
	domain.CategoryBudget:   {1500, 5000},
}

var accommodationTypes = map[domain.Category][]string{
	domain.CategoryPremium:  {domain.AccommodationHotel, domain.AccommodationResort, domain.AccommodationVilla},
	domain.CategoryBusiness: {domain.AccommodationHotel, domain.AccommodationApartment},
	domain.CategoryStandard: {domain.AccommodationHotel, domain.AccommodationApartment, domain.AccommodationGuesthouse},
	domain.CategoryBudget:   {domain.AccommodationHostel, domain.AccommodationGuesthouse, domain.AccommodationApartment},
}

var mealTypes = map[domain.Category][]string{
	domain.CategoryPremium:  {domain.MealHalfBoard, domain.MealFullBoard, domain.MealAllInclusive},
	domain.CategoryBusiness: {domain.MealBreakfast, domain.MealHalfBoard},
	domain.CategoryStandard: {domain.MealNone, domain.MealBreakfast},
	domain.CategoryBudget:   {domain.MealNone, domain.MealBreakfast},
}

// amenityBundles are the only four amenity combinations that exist; a hotel
// gets its category's bundle wholesale.
var amenityBundles = map[domain.Category]domain.Amenities{
	domain.CategoryPremium: {
		WiFi: true, Parking: true, Pool: true, Gym: true, Restaurant: true,
		Spa: true, AirConditioning: true, PetFriendly: true, ConferenceRoom: true, Transfer: true,
	},
	domain.CategoryBusiness: {
		WiFi: true, Parking: true, Gym: true, Restaurant: true,
		AirConditioning: true, ConferenceRoom: true, Transfer: true,
	},
	domain.CategoryStandard: {
		WiFi: true, Parking: true, Restaurant: true, AirConditioning: true,
	},
	domain.CategoryBudget: {
		WiFi: true,
	},
}

var nameTemplates = map[domain.Category][]string{
	domain.CategoryPremium:  {"Grand Palace", "Royal", "Imperial", "Ritz", "Metropol"},
	domain.CategoryBusiness: {"Plaza", "Panorama", "Continental", "Park Inn", "Atrium"},
	domain.CategoryStandard: {"Comfort", "Central", "City", "Horizon", "Aurora"},
	domain.CategoryBudget:   {"Backpacker", "Travel Light", "Nomad", "Cosy Corner", "Transit"},
}

var descriptions = map[domain.Category][]string{
	domain.CategoryPremium: {
		"Five-star luxury with panoramic views, a full spa and white-glove service.",
		"A landmark property combining historic architecture with modern indulgence.",
	},
	domain.CategoryBusiness: {
		"A polished city hotel with fast Wi-Fi, meeting rooms and airport transfer.",
		"Designed for work trips: quiet rooms, a gym and breakfast before early flights.",
	},
	domain.CategoryStandard: {
		"Comfortable mid-range stay close to the main sights.",
		"A reliable choice with everything you need and nothing you don't.",
	},
	domain.CategoryBudget: {
		"Clean, cheap and sociable. Perfect for travellers on a budget.",
		"Simple rooms, free Wi-Fi and the lowest prices in town.",
	},
}

// imageBuckets are static placeholder paths; runtime-fetched photo URLs
// replace them when an image provider responds.
var imageBuckets = map[domain.Category][][]string{
	domain.CategoryPremium: {
		{"/images/hotels/premium-1.jpg", "/images/hotels/premium-2.jpg", "/images/hotels/premium-3.jpg"},
		{"/images/hotels/premium-4.jpg", "/images/hotels/premium-5.jpg"},
	},
	domain.CategoryBusiness: {
		{"/images/hotels/business-1.jpg", "/images/hotels/business-2.jpg"},
		{"/images/hotels/business-3.jpg", "/images/hotels/business-4.jpg"},
	},
	domain.CategoryStandard: {
		{"/images/hotels/standard-1.jpg", "/images/hotels/standard-2.jpg"},
		{"/images/hotels/standard-3.jpg"},
	},
	domain.CategoryBudget: {
		{"/images/hotels/budget-1.jpg"},
		{"/images/hotels/budget-2.jpg", "/images/hotels/budget-3.jpg"},
	},
}

var hotelChains = []string{
	"Azimut", "Cosmos Group", "Radisson", "Accor", "Marriott",
	"Hilton", "AMAKS", "Heliopark",
}

var streetNames = []string{
	"Lenina", "Mira", "Sadovaya", "Naberezhnaya", "Parkovaya",
	"Tsentralnaya", "Morskaya", "Vokzalnaya",
}

var reviewAuthors = []string{
	"Anna", "Dmitry", "Elena", "Sergey", "Olga", "Ivan", "Maria", "Pavel",
}

var reviewComments = []string{
	"Great location, would stay again.",
	"Clean rooms and friendly staff.",
	"Breakfast could be better, everything else was fine.",
	"Excellent value for the price.",
	"Quiet at night, good beds.",
	"Check-in was quick and painless.",
}
