package domain

// Category is the latent tier drawn first by the generator. Every other
// commercial field of a hotel (stars, price band, amenity bundle, allowed
// accommodation and meal types) is conditioned on it.
type Category string

const (
	CategoryPremium  Category = "premium"
	CategoryBusiness Category = "business"
	CategoryStandard Category = "standard"
	CategoryBudget   Category = "budget"
)

// Accommodation types.
const (
	AccommodationHotel      = "hotel"
	AccommodationApartment  = "apartment"
	AccommodationHostel     = "hostel"
	AccommodationVilla      = "villa"
	AccommodationResort     = "resort"
	AccommodationGuesthouse = "guesthouse"
)

// Meal plans.
const (
	MealNone         = "none"
	MealBreakfast    = "breakfast"
	MealHalfBoard    = "half-board"
	MealFullBoard    = "full-board"
	MealAllInclusive = "all-inclusive"
)

type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Amenities is a fixed record of facility flags. It is always assigned
// wholesale as one of four per-category bundles, never field by field.
type Amenities struct {
	WiFi            bool `json:"wifi"`
	Parking         bool `json:"parking"`
	Pool            bool `json:"pool"`
	Gym             bool `json:"gym"`
	Restaurant      bool `json:"restaurant"`
	Spa             bool `json:"spa"`
	AirConditioning bool `json:"airConditioning"`
	PetFriendly     bool `json:"petFriendly"`
	ConferenceRoom  bool `json:"conferenceRoom"`
	Transfer        bool `json:"transfer"`
}

// Has reports whether the flag with the given query-parameter name is set.
func (a Amenities) Has(name string) bool {
	switch name {
	case "wifi":
		return a.WiFi
	case "parking":
		return a.Parking
	case "pool":
		return a.Pool
	case "gym":
		return a.Gym
	case "restaurant":
		return a.Restaurant
	case "spa":
		return a.Spa
	case "airConditioning":
		return a.AirConditioning
	case "petFriendly":
		return a.PetFriendly
	case "conferenceRoom":
		return a.ConferenceRoom
	case "transfer":
		return a.Transfer
	}
	return false
}

// AmenityNames lists every flag name accepted as a query parameter.
var AmenityNames = []string{
	"wifi", "parking", "pool", "gym", "restaurant",
	"spa", "airConditioning", "petFriendly", "conferenceRoom", "transfer",
}

type Review struct {
	ID      int    `json:"id"`
	Author  string `json:"author"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	Date    string `json:"date"`
}

// Hotel is the central entity. Latitude/Longitude duplicate Coordinates
// because two map consumers expect different shapes; the generator keeps
// both representations numerically identical.
type Hotel struct {
	ID                int       `json:"id"`
	Name              string    `json:"name"`
	Location          string    `json:"location"`
	Address           string    `json:"address"`
	Description       string    `json:"description"`
	Price             int       `json:"price"`
	Rating            float64   `json:"rating"`
	Stars             int       `json:"stars"`
	AccommodationType string    `json:"accommodationType"`
	MealType          string    `json:"mealType"`
	Amenities         Amenities `json:"amenities"`
	Latitude          float64   `json:"latitude"`
	Longitude         float64   `json:"longitude"`
	Coordinates       GeoPoint  `json:"coordinates"`
	Reviews           []Review  `json:"reviews"`
	HotelChain        *string   `json:"hotelChain"`
	HasSpecialOffers  bool      `json:"hasSpecialOffers"`
	Images            []string  `json:"images"`
	Country           string    `json:"country,omitempty"`
}

// CategoryOf re-derives the generation category from the star rating.
// The mapping is injective because budget is the only tier below 3 stars.
func CategoryOf(h Hotel) Category {
	switch {
	case h.Stars >= 5:
		return CategoryPremium
	case h.Stars == 4:
		return CategoryBusiness
	case h.Stars == 3:
		return CategoryStandard
	default:
		return CategoryBudget
	}
}
