package domain

import "time"

// City is immutable reference data; it is never generated.
type City struct {
	ID                 int    `json:"id"`
	Name               string `json:"name"`
	Country            string `json:"country"`
	Description        string `json:"description"`
	Image              string `json:"image"`
	Slug               string `json:"slug"`
	PopularDestination bool   `json:"popularDestination"`
}

// FavoriteHotel lives in process memory only and disappears on restart.
type FavoriteHotel struct {
	ID      string    `json:"id"`
	UserID  string    `json:"userId"`
	HotelID int       `json:"hotelId"`
	AddedAt time.Time `json:"addedAt"`
	Hotel   *Hotel    `json:"hotel,omitempty"`
}
