package request_models

import (
	"travelr/internal/models/response_models"
)

// SaveWishlistRequest carries the session itinerary plus derived user state
// into the store. The same body serves both first save and auto-save
// (PUT on an existing entry).
type SaveWishlistRequest struct {
	Itinerary []response_models.DayPlan `json:"itinerary" binding:"required"`
	Hotels    []response_models.Hotel   `json:"hotels"`
	Flights   []response_models.Flight  `json:"flights"`
	Tips      []string                  `json:"tips"`

	FormData       TripRequest                       `json:"formData" binding:"required"`
	PackingList    []response_models.PackingCategory `json:"packingList"`
	StruckOffItems response_models.StruckOffItems    `json:"struckOffItems"`
}
