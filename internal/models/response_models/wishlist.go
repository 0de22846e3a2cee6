package response_models

import "encoding/json"

// WishlistEntryResponse is a saved itinerary as returned to the client,
// document fields flattened alongside the trip parameters and derived state.
type WishlistEntryResponse struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`

	Itinerary []DayPlan `json:"itinerary"`
	Hotels    []Hotel   `json:"hotels,omitempty"`
	Flights   []Flight  `json:"flights,omitempty"`
	Tips      []string  `json:"tips,omitempty"`

	FormData       json.RawMessage   `json:"formData"`
	PackingList    []PackingCategory `json:"packingList,omitempty"`
	StruckOffItems StruckOffItems    `json:"struckOffItems,omitempty"`

	CreatedAt         int64 `json:"createdAt"`
	UpdatedAt         int64 `json:"updatedAt"`
	AddedToWishlistAt int64 `json:"addedToWishlistAt"`
}
