package request_models

import (
	"encoding/json"

	"travelr/internal/models/response_models"
)

// TripRequest is the immutable set of trip parameters a generation is built
// from. Budget is one of budget/moderate/luxury.
type TripRequest struct {
	Destination   string   `json:"destination"`
	Days          int      `json:"days"`
	Interests     []string `json:"interests"`
	Budget        string   `json:"budget"`
	StartDate     string   `json:"startDate,omitempty"`
	TravelerCount int      `json:"travelerCount,omitempty"`
}

// GenerateItineraryRequest is the body of POST /api/generate-itinerary. The
// optional fields select the prompt variant: none set is a full generation,
// RegenerateDay alone regenerates one day, RegenerateDay plus ReplaceSection
// replaces a single slot.
type GenerateItineraryRequest struct {
	TripRequest

	RegenerateDay     int                                `json:"regenerateDay,omitempty"`
	ExistingItinerary *response_models.ItineraryDocument `json:"existingItinerary,omitempty"`
	ReplaceSection    string                             `json:"replaceSection,omitempty"`
	CurrentItem       json.RawMessage                    `json:"currentItem,omitempty"`
	StruckOffItems    response_models.StruckOffItems     `json:"struckOffItems,omitempty"`
}

// GeneratePackingListRequest is the body of POST /api/generate-packing-list.
type GeneratePackingListRequest struct {
	Destination string   `json:"destination" binding:"required"`
	Days        int      `json:"days" binding:"required,min=1"`
	Interests   []string `json:"interests"`
	StartDate   string   `json:"startDate,omitempty"`
}
