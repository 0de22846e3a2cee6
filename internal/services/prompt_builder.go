package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"travelr/internal/models/request_models"
	"travelr/internal/models/response_models"
	"travelr/pkg/utils"
)

// PromptMode selects which of the three prompt variants gets built. The mode
// is never passed in; it is derived from which request fields are present.
type PromptMode int

const (
	PromptModeFull PromptMode = iota
	PromptModeDayRegeneration
	PromptModeSectionReplacement
)

func PromptModeFor(req request_models.GenerateItineraryRequest) PromptMode {
	if req.RegenerateDay > 0 && req.ExistingItinerary != nil {
		if req.ReplaceSection != "" && len(req.CurrentItem) > 0 {
			return PromptModeSectionReplacement
		}
		return PromptModeDayRegeneration
	}
	return PromptModeFull
}

// ValidateTripRequest rejects a request before any backend call is issued.
func ValidateTripRequest(req request_models.TripRequest) error {
	if strings.TrimSpace(req.Destination) == "" {
		return fmt.Errorf("%w: destination is required", utils.ErrInvalidTripRequest)
	}
	if req.Days < 1 {
		return fmt.Errorf("%w: days must be a positive integer", utils.ErrInvalidTripRequest)
	}
	if len(req.Interests) == 0 {
		return fmt.Errorf("%w: at least one interest is required", utils.ErrInvalidTripRequest)
	}
	for _, interest := range req.Interests {
		if strings.TrimSpace(interest) == "" {
			return fmt.Errorf("%w: interests must be non-empty", utils.ErrInvalidTripRequest)
		}
	}
	return nil
}

// BuildItineraryPrompt constructs the generation prompt for the variant the
// request selects. Every variant instructs the backend to return bare JSON;
// the backend is a free-text generator with no structured-output guarantee,
// so that instruction is load-bearing.
func BuildItineraryPrompt(req request_models.GenerateItineraryRequest) (string, error) {
	if err := ValidateTripRequest(req.TripRequest); err != nil {
		return "", err
	}

	switch PromptModeFor(req) {
	case PromptModeSectionReplacement:
		return buildSectionReplacementPrompt(req)
	case PromptModeDayRegeneration:
		return buildDayRegenerationPrompt(req)
	default:
		return buildFullItineraryPrompt(req), nil
	}
}

func buildFullItineraryPrompt(req request_models.GenerateItineraryRequest) string {
	var prompt strings.Builder

	fmt.Fprintf(&prompt, "You are an expert travel planner. Create a detailed %d-day itinerary for %s.\n\n", req.Days, req.Destination)
	fmt.Fprintf(&prompt, "User preferences:\n- Interests: %s\n- Budget level: %s\n\n", strings.Join(req.Interests, ", "), req.Budget)

	prompt.WriteString(`For each day, provide:
1. Morning activity (with estimated time and location)
2. Lunch recommendation (restaurant name and cuisine type)
3. Afternoon activity (with estimated time and location)
4. Dinner recommendation (restaurant name and cuisine type)
5. Evening activity or rest suggestion

Also suggest a minimum of 12 hotels that match the budget level. Include a diverse range of options from budget-friendly to luxury. For each hotel, include booking links (use Booking.com, Expedia, or similar) and estimated prices per night in INR (Indian Rupees).

For activities like parks, museums, events, rides, and attractions that can be booked in advance, include booking links and ticket prices in INR where applicable.

IMPORTANT:
- All prices should be in Indian Rupees (INR). Use realistic Indian market prices.
- Include flight suggestions with departure and arrival airports, airlines, estimated prices in INR, and booking links (use MakeMyTrip, Goibibo, or similar Indian booking platforms).
- Do not repeat the same activity across days.

Format the response as a structured JSON with this exact schema:
{
  "itinerary": [
    {
      "day": 1,
      "morning": { "activity": "", "time": "", "location": "", "bookingLink": "", "price": "" },
      "lunch": { "name": "", "cuisine": "", "location": "", "bookingLink": "", "price": "" },
      "afternoon": { "activity": "", "time": "", "location": "", "bookingLink": "", "price": "" },
      "dinner": { "name": "", "cuisine": "", "location": "", "bookingLink": "", "price": "" },
      "evening": { "activity": "", "bookingLink": "", "price": "" }
    }
  ],
  "hotels": [
    { "name": "", "priceRange": "", "location": "", "highlights": "", "bookingLink": "", "pricePerNight": "" }
  ],
  "flights": [
    { "airline": "", "departureAirport": "", "arrivalAirport": "", "departureTime": "", "arrivalTime": "", "price": "", "bookingLink": "", "type": "outbound" },
    { "airline": "", "departureAirport": "", "arrivalAirport": "", "departureTime": "", "arrivalTime": "", "price": "", "bookingLink": "", "type": "return" }
  ],
  "tips": ["tip1", "tip2", "tip3"]
}

Note: bookingLink and price fields are optional - only include them if the activity/hotel can be booked online.

Return ONLY valid JSON, no markdown, no code blocks, just the JSON object.`)

	return prompt.String()
}

func buildDayRegenerationPrompt(req request_models.GenerateItineraryRequest) (string, error) {
	otherDays, err := marshalOtherDays(req.ExistingItinerary, req.RegenerateDay)
	if err != nil {
		return "", err
	}

	var prompt strings.Builder

	fmt.Fprintf(&prompt, "You are an expert travel planner. Regenerate ONLY Day %d of a %d-day itinerary for %s.\n\n", req.RegenerateDay, req.Days, req.Destination)
	fmt.Fprintf(&prompt, "User preferences:\n- Interests: %s\n- Budget level: %s\n\n", strings.Join(req.Interests, ", "), req.Budget)
	fmt.Fprintf(&prompt, "The other days of the itinerary are:\n%s\n\n", otherDays)

	fmt.Fprintf(&prompt, `Create a new itinerary for Day %d with:
1. Morning activity (with estimated time and location)
2. Lunch recommendation (restaurant name and cuisine type)
3. Afternoon activity (with estimated time and location)
4. Dinner recommendation (restaurant name and cuisine type)
5. Evening activity or rest suggestion

Make sure the day fits well with the overall trip theme and doesn't duplicate activities from other days.
All prices should be in INR (Indian Rupees).

Format the response as a structured JSON with this exact schema:
{
  "itinerary": [
    {
      "day": %d,
      "morning": { "activity": "", "time": "", "location": "", "bookingLink": "", "price": "" },
      "lunch": { "name": "", "cuisine": "", "location": "", "bookingLink": "", "price": "" },
      "afternoon": { "activity": "", "time": "", "location": "", "bookingLink": "", "price": "" },
      "dinner": { "name": "", "cuisine": "", "location": "", "bookingLink": "", "price": "" },
      "evening": { "activity": "", "bookingLink": "", "price": "" }
    }
  ]
}

Return ONLY valid JSON, no markdown, no code blocks, just the JSON object.`, req.RegenerateDay, req.RegenerateDay)

	return prompt.String(), nil
}

func buildSectionReplacementPrompt(req request_models.GenerateItineraryRequest) (string, error) {
	if !response_models.IsValidSection(req.ReplaceSection) {
		return "", fmt.Errorf("%w: unknown section %q", utils.ErrInvalidTripRequest, req.ReplaceSection)
	}

	currentDay, found := lo.Find(req.ExistingItinerary.Itinerary, func(d response_models.DayPlan) bool {
		return d.Day == req.RegenerateDay
	})
	if !found {
		return "", utils.ErrDayNotFound
	}

	label := response_models.SectionLabels[req.ReplaceSection]

	currentItem, err := json.MarshalIndent(req.CurrentItem, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal current item: %w", err)
	}

	restOfDay, err := json.MarshalIndent(currentDay.WithoutSection(req.ReplaceSection), "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal day context: %w", err)
	}

	otherDays, err := marshalOtherDays(req.ExistingItinerary, req.RegenerateDay)
	if err != nil {
		return "", err
	}

	var prompt strings.Builder

	fmt.Fprintf(&prompt, "You are an expert travel planner. Suggest an alternative %s for Day %d of a %d-day itinerary in %s.\n\n", label, req.RegenerateDay, req.Days, req.Destination)
	fmt.Fprintf(&prompt, "User preferences:\n- Interests: %s\n- Budget level: %s\n\n", strings.Join(req.Interests, ", "), req.Budget)
	fmt.Fprintf(&prompt, "The current %s that the user wants to replace:\n%s\n\n", label, currentItem)
	fmt.Fprintf(&prompt, "The rest of Day %d includes:\n%s\n\n", req.RegenerateDay, restOfDay)
	fmt.Fprintf(&prompt, "The other days of the itinerary are:\n%s\n\n", otherDays)

	fmt.Fprintf(&prompt, `Suggest a better alternative that:
- Matches the user's interests and budget
- Fits well with the rest of Day %d
- Doesn't duplicate activities from other days
- Is in INR (Indian Rupees) for prices
- Includes booking links and prices if applicable

Format the response as a structured JSON with this exact schema:
{
  "itinerary": [
    {
      "day": %d,
      "%s": %s
    }
  ]
}

Return ONLY valid JSON, no markdown, no code blocks, just the JSON object.`, req.RegenerateDay, req.RegenerateDay, req.ReplaceSection, sectionSchema(req.ReplaceSection))

	return prompt.String(), nil
}

// sectionSchema keeps the slightly divergent slot shapes: lunch/dinner use the
// restaurant shape, evening drops time and location. The backend is prompted
// against both shapes and renderers expect the distinction.
func sectionSchema(section string) string {
	switch {
	case response_models.IsMealSection(section):
		return `{ "name": "", "cuisine": "", "location": "", "bookingLink": "", "price": "" }`
	case section == response_models.SectionEvening:
		return `{ "activity": "", "bookingLink": "", "price": "" }`
	default:
		return `{ "activity": "", "time": "", "location": "", "bookingLink": "", "price": "" }`
	}
}

// marshalOtherDays renders every day except targetDay as prompt context, so a
// regeneration cannot duplicate itself.
func marshalOtherDays(existing *response_models.ItineraryDocument, targetDay int) (string, error) {
	if existing == nil {
		return "", fmt.Errorf("%w: existing itinerary is required", utils.ErrInvalidTripRequest)
	}

	others := lo.Filter(existing.Itinerary, func(d response_models.DayPlan, _ int) bool {
		return d.Day != targetDay
	})

	data, err := json.MarshalIndent(others, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal other days: %w", err)
	}
	return string(data), nil
}

// BuildPackingListPrompt builds the packing-list generation prompt.
func BuildPackingListPrompt(req request_models.GeneratePackingListRequest) string {
	var prompt strings.Builder

	fmt.Fprintf(&prompt, "Create a comprehensive packing list for a %d-day trip to %s.\n\n", req.Days, req.Destination)

	interests := "General travel"
	if len(req.Interests) > 0 {
		interests = strings.Join(req.Interests, ", ")
	}
	fmt.Fprintf(&prompt, "Interests: %s\n", interests)
	if req.StartDate != "" {
		fmt.Fprintf(&prompt, "Travel dates: %s\n", req.StartDate)
	}

	prompt.WriteString(`
Format the response as JSON with this exact schema:
{
  "packingList": [
    {
      "category": "Clothing",
      "items": ["item1", "item2", "item3"]
    },
    {
      "category": "Footwear",
      "items": ["item1", "item2"]
    }
  ]
}

Return ONLY valid JSON, no markdown, no code blocks.`)

	return prompt.String()
}
