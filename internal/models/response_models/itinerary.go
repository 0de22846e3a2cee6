package response_models

import "fmt"

// ItineraryDocument is the structured contract the generative backend is
// prompted against. A full generation populates every field; a regeneration
// or section replacement returns a partial document holding a single day.
type ItineraryDocument struct {
	Itinerary []DayPlan `json:"itinerary"`
	Hotels    []Hotel   `json:"hotels,omitempty"`
	Flights   []Flight  `json:"flights,omitempty"`
	Tips      []string  `json:"tips,omitempty"`
}

// DayPlan holds the five slots of one day. Every slot is independently
// optional; a nil slot means the backend made no suggestion for it.
type DayPlan struct {
	Day       int       `json:"day"`
	Morning   *Activity `json:"morning,omitempty"`
	Lunch     *Meal     `json:"lunch,omitempty"`
	Afternoon *Activity `json:"afternoon,omitempty"`
	Dinner    *Meal     `json:"dinner,omitempty"`
	Evening   *Activity `json:"evening,omitempty"`
}

// Activity covers the morning, afternoon and evening slots. Price is a
// free-form INR string; no numeric contract is guaranteed.
type Activity struct {
	Activity    string `json:"activity"`
	Time        string `json:"time,omitempty"`
	Location    string `json:"location,omitempty"`
	BookingLink string `json:"bookingLink,omitempty"`
	Price       string `json:"price,omitempty"`
}

// Meal covers the lunch and dinner slots. The name/cuisine shape is
// intentionally distinct from Activity; renderers depend on the difference.
type Meal struct {
	Name        string `json:"name"`
	Cuisine     string `json:"cuisine,omitempty"`
	Location    string `json:"location,omitempty"`
	BookingLink string `json:"bookingLink,omitempty"`
	Price       string `json:"price,omitempty"`
}

type Hotel struct {
	Name          string `json:"name"`
	PriceRange    string `json:"priceRange,omitempty"`
	Location      string `json:"location,omitempty"`
	Highlights    string `json:"highlights,omitempty"`
	BookingLink   string `json:"bookingLink,omitempty"`
	PricePerNight string `json:"pricePerNight,omitempty"`
}

type Flight struct {
	Airline          string `json:"airline"`
	DepartureAirport string `json:"departureAirport,omitempty"`
	ArrivalAirport   string `json:"arrivalAirport,omitempty"`
	DepartureTime    string `json:"departureTime,omitempty"`
	ArrivalTime      string `json:"arrivalTime,omitempty"`
	Price            string `json:"price,omitempty"`
	BookingLink      string `json:"bookingLink,omitempty"`
	Type             string `json:"type"`
}

const (
	SectionMorning   = "morning"
	SectionLunch     = "lunch"
	SectionAfternoon = "afternoon"
	SectionDinner    = "dinner"
	SectionEvening   = "evening"
)

// SectionLabels are the human labels used when prompting for a replacement.
var SectionLabels = map[string]string{
	SectionMorning:   "Morning activity",
	SectionLunch:     "Lunch restaurant",
	SectionAfternoon: "Afternoon activity",
	SectionDinner:    "Dinner restaurant",
	SectionEvening:   "Evening activity",
}

func IsValidSection(name string) bool {
	_, ok := SectionLabels[name]
	return ok
}

func IsMealSection(name string) bool {
	return name == SectionLunch || name == SectionDinner
}

// HasSection reports whether the named slot is populated.
func (d DayPlan) HasSection(name string) bool {
	switch name {
	case SectionMorning:
		return d.Morning != nil
	case SectionLunch:
		return d.Lunch != nil
	case SectionAfternoon:
		return d.Afternoon != nil
	case SectionDinner:
		return d.Dinner != nil
	case SectionEvening:
		return d.Evening != nil
	}
	return false
}

// SetSectionFrom copies the named slot of src into d, leaving the other four
// slots untouched.
func (d *DayPlan) SetSectionFrom(src DayPlan, name string) {
	switch name {
	case SectionMorning:
		d.Morning = src.Morning
	case SectionLunch:
		d.Lunch = src.Lunch
	case SectionAfternoon:
		d.Afternoon = src.Afternoon
	case SectionDinner:
		d.Dinner = src.Dinner
	case SectionEvening:
		d.Evening = src.Evening
	}
}

// WithoutSection returns a copy of the day with the named slot nulled, used
// as replacement-prompt context.
func (d DayPlan) WithoutSection(name string) DayPlan {
	out := d
	switch name {
	case SectionMorning:
		out.Morning = nil
	case SectionLunch:
		out.Lunch = nil
	case SectionAfternoon:
		out.Afternoon = nil
	case SectionDinner:
		out.Dinner = nil
	case SectionEvening:
		out.Evening = nil
	}
	return out
}

// StruckOffItems maps "day-N" keys to per-slot strike flags. Strike state is
// workflow state, independent of itinerary content.
type StruckOffItems map[string]map[string]bool

// SectionReplacementResponse pairs the merged document with the strike state
// after a successful replacement lifted the target slot's flag.
type SectionReplacementResponse struct {
	Document       *ItineraryDocument `json:"document"`
	StruckOffItems StruckOffItems     `json:"struckOffItems"`
}

// DayKey builds the "day-N" key used by strike state.
func DayKey(day int) string {
	return fmt.Sprintf("day-%d", day)
}
