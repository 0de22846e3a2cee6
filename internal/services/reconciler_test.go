package services

import (
	"errors"
	"reflect"
	"testing"

	"travelr/internal/models/response_models"
	"travelr/pkg/utils"
)

func baseDocument() response_models.ItineraryDocument {
	return response_models.ItineraryDocument{
		Itinerary: []response_models.DayPlan{
			{
				Day:     1,
				Morning: &response_models.Activity{Activity: "Gateway of India", Time: "9:00 AM"},
				Lunch:   &response_models.Meal{Name: "Trishna", Cuisine: "Seafood"},
				Dinner:  &response_models.Meal{Name: "Khyber", Cuisine: "North Indian"},
			},
			{
				Day:     2,
				Morning: &response_models.Activity{Activity: "Elephanta Caves"},
				Lunch:   &response_models.Meal{Name: "Old Cafe", Cuisine: "Continental"},
				Evening: &response_models.Activity{Activity: "Marine Drive walk"},
			},
			{
				Day:     3,
				Morning: &response_models.Activity{Activity: "Sanjay Gandhi National Park"},
			},
		},
		Hotels: []response_models.Hotel{{Name: "The Taj Mahal Palace"}},
		Tips:   []string{"Local trains are fastest"},
	}
}

func TestMergeSectionReplacement(t *testing.T) {
	current := baseDocument()
	dayResult := &response_models.ItineraryDocument{
		Itinerary: []response_models.DayPlan{
			{Day: 2, Lunch: &response_models.Meal{Name: "New Cafe", Cuisine: "Fusion"}},
		},
	}

	merged, err := MergeDayResult(current, dayResult, 2, response_models.SectionLunch)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if merged.Itinerary[1].Lunch == nil || merged.Itinerary[1].Lunch.Name != "New Cafe" {
		t.Fatalf("lunch slot not replaced: %+v", merged.Itinerary[1].Lunch)
	}
	// Only the lunch slot of day 2 may change.
	if merged.Itinerary[1].Morning.Activity != "Elephanta Caves" || merged.Itinerary[1].Evening.Activity != "Marine Drive walk" {
		t.Fatalf("untargeted slots of day 2 changed: %+v", merged.Itinerary[1])
	}
	if !reflect.DeepEqual(merged.Itinerary[0], current.Itinerary[0]) || !reflect.DeepEqual(merged.Itinerary[2], current.Itinerary[2]) {
		t.Fatalf("other days changed by a section merge")
	}
	if !reflect.DeepEqual(merged.Hotels, current.Hotels) || !reflect.DeepEqual(merged.Tips, current.Tips) {
		t.Fatalf("document extras changed by a section merge")
	}
	// Input must stay untouched.
	if current.Itinerary[1].Lunch.Name != "Old Cafe" {
		t.Fatalf("merge mutated its input")
	}
}

func TestMergeWholeDayReplacement(t *testing.T) {
	current := baseDocument()
	dayResult := &response_models.ItineraryDocument{
		Itinerary: []response_models.DayPlan{
			{
				// Backends occasionally renumber the day; the merge pins it back.
				Day:     1,
				Morning: &response_models.Activity{Activity: "Kanheri Caves"},
				Lunch:   &response_models.Meal{Name: "Hilltop Dhaba"},
			},
		},
	}

	merged, err := MergeDayResult(current, dayResult, 3, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if merged.Itinerary[2].Day != 3 {
		t.Fatalf("day number not pinned to target, got %d", merged.Itinerary[2].Day)
	}
	if merged.Itinerary[2].Morning.Activity != "Kanheri Caves" {
		t.Fatalf("day 3 not replaced: %+v", merged.Itinerary[2])
	}
	if !reflect.DeepEqual(merged.Itinerary[0], current.Itinerary[0]) || !reflect.DeepEqual(merged.Itinerary[1], current.Itinerary[1]) {
		t.Fatalf("other days changed by a day merge")
	}
}

func TestMergeUnknownDay(t *testing.T) {
	current := baseDocument()
	dayResult := &response_models.ItineraryDocument{
		Itinerary: []response_models.DayPlan{{Day: 7, Morning: &response_models.Activity{Activity: "x"}}},
	}

	merged, err := MergeDayResult(current, dayResult, 7, "")
	if !errors.Is(err, utils.ErrDayNotFound) {
		t.Fatalf("expected ErrDayNotFound, got %v", err)
	}
	if !reflect.DeepEqual(merged, current) {
		t.Fatalf("failed merge must return the document unchanged")
	}
}

func TestMergeIncompleteResults(t *testing.T) {
	current := baseDocument()

	if _, err := MergeDayResult(current, nil, 2, ""); !errors.Is(err, utils.ErrIncompleteRegeneration) {
		t.Fatalf("expected ErrIncompleteRegeneration for nil result, got %v", err)
	}
	if _, err := MergeDayResult(current, &response_models.ItineraryDocument{}, 2, ""); !errors.Is(err, utils.ErrIncompleteRegeneration) {
		t.Fatalf("expected ErrIncompleteRegeneration for empty result, got %v", err)
	}

	// A section merge whose result lacks the requested slot must not null the
	// populated slot.
	missingSection := &response_models.ItineraryDocument{
		Itinerary: []response_models.DayPlan{{Day: 2, Morning: &response_models.Activity{Activity: "x"}}},
	}
	merged, err := MergeDayResult(current, missingSection, 2, response_models.SectionLunch)
	if !errors.Is(err, utils.ErrIncompleteRegeneration) {
		t.Fatalf("expected ErrIncompleteRegeneration, got %v", err)
	}
	if !reflect.DeepEqual(merged, current) {
		t.Fatalf("incomplete section merge changed the document")
	}
	if current.Itinerary[1].Lunch == nil {
		t.Fatalf("populated slot was nulled by an incomplete result")
	}
}

func TestToggleStruckOffIsAnInvolution(t *testing.T) {
	original := response_models.StruckOffItems{
		"day-1": {"lunch": true},
	}

	once := ToggleStruckOff(original, 2, response_models.SectionDinner)
	if !IsStruckOff(once, 2, response_models.SectionDinner) {
		t.Fatalf("toggle did not set the flag")
	}
	twice := ToggleStruckOff(once, 2, response_models.SectionDinner)
	if IsStruckOff(twice, 2, response_models.SectionDinner) {
		t.Fatalf("double toggle did not restore the flag")
	}

	// Other entries and the input mapping stay untouched.
	if !IsStruckOff(twice, 1, response_models.SectionLunch) {
		t.Fatalf("unrelated strike flag lost")
	}
	if len(original) != 1 || len(original["day-1"]) != 1 {
		t.Fatalf("toggle mutated its input: %v", original)
	}
}

func TestClearStruckOff(t *testing.T) {
	original := response_models.StruckOffItems{
		"day-2": {"lunch": true, "dinner": true},
	}

	cleared := ClearStruckOff(original, 2, response_models.SectionLunch)
	if IsStruckOff(cleared, 2, response_models.SectionLunch) {
		t.Fatalf("clear did not lift the strike")
	}
	if !IsStruckOff(cleared, 2, response_models.SectionDinner) {
		t.Fatalf("clear touched an unrelated slot")
	}
	if !IsStruckOff(original, 2, response_models.SectionLunch) {
		t.Fatalf("clear mutated its input")
	}

	// Clearing a day with no strikes is a no-op.
	untouched := ClearStruckOff(original, 9, response_models.SectionLunch)
	if IsStruckOff(untouched, 9, response_models.SectionLunch) {
		t.Fatalf("clear invented strike state")
	}
}

func TestIsStruckOffNilMap(t *testing.T) {
	if IsStruckOff(nil, 1, response_models.SectionLunch) {
		t.Fatalf("nil mapping must read as not struck")
	}
}
