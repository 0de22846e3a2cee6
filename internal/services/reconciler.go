package services

import (
	"travelr/internal/models/response_models"
	"travelr/pkg/utils"
)

// MergeDayResult merges a regeneration or replacement result into the current
// document and returns a new document value. The merge never touches days
// other than targetDay. With targetSection set, only that slot of the target
// day changes; with it unset, the whole day object is replaced. The function
// performs no I/O and never mutates its inputs.
func MergeDayResult(current response_models.ItineraryDocument, dayResult *response_models.ItineraryDocument, targetDay int, targetSection string) (response_models.ItineraryDocument, error) {
	if dayResult == nil || len(dayResult.Itinerary) == 0 {
		return current, utils.ErrIncompleteRegeneration
	}
	incoming := dayResult.Itinerary[0]

	dayIndex := -1
	for i, d := range current.Itinerary {
		if d.Day == targetDay {
			dayIndex = i
			break
		}
	}
	if dayIndex == -1 {
		// Days come from the full-generation step; a miss means the caller is
		// holding stale state, never a reason to invent a new day.
		return current, utils.ErrDayNotFound
	}

	merged := current
	merged.Itinerary = make([]response_models.DayPlan, len(current.Itinerary))
	copy(merged.Itinerary, current.Itinerary)

	if targetSection != "" {
		if !incoming.HasSection(targetSection) {
			// A previously populated slot is never nulled out by a partial
			// result that forgot the section it was asked for.
			return current, utils.ErrIncompleteRegeneration
		}
		day := merged.Itinerary[dayIndex]
		day.SetSectionFrom(incoming, targetSection)
		merged.Itinerary[dayIndex] = day
		return merged, nil
	}

	incoming.Day = targetDay
	merged.Itinerary[dayIndex] = incoming
	return merged, nil
}

// ToggleStruckOff flips the strike flag for one slot and returns a new
// mapping; calling it twice with the same arguments restores the original.
func ToggleStruckOff(current response_models.StruckOffItems, day int, section string) response_models.StruckOffItems {
	out := copyStruckOff(current)
	key := response_models.DayKey(day)
	if out[key] == nil {
		out[key] = make(map[string]bool)
	}
	out[key][section] = !out[key][section]
	return out
}

// ClearStruckOff lifts the strike for one slot, invoked right after a
// successful section replacement.
func ClearStruckOff(current response_models.StruckOffItems, day int, section string) response_models.StruckOffItems {
	out := copyStruckOff(current)
	key := response_models.DayKey(day)
	if out[key] == nil {
		return out
	}
	out[key][section] = false
	return out
}

// IsStruckOff reads the strike flag for one slot.
func IsStruckOff(current response_models.StruckOffItems, day int, section string) bool {
	if current == nil {
		return false
	}
	return current[response_models.DayKey(day)][section]
}

func copyStruckOff(current response_models.StruckOffItems) response_models.StruckOffItems {
	out := make(response_models.StruckOffItems, len(current))
	for dayKey, sections := range current {
		inner := make(map[string]bool, len(sections))
		for section, struck := range sections {
			inner[section] = struck
		}
		out[dayKey] = inner
	}
	return out
}
