package services

import (
	"fmt"

	mem "travelr/pkg/memcache"

	"travelr/internal/models/response_models"
)

// SectionStatus is the explicit state of one (day, section) pair across a
// session: Normal -> StruckOff (user strikes it) -> Regenerating (alternative
// requested) -> Normal on success, or back to StruckOff on failure with
// content unchanged.
type SectionStatus int

const (
	SectionNormal SectionStatus = iota
	SectionStruckOff
	SectionRegenerating
)

func (s SectionStatus) String() string {
	switch s {
	case SectionStruckOff:
		return "struck_off"
	case SectionRegenerating:
		return "regenerating"
	default:
		return "normal"
	}
}

// SectionStatusOf derives the status of a slot from strike state and the
// in-flight lock store.
func SectionStatusOf(struck response_models.StruckOffItems, locks mem.SectionLockStore, day int, section string) SectionStatus {
	if locks != nil && locks.Held(SectionLockKey(day, section)) {
		return SectionRegenerating
	}
	if IsStruckOff(struck, day, section) {
		return SectionStruckOff
	}
	return SectionNormal
}

// SectionLockKey names the lock guarding one slot's regeneration.
func SectionLockKey(day int, section string) string {
	return fmt.Sprintf("day-%d:%s", day, section)
}
