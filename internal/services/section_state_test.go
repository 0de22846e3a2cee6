package services

import (
	"testing"
	"time"

	"travelr/internal/models/response_models"
	mem "travelr/pkg/memcache"
)

func TestSectionStatusOf(t *testing.T) {
	struck := response_models.StruckOffItems{"day-2": {"lunch": true}}
	locks := mem.NewSectionLocks()

	if got := SectionStatusOf(struck, locks, 1, response_models.SectionLunch); got != SectionNormal {
		t.Fatalf("untouched slot: got %v", got)
	}
	if got := SectionStatusOf(struck, locks, 2, response_models.SectionLunch); got != SectionStruckOff {
		t.Fatalf("struck slot: got %v", got)
	}

	// An in-flight regeneration outranks the strike flag.
	locks.TryAcquire(SectionLockKey(2, response_models.SectionLunch), time.Minute)
	if got := SectionStatusOf(struck, locks, 2, response_models.SectionLunch); got != SectionRegenerating {
		t.Fatalf("locked slot: got %v", got)
	}

	locks.Release(SectionLockKey(2, response_models.SectionLunch))
	if got := SectionStatusOf(struck, locks, 2, response_models.SectionLunch); got != SectionStruckOff {
		t.Fatalf("released slot must fall back to struck, got %v", got)
	}

	if got := SectionStatusOf(nil, nil, 1, response_models.SectionMorning); got != SectionNormal {
		t.Fatalf("nil state: got %v", got)
	}
}

func TestSectionStatusString(t *testing.T) {
	if SectionNormal.String() != "normal" || SectionStruckOff.String() != "struck_off" || SectionRegenerating.String() != "regenerating" {
		t.Fatalf("unexpected status names: %v %v %v", SectionNormal, SectionStruckOff, SectionRegenerating)
	}
}
