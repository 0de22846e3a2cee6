package itinerary_fx

import (
	"log"
	"os"
	"strconv"
	"time"

	"go.uber.org/fx"

	"travelr/internal/api/controllers"
	"travelr/internal/services"
	mem "travelr/pkg/memcache"
	"travelr/pkg/utils"
)

var Module = fx.Provide(
	ProvideSectionLocks,
	ProvideItineraryService,
	ProvideItineraryController)

func ProvideSectionLocks() mem.SectionLockStore {
	return mem.NewSectionLocks()
}

func ProvideItineraryService(
	client utils.GenerativeClientInterface,
	sectionLocks mem.SectionLockStore,
) services.ItineraryServiceInterface {
	return services.NewItineraryService(client, sectionLocks, GenerationTimeout())
}

func ProvideItineraryController(
	itineraryService services.ItineraryServiceInterface,
) *controllers.ItineraryController {
	return controllers.NewItineraryController(itineraryService)
}

// GenerationTimeout reads the backend call timeout; the upstream service has
// no SLA, so every call carries an explicit deadline.
func GenerationTimeout() time.Duration {
	raw := os.Getenv("GENERATION_TIMEOUT_SECONDS")
	if raw == "" {
		return 60 * time.Second
	}
	seconds, err := strconv.Atoi(raw)
	if err != nil || seconds < 1 {
		log.Printf("Invalid GENERATION_TIMEOUT_SECONDS %q, using default", raw)
		return 60 * time.Second
	}
	return time.Duration(seconds) * time.Second
}
