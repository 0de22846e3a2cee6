package services

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"travelr/internal/models/request_models"
	"travelr/internal/models/response_models"
	mem "travelr/pkg/memcache"
	"travelr/pkg/utils"
)

type ItineraryServiceInterface interface {
	GenerateItinerary(ctx context.Context, req request_models.GenerateItineraryRequest) (*response_models.ItineraryDocument, error)
	RegenerateDay(ctx context.Context, req request_models.GenerateItineraryRequest) (*response_models.ItineraryDocument, error)
	ReplaceSection(ctx context.Context, req request_models.GenerateItineraryRequest) (*response_models.ItineraryDocument, response_models.StruckOffItems, error)
}

type ItineraryService struct {
	client         utils.GenerativeClientInterface
	sectionLocks   mem.SectionLockStore
	planCache      *gocache.Cache
	requestTimeout time.Duration
}

func NewItineraryService(
	client utils.GenerativeClientInterface,
	sectionLocks mem.SectionLockStore,
	requestTimeout time.Duration,
) ItineraryServiceInterface {
	if requestTimeout <= 0 {
		requestTimeout = 60 * time.Second
	}
	return &ItineraryService{
		client:         client,
		sectionLocks:   sectionLocks,
		planCache:      gocache.New(time.Hour, 2*time.Hour),
		requestTimeout: requestTimeout,
	}
}

// GenerateItinerary runs the full-generation flow: build prompt, invoke the
// backend, parse. Identical trip parameters within the cache window reuse the
// previous document instead of paying another backend call.
func (s *ItineraryService) GenerateItinerary(ctx context.Context, req request_models.GenerateItineraryRequest) (*response_models.ItineraryDocument, error) {
	prompt, err := BuildItineraryPrompt(req)
	if err != nil {
		return nil, err
	}

	cacheKey := planCacheKey(req.TripRequest)
	if cached, found := s.planCache.Get(cacheKey); found {
		log.Printf("Plan cache hit for %s", req.Destination)
		doc := cached.(response_models.ItineraryDocument)
		return &doc, nil
	}

	result, err := s.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	doc, err := ParseItineraryDocument(result)
	if err != nil {
		return nil, err
	}

	s.planCache.Set(cacheKey, *doc, gocache.DefaultExpiration)
	return doc, nil
}

// RegenerateDay rebuilds a single day against the context of the others and
// merges it back, leaving every other day untouched.
func (s *ItineraryService) RegenerateDay(ctx context.Context, req request_models.GenerateItineraryRequest) (*response_models.ItineraryDocument, error) {
	if req.ExistingItinerary == nil || req.RegenerateDay < 1 {
		return nil, fmt.Errorf("%w: regenerateDay and existingItinerary are required", utils.ErrInvalidTripRequest)
	}

	prompt, err := BuildItineraryPrompt(req)
	if err != nil {
		return nil, err
	}

	result, err := s.generate(ctx, prompt)
	if err != nil {
		return nil, err
	}

	dayResult, err := ParseItineraryDocument(result)
	if err != nil {
		return nil, err
	}

	merged, err := MergeDayResult(*req.ExistingItinerary, dayResult, req.RegenerateDay, "")
	if err != nil {
		return nil, err
	}
	return &merged, nil
}

// ReplaceSection swaps one slot of one day for a freshly suggested
// alternative. Replacements are serialized per (day, section): a second
// request for a slot whose suggestion is still in flight is rejected rather
// than raced. On success the slot's strike flag is lifted; on any failure the
// strike state comes back unchanged.
func (s *ItineraryService) ReplaceSection(ctx context.Context, req request_models.GenerateItineraryRequest) (*response_models.ItineraryDocument, response_models.StruckOffItems, error) {
	if req.ExistingItinerary == nil || req.RegenerateDay < 1 || req.ReplaceSection == "" {
		return nil, req.StruckOffItems, fmt.Errorf("%w: regenerateDay, existingItinerary and replaceSection are required", utils.ErrInvalidTripRequest)
	}
	if !response_models.IsValidSection(req.ReplaceSection) {
		return nil, req.StruckOffItems, fmt.Errorf("%w: unknown section %q", utils.ErrInvalidTripRequest, req.ReplaceSection)
	}

	lockKey := SectionLockKey(req.RegenerateDay, req.ReplaceSection)
	if !s.sectionLocks.TryAcquire(lockKey, 2*s.requestTimeout) {
		return nil, req.StruckOffItems, utils.ErrRegenerationInFlight
	}
	defer s.sectionLocks.Release(lockKey)

	prompt, err := BuildItineraryPrompt(req)
	if err != nil {
		return nil, req.StruckOffItems, err
	}

	result, err := s.generate(ctx, prompt)
	if err != nil {
		return nil, req.StruckOffItems, err
	}

	dayResult, err := ParseItineraryDocument(result)
	if err != nil {
		return nil, req.StruckOffItems, err
	}

	merged, err := MergeDayResult(*req.ExistingItinerary, dayResult, req.RegenerateDay, req.ReplaceSection)
	if err != nil {
		return nil, req.StruckOffItems, err
	}

	struck := ClearStruckOff(req.StruckOffItems, req.RegenerateDay, req.ReplaceSection)
	return &merged, struck, nil
}

// generate wraps the backend call in an explicit timeout; the upstream
// service has no documented SLA.
func (s *ItineraryService) generate(ctx context.Context, prompt string) (utils.GenerationResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.requestTimeout)
	defer cancel()

	result, err := s.client.Generate(ctx, prompt)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, utils.ErrBackendTimeout
		}
		return nil, err
	}
	return result, nil
}

func planCacheKey(req request_models.TripRequest) string {
	h := sha256.New()
	fmt.Fprintf(h, "%s|%d|%s|%s", req.Destination, req.Days, strings.Join(req.Interests, ","), req.Budget)
	return fmt.Sprintf("%x", h.Sum(nil))[:16]
}
