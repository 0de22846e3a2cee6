package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"travelr/internal/models/db_models"
	"travelr/internal/models/request_models"
	"travelr/internal/models/response_models"
	"travelr/internal/repositories"
	"travelr/pkg/utils"
)

type WishlistServiceInterface interface {
	Save(ctx context.Context, userID string, req request_models.SaveWishlistRequest) (string, error)
	Update(ctx context.Context, userID, entryID string, req request_models.SaveWishlistRequest) error
	Get(ctx context.Context, userID, entryID string) (*response_models.WishlistEntryResponse, error)
	List(ctx context.Context, userID string) ([]response_models.WishlistEntryResponse, error)
	Remove(ctx context.Context, userID, entryID string) error
}

type WishlistService struct {
	wishlistRepo repositories.WishlistRepository
}

func NewWishlistService(wishlistRepo repositories.WishlistRepository) WishlistServiceInterface {
	return &WishlistService{
		wishlistRepo: wishlistRepo,
	}
}

func (s *WishlistService) Save(ctx context.Context, userID string, req request_models.SaveWishlistRequest) (string, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return "", utils.ErrInvalidCredentials
	}

	entry, err := entryFromRequest(uid, req)
	if err != nil {
		return "", err
	}

	if err := s.wishlistRepo.Insert(ctx, entry); err != nil {
		log.Printf("Wishlist insert failed: %v", err)
		return "", utils.ErrDatabaseError
	}
	return entry.ID.String(), nil
}

// Update is the auto-save path: every section edit re-saves the whole entry.
// Regeneration itself never writes here; the merged in-memory document is
// what gets re-saved. Last writer wins across devices.
func (s *WishlistService) Update(ctx context.Context, userID, entryID string, req request_models.SaveWishlistRequest) error {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return utils.ErrInvalidCredentials
	}

	existing, err := s.wishlistRepo.FindByIdForUser(ctx, uid, entryID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if existing == nil {
		return utils.ErrWishlistItemNotFound
	}

	updated, err := entryFromRequest(uid, req)
	if err != nil {
		return err
	}
	updated.BaseModel = existing.BaseModel
	updated.AddedToWishlistAt = existing.AddedToWishlistAt

	if err := s.wishlistRepo.Update(ctx, updated); err != nil {
		log.Printf("Wishlist update failed: %v", err)
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *WishlistService) Get(ctx context.Context, userID, entryID string) (*response_models.WishlistEntryResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	entry, err := s.wishlistRepo.FindByIdForUser(ctx, uid, entryID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if entry == nil {
		return nil, utils.ErrWishlistItemNotFound
	}

	return entryToResponse(entry)
}

func (s *WishlistService) List(ctx context.Context, userID string) ([]response_models.WishlistEntryResponse, error) {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	entries, err := s.wishlistRepo.ListByUser(ctx, uid)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	responses := make([]response_models.WishlistEntryResponse, 0, len(entries))
	for i := range entries {
		resp, err := entryToResponse(&entries[i])
		if err != nil {
			log.Printf("Skipping unreadable wishlist entry %s: %v", entries[i].ID, err)
			continue
		}
		responses = append(responses, *resp)
	}
	return responses, nil
}

func (s *WishlistService) Remove(ctx context.Context, userID, entryID string) error {
	uid, err := uuid.Parse(userID)
	if err != nil {
		return utils.ErrInvalidCredentials
	}

	err = s.wishlistRepo.DeleteByIdForUser(ctx, uid, entryID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrWishlistItemNotFound
		}
		return utils.ErrDatabaseError
	}
	return nil
}

func entryFromRequest(userID uuid.UUID, req request_models.SaveWishlistRequest) (*db_models.WishlistEntry, error) {
	document, err := json.Marshal(response_models.ItineraryDocument{
		Itinerary: req.Itinerary,
		Hotels:    req.Hotels,
		Flights:   req.Flights,
		Tips:      req.Tips,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}

	formData, err := json.Marshal(req.FormData)
	if err != nil {
		return nil, fmt.Errorf("marshal form data: %w", err)
	}

	entry := &db_models.WishlistEntry{
		UserID:        userID,
		Destination:   req.FormData.Destination,
		Days:          req.FormData.Days,
		Interests:     req.FormData.Interests,
		Budget:        req.FormData.Budget,
		StartDate:     req.FormData.StartDate,
		TravelerCount: req.FormData.TravelerCount,
		Document:      db_models.JSONB(document),
		FormData:      db_models.JSONB(formData),
	}

	if req.PackingList != nil {
		packing, err := json.Marshal(req.PackingList)
		if err != nil {
			return nil, fmt.Errorf("marshal packing list: %w", err)
		}
		entry.PackingList = db_models.JSONB(packing)
	}
	if req.StruckOffItems != nil {
		struck, err := json.Marshal(req.StruckOffItems)
		if err != nil {
			return nil, fmt.Errorf("marshal struck-off items: %w", err)
		}
		entry.StruckOffItems = db_models.JSONB(struck)
	}

	return entry, nil
}

func entryToResponse(entry *db_models.WishlistEntry) (*response_models.WishlistEntryResponse, error) {
	var doc response_models.ItineraryDocument
	if len(entry.Document) > 0 {
		if err := json.Unmarshal(entry.Document, &doc); err != nil {
			return nil, fmt.Errorf("unmarshal document: %w", err)
		}
	}

	resp := &response_models.WishlistEntryResponse{
		ID:                entry.ID.String(),
		UserID:            entry.UserID.String(),
		Itinerary:         doc.Itinerary,
		Hotels:            doc.Hotels,
		Flights:           doc.Flights,
		Tips:              doc.Tips,
		FormData:          json.RawMessage(entry.FormData),
		CreatedAt:         entry.CreatedAt,
		UpdatedAt:         entry.UpdatedAt,
		AddedToWishlistAt: entry.AddedToWishlistAt,
	}

	if len(entry.PackingList) > 0 {
		if err := json.Unmarshal(entry.PackingList, &resp.PackingList); err != nil {
			return nil, fmt.Errorf("unmarshal packing list: %w", err)
		}
	}
	if len(entry.StruckOffItems) > 0 {
		if err := json.Unmarshal(entry.StruckOffItems, &resp.StruckOffItems); err != nil {
			return nil, fmt.Errorf("unmarshal struck-off items: %w", err)
		}
	}

	return resp, nil
}
