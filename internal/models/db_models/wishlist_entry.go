package db_models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// WishlistEntry is one saved itinerary. Trip parameters are promoted to
// columns for listing and lookup; the document bodies stay as jsonb because
// their shape belongs to the generative contract, not the schema.
type WishlistEntry struct {
	BaseModel
	UserID uuid.UUID `gorm:"type:uuid;index"`

	Destination   string
	Days          int
	Interests     pq.StringArray `gorm:"type:text[]"`
	Budget        string
	StartDate     string
	TravelerCount int

	Document       JSONB `gorm:"type:jsonb"`
	FormData       JSONB `gorm:"type:jsonb"`
	PackingList    JSONB `gorm:"type:jsonb"`
	StruckOffItems JSONB `gorm:"type:jsonb"`

	AddedToWishlistAt int64 `gorm:"index"`
}

func (w *WishlistEntry) BeforeCreate(tx *gorm.DB) error {
	if err := w.BaseModel.BeforeCreate(tx); err != nil {
		return err
	}
	if w.AddedToWishlistAt == 0 {
		w.AddedToWishlistAt = time.Now().Unix()
	}
	return nil
}
