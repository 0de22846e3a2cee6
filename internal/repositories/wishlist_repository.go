package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"travelr/internal/models/db_models"
)

// WishlistRepository is the thin read/write/remove surface over the per-user
// wishlist store. Entries are always scoped to a user id; last writer wins on
// concurrent updates.
type WishlistRepository interface {
	Insert(ctx context.Context, entry *db_models.WishlistEntry) error
	Update(ctx context.Context, entry *db_models.WishlistEntry) error
	FindByIdForUser(ctx context.Context, userID uuid.UUID, id string) (*db_models.WishlistEntry, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.WishlistEntry, error)
	DeleteByIdForUser(ctx context.Context, userID uuid.UUID, id string) error
}

type wishlistRepository struct {
	db *gorm.DB
}

func NewWishlistRepository(db *gorm.DB) WishlistRepository {
	return &wishlistRepository{
		db: db,
	}
}

func (r *wishlistRepository) Insert(ctx context.Context, entry *db_models.WishlistEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *wishlistRepository) Update(ctx context.Context, entry *db_models.WishlistEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *wishlistRepository) FindByIdForUser(ctx context.Context, userID uuid.UUID, id string) (*db_models.WishlistEntry, error) {
	var entry db_models.WishlistEntry
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&entry).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &entry, nil
}

func (r *wishlistRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]db_models.WishlistEntry, error) {
	var entries []db_models.WishlistEntry
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("added_to_wishlist_at DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *wishlistRepository) DeleteByIdForUser(ctx context.Context, userID uuid.UUID, id string) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&db_models.WishlistEntry{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
