package repository

import (
	"context"

	"github.com/shravanjnaidu/spicetrade/internal/domain/entity"
)

type WishlistRepository interface {
	Add(ctx context.Context, item *entity.WishlistItem) error
	GetByID(ctx context.Context, id string) (*entity.WishlistItem, error)
	// Find returns the entry for (userID, listingID), NOT_FOUND when absent.
	Find(ctx context.Context, userID, listingID string) (*entity.WishlistItem, error)
	ListByUserID(ctx context.Context, userID string) ([]*entity.WishlistItem, error)
	Remove(ctx context.Context, id string) error
}
