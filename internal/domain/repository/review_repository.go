package repository

import (
	"context"

	"github.com/shravanjnaidu/spicetrade/internal/domain/entity"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	GetByID(ctx context.Context, id string) (*entity.Review, error)
	// FindByUserAndListing backs the can-review policy check; NOT_FOUND when
	// the user has not reviewed the listing.
	FindByUserAndListing(ctx context.Context, userID, listingID string) (*entity.Review, error)
	ListByListingID(ctx context.Context, listingID string) ([]*entity.Review, error)
	Delete(ctx context.Context, id string) error
}
