package repository

import (
	"context"

	"github.com/shravanjnaidu/spicetrade/internal/domain/entity"
)

type ListingRepository interface {
	Create(ctx context.Context, listing *entity.Listing) error
	GetByID(ctx context.Context, id string) (*entity.Listing, error)
	// List returns the full catalog snapshot, newest first. The catalog
	// engine filters and sorts in memory; there is no cursoring.
	List(ctx context.Context) ([]*entity.Listing, error)
	ListBySellerID(ctx context.Context, sellerID string) ([]*entity.Listing, error)
	Update(ctx context.Context, listing *entity.Listing) error
	Delete(ctx context.Context, id string) error
	IncrementViews(ctx context.Context, id string) error
}
