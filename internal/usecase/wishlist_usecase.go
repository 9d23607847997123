package usecase

import (
	"context"

	"github.com/shravanjnaidu/spicetrade/internal/domain/entity"
	"github.com/shravanjnaidu/spicetrade/internal/domain/repository"
	"github.com/shravanjnaidu/spicetrade/pkg/errors"
	"github.com/shravanjnaidu/spicetrade/pkg/logger"
)

type WishlistUseCase struct {
	wishlistRepo repository.WishlistRepository
	listingRepo  repository.ListingRepository
}

func NewWishlistUseCase(wishlistRepo repository.WishlistRepository, listingRepo repository.ListingRepository) *WishlistUseCase {
	return &WishlistUseCase{
		wishlistRepo: wishlistRepo,
		listingRepo:  listingRepo,
	}
}

// Add puts a listing on the user's wishlist. Adding an already-wishlisted
// listing is a no-op returning the existing entry.
func (uc *WishlistUseCase) Add(ctx context.Context, userID, listingID string) (*entity.WishlistItem, error) {
	listing, err := uc.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return nil, errors.NotFound("Listing", err)
	}
	if listing.SellerID == userID {
		return nil, errors.BadRequest("Cannot add your own listing to wishlist", nil)
	}

	existing, err := uc.wishlistRepo.Find(ctx, userID, listingID)
	if err == nil && existing != nil {
		return existing, nil
	}
	if err != nil && !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	item := &entity.WishlistItem{
		UserID:    userID,
		ListingID: listingID,
	}
	if err := uc.wishlistRepo.Add(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (uc *WishlistUseCase) Remove(ctx context.Context, userID, wishlistID string) error {
	item, err := uc.wishlistRepo.GetByID(ctx, wishlistID)
	if err != nil {
		return err
	}
	if item.UserID != userID {
		return errors.Forbidden("You don't have permission to remove this wishlist item", nil)
	}
	return uc.wishlistRepo.Remove(ctx, wishlistID)
}

// List joins each wishlist entry with its listing; entries pointing at a
// since-deleted listing are skipped rather than failing the whole list.
func (uc *WishlistUseCase) List(ctx context.Context, userID string) ([]*entity.WishlistItemWithListing, error) {
	items, err := uc.wishlistRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]*entity.WishlistItemWithListing, 0, len(items))
	for _, item := range items {
		listing, err := uc.listingRepo.GetByID(ctx, item.ListingID)
		if err != nil {
			logger.Warn("Listing %s missing for wishlist item %s: %v", item.ListingID, item.ID, err)
			continue
		}
		result = append(result, &entity.WishlistItemWithListing{
			WishlistItem: *item,
			Listing:      listing,
		})
	}
	return result, nil
}

// Check reports whether the listing is wishlisted and under which entry id.
func (uc *WishlistUseCase) Check(ctx context.Context, userID, listingID string) (bool, string, error) {
	item, err := uc.wishlistRepo.Find(ctx, userID, listingID)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return false, "", nil
		}
		return false, "", err
	}
	return true, item.ID, nil
}
