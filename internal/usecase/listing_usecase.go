package usecase

import (
	"context"
	"time"

	"github.com/shravanjnaidu/spicetrade/internal/domain/entity"
	"github.com/shravanjnaidu/spicetrade/internal/domain/repository"
	"github.com/shravanjnaidu/spicetrade/internal/domain/service"
	"github.com/shravanjnaidu/spicetrade/pkg/errors"
	"github.com/shravanjnaidu/spicetrade/pkg/logger"
)

type ListingUseCase struct {
	listingRepo repository.ListingRepository
	userRepo    repository.UserRepository
}

func NewListingUseCase(listingRepo repository.ListingRepository, userRepo repository.UserRepository) *ListingUseCase {
	return &ListingUseCase{
		listingRepo: listingRepo,
		userRepo:    userRepo,
	}
}

type CreateListingInput struct {
	Title       string
	Description string
	Category    string
	Tags        []string
	Price       *float64
	Unit        string
	MinOrder    int
	Stock       int
	Images      []string
}

func (uc *ListingUseCase) CreateListing(ctx context.Context, sellerID string, input CreateListingInput) (*entity.Listing, error) {
	if input.Title == "" || input.Description == "" {
		return nil, errors.BadRequest("title and description required", nil)
	}

	seller, err := uc.userRepo.GetByID(ctx, sellerID)
	if err != nil {
		return nil, errors.BadRequest("Invalid seller", err)
	}

	listing := &entity.Listing{
		SellerID:    sellerID,
		Title:       input.Title,
		Description: input.Description,
		Category:    input.Category,
		Tags:        input.Tags,
		Price:       input.Price,
		Unit:        input.Unit,
		MinOrder:    input.MinOrder,
		Stock:       input.Stock,
		Images:      input.Images,
	}
	if err := uc.listingRepo.Create(ctx, listing); err != nil {
		return nil, err
	}

	uc.decorate(listing, seller)
	return listing, nil
}

// ListCatalog loads the snapshot and runs the catalog engine over it.
// Newest-first is the snapshot order, so SortFeatured keeps it.
func (uc *ListingUseCase) ListCatalog(ctx context.Context, filter service.CatalogFilter, sortMode service.SortMode) ([]*entity.Listing, error) {
	snapshot, err := uc.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return service.SortListings(service.FilterListings(snapshot, filter), sortMode), nil
}

// Suggest serves the autocomplete projection over the same snapshot.
func (uc *ListingUseCase) Suggest(ctx context.Context, query string) ([]string, error) {
	snapshot, err := uc.snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return service.Suggest(snapshot, query), nil
}

// CatalogFacets counts facet values over the current filtered result set.
func (uc *ListingUseCase) CatalogFacets(ctx context.Context, filter service.CatalogFilter) (service.FacetCounts, error) {
	snapshot, err := uc.snapshot(ctx)
	if err != nil {
		return service.FacetCounts{}, err
	}
	return service.Facets(service.FilterListings(snapshot, filter)), nil
}

func (uc *ListingUseCase) snapshot(ctx context.Context) ([]*entity.Listing, error) {
	listings, err := uc.listingRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	uc.decorateAll(ctx, listings)
	return listings, nil
}

func (uc *ListingUseCase) GetListing(ctx context.Context, id string) (*entity.Listing, error) {
	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	uc.decorateAll(ctx, []*entity.Listing{listing})

	// View counting is best effort and must not hold up the response.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := uc.listingRepo.IncrementViews(ctx, id); err != nil {
			logger.Warn("Failed to increment views for listing %s: %v", id, err)
		}
	}()

	return listing, nil
}

func (uc *ListingUseCase) ListBySellerID(ctx context.Context, sellerID string) ([]*entity.Listing, error) {
	listings, err := uc.listingRepo.ListBySellerID(ctx, sellerID)
	if err != nil {
		return nil, err
	}
	uc.decorateAll(ctx, listings)
	return listings, nil
}

// UpdateListing applies a partial patch: only fields present in the request
// change.
func (uc *ListingUseCase) UpdateListing(ctx context.Context, id, sellerID string, patch entity.ListingPatch) (*entity.Listing, error) {
	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if listing.SellerID != sellerID {
		return nil, errors.Forbidden("You don't have permission to update this listing", nil)
	}

	patch.Apply(listing)
	if listing.Title == "" || listing.Description == "" {
		return nil, errors.BadRequest("title and description required", nil)
	}

	if err := uc.listingRepo.Update(ctx, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

func (uc *ListingUseCase) DeleteListing(ctx context.Context, id, sellerID string) error {
	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if listing.SellerID != sellerID {
		return errors.Forbidden("You don't have permission to delete this listing", nil)
	}
	return uc.listingRepo.Delete(ctx, id)
}

// decorateAll resolves author and store names for listings, one user fetch
// per distinct seller.
func (uc *ListingUseCase) decorateAll(ctx context.Context, listings []*entity.Listing) {
	sellers := make(map[string]*entity.User)
	for _, listing := range listings {
		seller, ok := sellers[listing.SellerID]
		if !ok {
			var err error
			seller, err = uc.userRepo.GetByID(ctx, listing.SellerID)
			if err != nil {
				logger.Warn("Seller %s not found for listing %s: %v", listing.SellerID, listing.ID, err)
				continue
			}
			sellers[listing.SellerID] = seller
		}
		uc.decorate(listing, seller)
	}
}

func (uc *ListingUseCase) decorate(listing *entity.Listing, seller *entity.User) {
	listing.Author = seller.Name
	if seller.Role == entity.RoleSeller && seller.Store != nil {
		listing.StoreName = seller.Store.StoreName
	}
}
