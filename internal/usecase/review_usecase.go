package usecase

import (
	"context"

	"github.com/shravanjnaidu/spicetrade/internal/domain/entity"
	"github.com/shravanjnaidu/spicetrade/internal/domain/repository"
	"github.com/shravanjnaidu/spicetrade/pkg/errors"
	"github.com/shravanjnaidu/spicetrade/pkg/logger"
)

type ReviewUseCase struct {
	reviewRepo  repository.ReviewRepository
	listingRepo repository.ListingRepository
	userRepo    repository.UserRepository
}

func NewReviewUseCase(
	reviewRepo repository.ReviewRepository,
	listingRepo repository.ListingRepository,
	userRepo repository.UserRepository,
) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo:  reviewRepo,
		listingRepo: listingRepo,
		userRepo:    userRepo,
	}
}

type CreateReviewInput struct {
	ListingID string
	Rating    int
	Text      string
}

// CreateReview enforces the can-review policy before writing: one review per
// (user, listing), never on the user's own listing.
func (uc *ReviewUseCase) CreateReview(ctx context.Context, userID string, input CreateReviewInput) (*entity.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, errors.BadRequest("rating must be between 1 and 5", nil)
	}

	allowed, reason, err := uc.CanReview(ctx, userID, input.ListingID)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, errors.BadRequest(reason, nil)
	}

	review := &entity.Review{
		ListingID: input.ListingID,
		UserID:    userID,
		Rating:    input.Rating,
		Text:      input.Text,
	}
	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// CanReview is a policy check, not a storage constraint.
func (uc *ReviewUseCase) CanReview(ctx context.Context, userID, listingID string) (bool, string, error) {
	listing, err := uc.listingRepo.GetByID(ctx, listingID)
	if err != nil {
		return false, "", errors.NotFound("Listing", err)
	}
	if listing.SellerID == userID {
		return false, "you cannot review your own listing", nil
	}

	existing, err := uc.reviewRepo.FindByUserAndListing(ctx, userID, listingID)
	if err != nil && !errors.Is(err, "NOT_FOUND") {
		return false, "", err
	}
	if existing != nil {
		return false, "you have already reviewed this listing", nil
	}
	return true, "", nil
}

func (uc *ReviewUseCase) ListByListing(ctx context.Context, listingID string) ([]*entity.Review, error) {
	reviews, err := uc.reviewRepo.ListByListingID(ctx, listingID)
	if err != nil {
		return nil, err
	}

	reviewers := make(map[string]*entity.User)
	for _, review := range reviews {
		reviewer, ok := reviewers[review.UserID]
		if !ok {
			reviewer, err = uc.userRepo.GetByID(ctx, review.UserID)
			if err != nil {
				logger.Warn("Reviewer %s not found for review %s: %v", review.UserID, review.ID, err)
				continue
			}
			reviewers[review.UserID] = reviewer
		}
		review.ReviewerName = reviewer.Name
	}
	return reviews, nil
}

func (uc *ReviewUseCase) DeleteReview(ctx context.Context, userID, reviewID string) error {
	review, err := uc.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if review.UserID != userID {
		return errors.Forbidden("You don't have permission to delete this review", nil)
	}
	return uc.reviewRepo.Delete(ctx, reviewID)
}

// Stats aggregates the listing's reviews into the rating summary.
func (uc *ReviewUseCase) Stats(ctx context.Context, listingID string) (*entity.ReviewStats, error) {
	reviews, err := uc.reviewRepo.ListByListingID(ctx, listingID)
	if err != nil {
		return nil, err
	}

	stats := &entity.ReviewStats{
		ReviewCount:  len(reviews),
		Distribution: map[int]int{1: 0, 2: 0, 3: 0, 4: 0, 5: 0},
	}
	if len(reviews) == 0 {
		return stats, nil
	}

	sum := 0
	for _, review := range reviews {
		sum += review.Rating
		stats.Distribution[review.Rating]++
	}
	stats.AverageRating = float64(sum) / float64(len(reviews))
	return stats, nil
}
