package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shravanjnaidu/spicetrade/internal/domain/entity"
	"github.com/shravanjnaidu/spicetrade/pkg/errors"
)

func newReviewFixture(t *testing.T) (*ReviewUseCase, *entity.Listing, *entity.User) {
	t.Helper()
	clock := newFakeClock()
	users := newFakeUserRepo(clock)
	listings := newFakeListingRepo(clock)
	reviews := newFakeReviewRepo(clock)
	ctx := context.Background()

	seller := &entity.User{Name: "Arjun Nair", Email: "arjun@example.com", Role: entity.RoleSeller}
	require.NoError(t, users.Create(ctx, seller))
	buyer := &entity.User{Name: "Priya Raman", Email: "priya@example.com", Role: entity.RoleBuyer}
	require.NoError(t, users.Create(ctx, buyer))

	listing := &entity.Listing{Title: "Saffron Threads", Description: "Grade A", SellerID: seller.ID}
	require.NoError(t, listings.Create(ctx, listing))

	return NewReviewUseCase(reviews, listings, users), listing, buyer
}

func TestCreateReviewPolicy(t *testing.T) {
	uc, listing, buyer := newReviewFixture(t)
	ctx := context.Background()

	_, err := uc.CreateReview(ctx, buyer.ID, CreateReviewInput{ListingID: listing.ID, Rating: 0})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
	_, err = uc.CreateReview(ctx, buyer.ID, CreateReviewInput{ListingID: listing.ID, Rating: 6})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	_, err = uc.CreateReview(ctx, listing.SellerID, CreateReviewInput{ListingID: listing.ID, Rating: 5})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	review, err := uc.CreateReview(ctx, buyer.ID, CreateReviewInput{ListingID: listing.ID, Rating: 4, Text: "Strong aroma, fast shipping"})
	require.NoError(t, err)
	assert.Equal(t, 4, review.Rating)

	// second review on the same listing is rejected
	_, err = uc.CreateReview(ctx, buyer.ID, CreateReviewInput{ListingID: listing.ID, Rating: 5})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestCanReviewReasons(t *testing.T) {
	uc, listing, buyer := newReviewFixture(t)
	ctx := context.Background()

	allowed, reason, err := uc.CanReview(ctx, buyer.ID, listing.ID)
	require.NoError(t, err)
	assert.True(t, allowed)
	assert.Empty(t, reason)

	allowed, reason, err = uc.CanReview(ctx, listing.SellerID, listing.ID)
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, "you cannot review your own listing", reason)

	_, err = uc.CreateReview(ctx, buyer.ID, CreateReviewInput{ListingID: listing.ID, Rating: 3})
	require.NoError(t, err)
	allowed, reason, err = uc.CanReview(ctx, buyer.ID, listing.ID)
	require.NoError(t, err)
	assert.False(t, allowed)
	assert.Equal(t, "you have already reviewed this listing", reason)

	_, _, err = uc.CanReview(ctx, buyer.ID, "missing-listing")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestListReviewsResolvesReviewerNames(t *testing.T) {
	uc, listing, buyer := newReviewFixture(t)
	ctx := context.Background()

	_, err := uc.CreateReview(ctx, buyer.ID, CreateReviewInput{ListingID: listing.ID, Rating: 5, Text: "Excellent"})
	require.NoError(t, err)

	reviews, err := uc.ListByListing(ctx, listing.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, "Priya Raman", reviews[0].ReviewerName)
}

func TestDeleteReviewAuthorOnly(t *testing.T) {
	uc, listing, buyer := newReviewFixture(t)
	ctx := context.Background()

	review, err := uc.CreateReview(ctx, buyer.ID, CreateReviewInput{ListingID: listing.ID, Rating: 2})
	require.NoError(t, err)

	err = uc.DeleteReview(ctx, "someone-else", review.ID)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	require.NoError(t, uc.DeleteReview(ctx, buyer.ID, review.ID))
	reviews, err := uc.ListByListing(ctx, listing.ID)
	require.NoError(t, err)
	assert.Empty(t, reviews)
}

func TestReviewStats(t *testing.T) {
	clock := newFakeClock()
	users := newFakeUserRepo(clock)
	listings := newFakeListingRepo(clock)
	reviews := newFakeReviewRepo(clock)
	ctx := context.Background()

	seller := &entity.User{Name: "Arjun Nair", Email: "arjun@example.com", Role: entity.RoleSeller}
	require.NoError(t, users.Create(ctx, seller))
	listing := &entity.Listing{Title: "Saffron Threads", Description: "Grade A", SellerID: seller.ID}
	require.NoError(t, listings.Create(ctx, listing))

	uc := NewReviewUseCase(reviews, listings, users)

	empty, err := uc.Stats(ctx, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.ReviewCount)
	assert.Zero(t, empty.AverageRating)

	for i, rating := range []int{5, 4, 4} {
		buyer := &entity.User{Name: "Buyer", Email: string(rune('a'+i)) + "@example.com", Role: entity.RoleBuyer}
		require.NoError(t, users.Create(ctx, buyer))
		_, err := uc.CreateReview(ctx, buyer.ID, CreateReviewInput{ListingID: listing.ID, Rating: rating})
		require.NoError(t, err)
	}

	stats, err := uc.Stats(ctx, listing.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, stats.ReviewCount)
	assert.InDelta(t, 13.0/3.0, stats.AverageRating, 1e-9)
	assert.Equal(t, 1, stats.Distribution[5])
	assert.Equal(t, 2, stats.Distribution[4])
	assert.Equal(t, 0, stats.Distribution[1])
}
