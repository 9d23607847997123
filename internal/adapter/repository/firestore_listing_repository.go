package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/shravanjnaidu/spicetrade/internal/domain/entity"
	"github.com/shravanjnaidu/spicetrade/internal/domain/repository"
	"github.com/shravanjnaidu/spicetrade/pkg/errors"
)

type firestoreListingRepository struct {
	client *firestore.Client
}

func NewFirestoreListingRepository(client *firestore.Client) repository.ListingRepository {
	return &firestoreListingRepository{
		client: client,
	}
}

func (r *firestoreListingRepository) Create(ctx context.Context, listing *entity.Listing) error {
	if listing.ID == "" {
		listing.ID = uuid.New().String()
	}
	listing.CreatedAt = time.Now()

	_, err := r.client.Collection("listings").Doc(listing.ID).Set(ctx, listing)
	if err != nil {
		return errors.Internal("Failed to create listing", err)
	}
	return nil
}

func (r *firestoreListingRepository) GetByID(ctx context.Context, id string) (*entity.Listing, error) {
	doc, err := r.client.Collection("listings").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Listing", err)
		}
		return nil, errors.Internal("Failed to get listing", err)
	}

	var listing entity.Listing
	if err := doc.DataTo(&listing); err != nil {
		return nil, errors.Internal("Failed to parse listing data", err)
	}
	return &listing, nil
}

func (r *firestoreListingRepository) List(ctx context.Context) ([]*entity.Listing, error) {
	query := r.client.Collection("listings").OrderBy("createdAt", firestore.Desc)
	return r.collect(query.Documents(ctx))
}

func (r *firestoreListingRepository) ListBySellerID(ctx context.Context, sellerID string) ([]*entity.Listing, error) {
	query := r.client.Collection("listings").
		Where("sellerId", "==", sellerID).
		OrderBy("createdAt", firestore.Desc)
	return r.collect(query.Documents(ctx))
}

func (r *firestoreListingRepository) collect(iter *firestore.DocumentIterator) ([]*entity.Listing, error) {
	var listings []*entity.Listing
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate listings", err)
		}

		var listing entity.Listing
		if err := doc.DataTo(&listing); err != nil {
			return nil, errors.Internal("Failed to parse listing data", err)
		}
		listings = append(listings, &listing)
	}
	return listings, nil
}

func (r *firestoreListingRepository) Update(ctx context.Context, listing *entity.Listing) error {
	_, err := r.client.Collection("listings").Doc(listing.ID).Set(ctx, listing)
	if err != nil {
		return errors.Internal("Failed to update listing", err)
	}
	return nil
}

func (r *firestoreListingRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("listings").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete listing", err)
	}
	return nil
}

func (r *firestoreListingRepository) IncrementViews(ctx context.Context, id string) error {
	_, err := r.client.Collection("listings").Doc(id).Update(ctx, []firestore.Update{
		{Path: "views", Value: firestore.Increment(1)},
	})
	if err != nil {
		return errors.Internal("Failed to increment views", err)
	}
	return nil
}
