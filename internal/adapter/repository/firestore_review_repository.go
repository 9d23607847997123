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

type firestoreReviewRepository struct {
	client *firestore.Client
}

func NewFirestoreReviewRepository(client *firestore.Client) repository.ReviewRepository {
	return &firestoreReviewRepository{
		client: client,
	}
}

func (r *firestoreReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	review.CreatedAt = time.Now()

	_, err := r.client.Collection("reviews").Doc(review.ID).Set(ctx, review)
	if err != nil {
		return errors.Internal("Failed to create review", err)
	}
	return nil
}

func (r *firestoreReviewRepository) GetByID(ctx context.Context, id string) (*entity.Review, error) {
	doc, err := r.client.Collection("reviews").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Review", err)
		}
		return nil, errors.Internal("Failed to get review", err)
	}

	var review entity.Review
	if err := doc.DataTo(&review); err != nil {
		return nil, errors.Internal("Failed to parse review data", err)
	}
	return &review, nil
}

func (r *firestoreReviewRepository) FindByUserAndListing(ctx context.Context, userID, listingID string) (*entity.Review, error) {
	query := r.client.Collection("reviews").
		Where("userId", "==", userID).
		Where("listingId", "==", listingID).
		Limit(1)

	iter := query.Documents(ctx)
	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, errors.NotFound("Review", err)
	}
	if err != nil {
		return nil, errors.Internal("Failed to query review", err)
	}

	var review entity.Review
	if err := doc.DataTo(&review); err != nil {
		return nil, errors.Internal("Failed to parse review data", err)
	}
	return &review, nil
}

func (r *firestoreReviewRepository) ListByListingID(ctx context.Context, listingID string) ([]*entity.Review, error) {
	query := r.client.Collection("reviews").
		Where("listingId", "==", listingID).
		OrderBy("createdAt", firestore.Desc)

	iter := query.Documents(ctx)
	var reviews []*entity.Review
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate reviews", err)
		}

		var review entity.Review
		if err := doc.DataTo(&review); err != nil {
			return nil, errors.Internal("Failed to parse review data", err)
		}
		reviews = append(reviews, &review)
	}
	return reviews, nil
}

func (r *firestoreReviewRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("reviews").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete review", err)
	}
	return nil
}
