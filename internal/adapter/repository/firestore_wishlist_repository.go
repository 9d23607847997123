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

type firestoreWishlistRepository struct {
	client *firestore.Client
}

func NewFirestoreWishlistRepository(client *firestore.Client) repository.WishlistRepository {
	return &firestoreWishlistRepository{
		client: client,
	}
}

func (r *firestoreWishlistRepository) Add(ctx context.Context, item *entity.WishlistItem) error {
	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	item.CreatedAt = time.Now()

	_, err := r.client.Collection("wishlists").Doc(item.ID).Set(ctx, item)
	if err != nil {
		return errors.Internal("Failed to add wishlist item", err)
	}
	return nil
}

func (r *firestoreWishlistRepository) GetByID(ctx context.Context, id string) (*entity.WishlistItem, error) {
	doc, err := r.client.Collection("wishlists").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Wishlist item", err)
		}
		return nil, errors.Internal("Failed to get wishlist item", err)
	}

	var item entity.WishlistItem
	if err := doc.DataTo(&item); err != nil {
		return nil, errors.Internal("Failed to parse wishlist data", err)
	}
	return &item, nil
}

func (r *firestoreWishlistRepository) Find(ctx context.Context, userID, listingID string) (*entity.WishlistItem, error) {
	query := r.client.Collection("wishlists").
		Where("userId", "==", userID).
		Where("listingId", "==", listingID).
		Limit(1)

	iter := query.Documents(ctx)
	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, errors.NotFound("Wishlist item", err)
	}
	if err != nil {
		return nil, errors.Internal("Failed to query wishlist", err)
	}

	var item entity.WishlistItem
	if err := doc.DataTo(&item); err != nil {
		return nil, errors.Internal("Failed to parse wishlist data", err)
	}
	return &item, nil
}

func (r *firestoreWishlistRepository) ListByUserID(ctx context.Context, userID string) ([]*entity.WishlistItem, error) {
	query := r.client.Collection("wishlists").
		Where("userId", "==", userID).
		OrderBy("createdAt", firestore.Desc)

	iter := query.Documents(ctx)
	var items []*entity.WishlistItem
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate wishlist", err)
		}

		var item entity.WishlistItem
		if err := doc.DataTo(&item); err != nil {
			return nil, errors.Internal("Failed to parse wishlist data", err)
		}
		items = append(items, &item)
	}
	return items, nil
}

func (r *firestoreWishlistRepository) Remove(ctx context.Context, id string) error {
	_, err := r.client.Collection("wishlists").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to remove wishlist item", err)
	}
	return nil
}
