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

type firestoreUserRepository struct {
	client *firestore.Client
}

func NewFirestoreUserRepository(client *firestore.Client) repository.UserRepository {
	return &firestoreUserRepository{
		client: client,
	}
}

func (r *firestoreUserRepository) Create(ctx context.Context, user *entity.User) error {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	user.CreatedAt = time.Now()

	_, err := r.client.Collection("users").Doc(user.ID).Set(ctx, user)
	if err != nil {
		return errors.Internal("Failed to create user", err)
	}
	return nil
}

func (r *firestoreUserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	doc, err := r.client.Collection("users").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("User", err)
		}
		return nil, errors.Internal("Failed to get user", err)
	}

	var user entity.User
	if err := doc.DataTo(&user); err != nil {
		return nil, errors.Internal("Failed to parse user data", err)
	}
	return &user, nil
}

func (r *firestoreUserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := r.client.Collection("users").Where("email", "==", email).Limit(1)
	iter := query.Documents(ctx)
	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, errors.NotFound("User", err)
	}
	if err != nil {
		return nil, errors.Internal("Failed to query user by email", err)
	}

	var user entity.User
	if err := doc.DataTo(&user); err != nil {
		return nil, errors.Internal("Failed to parse user data", err)
	}
	return &user, nil
}

func (r *firestoreUserRepository) Update(ctx context.Context, user *entity.User) error {
	_, err := r.client.Collection("users").Doc(user.ID).Set(ctx, user)
	if err != nil {
		return errors.Internal("Failed to update user", err)
	}
	return nil
}

func (r *firestoreUserRepository) ListSellers(ctx context.Context, limit int) ([]*entity.User, error) {
	query := r.client.Collection("users").
		Where("role", "==", string(entity.RoleSeller)).
		OrderBy("createdAt", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	var sellers []*entity.User
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate sellers", err)
		}

		var user entity.User
		if err := doc.DataTo(&user); err != nil {
			return nil, errors.Internal("Failed to parse user data", err)
		}
		sellers = append(sellers, &user)
	}
	return sellers, nil
}
