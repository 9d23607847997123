package repository

import (
	"context"

	"github.com/shravanjnaidu/spicetrade/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	ListSellers(ctx context.Context, limit int) ([]*entity.User, error)
}
