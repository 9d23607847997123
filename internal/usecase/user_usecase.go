package usecase

import (
	"context"

	"github.com/shravanjnaidu/spicetrade/internal/domain/entity"
	"github.com/shravanjnaidu/spicetrade/internal/domain/repository"
)

type UserUseCase struct {
	userRepo repository.UserRepository
}

func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
	}
}

func (uc *UserUseCase) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return uc.userRepo.GetByID(ctx, id)
}

const storeDirectoryLimit = 20

// ListStores returns the seller directory, newest first.
func (uc *UserUseCase) ListStores(ctx context.Context) ([]*entity.User, error) {
	return uc.userRepo.ListSellers(ctx, storeDirectoryLimit)
}
