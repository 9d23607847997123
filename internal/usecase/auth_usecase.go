package usecase

import (
	"context"

	"github.com/shravanjnaidu/spicetrade/internal/domain/entity"
	"github.com/shravanjnaidu/spicetrade/internal/domain/repository"
	"github.com/shravanjnaidu/spicetrade/internal/infrastructure/auth"
	"github.com/shravanjnaidu/spicetrade/pkg/errors"
)

type AuthUseCase struct {
	userRepo     repository.UserRepository
	tokenManager *auth.TokenManager
}

func NewAuthUseCase(userRepo repository.UserRepository, tokenManager *auth.TokenManager) *AuthUseCase {
	return &AuthUseCase{
		userRepo:     userRepo,
		tokenManager: tokenManager,
	}
}

type SignupInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Role     entity.Role
	Store    *entity.StoreProfile
}

type AuthResult struct {
	User  *entity.User
	Token string
}

func (uc *AuthUseCase) Signup(ctx context.Context, input SignupInput) (*AuthResult, error) {
	if input.Email == "" || input.Password == "" {
		return nil, errors.BadRequest("email and password required", nil)
	}
	if input.Role == "" {
		input.Role = entity.RoleSeller
	}
	if input.Role != entity.RoleBuyer && input.Role != entity.RoleSeller {
		return nil, errors.BadRequest("role must be buyer or seller", nil)
	}
	if input.Role != entity.RoleSeller {
		// Store profiles are a seller-only concept.
		input.Store = nil
	}

	existing, err := uc.userRepo.GetByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}
	if existing != nil {
		return nil, errors.Conflict("email already used")
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, errors.Internal("Failed to hash password", err)
	}

	user := &entity.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hash,
		Phone:        input.Phone,
		Role:         input.Role,
		Store:        input.Store,
	}
	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := uc.tokenManager.Generate(user.ID)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, Token: token}, nil
}

// Login never distinguishes a missing account from a wrong password.
func (uc *AuthUseCase) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	if email == "" || password == "" {
		return nil, errors.BadRequest("email and password required", nil)
	}

	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return nil, errors.Unauthorized("invalid credentials", err)
		}
		return nil, err
	}
	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, errors.Unauthorized("invalid credentials", nil)
	}

	token, err := uc.tokenManager.Generate(user.ID)
	if err != nil {
		return nil, err
	}
	return &AuthResult{User: user, Token: token}, nil
}
