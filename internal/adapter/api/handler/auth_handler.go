package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/shravanjnaidu/spicetrade/internal/domain/entity"
	"github.com/shravanjnaidu/spicetrade/internal/usecase"
	"github.com/shravanjnaidu/spicetrade/pkg/errors"
	"github.com/shravanjnaidu/spicetrade/pkg/response"
)

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
	}
}

type signupRequest struct {
	Name     string               `json:"name" validate:"required"`
	Email    string               `json:"email" validate:"required,email"`
	Password string               `json:"password" validate:"required,min=6"`
	Phone    string               `json:"phone"`
	Role     string               `json:"role" validate:"omitempty,oneof=buyer seller"`
	Store    *entity.StoreProfile `json:"store"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request format", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.Signup(c.Request().Context(), usecase.SignupInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Role:     entity.Role(req.Role),
		Store:    req.Store,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"user":  result.User,
		"token": result.Token,
	})
}

func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request format", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	result, err := h.authUseCase.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"user":  result.User,
		"token": result.Token,
	})
}
