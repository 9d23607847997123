package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/shravanjnaidu/spicetrade/internal/usecase"
	"github.com/shravanjnaidu/spicetrade/pkg/response"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

func (h *UserHandler) GetUser(c echo.Context) error {
	user, err := h.userUseCase.GetByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.JSON(c, user)
}

// ListStores returns the newest seller accounts for the store directory.
func (h *UserHandler) ListStores(c echo.Context) error {
	stores, err := h.userUseCase.ListStores(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.JSON(c, stores)
}
