package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/shravanjnaidu/spicetrade/internal/usecase"
	"github.com/shravanjnaidu/spicetrade/pkg/errors"
	"github.com/shravanjnaidu/spicetrade/pkg/response"
)

type WishlistHandler struct {
	wishlistUseCase *usecase.WishlistUseCase
}

func NewWishlistHandler(wishlistUseCase *usecase.WishlistUseCase) *WishlistHandler {
	return &WishlistHandler{
		wishlistUseCase: wishlistUseCase,
	}
}

type wishlistRequest struct {
	ListingID string `json:"adId" validate:"required"`
}

func (h *WishlistHandler) List(c echo.Context) error {
	items, err := h.wishlistUseCase.List(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.JSON(c, items)
}

func (h *WishlistHandler) Add(c echo.Context) error {
	userID := c.Get("uid").(string)

	var req wishlistRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request format", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	item, err := h.wishlistUseCase.Add(c.Request().Context(), userID, req.ListingID)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"wishlistId": item.ID,
	})
}

func (h *WishlistHandler) Remove(c echo.Context) error {
	userID := c.Get("uid").(string)

	if err := h.wishlistUseCase.Remove(c.Request().Context(), userID, c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.OK(c)
}

func (h *WishlistHandler) Check(c echo.Context) error {
	userID := c.Get("uid").(string)

	var req wishlistRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request format", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	saved, wishlistID, err := h.wishlistUseCase.Check(c.Request().Context(), userID, req.ListingID)
	if err != nil {
		return response.Error(c, err)
	}

	body := map[string]interface{}{"isWishlisted": saved}
	if saved {
		body["wishlistId"] = wishlistID
	}
	return response.JSON(c, body)
}
