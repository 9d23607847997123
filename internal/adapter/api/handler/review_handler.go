package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/shravanjnaidu/spicetrade/internal/usecase"
	"github.com/shravanjnaidu/spicetrade/pkg/errors"
	"github.com/shravanjnaidu/spicetrade/pkg/response"
)

type ReviewHandler struct {
	reviewUseCase *usecase.ReviewUseCase
}

func NewReviewHandler(reviewUseCase *usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase: reviewUseCase,
	}
}

type createReviewRequest struct {
	ListingID string `json:"adId" validate:"required"`
	Rating    int    `json:"rating" validate:"required,min=1,max=5"`
	Text      string `json:"text"`
}

func (h *ReviewHandler) ListByAd(c echo.Context) error {
	reviews, err := h.reviewUseCase.ListByListing(c.Request().Context(), c.Param("adId"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.JSON(c, reviews)
}

func (h *ReviewHandler) Create(c echo.Context) error {
	userID := c.Get("uid").(string)

	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request format", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	review, err := h.reviewUseCase.CreateReview(c.Request().Context(), userID, usecase.CreateReviewInput{
		ListingID: req.ListingID,
		Rating:    req.Rating,
		Text:      req.Text,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"review": review,
	})
}

func (h *ReviewHandler) Delete(c echo.Context) error {
	userID := c.Get("uid").(string)

	if err := h.reviewUseCase.DeleteReview(c.Request().Context(), userID, c.Param("id")); err != nil {
		return response.Error(c, err)
	}
	return response.OK(c)
}

func (h *ReviewHandler) CanReview(c echo.Context) error {
	userID := c.Get("uid").(string)

	allowed, reason, err := h.reviewUseCase.CanReview(c.Request().Context(), userID, c.Param("adId"))
	if err != nil {
		return response.Error(c, err)
	}

	body := map[string]interface{}{"canReview": allowed}
	if reason != "" {
		body["reason"] = reason
	}
	return response.JSON(c, body)
}

func (h *ReviewHandler) Stats(c echo.Context) error {
	stats, err := h.reviewUseCase.Stats(c.Request().Context(), c.Param("adId"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.JSON(c, stats)
}
