package router

import (
	"github.com/labstack/echo/v4"

	"github.com/shravanjnaidu/spicetrade/internal/adapter/api/handler"
	"github.com/shravanjnaidu/spicetrade/internal/adapter/api/middleware"
)

func SetupReviewRouter(e *echo.Echo, reviewHandler *handler.ReviewHandler, authMiddleware *middleware.AuthMiddleware) {
	// Reading reviews is public
	e.GET("/api/reviews/stats/:adId", reviewHandler.Stats)
	e.GET("/api/reviews/:adId", reviewHandler.ListByAd)

	reviewGroup := e.Group("/api/reviews")
	reviewGroup.Use(authMiddleware.Authenticate)
	reviewGroup.GET("/can-review/:adId", reviewHandler.CanReview)
	reviewGroup.POST("", reviewHandler.Create)
	reviewGroup.DELETE("/:id", reviewHandler.Delete)
}
