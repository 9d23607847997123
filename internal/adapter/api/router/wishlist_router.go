package router

import (
	"github.com/labstack/echo/v4"

	"github.com/shravanjnaidu/spicetrade/internal/adapter/api/handler"
	"github.com/shravanjnaidu/spicetrade/internal/adapter/api/middleware"
)

func SetupWishlistRouter(e *echo.Echo, wishlistHandler *handler.WishlistHandler, authMiddleware *middleware.AuthMiddleware) {
	wishlistGroup := e.Group("/api/wishlist")
	wishlistGroup.Use(authMiddleware.Authenticate)

	wishlistGroup.GET("/:userId", wishlistHandler.List)
	wishlistGroup.POST("", wishlistHandler.Add)
	wishlistGroup.POST("/check", wishlistHandler.Check)
	wishlistGroup.DELETE("/:id", wishlistHandler.Remove)
}
