package router

import (
	"github.com/labstack/echo/v4"

	"github.com/shravanjnaidu/spicetrade/internal/adapter/api/handler"
	"github.com/shravanjnaidu/spicetrade/internal/adapter/api/middleware"
)

func SetupListingRouter(e *echo.Echo, listingHandler *handler.ListingHandler, authMiddleware *middleware.AuthMiddleware) {
	// Catalog browsing is public
	e.GET("/api/ads", listingHandler.ListAds)
	e.GET("/api/ads/suggestions", listingHandler.Suggest)
	e.GET("/api/ads/facets", listingHandler.Facets)
	e.GET("/api/ads/user/:userId", listingHandler.ListUserAds)
	e.GET("/api/ads/:id", listingHandler.GetAd)

	// Mutations require a signed-in seller
	adsGroup := e.Group("/api/ads")
	adsGroup.Use(authMiddleware.Authenticate)
	adsGroup.POST("", listingHandler.CreateAd)
	adsGroup.PUT("/:id", listingHandler.UpdateAd)
	adsGroup.DELETE("/:id", listingHandler.DeleteAd)
}
