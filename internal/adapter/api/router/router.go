package router

import (
	"github.com/labstack/echo/v4"

	"github.com/shravanjnaidu/spicetrade/internal/adapter/api/handler"
	"github.com/shravanjnaidu/spicetrade/internal/adapter/api/middleware"
)

// Handlers bundles everything the router wires up.
type Handlers struct {
	Auth     *handler.AuthHandler
	User     *handler.UserHandler
	Listing  *handler.ListingHandler
	Message  *handler.MessageHandler
	Wishlist *handler.WishlistHandler
	Review   *handler.ReviewHandler
	File     *handler.FileHandler
	Health   *handler.HealthHandler
}

func Setup(e *echo.Echo, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	SetupAuthRouter(e, h.Auth)
	SetupUserRouter(e, h.User)
	SetupListingRouter(e, h.Listing, authMiddleware)
	SetupMessageRouter(e, h.Message, authMiddleware)
	SetupWishlistRouter(e, h.Wishlist, authMiddleware)
	SetupReviewRouter(e, h.Review, authMiddleware)
	SetupFileRouter(e, h.File, authMiddleware)
	SetupHealthRouter(e, h.Health)
}
