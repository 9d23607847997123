package router

import (
	"github.com/labstack/echo/v4"

	"github.com/shravanjnaidu/spicetrade/internal/adapter/api/handler"
)

func SetupUserRouter(e *echo.Echo, userHandler *handler.UserHandler) {
	e.GET("/api/stores", userHandler.ListStores)
	e.GET("/api/users/:id", userHandler.GetUser)
}
