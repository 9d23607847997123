package router

import (
	"github.com/labstack/echo/v4"

	"github.com/shravanjnaidu/spicetrade/internal/adapter/api/handler"
)

func SetupAuthRouter(e *echo.Echo, authHandler *handler.AuthHandler) {
	e.POST("/api/signup", authHandler.Signup)
	e.POST("/api/login", authHandler.Login)
}
