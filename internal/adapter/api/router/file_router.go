package router

import (
	"github.com/labstack/echo/v4"

	"github.com/shravanjnaidu/spicetrade/internal/adapter/api/handler"
	"github.com/shravanjnaidu/spicetrade/internal/adapter/api/middleware"
)

func SetupFileRouter(e *echo.Echo, fileHandler *handler.FileHandler, authMiddleware *middleware.AuthMiddleware) {
	e.POST("/api/upload", fileHandler.Upload, authMiddleware.Authenticate)
}
