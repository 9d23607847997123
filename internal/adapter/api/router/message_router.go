package router

import (
	"github.com/labstack/echo/v4"

	"github.com/shravanjnaidu/spicetrade/internal/adapter/api/handler"
	"github.com/shravanjnaidu/spicetrade/internal/adapter/api/middleware"
)

func SetupMessageRouter(e *echo.Echo, messageHandler *handler.MessageHandler, authMiddleware *middleware.AuthMiddleware) {
	conversationGroup := e.Group("/api/conversations")
	conversationGroup.Use(authMiddleware.Authenticate)
	conversationGroup.GET("/:userId", messageHandler.ListConversations)
	conversationGroup.POST("", messageHandler.StartConversation)

	messageGroup := e.Group("/api/messages")
	messageGroup.Use(authMiddleware.Authenticate)
	messageGroup.GET("/unread/:userId", messageHandler.UnreadCount)
	messageGroup.POST("/mark-read/:conversationId", messageHandler.MarkRead)
	messageGroup.GET("/:conversationId", messageHandler.ListMessages)
	messageGroup.POST("", messageHandler.SendMessage)
}
