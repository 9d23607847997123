package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/shravanjnaidu/spicetrade/internal/usecase"
	"github.com/shravanjnaidu/spicetrade/pkg/errors"
	"github.com/shravanjnaidu/spicetrade/pkg/response"
)

type MessageHandler struct {
	messagingUseCase *usecase.MessagingUseCase
}

func NewMessageHandler(messagingUseCase *usecase.MessagingUseCase) *MessageHandler {
	return &MessageHandler{
		messagingUseCase: messagingUseCase,
	}
}

type startConversationRequest struct {
	BuyerID   string `json:"buyerId" validate:"required"`
	SellerID  string `json:"sellerId" validate:"required"`
	ListingID string `json:"adId"`
}

type sendMessageRequest struct {
	ConversationID string `json:"conversationId" validate:"required"`
	Body           string `json:"message" validate:"required"`
}

func (h *MessageHandler) ListConversations(c echo.Context) error {
	views, err := h.messagingUseCase.ListConversations(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.JSON(c, views)
}

func (h *MessageHandler) StartConversation(c echo.Context) error {
	var req startConversationRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request format", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	conversation, err := h.messagingUseCase.StartConversation(c.Request().Context(), usecase.StartConversationInput{
		BuyerID:   req.BuyerID,
		SellerID:  req.SellerID,
		ListingID: req.ListingID,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"conversationId": conversation.ID,
	})
}

func (h *MessageHandler) ListMessages(c echo.Context) error {
	messages, err := h.messagingUseCase.ListMessages(c.Request().Context(), c.Param("conversationId"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.JSON(c, messages)
}

func (h *MessageHandler) SendMessage(c echo.Context) error {
	senderID := c.Get("uid").(string)

	var req sendMessageRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request format", err))
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if _, err := h.messagingUseCase.SendMessage(c.Request().Context(), req.ConversationID, senderID, req.Body); err != nil {
		return response.Error(c, err)
	}
	return response.OK(c)
}

func (h *MessageHandler) MarkRead(c echo.Context) error {
	userID := c.Get("uid").(string)

	if err := h.messagingUseCase.MarkRead(c.Request().Context(), c.Param("conversationId"), userID); err != nil {
		return response.Error(c, err)
	}
	return response.OK(c)
}

func (h *MessageHandler) UnreadCount(c echo.Context) error {
	count, err := h.messagingUseCase.UnreadCount(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.JSON(c, map[string]int{"unreadCount": count})
}
