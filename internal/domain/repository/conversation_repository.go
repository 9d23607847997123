package repository

import (
	"context"
	"time"

	"github.com/shravanjnaidu/spicetrade/internal/domain/entity"
)

type ConversationRepository interface {
	Create(ctx context.Context, conversation *entity.Conversation) error
	GetByID(ctx context.Context, id string) (*entity.Conversation, error)
	// FindByParticipants looks up the conversation for a (buyer, seller,
	// listing) triple; NOT_FOUND when none exists.
	FindByParticipants(ctx context.Context, buyerID, sellerID, listingID string) (*entity.Conversation, error)
	ListByUserID(ctx context.Context, userID string) ([]*entity.Conversation, error)
	Update(ctx context.Context, conversation *entity.Conversation) error

	CreateMessage(ctx context.Context, message *entity.Message) error
	// ListMessages returns the full history ordered by (createdAt, id)
	// ascending.
	ListMessages(ctx context.Context, conversationID string) ([]*entity.Message, error)
	// MarkRead zeroes userID's unread counter and advances their watermark.
	MarkRead(ctx context.Context, conversationID, userID string, at time.Time) error
}
