package repository

import (
	"context"
	"fmt"
	"sort"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/shravanjnaidu/spicetrade/internal/domain/entity"
	"github.com/shravanjnaidu/spicetrade/internal/domain/repository"
	"github.com/shravanjnaidu/spicetrade/pkg/errors"
)

// Conversations live in the "conversations" collection; each conversation's
// messages are a subcollection under its document.
type firestoreConversationRepository struct {
	client *firestore.Client
}

func NewFirestoreConversationRepository(client *firestore.Client) repository.ConversationRepository {
	return &firestoreConversationRepository{
		client: client,
	}
}

func (r *firestoreConversationRepository) Create(ctx context.Context, conversation *entity.Conversation) error {
	if conversation.ID == "" {
		conversation.ID = uuid.New().String()
	}
	now := time.Now()
	conversation.CreatedAt = now
	conversation.LastMessageAt = now
	if conversation.UnreadCount == nil {
		conversation.UnreadCount = make(map[string]int)
	}
	if conversation.LastReadAt == nil {
		conversation.LastReadAt = make(map[string]time.Time)
	}

	_, err := r.client.Collection("conversations").Doc(conversation.ID).Set(ctx, conversation)
	if err != nil {
		return errors.Internal("Failed to create conversation", err)
	}
	return nil
}

func (r *firestoreConversationRepository) GetByID(ctx context.Context, id string) (*entity.Conversation, error) {
	doc, err := r.client.Collection("conversations").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Conversation", err)
		}
		return nil, errors.Internal("Failed to get conversation", err)
	}

	var conversation entity.Conversation
	if err := doc.DataTo(&conversation); err != nil {
		return nil, errors.Internal("Failed to parse conversation data", err)
	}
	return &conversation, nil
}

func (r *firestoreConversationRepository) FindByParticipants(ctx context.Context, buyerID, sellerID, listingID string) (*entity.Conversation, error) {
	query := r.client.Collection("conversations").
		Where("buyerId", "==", buyerID).
		Where("sellerId", "==", sellerID).
		Where("listingId", "==", listingID).
		Limit(1)

	iter := query.Documents(ctx)
	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, errors.NotFound("Conversation", err)
	}
	if err != nil {
		return nil, errors.Internal("Failed to query conversation", err)
	}

	var conversation entity.Conversation
	if err := doc.DataTo(&conversation); err != nil {
		return nil, errors.Internal("Failed to parse conversation data", err)
	}
	return &conversation, nil
}

func (r *firestoreConversationRepository) ListByUserID(ctx context.Context, userID string) ([]*entity.Conversation, error) {
	// Firestore cannot OR across fields in one query; merge a buyer-side and
	// a seller-side query and order in memory.
	var conversations []*entity.Conversation
	for _, field := range []string{"buyerId", "sellerId"} {
		iter := r.client.Collection("conversations").Where(field, "==", userID).Documents(ctx)
		for {
			doc, err := iter.Next()
			if err == iterator.Done {
				break
			}
			if err != nil {
				return nil, errors.Internal("Failed to iterate conversations", err)
			}

			var conversation entity.Conversation
			if err := doc.DataTo(&conversation); err != nil {
				return nil, errors.Internal("Failed to parse conversation data", err)
			}
			conversations = append(conversations, &conversation)
		}
	}

	sort.SliceStable(conversations, func(i, j int) bool {
		return conversations[i].LastMessageAt.After(conversations[j].LastMessageAt)
	})
	return conversations, nil
}

func (r *firestoreConversationRepository) Update(ctx context.Context, conversation *entity.Conversation) error {
	_, err := r.client.Collection("conversations").Doc(conversation.ID).Set(ctx, conversation)
	if err != nil {
		return errors.Internal("Failed to update conversation", err)
	}
	return nil
}

func (r *firestoreConversationRepository) CreateMessage(ctx context.Context, message *entity.Message) error {
	if message.ID == "" {
		message.ID = uuid.New().String()
	}
	message.CreatedAt = time.Now()

	_, err := r.client.Collection("conversations").Doc(message.ConversationID).
		Collection("messages").Doc(message.ID).Set(ctx, message)
	if err != nil {
		return errors.Internal("Failed to create message", err)
	}
	return nil
}

func (r *firestoreConversationRepository) ListMessages(ctx context.Context, conversationID string) ([]*entity.Message, error) {
	query := r.client.Collection("conversations").Doc(conversationID).
		Collection("messages").OrderBy("createdAt", firestore.Asc)

	iter := query.Documents(ctx)
	var messages []*entity.Message
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate messages", err)
		}

		var message entity.Message
		if err := doc.DataTo(&message); err != nil {
			return nil, errors.Internal("Failed to parse message data", err)
		}
		messages = append(messages, &message)
	}

	// Equal timestamps fall back to id order so the display order is total.
	sort.SliceStable(messages, func(i, j int) bool {
		if messages[i].CreatedAt.Equal(messages[j].CreatedAt) {
			return messages[i].ID < messages[j].ID
		}
		return messages[i].CreatedAt.Before(messages[j].CreatedAt)
	})
	return messages, nil
}

func (r *firestoreConversationRepository) MarkRead(ctx context.Context, conversationID, userID string, at time.Time) error {
	_, err := r.client.Collection("conversations").Doc(conversationID).Update(ctx, []firestore.Update{
		{Path: fmt.Sprintf("unreadCount.%s", userID), Value: 0},
		{Path: fmt.Sprintf("lastReadAt.%s", userID), Value: at},
	})
	if err != nil {
		return errors.Internal("Failed to mark conversation read", err)
	}
	return nil
}
