package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/shravanjnaidu/spicetrade/internal/domain/entity"
	"github.com/shravanjnaidu/spicetrade/internal/domain/repository"
	"github.com/shravanjnaidu/spicetrade/pkg/errors"
	"github.com/shravanjnaidu/spicetrade/pkg/logger"
)

// MessagingUseCase owns conversation lifecycle, message ordering, unread
// counters and read-state transitions.
type MessagingUseCase struct {
	conversationRepo repository.ConversationRepository
	userRepo         repository.UserRepository
	listingRepo      repository.ListingRepository
}

func NewMessagingUseCase(
	conversationRepo repository.ConversationRepository,
	userRepo repository.UserRepository,
	listingRepo repository.ListingRepository,
) *MessagingUseCase {
	return &MessagingUseCase{
		conversationRepo: conversationRepo,
		userRepo:         userRepo,
		listingRepo:      listingRepo,
	}
}

type StartConversationInput struct {
	BuyerID   string
	SellerID  string
	ListingID string
}

// StartConversation returns the conversation for the (buyer, seller, listing)
// triple, creating it when none exists yet. Repeated calls with the same
// triple reuse the same conversation, so a contact button mashed twice never
// produces a duplicate thread.
func (uc *MessagingUseCase) StartConversation(ctx context.Context, input StartConversationInput) (*entity.Conversation, error) {
	if input.BuyerID == "" || input.SellerID == "" {
		return nil, errors.BadRequest("buyerId and sellerId are required", nil)
	}
	if input.BuyerID == input.SellerID {
		return nil, errors.BadRequest("You cannot start a conversation with yourself", nil)
	}

	if _, err := uc.userRepo.GetByID(ctx, input.BuyerID); err != nil {
		return nil, errors.NotFound("Buyer", err)
	}
	if _, err := uc.userRepo.GetByID(ctx, input.SellerID); err != nil {
		return nil, errors.NotFound("Seller", err)
	}
	if input.ListingID != "" {
		if _, err := uc.listingRepo.GetByID(ctx, input.ListingID); err != nil {
			return nil, errors.NotFound("Listing", err)
		}
	}

	existing, err := uc.conversationRepo.FindByParticipants(ctx, input.BuyerID, input.SellerID, input.ListingID)
	if err == nil && existing != nil {
		return existing, nil
	}
	if err != nil && !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	conversation := &entity.Conversation{
		BuyerID:     input.BuyerID,
		SellerID:    input.SellerID,
		ListingID:   input.ListingID,
		UnreadCount: make(map[string]int),
		LastReadAt:  make(map[string]time.Time),
	}
	if err := uc.conversationRepo.Create(ctx, conversation); err != nil {
		return nil, err
	}
	return conversation, nil
}

// SendMessage appends an immutable message and bumps the other participant's
// unread counter.
func (uc *MessagingUseCase) SendMessage(ctx context.Context, conversationID, senderID, body string) (*entity.Message, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return nil, errors.BadRequest("message must not be empty", nil)
	}

	conversation, err := uc.conversationRepo.GetByID(ctx, conversationID)
	if err != nil {
		return nil, err
	}
	if !conversation.HasParticipant(senderID) {
		return nil, errors.Forbidden("User is not a participant in this conversation", nil)
	}

	message := &entity.Message{
		ConversationID: conversationID,
		SenderID:       senderID,
		Body:           body,
	}
	if err := uc.conversationRepo.CreateMessage(ctx, message); err != nil {
		return nil, err
	}

	conversation.LastMessage = body
	conversation.LastMessageAt = message.CreatedAt
	if conversation.UnreadCount == nil {
		conversation.UnreadCount = make(map[string]int)
	}
	conversation.UnreadCount[conversation.OtherParticipant(senderID)]++

	if err := uc.conversationRepo.Update(ctx, conversation); err != nil {
		return nil, err
	}
	return message, nil
}

// ListMessages returns the full history, (createdAt, id) ascending, with
// sender names resolved.
func (uc *MessagingUseCase) ListMessages(ctx context.Context, conversationID string) ([]*entity.Message, error) {
	if _, err := uc.conversationRepo.GetByID(ctx, conversationID); err != nil {
		return nil, err
	}

	messages, err := uc.conversationRepo.ListMessages(ctx, conversationID)
	if err != nil {
		return nil, err
	}

	senders := make(map[string]*entity.User)
	for _, message := range messages {
		sender, ok := senders[message.SenderID]
		if !ok {
			sender, err = uc.userRepo.GetByID(ctx, message.SenderID)
			if err != nil {
				logger.Warn("Sender %s not found for message %s: %v", message.SenderID, message.ID, err)
				continue
			}
			senders[message.SenderID] = sender
		}
		message.SenderName = sender.Name
		message.SenderPicture = sender.ProfilePicture
	}
	return messages, nil
}

// MarkRead advances the caller's watermark to now and zeroes their unread
// counter. Redundant calls are a no-op.
func (uc *MessagingUseCase) MarkRead(ctx context.Context, conversationID, userID string) error {
	conversation, err := uc.conversationRepo.GetByID(ctx, conversationID)
	if err != nil {
		return err
	}
	if !conversation.HasParticipant(userID) {
		return errors.Forbidden("User is not a participant in this conversation", nil)
	}
	return uc.conversationRepo.MarkRead(ctx, conversationID, userID, time.Now())
}

// UnreadCount sums the persisted per-conversation counters for the user.
func (uc *MessagingUseCase) UnreadCount(ctx context.Context, userID string) (int, error) {
	conversations, err := uc.conversationRepo.ListByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}

	total := 0
	for _, conversation := range conversations {
		total += conversation.UnreadCount[userID]
	}
	return total, nil
}

// ListConversations projects the user's conversations for display, most
// recent activity first. The other party's identity is viewer-relative: a
// buyer sees the seller's store identity, a seller sees the buyer's personal
// identity.
func (uc *MessagingUseCase) ListConversations(ctx context.Context, userID string) ([]*entity.ConversationView, error) {
	conversations, err := uc.conversationRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	users := make(map[string]*entity.User)
	lookup := func(id string) *entity.User {
		if u, ok := users[id]; ok {
			return u
		}
		u, err := uc.userRepo.GetByID(ctx, id)
		if err != nil {
			logger.Warn("Participant %s not found: %v", id, err)
			return nil
		}
		users[id] = u
		return u
	}

	views := make([]*entity.ConversationView, 0, len(conversations))
	for _, conversation := range conversations {
		view := &entity.ConversationView{
			Conversation:    *conversation,
			UnreadForViewer: conversation.UnreadCount[userID],
		}

		buyer := lookup(conversation.BuyerID)
		seller := lookup(conversation.SellerID)
		if buyer != nil {
			view.BuyerName = buyer.Name
			view.BuyerPicture = buyer.ProfilePicture
		}
		if seller != nil {
			view.SellerName = seller.Name
			view.SellerPicture = seller.ProfilePicture
			view.StoreName = seller.DisplayName()
		}

		if userID == conversation.BuyerID {
			if seller != nil {
				view.OtherPartyName = seller.DisplayName()
				view.OtherPartyPicture = seller.StorePicture()
			}
		} else {
			if buyer != nil {
				view.OtherPartyName = buyer.Name
				view.OtherPartyPicture = buyer.ProfilePicture
			}
		}

		views = append(views, view)
	}
	return views, nil
}
