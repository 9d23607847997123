package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shravanjnaidu/spicetrade/internal/domain/entity"
	"github.com/shravanjnaidu/spicetrade/pkg/errors"
)

type messagingFixture struct {
	uc       *MessagingUseCase
	users    *fakeUserRepo
	listings *fakeListingRepo
	convs    *fakeConversationRepo
	buyer    *entity.User
	seller   *entity.User
	listing  *entity.Listing
}

func newMessagingFixture(t *testing.T) *messagingFixture {
	t.Helper()
	clock := newFakeClock()
	users := newFakeUserRepo(clock)
	listings := newFakeListingRepo(clock)
	convs := newFakeConversationRepo(clock)

	buyer := &entity.User{Name: "Priya Raman", Email: "priya@example.com", Role: entity.RoleBuyer, ProfilePicture: "priya.jpg"}
	seller := &entity.User{
		Name:           "Arjun Nair",
		Email:          "arjun@example.com",
		Role:           entity.RoleSeller,
		ProfilePicture: "arjun.jpg",
		Store:          &entity.StoreProfile{StoreName: "Malabar Spice Co", LogoURL: "malabar-logo.png"},
	}
	require.NoError(t, users.Create(context.Background(), buyer))
	require.NoError(t, users.Create(context.Background(), seller))

	price := 450.0
	listing := &entity.Listing{Title: "Tellicherry Black Pepper", Description: "Bold grade", SellerID: seller.ID, Price: &price}
	require.NoError(t, listings.Create(context.Background(), listing))

	return &messagingFixture{
		uc:       NewMessagingUseCase(convs, users, listings),
		users:    users,
		listings: listings,
		convs:    convs,
		buyer:    buyer,
		seller:   seller,
		listing:  listing,
	}
}

func TestStartConversationThenSendNeverMissing(t *testing.T) {
	f := newMessagingFixture(t)
	ctx := context.Background()

	conversation, err := f.uc.StartConversation(ctx, StartConversationInput{
		BuyerID:   f.buyer.ID,
		SellerID:  f.seller.ID,
		ListingID: f.listing.ID,
	})
	require.NoError(t, err)
	require.NotEmpty(t, conversation.ID)

	_, err = f.uc.SendMessage(ctx, conversation.ID, f.buyer.ID, "Is this available?")
	require.NoError(t, err)
}

func TestStartConversationDeduplicatesTriple(t *testing.T) {
	f := newMessagingFixture(t)
	ctx := context.Background()

	first, err := f.uc.StartConversation(ctx, StartConversationInput{
		BuyerID:   f.buyer.ID,
		SellerID:  f.seller.ID,
		ListingID: f.listing.ID,
	})
	require.NoError(t, err)

	second, err := f.uc.StartConversation(ctx, StartConversationInput{
		BuyerID:   f.buyer.ID,
		SellerID:  f.seller.ID,
		ListingID: f.listing.ID,
	})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestStartConversationValidation(t *testing.T) {
	f := newMessagingFixture(t)
	ctx := context.Background()

	_, err := f.uc.StartConversation(ctx, StartConversationInput{BuyerID: "", SellerID: f.seller.ID})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	_, err = f.uc.StartConversation(ctx, StartConversationInput{BuyerID: f.buyer.ID, SellerID: f.buyer.ID})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	_, err = f.uc.StartConversation(ctx, StartConversationInput{BuyerID: f.buyer.ID, SellerID: "nobody"})
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestSendMessageAppendsAndBumpsUnread(t *testing.T) {
	f := newMessagingFixture(t)
	ctx := context.Background()

	conversation, err := f.uc.StartConversation(ctx, StartConversationInput{
		BuyerID:   f.buyer.ID,
		SellerID:  f.seller.ID,
		ListingID: f.listing.ID,
	})
	require.NoError(t, err)

	_, err = f.uc.SendMessage(ctx, conversation.ID, f.buyer.ID, "Is this available?")
	require.NoError(t, err)
	sent, err := f.uc.SendMessage(ctx, conversation.ID, f.buyer.ID, "Could you ship 5kg?")
	require.NoError(t, err)

	messages, err := f.uc.ListMessages(ctx, conversation.ID)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "Is this available?", messages[0].Body)
	assert.Equal(t, sent.ID, messages[1].ID)
	assert.Equal(t, "Priya Raman", messages[0].SenderName)

	updated, err := f.convs.GetByID(ctx, conversation.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, updated.UnreadCount[f.seller.ID])
	assert.Equal(t, 0, updated.UnreadCount[f.buyer.ID])
	assert.Equal(t, "Could you ship 5kg?", updated.LastMessage)
}

func TestSendMessageRejectsBlankAndOutsiders(t *testing.T) {
	f := newMessagingFixture(t)
	ctx := context.Background()

	conversation, err := f.uc.StartConversation(ctx, StartConversationInput{
		BuyerID:   f.buyer.ID,
		SellerID:  f.seller.ID,
		ListingID: f.listing.ID,
	})
	require.NoError(t, err)

	_, err = f.uc.SendMessage(ctx, conversation.ID, f.buyer.ID, "   ")
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	outsider := &entity.User{Name: "Kiran", Email: "kiran@example.com", Role: entity.RoleBuyer}
	require.NoError(t, f.users.Create(ctx, outsider))
	_, err = f.uc.SendMessage(ctx, conversation.ID, outsider.ID, "hello")
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}

func TestUnreadFlowAcrossMarkRead(t *testing.T) {
	f := newMessagingFixture(t)
	ctx := context.Background()

	conversation, err := f.uc.StartConversation(ctx, StartConversationInput{
		BuyerID:   f.buyer.ID,
		SellerID:  f.seller.ID,
		ListingID: f.listing.ID,
	})
	require.NoError(t, err)

	_, err = f.uc.SendMessage(ctx, conversation.ID, f.buyer.ID, "Is this available?")
	require.NoError(t, err)

	sellerViews, err := f.uc.ListConversations(ctx, f.seller.ID)
	require.NoError(t, err)
	require.Len(t, sellerViews, 1)
	assert.Equal(t, 1, sellerViews[0].UnreadForViewer)

	total, err := f.uc.UnreadCount(ctx, f.seller.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, total)

	require.NoError(t, f.uc.MarkRead(ctx, conversation.ID, f.seller.ID))

	total, err = f.uc.UnreadCount(ctx, f.seller.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, total)

	// redundant markRead stays at zero
	require.NoError(t, f.uc.MarkRead(ctx, conversation.ID, f.seller.ID))
	total, err = f.uc.UnreadCount(ctx, f.seller.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, total)
}

func TestMarkReadParticipantOnly(t *testing.T) {
	f := newMessagingFixture(t)
	ctx := context.Background()

	conversation, err := f.uc.StartConversation(ctx, StartConversationInput{
		BuyerID:   f.buyer.ID,
		SellerID:  f.seller.ID,
		ListingID: f.listing.ID,
	})
	require.NoError(t, err)

	outsider := &entity.User{Name: "Kiran", Email: "kiran@example.com", Role: entity.RoleBuyer}
	require.NoError(t, f.users.Create(ctx, outsider))

	err = f.uc.MarkRead(ctx, conversation.ID, outsider.ID)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	err = f.uc.MarkRead(ctx, "missing-conv", f.buyer.ID)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestConversationIdentityIsViewerRelative(t *testing.T) {
	f := newMessagingFixture(t)
	ctx := context.Background()

	_, err := f.uc.StartConversation(ctx, StartConversationInput{
		BuyerID:   f.buyer.ID,
		SellerID:  f.seller.ID,
		ListingID: f.listing.ID,
	})
	require.NoError(t, err)

	buyerViews, err := f.uc.ListConversations(ctx, f.buyer.ID)
	require.NoError(t, err)
	require.Len(t, buyerViews, 1)
	assert.Equal(t, "Malabar Spice Co", buyerViews[0].OtherPartyName)
	assert.Equal(t, "malabar-logo.png", buyerViews[0].OtherPartyPicture)

	sellerViews, err := f.uc.ListConversations(ctx, f.seller.ID)
	require.NoError(t, err)
	require.Len(t, sellerViews, 1)
	assert.Equal(t, "Priya Raman", sellerViews[0].OtherPartyName)
	assert.Equal(t, "priya.jpg", sellerViews[0].OtherPartyPicture)
}

func TestConversationsOrderedByRecentActivity(t *testing.T) {
	f := newMessagingFixture(t)
	ctx := context.Background()

	otherSeller := &entity.User{
		Name:  "Meera Pillai",
		Email: "meera@example.com",
		Role:  entity.RoleSeller,
		Store: &entity.StoreProfile{StoreName: "Cochin Cardamom House"},
	}
	require.NoError(t, f.users.Create(ctx, otherSeller))

	first, err := f.uc.StartConversation(ctx, StartConversationInput{BuyerID: f.buyer.ID, SellerID: f.seller.ID, ListingID: f.listing.ID})
	require.NoError(t, err)
	second, err := f.uc.StartConversation(ctx, StartConversationInput{BuyerID: f.buyer.ID, SellerID: otherSeller.ID})
	require.NoError(t, err)

	// a new message in the first thread moves it back to the top
	_, err = f.uc.SendMessage(ctx, first.ID, f.buyer.ID, "Still interested")
	require.NoError(t, err)

	views, err := f.uc.ListConversations(ctx, f.buyer.ID)
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, first.ID, views[0].ID)
	assert.Equal(t, second.ID, views[1].ID)
}
