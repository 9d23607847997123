package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shravanjnaidu/spicetrade/internal/domain/entity"
	"github.com/shravanjnaidu/spicetrade/pkg/errors"
)

// In-memory repository fakes. Timestamps are assigned from a shared monotonic
// clock so ordering assertions are deterministic regardless of wall-clock
// resolution.

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 15, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) next() time.Time {
	c.now = c.now.Add(time.Second)
	return c.now
}

type fakeUserRepo struct {
	clock *fakeClock
	seq   int
	users map[string]*entity.User
}

func newFakeUserRepo(clock *fakeClock) *fakeUserRepo {
	return &fakeUserRepo{clock: clock, users: make(map[string]*entity.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	if user.ID == "" {
		r.seq++
		user.ID = fmt.Sprintf("user-%d", r.seq)
	}
	user.CreatedAt = r.clock.next()
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	return user, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) ListSellers(_ context.Context, limit int) ([]*entity.User, error) {
	var sellers []*entity.User
	for _, user := range r.users {
		if user.Role == entity.RoleSeller {
			sellers = append(sellers, user)
		}
	}
	sort.Slice(sellers, func(i, j int) bool {
		return sellers[i].CreatedAt.After(sellers[j].CreatedAt)
	})
	if limit > 0 && len(sellers) > limit {
		sellers = sellers[:limit]
	}
	return sellers, nil
}

type fakeListingRepo struct {
	clock    *fakeClock
	seq      int
	listings []*entity.Listing
}

func newFakeListingRepo(clock *fakeClock) *fakeListingRepo {
	return &fakeListingRepo{clock: clock}
}

func (r *fakeListingRepo) Create(_ context.Context, listing *entity.Listing) error {
	if listing.ID == "" {
		r.seq++
		listing.ID = fmt.Sprintf("listing-%d", r.seq)
	}
	listing.CreatedAt = r.clock.next()
	r.listings = append(r.listings, listing)
	return nil
}

func (r *fakeListingRepo) GetByID(_ context.Context, id string) (*entity.Listing, error) {
	for _, listing := range r.listings {
		if listing.ID == id {
			return listing, nil
		}
	}
	return nil, errors.NotFound("Listing", nil)
}

func (r *fakeListingRepo) List(_ context.Context) ([]*entity.Listing, error) {
	out := make([]*entity.Listing, len(r.listings))
	for i, listing := range r.listings {
		out[len(r.listings)-1-i] = listing // newest first
	}
	return out, nil
}

func (r *fakeListingRepo) ListBySellerID(ctx context.Context, sellerID string) ([]*entity.Listing, error) {
	all, _ := r.List(ctx)
	var out []*entity.Listing
	for _, listing := range all {
		if listing.SellerID == sellerID {
			out = append(out, listing)
		}
	}
	return out, nil
}

func (r *fakeListingRepo) Update(_ context.Context, listing *entity.Listing) error {
	for i, existing := range r.listings {
		if existing.ID == listing.ID {
			r.listings[i] = listing
			return nil
		}
	}
	return errors.NotFound("Listing", nil)
}

func (r *fakeListingRepo) Delete(_ context.Context, id string) error {
	for i, listing := range r.listings {
		if listing.ID == id {
			r.listings = append(r.listings[:i], r.listings[i+1:]...)
			return nil
		}
	}
	return errors.NotFound("Listing", nil)
}

func (r *fakeListingRepo) IncrementViews(ctx context.Context, id string) error {
	listing, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}
	listing.Views++
	return nil
}

type fakeConversationRepo struct {
	clock         *fakeClock
	seq           int
	conversations map[string]*entity.Conversation
	messages      map[string][]*entity.Message
}

func newFakeConversationRepo(clock *fakeClock) *fakeConversationRepo {
	return &fakeConversationRepo{
		clock:         clock,
		conversations: make(map[string]*entity.Conversation),
		messages:      make(map[string][]*entity.Message),
	}
}

func (r *fakeConversationRepo) Create(_ context.Context, conversation *entity.Conversation) error {
	if conversation.ID == "" {
		r.seq++
		conversation.ID = fmt.Sprintf("conv-%d", r.seq)
	}
	now := r.clock.next()
	conversation.CreatedAt = now
	conversation.LastMessageAt = now
	if conversation.UnreadCount == nil {
		conversation.UnreadCount = make(map[string]int)
	}
	if conversation.LastReadAt == nil {
		conversation.LastReadAt = make(map[string]time.Time)
	}
	r.conversations[conversation.ID] = conversation
	return nil
}

func (r *fakeConversationRepo) GetByID(_ context.Context, id string) (*entity.Conversation, error) {
	conversation, ok := r.conversations[id]
	if !ok {
		return nil, errors.NotFound("Conversation", nil)
	}
	return conversation, nil
}

func (r *fakeConversationRepo) FindByParticipants(_ context.Context, buyerID, sellerID, listingID string) (*entity.Conversation, error) {
	for _, c := range r.conversations {
		if c.BuyerID == buyerID && c.SellerID == sellerID && c.ListingID == listingID {
			return c, nil
		}
	}
	return nil, errors.NotFound("Conversation", nil)
}

func (r *fakeConversationRepo) ListByUserID(_ context.Context, userID string) ([]*entity.Conversation, error) {
	var out []*entity.Conversation
	for _, c := range r.conversations {
		if c.HasParticipant(userID) {
			out = append(out, c)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].LastMessageAt.After(out[j].LastMessageAt)
	})
	return out, nil
}

func (r *fakeConversationRepo) Update(_ context.Context, conversation *entity.Conversation) error {
	r.conversations[conversation.ID] = conversation
	return nil
}

func (r *fakeConversationRepo) CreateMessage(_ context.Context, message *entity.Message) error {
	if message.ID == "" {
		r.seq++
		message.ID = fmt.Sprintf("msg-%d", r.seq)
	}
	message.CreatedAt = r.clock.next()
	r.messages[message.ConversationID] = append(r.messages[message.ConversationID], message)
	return nil
}

func (r *fakeConversationRepo) ListMessages(_ context.Context, conversationID string) ([]*entity.Message, error) {
	messages := r.messages[conversationID]
	out := make([]*entity.Message, len(messages))
	copy(out, messages)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

func (r *fakeConversationRepo) MarkRead(_ context.Context, conversationID, userID string, at time.Time) error {
	conversation, ok := r.conversations[conversationID]
	if !ok {
		return errors.NotFound("Conversation", nil)
	}
	conversation.UnreadCount[userID] = 0
	conversation.LastReadAt[userID] = at
	return nil
}

type fakeWishlistRepo struct {
	clock *fakeClock
	seq   int
	items []*entity.WishlistItem
}

func newFakeWishlistRepo(clock *fakeClock) *fakeWishlistRepo {
	return &fakeWishlistRepo{clock: clock}
}

func (r *fakeWishlistRepo) Add(_ context.Context, item *entity.WishlistItem) error {
	if item.ID == "" {
		r.seq++
		item.ID = fmt.Sprintf("wish-%d", r.seq)
	}
	item.CreatedAt = r.clock.next()
	r.items = append(r.items, item)
	return nil
}

func (r *fakeWishlistRepo) GetByID(_ context.Context, id string) (*entity.WishlistItem, error) {
	for _, item := range r.items {
		if item.ID == id {
			return item, nil
		}
	}
	return nil, errors.NotFound("Wishlist item", nil)
}

func (r *fakeWishlistRepo) Find(_ context.Context, userID, listingID string) (*entity.WishlistItem, error) {
	for _, item := range r.items {
		if item.UserID == userID && item.ListingID == listingID {
			return item, nil
		}
	}
	return nil, errors.NotFound("Wishlist item", nil)
}

func (r *fakeWishlistRepo) ListByUserID(_ context.Context, userID string) ([]*entity.WishlistItem, error) {
	var out []*entity.WishlistItem
	for _, item := range r.items {
		if item.UserID == userID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *fakeWishlistRepo) Remove(_ context.Context, id string) error {
	for i, item := range r.items {
		if item.ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return nil
		}
	}
	return errors.NotFound("Wishlist item", nil)
}

type fakeReviewRepo struct {
	clock   *fakeClock
	seq     int
	reviews []*entity.Review
}

func newFakeReviewRepo(clock *fakeClock) *fakeReviewRepo {
	return &fakeReviewRepo{clock: clock}
}

func (r *fakeReviewRepo) Create(_ context.Context, review *entity.Review) error {
	if review.ID == "" {
		r.seq++
		review.ID = fmt.Sprintf("review-%d", r.seq)
	}
	review.CreatedAt = r.clock.next()
	r.reviews = append(r.reviews, review)
	return nil
}

func (r *fakeReviewRepo) GetByID(_ context.Context, id string) (*entity.Review, error) {
	for _, review := range r.reviews {
		if review.ID == id {
			return review, nil
		}
	}
	return nil, errors.NotFound("Review", nil)
}

func (r *fakeReviewRepo) FindByUserAndListing(_ context.Context, userID, listingID string) (*entity.Review, error) {
	for _, review := range r.reviews {
		if review.UserID == userID && review.ListingID == listingID {
			return review, nil
		}
	}
	return nil, errors.NotFound("Review", nil)
}

func (r *fakeReviewRepo) ListByListingID(_ context.Context, listingID string) ([]*entity.Review, error) {
	var out []*entity.Review
	for _, review := range r.reviews {
		if review.ListingID == listingID {
			out = append(out, review)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *fakeReviewRepo) Delete(_ context.Context, id string) error {
	for i, review := range r.reviews {
		if review.ID == id {
			r.reviews = append(r.reviews[:i], r.reviews[i+1:]...)
			return nil
		}
	}
	return errors.NotFound("Review", nil)
}
