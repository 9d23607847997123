package entity

import "time"

// Conversation is a buyer/seller thread, optionally anchored to a listing.
//
// UnreadCount and LastReadAt are keyed by user id. UnreadCount is the
// denormalized counter bumped on every send and zeroed on mark-read, so the
// badge query is O(conversations) rather than a message rescan. LastReadAt is
// the authoritative "read up to" watermark advanced by mark-read; a message is
// unread for U when U is not its sender and it was created after U's watermark.
type Conversation struct {
	ID          string               `json:"id" firestore:"id"`
	BuyerID     string               `json:"buyerId" firestore:"buyerId"`
	SellerID    string               `json:"sellerId" firestore:"sellerId"`
	// ListingID must be stored even when empty: FindByParticipants filters on
	// listingId equality, and a Firestore filter for "" never matches documents
	// that omitted the field.
	ListingID   string               `json:"listingId,omitempty" firestore:"listingId"`
	CreatedAt   time.Time            `json:"createdAt" firestore:"createdAt"`
	LastMessage string               `json:"lastMessage,omitempty" firestore:"lastMessage,omitempty"`
	LastMessageAt time.Time          `json:"lastMessageTime" firestore:"lastMessageAt"`
	UnreadCount map[string]int       `json:"-" firestore:"unreadCount"`
	LastReadAt  map[string]time.Time `json:"-" firestore:"lastReadAt"`
}

// HasParticipant reports whether userID is the buyer or the seller.
func (c *Conversation) HasParticipant(userID string) bool {
	return userID == c.BuyerID || userID == c.SellerID
}

// OtherParticipant returns the id of the party opposite userID.
func (c *Conversation) OtherParticipant(userID string) string {
	if userID == c.BuyerID {
		return c.SellerID
	}
	return c.BuyerID
}

// ConversationView is a conversation projected for one viewer, with the
// derived fields the conversation list renders.
type ConversationView struct {
	Conversation
	BuyerName         string `json:"buyerName,omitempty"`
	BuyerPicture      string `json:"buyerPicture,omitempty"`
	SellerName        string `json:"sellerName,omitempty"`
	SellerPicture     string `json:"sellerPicture,omitempty"`
	StoreName         string `json:"storeName,omitempty"`
	OtherPartyName    string `json:"otherPartyName"`
	OtherPartyPicture string `json:"otherPartyPicture,omitempty"`
	UnreadForViewer   int    `json:"unreadCount"`
}
