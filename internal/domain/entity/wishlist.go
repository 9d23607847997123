package entity

import "time"

// WishlistItem is unique per (UserID, ListingID); adding a duplicate returns
// the existing entry instead of creating a second row.
type WishlistItem struct {
	ID        string    `json:"wishlistId" firestore:"id"`
	UserID    string    `json:"userId" firestore:"userId"`
	ListingID string    `json:"listingId" firestore:"listingId"`
	CreatedAt time.Time `json:"addedAt" firestore:"createdAt"`
}

type WishlistItemWithListing struct {
	WishlistItem
	Listing *Listing `json:"listing"`
}
