package entity

import "time"

type Review struct {
	ID        string    `json:"id" firestore:"id"`
	ListingID string    `json:"adId" firestore:"listingId"`
	UserID    string    `json:"userId" firestore:"userId"`
	Rating    int       `json:"rating" firestore:"rating"` // 1-5
	Text      string    `json:"text,omitempty" firestore:"text,omitempty"`
	CreatedAt time.Time `json:"createdAt" firestore:"createdAt"`

	// Derived per read from the reviewing user.
	ReviewerName string `json:"reviewerName,omitempty" firestore:"-"`
}

// ReviewStats aggregates the reviews of one listing.
type ReviewStats struct {
	AverageRating float64     `json:"averageRating"`
	ReviewCount   int         `json:"reviewCount"`
	Distribution  map[int]int `json:"distribution"`
}
