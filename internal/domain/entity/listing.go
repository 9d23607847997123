package entity

import (
	"time"
)

// Listing is a seller's product post (the original API calls these "ads").
type Listing struct {
	ID          string    `json:"id" firestore:"id"`
	SellerID    string    `json:"userId" firestore:"sellerId"`
	Title       string    `json:"title" firestore:"title"`
	Description string    `json:"description" firestore:"description"`
	Category    string    `json:"category,omitempty" firestore:"category,omitempty"`
	Tags        []string  `json:"tags,omitempty" firestore:"tags,omitempty"`
	Price       *float64  `json:"price,omitempty" firestore:"price,omitempty"`
	Unit        string    `json:"unit,omitempty" firestore:"unit,omitempty"`
	MinOrder    int       `json:"minOrder,omitempty" firestore:"minOrder,omitempty"`
	Stock       int       `json:"stock,omitempty" firestore:"stock,omitempty"`
	Images      []string  `json:"images,omitempty" firestore:"images,omitempty"`
	Views       int       `json:"views" firestore:"views"`
	Verified    bool      `json:"verified" firestore:"verified"`
	CreatedAt   time.Time `json:"createdAt" firestore:"createdAt"`

	// Derived per read from the owning user, never stored on the listing.
	Author    string `json:"author,omitempty" firestore:"-"`
	StoreName string `json:"storeName,omitempty" firestore:"-"`
}

// ListingPatch carries a partial update: nil fields are left untouched.
type ListingPatch struct {
	Title       *string   `json:"title"`
	Description *string   `json:"description"`
	Category    *string   `json:"category"`
	Tags        *[]string `json:"tags"`
	Price       *float64  `json:"price"`
	Unit        *string   `json:"unit"`
	MinOrder    *int      `json:"minOrder"`
	Stock       *int      `json:"stock"`
	Images      *[]string `json:"images"`
}

// Apply mutates l with the fields present in the patch.
func (p ListingPatch) Apply(l *Listing) {
	if p.Title != nil {
		l.Title = *p.Title
	}
	if p.Description != nil {
		l.Description = *p.Description
	}
	if p.Category != nil {
		l.Category = *p.Category
	}
	if p.Tags != nil {
		l.Tags = *p.Tags
	}
	if p.Price != nil {
		l.Price = p.Price
	}
	if p.Unit != nil {
		l.Unit = *p.Unit
	}
	if p.MinOrder != nil {
		l.MinOrder = *p.MinOrder
	}
	if p.Stock != nil {
		l.Stock = *p.Stock
	}
	if p.Images != nil {
		l.Images = *p.Images
	}
}
