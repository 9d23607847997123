package client

import "time"

// Wire types mirror the API's JSON shapes. They are deliberately independent
// of the server's internal entities so the package can be vendored into other
// tools without dragging the server along.

type User struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Email          string        `json:"email"`
	Phone          string        `json:"phone,omitempty"`
	Role           string        `json:"role"`
	ProfilePicture string        `json:"profilePicture,omitempty"`
	Store          *StoreProfile `json:"store,omitempty"`
	CreatedAt      time.Time     `json:"createdAt"`
}

type StoreProfile struct {
	StoreName    string `json:"storeName"`
	BusinessType string `json:"businessType,omitempty"`
	Categories   string `json:"categories,omitempty"`
	Address      string `json:"address,omitempty"`
	Website      string `json:"website,omitempty"`
	LogoURL      string `json:"logo,omitempty"`
}

type AuthResult struct {
	User  User   `json:"user"`
	Token string `json:"token"`
}

type Ad struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category,omitempty"`
	Tags        []string  `json:"tags,omitempty"`
	Price       *float64  `json:"price,omitempty"`
	Unit        string    `json:"unit,omitempty"`
	MinOrder    int       `json:"minOrder,omitempty"`
	Stock       int       `json:"stock,omitempty"`
	Images      []string  `json:"images,omitempty"`
	Views       int       `json:"views"`
	Author      string    `json:"author,omitempty"`
	StoreName   string    `json:"storeName,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

type FacetCounts struct {
	Categories map[string]int `json:"categories"`
	Tags       map[string]int `json:"tags"`
	Stores     map[string]int `json:"stores"`
}

type Conversation struct {
	ID                string    `json:"id"`
	BuyerID           string    `json:"buyerId"`
	SellerID          string    `json:"sellerId"`
	ListingID         string    `json:"listingId,omitempty"`
	LastMessage       string    `json:"lastMessage,omitempty"`
	LastMessageAt     time.Time `json:"lastMessageTime"`
	StoreName         string    `json:"storeName,omitempty"`
	OtherPartyName    string    `json:"otherPartyName"`
	OtherPartyPicture string    `json:"otherPartyPicture,omitempty"`
	UnreadCount       int       `json:"unreadCount"`
	CreatedAt         time.Time `json:"createdAt"`
}

type Message struct {
	ID             string    `json:"id"`
	ConversationID string    `json:"conversationId"`
	SenderID       string    `json:"senderId"`
	Body           string    `json:"message"`
	SenderName     string    `json:"senderName,omitempty"`
	SenderPicture  string    `json:"senderPicture,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

type WishlistItem struct {
	WishlistID string    `json:"wishlistId"`
	UserID     string    `json:"userId"`
	ListingID  string    `json:"listingId"`
	AddedAt    time.Time `json:"addedAt"`
	Listing    *Ad       `json:"listing,omitempty"`
}

type Review struct {
	ID           string    `json:"id"`
	AdID         string    `json:"adId"`
	UserID       string    `json:"userId"`
	Rating       int       `json:"rating"`
	Text         string    `json:"text,omitempty"`
	ReviewerName string    `json:"reviewerName,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

type ReviewStats struct {
	AverageRating float64     `json:"averageRating"`
	ReviewCount   int         `json:"reviewCount"`
	Distribution  map[int]int `json:"distribution"`
}

// AdQuery carries the catalog search, filter and sort parameters.
type AdQuery struct {
	Search   string
	Category string
	Tags     []string
	Stores   []string
	MinPrice *float64
	MaxPrice *float64
	Sort     string
}

type NewAd struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Category    string   `json:"category,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Unit        string   `json:"unit,omitempty"`
	MinOrder    int      `json:"minOrder,omitempty"`
	Stock       int      `json:"stock,omitempty"`
	Images      []string `json:"images,omitempty"`
}

type SignupRequest struct {
	Name     string        `json:"name"`
	Email    string        `json:"email"`
	Password string        `json:"password"`
	Phone    string        `json:"phone,omitempty"`
	Role     string        `json:"role,omitempty"`
	Store    *StoreProfile `json:"store,omitempty"`
}
