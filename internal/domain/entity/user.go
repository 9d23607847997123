package entity

import (
	"time"
)

type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
)

// StoreProfile is the seller-facing identity. It exists only for users with
// RoleSeller; buyers are always presented under their personal name.
type StoreProfile struct {
	StoreName    string `json:"storeName" firestore:"storeName"`
	BusinessType string `json:"businessType,omitempty" firestore:"businessType,omitempty"`
	Categories   string `json:"categories,omitempty" firestore:"categories,omitempty"`
	Address      string `json:"address,omitempty" firestore:"address,omitempty"`
	Website      string `json:"website,omitempty" firestore:"website,omitempty"`
	LogoURL      string `json:"logo,omitempty" firestore:"logoUrl,omitempty"`
}

type User struct {
	ID             string        `json:"id" firestore:"id"`
	Name           string        `json:"name" firestore:"name"`
	Email          string        `json:"email" firestore:"email"`
	PasswordHash   string        `json:"-" firestore:"passwordHash"`
	Phone          string        `json:"phone,omitempty" firestore:"phone,omitempty"`
	Role           Role          `json:"role" firestore:"role"`
	ProfilePicture string        `json:"profilePicture,omitempty" firestore:"profilePicture,omitempty"`
	Store          *StoreProfile `json:"store,omitempty" firestore:"store,omitempty"`
	CreatedAt      time.Time     `json:"createdAt" firestore:"createdAt"`
}

// DisplayName resolves the name shown for this user when they appear as the
// seller side of a conversation or listing: the store identity when one
// exists, the personal name otherwise.
func (u *User) DisplayName() string {
	if u.Role == RoleSeller && u.Store != nil && u.Store.StoreName != "" {
		return u.Store.StoreName
	}
	return u.Name
}

// StorePicture returns the image used for the seller-facing identity.
func (u *User) StorePicture() string {
	if u.Role == RoleSeller && u.Store != nil && u.Store.LogoURL != "" {
		return u.Store.LogoURL
	}
	return u.ProfilePicture
}
