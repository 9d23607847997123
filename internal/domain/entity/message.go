package entity

import "time"

// Message is immutable once created; there is no edit or delete.
type Message struct {
	ID             string    `json:"id" firestore:"id"`
	ConversationID string    `json:"conversationId" firestore:"conversationId"`
	SenderID       string    `json:"senderId" firestore:"senderId"`
	Body           string    `json:"message" firestore:"body"`
	CreatedAt      time.Time `json:"createdAt" firestore:"createdAt"`

	// Derived per read from the sending user.
	SenderName    string `json:"senderName,omitempty" firestore:"-"`
	SenderPicture string `json:"senderPicture,omitempty" firestore:"-"`
}
