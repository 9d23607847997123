package client

import (
	"context"
	"sync"
	"time"

	"github.com/shravanjnaidu/spicetrade/pkg/logger"
)

const (
	conversationPollInterval = 5 * time.Second
	chatPollInterval         = 2 * time.Second
)

// ConversationPoller refreshes a user's conversation list and unread badge on
// a fixed interval. A failed poll is skipped; the previous state stays on
// screen and the next tick tries again.
type ConversationPoller struct {
	client   *Client
	userID   string
	interval time.Duration
	onUpdate func(conversations []Conversation, unreadCount int)

	stopOnce sync.Once
	stop     chan struct{}
}

func NewConversationPoller(c *Client, userID string, onUpdate func([]Conversation, int)) *ConversationPoller {
	return &ConversationPoller{
		client:   c,
		userID:   userID,
		interval: conversationPollInterval,
		onUpdate: onUpdate,
		stop:     make(chan struct{}),
	}
}

// Start polls immediately and then on every tick until Stop is called or ctx
// is cancelled.
func (p *ConversationPoller) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		p.poll(ctx)
		for {
			select {
			case <-ticker.C:
				p.poll(ctx)
			case <-p.stop:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop halts polling. Safe to call more than once.
func (p *ConversationPoller) Stop() {
	p.stopOnce.Do(func() {
		close(p.stop)
	})
}

func (p *ConversationPoller) poll(ctx context.Context) {
	conversations, err := p.client.ListConversations(ctx, p.userID)
	if err != nil {
		logger.Warn("conversation poll for user %s failed: %v", p.userID, err)
		return
	}
	unread, err := p.client.UnreadCount(ctx, p.userID)
	if err != nil {
		logger.Warn("unread count poll for user %s failed: %v", p.userID, err)
		return
	}
	p.onUpdate(conversations, unread)
}

// ChatPoller refreshes one open conversation. Only a poll that brings back
// more messages than the previous one delivers a snapshot and marks the
// conversation read; unchanged polls do nothing, so an idle chat never
// generates callback churn or mark-read traffic.
type ChatPoller struct {
	client         *Client
	conversationID string
	interval       time.Duration
	onMessages     func(messages []Message)

	lastCount int
	stopOnce  sync.Once
	stop      chan struct{}
}

func NewChatPoller(c *Client, conversationID string, onMessages func([]Message)) *ChatPoller {
	return &ChatPoller{
		client:         c,
		conversationID: conversationID,
		interval:       chatPollInterval,
		onMessages:     onMessages,
		stop:           make(chan struct{}),
	}
}

func (p *ChatPoller) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(p.interval)
		defer ticker.Stop()

		p.poll(ctx)
		for {
			select {
			case <-ticker.C:
				p.poll(ctx)
			case <-p.stop:
				return
			case <-ctx.Done():
				return
			}
		}
	}()
}

// Stop halts polling. Safe to call more than once.
func (p *ChatPoller) Stop() {
	p.stopOnce.Do(func() {
		close(p.stop)
	})
}

func (p *ChatPoller) poll(ctx context.Context) {
	messages, err := p.client.ListMessages(ctx, p.conversationID)
	if err != nil {
		logger.Warn("chat poll for conversation %s failed: %v", p.conversationID, err)
		return
	}
	if len(messages) <= p.lastCount {
		return
	}
	p.lastCount = len(messages)
	p.onMessages(messages)

	// mark-read failures are absorbed; the next growth retries
	if err := p.client.MarkRead(ctx, p.conversationID); err != nil {
		logger.Warn("mark-read for conversation %s failed: %v", p.conversationID, err)
	}
}
