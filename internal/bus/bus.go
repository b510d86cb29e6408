// Package bus carries notices (fired reminders, drafted links) from the
// assistant's collaborators to the surfaces that show them.
package bus

import (
	"context"
	"sync"
	"time"
)

// Well-known channels.
const (
	ChannelCLI  = "cli"
	ChannelHTTP = "http"
)

// OutboundMessage is a notice for one channel.
type OutboundMessage struct {
	Channel   string    `json:"channel"`
	ChatID    string    `json:"chat_id"`
	Content   string    `json:"content"`
	Link      string    `json:"link,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Handler receives messages for one channel. Handlers run on the dispatch
// goroutine and should not block for long.
type Handler func(*OutboundMessage)

const queueSize = 64

// MessageBus fans outbound messages out to per-channel subscribers.
type MessageBus struct {
	outbound chan *OutboundMessage
	handlers map[string][]Handler
	mu       sync.RWMutex
}

func NewMessageBus() *MessageBus {
	return &MessageBus{
		outbound: make(chan *OutboundMessage, queueSize),
		handlers: make(map[string][]Handler),
	}
}

// PublishOutbound queues msg for dispatch. It blocks while the queue is full
// and gives up when ctx is done.
func (b *MessageBus) PublishOutbound(ctx context.Context, msg *OutboundMessage) error {
	if msg.Timestamp.IsZero() {
		msg.Timestamp = time.Now()
	}
	select {
	case b.outbound <- msg:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Subscribe adds h to the handlers of channel.
func (b *MessageBus) Subscribe(channel string, h Handler) {
	b.mu.Lock()
	b.handlers[channel] = append(b.handlers[channel], h)
	b.mu.Unlock()
}

// DispatchOutbound delivers queued messages until ctx is done. Messages for
// channels nobody subscribed to are dropped.
func (b *MessageBus) DispatchOutbound(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg := <-b.outbound:
			b.deliver(msg)
		}
	}
}

func (b *MessageBus) deliver(msg *OutboundMessage) {
	b.mu.RLock()
	hs := b.handlers[msg.Channel]
	b.mu.RUnlock()
	for _, h := range hs {
		h(msg)
	}
}

// OutboundSize reports how many messages wait for dispatch.
func (b *MessageBus) OutboundSize() int {
	return len(b.outbound)
}
