// Package events defines the auth events published on the in-process bus and
// the audit subscriber that records them.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/nfrund/petcommunity/internal/pubsub"
)

// Topics published by the auth handlers.
const (
	TopicLoginSucceeded = "auth.login.succeeded"
	TopicRegistered     = "auth.registered"
)

// AuthEvent is the payload of every auth topic.
type AuthEvent struct {
	UserID    string    `json:"user_id,omitempty"`
	Username  string    `json:"username"`
	RequestID string    `json:"request_id,omitempty"`
	At        time.Time `json:"at"`
}

// Publisher publishes auth events. A nil Publisher or one with a nil bus is a
// valid no-op, so handlers never have to check.
type Publisher struct {
	bus pubsub.Publisher
	now func() time.Time
}

// NewPublisher wraps bus.
func NewPublisher(bus pubsub.Publisher) *Publisher {
	return &Publisher{bus: bus, now: time.Now}
}

// LoginSucceeded announces a successful login.
func (p *Publisher) LoginSucceeded(ctx context.Context, ev AuthEvent) {
	p.publish(ctx, TopicLoginSucceeded, ev)
}

// Registered announces a new account.
func (p *Publisher) Registered(ctx context.Context, ev AuthEvent) {
	p.publish(ctx, TopicRegistered, ev)
}

// publish never fails the caller: auth events are informational.
func (p *Publisher) publish(ctx context.Context, topic string, ev AuthEvent) {
	if p == nil || p.bus == nil {
		return
	}
	if ev.At.IsZero() {
		ev.At = p.now().UTC()
	}
	payload, err := json.Marshal(ev)
	if err != nil {
		slog.Error("Failed to encode auth event", "topic", topic, "error", err)
		return
	}
	msg := pubsub.Message{
		Topic:    topic,
		UserID:   ev.UserID,
		Payload:  payload,
		Metadata: map[string]string{"request_id": ev.RequestID},
	}
	if err := p.bus.Publish(ctx, msg); err != nil {
		slog.Error("Failed to publish auth event", "topic", topic, "error", err)
	}
}

// Decode parses the payload of an auth event message.
func Decode(msg pubsub.Message) (AuthEvent, error) {
	var ev AuthEvent
	if err := json.Unmarshal(msg.Payload, &ev); err != nil {
		return ev, fmt.Errorf("decode %s event: %w", msg.Topic, err)
	}
	return ev, nil
}

// SubscribeAudit logs every auth event with logger until ctx is canceled.
func SubscribeAudit(ctx context.Context, sub pubsub.Subscriber, logger *slog.Logger) error {
	handler := func(_ context.Context, msg pubsub.Message) error {
		ev, err := Decode(msg)
		if err != nil {
			return err
		}
		logger.Info("Auth event",
			"topic", msg.Topic,
			"user_id", ev.UserID,
			"username", ev.Username,
			"request_id", ev.RequestID,
			"at", ev.At,
		)
		return nil
	}

	for _, topic := range []string{TopicLoginSucceeded, TopicRegistered} {
		if err := sub.Subscribe(ctx, topic, handler); err != nil {
			return fmt.Errorf("subscribe %s: %w", topic, err)
		}
	}
	return nil
}
