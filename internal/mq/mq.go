// Package mq publishes login audit events to a message broker for
// downstream consumers. Publishing is best-effort: the auth flow never
// fails because a broker is down.
package mq

import (
	"context"
	"encoding/json"
	"time"
)

// LoginEventsChannel is the channel successful logins are published to.
const LoginEventsChannel = "login-events"

// LoginEvent is the payload published for every successful login.
type LoginEvent struct {
	AccountID string    `json:"accountId"`
	IPAddress string    `json:"ipAddress"`
	LoginTime time.Time `json:"loginTime"`
}

// Backend defines the broker-agnostic publish operations.
type Backend interface {
	Publish(ctx context.Context, channel string, data []byte, attrs map[string]string) (string, error)
	Close() error
}

// Publisher wraps a backend with a typed login-event API.
type Publisher struct {
	backend Backend
}

// NewPublisher constructs a Publisher for the provided backend.
func NewPublisher(backend Backend) *Publisher {
	return &Publisher{backend: backend}
}

// PublishLogin sends one login event and returns the broker message id.
func (p *Publisher) PublishLogin(ctx context.Context, event LoginEvent) (string, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return "", err
	}
	return p.backend.Publish(ctx, LoginEventsChannel, data, map[string]string{
		"accountId": event.AccountID,
	})
}

// Close closes the underlying backend.
func (p *Publisher) Close() error {
	return p.backend.Close()
}
