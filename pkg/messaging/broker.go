package messaging

import "context"

// Broker publishes domain events to interested consumers. Publishing is
// best-effort: callers log failures and move on.
type Broker interface {
	Publish(ctx context.Context, channel string, message interface{}) error
	Close() error
}
