// Package push delivers best-effort push notifications. Delivery is
// fire-and-forget: callers log failures and move on, they never fail the
// primary operation.
package push

import "context"

// Sender sends a push notification to a single device token.
type Sender interface {
	Send(ctx context.Context, token, title, body string, data map[string]string) error
}
