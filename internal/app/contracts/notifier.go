package contracts

import "context"

// Notifier publishes domain events to the message broker. Publishing is
// fire-and-forget from the caller's point of view; failures are returned so
// callers can decide whether they are fatal.
type Notifier interface {
	PublishBookingConfirmed(ctx context.Context, payload interface{}) error
	PublishOTPRequested(ctx context.Context, payload interface{}) error
}
