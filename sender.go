package mailform

import "context"

// Sender defines the minimal interface that email transports must implement.
// It accepts a fully-prepared Email and handles the actual delivery.
type Sender interface {
	// Send delivers an email message.
	// The Email always has From, To, Subject and a body already set.
	// Returns an error if delivery fails.
	Send(ctx context.Context, email *Email) error
}
