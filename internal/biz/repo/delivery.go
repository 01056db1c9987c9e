package repo

import "context"

// Delivery is the port to the messaging reply/push transport.
// A reply token is single-use with a bounded validity window, so only one
// Reply is permitted per inbound event; everything else goes through Push.
type Delivery interface {
	// Reply sends the first outgoing message tied to an inbound event.
	Reply(ctx context.Context, replyToken, text string) error

	// Push sends an asynchronous message to the user.
	Push(ctx context.Context, userID, text string) error
}
