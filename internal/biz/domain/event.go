package domain

// Event is a normalized inbound text-message event. The webhook transport
// discards every other event type before the dispatcher sees it.
type Event struct {
	UserID     string
	ReplyToken string // single-use reply handle for this event
	MessageID  string // used for duplicate-delivery detection
	Text       string
	Timestamp  int64 // milliseconds since epoch, as delivered by the platform
}
