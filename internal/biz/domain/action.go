package domain

// ActionKind identifies one dispatcher output.
type ActionKind int

const (
	// ActionReply sends text through the event's single-use reply handle.
	ActionReply ActionKind = iota
	// ActionPush sends text to the user outside the reply handle. Used for
	// fan-out messages beyond the first and for out-of-band notices.
	ActionPush
	// ActionSetSession replaces the user's session wholesale.
	ActionSetSession
	// ActionClearSession removes the user's session.
	ActionClearSession
	// ActionMarkNotified records that the onboarding guidance was sent.
	ActionMarkNotified
)

// Action is one step of the dispatcher's ordered output for an event.
// The relay service applies actions in sequence: state actions mutate the
// session store, delivery actions go out through the delivery port.
type Action struct {
	Kind    ActionKind
	Text    string   // Reply, Push
	Session *Session // SetSession
}

// ReplyAction builds a reply delivery step.
func ReplyAction(text string) Action {
	return Action{Kind: ActionReply, Text: text}
}

// PushAction builds a push delivery step.
func PushAction(text string) Action {
	return Action{Kind: ActionPush, Text: text}
}
