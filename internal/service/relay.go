package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/jaywang922/line-translator-bot/internal/biz/domain"
	"github.com/jaywang922/line-translator-bot/internal/biz/repo"
	"github.com/jaywang922/line-translator-bot/internal/biz/usecase"
)

// maxReplyChars is the delivery transport's payload cap; longer replies
// are truncated before delivery.
const maxReplyChars = 4000

// RelayService executes the dispatcher's action sequence for one event:
// state actions mutate the session store, delivery actions go out through
// the delivery port. Only one reply is ever sent per inbound event;
// further outgoing messages fall back to push.
type RelayService struct {
	dispatcher *usecase.Dispatcher
	store      repo.SessionStore
	delivery   repo.Delivery
}

// NewRelayService creates a new relay service
func NewRelayService(dispatcher *usecase.Dispatcher, store repo.SessionStore, delivery repo.Delivery) *RelayService {
	return &RelayService{
		dispatcher: dispatcher,
		store:      store,
		delivery:   delivery,
	}
}

// HandleEvent dispatches one inbound event and applies the resulting
// actions in order. Delivery failures are logged and swallowed so the
// batch loop keeps going.
func (s *RelayService) HandleEvent(ctx context.Context, ev domain.Event) {
	actions := s.dispatcher.Dispatch(ctx, ev)

	replied := false
	for _, action := range actions {
		switch action.Kind {
		case domain.ActionSetSession:
			s.store.Set(ev.UserID, action.Session)

		case domain.ActionClearSession:
			s.store.Clear(ev.UserID)

		case domain.ActionMarkNotified:
			s.store.MarkNotified(ev.UserID)

		case domain.ActionReply, domain.ActionPush:
			text := sanitizeOutgoing(action.Text)
			if text == "" {
				continue
			}
			// The reply token is single-use: the first reply action
			// consumes it, everything after goes through push.
			if action.Kind == domain.ActionReply && !replied && ev.ReplyToken != "" {
				replied = true
				if err := s.delivery.Reply(ctx, ev.ReplyToken, text); err != nil {
					fmt.Printf("[Relay] Reply to %s failed: %v\n", ev.UserID, err)
				}
			} else {
				if err := s.delivery.Push(ctx, ev.UserID, text); err != nil {
					fmt.Printf("[Relay] Push to %s failed: %v\n", ev.UserID, err)
				}
			}
		}
	}
}

// sanitizeOutgoing validates a reply before it reaches the transport:
// trims whitespace and enforces the payload cap, truncating if necessary.
func sanitizeOutgoing(text string) string {
	text = strings.TrimSpace(text)
	if runes := []rune(text); len(runes) > maxReplyChars {
		text = string(runes[:maxReplyChars-1]) + "…"
	}
	return text
}
