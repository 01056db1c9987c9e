package service

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/jaywang922/line-translator-bot/internal/biz/domain"
	"github.com/jaywang922/line-translator-bot/internal/biz/repo"
	"github.com/jaywang922/line-translator-bot/internal/biz/usecase"
	"github.com/jaywang922/line-translator-bot/internal/data"
)

// Mock implementations

type mockDelivery struct {
	replies []string
	pushes  []string
	failAll bool
}

func (m *mockDelivery) Reply(ctx context.Context, replyToken, text string) error {
	if m.failAll {
		return fmt.Errorf("transport down")
	}
	m.replies = append(m.replies, text)
	return nil
}

func (m *mockDelivery) Push(ctx context.Context, userID, text string) error {
	if m.failAll {
		return fmt.Errorf("transport down")
	}
	m.pushes = append(m.pushes, text)
	return nil
}

type stubTranslator struct {
	output string
}

func (s *stubTranslator) Translate(ctx context.Context, text string, target domain.LanguageCode) (string, error) {
	if s.output != "" {
		return s.output, nil
	}
	return "translated " + text, nil
}

func newTestRelay(translator *stubTranslator) (*RelayService, *mockDelivery, repo.SessionStore) {
	store := data.NewSessionStore()
	delivery := &mockDelivery{}
	dispatcher := usecase.NewDispatcher(store, translator, nil, nil)
	relay := NewRelayService(dispatcher, store, delivery)
	return relay, delivery, store
}

func TestRelay_AppliesStateAndReplies(t *testing.T) {
	relay, delivery, store := newTestRelay(&stubTranslator{})

	relay.HandleEvent(context.Background(), domain.Event{
		UserID: "U1", ReplyToken: "rt-1", Text: "/ja",
	})

	if store.Get("U1") == nil {
		t.Error("Expected session to be stored")
	}
	if len(delivery.replies) != 1 {
		t.Fatalf("Expected one reply, got %d", len(delivery.replies))
	}
	if len(delivery.pushes) != 0 {
		t.Errorf("Expected no pushes, got %v", delivery.pushes)
	}
}

func TestRelay_FanOutUsesOnePushPerExtraLanguage(t *testing.T) {
	relay, delivery, store := newTestRelay(&stubTranslator{})
	store.Set("U1", domain.NewSession([]domain.LanguageCode{"en", "ja", "ko"}, 0))

	relay.HandleEvent(context.Background(), domain.Event{
		UserID: "U1", ReplyToken: "rt-1", Text: "hello",
	})

	if len(delivery.replies) != 1 {
		t.Fatalf("Expected exactly one reply, got %d", len(delivery.replies))
	}
	if len(delivery.pushes) != 2 {
		t.Fatalf("Expected two pushes, got %d", len(delivery.pushes))
	}
}

func TestRelay_MissingReplyTokenFallsBackToPush(t *testing.T) {
	relay, delivery, _ := newTestRelay(&stubTranslator{})

	relay.HandleEvent(context.Background(), domain.Event{
		UserID: "U1", ReplyToken: "", Text: "/en hello",
	})

	if len(delivery.replies) != 0 {
		t.Errorf("Expected no reply without a token, got %v", delivery.replies)
	}
	if len(delivery.pushes) != 1 {
		t.Errorf("Expected push fallback, got %d", len(delivery.pushes))
	}
}

func TestRelay_TruncatesOversizedReplies(t *testing.T) {
	long := strings.Repeat("a", 6000)
	relay, delivery, _ := newTestRelay(&stubTranslator{output: long})

	relay.HandleEvent(context.Background(), domain.Event{
		UserID: "U1", ReplyToken: "rt-1", Text: "/en hello",
	})

	if len(delivery.replies) != 1 {
		t.Fatalf("Expected one reply, got %d", len(delivery.replies))
	}
	if got := len([]rune(delivery.replies[0])); got > maxReplyChars {
		t.Errorf("Expected reply capped at %d chars, got %d", maxReplyChars, got)
	}
}

func TestRelay_DeliveryFailureIsSwallowed(t *testing.T) {
	relay, delivery, _ := newTestRelay(&stubTranslator{})
	delivery.failAll = true

	// Must not panic; the batch loop continues past delivery failures.
	relay.HandleEvent(context.Background(), domain.Event{
		UserID: "U1", ReplyToken: "rt-1", Text: "/en hello",
	})
}

func TestSanitizeOutgoing(t *testing.T) {
	if got := sanitizeOutgoing("  hi  "); got != "hi" {
		t.Errorf("Expected trimmed text, got %q", got)
	}
	if got := sanitizeOutgoing("   "); got != "" {
		t.Errorf("Expected empty result for whitespace, got %q", got)
	}
	long := strings.Repeat("あ", maxReplyChars+100)
	got := sanitizeOutgoing(long)
	if runes := []rune(got); len(runes) != maxReplyChars {
		t.Errorf("Expected exactly %d runes after truncation, got %d", maxReplyChars, len(runes))
	}
}
