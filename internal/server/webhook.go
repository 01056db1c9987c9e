package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/jaywang922/line-translator-bot/internal/biz/domain"
	"github.com/jaywang922/line-translator-bot/internal/infra/line"
	"github.com/jaywang922/line-translator-bot/internal/service"
)

// WebhookServer receives LINE webhook batches and feeds the events to the
// relay service one at a time, in arrival order.
type WebhookServer struct {
	lineClient *line.Client
	relay      *service.RelayService
	port       int
	server     *http.Server

	// Message deduplication cache
	seenMsgsMu sync.RWMutex
	seenMsgs   map[string]time.Time // msgID -> timestamp
}

// NewWebhookServer creates a new webhook server
func NewWebhookServer(lineClient *line.Client, relay *service.RelayService, port int) *WebhookServer {
	return &WebhookServer{
		lineClient: lineClient,
		relay:      relay,
		port:       port,
		seenMsgs:   make(map[string]time.Time),
	}
}

// Start starts the HTTP server. Blocks until the server stops.
func (s *WebhookServer) Start() error {
	mux := http.NewServeMux()
	mux.HandleFunc("/webhook", s.handleWebhook)
	mux.HandleFunc("/", s.handleHealth)

	s.server = &http.Server{
		Addr:    fmt.Sprintf(":%d", s.port),
		Handler: mux,
	}

	fmt.Printf("[Server] Listening on port %d\n", s.port)
	err := s.server.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Stop stops the HTTP server
func (s *WebhookServer) Stop() {
	if s.server == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = s.server.Shutdown(ctx)
}

// handleWebhook verifies and processes one inbound event batch. Events are
// handled strictly sequentially; one event's failure never aborts the rest
// of the batch.
func (s *WebhookServer) handleWebhook(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	events, err := s.lineClient.ParseRequest(r)
	if err != nil {
		fmt.Printf("[Server] Webhook parse error: %v\n", err)
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	for _, ev := range events {
		s.handleEvent(r.Context(), ev)
	}

	w.WriteHeader(http.StatusOK)
}

// handleEvent processes a single event, recovering from panics so an
// internal error is fatal for that event only.
func (s *WebhookServer) handleEvent(ctx context.Context, ev domain.Event) {
	defer func() {
		if rec := recover(); rec != nil {
			fmt.Printf("[Server] Panic handling event from %s: %v\n", ev.UserID, rec)
		}
	}()

	if strings.TrimSpace(ev.Text) == "" {
		return
	}

	// Duplicate webhook delivery: process each message at most once.
	if s.isMessageSeen(ev.MessageID) {
		fmt.Printf("[Server] Duplicate message ignored: %s\n", ev.MessageID)
		return
	}
	s.markMessageSeen(ev.MessageID)

	s.relay.HandleEvent(ctx, ev)
}

// handleHealth reports liveness, mirroring the platform's webhook checks.
func (s *WebhookServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("Bot is running"))
}

// isMessageSeen checks if a message has been processed
func (s *WebhookServer) isMessageSeen(msgID string) bool {
	if msgID == "" {
		return false
	}
	s.seenMsgsMu.RLock()
	defer s.seenMsgsMu.RUnlock()
	_, exists := s.seenMsgs[msgID]
	return exists
}

// markMessageSeen marks a message as processed
func (s *WebhookServer) markMessageSeen(msgID string) {
	if msgID == "" {
		return
	}
	s.seenMsgsMu.Lock()
	defer s.seenMsgsMu.Unlock()
	s.seenMsgs[msgID] = time.Now()

	// Clean up records older than 5 minutes to prevent memory leaks
	cutoff := time.Now().Add(-5 * time.Minute)
	for id, ts := range s.seenMsgs {
		if ts.Before(cutoff) {
			delete(s.seenMsgs, id)
		}
	}
}
