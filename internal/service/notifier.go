package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jaywang922/line-translator-bot/internal/biz/repo"
)

const expiredSessionNotice = "Your timed translation session has ended. " +
	"Send /<code> or /multi to start a new one, or /help for usage."

// ExpiryNotifier sweeps timed-out sessions in the background and pushes
// an end-of-session notice to each affected user, outside any
// request/response cycle.
type ExpiryNotifier struct {
	store    repo.SessionStore
	delivery repo.Delivery
	history  repo.HistoryRepo // optional, cleaned up periodically

	interval  time.Duration
	retention time.Duration
	ctx       context.Context
	cancel    context.CancelFunc
	wg        sync.WaitGroup
}

// NewExpiryNotifier creates a new expiry notifier. history may be nil.
func NewExpiryNotifier(
	store repo.SessionStore,
	delivery repo.Delivery,
	history repo.HistoryRepo,
	interval time.Duration,
	retention time.Duration,
) *ExpiryNotifier {
	return &ExpiryNotifier{
		store:     store,
		delivery:  delivery,
		history:   history,
		interval:  interval,
		retention: retention,
	}
}

// Start starts the background loops
func (n *ExpiryNotifier) Start(ctx context.Context) {
	n.ctx, n.cancel = context.WithCancel(ctx)

	n.wg.Add(2)
	go n.notifyLoop()
	go n.cleanupLoop()

	fmt.Printf("[Notifier] Started with interval %v\n", n.interval)
}

// Stop stops the background loops
func (n *ExpiryNotifier) Stop() {
	if n.cancel != nil {
		n.cancel()
	}
	n.wg.Wait()
	fmt.Println("[Notifier] Stopped")
}

// notifyLoop is the session expiry sweep loop
func (n *ExpiryNotifier) notifyLoop() {
	defer n.wg.Done()

	ticker := time.NewTicker(n.interval)
	defer ticker.Stop()

	for {
		select {
		case <-n.ctx.Done():
			return
		case <-ticker.C:
			n.notifyExpired()
		}
	}
}

// notifyExpired removes expired sessions and pushes one notice each.
func (n *ExpiryNotifier) notifyExpired() {
	expired := n.store.TakeExpired(time.Now())
	for userID := range expired {
		if err := n.delivery.Push(n.ctx, userID, expiredSessionNotice); err != nil {
			fmt.Printf("[Notifier] Expiry notice to %s failed: %v\n", userID, err)
		}
	}
	if len(expired) > 0 {
		fmt.Printf("[Notifier] Notified %d expired session(s)\n", len(expired))
	}
}

// cleanupLoop prunes stale history records once a day
func (n *ExpiryNotifier) cleanupLoop() {
	defer n.wg.Done()

	if n.history == nil {
		return
	}

	ticker := time.NewTicker(24 * time.Hour)
	defer ticker.Stop()

	for {
		select {
		case <-n.ctx.Done():
			return
		case <-ticker.C:
			removed, err := n.history.CleanupStale(n.ctx, time.Now().Add(-n.retention))
			if err != nil {
				fmt.Printf("[Notifier] History cleanup failed: %v\n", err)
				continue
			}
			if removed > 0 {
				fmt.Printf("[Notifier] Cleaned up %d stale history record(s)\n", removed)
			}
		}
	}
}
