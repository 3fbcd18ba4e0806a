package memory

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jmanzanog/portfolio-console/internal/domain"
)

const defaultFeedLimit = 50

// NotificationFeed keeps the most recent notifications in memory, oldest
// dropped first once the limit is reached.
type NotificationFeed struct {
	mu    sync.RWMutex
	items []domain.Notification
	limit int
	now   func() time.Time
}

func NewNotificationFeed(limit int) *NotificationFeed {
	if limit <= 0 {
		limit = defaultFeedLimit
	}
	return &NotificationFeed{
		items: make([]domain.Notification, 0, limit),
		limit: limit,
		now:   time.Now,
	}
}

func (f *NotificationFeed) Notify(ctx context.Context, level domain.NotificationLevel, message string) {
	n := domain.Notification{
		ID:        uuid.New().String(),
		Level:     level,
		Message:   message,
		CreatedAt: f.now(),
	}

	f.mu.Lock()
	f.items = append(f.items, n)
	if over := len(f.items) - f.limit; over > 0 {
		f.items = slices.Delete(f.items, 0, over)
	}
	f.mu.Unlock()

	logger := slog.InfoContext
	if level == domain.NotificationError {
		logger = slog.WarnContext
	}
	logger(ctx, "Notification", "id", n.ID, "level", level, "message", message)
}

// List returns the notifications, newest first.
func (f *NotificationFeed) List() []domain.Notification {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := slices.Clone(f.items)
	slices.Reverse(out)
	return out
}

func (f *NotificationFeed) Dismiss(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	idx := slices.IndexFunc(f.items, func(n domain.Notification) bool { return n.ID == id })
	if idx < 0 {
		return domain.ErrNotificationNotFound
	}
	f.items = slices.Delete(f.items, idx, idx+1)
	return nil
}

func (f *NotificationFeed) Clear() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.items = f.items[:0]
}
