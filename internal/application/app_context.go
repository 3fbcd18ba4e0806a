package application

import (
	"context"
	"log/slog"

	"github.com/jmanzanog/portfolio-console/internal/domain"
)

// Notifier surfaces transient messages to the user.
type Notifier interface {
	Notify(ctx context.Context, level domain.NotificationLevel, message string)
}

// AppContext holds the application-scoped state shared by every view. It is
// created once at startup and passed explicitly to each consumer.
type AppContext struct {
	Store    *PortfolioStore
	Notifier Notifier
}

// NewAppContext creates the shared context with a fresh, empty store.
func NewAppContext(gateway StoreGateway, notifier Notifier) *AppContext {
	if notifier == nil {
		notifier = logNotifier{}
	}
	return &AppContext{
		Store:    NewPortfolioStore(gateway, notifier),
		Notifier: notifier,
	}
}

func (a *AppContext) success(ctx context.Context, message string) {
	a.Notifier.Notify(ctx, domain.NotificationSuccess, message)
}

func (a *AppContext) failure(ctx context.Context, message string) {
	a.Notifier.Notify(ctx, domain.NotificationError, message)
}

// logNotifier only logs. Used when no feed is wired.
type logNotifier struct{}

func (logNotifier) Notify(ctx context.Context, level domain.NotificationLevel, message string) {
	slog.InfoContext(ctx, "Notification", "level", level, "message", message)
}
