package application

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/jmanzanog/portfolio-console/internal/domain"
)

// AlertReport is the result of one credit-card due-date check.
type AlertReport struct {
	PortfolioID int64               `json:"portfolioId"`
	CheckedAt   time.Time           `json:"checkedAt"`
	UpcomingDue []domain.CreditCard `json:"upcomingDue"`
	Overdue     []domain.CreditCard `json:"overdue"`
}

// AlertWatcher checks the selected portfolio's credit cards on a cron
// schedule and raises a notification for every card that needs attention.
// The last report is dropped once another portfolio is selected.
type AlertWatcher struct {
	app   *AppContext
	cards domain.CreditCardGateway
	now   func() time.Time

	mu   sync.Mutex
	cron *cron.Cron
	last *AlertReport
}

func NewAlertWatcher(app *AppContext, cards domain.CreditCardGateway) *AlertWatcher {
	w := &AlertWatcher{
		app:   app,
		cards: cards,
		now:   time.Now,
	}
	app.Store.Subscribe(w.selectionChanged)
	return w
}

func (w *AlertWatcher) selectionChanged(state StoreState) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.last == nil {
		return
	}
	if state.SelectedPortfolio == nil || state.SelectedPortfolio.ID != w.last.PortfolioID {
		w.last = nil
	}
}

// Check fetches upcoming-due and overdue cards together and notifies each.
func (w *AlertWatcher) Check(ctx context.Context) (*AlertReport, error) {
	selected := w.app.Store.Selected()
	if selected == nil {
		return nil, domain.ErrPortfolioNotSelected
	}

	var upcoming, overdue []domain.CreditCard
	err := join(ctx,
		func(ctx context.Context) (err error) {
			upcoming, err = w.cards.UpcomingDueCards(ctx, selected.ID)
			return err
		},
		func(ctx context.Context) (err error) {
			overdue, err = w.cards.OverdueCards(ctx, selected.ID)
			return err
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to check credit card alerts: %w", err)
	}

	report := &AlertReport{
		PortfolioID: selected.ID,
		CheckedAt:   w.now(),
		UpcomingDue: nonNil(upcoming),
		Overdue:     nonNil(overdue),
	}
	for _, card := range report.Overdue {
		w.app.failure(ctx, alertText(card))
	}
	for _, card := range report.UpcomingDue {
		if card.DueStatus == domain.DueStatusOverdue {
			continue
		}
		w.app.Notifier.Notify(ctx, domain.NotificationInfo, alertText(card))
	}

	w.mu.Lock()
	w.last = report
	w.mu.Unlock()
	return report, nil
}

func alertText(card domain.CreditCard) string {
	if card.AlertMessage != "" {
		return card.AlertMessage
	}
	if card.DueStatus == domain.DueStatusOverdue || card.DaysUntilDue < 0 {
		return fmt.Sprintf("%s is %d days overdue", card.Name, -card.DaysUntilDue)
	}
	return fmt.Sprintf("%s is due on %s", card.Name, card.DueDate)
}

// Last returns the most recent report, or nil before the first check.
func (w *AlertWatcher) Last() *AlertReport {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.last
}

// Start schedules Check with a standard five-field cron spec.
func (w *AlertWatcher) Start(ctx context.Context, schedule string) error {
	c := cron.New()
	if _, err := c.AddFunc(schedule, func() {
		if _, err := w.Check(ctx); err != nil {
			slog.WarnContext(ctx, "Credit card alert check failed", "error", err)
		}
	}); err != nil {
		return fmt.Errorf("invalid alert schedule %q: %w", schedule, err)
	}

	w.mu.Lock()
	w.cron = c
	w.mu.Unlock()

	c.Start()
	slog.InfoContext(ctx, "Credit card alert watcher started", "schedule", schedule)
	return nil
}

// Stop halts the schedule and waits for a running check to finish.
func (w *AlertWatcher) Stop() {
	w.mu.Lock()
	c := w.cron
	w.cron = nil
	w.mu.Unlock()

	if c == nil {
		return
	}
	<-c.Stop().Done()
	slog.Info("Credit card alert watcher stopped")
}
