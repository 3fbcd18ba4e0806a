package application

import (
	"context"
	"log/slog"
	"sync"

	"github.com/jmanzanog/portfolio-console/internal/domain"
)

type DashboardState struct {
	NoPortfolio      bool                           `json:"noPortfolio"`
	Portfolio        *domain.Portfolio              `json:"portfolio,omitempty"`
	Summary          *domain.PortfolioSummary       `json:"summary,omitempty"`
	GroupPerformance []domain.AssetGroupPerformance `json:"groupPerformance"`
	UpcomingDue      []domain.CreditCard            `json:"upcomingDue"`
	LoadError        string                         `json:"loadError,omitempty"`
}

// DashboardView shows the summary, group performance and due-soon cards of
// the selected portfolio.
type DashboardView struct {
	app        *AppContext
	portfolios domain.PortfolioGateway
	groups     domain.AssetGroupGateway
	cards      domain.CreditCardGateway

	mu    sync.Mutex
	state DashboardState
}

func NewDashboardView(app *AppContext, portfolios domain.PortfolioGateway, groups domain.AssetGroupGateway, cards domain.CreditCardGateway) *DashboardView {
	return &DashboardView{
		app:        app,
		portfolios: portfolios,
		groups:     groups,
		cards:      cards,
		state: DashboardState{
			GroupPerformance: []domain.AssetGroupPerformance{},
			UpcomingDue:      []domain.CreditCard{},
		},
	}
}

func (v *DashboardView) State() DashboardState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

func (v *DashboardView) Load(ctx context.Context) DashboardState {
	selected := v.app.Store.Selected()
	if selected == nil {
		return v.set(DashboardState{NoPortfolio: true})
	}

	var (
		summary *domain.PortfolioSummary
		perf    []domain.AssetGroupPerformance
		due     []domain.CreditCard
	)
	err := join(ctx,
		func(ctx context.Context) (err error) {
			summary, err = v.portfolios.GetPortfolioSummary(ctx, selected.ID)
			return err
		},
		func(ctx context.Context) (err error) {
			perf, err = v.groups.PortfolioGroupPerformance(ctx, selected.ID)
			return err
		},
		func(ctx context.Context) (err error) {
			due, err = v.cards.UpcomingDueCards(ctx, selected.ID)
			return err
		},
	)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to load dashboard data", "portfolio_id", selected.ID, "error", err)
		v.app.failure(ctx, "Failed to load dashboard data")
		return v.fail(err)
	}

	return v.set(DashboardState{
		Portfolio:        selected,
		Summary:          summary,
		GroupPerformance: nonNil(perf),
		UpcomingDue:      nonNil(due),
	})
}

func (v *DashboardView) set(state DashboardState) DashboardState {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state = state
	return state
}

func (v *DashboardView) fail(err error) DashboardState {
	v.mu.Lock()
	defer v.mu.Unlock()
	state := v.state
	state.LoadError = err.Error()
	return state
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
