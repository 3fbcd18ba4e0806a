package application

import (
	"context"
	"log/slog"

	"github.com/jmanzanog/portfolio-console/internal/domain"
)

type PortfolioDetailsState struct {
	Portfolio *domain.Portfolio        `json:"portfolio"`
	Summary   *domain.PortfolioSummary `json:"summary"`
}

// PortfolioDetailsView shows one portfolio by id, independent of the selection.
type PortfolioDetailsView struct {
	app        *AppContext
	portfolios domain.PortfolioGateway
}

func NewPortfolioDetailsView(app *AppContext, portfolios domain.PortfolioGateway) *PortfolioDetailsView {
	return &PortfolioDetailsView{app: app, portfolios: portfolios}
}

// Load fetches the portfolio and its summary together; both or neither are returned.
func (v *PortfolioDetailsView) Load(ctx context.Context, id int64) (*PortfolioDetailsState, error) {
	var (
		portfolio *domain.Portfolio
		summary   *domain.PortfolioSummary
	)
	err := join(ctx,
		func(ctx context.Context) (err error) {
			portfolio, err = v.portfolios.GetPortfolio(ctx, id)
			return err
		},
		func(ctx context.Context) (err error) {
			summary, err = v.portfolios.GetPortfolioSummary(ctx, id)
			return err
		},
	)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to load portfolio details", "portfolio_id", id, "error", err)
		v.app.failure(ctx, "Failed to load portfolio details")
		return nil, err
	}
	return &PortfolioDetailsState{Portfolio: portfolio, Summary: summary}, nil
}
