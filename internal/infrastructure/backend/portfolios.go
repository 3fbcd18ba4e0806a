package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmanzanog/portfolio-console/internal/domain"
)

func (c *Client) ListPortfolios(ctx context.Context) ([]domain.Portfolio, error) {
	return getList[domain.Portfolio](ctx, c, "/portfolios")
}

func (c *Client) GetPortfolio(ctx context.Context, id int64) (*domain.Portfolio, error) {
	return send[domain.Portfolio](ctx, c, http.MethodGet, fmt.Sprintf("/portfolios/%d", id), nil)
}

func (c *Client) GetPortfolioSummary(ctx context.Context, id int64) (*domain.PortfolioSummary, error) {
	return send[domain.PortfolioSummary](ctx, c, http.MethodGet, fmt.Sprintf("/portfolios/%d/summary", id), nil)
}

func (c *Client) CreatePortfolio(ctx context.Context, in domain.CreatePortfolioInput) (*domain.Portfolio, error) {
	return send[domain.Portfolio](ctx, c, http.MethodPost, "/portfolios", in)
}

// DeletePortfolio removes a portfolio. The API cascades to its assets and cards.
func (c *Client) DeletePortfolio(ctx context.Context, id int64) error {
	return c.Request(ctx, http.MethodDelete, fmt.Sprintf("/portfolios/%d", id), nil, nil)
}
