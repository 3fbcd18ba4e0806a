package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/jmanzanog/portfolio-console/internal/domain"
)

// Cards are listed and created under their portfolio but addressed
// directly by id afterwards.

func (c *Client) ListCreditCards(ctx context.Context, portfolioID int64) ([]domain.CreditCard, error) {
	return getList[domain.CreditCard](ctx, c, portfolioCardsPath(portfolioID))
}

func (c *Client) GetCreditCard(ctx context.Context, id int64) (*domain.CreditCard, error) {
	return send[domain.CreditCard](ctx, c, http.MethodGet, cardPath(id), nil)
}

func (c *Client) CreateCreditCard(ctx context.Context, portfolioID int64, in domain.CreditCardInput) (*domain.CreditCard, error) {
	in.PortfolioID = portfolioID
	return send[domain.CreditCard](ctx, c, http.MethodPost, portfolioCardsPath(portfolioID), in)
}

func (c *Client) UpdateCreditCard(ctx context.Context, id int64, in domain.CreditCardInput) (*domain.CreditCard, error) {
	return send[domain.CreditCard](ctx, c, http.MethodPut, cardPath(id), in)
}

func (c *Client) DeleteCreditCard(ctx context.Context, id int64) error {
	return c.Request(ctx, http.MethodDelete, cardPath(id), nil, nil)
}

// UpcomingDueCards lists cards whose due date falls within the warning window.
func (c *Client) UpcomingDueCards(ctx context.Context, portfolioID int64) ([]domain.CreditCard, error) {
	return getList[domain.CreditCard](ctx, c, portfolioCardsPath(portfolioID)+"/upcoming-due")
}

func (c *Client) OverdueCards(ctx context.Context, portfolioID int64) ([]domain.CreditCard, error) {
	return getList[domain.CreditCard](ctx, c, portfolioCardsPath(portfolioID)+"/overdue")
}

func portfolioCardsPath(portfolioID int64) string {
	return fmt.Sprintf("/portfolios/%d/credit-cards", portfolioID)
}

func cardPath(id int64) string {
	return fmt.Sprintf("/credit-cards/%d", id)
}
