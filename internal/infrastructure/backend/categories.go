package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jmanzanog/portfolio-console/internal/domain"
)

const stockCategoriesPath = "/stock-categories"

func (c *Client) ListStockCategories(ctx context.Context) ([]domain.StockCategory, error) {
	return getList[domain.StockCategory](ctx, c, stockCategoriesPath)
}

func (c *Client) GetStockCategory(ctx context.Context, id int64) (*domain.StockCategory, error) {
	return send[domain.StockCategory](ctx, c, http.MethodGet, fmt.Sprintf("%s/%d", stockCategoriesPath, id), nil)
}

func (c *Client) CreateStockCategory(ctx context.Context, in domain.StockCategoryInput) (*domain.StockCategory, error) {
	return send[domain.StockCategory](ctx, c, http.MethodPost, stockCategoriesPath, in)
}

func (c *Client) StockCategoryPerformance(ctx context.Context, portfolioID int64) ([]domain.StockCategoryPerformance, error) {
	return getList[domain.StockCategoryPerformance](ctx, c,
		fmt.Sprintf("%s/performance/portfolio/%d", stockCategoriesPath, portfolioID))
}

// CategoryPerformance returns one category's performance restricted to a portfolio.
func (c *Client) CategoryPerformance(ctx context.Context, categoryID, portfolioID int64) (*domain.StockCategoryPerformance, error) {
	params := url.Values{}
	params.Add("portfolioId", strconv.FormatInt(portfolioID, 10))
	path := fmt.Sprintf("%s/%d/performance?%s", stockCategoriesPath, categoryID, params.Encode())
	return send[domain.StockCategoryPerformance](ctx, c, http.MethodGet, path, nil)
}
