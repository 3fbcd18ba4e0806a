package application

import (
	"context"
	"log/slog"
	"sync"

	"github.com/jmanzanog/portfolio-console/internal/domain"
)

type CategoriesState struct {
	Categories  []domain.StockCategory            `json:"categories"`
	Performance []domain.StockCategoryPerformance `json:"performance"`
}

// CategoriesView shows the store's categories next to their performance in
// the selected portfolio. Performance is secondary data.
type CategoriesView struct {
	app        *AppContext
	categories domain.StockCategoryGateway

	mu          sync.Mutex
	performance []domain.StockCategoryPerformance
}

func NewCategoriesView(app *AppContext, categories domain.StockCategoryGateway) *CategoriesView {
	return &CategoriesView{
		app:         app,
		categories:  categories,
		performance: []domain.StockCategoryPerformance{},
	}
}

func (v *CategoriesView) Load(ctx context.Context) CategoriesState {
	if selected := v.app.Store.Selected(); selected == nil {
		v.setPerformance([]domain.StockCategoryPerformance{})
	} else if perf, err := v.categories.StockCategoryPerformance(ctx, selected.ID); err != nil {
		slog.WarnContext(ctx, "Failed to load category performance", "portfolio_id", selected.ID, "error", err)
	} else {
		v.setPerformance(nonNil(perf))
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	return CategoriesState{
		Categories:  v.app.Store.Snapshot().Categories,
		Performance: v.performance,
	}
}

func (v *CategoriesView) setPerformance(perf []domain.StockCategoryPerformance) {
	v.mu.Lock()
	v.performance = perf
	v.mu.Unlock()
}

// Create goes through the store so every page sees the new category.
func (v *CategoriesView) Create(ctx context.Context, in domain.StockCategoryInput) (*domain.StockCategory, error) {
	created, err := v.app.Store.CreateStockCategory(ctx, in)
	if err != nil {
		return nil, err
	}
	v.Load(ctx)
	return created, nil
}

// CategoryPerformance returns one category's performance within the selected
// portfolio. It is secondary data, so failures are only logged.
func (v *CategoriesView) CategoryPerformance(ctx context.Context, id int64) (*domain.StockCategoryPerformance, error) {
	selected := v.app.Store.Selected()
	if selected == nil {
		return nil, domain.ErrPortfolioNotSelected
	}
	perf, err := v.categories.CategoryPerformance(ctx, id, selected.ID)
	if err != nil {
		slog.WarnContext(ctx, "Failed to load category performance", "category_id", id, "portfolio_id", selected.ID, "error", err)
		return nil, err
	}
	return perf, nil
}

func (v *CategoriesView) Details(ctx context.Context, id int64) (*domain.StockCategory, error) {
	category, err := v.categories.GetStockCategory(ctx, id)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to load stock category", "category_id", id, "error", err)
		v.app.failure(ctx, err.Error())
		return nil, err
	}
	return category, nil
}
