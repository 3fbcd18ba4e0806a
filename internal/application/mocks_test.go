package application

import (
	"context"
	"errors"
	"sync"

	"github.com/jmanzanog/portfolio-console/internal/domain"
)

var errNotMocked = errors.New("not mocked")

// mockGateway implements domain.Gateway. Unset functions fail with errNotMocked.
type mockGateway struct {
	listPortfoliosFunc   func(ctx context.Context) ([]domain.Portfolio, error)
	getPortfolioFunc     func(ctx context.Context, id int64) (*domain.Portfolio, error)
	summaryFunc          func(ctx context.Context, id int64) (*domain.PortfolioSummary, error)
	createPortfolioFunc  func(ctx context.Context, in domain.CreatePortfolioInput) (*domain.Portfolio, error)
	deletePortfolioFunc  func(ctx context.Context, id int64) error
	listCategoriesFunc   func(ctx context.Context) ([]domain.StockCategory, error)
	createCategoryFunc   func(ctx context.Context, in domain.StockCategoryInput) (*domain.StockCategory, error)
	categoryPerfFunc     func(ctx context.Context, portfolioID int64) ([]domain.StockCategoryPerformance, error)
	oneCategoryPerfFunc  func(ctx context.Context, categoryID, portfolioID int64) (*domain.StockCategoryPerformance, error)
	getAssetFunc         func(ctx context.Context, id int64) (*domain.Asset, error)
	getCardFunc          func(ctx context.Context, id int64) (*domain.CreditCard, error)
	listAssetsFunc       func(ctx context.Context, portfolioID int64) ([]domain.Asset, error)
	listWishlistFunc     func(ctx context.Context, portfolioID int64) ([]domain.Asset, error)
	createAssetFunc      func(ctx context.Context, portfolioID int64, in domain.AssetInput) (*domain.Asset, error)
	buyAssetFunc         func(ctx context.Context, id int64, in domain.BuyInput) (*domain.Asset, error)
	deleteAssetFunc      func(ctx context.Context, id int64) error
	listGroupsFunc       func(ctx context.Context) ([]domain.AssetGroup, error)
	createGroupFunc      func(ctx context.Context, in domain.AssetGroupInput) (*domain.AssetGroup, error)
	deleteGroupFunc      func(ctx context.Context, id int64) error
	groupPerfFunc        func(ctx context.Context, portfolioID int64) ([]domain.AssetGroupPerformance, error)
	listCardsFunc        func(ctx context.Context, portfolioID int64) ([]domain.CreditCard, error)
	createCardFunc       func(ctx context.Context, portfolioID int64, in domain.CreditCardInput) (*domain.CreditCard, error)
	deleteCardFunc       func(ctx context.Context, id int64) error
	upcomingDueFunc      func(ctx context.Context, portfolioID int64) ([]domain.CreditCard, error)
	overdueFunc          func(ctx context.Context, portfolioID int64) ([]domain.CreditCard, error)
	assetHistoryFunc     func(ctx context.Context, id int64) ([]domain.AssetHistoryEntry, error)
	addToGroupsFunc      func(ctx context.Context, assetID int64, in domain.GroupMembershipInput) ([]domain.AssetGroup, error)
	removeFromGroupFunc  func(ctx context.Context, assetID, groupID int64) error
	updateCreditCardFunc func(ctx context.Context, id int64, in domain.CreditCardInput) (*domain.CreditCard, error)
}

func (m *mockGateway) ListPortfolios(ctx context.Context) ([]domain.Portfolio, error) {
	if m.listPortfoliosFunc != nil {
		return m.listPortfoliosFunc(ctx)
	}
	return nil, errNotMocked
}

func (m *mockGateway) GetPortfolio(ctx context.Context, id int64) (*domain.Portfolio, error) {
	if m.getPortfolioFunc != nil {
		return m.getPortfolioFunc(ctx, id)
	}
	return nil, errNotMocked
}

func (m *mockGateway) GetPortfolioSummary(ctx context.Context, id int64) (*domain.PortfolioSummary, error) {
	if m.summaryFunc != nil {
		return m.summaryFunc(ctx, id)
	}
	return nil, errNotMocked
}

func (m *mockGateway) CreatePortfolio(ctx context.Context, in domain.CreatePortfolioInput) (*domain.Portfolio, error) {
	if m.createPortfolioFunc != nil {
		return m.createPortfolioFunc(ctx, in)
	}
	return nil, errNotMocked
}

func (m *mockGateway) DeletePortfolio(ctx context.Context, id int64) error {
	if m.deletePortfolioFunc != nil {
		return m.deletePortfolioFunc(ctx, id)
	}
	return errNotMocked
}

func (m *mockGateway) ListStockCategories(ctx context.Context) ([]domain.StockCategory, error) {
	if m.listCategoriesFunc != nil {
		return m.listCategoriesFunc(ctx)
	}
	return nil, errNotMocked
}

func (m *mockGateway) GetStockCategory(ctx context.Context, id int64) (*domain.StockCategory, error) {
	return nil, errNotMocked
}

func (m *mockGateway) CreateStockCategory(ctx context.Context, in domain.StockCategoryInput) (*domain.StockCategory, error) {
	if m.createCategoryFunc != nil {
		return m.createCategoryFunc(ctx, in)
	}
	return nil, errNotMocked
}

func (m *mockGateway) StockCategoryPerformance(ctx context.Context, portfolioID int64) ([]domain.StockCategoryPerformance, error) {
	if m.categoryPerfFunc != nil {
		return m.categoryPerfFunc(ctx, portfolioID)
	}
	return nil, errNotMocked
}

func (m *mockGateway) CategoryPerformance(ctx context.Context, categoryID, portfolioID int64) (*domain.StockCategoryPerformance, error) {
	if m.oneCategoryPerfFunc != nil {
		return m.oneCategoryPerfFunc(ctx, categoryID, portfolioID)
	}
	return nil, errNotMocked
}

func (m *mockGateway) ListAssets(ctx context.Context, portfolioID int64) ([]domain.Asset, error) {
	if m.listAssetsFunc != nil {
		return m.listAssetsFunc(ctx, portfolioID)
	}
	return nil, errNotMocked
}

func (m *mockGateway) ListWishlist(ctx context.Context, portfolioID int64) ([]domain.Asset, error) {
	if m.listWishlistFunc != nil {
		return m.listWishlistFunc(ctx, portfolioID)
	}
	return nil, errNotMocked
}

func (m *mockGateway) GetAsset(ctx context.Context, id int64) (*domain.Asset, error) {
	if m.getAssetFunc != nil {
		return m.getAssetFunc(ctx, id)
	}
	return nil, errNotMocked
}

func (m *mockGateway) CreateAsset(ctx context.Context, portfolioID int64, in domain.AssetInput) (*domain.Asset, error) {
	if m.createAssetFunc != nil {
		return m.createAssetFunc(ctx, portfolioID, in)
	}
	return nil, errNotMocked
}

func (m *mockGateway) UpdateAsset(ctx context.Context, id int64, in domain.AssetUpdate) (*domain.Asset, error) {
	return nil, errNotMocked
}

func (m *mockGateway) DeleteAsset(ctx context.Context, id int64) error {
	if m.deleteAssetFunc != nil {
		return m.deleteAssetFunc(ctx, id)
	}
	return errNotMocked
}

func (m *mockGateway) BuyAsset(ctx context.Context, id int64, in domain.BuyInput) (*domain.Asset, error) {
	if m.buyAssetFunc != nil {
		return m.buyAssetFunc(ctx, id, in)
	}
	return nil, errNotMocked
}

func (m *mockGateway) AssetHistory(ctx context.Context, id int64) ([]domain.AssetHistoryEntry, error) {
	if m.assetHistoryFunc != nil {
		return m.assetHistoryFunc(ctx, id)
	}
	return nil, errNotMocked
}

func (m *mockGateway) AssetPerformance(ctx context.Context, id int64) (*domain.AssetPerformance, error) {
	return nil, errNotMocked
}

func (m *mockGateway) AssetGroups(ctx context.Context, assetID int64) ([]domain.AssetGroup, error) {
	return nil, errNotMocked
}

func (m *mockGateway) AddAssetToGroups(ctx context.Context, assetID int64, in domain.GroupMembershipInput) ([]domain.AssetGroup, error) {
	if m.addToGroupsFunc != nil {
		return m.addToGroupsFunc(ctx, assetID, in)
	}
	return nil, errNotMocked
}

func (m *mockGateway) ReplaceAssetGroups(ctx context.Context, assetID int64, in domain.GroupMembershipInput) ([]domain.AssetGroup, error) {
	return nil, errNotMocked
}

func (m *mockGateway) RemoveAssetFromGroup(ctx context.Context, assetID, groupID int64) error {
	if m.removeFromGroupFunc != nil {
		return m.removeFromGroupFunc(ctx, assetID, groupID)
	}
	return errNotMocked
}

func (m *mockGateway) ListAssetGroups(ctx context.Context) ([]domain.AssetGroup, error) {
	if m.listGroupsFunc != nil {
		return m.listGroupsFunc(ctx)
	}
	return nil, errNotMocked
}

func (m *mockGateway) GetAssetGroup(ctx context.Context, id int64) (*domain.AssetGroup, error) {
	return nil, errNotMocked
}

func (m *mockGateway) CreateAssetGroup(ctx context.Context, in domain.AssetGroupInput) (*domain.AssetGroup, error) {
	if m.createGroupFunc != nil {
		return m.createGroupFunc(ctx, in)
	}
	return nil, errNotMocked
}

func (m *mockGateway) UpdateAssetGroup(ctx context.Context, id int64, in domain.AssetGroupInput) (*domain.AssetGroup, error) {
	return nil, errNotMocked
}

func (m *mockGateway) DeleteAssetGroup(ctx context.Context, id int64) error {
	if m.deleteGroupFunc != nil {
		return m.deleteGroupFunc(ctx, id)
	}
	return errNotMocked
}

func (m *mockGateway) AssetGroupPerformance(ctx context.Context, groupID, portfolioID int64) (*domain.AssetGroupPerformance, error) {
	return nil, errNotMocked
}

func (m *mockGateway) PortfolioGroupPerformance(ctx context.Context, portfolioID int64) ([]domain.AssetGroupPerformance, error) {
	if m.groupPerfFunc != nil {
		return m.groupPerfFunc(ctx, portfolioID)
	}
	return nil, errNotMocked
}

func (m *mockGateway) ListCreditCards(ctx context.Context, portfolioID int64) ([]domain.CreditCard, error) {
	if m.listCardsFunc != nil {
		return m.listCardsFunc(ctx, portfolioID)
	}
	return nil, errNotMocked
}

func (m *mockGateway) GetCreditCard(ctx context.Context, id int64) (*domain.CreditCard, error) {
	if m.getCardFunc != nil {
		return m.getCardFunc(ctx, id)
	}
	return nil, errNotMocked
}

func (m *mockGateway) CreateCreditCard(ctx context.Context, portfolioID int64, in domain.CreditCardInput) (*domain.CreditCard, error) {
	if m.createCardFunc != nil {
		return m.createCardFunc(ctx, portfolioID, in)
	}
	return nil, errNotMocked
}

func (m *mockGateway) UpdateCreditCard(ctx context.Context, id int64, in domain.CreditCardInput) (*domain.CreditCard, error) {
	if m.updateCreditCardFunc != nil {
		return m.updateCreditCardFunc(ctx, id, in)
	}
	return nil, errNotMocked
}

func (m *mockGateway) DeleteCreditCard(ctx context.Context, id int64) error {
	if m.deleteCardFunc != nil {
		return m.deleteCardFunc(ctx, id)
	}
	return errNotMocked
}

func (m *mockGateway) UpcomingDueCards(ctx context.Context, portfolioID int64) ([]domain.CreditCard, error) {
	if m.upcomingDueFunc != nil {
		return m.upcomingDueFunc(ctx, portfolioID)
	}
	return nil, errNotMocked
}

func (m *mockGateway) OverdueCards(ctx context.Context, portfolioID int64) ([]domain.CreditCard, error) {
	if m.overdueFunc != nil {
		return m.overdueFunc(ctx, portfolioID)
	}
	return nil, errNotMocked
}

// recordingNotifier captures notifications in order.
type recordingNotifier struct {
	mu    sync.Mutex
	items []domain.Notification
}

func (n *recordingNotifier) Notify(ctx context.Context, level domain.NotificationLevel, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.items = append(n.items, domain.Notification{Level: level, Message: message})
}

func (n *recordingNotifier) Messages() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	messages := make([]string, len(n.items))
	for i, item := range n.items {
		messages[i] = string(item.Level) + ": " + item.Message
	}
	return messages
}

// notifierFunc adapts a function to Notifier.
type notifierFunc func(ctx context.Context, level domain.NotificationLevel, message string)

func (f notifierFunc) Notify(ctx context.Context, level domain.NotificationLevel, message string) {
	f(ctx, level, message)
}

func newTestApp(gw *mockGateway) (*AppContext, *recordingNotifier) {
	notifier := &recordingNotifier{}
	return NewAppContext(gw, notifier), notifier
}

func portfolios(items ...domain.Portfolio) func(ctx context.Context) ([]domain.Portfolio, error) {
	return func(ctx context.Context) ([]domain.Portfolio, error) {
		return items, nil
	}
}

var (
	retirement = domain.Portfolio{ID: 1, Name: "Retirement", InitialInvestment: domain.MustDecimal("10000")}
	trading    = domain.Portfolio{ID: 2, Name: "Trading", InitialInvestment: domain.MustDecimal("2500")}
)
