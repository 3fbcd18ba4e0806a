package domain

import "context"

// The gateway interfaces describe the remote portfolio API, one per resource.
// Every method accepts a context so callers control cancellation; failures
// carry a human-readable message suitable for display.

type PortfolioGateway interface {
	ListPortfolios(ctx context.Context) ([]Portfolio, error)
	GetPortfolio(ctx context.Context, id int64) (*Portfolio, error)
	GetPortfolioSummary(ctx context.Context, id int64) (*PortfolioSummary, error)
	CreatePortfolio(ctx context.Context, in CreatePortfolioInput) (*Portfolio, error)
	DeletePortfolio(ctx context.Context, id int64) error
}

type StockCategoryGateway interface {
	ListStockCategories(ctx context.Context) ([]StockCategory, error)
	GetStockCategory(ctx context.Context, id int64) (*StockCategory, error)
	CreateStockCategory(ctx context.Context, in StockCategoryInput) (*StockCategory, error)
	StockCategoryPerformance(ctx context.Context, portfolioID int64) ([]StockCategoryPerformance, error)
	CategoryPerformance(ctx context.Context, categoryID, portfolioID int64) (*StockCategoryPerformance, error)
}

type AssetGateway interface {
	ListAssets(ctx context.Context, portfolioID int64) ([]Asset, error)
	ListWishlist(ctx context.Context, portfolioID int64) ([]Asset, error)
	GetAsset(ctx context.Context, id int64) (*Asset, error)
	CreateAsset(ctx context.Context, portfolioID int64, in AssetInput) (*Asset, error)
	UpdateAsset(ctx context.Context, id int64, in AssetUpdate) (*Asset, error)
	DeleteAsset(ctx context.Context, id int64) error
	BuyAsset(ctx context.Context, id int64, in BuyInput) (*Asset, error)
	AssetHistory(ctx context.Context, id int64) ([]AssetHistoryEntry, error)
	AssetPerformance(ctx context.Context, id int64) (*AssetPerformance, error)
	AssetGroups(ctx context.Context, assetID int64) ([]AssetGroup, error)
	AddAssetToGroups(ctx context.Context, assetID int64, in GroupMembershipInput) ([]AssetGroup, error)
	ReplaceAssetGroups(ctx context.Context, assetID int64, in GroupMembershipInput) ([]AssetGroup, error)
	RemoveAssetFromGroup(ctx context.Context, assetID, groupID int64) error
}

type AssetGroupGateway interface {
	ListAssetGroups(ctx context.Context) ([]AssetGroup, error)
	GetAssetGroup(ctx context.Context, id int64) (*AssetGroup, error)
	CreateAssetGroup(ctx context.Context, in AssetGroupInput) (*AssetGroup, error)
	UpdateAssetGroup(ctx context.Context, id int64, in AssetGroupInput) (*AssetGroup, error)
	DeleteAssetGroup(ctx context.Context, id int64) error
	AssetGroupPerformance(ctx context.Context, groupID, portfolioID int64) (*AssetGroupPerformance, error)
	PortfolioGroupPerformance(ctx context.Context, portfolioID int64) ([]AssetGroupPerformance, error)
}

type CreditCardGateway interface {
	ListCreditCards(ctx context.Context, portfolioID int64) ([]CreditCard, error)
	GetCreditCard(ctx context.Context, id int64) (*CreditCard, error)
	CreateCreditCard(ctx context.Context, portfolioID int64, in CreditCardInput) (*CreditCard, error)
	UpdateCreditCard(ctx context.Context, id int64, in CreditCardInput) (*CreditCard, error)
	DeleteCreditCard(ctx context.Context, id int64) error
	UpcomingDueCards(ctx context.Context, portfolioID int64) ([]CreditCard, error)
	OverdueCards(ctx context.Context, portfolioID int64) ([]CreditCard, error)
}

// Gateway is the full remote API surface.
type Gateway interface {
	PortfolioGateway
	StockCategoryGateway
	AssetGateway
	AssetGroupGateway
	CreditCardGateway
}
