package application

import "github.com/jmanzanog/portfolio-console/internal/domain"

// Pages bundles every page view over one shared AppContext.
type Pages struct {
	App              *AppContext
	Dashboard        *DashboardView
	Assets           *AssetsView
	AssetGroups      *AssetGroupsView
	CreditCards      *CreditCardsView
	Categories       *CategoriesView
	PortfolioDetails *PortfolioDetailsView
	Alerts           *AlertWatcher
}

func NewPages(gateway domain.Gateway, notifier Notifier) *Pages {
	app := NewAppContext(gateway, notifier)
	return &Pages{
		App:              app,
		Dashboard:        NewDashboardView(app, gateway, gateway, gateway),
		Assets:           NewAssetsView(app, gateway),
		AssetGroups:      NewAssetGroupsView(app, gateway),
		CreditCards:      NewCreditCardsView(app, gateway),
		Categories:       NewCategoriesView(app, gateway),
		PortfolioDetails: NewPortfolioDetailsView(app, gateway),
		Alerts:           NewAlertWatcher(app, gateway),
	}
}
