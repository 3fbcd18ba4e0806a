package application

import (
	"context"
	"log/slog"
	"sync"

	"github.com/jmanzanog/portfolio-console/internal/domain"
)

type AssetsState struct {
	NoPortfolio bool           `json:"noPortfolio"`
	PortfolioID int64          `json:"portfolioId,omitempty"`
	Holdings    []domain.Asset `json:"holdings"`
	Wishlist    []domain.Asset `json:"wishlist"`
	LoadError   string         `json:"loadError,omitempty"`
}

// AssetsView lists the holdings and wishlist of one portfolio, the selected
// one unless another is named, and runs the asset actions against it.
type AssetsView struct {
	app    *AppContext
	assets domain.AssetGateway

	mu    sync.Mutex
	state AssetsState
}

func NewAssetsView(app *AppContext, assets domain.AssetGateway) *AssetsView {
	return &AssetsView{
		app:    app,
		assets: assets,
		state:  AssetsState{Holdings: []domain.Asset{}, Wishlist: []domain.Asset{}},
	}
}

func (v *AssetsView) State() AssetsState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Load shows the selected portfolio.
func (v *AssetsView) Load(ctx context.Context) AssetsState {
	return v.LoadPortfolio(ctx, 0)
}

// reload refreshes whichever portfolio the view currently shows.
func (v *AssetsView) reload(ctx context.Context) AssetsState {
	return v.LoadPortfolio(ctx, v.State().PortfolioID)
}

// portfolioFor returns portfolioID, or the selected portfolio's id when it
// is zero. It reports false when neither is set.
func (v *AssetsView) portfolioFor(portfolioID int64) (int64, bool) {
	if portfolioID != 0 {
		return portfolioID, true
	}
	if selected := v.app.Store.Selected(); selected != nil {
		return selected.ID, true
	}
	return 0, false
}

// LoadPortfolio fetches holdings and wishlist of portfolioID together; zero
// means the selected portfolio. The selection itself is left alone. Items
// are filed by their isWishlist flag rather than by the endpoint that
// returned them.
func (v *AssetsView) LoadPortfolio(ctx context.Context, portfolioID int64) AssetsState {
	id, ok := v.portfolioFor(portfolioID)
	if !ok {
		return v.set(AssetsState{NoPortfolio: true, Holdings: []domain.Asset{}, Wishlist: []domain.Asset{}})
	}

	var listed, wishlisted []domain.Asset
	err := join(ctx,
		func(ctx context.Context) (err error) {
			listed, err = v.assets.ListAssets(ctx, id)
			return err
		},
		func(ctx context.Context) (err error) {
			wishlisted, err = v.assets.ListWishlist(ctx, id)
			return err
		},
	)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to load assets", "portfolio_id", id, "error", err)
		v.app.failure(ctx, "Failed to load assets")
		v.mu.Lock()
		defer v.mu.Unlock()
		state := v.state
		state.LoadError = err.Error()
		return state
	}

	holdings, wishlist := domain.SplitHoldings(mergeAssets(listed, wishlisted))
	return v.set(AssetsState{
		PortfolioID: id,
		Holdings:    holdings,
		Wishlist:    wishlist,
	})
}

func (v *AssetsView) set(state AssetsState) AssetsState {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state = state
	return state
}

// mergeAssets concatenates both lists, dropping ids already seen.
func mergeAssets(lists ...[]domain.Asset) []domain.Asset {
	seen := make(map[int64]struct{})
	merged := make([]domain.Asset, 0)
	for _, list := range lists {
		for _, a := range list {
			if _, ok := seen[a.ID]; ok {
				continue
			}
			seen[a.ID] = struct{}{}
			merged = append(merged, a)
		}
	}
	return merged
}

// Create adds an asset to the selected portfolio.
func (v *AssetsView) Create(ctx context.Context, in domain.AssetInput) (*domain.Asset, error) {
	return v.CreateIn(ctx, 0, in)
}

// CreateIn adds an asset to portfolioID, or to the selected portfolio when
// it is zero, and shows that portfolio afterwards.
func (v *AssetsView) CreateIn(ctx context.Context, portfolioID int64, in domain.AssetInput) (*domain.Asset, error) {
	id, ok := v.portfolioFor(portfolioID)
	if !ok {
		return nil, domain.ErrPortfolioNotSelected
	}
	in = in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}

	reload := func(ctx context.Context) AssetsState { return v.LoadPortfolio(ctx, id) }
	return mutate(ctx, v.app, "Asset created successfully", reload, func(ctx context.Context) (*domain.Asset, error) {
		return v.assets.CreateAsset(ctx, id, in)
	})
}

// Details returns one asset. Failures are notified.
func (v *AssetsView) Details(ctx context.Context, id int64) (*domain.Asset, error) {
	asset, err := v.assets.GetAsset(ctx, id)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to load asset", "asset_id", id, "error", err)
		v.app.failure(ctx, err.Error())
		return nil, err
	}
	return asset, nil
}

func (v *AssetsView) Update(ctx context.Context, id int64, in domain.AssetUpdate) (*domain.Asset, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return mutate(ctx, v.app, "Asset updated successfully", v.reload, func(ctx context.Context) (*domain.Asset, error) {
		return v.assets.UpdateAsset(ctx, id, in)
	})
}

// Buy converts a wishlist item into a holding.
func (v *AssetsView) Buy(ctx context.Context, id int64, in domain.BuyInput) (*domain.Asset, error) {
	in = in.Normalize()
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return mutate(ctx, v.app, "Asset purchased successfully", v.reload, func(ctx context.Context) (*domain.Asset, error) {
		return v.assets.BuyAsset(ctx, id, in)
	})
}

func (v *AssetsView) Delete(ctx context.Context, id int64) error {
	_, err := mutate(ctx, v.app, "Asset deleted", v.reload, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, v.assets.DeleteAsset(ctx, id)
	})
	return err
}

// History returns the action history of one asset. Failures are notified.
func (v *AssetsView) History(ctx context.Context, id int64) ([]domain.AssetHistoryEntry, error) {
	history, err := v.assets.AssetHistory(ctx, id)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to load asset history", "asset_id", id, "error", err)
		v.app.failure(ctx, err.Error())
		return nil, err
	}
	return history, nil
}

func (v *AssetsView) Performance(ctx context.Context, id int64) (*domain.AssetPerformance, error) {
	perf, err := v.assets.AssetPerformance(ctx, id)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to load asset performance", "asset_id", id, "error", err)
		v.app.failure(ctx, err.Error())
		return nil, err
	}
	return perf, nil
}

func (v *AssetsView) Groups(ctx context.Context, id int64) ([]domain.AssetGroup, error) {
	groups, err := v.assets.AssetGroups(ctx, id)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to load asset groups", "asset_id", id, "error", err)
		v.app.failure(ctx, err.Error())
		return nil, err
	}
	return groups, nil
}

// AddToGroups adds memberships; ReplaceGroups sets them exactly.
func (v *AssetsView) AddToGroups(ctx context.Context, id int64, in domain.GroupMembershipInput) ([]domain.AssetGroup, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return mutate(ctx, v.app, "Groups added successfully", v.reload, func(ctx context.Context) ([]domain.AssetGroup, error) {
		return v.assets.AddAssetToGroups(ctx, id, in)
	})
}

func (v *AssetsView) ReplaceGroups(ctx context.Context, id int64, in domain.GroupMembershipInput) ([]domain.AssetGroup, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return mutate(ctx, v.app, "Groups updated successfully", v.reload, func(ctx context.Context) ([]domain.AssetGroup, error) {
		return v.assets.ReplaceAssetGroups(ctx, id, in)
	})
}

func (v *AssetsView) RemoveFromGroup(ctx context.Context, id, groupID int64) error {
	_, err := mutate(ctx, v.app, "Asset removed from group", v.reload, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, v.assets.RemoveAssetFromGroup(ctx, id, groupID)
	})
	return err
}
