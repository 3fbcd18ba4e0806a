package application

import (
	"context"
	"log/slog"
	"sync"

	"github.com/jmanzanog/portfolio-console/internal/domain"
)

type AssetGroupsState struct {
	Groups      []domain.AssetGroup            `json:"groups"`
	Performance []domain.AssetGroupPerformance `json:"performance"`
	LoadError   string                         `json:"loadError,omitempty"`
}

// AssetGroupsView lists the global asset groups. Performance for the
// selected portfolio is secondary data: its failures are only logged.
type AssetGroupsView struct {
	app    *AppContext
	groups domain.AssetGroupGateway

	mu    sync.Mutex
	state AssetGroupsState
}

func NewAssetGroupsView(app *AppContext, groups domain.AssetGroupGateway) *AssetGroupsView {
	return &AssetGroupsView{
		app:    app,
		groups: groups,
		state: AssetGroupsState{
			Groups:      []domain.AssetGroup{},
			Performance: []domain.AssetGroupPerformance{},
		},
	}
}

func (v *AssetGroupsView) State() AssetGroupsState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Load runs the groups and performance reads independently.
func (v *AssetGroupsView) Load(ctx context.Context) AssetGroupsState {
	var wg sync.WaitGroup
	wg.Go(func() { v.loadGroups(ctx) })
	wg.Go(func() { v.loadPerformance(ctx) })
	wg.Wait()
	return v.State()
}

func (v *AssetGroupsView) loadGroups(ctx context.Context) {
	groups, err := v.groups.ListAssetGroups(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to load groups", "error", err)
		v.mu.Lock()
		v.state.LoadError = err.Error()
		v.mu.Unlock()
		v.app.failure(ctx, "Failed to load groups")
		return
	}
	v.mu.Lock()
	v.state.Groups = nonNil(groups)
	v.state.LoadError = ""
	v.mu.Unlock()
}

func (v *AssetGroupsView) loadPerformance(ctx context.Context) {
	selected := v.app.Store.Selected()
	if selected == nil {
		v.mu.Lock()
		v.state.Performance = []domain.AssetGroupPerformance{}
		v.mu.Unlock()
		return
	}

	perf, err := v.groups.PortfolioGroupPerformance(ctx, selected.ID)
	if err != nil {
		slog.WarnContext(ctx, "Failed to load performance", "portfolio_id", selected.ID, "error", err)
		return
	}
	v.mu.Lock()
	v.state.Performance = nonNil(perf)
	v.mu.Unlock()
}

func (v *AssetGroupsView) Create(ctx context.Context, in domain.AssetGroupInput) (*domain.AssetGroup, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return mutate(ctx, v.app, "Group created successfully", v.Load, func(ctx context.Context) (*domain.AssetGroup, error) {
		return v.groups.CreateAssetGroup(ctx, in)
	})
}

func (v *AssetGroupsView) Update(ctx context.Context, id int64, in domain.AssetGroupInput) (*domain.AssetGroup, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return mutate(ctx, v.app, "Group updated successfully", v.Load, func(ctx context.Context) (*domain.AssetGroup, error) {
		return v.groups.UpdateAssetGroup(ctx, id, in)
	})
}

func (v *AssetGroupsView) Delete(ctx context.Context, id int64) error {
	_, err := mutate(ctx, v.app, "Group deleted", v.Load, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, v.groups.DeleteAssetGroup(ctx, id)
	})
	return err
}

// Details returns one group with its member assets.
func (v *AssetGroupsView) Details(ctx context.Context, id int64) (*domain.AssetGroup, error) {
	group, err := v.groups.GetAssetGroup(ctx, id)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to load group", "group_id", id, "error", err)
		v.app.failure(ctx, err.Error())
		return nil, err
	}
	return group, nil
}

// GroupPerformance returns one group's performance within the selected portfolio.
func (v *AssetGroupsView) GroupPerformance(ctx context.Context, id int64) (*domain.AssetGroupPerformance, error) {
	selected := v.app.Store.Selected()
	if selected == nil {
		return nil, domain.ErrPortfolioNotSelected
	}
	perf, err := v.groups.AssetGroupPerformance(ctx, id, selected.ID)
	if err != nil {
		slog.WarnContext(ctx, "Failed to load group performance", "group_id", id, "error", err)
		return nil, err
	}
	return perf, nil
}
