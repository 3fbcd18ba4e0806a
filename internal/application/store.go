package application

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/jmanzanog/portfolio-console/internal/domain"
)

// StoreGateway is the part of the remote API the store depends on.
type StoreGateway interface {
	domain.PortfolioGateway
	domain.StockCategoryGateway
}

// StoreState is a point-in-time copy of the store.
type StoreState struct {
	Portfolios        []domain.Portfolio     `json:"portfolios"`
	SelectedPortfolio *domain.Portfolio      `json:"selectedPortfolio"`
	Categories        []domain.StockCategory `json:"categories"`
	Loading           bool                   `json:"loading"`
	LoadFailed        bool                   `json:"loadFailed"`
	LastError         string                 `json:"lastError,omitempty"`
}

// PortfolioStore holds the portfolio list, the selected portfolio and the
// stock categories. Every mutation is followed by a full reload.
//
// Overlapping LoadPortfolios calls are not deduplicated. Each call takes a
// generation number when issued; a response is dropped if a later-issued
// load has already been applied.
type PortfolioStore struct {
	gateway  StoreGateway
	notifier Notifier

	mu         sync.RWMutex
	portfolios []domain.Portfolio
	selected   *domain.Portfolio
	categories []domain.StockCategory
	inFlight   int
	loadFailed bool
	lastError  string
	issued     uint64
	applied    uint64

	subMu       sync.Mutex
	subscribers map[int]func(StoreState)
	nextSubID   int
}

func NewPortfolioStore(gateway StoreGateway, notifier Notifier) *PortfolioStore {
	if notifier == nil {
		notifier = logNotifier{}
	}
	return &PortfolioStore{
		gateway:     gateway,
		notifier:    notifier,
		portfolios:  []domain.Portfolio{},
		categories:  []domain.StockCategory{},
		subscribers: make(map[int]func(StoreState)),
	}
}

// Reload loads portfolios and categories concurrently. It runs once at
// startup and on every refresh tick.
func (s *PortfolioStore) Reload(ctx context.Context) {
	var wg sync.WaitGroup
	wg.Go(func() { s.LoadPortfolios(ctx) })
	wg.Go(func() { s.LoadCategories(ctx) })
	wg.Wait()
}

// Snapshot returns a copy of the current state.
func (s *PortfolioStore) Snapshot() StoreState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *PortfolioStore) snapshotLocked() StoreState {
	state := StoreState{
		Portfolios: slices.Clone(s.portfolios),
		Categories: slices.Clone(s.categories),
		Loading:    s.inFlight > 0,
		LoadFailed: s.loadFailed,
		LastError:  s.lastError,
	}
	if s.selected != nil {
		selected := *s.selected
		state.SelectedPortfolio = &selected
	}
	return state
}

// Selected returns a copy of the selected portfolio, or nil.
func (s *PortfolioStore) Selected() *domain.Portfolio {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selected == nil {
		return nil
	}
	selected := *s.selected
	return &selected
}

// Subscribe registers fn to be called with a fresh snapshot after every
// state change. The returned function removes the subscription.
func (s *PortfolioStore) Subscribe(fn func(StoreState)) func() {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subscribers, id)
	}
}

func (s *PortfolioStore) publish() {
	state := s.Snapshot()
	s.subMu.Lock()
	subscribers := make([]func(StoreState), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subscribers = append(subscribers, fn)
	}
	s.subMu.Unlock()

	for _, fn := range subscribers {
		fn(state)
	}
}

// LoadPortfolios replaces the portfolio list with the API's and selects the
// first portfolio when nothing is selected. Failures are recorded and
// notified, never returned; the list and selection are left as they were.
func (s *PortfolioStore) LoadPortfolios(ctx context.Context) {
	s.loadPortfolios(ctx, 0)
}

// loadPortfolios is LoadPortfolios with an optional deleted id. When the
// deleted portfolio is selected, the selection moves in the same critical
// section that applies the response, so no published state lists one
// selection and a list without it.
func (s *PortfolioStore) loadPortfolios(ctx context.Context, deletedID int64) {
	s.mu.Lock()
	s.issued++
	generation := s.issued
	s.inFlight++
	s.mu.Unlock()
	s.publish()

	list, err := s.gateway.ListPortfolios(ctx)

	s.mu.Lock()
	s.inFlight--
	stale := generation < s.applied
	switch {
	case stale:
	case err != nil:
		s.loadFailed = true
		s.lastError = err.Error()
	default:
		s.applied = generation
		s.loadFailed = false
		s.lastError = ""
		if list == nil {
			list = []domain.Portfolio{}
		}
		s.portfolios = list
		s.syncSelectionLocked()
	}
	if deletedID != 0 {
		s.reassignLocked(deletedID)
	}
	s.mu.Unlock()
	s.publish()

	if stale {
		slog.DebugContext(ctx, "Discarded stale portfolio load", "generation", generation)
		return
	}
	if err != nil {
		slog.ErrorContext(ctx, "Failed to load portfolios", "error", err)
		s.notifier.Notify(ctx, domain.NotificationError, "Failed to load portfolios")
	}
}

// syncSelectionLocked auto-selects list[0] when nothing is selected, and
// refreshes the selected value when its id is still listed.
func (s *PortfolioStore) syncSelectionLocked() {
	if s.selected == nil {
		if len(s.portfolios) > 0 {
			first := s.portfolios[0]
			s.selected = &first
		}
		return
	}
	if current, ok := domain.FindPortfolio(s.portfolios, s.selected.ID); ok {
		s.selected = &current
	}
}

// reassignLocked moves the selection off deletedID to the first listed
// portfolio with another id, or clears it.
func (s *PortfolioStore) reassignLocked(deletedID int64) {
	if s.selected == nil || s.selected.ID != deletedID {
		return
	}
	s.selected = nil
	for _, p := range s.portfolios {
		if p.ID != deletedID {
			next := p
			s.selected = &next
			return
		}
	}
}

// LoadCategories replaces the category list. Failures are only logged.
func (s *PortfolioStore) LoadCategories(ctx context.Context) {
	categories, err := s.gateway.ListStockCategories(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to load stock categories", "error", err)
		return
	}

	if categories == nil {
		categories = []domain.StockCategory{}
	}

	s.mu.Lock()
	s.categories = categories
	s.mu.Unlock()
	s.publish()
}

// CreatePortfolio submits in, reloads the list and returns the created
// portfolio. API failures are notified and returned unchanged.
func (s *PortfolioStore) CreatePortfolio(ctx context.Context, in domain.CreatePortfolioInput) (*domain.Portfolio, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	created, err := s.gateway.CreatePortfolio(ctx, in)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to create portfolio", "name", in.Name, "error", err)
		s.notifier.Notify(ctx, domain.NotificationError, err.Error())
		return nil, err
	}

	s.LoadPortfolios(ctx)
	s.notifier.Notify(ctx, domain.NotificationSuccess, "Portfolio created successfully")
	return created, nil
}

// DeletePortfolio deletes a portfolio and reloads the list. When the deleted
// portfolio was selected, the selection moves to the first remaining
// portfolio, or to none.
func (s *PortfolioStore) DeletePortfolio(ctx context.Context, id int64) error {
	if err := s.gateway.DeletePortfolio(ctx, id); err != nil {
		slog.ErrorContext(ctx, "Failed to delete portfolio", "portfolio_id", id, "error", err)
		s.notifier.Notify(ctx, domain.NotificationError, err.Error())
		return err
	}

	s.loadPortfolios(ctx, id)
	s.notifier.Notify(ctx, domain.NotificationSuccess, "Portfolio deleted successfully")
	return nil
}

// SetSelectedPortfolio replaces the selection. It does not check that p is
// in the current list; nil clears the selection.
func (s *PortfolioStore) SetSelectedPortfolio(p *domain.Portfolio) {
	s.mu.Lock()
	if p == nil {
		s.selected = nil
	} else {
		selected := *p
		s.selected = &selected
	}
	s.mu.Unlock()
	s.publish()
}

// CreateStockCategory submits in and reloads the categories.
func (s *PortfolioStore) CreateStockCategory(ctx context.Context, in domain.StockCategoryInput) (*domain.StockCategory, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	created, err := s.gateway.CreateStockCategory(ctx, in)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to create stock category", "name", in.Name, "error", err)
		s.notifier.Notify(ctx, domain.NotificationError, err.Error())
		return nil, err
	}

	s.LoadCategories(ctx)
	s.notifier.Notify(ctx, domain.NotificationSuccess, "Stock category created successfully")
	return created, nil
}
