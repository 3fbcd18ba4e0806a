package application

import (
	"context"
	"log/slog"
	"sync"

	"github.com/jmanzanog/portfolio-console/internal/domain"
)

type CreditCardsState struct {
	NoPortfolio bool                `json:"noPortfolio"`
	PortfolioID int64               `json:"portfolioId,omitempty"`
	Cards       []domain.CreditCard `json:"cards"`
	LoadError   string              `json:"loadError,omitempty"`
}

type CreditCardsView struct {
	app   *AppContext
	cards domain.CreditCardGateway

	mu    sync.Mutex
	state CreditCardsState
}

func NewCreditCardsView(app *AppContext, cards domain.CreditCardGateway) *CreditCardsView {
	return &CreditCardsView{
		app:   app,
		cards: cards,
		state: CreditCardsState{Cards: []domain.CreditCard{}},
	}
}

func (v *CreditCardsView) State() CreditCardsState {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

func (v *CreditCardsView) Load(ctx context.Context) CreditCardsState {
	selected := v.app.Store.Selected()
	if selected == nil {
		return v.set(CreditCardsState{NoPortfolio: true, Cards: []domain.CreditCard{}})
	}

	cards, err := v.cards.ListCreditCards(ctx, selected.ID)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to load credit cards", "portfolio_id", selected.ID, "error", err)
		v.app.failure(ctx, "Failed to load credit cards")
		v.mu.Lock()
		defer v.mu.Unlock()
		state := v.state
		state.LoadError = err.Error()
		return state
	}

	return v.set(CreditCardsState{PortfolioID: selected.ID, Cards: nonNil(cards)})
}

func (v *CreditCardsView) set(state CreditCardsState) CreditCardsState {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.state = state
	return state
}

// Create adds a card to the selected portfolio.
func (v *CreditCardsView) Create(ctx context.Context, in domain.CreditCardInput) (*domain.CreditCard, error) {
	selected := v.app.Store.Selected()
	if selected == nil {
		return nil, domain.ErrPortfolioNotSelected
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return mutate(ctx, v.app, "Credit card added successfully", v.Load, func(ctx context.Context) (*domain.CreditCard, error) {
		return v.cards.CreateCreditCard(ctx, selected.ID, in)
	})
}

func (v *CreditCardsView) Update(ctx context.Context, id int64, in domain.CreditCardInput) (*domain.CreditCard, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if in.PortfolioID == 0 {
		if selected := v.app.Store.Selected(); selected != nil {
			in.PortfolioID = selected.ID
		}
	}
	return mutate(ctx, v.app, "Credit card updated successfully", v.Load, func(ctx context.Context) (*domain.CreditCard, error) {
		return v.cards.UpdateCreditCard(ctx, id, in)
	})
}

// Details returns one card. Failures are notified.
func (v *CreditCardsView) Details(ctx context.Context, id int64) (*domain.CreditCard, error) {
	card, err := v.cards.GetCreditCard(ctx, id)
	if err != nil {
		slog.ErrorContext(ctx, "Failed to load credit card", "card_id", id, "error", err)
		v.app.failure(ctx, err.Error())
		return nil, err
	}
	return card, nil
}

func (v *CreditCardsView) Delete(ctx context.Context, id int64) error {
	_, err := mutate(ctx, v.app, "Credit card deleted", v.Load, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, v.cards.DeleteCreditCard(ctx, id)
	})
	return err
}
