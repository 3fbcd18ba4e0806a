package application_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jmanzanog/portfolio-console/internal/application"
	"github.com/jmanzanog/portfolio-console/internal/domain"
	"github.com/jmanzanog/portfolio-console/internal/infrastructure/backend"
	"github.com/jmanzanog/portfolio-console/internal/infrastructure/persistence/memory"
)

// fakeAPI serves the portfolio endpoints from memory, wrapped in the
// same {success, message, data} envelope as the real API.
type fakeAPI struct {
	mu         sync.Mutex
	nextID     int64
	portfolios []domain.Portfolio
}

func (f *fakeAPI) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/portfolios", func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		defer f.mu.Unlock()
		respond(w, http.StatusOK, "Portfolios retrieved successfully", f.portfolios)
	})
	mux.HandleFunc("POST /api/portfolios", func(w http.ResponseWriter, r *http.Request) {
		var in domain.CreatePortfolioInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			respond(w, http.StatusBadRequest, "Malformed request", nil)
			return
		}
		f.mu.Lock()
		defer f.mu.Unlock()
		for _, p := range f.portfolios {
			if p.Name == in.Name {
				respond(w, http.StatusConflict, "Name already exists", nil)
				return
			}
		}
		f.nextID++
		created := domain.Portfolio{ID: f.nextID, Name: in.Name, InitialInvestment: *in.InitialInvestment}
		f.portfolios = append(f.portfolios, created)
		respond(w, http.StatusCreated, "Portfolio created successfully", created)
	})
	mux.HandleFunc("DELETE /api/portfolios/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, _ := strconv.ParseInt(r.PathValue("id"), 10, 64)
		f.mu.Lock()
		defer f.mu.Unlock()
		for i, p := range f.portfolios {
			if p.ID == id {
				f.portfolios = append(f.portfolios[:i], f.portfolios[i+1:]...)
				respond(w, http.StatusOK, "Portfolio deleted successfully", nil)
				return
			}
		}
		respond(w, http.StatusNotFound, "Portfolio not found with id: "+r.PathValue("id"), nil)
	})
	mux.HandleFunc("GET /api/stock-categories", func(w http.ResponseWriter, r *http.Request) {
		respond(w, http.StatusOK, "Categories retrieved successfully", nil)
	})
	return mux
}

func respond(w http.ResponseWriter, status int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"success": status < 300,
		"message": message,
		"data":    data,
	})
}

func TestStoreAgainstAPI(t *testing.T) {
	api := &fakeAPI{}
	server := httptest.NewServer(api.handler())
	defer server.Close()

	client := backend.NewClientWithHTTPClient(server.URL+"/api", server.Client())
	feed := memory.NewNotificationFeed(10)
	app := application.NewAppContext(client, feed)
	ctx := context.Background()

	// Empty backend: nothing is selected.
	app.Store.Reload(ctx)
	state := app.Store.Snapshot()
	assert.Empty(t, state.Portfolios)
	assert.NotNil(t, state.Categories)
	assert.Nil(t, state.SelectedPortfolio)

	// First portfolio becomes the selection.
	retirement, err := app.Store.CreatePortfolio(ctx, domain.CreatePortfolioInput{
		Name:              "Retirement",
		InitialInvestment: domain.DecimalPtr(domain.MustDecimal("10000")),
	})
	require.NoError(t, err)
	require.NotNil(t, app.Store.Selected())
	assert.Equal(t, retirement.ID, app.Store.Selected().ID)

	trading, err := app.Store.CreatePortfolio(ctx, domain.CreatePortfolioInput{
		Name:              "Trading",
		InitialInvestment: domain.DecimalPtr(domain.MustDecimal("2500")),
	})
	require.NoError(t, err)

	// Duplicate name is rejected with the API's message.
	_, err = app.Store.CreatePortfolio(ctx, domain.CreatePortfolioInput{
		Name:              "Trading",
		InitialInvestment: domain.DecimalPtr(domain.MustDecimal("1")),
	})
	require.EqualError(t, err, "Name already exists")
	assert.Len(t, app.Store.Snapshot().Portfolios, 2)

	// Deleting the selection moves it to the remaining portfolio.
	require.NoError(t, app.Store.DeletePortfolio(ctx, retirement.ID))
	assert.Equal(t, trading.ID, app.Store.Selected().ID)

	err = app.Store.DeletePortfolio(ctx, retirement.ID)
	require.Error(t, err)
	apiErr, ok := backend.AsError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)

	messages := make([]string, 0)
	for _, n := range feed.List() {
		messages = append(messages, n.Message)
	}
	assert.Equal(t, []string{
		"Portfolio not found with id: 1",
		"Portfolio deleted successfully",
		"Name already exists",
		"Portfolio created successfully",
		"Portfolio created successfully",
	}, messages)
}
