package http

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jmanzanog/portfolio-console/internal/application"
	"github.com/jmanzanog/portfolio-console/internal/domain"
	"github.com/jmanzanog/portfolio-console/internal/infrastructure/backend"
)

// NotificationFeed is the read side of the notifications raised by the pages.
type NotificationFeed interface {
	List() []domain.Notification
	Dismiss(id string) error
	Clear()
}

type Handler struct {
	pages *application.Pages
	feed  NotificationFeed
}

func NewHandler(pages *application.Pages, feed NotificationFeed) *Handler {
	return &Handler{
		pages: pages,
		feed:  feed,
	}
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type SelectPortfolioRequest struct {
	PortfolioID *int64 `json:"portfolioId"`
}

// writeError maps err to a status code. API errors keep the upstream status;
// transport and decode failures become 502.
func writeError(c *gin.Context, err error) {
	c.JSON(statusFor(err), ErrorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrValidation), errors.Is(err, domain.ErrPortfolioNotSelected):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrPortfolioNotFound), errors.Is(err, domain.ErrNotificationNotFound):
		return http.StatusNotFound
	}
	if apiErr, ok := backend.AsError(err); ok {
		if apiErr.Transport() || apiErr.StatusCode < http.StatusBadRequest {
			return http.StatusBadGateway
		}
		return apiErr.StatusCode
	}
	return http.StatusInternalServerError
}

func idParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + name})
		return 0, false
	}
	return id, true
}

// portfolioQuery reads the optional portfolioId query parameter. Zero
// means the selected portfolio.
func portfolioQuery(c *gin.Context) (int64, bool) {
	raw := c.Query("portfolioId")
	if raw == "" {
		return 0, true
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid portfolioId"})
		return 0, false
	}
	return id, true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		slog.ErrorContext(c.Request.Context(), "Invalid request body", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return false
	}
	return true
}

func (h *Handler) State(c *gin.Context) {
	c.JSON(http.StatusOK, h.pages.App.Store.Snapshot())
}

func (h *Handler) ListPortfolios(c *gin.Context) {
	c.JSON(http.StatusOK, h.pages.App.Store.Snapshot().Portfolios)
}

func (h *Handler) ReloadPortfolios(c *gin.Context) {
	h.pages.App.Store.LoadPortfolios(c.Request.Context())
	c.JSON(http.StatusOK, h.pages.App.Store.Snapshot())
}

func (h *Handler) CreatePortfolio(c *gin.Context) {
	var req domain.CreatePortfolioInput
	if !bindJSON(c, &req) {
		return
	}

	portfolio, err := h.pages.App.Store.CreatePortfolio(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, portfolio)
}

func (h *Handler) DeletePortfolio(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.pages.App.Store.DeletePortfolio(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// SelectPortfolio selects one of the loaded portfolios. A null id clears
// the selection.
func (h *Handler) SelectPortfolio(c *gin.Context) {
	var req SelectPortfolioRequest
	if !bindJSON(c, &req) {
		return
	}

	store := h.pages.App.Store
	if req.PortfolioID == nil {
		store.SetSelectedPortfolio(nil)
		c.JSON(http.StatusOK, store.Snapshot())
		return
	}

	portfolio, ok := domain.FindPortfolio(store.Snapshot().Portfolios, *req.PortfolioID)
	if !ok {
		writeError(c, domain.ErrPortfolioNotFound)
		return
	}
	store.SetSelectedPortfolio(&portfolio)
	c.JSON(http.StatusOK, store.Snapshot())
}

func (h *Handler) PortfolioDetails(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	details, err := h.pages.PortfolioDetails.Load(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, details)
}

func (h *Handler) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.pages.App.Store.Snapshot().Categories)
}

func (h *Handler) CreateCategory(c *gin.Context) {
	var req domain.StockCategoryInput
	if !bindJSON(c, &req) {
		return
	}

	category, err := h.pages.Categories.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, category)
}

func (h *Handler) CategoryPerformance(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	perf, err := h.pages.Categories.CategoryPerformance(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, perf)
}

func (h *Handler) GetCategory(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	category, err := h.pages.Categories.Details(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, category)
}

func (h *Handler) ListNotifications(c *gin.Context) {
	c.JSON(http.StatusOK, h.feed.List())
}

func (h *Handler) ClearNotifications(c *gin.Context) {
	h.feed.Clear()
	c.Status(http.StatusNoContent)
}

func (h *Handler) DismissNotification(c *gin.Context) {
	if err := h.feed.Dismiss(c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
