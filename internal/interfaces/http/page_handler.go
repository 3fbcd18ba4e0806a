package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jmanzanog/portfolio-console/internal/domain"
)

// Page loads never fail at the HTTP level; load errors are reported in the
// returned state and through the notification feed.

func (h *Handler) DashboardPage(c *gin.Context) {
	c.JSON(http.StatusOK, h.pages.Dashboard.Load(c.Request.Context()))
}

// AssetsPage shows the portfolio named by ?portfolioId=, or the selected one.
func (h *Handler) AssetsPage(c *gin.Context) {
	portfolioID, ok := portfolioQuery(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, h.pages.Assets.LoadPortfolio(c.Request.Context(), portfolioID))
}

func (h *Handler) AssetGroupsPage(c *gin.Context) {
	c.JSON(http.StatusOK, h.pages.AssetGroups.Load(c.Request.Context()))
}

func (h *Handler) CreditCardsPage(c *gin.Context) {
	c.JSON(http.StatusOK, h.pages.CreditCards.Load(c.Request.Context()))
}

func (h *Handler) CategoriesPage(c *gin.Context) {
	c.JSON(http.StatusOK, h.pages.Categories.Load(c.Request.Context()))
}

// --- Assets ---

func (h *Handler) CreateAsset(c *gin.Context) {
	portfolioID, ok := portfolioQuery(c)
	if !ok {
		return
	}
	var req domain.AssetInput
	if !bindJSON(c, &req) {
		return
	}

	asset, err := h.pages.Assets.CreateIn(c.Request.Context(), portfolioID, req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, asset)
}

func (h *Handler) GetAsset(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	asset, err := h.pages.Assets.Details(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, asset)
}

func (h *Handler) UpdateAsset(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req domain.AssetUpdate
	if !bindJSON(c, &req) {
		return
	}

	asset, err := h.pages.Assets.Update(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, asset)
}

func (h *Handler) DeleteAsset(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.pages.Assets.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) BuyAsset(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req domain.BuyInput
	if !bindJSON(c, &req) {
		return
	}

	asset, err := h.pages.Assets.Buy(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, asset)
}

func (h *Handler) AssetHistory(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	history, err := h.pages.Assets.History(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, history)
}

func (h *Handler) AssetPerformance(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	perf, err := h.pages.Assets.Performance(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, perf)
}

func (h *Handler) AssetGroups(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	groups, err := h.pages.Assets.Groups(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, groups)
}

func (h *Handler) AddAssetToGroups(c *gin.Context) {
	h.changeMembership(c, h.pages.Assets.AddToGroups)
}

func (h *Handler) ReplaceAssetGroups(c *gin.Context) {
	h.changeMembership(c, h.pages.Assets.ReplaceGroups)
}

type membershipChange func(ctx context.Context, id int64, in domain.GroupMembershipInput) ([]domain.AssetGroup, error)

func (h *Handler) changeMembership(c *gin.Context, change membershipChange) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req domain.GroupMembershipInput
	if !bindJSON(c, &req) {
		return
	}

	groups, err := change(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, groups)
}

func (h *Handler) RemoveAssetFromGroup(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	groupID, ok := idParam(c, "groupId")
	if !ok {
		return
	}

	if err := h.pages.Assets.RemoveFromGroup(c.Request.Context(), id, groupID); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// --- Asset groups ---

func (h *Handler) CreateAssetGroup(c *gin.Context) {
	var req domain.AssetGroupInput
	if !bindJSON(c, &req) {
		return
	}

	group, err := h.pages.AssetGroups.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, group)
}

func (h *Handler) GetAssetGroup(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	group, err := h.pages.AssetGroups.Details(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, group)
}

func (h *Handler) AssetGroupPerformance(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	perf, err := h.pages.AssetGroups.GroupPerformance(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, perf)
}

func (h *Handler) UpdateAssetGroup(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req domain.AssetGroupInput
	if !bindJSON(c, &req) {
		return
	}

	group, err := h.pages.AssetGroups.Update(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, group)
}

func (h *Handler) DeleteAssetGroup(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.pages.AssetGroups.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// --- Credit cards ---

func (h *Handler) CreateCreditCard(c *gin.Context) {
	var req domain.CreditCardInput
	if !bindJSON(c, &req) {
		return
	}

	card, err := h.pages.CreditCards.Create(c.Request.Context(), req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, card)
}

func (h *Handler) GetCreditCard(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	card, err := h.pages.CreditCards.Details(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, card)
}

func (h *Handler) UpdateCreditCard(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req domain.CreditCardInput
	if !bindJSON(c, &req) {
		return
	}

	card, err := h.pages.CreditCards.Update(c.Request.Context(), id, req)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, card)
}

func (h *Handler) DeleteCreditCard(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}

	if err := h.pages.CreditCards.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// --- Alerts ---

func (h *Handler) LastAlerts(c *gin.Context) {
	report := h.pages.Alerts.Last()
	if report == nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "no alert check has run for the selected portfolio"})
		return
	}
	c.JSON(http.StatusOK, report)
}

func (h *Handler) CheckAlerts(c *gin.Context) {
	report, err := h.pages.Alerts.Check(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}
