package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine, handler *Handler) {
	router.Use(RequestID(), RequestLogger())

	api := router.Group("/api/v1")
	{
		api.GET("/state", handler.State)

		api.GET("/portfolios", handler.ListPortfolios)
		api.POST("/portfolios", handler.CreatePortfolio)
		api.POST("/portfolios/reload", handler.ReloadPortfolios)
		api.PUT("/portfolios/selected", handler.SelectPortfolio)
		api.DELETE("/portfolios/:id", handler.DeletePortfolio)
		api.GET("/portfolios/:id/details", handler.PortfolioDetails)

		api.GET("/categories", handler.ListCategories)
		api.POST("/categories", handler.CreateCategory)
		api.GET("/categories/:id", handler.GetCategory)
		api.GET("/categories/:id/performance", handler.CategoryPerformance)

		pages := api.Group("/pages")
		pages.GET("/dashboard", handler.DashboardPage)
		pages.GET("/assets", handler.AssetsPage)
		pages.GET("/asset-groups", handler.AssetGroupsPage)
		pages.GET("/credit-cards", handler.CreditCardsPage)
		pages.GET("/categories", handler.CategoriesPage)

		api.POST("/assets", handler.CreateAsset)
		api.GET("/assets/:id", handler.GetAsset)
		api.PUT("/assets/:id", handler.UpdateAsset)
		api.DELETE("/assets/:id", handler.DeleteAsset)
		api.POST("/assets/:id/buy", handler.BuyAsset)
		api.GET("/assets/:id/history", handler.AssetHistory)
		api.GET("/assets/:id/performance", handler.AssetPerformance)
		api.GET("/assets/:id/groups", handler.AssetGroups)
		api.POST("/assets/:id/groups", handler.AddAssetToGroups)
		api.PUT("/assets/:id/groups", handler.ReplaceAssetGroups)
		api.DELETE("/assets/:id/groups/:groupId", handler.RemoveAssetFromGroup)

		api.POST("/asset-groups", handler.CreateAssetGroup)
		api.GET("/asset-groups/:id", handler.GetAssetGroup)
		api.GET("/asset-groups/:id/performance", handler.AssetGroupPerformance)
		api.PUT("/asset-groups/:id", handler.UpdateAssetGroup)
		api.DELETE("/asset-groups/:id", handler.DeleteAssetGroup)

		api.POST("/credit-cards", handler.CreateCreditCard)
		api.GET("/credit-cards/:id", handler.GetCreditCard)
		api.PUT("/credit-cards/:id", handler.UpdateCreditCard)
		api.DELETE("/credit-cards/:id", handler.DeleteCreditCard)

		api.GET("/alerts", handler.LastAlerts)
		api.POST("/alerts/check", handler.CheckAlerts)

		api.GET("/notifications", handler.ListNotifications)
		api.DELETE("/notifications", handler.ClearNotifications)
		api.DELETE("/notifications/:id", handler.DismissNotification)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
