package rest

import (
	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-sales-engine/internal/api/middleware"
)

// SetupRoutes configures all REST API routes
func SetupRoutes(router *gin.Engine, handler Handler, authCfg middleware.AuthConfig) {
	// Health check endpoint (no auth, no version prefix)
	router.GET("/health", handler.HealthCheck)

	callerAuth := middleware.CallerAuth(authCfg)
	adminAuth := middleware.APIKeyAuth(authCfg)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Sell order endpoints
		v1.POST("/sell-orders", callerAuth, handler.CreateSellOrder)
		v1.POST("/sell-orders/batch", callerAuth, handler.BatchCreateSellOrders)
		v1.DELETE("/sell-orders/:id", callerAuth, handler.CancelSellOrder)
		v1.GET("/sell-orders", handler.ListSellOrders)
		v1.GET("/sell-orders/:id", handler.GetSellOrder)
		v1.GET("/collections/:collection_id/sell-orders", handler.ListCollectionSellOrders)
		v1.GET("/users/:party/sell-orders", handler.ListUserSellOrders)

		// Asset scoped endpoints
		v1.GET("/assets/:asset_id/sell-orders", handler.ListAssetSellOrders)
		v1.GET("/assets/:asset_id/contracts", handler.ListAssetContracts)
		v1.POST("/assets/:asset_id/buy-orders", callerAuth, handler.PlaceBuyOrder)
		v1.DELETE("/assets/:asset_id/buy-orders", callerAuth, handler.CancelBuyOrder)
		v1.POST("/assets/:asset_id/execute", callerAuth, handler.ExecuteBuyOrder)

		// Buy order endpoints (public read access)
		v1.GET("/buy-orders", handler.ListBuyOrders)

		// Gift endpoints
		v1.POST("/gifts/redeem", callerAuth, handler.RedeemGift)

		// Contract endpoints
		v1.GET("/contracts", handler.ListContracts)
		v1.GET("/contracts/:id", handler.GetContract)
		v1.GET("/contracts/:id/transactions", handler.GetContractTransactions)
		v1.POST("/contracts/:id/approve", callerAuth, handler.ApproveContract)
		v1.POST("/contracts/:id/reject", callerAuth, handler.RejectContract)
		v1.POST("/contracts/:id/block", adminAuth, handler.BlockContract)
		v1.GET("/nfts/:nft_token/contracts", handler.ListNFTContracts)
		v1.GET("/me/contracts", callerAuth, handler.ListMyContracts)
		v1.GET("/users/:party/contracts", handler.ListUserContracts)
		v1.GET("/transactions", handler.ListTransactions)

		// Stats endpoints (public read access)
		v1.GET("/stats/assets", handler.GetManyAssetStats)
		v1.GET("/stats/assets/:asset_id", handler.GetAssetStats)
		v1.GET("/stats/creators", handler.GetCreatorStats)
		v1.GET("/stats/top-sales", handler.GetTopSales)
		v1.GET("/stats/trending", handler.GetTrending)
		v1.GET("/stats/users/:party", handler.GetUserStats)

		// Admin endpoints (requires API key authentication only)
		v1.POST("/admin/reset", adminAuth, handler.ResetDatastore)
	}
}
