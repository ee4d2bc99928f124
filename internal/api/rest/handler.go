package rest

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/feral-file/ff-sales-engine/internal/api/middleware"
	"github.com/feral-file/ff-sales-engine/internal/api/shared/dto"
	"github.com/feral-file/ff-sales-engine/internal/api/shared/executor"
	"github.com/feral-file/ff-sales-engine/internal/domain"
)

// Handler defines the interface for REST API handlers
// This interface allows for easy mocking and testing
//
//go:generate mockgen -source=handler.go -destination=../../mocks/api_handler.go -package=mocks -mock_names=Handler=MockAPIHandler
type Handler interface {
	// CreateSellOrder lists an asset for sale or as a gift
	// POST /api/v1/sell-orders
	CreateSellOrder(c *gin.Context)

	// BatchCreateSellOrders lists several assets; the response reports every element
	// POST /api/v1/sell-orders/batch
	BatchCreateSellOrders(c *gin.Context)

	// CancelSellOrder withdraws an active sell order of the caller
	// DELETE /api/v1/sell-orders/:id
	CancelSellOrder(c *gin.Context)

	// ListSellOrders retrieves every sell order
	// GET /api/v1/sell-orders
	ListSellOrders(c *gin.Context)

	// GetSellOrder retrieves a single sell order
	// GET /api/v1/sell-orders/:id
	GetSellOrder(c *gin.Context)

	// ListAssetSellOrders retrieves the sell orders of an asset
	// GET /api/v1/assets/:asset_id/sell-orders
	ListAssetSellOrders(c *gin.Context)

	// ListCollectionSellOrders retrieves the sell orders of a collection
	// GET /api/v1/collections/:collection_id/sell-orders
	ListCollectionSellOrders(c *gin.Context)

	// ListUserSellOrders retrieves the sell orders of a seller
	// GET /api/v1/users/:party/sell-orders
	ListUserSellOrders(c *gin.Context)

	// PlaceBuyOrder records or replaces the caller's offer on an asset
	// POST /api/v1/assets/:asset_id/buy-orders
	PlaceBuyOrder(c *gin.Context)

	// CancelBuyOrder withdraws the caller's offer on an asset
	// DELETE /api/v1/assets/:asset_id/buy-orders
	CancelBuyOrder(c *gin.Context)

	// ListBuyOrders retrieves outstanding buy orders
	// GET /api/v1/buy-orders?asset_id=<asset_id>
	ListBuyOrders(c *gin.Context)

	// ExecuteBuyOrder matches the best offer on an asset into a pending contract
	// POST /api/v1/assets/:asset_id/execute
	ExecuteBuyOrder(c *gin.Context)

	// RedeemGift claims a gift with its secret
	// POST /api/v1/gifts/redeem
	RedeemGift(c *gin.Context)

	// ApproveContract settles a pending contract
	// POST /api/v1/contracts/:id/approve
	ApproveContract(c *gin.Context)

	// RejectContract rejects a pending contract
	// POST /api/v1/contracts/:id/reject
	RejectContract(c *gin.Context)

	// BlockContract blocks a pending contract (requires API key)
	// POST /api/v1/contracts/:id/block
	BlockContract(c *gin.Context)

	// ListContracts retrieves every sales contract
	// GET /api/v1/contracts
	ListContracts(c *gin.Context)

	// GetContract retrieves a single sales contract
	// GET /api/v1/contracts/:id
	GetContract(c *gin.Context)

	// GetContractTransactions retrieves the ledger of a contract
	// GET /api/v1/contracts/:id/transactions
	GetContractTransactions(c *gin.Context)

	// ListTransactions retrieves the whole ledger
	// GET /api/v1/transactions
	ListTransactions(c *gin.Context)

	// ListAssetContracts retrieves the sales contracts of an asset
	// GET /api/v1/assets/:asset_id/contracts
	ListAssetContracts(c *gin.Context)

	// ListNFTContracts retrieves the sales contracts of a token
	// GET /api/v1/nfts/:nft_token/contracts
	ListNFTContracts(c *gin.Context)

	// ListMyContracts retrieves the sales contracts of the caller
	// GET /api/v1/me/contracts
	ListMyContracts(c *gin.Context)

	// ListUserContracts retrieves the sales contracts of a party
	// GET /api/v1/users/:party/contracts
	ListUserContracts(c *gin.Context)

	// GetAssetStats retrieves the sales statistics of an asset
	// GET /api/v1/stats/assets/:asset_id
	GetAssetStats(c *gin.Context)

	// GetManyAssetStats retrieves the sales statistics of several assets
	// GET /api/v1/stats/assets?asset_id=<id1>&asset_id=<id2>
	GetManyAssetStats(c *gin.Context)

	// GetCreatorStats retrieves creator earnings of several assets
	// GET /api/v1/stats/creators?asset_id=<id1>&asset_id=<id2>
	GetCreatorStats(c *gin.Context)

	// GetTopSales retrieves assets ranked by completed sales
	// GET /api/v1/stats/top-sales
	GetTopSales(c *gin.Context)

	// GetTrending retrieves assets ranked by recent growth
	// GET /api/v1/stats/trending?limit=<limit>
	GetTrending(c *gin.Context)

	// GetUserStats retrieves the trading summary of a party
	// GET /api/v1/stats/users/:party
	GetUserStats(c *gin.Context)

	// ResetDatastore clears every order, contract and sequence (requires API key)
	// POST /api/v1/admin/reset
	ResetDatastore(c *gin.Context)

	// HealthCheck returns the health status of the API
	// GET /health
	HealthCheck(c *gin.Context)
}

// handler implements the Handler interface
type handler struct {
	executor executor.Executor
}

// NewHandler creates a new REST API handler using the shared executor
func NewHandler(exec executor.Executor) Handler {
	return &handler{
		executor: exec,
	}
}

// caller returns the authenticated party or responds with 401
func caller(c *gin.Context) (domain.Party, bool) {
	party, ok := middleware.CallerParty(c)
	if !ok {
		respondUnauthorized(c, "Caller identity is required")
		return "", false
	}
	return party, true
}

// CreateSellOrder lists an asset for sale or as a gift
func (h *handler) CreateSellOrder(c *gin.Context) {
	seller, ok := caller(c)
	if !ok {
		return
	}

	var req dto.SellOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	response, err := h.executor.CreateSellOrder(c.Request.Context(), seller, &req)
	if err != nil {
		respondError(c, err, "Failed to create sell order")
		return
	}

	c.JSON(http.StatusCreated, response)
}

// BatchCreateSellOrders lists several assets at once
func (h *handler) BatchCreateSellOrders(c *gin.Context) {
	seller, ok := caller(c)
	if !ok {
		return
	}

	var req dto.BatchSellOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	response, err := h.executor.BatchCreateSellOrders(c.Request.Context(), seller, &req)
	if err != nil {
		respondError(c, err, "Failed to create sell orders")
		return
	}

	// Elements are reported individually, so the batch itself always succeeds
	c.JSON(http.StatusOK, response)
}

// CancelSellOrder withdraws an active sell order of the caller
func (h *handler) CancelSellOrder(c *gin.Context) {
	party, ok := caller(c)
	if !ok {
		return
	}

	id, err := parseID(c, "id")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	response, err := h.executor.CancelSellOrder(c.Request.Context(), party, domain.OrderID(id))
	if err != nil {
		respondError(c, err, "Failed to cancel sell order")
		return
	}

	c.JSON(http.StatusOK, response)
}

// ListSellOrders retrieves every sell order
func (h *handler) ListSellOrders(c *gin.Context) {
	response, err := h.executor.GetSellOrders(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list sell orders")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetSellOrder retrieves a single sell order
func (h *handler) GetSellOrder(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	response, err := h.executor.GetSellOrder(c.Request.Context(), domain.OrderID(id))
	if err != nil {
		respondError(c, err, "Failed to get sell order")
		return
	}

	c.JSON(http.StatusOK, response)
}

// ListAssetSellOrders retrieves the sell orders of an asset
func (h *handler) ListAssetSellOrders(c *gin.Context) {
	response, err := h.executor.GetSellOrdersByAsset(c.Request.Context(), domain.AssetID(c.Param("asset_id")))
	if err != nil {
		respondError(c, err, "Failed to list sell orders")
		return
	}

	c.JSON(http.StatusOK, response)
}

// ListCollectionSellOrders retrieves the sell orders of a collection
func (h *handler) ListCollectionSellOrders(c *gin.Context) {
	response, err := h.executor.GetSellOrdersByCollection(c.Request.Context(), domain.CollectionID(c.Param("collection_id")))
	if err != nil {
		respondError(c, err, "Failed to list sell orders")
		return
	}

	c.JSON(http.StatusOK, response)
}

// ListUserSellOrders retrieves the sell orders of a seller
func (h *handler) ListUserSellOrders(c *gin.Context) {
	response, err := h.executor.GetSellOrdersBySeller(c.Request.Context(), domain.NewParty(c.Param("party")))
	if err != nil {
		respondError(c, err, "Failed to list sell orders")
		return
	}

	c.JSON(http.StatusOK, response)
}

// PlaceBuyOrder records or replaces the caller's offer on an asset
func (h *handler) PlaceBuyOrder(c *gin.Context) {
	buyer, ok := caller(c)
	if !ok {
		return
	}

	var req dto.BuyOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	response, err := h.executor.PlaceBuyOrder(c.Request.Context(), buyer, domain.AssetID(c.Param("asset_id")), &req)
	if err != nil {
		respondError(c, err, "Failed to place buy order")
		return
	}

	c.JSON(http.StatusCreated, response)
}

// CancelBuyOrder withdraws the caller's offer on an asset
func (h *handler) CancelBuyOrder(c *gin.Context) {
	buyer, ok := caller(c)
	if !ok {
		return
	}

	response, err := h.executor.CancelBuyOrder(c.Request.Context(), buyer, domain.AssetID(c.Param("asset_id")))
	if err != nil {
		respondError(c, err, "Failed to cancel buy order")
		return
	}

	c.JSON(http.StatusOK, response)
}

// ListBuyOrders retrieves outstanding buy orders
func (h *handler) ListBuyOrders(c *gin.Context) {
	queryParams, err := ParseBuyOrdersQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	var assetID *domain.AssetID
	if queryParams.AssetID != "" {
		id := domain.AssetID(queryParams.AssetID)
		assetID = &id
	}

	response, err := h.executor.GetBuyOrders(c.Request.Context(), assetID)
	if err != nil {
		respondError(c, err, "Failed to list buy orders")
		return
	}

	c.JSON(http.StatusOK, response)
}

// ExecuteBuyOrder matches the best offer on an asset into a pending contract
func (h *handler) ExecuteBuyOrder(c *gin.Context) {
	if _, ok := caller(c); !ok {
		return
	}

	response, err := h.executor.ExecuteBuyOrder(c.Request.Context(), domain.AssetID(c.Param("asset_id")))
	if err != nil {
		respondError(c, err, "Failed to execute buy order")
		return
	}

	c.JSON(http.StatusCreated, response)
}

// RedeemGift claims a gift with its secret
func (h *handler) RedeemGift(c *gin.Context) {
	redeemer, ok := caller(c)
	if !ok {
		return
	}

	var req dto.RedeemGiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondValidationError(c, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	response, err := h.executor.RedeemGift(c.Request.Context(), redeemer, &req)
	if err != nil {
		respondError(c, err, "Failed to redeem gift")
		return
	}

	c.JSON(http.StatusCreated, response)
}

// ApproveContract settles a pending contract
func (h *handler) ApproveContract(c *gin.Context) {
	party, ok := caller(c)
	if !ok {
		return
	}

	id, err := parseID(c, "id")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	response, err := h.executor.ApproveContract(c.Request.Context(), party, domain.ContractID(id))
	if err != nil {
		respondError(c, err, "Failed to approve contract")
		return
	}

	c.JSON(http.StatusOK, response)
}

// RejectContract rejects a pending contract
func (h *handler) RejectContract(c *gin.Context) {
	party, ok := caller(c)
	if !ok {
		return
	}

	id, err := parseID(c, "id")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	response, err := h.executor.RejectContract(c.Request.Context(), party, domain.ContractID(id))
	if err != nil {
		respondError(c, err, "Failed to reject contract")
		return
	}

	c.JSON(http.StatusOK, response)
}

// BlockContract blocks a pending contract
func (h *handler) BlockContract(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	response, err := h.executor.BlockContract(c.Request.Context(), domain.ContractID(id))
	if err != nil {
		respondError(c, err, "Failed to block contract")
		return
	}

	c.JSON(http.StatusOK, response)
}

// ListContracts retrieves every sales contract
func (h *handler) ListContracts(c *gin.Context) {
	response, err := h.executor.GetContracts(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list contracts")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetContract retrieves a single sales contract
func (h *handler) GetContract(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	response, err := h.executor.GetContract(c.Request.Context(), domain.ContractID(id))
	if err != nil {
		respondError(c, err, "Failed to get contract")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetContractTransactions retrieves the ledger of a contract
func (h *handler) GetContractTransactions(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	response, err := h.executor.GetContractTransactions(c.Request.Context(), domain.ContractID(id))
	if err != nil {
		respondError(c, err, "Failed to get contract transactions")
		return
	}

	c.JSON(http.StatusOK, response)
}

// ListTransactions retrieves the whole ledger
func (h *handler) ListTransactions(c *gin.Context) {
	response, err := h.executor.GetTransactions(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, response)
}

// ListAssetContracts retrieves the sales contracts of an asset
func (h *handler) ListAssetContracts(c *gin.Context) {
	response, err := h.executor.GetContractsByAsset(c.Request.Context(), domain.AssetID(c.Param("asset_id")))
	if err != nil {
		respondError(c, err, "Failed to list contracts")
		return
	}

	c.JSON(http.StatusOK, response)
}

// ListNFTContracts retrieves the sales contracts of a token
func (h *handler) ListNFTContracts(c *gin.Context) {
	response, err := h.executor.GetContractsByNFT(c.Request.Context(), domain.NFTToken(c.Param("nft_token")))
	if err != nil {
		respondError(c, err, "Failed to list contracts")
		return
	}

	c.JSON(http.StatusOK, response)
}

// ListMyContracts retrieves the sales contracts of the caller
func (h *handler) ListMyContracts(c *gin.Context) {
	party, ok := caller(c)
	if !ok {
		return
	}

	response, err := h.executor.GetContractsByParty(c.Request.Context(), party)
	if err != nil {
		respondError(c, err, "Failed to list contracts")
		return
	}

	c.JSON(http.StatusOK, response)
}

// ListUserContracts retrieves the sales contracts of a party
func (h *handler) ListUserContracts(c *gin.Context) {
	response, err := h.executor.GetContractsByParty(c.Request.Context(), domain.NewParty(c.Param("party")))
	if err != nil {
		respondError(c, err, "Failed to list contracts")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetAssetStats retrieves the sales statistics of an asset
func (h *handler) GetAssetStats(c *gin.Context) {
	response, err := h.executor.GetAssetStats(c.Request.Context(), domain.AssetID(c.Param("asset_id")))
	if err != nil {
		respondError(c, err, "Failed to get asset stats")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetManyAssetStats retrieves the sales statistics of several assets
func (h *handler) GetManyAssetStats(c *gin.Context) {
	queryParams, err := ParseAssetIDsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if err := queryParams.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.GetManyAssetStats(c.Request.Context(), queryParams.DomainIDs())
	if err != nil {
		respondError(c, err, "Failed to get asset stats")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetCreatorStats retrieves creator earnings of several assets
func (h *handler) GetCreatorStats(c *gin.Context) {
	queryParams, err := ParseAssetIDsQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if err := queryParams.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.GetCreatorStats(c.Request.Context(), queryParams.DomainIDs())
	if err != nil {
		respondError(c, err, "Failed to get creator stats")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetTopSales retrieves assets ranked by completed sales
func (h *handler) GetTopSales(c *gin.Context) {
	response, err := h.executor.GetTopSales(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to get top sales")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetTrending retrieves assets ranked by recent growth
func (h *handler) GetTrending(c *gin.Context) {
	queryParams, err := ParseTrendingQuery(c)
	if err != nil {
		respondValidationError(c, err.Error())
		return
	}

	if err := queryParams.Validate(); err != nil {
		respondValidationError(c, err.Error())
		return
	}

	response, err := h.executor.GetTrending(c.Request.Context(), queryParams.Limit)
	if err != nil {
		respondError(c, err, "Failed to get trending assets")
		return
	}

	c.JSON(http.StatusOK, response)
}

// GetUserStats retrieves the trading summary of a party
func (h *handler) GetUserStats(c *gin.Context) {
	response, err := h.executor.GetUserStats(c.Request.Context(), domain.NewParty(c.Param("party")))
	if err != nil {
		respondError(c, err, "Failed to get user stats")
		return
	}

	c.JSON(http.StatusOK, response)
}

// ResetDatastore clears every order, contract and sequence
func (h *handler) ResetDatastore(c *gin.Context) {
	if err := h.executor.ResetDatastore(c.Request.Context()); err != nil {
		respondError(c, err, "Failed to reset datastore")
		return
	}

	c.Status(http.StatusNoContent)
}

// HealthCheck returns the health status of the API
func (h *handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{
		Status:  "ok",
		Service: "ff-sales-api",
	})
}
