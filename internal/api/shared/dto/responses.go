package dto

import "time"

// SellOrderResponse represents a sell order. Gift secrets and their digests are never exposed.
type SellOrderResponse struct {
	ID           uint64    `json:"id"`
	Seller       string    `json:"seller"`
	AssetID      string    `json:"asset_id"`
	CollectionID string    `json:"collection_id"`
	Creator      string    `json:"creator,omitempty"`
	NFTToken     string    `json:"nft_token"`
	Price        string    `json:"price"`
	OrderType    string    `json:"order_type"`
	FromDate     time.Time `json:"from_date"`
	ToDate       time.Time `json:"to_date"`
	Status       string    `json:"status"`
	ContractID   *uint64   `json:"contract_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// SellOrderListResponse represents a list of sell orders
type SellOrderListResponse struct {
	SellOrders []SellOrderResponse `json:"sell_orders"`
	Total      int                 `json:"total"`
}

// CreateSellOrderResponse represents the response for listing an asset
type CreateSellOrderResponse struct {
	OrderID uint64 `json:"order_id"`
}

// BatchSellOrderItem represents the outcome of one element of a batch listing
type BatchSellOrderItem struct {
	Index   int        `json:"index"`
	OrderID *uint64    `json:"order_id,omitempty"`
	Error   *ItemError `json:"error,omitempty"`
}

// ItemError describes why a batch element failed
type ItemError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// BatchSellOrderResponse represents the response for a batch listing
type BatchSellOrderResponse struct {
	Items   []BatchSellOrderItem `json:"items"`
	Created int                  `json:"created"`
	Failed  int                  `json:"failed"`
}

// BuyOrderResponse represents an outstanding buy order
type BuyOrderResponse struct {
	ConfirmationID string    `json:"confirmation_id"`
	AssetID        string    `json:"asset_id"`
	Buyer          string    `json:"buyer"`
	PurchasePrice  string    `json:"purchase_price"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// BuyOrderListResponse represents a list of buy orders
type BuyOrderListResponse struct {
	BuyOrders []BuyOrderResponse `json:"buy_orders"`
	Total     int                `json:"total"`
}

// CreateBuyOrderResponse represents the response for placing an offer
type CreateBuyOrderResponse struct {
	ConfirmationID string `json:"confirmation_id"`
}

// ExecuteBuyOrderResponse represents the response for matching an asset's offers
type ExecuteBuyOrderResponse struct {
	ContractID uint64 `json:"contract_id"`
	Buyer      string `json:"buyer"`
}

// RedeemGiftResponse represents the response for claiming a gift
type RedeemGiftResponse struct {
	ContractID uint64 `json:"contract_id"`
}

// TransactionResponse represents a settlement ledger entry
type TransactionResponse struct {
	ContractID    uint64    `json:"contract_id,omitempty"`
	From          string    `json:"from"`
	To            string    `json:"to"`
	Value         string    `json:"value"`
	Type          string    `json:"type"`
	ExecutionDate time.Time `json:"execution_date"`
}

// TransactionListResponse represents a list of ledger entries
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Total        int                   `json:"total"`
}

// ContractResponse represents a sales contract
type ContractResponse struct {
	ID                uint64                `json:"id"`
	Status            string                `json:"status"`
	SellOrder         SellOrderResponse     `json:"sell_order"`
	BuyOrder          *BuyOrderResponse     `json:"buy_order,omitempty"`
	Seller            string                `json:"seller"`
	Buyer             string                `json:"buyer"`
	AssetID           string                `json:"asset_id"`
	CollectionID      string                `json:"collection_id"`
	Creator           string                `json:"creator,omitempty"`
	NFTToken          string                `json:"nft_token"`
	PurchasePrice     string                `json:"purchase_price"`
	CommissionPercent *string               `json:"commission_percent,omitempty"`
	ExecutionType     string                `json:"execution_type"`
	ExecutionDate     *time.Time            `json:"execution_date,omitempty"`
	Transactions      []TransactionResponse `json:"transactions"`
	CreatedAt         time.Time             `json:"created_at"`
	UpdatedAt         time.Time             `json:"updated_at"`
}

// ContractListResponse represents a list of sales contracts
type ContractListResponse struct {
	Contracts []ContractResponse `json:"contracts"`
	Total     int                `json:"total"`
}

// AssetStatsResponse represents sales statistics of one asset
type AssetStatsResponse struct {
	AssetID      string     `json:"asset_id"`
	Count        int        `json:"count"`
	Price        string     `json:"price"`
	AveragePrice string     `json:"average_price"`
	Volume       string     `json:"volume"`
	LastSaleAt   *time.Time `json:"last_sale_at,omitempty"`
}

// AssetStatsListResponse represents sales statistics of several assets
type AssetStatsListResponse struct {
	Stats []AssetStatsResponse `json:"stats"`
}

// CreatorStatsResponse represents the creator earnings of one asset
type CreatorStatsResponse struct {
	AssetID     string `json:"asset_id"`
	Creator     string `json:"creator"`
	Sales       int    `json:"sales"`
	Volume      string `json:"volume"`
	Commissions string `json:"commissions"`
}

// CreatorStatsListResponse represents creator earnings of several assets
type CreatorStatsListResponse struct {
	Stats []CreatorStatsResponse `json:"stats"`
}

// TopSalesResponse represents the sales count of an asset over recent weeks
type TopSalesResponse struct {
	AssetID     string `json:"asset_id"`
	Count       int    `json:"count"`
	LastWeek    int    `json:"last_week"`
	TwoWeeksAgo int    `json:"two_weeks_ago"`
	Growth      *int   `json:"growth,omitempty"`
}

// TopSalesListResponse represents a ranking of assets
type TopSalesListResponse struct {
	Assets []TopSalesResponse `json:"assets"`
}

// UserStatsResponse represents the trading summary of a party
type UserStatsResponse struct {
	Party         string `json:"party"`
	Bought        int    `json:"bought"`
	Sold          int    `json:"sold"`
	Spent         string `json:"spent"`
	Earned        string `json:"earned"`
	GiftsReceived int    `json:"gifts_received"`
	GiftsSent     int    `json:"gifts_sent"`
}

// HealthResponse represents the health status of the API
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}
