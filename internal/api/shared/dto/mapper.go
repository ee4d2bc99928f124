package dto

import (
	"github.com/feral-file/ff-sales-engine/internal/domain"
	"github.com/feral-file/ff-sales-engine/internal/engine"
	"github.com/feral-file/ff-sales-engine/internal/stats"
)

// MapSellOrderToDTO maps a sell order to its response. The secret digest is dropped.
func MapSellOrderToDTO(o *domain.SellOrder) *SellOrderResponse {
	resp := &SellOrderResponse{
		ID:           uint64(o.ID),
		Seller:       o.Seller.String(),
		AssetID:      string(o.AssetID),
		CollectionID: string(o.CollectionID),
		Creator:      o.Creator.String(),
		NFTToken:     string(o.NFTToken),
		Price:        o.Price.String(),
		OrderType:    string(o.OrderType),
		FromDate:     o.FromDate,
		ToDate:       o.ToDate,
		Status:       string(o.Status),
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
	if o.ContractID != nil {
		id := uint64(*o.ContractID)
		resp.ContractID = &id
	}
	return resp
}

// MapSellOrdersToDTO maps a list of sell orders
func MapSellOrdersToDTO(orders []domain.SellOrder) *SellOrderListResponse {
	resp := &SellOrderListResponse{
		SellOrders: make([]SellOrderResponse, 0, len(orders)),
		Total:      len(orders),
	}
	for i := range orders {
		resp.SellOrders = append(resp.SellOrders, *MapSellOrderToDTO(&orders[i]))
	}
	return resp
}

// MapBuyOrderToDTO maps a buy order to its response
func MapBuyOrderToDTO(o *domain.BuyOrder) *BuyOrderResponse {
	return &BuyOrderResponse{
		ConfirmationID: string(o.ConfirmationID),
		AssetID:        string(o.AssetID),
		Buyer:          o.Buyer.String(),
		PurchasePrice:  o.PurchasePrice.String(),
		CreatedAt:      o.CreatedAt,
		UpdatedAt:      o.UpdatedAt,
	}
}

// MapBuyOrdersToDTO maps a list of buy orders
func MapBuyOrdersToDTO(orders []domain.BuyOrder) *BuyOrderListResponse {
	resp := &BuyOrderListResponse{
		BuyOrders: make([]BuyOrderResponse, 0, len(orders)),
		Total:     len(orders),
	}
	for i := range orders {
		resp.BuyOrders = append(resp.BuyOrders, *MapBuyOrderToDTO(&orders[i]))
	}
	return resp
}

// MapTransactionToDTO maps a ledger entry
func MapTransactionToDTO(contractID domain.ContractID, tx *domain.Transaction) *TransactionResponse {
	return &TransactionResponse{
		ContractID:    uint64(contractID),
		From:          tx.From.String(),
		To:            tx.To.String(),
		Value:         tx.Value.String(),
		Type:          string(tx.Type),
		ExecutionDate: tx.ExecutionDate,
	}
}

// MapContractTransactionsToDTO maps the transactions of one contract
func MapContractTransactionsToDTO(contractID domain.ContractID, txs []domain.Transaction) *TransactionListResponse {
	resp := &TransactionListResponse{
		Transactions: make([]TransactionResponse, 0, len(txs)),
		Total:        len(txs),
	}
	for i := range txs {
		resp.Transactions = append(resp.Transactions, *MapTransactionToDTO(contractID, &txs[i]))
	}
	return resp
}

// MapLedgerToDTO maps ledger entries of several contracts
func MapLedgerToDTO(entries []engine.LedgerEntry) *TransactionListResponse {
	resp := &TransactionListResponse{
		Transactions: make([]TransactionResponse, 0, len(entries)),
		Total:        len(entries),
	}
	for i := range entries {
		resp.Transactions = append(resp.Transactions, *MapTransactionToDTO(entries[i].ContractID, &entries[i].Transaction))
	}
	return resp
}

// MapContractToDTO maps a sales contract to its response
func MapContractToDTO(c *domain.SalesContract) *ContractResponse {
	resp := &ContractResponse{
		ID:            uint64(c.ID),
		Status:        string(c.Status),
		SellOrder:     *MapSellOrderToDTO(&c.SellOrder),
		Seller:        c.Seller.String(),
		Buyer:         c.Buyer.String(),
		AssetID:       string(c.AssetID),
		CollectionID:  string(c.CollectionID),
		Creator:       c.Creator.String(),
		NFTToken:      string(c.NFTID),
		PurchasePrice: c.PurchasePrice.String(),
		ExecutionType: string(c.ExecutionType),
		ExecutionDate: c.ExecutionDate,
		Transactions:  MapContractTransactionsToDTO(c.ID, c.Transactions).Transactions,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
	if c.BuyOrder != nil {
		resp.BuyOrder = MapBuyOrderToDTO(c.BuyOrder)
	}
	if c.CommissionPercent != nil {
		pct := c.CommissionPercent.String()
		resp.CommissionPercent = &pct
	}
	return resp
}

// MapContractsToDTO maps a list of sales contracts
func MapContractsToDTO(contracts []domain.SalesContract) *ContractListResponse {
	resp := &ContractListResponse{
		Contracts: make([]ContractResponse, 0, len(contracts)),
		Total:     len(contracts),
	}
	for i := range contracts {
		resp.Contracts = append(resp.Contracts, *MapContractToDTO(&contracts[i]))
	}
	return resp
}

// MapAssetStatsToDTO maps the sales statistics of an asset
func MapAssetStatsToDTO(s *stats.SalesStats) *AssetStatsResponse {
	return &AssetStatsResponse{
		AssetID:      string(s.AssetID),
		Count:        s.Count,
		Price:        s.Price.String(),
		AveragePrice: s.AveragePrice.String(),
		Volume:       s.Volume.String(),
		LastSaleAt:   s.LastSaleAt,
	}
}

// MapManyAssetStatsToDTO maps the sales statistics of several assets
func MapManyAssetStatsToDTO(list []stats.SalesStats) *AssetStatsListResponse {
	resp := &AssetStatsListResponse{Stats: make([]AssetStatsResponse, 0, len(list))}
	for i := range list {
		resp.Stats = append(resp.Stats, *MapAssetStatsToDTO(&list[i]))
	}
	return resp
}

// MapCreatorStatsToDTO maps creator earnings
func MapCreatorStatsToDTO(list []stats.CreatorSalesStats) *CreatorStatsListResponse {
	resp := &CreatorStatsListResponse{Stats: make([]CreatorStatsResponse, 0, len(list))}
	for _, s := range list {
		resp.Stats = append(resp.Stats, CreatorStatsResponse{
			AssetID:     string(s.AssetID),
			Creator:     s.Creator.String(),
			Sales:       s.Sales,
			Volume:      s.Volume.String(),
			Commissions: s.Commissions.String(),
		})
	}
	return resp
}

func mapTopSales(s *stats.TopSalesStats) TopSalesResponse {
	return TopSalesResponse{
		AssetID:     string(s.AssetID),
		Count:       s.Count,
		LastWeek:    s.LastWeek,
		TwoWeeksAgo: s.TwoWeeksAgo,
	}
}

// MapTopSalesToDTO maps the top sales ranking
func MapTopSalesToDTO(list []stats.TopSalesStats) *TopSalesListResponse {
	resp := &TopSalesListResponse{Assets: make([]TopSalesResponse, 0, len(list))}
	for i := range list {
		resp.Assets = append(resp.Assets, mapTopSales(&list[i]))
	}
	return resp
}

// MapTrendingToDTO maps the trending ranking
func MapTrendingToDTO(list []stats.TrendingAsset) *TopSalesListResponse {
	resp := &TopSalesListResponse{Assets: make([]TopSalesResponse, 0, len(list))}
	for i := range list {
		item := mapTopSales(&list[i].TopSalesStats)
		growth := list[i].Growth
		item.Growth = &growth
		resp.Assets = append(resp.Assets, item)
	}
	return resp
}

// MapUserStatsToDTO maps the trading summary of a party
func MapUserStatsToDTO(s *stats.UserSalesStats) *UserStatsResponse {
	return &UserStatsResponse{
		Party:         s.Party.String(),
		Bought:        s.Bought,
		Sold:          s.Sold,
		Spent:         s.Spent.String(),
		Earned:        s.Earned.String(),
		GiftsReceived: s.GiftsReceived,
		GiftsSent:     s.GiftsSent,
	}
}
