// Package stats derives sales statistics from sales contracts and their ledgers.
// Nothing here holds state: every figure can be recomputed from persisted contracts.
package stats

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/feral-file/ff-sales-engine/internal/domain"
)

const (
	week = 7 * 24 * time.Hour

	// averageScale is the number of decimal places of average prices
	averageScale = 8
)

// SalesStats summarizes completed sales of an asset
type SalesStats struct {
	AssetID      domain.AssetID
	Count        int
	Price        domain.Amount // price of the latest sale
	AveragePrice domain.Amount
	Volume       domain.Amount
	LastSaleAt   *time.Time
}

// Clone returns a copy that shares no pointers with s
func (s SalesStats) Clone() SalesStats {
	if s.LastSaleAt != nil {
		t := *s.LastSaleAt
		s.LastSaleAt = &t
	}
	return s
}

// CreatorSalesStats summarizes what an asset's sales produced
type CreatorSalesStats struct {
	AssetID     domain.AssetID
	Creator     domain.Party
	Sales       int
	Volume      domain.Amount
	Commissions domain.Amount
}

// TopSalesStats buckets completed sales of an asset into weekly windows
type TopSalesStats struct {
	AssetID     domain.AssetID
	Count       int
	LastWeek    int
	TwoWeeksAgo int
}

// TrendingAsset is an asset ranked by recent sales
type TrendingAsset struct {
	TopSalesStats
	Growth int
}

// UserSalesStats summarizes the trading activity of a party
type UserSalesStats struct {
	Party         domain.Party
	Bought        int
	Sold          int
	Spent         domain.Amount
	Earned        domain.Amount
	GiftsReceived int
	GiftsSent     int
}

// completedSale reports whether the contract counts as a sale
func completedSale(c *domain.SalesContract) bool {
	if c.Status != domain.ContractStatusApproved {
		return false
	}
	switch c.ExecutionType {
	case domain.SalesTypeMarketplace:
		return true
	case domain.SalesTypeGift:
		return false
	}
	return false
}

func executedAt(c *domain.SalesContract) time.Time {
	if c.ExecutionDate != nil {
		return *c.ExecutionDate
	}
	return c.UpdatedAt
}

// Asset computes the sales stats of one asset
func Asset(contracts []*domain.SalesContract, assetID domain.AssetID) SalesStats {
	out := SalesStats{
		AssetID:      assetID,
		Price:        decimal.Zero,
		AveragePrice: decimal.Zero,
		Volume:       decimal.Zero,
	}

	var latest *domain.SalesContract
	for _, c := range contracts {
		if c.AssetID != assetID || !completedSale(c) {
			continue
		}
		out.Count++
		out.Volume = out.Volume.Add(c.PurchasePrice)

		if latest == nil || executedAt(c).After(executedAt(latest)) ||
			(executedAt(c).Equal(executedAt(latest)) && c.ID > latest.ID) {
			latest = c
		}
	}

	if latest != nil {
		out.Price = latest.PurchasePrice
		t := executedAt(latest)
		out.LastSaleAt = &t
		out.AveragePrice = out.Volume.DivRound(decimal.NewFromInt(int64(out.Count)), averageScale)
	}

	return out
}

// Assets computes stats for each requested asset, in request order
func Assets(contracts []*domain.SalesContract, assetIDs []domain.AssetID) []SalesStats {
	byAsset := groupByAsset(contracts)
	out := make([]SalesStats, 0, len(assetIDs))
	for _, id := range assetIDs {
		out = append(out, Asset(byAsset[id], id))
	}
	return out
}

// Creators computes per-asset sales counts and the commission they accrued
func Creators(contracts []*domain.SalesContract, assetIDs []domain.AssetID) []CreatorSalesStats {
	byAsset := groupByAsset(contracts)
	out := make([]CreatorSalesStats, 0, len(assetIDs))
	for _, id := range assetIDs {
		s := CreatorSalesStats{
			AssetID:     id,
			Volume:      decimal.Zero,
			Commissions: decimal.Zero,
		}
		for _, c := range byAsset[id] {
			if s.Creator.Empty() {
				s.Creator = c.Creator
			}
			if !completedSale(c) {
				continue
			}
			s.Sales++
			s.Volume = s.Volume.Add(c.PurchasePrice)
			for _, tx := range c.Transactions {
				switch tx.Type {
				case domain.TransactionTypeCommission:
					s.Commissions = s.Commissions.Add(tx.Value)
				case domain.TransactionTypeBase, domain.TransactionTypeMint:
				}
			}
		}
		out = append(out, s)
	}
	return out
}

// TopSales buckets completed sales per asset into the last week and the week before it,
// relative to now. Assets without sales are omitted; the result is sorted by asset id.
func TopSales(contracts []*domain.SalesContract, now time.Time) []TopSalesStats {
	lastWeekStart := now.Add(-week)
	twoWeeksStart := now.Add(-2 * week)

	byAsset := make(map[domain.AssetID]*TopSalesStats)
	for _, c := range contracts {
		if !completedSale(c) {
			continue
		}
		s, ok := byAsset[c.AssetID]
		if !ok {
			s = &TopSalesStats{AssetID: c.AssetID}
			byAsset[c.AssetID] = s
		}
		s.Count++

		at := executedAt(c)
		switch {
		case at.After(now):
		case at.After(lastWeekStart):
			s.LastWeek++
		case at.After(twoWeeksStart):
			s.TwoWeeksAgo++
		}
	}

	out := make([]TopSalesStats, 0, len(byAsset))
	for _, s := range byAsset {
		out = append(out, *s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AssetID < out[j].AssetID })
	return out
}

// Trending ranks assets with sales in the last week by that count, then by growth over
// the week before. A limit of zero or less returns every asset.
func Trending(contracts []*domain.SalesContract, now time.Time, limit int) []TrendingAsset {
	var out []TrendingAsset
	for _, s := range TopSales(contracts, now) {
		if s.LastWeek == 0 {
			continue
		}
		out = append(out, TrendingAsset{TopSalesStats: s, Growth: s.LastWeek - s.TwoWeeksAgo})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].LastWeek != out[j].LastWeek {
			return out[i].LastWeek > out[j].LastWeek
		}
		if out[i].Growth != out[j].Growth {
			return out[i].Growth > out[j].Growth
		}
		return out[i].AssetID < out[j].AssetID
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// User summarizes the approved contracts a party took part in
func User(contracts []*domain.SalesContract, party domain.Party) UserSalesStats {
	out := UserSalesStats{
		Party:  party,
		Spent:  decimal.Zero,
		Earned: decimal.Zero,
	}

	for _, c := range contracts {
		if c.Status != domain.ContractStatusApproved || !c.Involves(party) {
			continue
		}
		switch c.ExecutionType {
		case domain.SalesTypeGift:
			if c.Buyer == party {
				out.GiftsReceived++
			}
			if c.Seller == party {
				out.GiftsSent++
			}
		case domain.SalesTypeMarketplace:
			if c.Buyer == party {
				out.Bought++
				out.Spent = out.Spent.Add(c.PurchasePrice)
			}
			if c.Seller == party {
				out.Sold++
				for _, tx := range c.Transactions {
					if tx.Type == domain.TransactionTypeBase && tx.To == party {
						out.Earned = out.Earned.Add(tx.Value)
					}
				}
			}
		}
	}

	return out
}

func groupByAsset(contracts []*domain.SalesContract) map[domain.AssetID][]*domain.SalesContract {
	out := make(map[domain.AssetID][]*domain.SalesContract)
	for _, c := range contracts {
		out[c.AssetID] = append(out[c.AssetID], c)
	}
	return out
}
