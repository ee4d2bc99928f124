package engine

import (
	"github.com/feral-file/ff-sales-engine/internal/domain"
	"github.com/feral-file/ff-sales-engine/internal/stats"
)

// AssetStats returns the sales stats of an asset. Results are cached until a contract
// for the asset is approved.
func (e *Engine) AssetStats(assetID domain.AssetID) stats.SalesStats {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.assetStats(assetID)
}

// ManyAssetStats returns stats for each requested asset, in request order, from one
// consistent view of the contracts
func (e *Engine) ManyAssetStats(assetIDs []domain.AssetID) []stats.SalesStats {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]stats.SalesStats, 0, len(assetIDs))
	for _, id := range assetIDs {
		out = append(out, e.assetStats(id))
	}
	return out
}

// assetStats must be called with e.mu held. The cache is only invalidated under the
// write lock, so a hit always agrees with the contracts visible to the caller.
func (e *Engine) assetStats(assetID domain.AssetID) stats.SalesStats {
	if cached, ok := e.statsCache.Get(assetID); ok {
		return cached.Clone()
	}

	s := stats.Asset(e.contractsOf(e.contractsByAsset[assetID]), assetID)
	e.statsCache.Add(assetID, s)
	return s.Clone()
}

// CreatorAssetsStats returns per-asset sales and commission totals
func (e *Engine) CreatorAssetsStats(assetIDs []domain.AssetID) []stats.CreatorSalesStats {
	e.mu.RLock()
	defer e.mu.RUnlock()

	var ids []domain.ContractID
	for _, assetID := range assetIDs {
		ids = append(ids, e.contractsByAsset[assetID]...)
	}
	return stats.Creators(e.contractsOf(ids), assetIDs)
}

// TopSales returns per-asset sales counts for the last two weeks
func (e *Engine) TopSales() []stats.TopSalesStats {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return stats.TopSales(e.contractsOf(e.contractIDs), e.clock.Now())
}

// Trending returns the assets that sold the most over the last week
func (e *Engine) Trending(limit int) []stats.TrendingAsset {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return stats.Trending(e.contractsOf(e.contractIDs), e.clock.Now(), limit)
}

// UserSalesStats summarizes what a party bought, sold and gifted
func (e *Engine) UserSalesStats(party domain.Party) stats.UserSalesStats {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return stats.User(e.contractsOf(e.contractsByParty[party]), party)
}

func (e *Engine) contractsOf(ids []domain.ContractID) []*domain.SalesContract {
	out := make([]*domain.SalesContract, 0, len(ids))
	for _, id := range ids {
		out = append(out, e.contracts[id])
	}
	return out
}
