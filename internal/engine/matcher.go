package engine

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/feral-file/ff-sales-engine/internal/domain"
	"github.com/feral-file/ff-sales-engine/internal/logger"
	"github.com/feral-file/ff-sales-engine/internal/store"
)

// ExecuteBuyOrder matches the earliest outstanding buy order of an asset with the cheapest
// eligible sell order and opens a pending sales contract between them.
// It returns the new contract id and the buyer.
func (e *Engine) ExecuteBuyOrder(ctx context.Context, assetID domain.AssetID) (domain.ContractID, domain.Party, error) {
	if assetID == "" {
		return 0, "", domain.ErrMissingField
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.clock.Now()
	sells := e.matchableSellOrders(assetID)

	var (
		compatible int
		expired    int
	)
	for _, buy := range e.buyOrdersFor(assetID) {
		var best *domain.SellOrder
		for _, sell := range sells {
			if sell.Price.GreaterThan(buy.PurchasePrice) || sell.Seller == buy.Buyer {
				continue
			}
			compatible++
			window := sell.Window()
			if window.Expired(now) {
				expired++
				continue
			}
			if !window.Contains(now) {
				continue
			}
			// sells are in listing order, so a strict comparison keeps the earliest on ties
			if best == nil || sell.Price.LessThan(best.Price) {
				best = sell
			}
		}

		if best != nil {
			return e.openContract(ctx, best, buy, now)
		}
	}

	if compatible > 0 && expired == compatible {
		return 0, "", domain.ErrOrderExpired
	}
	return 0, "", domain.ErrNoMatch
}

// matchableSellOrders returns the active marketplace sell orders of an asset in listing order
func (e *Engine) matchableSellOrders(assetID domain.AssetID) []*domain.SellOrder {
	var out []*domain.SellOrder
	for _, id := range e.ordersByAsset[assetID] {
		o := e.sellOrders[id]
		if !o.Active() {
			continue
		}
		switch o.OrderType {
		case domain.SalesTypeMarketplace:
			out = append(out, o)
		case domain.SalesTypeGift:
		}
	}
	return out
}

func (e *Engine) openContract(ctx context.Context, sell *domain.SellOrder, buy domain.BuyOrder, now time.Time) (domain.ContractID, domain.Party, error) {
	id := domain.ContractID(e.next(store.SequenceContract))

	sold := cloneSellOrder(sell)
	sold.Status = domain.OrderStatusSold
	sold.ContractID = &id
	sold.UpdatedAt = now

	buySnapshot := buy
	contract := domain.SalesContract{
		ID:            id,
		Status:        domain.ContractStatusPending,
		SellOrder:     cloneSellOrder(&sold),
		BuyOrder:      &buySnapshot,
		Seller:        sell.Seller,
		Buyer:         buy.Buyer,
		AssetID:       sell.AssetID,
		CollectionID:  sell.CollectionID,
		Creator:       sell.Creator,
		NFTID:         sell.NFTToken,
		PurchasePrice: sell.Price,
		ExecutionType: domain.SalesTypeMarketplace,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	changes := &store.Changeset{
		SellOrders:       []domain.SellOrder{sold},
		DeletedBuyOrders: []domain.ConfirmationID{buy.ConfirmationID},
		Contracts:        []domain.SalesContract{contract},
		Sequences:        map[string]uint64{store.SequenceContract: uint64(id)},
	}
	if err := e.commit(ctx, changes); err != nil {
		return 0, "", err
	}

	e.putSellOrder(&sold)
	e.removeBuyOrder(buy.ConfirmationID)
	e.putContract(&contract)

	logger.InfoCtx(ctx, "Sales contract created",
		zap.Uint64("contractID", uint64(id)),
		zap.Uint64("orderID", uint64(sold.ID)),
		zap.String("confirmationID", string(buy.ConfirmationID)),
		zap.String("price", contract.PurchasePrice.String()),
	)
	return id, buy.Buyer, nil
}
