package engine

import (
	"context"
	"crypto/subtle"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/feral-file/ff-sales-engine/internal/domain"
	"github.com/feral-file/ff-sales-engine/internal/logger"
	"github.com/feral-file/ff-sales-engine/internal/store"
)

// RedeemGift claims the gift order matching secret for the redeemer.
// The resulting contract is approved immediately and carries a single zero value mint.
func (e *Engine) RedeemGift(ctx context.Context, redeemer domain.Party, secret string) (domain.ContractID, error) {
	if redeemer.Empty() {
		return 0, domain.ErrMissingField
	}
	if secret == "" {
		return 0, domain.ErrEmptySecret
	}

	digest := secretDigest(secret)

	e.mu.Lock()
	defer e.mu.Unlock()

	orderID, ok := e.giftsBySecret[digest]
	if !ok {
		return 0, domain.ErrInvalidSecret
	}
	order := e.sellOrders[orderID]
	if subtle.ConstantTimeCompare([]byte(order.SecretHash), []byte(digest)) != 1 {
		return 0, domain.ErrInvalidSecret
	}

	switch order.Status {
	case domain.OrderStatusActive:
	case domain.OrderStatusRedeemed, domain.OrderStatusSold:
		return 0, domain.ErrAlreadyRedeemed
	case domain.OrderStatusSuperseded:
		return 0, domain.ErrOrderExpired
	case domain.OrderStatusCancelled:
		return 0, domain.ErrInvalidSecret
	}

	now := e.clock.Now()
	window := order.Window()
	if window.Expired(now) {
		return 0, domain.ErrOrderExpired
	}
	if !window.Contains(now) {
		return 0, domain.ErrOrderNotStarted
	}

	id := domain.ContractID(e.next(store.SequenceContract))

	redeemed := cloneSellOrder(order)
	redeemed.Status = domain.OrderStatusRedeemed
	redeemed.ContractID = &id
	redeemed.UpdatedAt = now

	executed := now
	contract := domain.SalesContract{
		ID:            id,
		Status:        domain.ContractStatusApproved,
		SellOrder:     cloneSellOrder(&redeemed),
		Seller:        order.Seller,
		Buyer:         redeemer,
		AssetID:       order.AssetID,
		CollectionID:  order.CollectionID,
		Creator:       order.Creator,
		NFTID:         order.NFTToken,
		PurchasePrice: decimal.Zero,
		ExecutionType: domain.SalesTypeGift,
		ExecutionDate: &executed,
		Transactions: []domain.Transaction{{
			From:          order.Seller,
			To:            redeemer,
			Value:         decimal.Zero,
			Type:          domain.TransactionTypeMint,
			ExecutionDate: now,
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}

	changes := &store.Changeset{
		SellOrders: []domain.SellOrder{redeemed},
		Contracts:  []domain.SalesContract{contract},
		Sequences:  map[string]uint64{store.SequenceContract: uint64(id)},
	}
	if err := e.commit(ctx, changes); err != nil {
		return 0, err
	}

	e.putSellOrder(&redeemed)
	e.putContract(&contract)

	logger.InfoCtx(ctx, "Gift redeemed",
		zap.Uint64("contractID", uint64(id)),
		zap.Uint64("orderID", uint64(orderID)),
	)
	return id, nil
}
