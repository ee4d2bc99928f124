package engine

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"sort"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/feral-file/ff-sales-engine/internal/domain"
	"github.com/feral-file/ff-sales-engine/internal/logger"
	"github.com/feral-file/ff-sales-engine/internal/store"
)

// BatchItem is the outcome of one element of a batch listing
type BatchItem struct {
	Index   int
	OrderID domain.OrderID
	Err     error
}

// BatchResult reports every element of a batch listing, in input order
type BatchResult struct {
	Items []BatchItem
}

// Created returns the ids of the orders that were listed
func (r BatchResult) Created() []domain.OrderID {
	var ids []domain.OrderID
	for _, item := range r.Items {
		if item.Err == nil {
			ids = append(ids, item.OrderID)
		}
	}
	return ids
}

// Failed returns the number of elements that were rejected
func (r BatchResult) Failed() int {
	n := 0
	for _, item := range r.Items {
		if item.Err != nil {
			n++
		}
	}
	return n
}

func secretDigest(secret string) string {
	sum := sha256.Sum256([]byte(secret))
	return hex.EncodeToString(sum[:])
}

// SellOrder lists an asset for sale or as a gift
func (e *Engine) SellOrder(ctx context.Context, seller domain.Party, in domain.SellOrderInput) (domain.OrderID, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.sellOrder(ctx, seller, in)
}

// BatchSellOrder lists every input independently. A rejected element is logged and
// reported in the result without affecting the others.
func (e *Engine) BatchSellOrder(ctx context.Context, seller domain.Party, inputs []domain.SellOrderInput) BatchResult {
	result := BatchResult{Items: make([]BatchItem, 0, len(inputs))}

	for i, in := range inputs {
		e.mu.Lock()
		id, err := e.sellOrder(ctx, seller, in)
		e.mu.Unlock()

		if err != nil {
			logger.WarnCtx(ctx, "Batch sell order element rejected",
				zap.Int("index", i),
				zap.String("nftToken", string(in.NFTToken)),
				zap.Error(err),
			)
		}
		result.Items = append(result.Items, BatchItem{Index: i, OrderID: id, Err: err})
	}

	return result
}

func (e *Engine) sellOrder(ctx context.Context, seller domain.Party, in domain.SellOrderInput) (domain.OrderID, error) {
	if seller.Empty() || in.NFTToken == "" || in.AssetID == "" {
		return 0, domain.ErrMissingField
	}
	if !in.OrderType.Valid() {
		return 0, domain.ErrInvalidOrderType
	}
	if in.Price.IsNegative() {
		return 0, domain.ErrInvalidPrice
	}
	if !domain.AmountFits(in.Price) {
		return 0, domain.ErrAmountOutOfRange
	}

	var secretHash string
	switch in.OrderType {
	case domain.SalesTypeMarketplace:
		if !in.Price.IsPositive() {
			return 0, domain.ErrInvalidPrice
		}
	case domain.SalesTypeGift:
		if in.Secret == "" {
			return 0, domain.ErrEmptySecret
		}
		secretHash = secretDigest(in.Secret)
	}

	now := e.clock.Now()
	from := in.FromDate
	if from.IsZero() {
		from = now
	}
	if in.ToDate.Before(from) {
		return 0, domain.ErrInvalidRange
	}

	if !in.Owner.Empty() && e.currentOwner(in.NFTToken, in.Owner) != seller {
		return 0, domain.ErrNotAssetOwner
	}

	if secretHash != "" {
		if _, exists := e.giftsBySecret[secretHash]; exists {
			return 0, domain.ErrDuplicateSecret
		}
	}

	changes := &store.Changeset{}
	var superseded *domain.SellOrder
	if id, ok := e.activeByToken[in.NFTToken]; ok {
		existing := e.sellOrders[id]
		if !existing.Window().Expired(now) {
			return 0, domain.ErrActiveListingExists
		}
		updated := cloneSellOrder(existing)
		updated.Status = domain.OrderStatusSuperseded
		updated.UpdatedAt = now
		superseded = &updated
		changes.SellOrders = append(changes.SellOrders, updated)
	}

	id := domain.OrderID(e.next(store.SequenceSellOrder))
	order := domain.SellOrder{
		ID:           id,
		Seller:       seller,
		AssetID:      in.AssetID,
		CollectionID: in.CollectionID,
		Creator:      in.Creator,
		NFTToken:     in.NFTToken,
		Price:        in.Price,
		OrderType:    in.OrderType,
		SecretHash:   secretHash,
		FromDate:     from.UTC(),
		ToDate:       in.ToDate.UTC(),
		Status:       domain.OrderStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	changes.SellOrders = append(changes.SellOrders, order)
	changes.Sequences = map[string]uint64{store.SequenceSellOrder: uint64(id)}

	if err := e.commit(ctx, changes); err != nil {
		return 0, err
	}

	if superseded != nil {
		e.putSellOrder(superseded)
		logger.InfoCtx(ctx, "Expired sell order superseded",
			zap.Uint64("orderID", uint64(superseded.ID)),
			zap.String("nftToken", string(superseded.NFTToken)),
		)
	}
	e.putSellOrder(&order)

	logger.InfoCtx(ctx, "Sell order listed",
		zap.Uint64("orderID", uint64(id)),
		zap.String("assetID", string(order.AssetID)),
		zap.String("orderType", string(order.OrderType)),
	)
	return id, nil
}

// currentOwner returns the buyer of the token's latest approved contract, or registered
// when the token has not changed hands through the engine
func (e *Engine) currentOwner(token domain.NFTToken, registered domain.Party) domain.Party {
	var latest *domain.SalesContract
	for _, id := range e.contractsByToken[token] {
		c := e.contracts[id]
		if c.Status != domain.ContractStatusApproved || c.ExecutionDate == nil {
			continue
		}
		if latest == nil || c.ExecutionDate.After(*latest.ExecutionDate) ||
			(c.ExecutionDate.Equal(*latest.ExecutionDate) && c.ID > latest.ID) {
			latest = c
		}
	}
	if latest == nil {
		return registered
	}
	return latest.Buyer
}

// CancelSellOrder withdraws an active sell order. Only its seller may cancel it.
func (e *Engine) CancelSellOrder(ctx context.Context, caller domain.Party, id domain.OrderID) (domain.SellOrder, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	existing, ok := e.sellOrders[id]
	if !ok {
		return domain.SellOrder{}, domain.ErrOrderNotFound
	}
	if existing.Seller != caller {
		return domain.SellOrder{}, domain.ErrNotOrderOwner
	}
	if !existing.Active() {
		return domain.SellOrder{}, domain.ErrOrderConsumed
	}

	updated := cloneSellOrder(existing)
	updated.Status = domain.OrderStatusCancelled
	updated.UpdatedAt = e.clock.Now()

	if err := e.commit(ctx, &store.Changeset{SellOrders: []domain.SellOrder{updated}}); err != nil {
		return domain.SellOrder{}, err
	}
	e.putSellOrder(&updated)

	logger.InfoCtx(ctx, "Sell order cancelled", zap.Uint64("orderID", uint64(id)))
	return cloneSellOrder(&updated), nil
}

// BuyOrder records or replaces the buyer's offer for an asset. Offers are keyed by the
// caller supplied offer id, or by a generated one.
func (e *Engine) BuyOrder(ctx context.Context, assetID domain.AssetID, buyer domain.Party, in domain.BuyOrderInput) (domain.ConfirmationID, error) {
	if assetID == "" || buyer.Empty() {
		return "", domain.ErrMissingField
	}
	if !in.PurchasePrice.IsPositive() {
		return "", domain.ErrInvalidPrice
	}
	if !domain.AmountFits(in.PurchasePrice) {
		return "", domain.ErrAmountOutOfRange
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.clock.Now()
	key := buyKey{buyer: buyer, asset: assetID}
	prevID, hasPrev := e.buyOrdersByKey[key]

	var id domain.ConfirmationID
	switch {
	case in.OfferID != "":
		id = domain.ConfirmationID(in.OfferID)
		if other, ok := e.buyOrders[id]; ok && (other.Buyer != buyer || other.AssetID != assetID) {
			return "", domain.ErrDuplicateOffer
		}
	case hasPrev:
		id = prevID
	default:
		id = domain.ConfirmationID(ulid.MustNewDefault(now).String())
	}

	order := domain.BuyOrder{
		ConfirmationID: id,
		AssetID:        assetID,
		Buyer:          buyer,
		PurchasePrice:  in.PurchasePrice,
		UpdatedAt:      now,
	}

	changes := &store.Changeset{}
	if hasPrev {
		prev := e.buyOrders[prevID]
		order.Seq = prev.Seq
		order.CreatedAt = prev.CreatedAt
		if prevID != id {
			changes.DeletedBuyOrders = []domain.ConfirmationID{prevID}
		}
	} else {
		order.Seq = e.next(store.SequenceBuyOrder)
		order.CreatedAt = now
		changes.Sequences = map[string]uint64{store.SequenceBuyOrder: order.Seq}
	}
	changes.BuyOrders = []domain.BuyOrder{order}

	if err := e.commit(ctx, changes); err != nil {
		return "", err
	}

	if hasPrev {
		e.removeBuyOrder(prevID)
	}
	e.putBuyOrder(&order)

	logger.InfoCtx(ctx, "Buy order recorded",
		zap.String("confirmationID", string(id)),
		zap.String("assetID", string(assetID)),
		zap.Bool("replaced", hasPrev),
	)
	return id, nil
}

// CancelBuyOrder removes the buyer's outstanding offer for an asset
func (e *Engine) CancelBuyOrder(ctx context.Context, buyer domain.Party, assetID domain.AssetID) (domain.BuyOrder, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	id, ok := e.buyOrdersByKey[buyKey{buyer: buyer, asset: assetID}]
	if !ok {
		return domain.BuyOrder{}, domain.ErrBuyOrderNotFound
	}

	if err := e.commit(ctx, &store.Changeset{DeletedBuyOrders: []domain.ConfirmationID{id}}); err != nil {
		return domain.BuyOrder{}, err
	}

	removed := *e.buyOrders[id]
	e.removeBuyOrder(id)

	logger.InfoCtx(ctx, "Buy order cancelled", zap.String("confirmationID", string(id)))
	return removed, nil
}

// SellOrders returns every sell order, oldest first
func (e *Engine) SellOrders() []domain.SellOrder {
	e.mu.RLock()
	defer e.mu.RUnlock()

	ids := make([]domain.OrderID, 0, len(e.sellOrders))
	for id := range e.sellOrders {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return e.sellOrderSnapshot(ids)
}

// GetSellOrder returns one sell order
func (e *Engine) GetSellOrder(id domain.OrderID) (domain.SellOrder, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	o, ok := e.sellOrders[id]
	if !ok {
		return domain.SellOrder{}, domain.ErrOrderNotFound
	}
	return cloneSellOrder(o), nil
}

// SellOrdersByAsset returns the sell orders listed for an asset
func (e *Engine) SellOrdersByAsset(assetID domain.AssetID) []domain.SellOrder {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.sellOrderSnapshot(e.ordersByAsset[assetID])
}

// SellOrdersByCollection returns the sell orders listed for a collection
func (e *Engine) SellOrdersByCollection(collectionID domain.CollectionID) []domain.SellOrder {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.sellOrderSnapshot(e.ordersByCollection[collectionID])
}

// SellOrdersBySeller returns the sell orders listed by a party
func (e *Engine) SellOrdersBySeller(seller domain.Party) []domain.SellOrder {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.sellOrderSnapshot(e.ordersBySeller[seller])
}

func (e *Engine) sellOrderSnapshot(ids []domain.OrderID) []domain.SellOrder {
	out := make([]domain.SellOrder, 0, len(ids))
	for _, id := range ids {
		out = append(out, cloneSellOrder(e.sellOrders[id]))
	}
	return out
}

// BuyOrders returns the outstanding buy orders in matching order
func (e *Engine) BuyOrders() []domain.BuyOrder {
	e.mu.RLock()
	defer e.mu.RUnlock()

	out := make([]domain.BuyOrder, 0, len(e.buyOrders))
	for _, o := range e.buyOrders {
		out = append(out, *o)
	}
	sortBuyOrders(out)
	return out
}

// BuyOrdersByAsset returns the outstanding buy orders for an asset in matching order
func (e *Engine) BuyOrdersByAsset(assetID domain.AssetID) []domain.BuyOrder {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.buyOrdersFor(assetID)
}

func (e *Engine) buyOrdersFor(assetID domain.AssetID) []domain.BuyOrder {
	var out []domain.BuyOrder
	for _, o := range e.buyOrders {
		if o.AssetID == assetID {
			out = append(out, *o)
		}
	}
	sortBuyOrders(out)
	return out
}

// sortBuyOrders orders by creation time, then by insertion sequence
func sortBuyOrders(orders []domain.BuyOrder) {
	sort.Slice(orders, func(i, j int) bool {
		if !orders[i].CreatedAt.Equal(orders[j].CreatedAt) {
			return orders[i].CreatedAt.Before(orders[j].CreatedAt)
		}
		return orders[i].Seq < orders[j].Seq
	})
}
