package store

import (
	"context"

	"github.com/feral-file/ff-sales-engine/internal/domain"
)

// Sequence keys persisted alongside engine state
const (
	SequenceSellOrder = "seq:sell_order"
	SequenceContract  = "seq:contract"
	SequenceBuyOrder  = "seq:buy_order"
)

// State is everything the engine needs to rebuild its order book and contracts
type State struct {
	SellOrders []domain.SellOrder
	BuyOrders  []domain.BuyOrder
	Contracts  []domain.SalesContract
	Sequences  map[string]uint64
}

// Changeset is the durable effect of one engine mutation. It is applied atomically.
type Changeset struct {
	// SellOrders are inserted or replaced by id
	SellOrders []domain.SellOrder
	// DeletedBuyOrders are removed before BuyOrders are written
	DeletedBuyOrders []domain.ConfirmationID
	// BuyOrders are inserted or replaced by confirmation id
	BuyOrders []domain.BuyOrder
	// Contracts are inserted or replaced by id; their transactions are only ever appended
	Contracts []domain.SalesContract
	// Sequences records the last allocated value of each id sequence
	Sequences map[string]uint64
}

// Empty reports whether the changeset carries no change
func (c *Changeset) Empty() bool {
	return c == nil || (len(c.SellOrders) == 0 &&
		len(c.DeletedBuyOrders) == 0 &&
		len(c.BuyOrders) == 0 &&
		len(c.Contracts) == 0 &&
		len(c.Sequences) == 0)
}

// Store defines the durable substrate of the sales engine
//
//go:generate mockgen -source=store.go -destination=../mocks/store.go -package=mocks -mock_names=Store=MockStore
type Store interface {
	// LoadState reads the full engine state
	LoadState(ctx context.Context) (*State, error)
	// Commit applies a changeset in a single database transaction
	Commit(ctx context.Context, changes *Changeset) error
	// Reset deletes all orders, contracts, transactions and sequences
	Reset(ctx context.Context) error
}
