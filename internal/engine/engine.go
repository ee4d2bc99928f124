package engine

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/feral-file/ff-sales-engine/internal/adapter"
	"github.com/feral-file/ff-sales-engine/internal/domain"
	"github.com/feral-file/ff-sales-engine/internal/logger"
	"github.com/feral-file/ff-sales-engine/internal/stats"
	"github.com/feral-file/ff-sales-engine/internal/store"
)

const defaultStatsCacheSize = 1024

// Policy is the commission policy applied on contract approval
type Policy struct {
	// CommissionPercent is in [0, 100]
	CommissionPercent domain.Amount
	// Platform receives the commission transaction
	Platform domain.Party
	// Scale is the number of decimal places commissions are rounded to
	Scale int32
}

// Validate checks the policy
func (p Policy) Validate() error {
	if !domain.PercentFits(p.CommissionPercent) {
		return fmt.Errorf("commission percent must have at most 3 integer digits and %d decimal places", domain.PercentMaxScale)
	}
	if p.CommissionPercent.IsNegative() || p.CommissionPercent.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("commission percent must be between 0 and 100, got %s", p.CommissionPercent.String())
	}
	if p.Platform.Empty() {
		return errors.New("platform party is required")
	}
	if p.Scale < 0 || p.Scale > domain.AmountMaxScale {
		return fmt.Errorf("scale must be between 0 and %d, got %d", domain.AmountMaxScale, p.Scale)
	}
	return nil
}

// Config holds the engine configuration
type Config struct {
	Policy         Policy
	StatsCacheSize int
	AllowReset     bool
}

type buyKey struct {
	buyer domain.Party
	asset domain.AssetID
}

// Engine owns the order book, the sales contracts and their ledgers.
// Every mutation is validated, committed to the store and only then applied in memory,
// all under the write lock.
type Engine struct {
	cfg   Config
	store store.Store
	clock adapter.Clock

	mu sync.RWMutex

	sellOrders map[domain.OrderID]*domain.SellOrder
	buyOrders  map[domain.ConfirmationID]*domain.BuyOrder
	contracts  map[domain.ContractID]*domain.SalesContract
	sequences  map[string]uint64

	// indices hold ids only, in insertion order
	ordersByAsset      map[domain.AssetID][]domain.OrderID
	ordersByCollection map[domain.CollectionID][]domain.OrderID
	ordersBySeller     map[domain.Party][]domain.OrderID
	activeByToken      map[domain.NFTToken]domain.OrderID
	giftsBySecret      map[string]domain.OrderID
	buyOrdersByKey     map[buyKey]domain.ConfirmationID
	contractIDs        []domain.ContractID
	contractsByAsset   map[domain.AssetID][]domain.ContractID
	contractsByToken   map[domain.NFTToken][]domain.ContractID
	contractsByParty   map[domain.Party][]domain.ContractID

	statsCache *lru.Cache[domain.AssetID, stats.SalesStats]
}

// New creates an empty engine. Call Load to restore persisted state.
func New(cfg Config, st store.Store, clock adapter.Clock) (*Engine, error) {
	if err := cfg.Policy.Validate(); err != nil {
		return nil, fmt.Errorf("invalid commission policy: %w", err)
	}
	if cfg.StatsCacheSize <= 0 {
		cfg.StatsCacheSize = defaultStatsCacheSize
	}

	cache, err := lru.New[domain.AssetID, stats.SalesStats](cfg.StatsCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create stats cache: %w", err)
	}

	e := &Engine{
		cfg:        cfg,
		store:      st,
		clock:      clock,
		statsCache: cache,
	}
	e.clear()
	return e, nil
}

func (e *Engine) clear() {
	e.sellOrders = make(map[domain.OrderID]*domain.SellOrder)
	e.buyOrders = make(map[domain.ConfirmationID]*domain.BuyOrder)
	e.contracts = make(map[domain.ContractID]*domain.SalesContract)
	e.sequences = make(map[string]uint64)
	e.ordersByAsset = make(map[domain.AssetID][]domain.OrderID)
	e.ordersByCollection = make(map[domain.CollectionID][]domain.OrderID)
	e.ordersBySeller = make(map[domain.Party][]domain.OrderID)
	e.activeByToken = make(map[domain.NFTToken]domain.OrderID)
	e.giftsBySecret = make(map[string]domain.OrderID)
	e.buyOrdersByKey = make(map[buyKey]domain.ConfirmationID)
	e.contractIDs = nil
	e.contractsByAsset = make(map[domain.AssetID][]domain.ContractID)
	e.contractsByToken = make(map[domain.NFTToken][]domain.ContractID)
	e.contractsByParty = make(map[domain.Party][]domain.ContractID)
	e.statsCache.Purge()
}

// Load replaces the in-memory state with the persisted one
func (e *Engine) Load(ctx context.Context) error {
	start := time.Now()

	state, err := e.store.LoadState(ctx)
	if err != nil {
		return fmt.Errorf("failed to load sales state: %w", err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	e.clear()

	sort.Slice(state.SellOrders, func(i, j int) bool { return state.SellOrders[i].ID < state.SellOrders[j].ID })
	for i := range state.SellOrders {
		order := state.SellOrders[i]
		e.putSellOrder(&order)
	}

	sort.SliceStable(state.BuyOrders, func(i, j int) bool { return state.BuyOrders[i].Seq < state.BuyOrders[j].Seq })
	for i := range state.BuyOrders {
		order := state.BuyOrders[i]
		e.putBuyOrder(&order)
	}

	sort.Slice(state.Contracts, func(i, j int) bool { return state.Contracts[i].ID < state.Contracts[j].ID })
	for i := range state.Contracts {
		contract := state.Contracts[i]
		if err := Verify(&contract); err != nil {
			logger.WarnCtx(ctx, "Loaded sales contract with inconsistent ledger",
				zap.Uint64("contractID", uint64(contract.ID)),
				zap.Error(err),
			)
		}
		e.putContract(&contract)
	}

	for key, value := range state.Sequences {
		e.sequences[key] = value
	}

	logger.InfoCtx(ctx, "Sales engine state loaded",
		zap.Int("sellOrders", len(e.sellOrders)),
		zap.Int("buyOrders", len(e.buyOrders)),
		zap.Int("contracts", len(e.contracts)),
		zap.Duration("duration", time.Since(start)),
	)
	return nil
}

// ResetDatastore deletes every order, contract and transaction
func (e *Engine) ResetDatastore(ctx context.Context) error {
	if !e.cfg.AllowReset {
		return domain.ErrResetDisabled
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.store.Reset(ctx); err != nil {
		return fmt.Errorf("failed to reset datastore: %w", err)
	}
	e.clear()

	logger.WarnCtx(ctx, "Sales engine state cleared")
	return nil
}

// Policy returns the commission policy of the engine
func (e *Engine) Policy() Policy {
	return e.cfg.Policy
}

// commit persists a changeset; callers hold the write lock and apply the change in memory only on success
func (e *Engine) commit(ctx context.Context, changes *store.Changeset) error {
	if err := e.store.Commit(ctx, changes); err != nil {
		return fmt.Errorf("failed to commit changes: %w", err)
	}
	for key, value := range changes.Sequences {
		e.sequences[key] = value
	}
	return nil
}

// next returns the value following the last allocated one of a sequence, without consuming it
func (e *Engine) next(key string) uint64 {
	return e.sequences[key] + 1
}

func (e *Engine) putSellOrder(o *domain.SellOrder) {
	if _, exists := e.sellOrders[o.ID]; !exists {
		e.ordersByAsset[o.AssetID] = append(e.ordersByAsset[o.AssetID], o.ID)
		e.ordersByCollection[o.CollectionID] = append(e.ordersByCollection[o.CollectionID], o.ID)
		e.ordersBySeller[o.Seller] = append(e.ordersBySeller[o.Seller], o.ID)
		if o.SecretHash != "" {
			e.giftsBySecret[o.SecretHash] = o.ID
		}
	}
	e.sellOrders[o.ID] = o

	if o.Active() {
		e.activeByToken[o.NFTToken] = o.ID
	} else if id, ok := e.activeByToken[o.NFTToken]; ok && id == o.ID {
		delete(e.activeByToken, o.NFTToken)
	}
}

func (e *Engine) putBuyOrder(o *domain.BuyOrder) {
	e.buyOrders[o.ConfirmationID] = o
	e.buyOrdersByKey[buyKey{buyer: o.Buyer, asset: o.AssetID}] = o.ConfirmationID
}

func (e *Engine) removeBuyOrder(id domain.ConfirmationID) {
	o, ok := e.buyOrders[id]
	if !ok {
		return
	}
	delete(e.buyOrders, id)
	key := buyKey{buyer: o.Buyer, asset: o.AssetID}
	if e.buyOrdersByKey[key] == id {
		delete(e.buyOrdersByKey, key)
	}
}

func (e *Engine) putContract(c *domain.SalesContract) {
	if _, exists := e.contracts[c.ID]; !exists {
		e.contractIDs = append(e.contractIDs, c.ID)
		e.contractsByAsset[c.AssetID] = append(e.contractsByAsset[c.AssetID], c.ID)
		e.contractsByToken[c.NFTID] = append(e.contractsByToken[c.NFTID], c.ID)
		e.contractsByParty[c.Seller] = append(e.contractsByParty[c.Seller], c.ID)
		if c.Buyer != c.Seller {
			e.contractsByParty[c.Buyer] = append(e.contractsByParty[c.Buyer], c.ID)
		}
	}
	e.contracts[c.ID] = c
}

func cloneSellOrder(o *domain.SellOrder) domain.SellOrder {
	out := *o
	if o.ContractID != nil {
		id := *o.ContractID
		out.ContractID = &id
	}
	return out
}
