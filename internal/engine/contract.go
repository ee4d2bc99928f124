package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/feral-file/ff-sales-engine/internal/domain"
	"github.com/feral-file/ff-sales-engine/internal/logger"
	"github.com/feral-file/ff-sales-engine/internal/store"
)

var hundred = decimal.NewFromInt(100)

// ApproveContract settles a pending contract. Only the seller may approve.
func (e *Engine) ApproveContract(ctx context.Context, caller domain.Party, id domain.ContractID) (domain.SalesContract, error) {
	return e.transition(ctx, id, domain.ContractStatusApproved, sellerOnly(caller))
}

// RejectContract declines a pending contract. Only the seller may reject.
func (e *Engine) RejectContract(ctx context.Context, caller domain.Party, id domain.ContractID) (domain.SalesContract, error) {
	return e.transition(ctx, id, domain.ContractStatusRejected, sellerOnly(caller))
}

// BlockContract stops a pending contract on administrative grounds
func (e *Engine) BlockContract(ctx context.Context, id domain.ContractID) (domain.SalesContract, error) {
	return e.transition(ctx, id, domain.ContractStatusBlocked, nil)
}

func sellerOnly(caller domain.Party) func(*domain.SalesContract) error {
	return func(c *domain.SalesContract) error {
		if c.Seller != caller {
			return domain.ErrNotContractSeller
		}
		return nil
	}
}

func (e *Engine) transition(ctx context.Context, id domain.ContractID, target domain.ContractStatus, authorize func(*domain.SalesContract) error) (domain.SalesContract, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	current, ok := e.contracts[id]
	if !ok {
		return domain.SalesContract{}, domain.ErrContractNotFound
	}
	if authorize != nil {
		if err := authorize(current); err != nil {
			return domain.SalesContract{}, err
		}
	}
	if current.Status.Final() {
		return domain.SalesContract{}, domain.ErrAlreadyFinalized
	}

	now := e.clock.Now()
	updated := current.Clone()
	updated.Status = target
	updated.ExecutionDate = &now
	updated.UpdatedAt = now

	switch target {
	case domain.ContractStatusApproved:
		e.settle(&updated, now)
		if err := Verify(&updated); err != nil {
			return domain.SalesContract{}, err
		}
	case domain.ContractStatusRejected, domain.ContractStatusBlocked:
	case domain.ContractStatusPending:
		return domain.SalesContract{}, fmt.Errorf("cannot transition contract %d back to pending", id)
	}

	if err := e.commit(ctx, &store.Changeset{Contracts: []domain.SalesContract{updated}}); err != nil {
		return domain.SalesContract{}, err
	}
	e.putContract(&updated)
	if target == domain.ContractStatusApproved {
		e.statsCache.Remove(updated.AssetID)
	}

	logger.InfoCtx(ctx, "Sales contract finalized",
		zap.Uint64("contractID", uint64(id)),
		zap.String("status", string(target)),
	)
	return updated.Clone(), nil
}

// settle appends the commission and base transactions of an approved sale
func (e *Engine) settle(c *domain.SalesContract, now time.Time) {
	policy := e.cfg.Policy
	commission, base := Split(c.PurchasePrice, policy.CommissionPercent, policy.Scale)

	pct := policy.CommissionPercent
	c.CommissionPercent = &pct
	c.Transactions = append(c.Transactions,
		domain.Transaction{
			From:          c.Buyer,
			To:            policy.Platform,
			Value:         commission,
			Type:          domain.TransactionTypeCommission,
			ExecutionDate: now,
		},
		domain.Transaction{
			From:          c.Buyer,
			To:            c.Seller,
			Value:         base,
			Type:          domain.TransactionTypeBase,
			ExecutionDate: now,
		},
	)
}

// Split divides a price into the platform commission and the seller's base amount.
// The commission is rounded half to even at scale; base + commission always equals price.
func Split(price, percent domain.Amount, scale int32) (commission, base domain.Amount) {
	commission = price.Mul(percent).Div(hundred).RoundBank(scale)
	return commission, price.Sub(commission)
}

// Contracts returns every sales contract, oldest first
func (e *Engine) Contracts() []domain.SalesContract {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.contractSnapshot(e.contractIDs)
}

// GetContract returns one sales contract
func (e *Engine) GetContract(id domain.ContractID) (domain.SalesContract, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	c, ok := e.contracts[id]
	if !ok {
		return domain.SalesContract{}, domain.ErrContractNotFound
	}
	return c.Clone(), nil
}

// ContractsByAsset returns the contracts of an asset
func (e *Engine) ContractsByAsset(assetID domain.AssetID) []domain.SalesContract {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.contractSnapshot(e.contractsByAsset[assetID])
}

// ContractsByNFT returns the contracts of a token
func (e *Engine) ContractsByNFT(token domain.NFTToken) []domain.SalesContract {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.contractSnapshot(e.contractsByToken[token])
}

// ContractsByParty returns the contracts a party is seller or buyer of
func (e *Engine) ContractsByParty(party domain.Party) []domain.SalesContract {
	e.mu.RLock()
	defer e.mu.RUnlock()

	return e.contractSnapshot(e.contractsByParty[party])
}

func (e *Engine) contractSnapshot(ids []domain.ContractID) []domain.SalesContract {
	out := make([]domain.SalesContract, 0, len(ids))
	for _, id := range ids {
		out = append(out, e.contracts[id].Clone())
	}
	return out
}
