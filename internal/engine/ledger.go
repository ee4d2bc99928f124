package engine

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/feral-file/ff-sales-engine/internal/domain"
)

// ErrUnbalancedLedger is returned when a contract's transactions do not add up
var ErrUnbalancedLedger = errors.New("unbalanced ledger")

// LedgerEntry is one transaction together with its contract
type LedgerEntry struct {
	ContractID  domain.ContractID
	Transaction domain.Transaction
}

// Settled sums the base and commission transactions of a contract
func Settled(c *domain.SalesContract) domain.Amount {
	total := decimal.Zero
	for _, tx := range c.Transactions {
		switch tx.Type {
		case domain.TransactionTypeBase, domain.TransactionTypeCommission:
			total = total.Add(tx.Value)
		case domain.TransactionTypeMint:
		}
	}
	return total
}

// Verify checks that a contract's ledger is consistent with its status
func Verify(c *domain.SalesContract) error {
	for i, tx := range c.Transactions {
		if tx.Value.IsNegative() {
			return fmt.Errorf("%w: transaction %d of contract %d has negative value", ErrUnbalancedLedger, i, c.ID)
		}
	}

	switch c.Status {
	case domain.ContractStatusPending, domain.ContractStatusRejected, domain.ContractStatusBlocked:
		if len(c.Transactions) > 0 {
			return fmt.Errorf("%w: %s contract %d has transactions", ErrUnbalancedLedger, c.Status, c.ID)
		}
		return nil
	case domain.ContractStatusApproved:
	}

	switch c.ExecutionType {
	case domain.SalesTypeMarketplace:
		if settled := Settled(c); !settled.Equal(c.PurchasePrice) {
			return fmt.Errorf("%w: contract %d settled %s of %s", ErrUnbalancedLedger, c.ID, settled, c.PurchasePrice)
		}
	case domain.SalesTypeGift:
		if len(c.Transactions) != 1 || c.Transactions[0].Type != domain.TransactionTypeMint || !c.Transactions[0].Value.IsZero() {
			return fmt.Errorf("%w: gift contract %d must carry one zero value mint", ErrUnbalancedLedger, c.ID)
		}
	}
	return nil
}

// Transactions returns the full ledger ordered by contract
func (e *Engine) Transactions() []LedgerEntry {
	e.mu.RLock()
	defer e.mu.RUnlock()

	var out []LedgerEntry
	for _, id := range e.contractIDs {
		for _, tx := range e.contracts[id].Transactions {
			out = append(out, LedgerEntry{ContractID: id, Transaction: tx})
		}
	}
	return out
}

// ContractTransactions returns the ledger of one contract
func (e *Engine) ContractTransactions(id domain.ContractID) ([]domain.Transaction, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()

	c, ok := e.contracts[id]
	if !ok {
		return nil, domain.ErrContractNotFound
	}
	return append([]domain.Transaction{}, c.Transactions...), nil
}
