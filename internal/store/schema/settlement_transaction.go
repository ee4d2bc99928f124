package schema

import (
	"time"

	"github.com/shopspring/decimal"
)

// SettlementTransaction represents the settlement_transactions table.
// Rows are append-only; (contract_id, seq) identifies the position in the contract ledger.
type SettlementTransaction struct {
	ID            uint64          `gorm:"column:id;primaryKey;autoIncrement"`
	ContractID    uint64          `gorm:"column:contract_id;not null;uniqueIndex:idx_settlement_transactions_contract_seq"`
	Seq           int             `gorm:"column:seq;not null;uniqueIndex:idx_settlement_transactions_contract_seq"`
	FromParty     string          `gorm:"column:from_party;not null;type:text"`
	ToParty       string          `gorm:"column:to_party;not null;type:text"`
	Value         decimal.Decimal `gorm:"column:value;not null;type:numeric(38,18)"`
	Type          string          `gorm:"column:transaction_type;not null;type:text"`
	ExecutionDate time.Time       `gorm:"column:execution_date;not null;type:timestamptz"`
	CreatedAt     time.Time       `gorm:"column:created_at;autoCreateTime"`
}

// TableName specifies the table name for the SettlementTransaction model
func (SettlementTransaction) TableName() string {
	return "settlement_transactions"
}
