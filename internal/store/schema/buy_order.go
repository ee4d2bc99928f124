package schema

import (
	"time"

	"github.com/shopspring/decimal"
)

// BuyOrder represents the buy_orders table - outstanding offers only
type BuyOrder struct {
	ConfirmationID string          `gorm:"column:confirmation_id;primaryKey;type:text"`
	AssetID        string          `gorm:"column:asset_id;not null;type:text;uniqueIndex:idx_buy_orders_asset_buyer"`
	Buyer          string          `gorm:"column:buyer;not null;type:text;uniqueIndex:idx_buy_orders_asset_buyer"`
	PurchasePrice  decimal.Decimal `gorm:"column:purchase_price;not null;type:numeric(38,18)"`
	// Seq breaks ties between offers created at the same instant
	Seq       uint64    `gorm:"column:seq;not null"`
	CreatedAt time.Time `gorm:"column:created_at;not null;type:timestamptz"`
	UpdatedAt time.Time `gorm:"column:updated_at;not null;type:timestamptz"`
}

// TableName specifies the table name for the BuyOrder model
func (BuyOrder) TableName() string {
	return "buy_orders"
}
