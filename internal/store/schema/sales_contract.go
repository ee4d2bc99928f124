package schema

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// SalesContract represents the sales_contracts table
type SalesContract struct {
	ID     uint64 `gorm:"column:id;primaryKey;autoIncrement:false"`
	Status string `gorm:"column:status;not null;type:text"`
	// SellOrderID references the consumed sell order
	SellOrderID uint64 `gorm:"column:sell_order_id;not null;index:idx_sales_contracts_sell_order_id"`
	// SellOrder is a snapshot of the consumed sell order at contract creation
	SellOrder datatypes.JSON `gorm:"column:sell_order;not null;type:jsonb"`
	// BuyOrder is a snapshot of the matched buy order, null for gifts
	BuyOrder          datatypes.JSON      `gorm:"column:buy_order;type:jsonb"`
	Seller            string              `gorm:"column:seller;not null;type:text;index:idx_sales_contracts_seller"`
	Buyer             string              `gorm:"column:buyer;not null;type:text;index:idx_sales_contracts_buyer"`
	AssetID           string              `gorm:"column:asset_id;not null;type:text;index:idx_sales_contracts_asset_id"`
	CollectionID      string              `gorm:"column:collection_id;not null;type:text"`
	Creator           string              `gorm:"column:creator;type:text"`
	NFTID             string              `gorm:"column:nft_id;not null;type:text;index:idx_sales_contracts_nft_id"`
	PurchasePrice     decimal.Decimal     `gorm:"column:purchase_price;not null;type:numeric(38,18)"`
	CommissionPercent decimal.NullDecimal `gorm:"column:commission_percent;type:numeric(9,6)"`
	ExecutionType     string              `gorm:"column:execution_type;not null;type:text"`
	ExecutionDate     *time.Time          `gorm:"column:execution_date;type:timestamptz"`
	CreatedAt         time.Time           `gorm:"column:created_at;not null;type:timestamptz"`
	UpdatedAt         time.Time           `gorm:"column:updated_at;not null;type:timestamptz"`
}

// TableName specifies the table name for the SalesContract model
func (SalesContract) TableName() string {
	return "sales_contracts"
}
