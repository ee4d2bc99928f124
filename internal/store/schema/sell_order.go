package schema

import (
	"time"

	"github.com/shopspring/decimal"
)

// SellOrder represents the sell_orders table - a seller's listing
type SellOrder struct {
	// ID is the order book arena id, allocated by the engine
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement:false"`
	// Seller is the party that listed the token
	Seller string `gorm:"column:seller;not null;type:text;index:idx_sell_orders_seller"`
	// AssetID is the registry asset id of the token
	AssetID string `gorm:"column:asset_id;not null;type:text;index:idx_sell_orders_asset_id"`
	// CollectionID is the registry collection id of the token
	CollectionID string `gorm:"column:collection_id;not null;type:text;index:idx_sell_orders_collection_id"`
	// Creator is the asset creator as resolved by the registry
	Creator string `gorm:"column:creator;type:text"`
	// NFTToken is the on-chain token identifier
	NFTToken string `gorm:"column:nft_token;not null;type:text;index:idx_sell_orders_nft_token"`
	// Price is the asking price
	Price decimal.Decimal `gorm:"column:price;not null;type:numeric(38,18)"`
	// OrderType is marketplace or gift
	OrderType string `gorm:"column:order_type;not null;type:text"`
	// SecretHash is the hex SHA-256 digest of the gift secret
	SecretHash *string `gorm:"column:secret_hash;type:text;uniqueIndex:idx_sell_orders_secret_hash"`
	FromDate   time.Time `gorm:"column:from_date;not null;type:timestamptz"`
	ToDate     time.Time `gorm:"column:to_date;not null;type:timestamptz"`
	// Status tracks whether the order is still matchable
	Status string `gorm:"column:status;not null;type:text;index:idx_sell_orders_status"`
	// ContractID references the contract that consumed the order
	ContractID *uint64   `gorm:"column:contract_id"`
	CreatedAt  time.Time `gorm:"column:created_at;not null;type:timestamptz"`
	UpdatedAt  time.Time `gorm:"column:updated_at;not null;type:timestamptz"`
}

// TableName specifies the table name for the SellOrder model
func (SellOrder) TableName() string {
	return "sell_orders"
}
