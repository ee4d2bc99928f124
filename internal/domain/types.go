package domain

import (
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
)

// Party is an opaque, comparable identifier of a buyer, seller or caller.
// It is only ever compared or used as a map key.
type Party string

// NewParty normalizes a raw principal. Ethereum hex addresses are converted to
// their checksum form so one principal always maps to one key.
func NewParty(raw string) Party {
	raw = strings.TrimSpace(raw)
	if common.IsHexAddress(raw) {
		return Party(common.HexToAddress(raw).Hex())
	}
	return Party(raw)
}

// Empty reports whether the party is unset
func (p Party) Empty() bool {
	return p == ""
}

func (p Party) String() string {
	return string(p)
}

// Amount is a monetary value
type Amount = decimal.Decimal

// Stored amounts are numeric(38,18); percentages are numeric(9,6)
const (
	AmountMaxScale         = 18
	AmountMaxIntegerDigits = 20
	PercentMaxScale        = 6
)

// AmountFits reports whether a can be stored without rounding
func AmountFits(a Amount) bool {
	return fits(a, AmountMaxScale, AmountMaxIntegerDigits)
}

// PercentFits reports whether a percentage in [0, 100] can be stored without rounding
func PercentFits(p Amount) bool {
	return fits(p, PercentMaxScale, 3)
}

// fits only inspects the exponent and coefficient, so huge exponents are rejected
// without expanding the value
func fits(a Amount, maxScale, maxIntegerDigits int) bool {
	exp := int(a.Exponent())
	if exp < -maxScale || exp > maxIntegerDigits {
		return false
	}
	return a.IsZero() || a.NumDigits()+exp <= maxIntegerDigits
}

// OrderID identifies a sell order in the order book arena
type OrderID uint64

// ContractID identifies a sales contract
type ContractID uint64

// ConfirmationID is the opaque key of an outstanding buy order
type ConfirmationID string

// AssetID identifies an asset as known by the asset registry
type AssetID string

// CollectionID identifies a collection as known by the asset registry
type CollectionID string

// NFTToken identifies a token on chain
type NFTToken string

// SalesType is the kind of listing or contract execution
type SalesType string

const (
	SalesTypeMarketplace SalesType = "marketplace"
	SalesTypeGift        SalesType = "gift"
)

// Valid checks if the sales type is known
func (t SalesType) Valid() bool {
	switch t {
	case SalesTypeMarketplace, SalesTypeGift:
		return true
	}
	return false
}

// ContractStatus is the state of a sales contract
type ContractStatus string

const (
	ContractStatusPending  ContractStatus = "pending"
	ContractStatusApproved ContractStatus = "approved"
	ContractStatusRejected ContractStatus = "rejected"
	ContractStatusBlocked  ContractStatus = "blocked"
)

// Final reports whether the contract has left pending
func (s ContractStatus) Final() bool {
	switch s {
	case ContractStatusPending:
		return false
	case ContractStatusApproved, ContractStatusRejected, ContractStatusBlocked:
		return true
	}
	return false
}

// TransactionType is the type of a settlement transaction
type TransactionType string

const (
	TransactionTypeBase       TransactionType = "base"
	TransactionTypeMint       TransactionType = "mint"
	TransactionTypeCommission TransactionType = "commission"
)

// OrderStatus tracks whether a sell order can still be matched
type OrderStatus string

const (
	OrderStatusActive     OrderStatus = "active"
	OrderStatusSold       OrderStatus = "sold"
	OrderStatusRedeemed   OrderStatus = "redeemed"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusSuperseded OrderStatus = "superseded"
)

// Window is an inclusive validity interval
type Window struct {
	From time.Time
	To   time.Time
}

// Contains reports whether t lies inside the window
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.From) && !t.After(w.To)
}

// Expired reports whether the window closed before t
func (w Window) Expired(t time.Time) bool {
	return t.After(w.To)
}

// SellOrderInput is a seller's listing request
type SellOrderInput struct {
	NFTToken     NFTToken
	AssetID      AssetID
	CollectionID CollectionID
	Creator      Party
	Price        Amount
	OrderType    SalesType
	Secret       string
	FromDate     time.Time
	ToDate       time.Time
	// Owner is the registered holder of the token; empty when ownership is not tracked
	Owner Party
}

// SellOrder is a standing offer to transfer an asset
type SellOrder struct {
	ID           OrderID
	Seller       Party
	AssetID      AssetID
	CollectionID CollectionID
	Creator      Party
	NFTToken     NFTToken
	Price        Amount
	OrderType    SalesType
	// SecretHash is the hex SHA-256 digest of a gift secret; the secret itself is never kept
	SecretHash string
	FromDate   time.Time
	ToDate     time.Time
	Status     OrderStatus
	ContractID *ContractID
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Active reports whether the order has not been consumed
func (o *SellOrder) Active() bool {
	return o.Status == OrderStatusActive
}

// Window returns the validity window of the order
func (o *SellOrder) Window() Window {
	return Window{From: o.FromDate, To: o.ToDate}
}

// BuyOrderInput is a buyer's offer for an asset
type BuyOrderInput struct {
	PurchasePrice Amount
	// OfferID is an optional caller-supplied key for the offer
	OfferID string
}

// BuyOrder is a buyer's outstanding intent to acquire an asset
type BuyOrder struct {
	ConfirmationID ConfirmationID
	AssetID        AssetID
	Buyer          Party
	PurchasePrice  Amount
	// Seq orders buy orders created at the same instant
	Seq       uint64
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Transaction is an immutable settlement ledger entry
type Transaction struct {
	From          Party
	To            Party
	Value         Amount
	Type          TransactionType
	ExecutionDate time.Time
}

// SalesContract is the binding record created by a match or a gift redemption
type SalesContract struct {
	ID                ContractID
	Status            ContractStatus
	SellOrder         SellOrder
	BuyOrder          *BuyOrder
	Seller            Party
	Buyer             Party
	AssetID           AssetID
	CollectionID      CollectionID
	Creator           Party
	NFTID             NFTToken
	PurchasePrice     Amount
	CommissionPercent *Amount
	ExecutionType     SalesType
	ExecutionDate     *time.Time
	Transactions      []Transaction
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Parties returns the seller and buyer of the contract
func (c *SalesContract) Parties() []Party {
	return []Party{c.Seller, c.Buyer}
}

// Involves reports whether p is a party to the contract
func (c *SalesContract) Involves(p Party) bool {
	return c.Seller == p || c.Buyer == p
}

// Clone returns a deep copy safe to hand out of the engine
func (c *SalesContract) Clone() SalesContract {
	out := *c
	if c.SellOrder.ContractID != nil {
		id := *c.SellOrder.ContractID
		out.SellOrder.ContractID = &id
	}
	if c.BuyOrder != nil {
		b := *c.BuyOrder
		out.BuyOrder = &b
	}
	if c.ExecutionDate != nil {
		t := *c.ExecutionDate
		out.ExecutionDate = &t
	}
	if c.CommissionPercent != nil {
		p := *c.CommissionPercent
		out.CommissionPercent = &p
	}
	out.Transactions = append([]Transaction(nil), c.Transactions...)
	return out
}
