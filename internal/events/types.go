package events

import (
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/feral-file/ff-sales-engine/internal/domain"
)

// Event type constants
const (
	// EventTypeOrderListed is fired when a sell order is listed
	EventTypeOrderListed = "order.listed"

	// EventTypeOrderCancelled is fired when a seller withdraws a sell order
	EventTypeOrderCancelled = "order.cancelled"

	// EventTypeContractCreated is fired when a buy order is matched into a pending contract
	EventTypeContractCreated = "contract.created"

	// EventTypeContractApproved is fired when the seller approves a contract and it settles
	EventTypeContractApproved = "contract.approved"

	// EventTypeContractRejected is fired when the seller rejects a contract
	EventTypeContractRejected = "contract.rejected"

	// EventTypeContractBlocked is fired when an administrator blocks a contract
	EventTypeContractBlocked = "contract.blocked"

	// EventTypeGiftRedeemed is fired when a gift is claimed with its secret
	EventTypeGiftRedeemed = "gift.redeemed"

	// EventTypeDatastoreReset is fired after the datastore has been cleared
	EventTypeDatastoreReset = "datastore.reset"
)

// ContractEvent represents a sales event delivered to subscribers
type ContractEvent struct {
	// EventID is a unique identifier for this event (ULID for time-sortable uniqueness)
	EventID string `json:"event_id"`
	// EventType is the type of event (e.g., "contract.approved")
	EventType string `json:"event_type"`
	// Timestamp is when the event was generated
	Timestamp time.Time `json:"timestamp"`
	// Data contains the event-specific payload
	Data EventData `json:"data"`
}

// EventData contains the sales event payload
type EventData struct {
	ContractID     *uint64 `json:"contract_id,omitempty"`
	OrderID        *uint64 `json:"order_id,omitempty"`
	AssetID        string  `json:"asset_id,omitempty"`
	CollectionID   string  `json:"collection_id,omitempty"`
	NFTToken       string  `json:"nft_token,omitempty"`
	Seller         string  `json:"seller,omitempty"`
	Buyer          string  `json:"buyer,omitempty"`
	Status         string  `json:"status,omitempty"`
	ExecutionType  string  `json:"execution_type,omitempty"`
	Price          string  `json:"price,omitempty"`
	Commission     string  `json:"commission,omitempty"`
	SellerProceeds string  `json:"seller_proceeds,omitempty"`
}

func newEvent(eventType string, now time.Time, data EventData) *ContractEvent {
	return &ContractEvent{
		EventID:   ulid.MustNewDefault(now).String(),
		EventType: eventType,
		Timestamp: now.UTC(),
		Data:      data,
	}
}

// NewContractEvent builds an event describing a sales contract
func NewContractEvent(eventType string, contract domain.SalesContract, now time.Time) *ContractEvent {
	contractID := uint64(contract.ID)
	orderID := uint64(contract.SellOrder.ID)
	data := EventData{
		ContractID:    &contractID,
		OrderID:       &orderID,
		AssetID:       string(contract.AssetID),
		CollectionID:  string(contract.CollectionID),
		NFTToken:      string(contract.NFTID),
		Seller:        string(contract.Seller),
		Buyer:         string(contract.Buyer),
		Status:        string(contract.Status),
		ExecutionType: string(contract.ExecutionType),
		Price:         contract.PurchasePrice.String(),
	}

	for _, tx := range contract.Transactions {
		switch tx.Type {
		case domain.TransactionTypeCommission:
			data.Commission = tx.Value.String()
		case domain.TransactionTypeBase:
			data.SellerProceeds = tx.Value.String()
		case domain.TransactionTypeMint:
		}
	}

	return newEvent(eventType, now, data)
}

// NewOrderEvent builds an event describing a sell order. Gift secrets are never included.
func NewOrderEvent(eventType string, order domain.SellOrder, now time.Time) *ContractEvent {
	orderID := uint64(order.ID)
	return newEvent(eventType, now, EventData{
		OrderID:       &orderID,
		AssetID:       string(order.AssetID),
		CollectionID:  string(order.CollectionID),
		NFTToken:      string(order.NFTToken),
		Seller:        string(order.Seller),
		Status:        string(order.Status),
		ExecutionType: string(order.OrderType),
		Price:         order.Price.String(),
	})
}

// NewResetEvent builds the event announcing a datastore reset
func NewResetEvent(now time.Time) *ContractEvent {
	return newEvent(EventTypeDatastoreReset, now, EventData{})
}
