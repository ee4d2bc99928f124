package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/feral-file/ff-sales-engine/internal/api/shared/constants"
	apierrors "github.com/feral-file/ff-sales-engine/internal/api/shared/errors"
	"github.com/feral-file/ff-sales-engine/internal/domain"
)

// validateAmount checks that raw is a decimal the store can hold without rounding
func validateAmount(field, raw string) error {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return apierrors.NewValidationError(fmt.Sprintf("invalid %s: %s", field, raw))
	}
	if !domain.AmountFits(amount) {
		return apierrors.NewValidationError(fmt.Sprintf("%s must have at most %d integer digits and %d decimal places",
			field, domain.AmountMaxIntegerDigits, domain.AmountMaxScale))
	}
	return nil
}

// SellOrderRequest represents the request body for listing an asset
type SellOrderRequest struct {
	NFTToken string `json:"nft_token"`
	// AssetID, CollectionID and Creator are only used when no asset registry is configured
	AssetID      string     `json:"asset_id,omitempty"`
	CollectionID string     `json:"collection_id,omitempty"`
	Creator      string     `json:"creator,omitempty"`
	Price        string     `json:"price"`
	OrderType    string     `json:"order_type"`
	Secret       string     `json:"secret,omitempty"`
	FromDate     *time.Time `json:"from_date,omitempty"`
	ToDate       *time.Time `json:"to_date"`
}

// Validate validates the request body
func (r *SellOrderRequest) Validate() error {
	if strings.TrimSpace(r.NFTToken) == "" {
		return apierrors.NewValidationError("nft_token is required")
	}

	if err := validateAmount("price", r.Price); err != nil {
		return err
	}

	if !domain.SalesType(r.OrderType).Valid() {
		return apierrors.NewValidationError(fmt.Sprintf("invalid order_type: %s. Must be marketplace or gift", r.OrderType))
	}

	if len(r.Secret) > constants.MAX_SECRET_LENGTH {
		return apierrors.NewValidationError(fmt.Sprintf("secret must be at most %d characters", constants.MAX_SECRET_LENGTH))
	}

	if r.ToDate == nil {
		return apierrors.NewValidationError("to_date is required")
	}

	return nil
}

// ToInput converts the request into an engine input for the resolved asset
func (r *SellOrderRequest) ToInput(assetID domain.AssetID, collectionID domain.CollectionID, creator domain.Party) domain.SellOrderInput {
	in := domain.SellOrderInput{
		NFTToken:     domain.NFTToken(strings.TrimSpace(r.NFTToken)),
		AssetID:      assetID,
		CollectionID: collectionID,
		Creator:      creator,
		Price:        decimal.RequireFromString(strings.TrimSpace(r.Price)),
		OrderType:    domain.SalesType(r.OrderType),
		Secret:       r.Secret,
	}
	if r.FromDate != nil {
		in.FromDate = *r.FromDate
	}
	if r.ToDate != nil {
		in.ToDate = *r.ToDate
	}
	return in
}

// BatchSellOrderRequest represents the request body for listing several assets at once
type BatchSellOrderRequest struct {
	Orders []SellOrderRequest `json:"orders"`
}

// Validate checks the batch envelope. Elements are validated one by one so a bad element only fails itself.
func (r *BatchSellOrderRequest) Validate() error {
	if len(r.Orders) == 0 {
		return apierrors.NewValidationError("orders is required")
	}

	if len(r.Orders) > constants.MAX_SELL_ORDERS_PER_BATCH {
		return apierrors.NewValidationError(fmt.Sprintf("maximum %d orders allowed", constants.MAX_SELL_ORDERS_PER_BATCH))
	}

	return nil
}

// BuyOrderRequest represents the request body for placing an offer on an asset
type BuyOrderRequest struct {
	PurchasePrice string `json:"purchase_price"`
	OfferID       string `json:"offer_id,omitempty"`
}

// Validate validates the request body
func (r *BuyOrderRequest) Validate() error {
	if err := validateAmount("purchase_price", r.PurchasePrice); err != nil {
		return err
	}
	if decimal.RequireFromString(strings.TrimSpace(r.PurchasePrice)).IsNegative() {
		return apierrors.NewValidationError("purchase_price must not be negative")
	}

	if len(r.OfferID) > constants.MAX_OFFER_ID_LENGTH {
		return apierrors.NewValidationError(fmt.Sprintf("offer_id must be at most %d characters", constants.MAX_OFFER_ID_LENGTH))
	}

	return nil
}

// ToInput converts the request into an engine input
func (r *BuyOrderRequest) ToInput() domain.BuyOrderInput {
	return domain.BuyOrderInput{
		PurchasePrice: decimal.RequireFromString(strings.TrimSpace(r.PurchasePrice)),
		OfferID:       strings.TrimSpace(r.OfferID),
	}
}

// RedeemGiftRequest represents the request body for claiming a gift
type RedeemGiftRequest struct {
	Secret string `json:"secret"`
}

// Validate validates the request body
func (r *RedeemGiftRequest) Validate() error {
	if r.Secret == "" {
		return apierrors.NewValidationError("secret is required")
	}

	if len(r.Secret) > constants.MAX_SECRET_LENGTH {
		return apierrors.NewValidationError(fmt.Sprintf("secret must be at most %d characters", constants.MAX_SECRET_LENGTH))
	}

	return nil
}
