package domain

import "errors"

// Error kinds. Every error returned by the engine matches exactly one of them with errors.Is.
var (
	// ErrValidation is returned for malformed input
	ErrValidation = errors.New("validation error")
	// ErrNotFound is returned when an order, contract or asset is unknown
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when the current state forbids the operation
	ErrConflict = errors.New("conflict")
	// ErrUnauthorized is returned when the caller may not mutate the target
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNoMatch is returned when no compatible buy/sell pair exists at execution time
	ErrNoMatch = errors.New("no match")
)

var (
	// ErrInvalidRange is returned when a sell order ends before it starts
	ErrInvalidRange = newKindError(ErrValidation, "to date is before from date")
	// ErrEmptySecret is returned when a gift order has no secret
	ErrEmptySecret = newKindError(ErrValidation, "gift order requires a secret")
	// ErrInvalidPrice is returned for negative prices or non-positive marketplace prices
	ErrInvalidPrice = newKindError(ErrValidation, "invalid price")
	// ErrAmountOutOfRange is returned for amounts with more fractional or integer digits than can be stored
	ErrAmountOutOfRange = newKindError(ErrValidation, "amount out of range")
	// ErrInvalidOrderType is returned for an unknown order type
	ErrInvalidOrderType = newKindError(ErrValidation, "invalid order type")
	// ErrMissingField is returned when a required identifier is empty
	ErrMissingField = newKindError(ErrValidation, "missing required field")

	// ErrOrderNotFound is returned for an unknown sell order
	ErrOrderNotFound = newKindError(ErrNotFound, "sell order not found")
	// ErrBuyOrderNotFound is returned when the buyer has no outstanding offer
	ErrBuyOrderNotFound = newKindError(ErrNotFound, "buy order not found")
	// ErrContractNotFound is returned for an unknown sales contract
	ErrContractNotFound = newKindError(ErrNotFound, "sales contract not found")
	// ErrAssetNotFound is returned when the registry cannot resolve an asset or token
	ErrAssetNotFound = newKindError(ErrNotFound, "asset not found")

	// ErrActiveListingExists is returned when the token already has an active sell order
	ErrActiveListingExists = newKindError(ErrConflict, "token already has an active sell order")
	// ErrDuplicateSecret is returned when a gift secret is already in use
	ErrDuplicateSecret = newKindError(ErrConflict, "gift secret already in use")
	// ErrDuplicateOffer is returned when an offer id belongs to another outstanding offer
	ErrDuplicateOffer = newKindError(ErrConflict, "offer id already in use")
	// ErrAlreadyFinalized is returned when a contract has already left pending
	ErrAlreadyFinalized = newKindError(ErrConflict, "sales contract already finalized")
	// ErrAlreadyRedeemed is returned when a gift has been redeemed before
	ErrAlreadyRedeemed = newKindError(ErrConflict, "gift already redeemed")
	// ErrOrderConsumed is returned when a sell order is no longer active
	ErrOrderConsumed = newKindError(ErrConflict, "sell order already consumed")
	// ErrOrderExpired is returned when the sell order validity window has closed
	ErrOrderExpired = newKindError(ErrConflict, "sell order expired")
	// ErrOrderNotStarted is returned when the sell order validity window has not opened yet
	ErrOrderNotStarted = newKindError(ErrConflict, "sell order is not valid yet")

	// ErrNotOrderOwner is returned when the caller is not the seller of the order
	ErrNotOrderOwner = newKindError(ErrUnauthorized, "caller is not the order owner")
	// ErrNotAssetOwner is returned when the seller does not hold the token being listed
	ErrNotAssetOwner = newKindError(ErrUnauthorized, "caller does not own the asset")
	// ErrNotContractSeller is returned when the caller is not the seller of the contract
	ErrNotContractSeller = newKindError(ErrUnauthorized, "caller is not the contract seller")
	// ErrInvalidSecret is returned when no active gift order matches the secret
	ErrInvalidSecret = newKindError(ErrUnauthorized, "invalid gift secret")
	// ErrResetDisabled is returned when datastore reset is not allowed in this deployment
	ErrResetDisabled = newKindError(ErrUnauthorized, "datastore reset is disabled")
)

// kindError is a specific error that also matches its kind
type kindError struct {
	kind error
	msg  string
}

func newKindError(kind error, msg string) error {
	return &kindError{kind: kind, msg: msg}
}

func (e *kindError) Error() string {
	return e.msg
}

func (e *kindError) Unwrap() error {
	return e.kind
}

// Kind returns the kind sentinel err belongs to, or nil for infrastructure errors
func Kind(err error) error {
	for _, kind := range []error{ErrValidation, ErrNotFound, ErrConflict, ErrUnauthorized, ErrNoMatch} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
