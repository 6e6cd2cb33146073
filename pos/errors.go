package pos

import (
	"errors"
	"fmt"
)

// ValidationCode identifies a locally recoverable rule violation. These
// block the triggering action and leave all state untouched.
type ValidationCode string

const (
	EmptyOrder          ValidationCode = "EmptyOrder"
	MissingOrderType    ValidationCode = "MissingOrderType"
	MissingTable        ValidationCode = "MissingTable"
	MissingWaiter       ValidationCode = "MissingWaiter"
	MissingDriver       ValidationCode = "MissingDriver"
	MissingCustomer     ValidationCode = "MissingCustomer"
	InsufficientPayment ValidationCode = "InsufficientPayment"
	InvalidQuantity     ValidationCode = "InvalidQuantity"
)

type ValidationError struct {
	Code    ValidationCode `json:"code"`
	Message string         `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// ValidationErrors carries every violation, not just the first.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	msg := e[0].Error()
	for _, v := range e[1:] {
		msg += "; " + v.Error()
	}
	return msg
}

func (e ValidationErrors) Messages() []string {
	out := make([]string, 0, len(e))
	for _, v := range e {
		out = append(out, v.Message)
	}
	return out
}

// RemoteError wraps a collaborator failure. Cart and draft are preserved so
// the operator can retry; see the dispatch paths.
type RemoteError struct {
	Op  string
	Err error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error { return e.Err }

var (
	// ErrDispatchInFlight rejects a re-entrant Hold/KOT/Checkout while a
	// previous dispatch for the same draft is still outstanding.
	ErrDispatchInFlight = errors.New("another dispatch is in progress")

	// ErrPromotionNotFound is returned by the promotion collaborator when a
	// coupon code does not resolve.
	ErrPromotionNotFound = errors.New("promotion not found")

	// ErrItemNotFound is returned for a cart index that no longer exists.
	ErrItemNotFound = errors.New("cart item not found")

	ErrInvalidQuantity = ValidationError{Code: InvalidQuantity, Message: "Quantity must be at least 1"}
)
