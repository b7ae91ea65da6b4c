package services

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyCart          = errors.New("order must contain at least one item")
	ErrInvalidQuantity    = errors.New("item quantity must be positive")
	ErrInvalidPaymentMode = errors.New("invalid payment mode, allowed values: CASH, CARD, UPI")
	ErrOrderNotFound      = errors.New("order not found")
	ErrAlreadyDelivered   = errors.New("order already delivered, cannot update further")
	ErrInvalidStatus      = errors.New("invalid status, allowed values: ORDERED, PREPARING, OUT_FOR_DELIVERY, DELIVERED")
	ErrInvalidDateRange   = errors.New("invalid date range")
)

// InsufficientInventoryError names the item the caller has to reduce or drop.
type InsufficientInventoryError struct {
	Item string
}

func (e *InsufficientInventoryError) Error() string {
	return fmt.Sprintf("insufficient inventory for item: %s", e.Item)
}
