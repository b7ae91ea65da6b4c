package entity

import (
	"strings"
)

type OrderStatus string

const (
	StatusOrdered        OrderStatus = "ORDERED"
	StatusPreparing      OrderStatus = "PREPARING"
	StatusOutForDelivery OrderStatus = "OUT_FOR_DELIVERY"
	StatusDelivered      OrderStatus = "DELIVERED"
)

// ParseOrderStatus normalizes a status name. DELIVERED is terminal;
// everything else can move freely between the four states.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	st := OrderStatus(strings.ToUpper(strings.TrimSpace(s)))
	switch st {
	case StatusOrdered, StatusPreparing, StatusOutForDelivery, StatusDelivered:
		return st, true
	}
	return "", false
}
