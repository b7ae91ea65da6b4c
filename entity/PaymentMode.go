package entity

import (
	"strings"
)

type PaymentMode string

const (
	PaymentCash PaymentMode = "CASH"
	PaymentCard PaymentMode = "CARD"
	PaymentUPI  PaymentMode = "UPI"
)

func ParsePaymentMode(s string) (PaymentMode, bool) {
	m := PaymentMode(strings.ToUpper(strings.TrimSpace(s)))
	switch m {
	case PaymentCash, PaymentCard, PaymentUPI:
		return m, true
	}
	return "", false
}
