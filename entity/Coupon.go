package entity

import (
	"gorm.io/gorm"
)

type Coupon struct {
	gorm.Model
	Code               string  `gorm:"uniqueIndex;size:30" json:"code"`
	DiscountPercentage float64 `json:"discountPercentage"`
	MaxDiscountAmount  float64 `json:"maxDiscountAmount"`
	Active             bool    `json:"active"`
	FirstTimeUserOnly  bool    `json:"firstTimeUserOnly"`
}
