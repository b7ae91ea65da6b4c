package entity

import (
	"gorm.io/gorm"
)

// OrderItem เป็น snapshot ตอนสั่ง — ไม่แก้ทีหลัง
type OrderItem struct {
	gorm.Model
	FoodName     string  `gorm:"size:100;not null" json:"foodName"`
	Quantity     int     `gorm:"not null" json:"quantity"`
	PriceAtOrder float64 `gorm:"not null" json:"priceAtOrder"`

	OrderID string `gorm:"size:20;not null;index" json:"orderId"`
}
