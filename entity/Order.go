package entity

import (
	"time"
)

type Order struct {
	OrderID   string `gorm:"primaryKey;size:20" json:"orderId"`
	UserEmail string `gorm:"size:50;not null" json:"userEmail"`
	Address   string `gorm:"size:100;not null" json:"address"`
	Name      string `json:"name"`

	TotalAmount float64 `gorm:"not null" json:"totalAmount"`
	Discount    float64 `json:"discount"`
	Gst         float64 `json:"gst"`
	DeliveryFee float64 `json:"deliveryFee"`
	FinalAmount float64 `gorm:"not null" json:"finalAmount"`

	PaymentMode PaymentMode `gorm:"size:8;not null" json:"paymentMode"`
	OrderStatus OrderStatus `gorm:"column:status;size:24;not null" json:"status"`

	// เซ็ตฝั่ง server ตอนสร้างเสมอ (แถวเก่าบางแถวเป็น null)
	OrderedAt *time.Time `json:"orderedAt"`

	// preload แค่ตอน detail/invoice
	Items []OrderItem `gorm:"foreignKey:OrderID;references:OrderID;constraint:OnDelete:CASCADE" json:"items"`
}
