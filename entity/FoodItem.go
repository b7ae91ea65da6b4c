package entity

import (
	"gorm.io/gorm"
)

type FoodItem struct {
	gorm.Model
	Name        string  `gorm:"uniqueIndex;size:100" json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImageUrl    string  `json:"imageUrl"`
	Veg         bool    `json:"veg"`

	// เปลี่ยนได้ทางเดียว: จองตอน place order
	Inventory int `json:"inventory"`
}
