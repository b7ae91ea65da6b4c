package configs

import (
	"log"

	"github.com/matthewskitchen/MatthewsKitchenBackEnd/entity"
)

// Seed เมนูเริ่มต้น รันเฉพาะตอน catalog ว่าง
func SeedFoodItems() error {
	db := DB()

	var count int64
	if err := db.Model(&entity.FoodItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("skip seeding food items: catalog not empty")
		return nil
	}

	items := []entity.FoodItem{
		{Name: "Chicken Biryani", Description: "Hyderabadi style, served with raita", Price: 250, Veg: false, Inventory: 40},
		{Name: "Paneer Butter Masala", Description: "With butter naan", Price: 220, Veg: true, Inventory: 30},
		{Name: "Masala Dosa", Description: "Crispy dosa with potato filling", Price: 120, Veg: true, Inventory: 50},
		{Name: "Butter Chicken", Description: "Creamy tomato gravy", Price: 280, Veg: false, Inventory: 25},
		{Name: "Gulab Jamun", Description: "2 pieces", Price: 60, Veg: true, Inventory: 100},
	}
	return db.Create(&items).Error
}
