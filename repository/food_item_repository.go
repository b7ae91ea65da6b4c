package repository

import (
	"errors"

	"github.com/matthewskitchen/MatthewsKitchenBackEnd/entity"

	"gorm.io/gorm"
)

type FoodItemRepository struct {
	DB *gorm.DB
}

func NewFoodItemRepository(db *gorm.DB) *FoodItemRepository {
	return &FoodItemRepository{DB: db}
}

// ---------------- CRUD ----------------

func (r *FoodItemRepository) FindAll() ([]entity.FoodItem, error) {
	var items []entity.FoodItem
	err := r.DB.Order("id").Find(&items).Error
	return items, err
}

func (r *FoodItemRepository) FindByID(id uint) (*entity.FoodItem, error) {
	var item entity.FoodItem
	if err := r.DB.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// FindByName คืน nil, nil ถ้าไม่เจอ (ชื่อที่ไม่อยู่ใน catalog ไม่ถือเป็น error)
// ใช้ tx เดียวกับ ReserveInventory ตอนอยู่ใน transaction
func (r *FoodItemRepository) FindByName(tx *gorm.DB, name string) (*entity.FoodItem, error) {
	var item entity.FoodItem
	err := tx.Where("name = ?", name).First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *FoodItemRepository) Create(item *entity.FoodItem) error {
	return r.DB.Create(item).Error
}

func (r *FoodItemRepository) Save(item *entity.FoodItem) error {
	return r.DB.Save(item).Error
}

func (r *FoodItemRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.FoodItem{}, id).Error
}

func (r *FoodItemRepository) ExistsByID(id uint) (bool, error) {
	var cnt int64
	if err := r.DB.Model(&entity.FoodItem{}).Where("id = ?", id).Count(&cnt).Error; err != nil {
		return false, err
	}
	return cnt > 0, nil
}

// ---------------- Inventory ----------------

// ReserveInventory decrements stock with a guard so inventory can never go
// negative: the UPDATE only matches while inventory >= qty, and concurrent
// placements race on RowsAffected instead of on a stale read.
func (r *FoodItemRepository) ReserveInventory(tx *gorm.DB, name string, qty int) (bool, error) {
	res := tx.Model(&entity.FoodItem{}).
		Where("name = ? AND inventory >= ?", name, qty).
		UpdateColumn("inventory", gorm.Expr("inventory - ?", qty))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}
