package repository

import (
	"time"

	"github.com/matthewskitchen/MatthewsKitchenBackEnd/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID string) (*entity.Order, error) {
	var o entity.Order
	if err := r.DB.Preload("Items").Where("order_id = ?", orderID).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

// GET /api/orders/admin/all → ใหม่สุดก่อน, แถว legacy ที่ ordered_at เป็น null ไว้ท้าย
func (r *OrderRepository) FindAll() ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Preload("Items").
		Order("ordered_at IS NULL, ordered_at DESC").
		Find(&out).Error
	return out, err
}

func (r *OrderRepository) FindByUserEmail(email string) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.Preload("Items").
		Where("user_email = ?", email).
		Order("ordered_at IS NULL, ordered_at DESC").
		Find(&out).Error
	return out, err
}

// FindOrderedBetween returns orders with ordered_at in [start, end).
// Null timestamps never match, so legacy rows stay out of reports.
func (r *OrderRepository) FindOrderedBetween(start, end time.Time) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.
		Where("ordered_at IS NOT NULL AND ordered_at >= ? AND ordered_at < ?", start, end).
		Find(&out).Error
	return out, err
}

// PUT /api/orders/admin/status/:orderId → อัปเดตสถานะ (มี guard กันออเดอร์ที่ส่งแล้ว)
func (r *OrderRepository) UpdateStatusGuard(orderID string, to entity.OrderStatus) (bool, error) {
	res := r.DB.Model(&entity.Order{}).
		Where("order_id = ? AND status <> ?", orderID, entity.StatusDelivered).
		Update("status", to)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// ---------------- Order Items ----------------

func (r *OrderRepository) CreateOrderItem(tx *gorm.DB, oi *entity.OrderItem) error {
	return tx.Create(oi).Error
}

func (r *OrderRepository) GetOrderItems(orderID string) ([]entity.OrderItem, error) {
	var items []entity.OrderItem
	err := r.DB.Where("order_id = ?", orderID).Find(&items).Error
	return items, err
}
