package repository

import (
	"github.com/matthewskitchen/MatthewsKitchenBackEnd/entity"

	"gorm.io/gorm"
)

type CouponRepository struct {
	DB *gorm.DB
}

func NewCouponRepository(db *gorm.DB) *CouponRepository {
	return &CouponRepository{DB: db}
}

func (r *CouponRepository) FindAll() ([]entity.Coupon, error) {
	var out []entity.Coupon
	err := r.DB.Order("id").Find(&out).Error
	return out, err
}

func (r *CouponRepository) FindActive() ([]entity.Coupon, error) {
	var out []entity.Coupon
	err := r.DB.Where("active = ?", true).Order("id").Find(&out).Error
	return out, err
}

func (r *CouponRepository) FindByCode(code string) (*entity.Coupon, error) {
	var c entity.Coupon
	if err := r.DB.Where("code = ?", code).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CouponRepository) Create(c *entity.Coupon) error {
	return r.DB.Create(c).Error
}

func (r *CouponRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.Coupon{}, id).Error
}
