package controllers

import (
	"errors"
	"strconv"

	"github.com/matthewskitchen/MatthewsKitchenBackEnd/entity"
	"github.com/matthewskitchen/MatthewsKitchenBackEnd/pkg/resp"
	"github.com/matthewskitchen/MatthewsKitchenBackEnd/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CouponController struct {
	Repo *repository.CouponRepository
}

func NewCouponController(repo *repository.CouponRepository) *CouponController {
	return &CouponController{Repo: repo}
}

// GET /api/coupons
func (cc *CouponController) List(c *gin.Context) {
	coupons, err := cc.Repo.FindAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, coupons)
}

// GET /api/coupons/active
func (cc *CouponController) ListActive(c *gin.Context) {
	coupons, err := cc.Repo.FindActive()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, coupons)
}

// GET /api/coupons/:code
func (cc *CouponController) GetByCode(c *gin.Context) {
	coupon, err := cc.Repo.FindByCode(c.Param("code"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "coupon not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, coupon)
}

// POST /api/admin/coupons
func (cc *CouponController) Create(c *gin.Context) {
	var in struct {
		Code               string  `json:"code" binding:"required"`
		DiscountPercentage float64 `json:"discountPercentage" binding:"min=0,max=100"`
		MaxDiscountAmount  float64 `json:"maxDiscountAmount" binding:"min=0"`
		Active             bool    `json:"active"`
		FirstTimeUserOnly  bool    `json:"firstTimeUserOnly"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	coupon := entity.Coupon{
		Code:               in.Code,
		DiscountPercentage: in.DiscountPercentage,
		MaxDiscountAmount:  in.MaxDiscountAmount,
		Active:             in.Active,
		FirstTimeUserOnly:  in.FirstTimeUserOnly,
	}
	if err := cc.Repo.Create(&coupon); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, coupon)
}

// DELETE /api/admin/coupons/:id
func (cc *CouponController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	if err := cc.Repo.Delete(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
