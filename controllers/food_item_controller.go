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

type FoodItemController struct {
	Repo *repository.FoodItemRepository
}

func NewFoodItemController(repo *repository.FoodItemRepository) *FoodItemController {
	return &FoodItemController{Repo: repo}
}

type foodItemIn struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"min=0"`
	ImageUrl    string  `json:"imageUrl"`
	Veg         bool    `json:"veg"`
	Inventory   int     `json:"inventory" binding:"min=0"`
}

// GET /api/food-items
func (fc *FoodItemController) List(c *gin.Context) {
	items, err := fc.Repo.FindAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, items)
}

// POST /api/admin/food-items
func (fc *FoodItemController) Create(c *gin.Context) {
	var in foodItemIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	item := entity.FoodItem{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		ImageUrl:    in.ImageUrl,
		Veg:         in.Veg,
		Inventory:   in.Inventory,
	}
	if err := fc.Repo.Create(&item); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, item)
}

// PUT /api/admin/food-items/:id
func (fc *FoodItemController) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	var in foodItemIn
	if err := c.ShouldBindJSON(&in); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	item, err := fc.Repo.FindByID(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "food item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}

	item.Name = in.Name
	item.Description = in.Description
	item.Price = in.Price
	item.ImageUrl = in.ImageUrl
	item.Veg = in.Veg
	item.Inventory = in.Inventory
	if err := fc.Repo.Save(item); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, item)
}

// DELETE /api/admin/food-items/:id
func (fc *FoodItemController) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	ok, err := fc.Repo.ExistsByID(uint(id))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if !ok {
		resp.NotFound(c, "food item not found")
		return
	}
	if err := fc.Repo.Delete(uint(id)); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"deleted": id})
}
