package controllers

import (
	"errors"

	"github.com/matthewskitchen/MatthewsKitchenBackEnd/pkg/resp"
	"github.com/matthewskitchen/MatthewsKitchenBackEnd/services"

	"github.com/gin-gonic/gin"
)

type OrderController struct {
	Service *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Service: svc}
}

// POST /api/orders/place
func (oc *OrderController) Place(c *gin.Context) {
	var req services.PlaceOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	orderID, err := oc.Service.PlaceOrder(&req)
	if err != nil {
		var inv *services.InsufficientInventoryError
		switch {
		case errors.As(err, &inv):
			resp.Conflict(c, inv.Error())
		case errors.Is(err, services.ErrEmptyCart),
			errors.Is(err, services.ErrInvalidQuantity),
			errors.Is(err, services.ErrInvalidPaymentMode):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}

	resp.Created(c, gin.H{
		"orderId": orderID,
		"message": "Order placed successfully! Your Order ID is: " + orderID,
	})
}

// GET /api/orders/admin/all
func (oc *OrderController) ListAll(c *gin.Context) {
	orders, err := oc.Service.ListAll()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}

// PUT /api/orders/admin/status/:orderId?status=DELIVERED
func (oc *OrderController) UpdateStatus(c *gin.Context) {
	orderID := c.Param("orderId")
	status := c.Query("status")

	newStatus, err := oc.Service.UpdateStatus(orderID, status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			resp.NotFound(c, err.Error())
		case errors.Is(err, services.ErrAlreadyDelivered):
			resp.Conflict(c, err.Error())
		case errors.Is(err, services.ErrInvalidStatus):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.OK(c, gin.H{"orderId": orderID, "status": newStatus})
}

// GET /api/orders/user/:email
func (oc *OrderController) ListForUser(c *gin.Context) {
	orders, err := oc.Service.ListByEmail(c.Param("email"))
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, orders)
}
