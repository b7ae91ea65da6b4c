package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/matthewskitchen/MatthewsKitchenBackEnd/entity"
	"github.com/matthewskitchen/MatthewsKitchenBackEnd/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// InvoiceSender is the notification collaborator fired when an order gets
// delivered. Implementations must not block the caller.
type InvoiceSender interface {
	SendInvoice(o *entity.Order)
}

type OrderService struct {
	DB       *gorm.DB
	Repo     *repository.OrderRepository
	FoodRepo *repository.FoodItemRepository
	Mailer   InvoiceSender

	newOrderID func() string
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	foodRepo *repository.FoodItemRepository,
	mailer InvoiceSender,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, FoodRepo: foodRepo, Mailer: mailer, newOrderID: generateOrderID}
}

func generateOrderID() string {
	return "ORD-" + strings.ToUpper(uuid.NewString()[:6])
}

// ----- DTOs from Controller -----

type OrderLineIn struct {
	FoodName     string  `json:"foodName" binding:"required"`
	Quantity     int     `json:"quantity" binding:"required,min=1"`
	PriceAtOrder float64 `json:"priceAtOrder"`
}

type PlaceOrderReq struct {
	UserEmail   string        `json:"userEmail" binding:"required,email"`
	Address     string        `json:"address" binding:"required"`
	Name        string        `json:"name"`
	PaymentMode string        `json:"paymentMode" binding:"required"`
	Items       []OrderLineIn `json:"items"`

	// ราคามาจากฝั่ง client ทั้งก้อน — เก็บตามที่ส่งมา ไม่คำนวณใหม่
	TotalAmount float64 `json:"totalAmount"`
	Discount    float64 `json:"discount"`
	Gst         float64 `json:"gst"`
	DeliveryFee float64 `json:"deliveryFee"`
	FinalAmount float64 `json:"finalAmount"`
}

// ----- Place -----

const maxOrderIDRetries = 3

// PlaceOrder reserves inventory, snapshots every line, and persists the
// order under a fresh ORD-XXXXXX identifier, all inside one transaction.
// A shortfall on any line rolls the whole placement back.
func (s *OrderService) PlaceOrder(req *PlaceOrderReq) (string, error) {
	if len(req.Items) == 0 {
		return "", ErrEmptyCart
	}
	mode, ok := entity.ParsePaymentMode(req.PaymentMode)
	if !ok {
		return "", ErrInvalidPaymentMode
	}
	for _, it := range req.Items {
		if it.Quantity <= 0 {
			return "", ErrInvalidQuantity
		}
	}

	var lastErr error
	for attempt := 0; attempt < maxOrderIDRetries; attempt++ {
		orderID := s.newOrderID()
		err := s.DB.Transaction(func(tx *gorm.DB) error {
			now := time.Now()
			order := entity.Order{
				OrderID:     orderID,
				UserEmail:   req.UserEmail,
				Address:     req.Address,
				Name:        req.Name,
				TotalAmount: req.TotalAmount,
				Discount:    req.Discount,
				Gst:         req.Gst,
				DeliveryFee: req.DeliveryFee,
				FinalAmount: req.FinalAmount,
				PaymentMode: mode,
				OrderStatus: entity.StatusOrdered,
				OrderedAt:   &now,
			}
			if err := s.Repo.CreateOrder(tx, &order); err != nil {
				return err
			}

			for _, it := range req.Items {
				item, err := s.FoodRepo.FindByName(tx, it.FoodName)
				if err != nil {
					return err
				}
				// ชื่อที่ไม่อยู่ใน catalog ข้ามการจอง stock (พฤติกรรมเดิม)
				if item != nil {
					ok, err := s.FoodRepo.ReserveInventory(tx, it.FoodName, it.Quantity)
					if err != nil {
						return err
					}
					if !ok {
						return &InsufficientInventoryError{Item: it.FoodName}
					}
				}

				line := entity.OrderItem{
					OrderID:      order.OrderID,
					FoodName:     it.FoodName,
					Quantity:     it.Quantity,
					PriceAtOrder: it.PriceAtOrder,
				}
				if err := s.Repo.CreateOrderItem(tx, &line); err != nil {
					return err
				}
			}
			return nil
		})
		if err == nil {
			return orderID, nil
		}
		if isDuplicateKey(err) {
			lastErr = err
			continue
		}
		return "", err
	}
	return "", fmt.Errorf("order id collision after %d attempts: %w", maxOrderIDRetries, lastErr)
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

// ----- Status machine -----

// UpdateStatus moves an order to any recognized status while it has not been
// delivered; DELIVERED is terminal. The new status is persisted before the
// invoice dispatch so a mail failure never leaves the order stale.
func (s *OrderService) UpdateStatus(orderID, statusName string) (entity.OrderStatus, error) {
	order, err := s.Repo.GetOrder(orderID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrOrderNotFound
		}
		return "", err
	}
	if order.OrderStatus == entity.StatusDelivered {
		return "", ErrAlreadyDelivered
	}

	next, ok := entity.ParseOrderStatus(statusName)
	if !ok {
		return "", ErrInvalidStatus
	}

	changed, err := s.Repo.UpdateStatusGuard(orderID, next)
	if err != nil {
		return "", err
	}
	if !changed {
		// เจอ race: มีคน mark delivered ไปก่อนแล้ว
		return "", ErrAlreadyDelivered
	}

	if next == entity.StatusDelivered && s.Mailer != nil {
		order.OrderStatus = next
		s.Mailer.SendInvoice(order)
	}
	return next, nil
}

// ----- List -----

func (s *OrderService) ListAll() ([]entity.Order, error) {
	return s.Repo.FindAll()
}

func (s *OrderService) ListByEmail(email string) ([]entity.Order, error) {
	return s.Repo.FindByUserEmail(email)
}
