package services

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/matthewskitchen/MatthewsKitchenBackEnd/entity"
	"github.com/matthewskitchen/MatthewsKitchenBackEnd/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var testDBSeq int64

// newTestDB opens a private in-memory database. The pool is capped at one
// connection so shared-cache sqlite serializes concurrent transactions
// instead of failing with lock errors.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:svc%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&entity.FoodItem{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.Coupon{},
	))
	return db
}

type fakeInvoiceSender struct {
	mu   sync.Mutex
	sent []*entity.Order
}

func (f *fakeInvoiceSender) SendInvoice(o *entity.Order) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, o)
}

func (f *fakeInvoiceSender) invoices() []*entity.Order {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*entity.Order, len(f.sent))
	copy(out, f.sent)
	return out
}

func newTestOrderService(t *testing.T, db *gorm.DB, mailer InvoiceSender) *OrderService {
	t.Helper()
	return NewOrderService(db, repository.NewOrderRepository(db), repository.NewFoodItemRepository(db), mailer)
}

func seedFoodItem(t *testing.T, db *gorm.DB, name string, price float64, inventory int) {
	t.Helper()
	require.NoError(t, db.Create(&entity.FoodItem{Name: name, Price: price, Inventory: inventory}).Error)
}

func inventoryOf(t *testing.T, db *gorm.DB, name string) int {
	t.Helper()
	var item entity.FoodItem
	require.NoError(t, db.Where("name = ?", name).First(&item).Error)
	return item.Inventory
}

func seedOrder(t *testing.T, db *gorm.DB, orderID string, status entity.OrderStatus, finalAmount float64, at *time.Time) {
	t.Helper()
	require.NoError(t, db.Create(&entity.Order{
		OrderID:     orderID,
		UserEmail:   "test@example.com",
		Address:     "12 Test Lane",
		FinalAmount: finalAmount,
		PaymentMode: entity.PaymentCash,
		OrderStatus: status,
		OrderedAt:   at,
	}).Error)
}
