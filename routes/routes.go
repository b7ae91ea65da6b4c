package routes

import (
	"github.com/matthewskitchen/MatthewsKitchenBackEnd/configs"
	"github.com/matthewskitchen/MatthewsKitchenBackEnd/controllers"
	"github.com/matthewskitchen/MatthewsKitchenBackEnd/repository"
	"github.com/matthewskitchen/MatthewsKitchenBackEnd/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *configs.Config) {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Repositories
	orderRepo := repository.NewOrderRepository(db)
	foodRepo := repository.NewFoodItemRepository(db)
	couponRepo := repository.NewCouponRepository(db)

	// Services
	mailer := services.NewEmailService(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.MailFrom)
	orderSvc := services.NewOrderService(db, orderRepo, foodRepo, mailer)
	reportSvc := services.NewReportService(orderRepo)

	// Controllers
	orderCtrl := controllers.NewOrderController(orderSvc)
	reportCtrl := controllers.NewReportController(reportSvc)
	foodCtrl := controllers.NewFoodItemController(foodRepo)
	couponCtrl := controllers.NewCouponController(couponRepo)

	// Orders
	orders := r.Group("/api/orders")
	{
		orders.POST("/place", orderCtrl.Place)
		orders.GET("/admin/all", orderCtrl.ListAll)
		orders.PUT("/admin/status/:orderId", orderCtrl.UpdateStatus)
		orders.GET("/user/:email", orderCtrl.ListForUser)
	}

	// Reports (admin)
	reports := r.Group("/admin/reports")
	{
		reports.GET("/day", reportCtrl.Day)
		reports.GET("/month", reportCtrl.Month)
		reports.GET("/range", reportCtrl.Range)
		reports.GET("/pdf", reportCtrl.PDF)
	}

	// Catalog
	r.GET("/api/food-items", foodCtrl.List)
	foodAdmin := r.Group("/api/admin/food-items")
	{
		foodAdmin.POST("", foodCtrl.Create)
		foodAdmin.PUT("/:id", foodCtrl.Update)
		foodAdmin.DELETE("/:id", foodCtrl.Delete)
	}

	// Coupons
	coupons := r.Group("/api/coupons")
	{
		coupons.GET("", couponCtrl.List)
		coupons.GET("/active", couponCtrl.ListActive)
		coupons.GET("/:code", couponCtrl.GetByCode)
	}
	couponAdmin := r.Group("/api/admin/coupons")
	{
		couponAdmin.POST("", couponCtrl.Create)
		couponAdmin.DELETE("/:id", couponCtrl.Delete)
	}
}
