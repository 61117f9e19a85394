package config

import (
	"School-Canteen-Backend/internal/api/handlers"
	"School-Canteen-Backend/internal/api/routes"
	"School-Canteen-Backend/internal/middleware"
	"School-Canteen-Backend/internal/utils"
	"School-Canteen-Backend/internal/utils/storage"
	"School-Canteen-Backend/pkg/inventory"
	"School-Canteen-Backend/pkg/jwt"
	"School-Canteen-Backend/pkg/menu"
	"School-Canteen-Backend/pkg/midtrans"
	"School-Canteen-Backend/pkg/notification"
	"School-Canteen-Backend/pkg/order"
	"School-Canteen-Backend/pkg/procurement"
	"School-Canteen-Backend/pkg/report"
	"School-Canteen-Backend/pkg/review"
	"School-Canteen-Backend/pkg/subscription"
	"School-Canteen-Backend/pkg/user"
	"School-Canteen-Backend/pkg/wallet"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	inventoryRepository := inventory.NewInventoryRepository(db)
	menuRepository := menu.NewMenuRepository(db)
	walletRepository := wallet.NewWalletRepository(db)
	notificationRepository := notification.NewNotificationRepository(db)
	subscriptionRepository := subscription.NewSubscriptionRepository(db)
	orderRepository := order.NewOrderRepository(db)
	procurementRepository := procurement.NewProcurementRepository(db)
	reviewRepository := review.NewReviewRepository(db)
	reportRepository := report.NewReportRepository(db)
	midtransRepository := midtrans.NewMidtransRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	notificationService := notification.NewNotificationService(notificationRepository)
	userService := user.NewUserService(userRepository, jwtService, notificationService)
	inventoryService := inventory.NewInventoryService(inventoryRepository)
	menuService := menu.NewMenuService(menuRepository, inventoryRepository, s3)
	walletService := wallet.NewWalletService(walletRepository)
	subscriptionService := subscription.NewSubscriptionService(
		subscriptionRepository,
		walletService,
		notificationService,
	)
	orderService := order.NewOrderService(
		orderRepository,
		menuService,
		walletService,
		subscriptionService,
		notificationService,
	)
	procurementService := procurement.NewProcurementService(
		procurementRepository,
		inventoryService,
		inventoryRepository,
		notificationService,
	)
	reviewService := review.NewReviewService(reviewRepository, menuRepository)
	reportService := report.NewReportService(reportRepository)
	midtransService := midtrans.NewMidtransService(
		midtransRepository,
		walletService,
		notificationService,
	)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	menuHandler := handlers.NewMenuHandler(menuService, validator)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService, validator)
	orderHandler := handlers.NewOrderHandler(orderService, validator)
	walletHandler := handlers.NewWalletHandler(walletService)
	subscriptionHandler := handlers.NewSubscriptionHandler(subscriptionService, validator)
	procurementHandler := handlers.NewProcurementHandler(procurementService, validator)
	notificationHandler := handlers.NewNotificationHandler(notificationService)
	reportHandler := handlers.NewReportHandler(reportService)
	reviewHandler := handlers.NewReviewHandler(reviewService, validator)
	midtransHandler := handlers.NewMidtransHandler(midtransService, validator)

	// routes
	routesConfig := routes.Config{
		App:                 app,
		UserHandler:         userHandler,
		MenuHandler:         menuHandler,
		InventoryHandler:    inventoryHandler,
		OrderHandler:        orderHandler,
		WalletHandler:       walletHandler,
		SubscriptionHandler: subscriptionHandler,
		ProcurementHandler:  procurementHandler,
		NotificationHandler: notificationHandler,
		ReportHandler:       reportHandler,
		ReviewHandler:       reviewHandler,
		MidtransHandler:     midtransHandler,
		Middleware:          middlewares,
		JWTService:          jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
