package routes

import (
	"School-Canteen-Backend/domain"
	"School-Canteen-Backend/internal/api/handlers"
	"School-Canteen-Backend/internal/middleware"
	"School-Canteen-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App                 *fiber.App
	UserHandler         handlers.UserHandler
	MenuHandler         handlers.MenuHandler
	InventoryHandler    handlers.InventoryHandler
	OrderHandler        handlers.OrderHandler
	WalletHandler       handlers.WalletHandler
	SubscriptionHandler handlers.SubscriptionHandler
	ProcurementHandler  handlers.ProcurementHandler
	NotificationHandler handlers.NotificationHandler
	ReportHandler       handlers.ReportHandler
	ReviewHandler       handlers.ReviewHandler
	MidtransHandler     handlers.MidtransHandler
	Middleware          middleware.Middleware
	JWTService          jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Menu()
	c.Inventory()
	c.Orders()
	c.Wallet()
	c.Subscriptions()
	c.Procurement()
	c.Notifications()
	c.Reports()
	c.Reviews()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Get("/allergies", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.GetAllergies)
		user.Post("/allergies/toggle", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.ToggleAllergy)
	}

	admin := c.App.Group("/api/v1/admin/users",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.RoleMiddleware(domain.RoleAdmin))
	{
		admin.Get("", c.UserHandler.GetUsers)
		admin.Get("/pending", c.UserHandler.GetPendingUsers)
		admin.Post("/:id/approve", c.UserHandler.ApproveUser)
		admin.Delete("/:id/reject", c.UserHandler.RejectUser)
		admin.Post("/allergies", c.UserHandler.CreateAllergy)
	}
}

func (c *Config) Menu() {
	menu := c.App.Group("/api/v1/menu", c.Middleware.AuthMiddleware(c.JWTService))
	{
		menu.Get("", c.MenuHandler.GetMenuToday)
		menu.Get("/dishes", c.MenuHandler.GetUniqueDishes)
		menu.Get("/dishes/:id", c.MenuHandler.GetDish)
	}

	manage := c.App.Group("/api/v1/menu",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.RoleMiddleware(domain.RoleAdmin, domain.RoleCook))
	{
		manage.Post("/dishes", c.MenuHandler.CreateDish)
		manage.Delete("/dishes/:id", c.MenuHandler.DeleteDish)
		manage.Post("/dishes/:id/toggle", c.MenuHandler.ToggleAvailability)
		manage.Post("/dishes/image", c.MenuHandler.UploadDishImage)
	}
}

func (c *Config) Inventory() {
	inventory := c.App.Group("/api/v1/inventory",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.RoleMiddleware(domain.RoleAdmin, domain.RoleCook))
	{
		inventory.Get("", c.InventoryHandler.GetProducts)
		inventory.Post("", c.InventoryHandler.AddProduct)
		inventory.Patch("/:id", c.InventoryHandler.UpdateProduct)
	}
}

func (c *Config) Orders() {
	orders := c.App.Group("/api/v1/orders", c.Middleware.AuthMiddleware(c.JWTService))
	{
		orders.Post("", c.OrderHandler.PlaceOrder)
		orders.Get("", c.OrderHandler.GetMyOrders)
		orders.Post("/:id/receive", c.OrderHandler.MarkReceived)
	}

	kitchen := c.App.Group("/api/v1/kitchen",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.RoleMiddleware(domain.RoleCook, domain.RoleAdmin))
	{
		kitchen.Get("/orders", c.OrderHandler.GetOrdersToPrepare)
		kitchen.Get("/issued", c.OrderHandler.GetIssuedToday)
		kitchen.Post("/lines/:id/cook", c.OrderHandler.CookLine)
		kitchen.Post("/orders/:id/prepare", c.OrderHandler.MarkPrepared)
	}
}

func (c *Config) Wallet() {
	wallet := c.App.Group("/api/v1/wallet", c.Middleware.AuthMiddleware(c.JWTService))
	{
		wallet.Get("/balance", c.WalletHandler.GetBalance)
		wallet.Get("/payments", c.WalletHandler.GetPayments)
		wallet.Post("/topup", c.MidtransHandler.CreateTopUp)
	}
}

func (c *Config) Subscriptions() {
	subs := c.App.Group("/api/v1/subscriptions", c.Middleware.AuthMiddleware(c.JWTService))
	{
		subs.Get("", c.SubscriptionHandler.GetMySubscriptions)
		subs.Post("/buy", c.SubscriptionHandler.BuySubscription)
		subs.Post("/grant",
			c.Middleware.RoleMiddleware(domain.RoleAdmin),
			c.SubscriptionHandler.GrantSubscription)
	}
}

func (c *Config) Procurement() {
	requests := c.App.Group("/api/v1/purchase-requests",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.RoleMiddleware(domain.RoleCook, domain.RoleAdmin))
	{
		requests.Post("", c.ProcurementHandler.SubmitRequest)
		requests.Get("/mine", c.ProcurementHandler.GetMyRequests)
	}

	admin := c.App.Group("/api/v1/admin/purchase-requests",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.RoleMiddleware(domain.RoleAdmin))
	{
		admin.Get("", c.ProcurementHandler.GetAllRequests)
		admin.Get("/pending", c.ProcurementHandler.GetPendingRequests)
		admin.Post("/:id/approve", c.ProcurementHandler.ApproveRequest)
		admin.Post("/:id/reject", c.ProcurementHandler.RejectRequest)
	}
}

func (c *Config) Notifications() {
	notifications := c.App.Group("/api/v1/notifications", c.Middleware.AuthMiddleware(c.JWTService))
	{
		notifications.Get("", c.NotificationHandler.GetNotifications)
		notifications.Get("/unread", c.NotificationHandler.GetUnreadCount)
	}
}

func (c *Config) Reports() {
	reports := c.App.Group("/api/v1/reports",
		c.Middleware.AuthMiddleware(c.JWTService),
		c.Middleware.RoleMiddleware(domain.RoleAdmin))
	{
		reports.Get("/payments", c.ReportHandler.GetPaymentStats)
		reports.Get("/orders", c.ReportHandler.GetOrderStats)
		reports.Get("/attendance", c.ReportHandler.GetClassAttendance)
		reports.Get("/dishes", c.ReportHandler.GetPopularDishes)
		reports.Get("/financial", c.ReportHandler.GetFinancialReport)
	}
}

func (c *Config) Reviews() {
	reviews := c.App.Group("/api/v1/reviews", c.Middleware.AuthMiddleware(c.JWTService))
	{
		reviews.Post("", c.ReviewHandler.AddReview)
		reviews.Get("/dish/:id", c.ReviewHandler.GetDishReviews)
		reviews.Get("",
			c.Middleware.RoleMiddleware(domain.RoleAdmin, domain.RoleCook),
			c.ReviewHandler.GetAllReviews)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Post("/webhook/midtrans", c.MidtransHandler.MidtransWebhookHandler)
}
