package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/dukkanhq/dukkan-api/internal/application/auth"
	"github.com/dukkanhq/dukkan-api/internal/application/reporting"
	"github.com/dukkanhq/dukkan-api/internal/application/usecase"
	"github.com/dukkanhq/dukkan-api/internal/domain/entity"
)

// RouterDeps dependencies for the router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	ProductUC      *usecase.ProductUseCase
	CheckoutUC     *usecase.CheckoutUseCase
	ReportUC       *reporting.ReportUseCase
	NotificationUC *usecase.NotificationUseCase
	CustomerUC     *usecase.CustomerUseCase
	DeviceUC       *usecase.DeviceUseCase
	AttendanceUC   *usecase.AttendanceUseCase
	QuotationUC    *usecase.QuotationUseCase
	SettingsUC     *usecase.SettingsUseCase
	JWTSecret      string
}

// Router registers the API routes.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (public)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/worker-login", authHandler.WorkerLogin)

	// Everything below requires a Bearer token.
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))
	adminOnly := RequireRole(entity.RoleAdmin)

	// Workers (admin only)
	workers := protected.Group("/workers", adminOnly)
	workers.Post("/", authHandler.CreateWorker)
	workers.Get("/", authHandler.ListWorkers)

	// Products
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", adminOnly, productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/low-stock", productHandler.ListLowStock)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", adminOnly, productHandler.Update)
	products.Delete("/:id", adminOnly, productHandler.Delete)

	// Sales (checkout)
	sales := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.CheckoutUC)
	sales.Post("/", saleHandler.Checkout)
	sales.Get("/me", saleHandler.ListMine)

	// Reports (admin only)
	reports := protected.Group("/reports", adminOnly)
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/summary", reportHandler.Summary)
	reports.Get("/text", reportHandler.Text)
	reports.Get("/pdf", reportHandler.PDF)

	// Notifications
	notifications := protected.Group("/notifications")
	notificationHandler := NewNotificationHandler(deps.NotificationUC)
	notifications.Get("/", notificationHandler.List)
	notifications.Post("/read-all", notificationHandler.MarkAllRead)
	notifications.Post("/:id/read", notificationHandler.MarkRead)
	notifications.Delete("/:id", notificationHandler.Delete)

	// Customers
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	deviceHandler := NewDeviceHandler(deps.DeviceUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Get("/:id/devices", deviceHandler.ListByCustomer)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", adminOnly, customerHandler.Delete)

	// Devices (warranty tracking)
	devices := protected.Group("/devices")
	devices.Post("/", deviceHandler.Register)
	devices.Get("/", deviceHandler.List)
	devices.Get("/:id", deviceHandler.GetByID)
	devices.Delete("/:id", adminOnly, deviceHandler.Delete)

	// Attendance
	attendance := protected.Group("/attendance")
	attendanceHandler := NewAttendanceHandler(deps.AttendanceUC)
	attendance.Post("/check-in", attendanceHandler.CheckIn)
	attendance.Post("/check-out", attendanceHandler.CheckOut)
	attendance.Get("/me", attendanceHandler.ListMine)
	attendance.Get("/", adminOnly, attendanceHandler.ListByDay)

	// Quotations
	quotations := protected.Group("/quotations")
	quotationHandler := NewQuotationHandler(deps.QuotationUC)
	quotations.Post("/", quotationHandler.Create)
	quotations.Get("/", quotationHandler.List)
	quotations.Get("/:id", quotationHandler.GetByID)
	quotations.Put("/:id/status", quotationHandler.UpdateStatus)
	quotations.Delete("/:id", adminOnly, quotationHandler.Delete)

	// Settings (admin only)
	settings := protected.Group("/settings", adminOnly)
	settingsHandler := NewSettingsHandler(deps.SettingsUC)
	settings.Get("/", settingsHandler.List)
	settings.Get("/:key", settingsHandler.Get)
	settings.Put("/:key", settingsHandler.Set)
}
