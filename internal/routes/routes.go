package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/petshopsuite/petshop-api/internal/audit"
	"github.com/petshopsuite/petshop-api/internal/cache"
	"github.com/petshopsuite/petshop-api/internal/config"
	"github.com/petshopsuite/petshop-api/internal/handlers"
	"github.com/petshopsuite/petshop-api/internal/identity"
	"github.com/petshopsuite/petshop-api/internal/infra/repository"
	"github.com/petshopsuite/petshop-api/internal/media"
	"github.com/petshopsuite/petshop-api/internal/middleware"
	"github.com/petshopsuite/petshop-api/internal/payments"
	appointmentuc "github.com/petshopsuite/petshop-api/internal/usecase/appointment"
	"github.com/petshopsuite/petshop-api/internal/usecase/dashboard"
	financeuc "github.com/petshopsuite/petshop-api/internal/usecase/finance"
	registeruc "github.com/petshopsuite/petshop-api/internal/usecase/register"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// SINGLETONS
	// ======================================================

	auditDispatcher := audit.NewDispatcher(audit.New(db))
	catalogCache := cache.NewCatalogCache(cfg.RedisAddr)
	uploader := media.NewUploader(cfg)
	verifier := identity.NewGormVerifier(db)

	var provider payments.Provider
	if cfg.MercadoPagoToken != "" {
		mp, err := payments.NewMercadoPago(cfg.MercadoPagoToken)
		if err != nil {
			log.Printf("mercadopago indisponível: %v", err)
		} else {
			provider = mp
		}
	}

	// ======================================================
	// REPOSITORIES
	// ======================================================

	appointmentRepo := repository.NewAppointmentGormRepository(db)
	financeRepo := repository.NewFinanceGormRepository(db)
	registerRepo := repository.NewRegisterGormRepository(db)

	// ======================================================
	// USE CASES
	// ======================================================

	createAppointment := appointmentuc.NewCreateAppointment(appointmentRepo, auditDispatcher)
	cancelAppointment := appointmentuc.NewCancelAppointment(appointmentRepo, auditDispatcher)
	confirmAppointment := appointmentuc.NewConfirmAppointment(appointmentRepo, auditDispatcher)
	completeAppointment := appointmentuc.NewCompleteAppointment(appointmentRepo, financeRepo, auditDispatcher)
	listByDate := appointmentuc.NewListAppointmentsByDate(appointmentRepo)
	listByMonth := appointmentuc.NewListAppointmentsByMonth(appointmentRepo)
	getAvailability := appointmentuc.NewGetAvailability(appointmentRepo)

	openRegister := registeruc.NewOpenRegister(registerRepo, verifier, auditDispatcher)
	closeRegister := registeruc.NewCloseRegister(registerRepo, financeRepo, auditDispatcher)
	currentRegister := registeruc.NewCurrentRegister(registerRepo, financeRepo)

	appendRecord := financeuc.NewAppendRecord(financeRepo, auditDispatcher)
	listRecords := financeuc.NewListRecords(financeRepo)
	summarizeDay := financeuc.NewSummarizeDay(financeRepo)

	stats := dashboard.NewStats(financeRepo, appointmentRepo)

	// ======================================================
	// HANDLERS
	// ======================================================

	authHandler := handlers.NewAuthHandler(db, cfg)
	petShopHandler := handlers.NewPetShopHandler(db)
	clientHandler := handlers.NewClientHandler(db)
	petHandler := handlers.NewPetHandler(db, uploader)
	serviceHandler := handlers.NewGroomServiceHandler(db, catalogCache)
	inventoryHandler := handlers.NewInventoryHandler(db)
	saleHandler := handlers.NewSaleHandler(db, provider, auditDispatcher)
	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointment,
		cancelAppointment,
		confirmAppointment,
		completeAppointment,
		listByDate,
		listByMonth,
	)
	registerHandler := handlers.NewRegisterHandler(openRegister, closeRegister, currentRegister, registerRepo)
	financeHandler := handlers.NewFinanceHandler(db, appendRecord, listRecords, summarizeDay)
	dashboardHandler := handlers.NewDashboardHandler(stats)
	workingHoursHandler := handlers.NewWorkingHoursHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)
	publicHandler := handlers.NewPublicHandler(db, catalogCache, getAvailability, createAppointment)

	// ======================================================
	// PUBLIC ROUTES
	// ======================================================

	r.POST("/auth/register", authHandler.Register)
	r.POST("/auth/login", authHandler.Login)

	public := r.Group("/public/:slug")
	{
		public.GET("", publicHandler.GetShop)
		public.GET("/services", publicHandler.ListServices)
		public.GET("/availability", publicHandler.Availability)
		public.POST("/appointments", publicHandler.CreateBooking)
	}

	// ======================================================
	// PROTECTED ROUTES
	// ======================================================

	api := r.Group("/api")
	api.Use(middleware.AuthMiddleware(cfg))
	{
		api.GET("/me", petShopHandler.Me)
		api.GET("/pet-shop", petShopHandler.Get)
		api.PUT("/pet-shop", petShopHandler.Update)

		api.GET("/clients", clientHandler.List)
		api.POST("/clients", clientHandler.Create)
		api.PUT("/clients/:id", clientHandler.Update)

		api.GET("/pets", petHandler.List)
		api.POST("/pets", petHandler.Create)
		api.PUT("/pets/:id", petHandler.Update)
		api.POST("/pets/:id/photo", petHandler.UploadPhoto)

		api.GET("/services", serviceHandler.List)
		api.POST("/services", serviceHandler.Create)
		api.PUT("/services/:id", serviceHandler.Update)

		api.GET("/products", inventoryHandler.List)
		api.POST("/products", inventoryHandler.Create)
		api.PUT("/products/:id", inventoryHandler.Update)
		api.POST("/products/:id/stock", inventoryHandler.AdjustStock)

		api.GET("/sales", saleHandler.List)
		api.POST("/sales", saleHandler.Checkout)

		api.GET("/appointments", appointmentHandler.List)
		api.POST("/appointments", appointmentHandler.Create)
		api.POST("/appointments/:id/cancel", appointmentHandler.Cancel)
		api.POST("/appointments/:id/confirm", appointmentHandler.Confirm)
		api.POST("/appointments/:id/complete", appointmentHandler.Complete)

		api.GET("/cash-registers", registerHandler.List)
		api.GET("/cash-registers/current", registerHandler.Current)
		api.POST("/cash-registers/open", registerHandler.Open)
		api.POST("/cash-registers/:id/close", registerHandler.Close)

		api.GET("/financial-records", financeHandler.List)
		api.POST("/financial-records", financeHandler.Create)
		api.GET("/financial-records/summary", financeHandler.Summary)

		api.GET("/dashboard/today", dashboardHandler.Today)

		api.GET("/working-hours", workingHoursHandler.Get)
		api.PUT("/working-hours", workingHoursHandler.Update)

		api.GET("/audit-logs", auditLogsHandler.List)
	}
}
