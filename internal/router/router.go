package router

import (
	"time"

	"bluecycle/config"
	"bluecycle/internal/domain"
	"bluecycle/internal/handler"
	"bluecycle/internal/middleware"
	"bluecycle/internal/repository"
	"bluecycle/internal/service"
	"bluecycle/internal/ws"
	"bluecycle/pkg/disburse"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimit(middleware.NewInMemoryRateLimiter(100, 60*time.Second)))

	// Repositories
	userRepo := repository.NewUserRepository(db)
	pickupRepo := repository.NewPickupRepository(db)
	ledgerRepo := repository.NewLedgerRepository(db)
	payoutRepo := repository.NewPayoutRepository(db)
	cpRepo := repository.NewCollectionPointRepository(db)
	catalogRepo := repository.NewCatalogRepository(db)
	disposalRepo := repository.NewDisposalRepository(db)
	complianceRepo := repository.NewComplianceRepository(db)
	qrRepo := repository.NewQrRepository(db)
	smsRepo := repository.NewSmsRepository(db)
	statsRepo := repository.NewStatsRepository(db)

	hub := ws.NewHub()

	// Services
	authSvc := service.NewAuthService(cfg, userRepo)
	pickupSvc := service.NewPickupService(db)
	payoutSvc := service.NewPayoutService(db, &cfg.Settlement, disburse.SimulatedGateway{})
	notifier := service.NewNotifierService(smsRepo, userRepo, hub)

	// Handlers
	authHandler := handler.NewAuthHandler(authSvc)
	meHandler := handler.NewMeHandler(userRepo, ledgerRepo, payoutSvc)
	pickupHandler := handler.NewPickupHandler(pickupSvc, pickupRepo, notifier)
	userPayoutHandler := handler.NewPayoutHandler(domain.RoleUser, payoutSvc, payoutRepo)
	driverPayoutHandler := handler.NewPayoutHandler(domain.RoleDriver, payoutSvc, payoutRepo)
	cpHandler := handler.NewCollectionPointHandler(cpRepo)
	catalogHandler := handler.NewCatalogHandler(catalogRepo)
	disposalHandler := handler.NewDisposalHandler(disposalRepo, cpRepo)
	complianceHandler := handler.NewComplianceHandler(complianceRepo, disposalRepo)
	qrHandler := handler.NewQrHandler(qrRepo, pickupRepo)
	smsHandler := handler.NewSmsHandler(smsRepo)
	adminHandler := handler.NewAdminHandler(userRepo, statsRepo)
	bulkHandler := handler.NewBulkHandler(db, pickupRepo, userRepo, cpRepo, catalogRepo)

	authMw := middleware.AuthRequired(&cfg.JWT)
	adminMw := middleware.AdminRequired()

	api := r.Group("/api")
	{
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/refresh", authHandler.Refresh)
			authGroup.PATCH("/change-password", authMw, authHandler.ChangePassword)
		}

		me := api.Group("/me")
		me.Use(authMw)
		{
			me.GET("", meHandler.Get)
			me.PATCH("", meHandler.UpdateProfile)
			me.GET("/balance", meHandler.Balance)
			me.GET("/ledger", meHandler.Ledger)
		}

		pickups := api.Group("/pickups")
		pickups.Use(authMw)
		{
			pickups.POST("", middleware.RequireRole(domain.RoleUser, domain.RoleAdmin), pickupHandler.Create)
			pickups.GET("", pickupHandler.List)
			pickups.GET("/:id", pickupHandler.Get)
			pickups.PATCH("/:id", pickupHandler.Update)
			pickups.POST("/:id/take", middleware.RequireRole(domain.RoleDriver), pickupHandler.Take)
		}

		userPayments := api.Group("/user-payments")
		userPayments.Use(authMw)
		{
			userPayments.POST("", middleware.RequireRole(domain.RoleUser), userPayoutHandler.Create)
			userPayments.GET("", userPayoutHandler.List)
			userPayments.GET("/:id", userPayoutHandler.Get)
			userPayments.PATCH("/:id", adminMw, userPayoutHandler.Update)
		}
		driverPayments := api.Group("/driver-payments")
		driverPayments.Use(authMw)
		{
			driverPayments.POST("", middleware.RequireRole(domain.RoleDriver), driverPayoutHandler.Create)
			driverPayments.GET("", driverPayoutHandler.List)
			driverPayments.GET("/:id", driverPayoutHandler.Get)
			driverPayments.PATCH("/:id", adminMw, driverPayoutHandler.Update)
		}

		cps := api.Group("/collection-points")
		cps.Use(authMw)
		{
			cps.GET("", cpHandler.List)
			cps.GET("/nearby", cpHandler.Nearby)
			cps.GET("/:id", cpHandler.Get)
			cps.POST("", adminMw, cpHandler.Create)
			cps.PATCH("/:id", adminMw, cpHandler.Update)
			cps.DELETE("/:id", adminMw, cpHandler.Delete)
		}

		catalog := api.Group("/catalog")
		catalog.Use(authMw)
		{
			catalog.GET("", catalogHandler.List)
			catalog.GET("/:id", catalogHandler.Get)
			catalog.POST("", adminMw, catalogHandler.Create)
			catalog.PATCH("/:id", adminMw, catalogHandler.Update)
			catalog.DELETE("/:id", adminMw, catalogHandler.Delete)
		}

		disposals := api.Group("/disposals")
		disposals.Use(authMw)
		{
			disposals.GET("", disposalHandler.List)
			disposals.GET("/:id", disposalHandler.Get)
			disposals.POST("", adminMw, disposalHandler.Create)
			disposals.PATCH("/:id", adminMw, disposalHandler.Update)
			disposals.DELETE("/:id", adminMw, disposalHandler.Delete)
		}

		reports := api.Group("/compliance-reports")
		reports.Use(authMw, adminMw)
		{
			reports.GET("", complianceHandler.List)
			reports.GET("/:id", complianceHandler.Get)
			reports.POST("", complianceHandler.Generate)
			reports.PATCH("/:id", complianceHandler.Update)
			reports.DELETE("/:id", complianceHandler.Delete)
		}

		qr := api.Group("/qr")
		qr.Use(authMw)
		{
			qr.POST("", qrHandler.Create)
			qr.GET("/:code", qrHandler.Get)
			qr.POST("/:code/scan", qrHandler.Scan)
		}

		api.GET("/sms-logs", authMw, adminMw, smsHandler.List)

		admin := api.Group("/admin")
		admin.Use(authMw, adminMw)
		{
			admin.GET("/dashboard", adminHandler.Dashboard)
			admin.GET("/users", adminHandler.ListUsers)
			admin.POST("/users", adminHandler.CreateUser)
			admin.GET("/users/:id", adminHandler.GetUser)
			admin.PATCH("/users/:id", adminHandler.UpdateUser)
			admin.DELETE("/users/:id", adminHandler.DeleteUser)
		}

		api.GET("/bulk-export/:type", authMw, adminMw, bulkHandler.Export)
		api.POST("/bulk-import/:type", authMw, adminMw, bulkHandler.Import)
	}

	r.GET("/ws/pickups", ws.UpgradePickupWS(&cfg.JWT, hub))

	return r
}
