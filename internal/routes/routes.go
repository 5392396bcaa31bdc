package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/NovaSalonTech/salon-scheduler/internal/audit"
	"github.com/NovaSalonTech/salon-scheduler/internal/config"
	"github.com/NovaSalonTech/salon-scheduler/internal/handlers"
	infraRepo "github.com/NovaSalonTech/salon-scheduler/internal/infra/repository"
	"github.com/NovaSalonTech/salon-scheduler/internal/middleware"
	"github.com/NovaSalonTech/salon-scheduler/internal/payments"
	"github.com/NovaSalonTech/salon-scheduler/internal/roles"
	"github.com/NovaSalonTech/salon-scheduler/internal/session"
	"github.com/NovaSalonTech/salon-scheduler/internal/storage"
	ucAppointment "github.com/NovaSalonTech/salon-scheduler/internal/usecase/appointment"
	ucDashboard "github.com/NovaSalonTech/salon-scheduler/internal/usecase/dashboard"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, sessions *session.Store) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	dashboardRepo := infraRepo.NewDashboardGormRepository(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	loc := cfg.Location()

	var charger payments.Charger
	if cfg.MPAccessToken != "" {
		mp, err := payments.NewMercadoPago(cfg.MPAccessToken)
		if err != nil {
			log.Printf("mercado pago disabled: %v", err)
		} else {
			charger = mp
		}
	}

	photoStore := storage.NewPhotoStore(cfg)

	// ======================================================
	// USE CASES
	// ======================================================
	availabilityUC := ucAppointment.NewGetAvailability(
		appointmentRepo,
		cfg.SlotStep(),
		cfg.MinLead(),
		loc,
	)

	bookUC := ucAppointment.NewBook(
		appointmentRepo,
		charger,
		auditDispatcher,
		loc,
		cfg.MinLead(),
		cfg.PaymentCurrency,
	)

	createStaffUC := ucAppointment.NewCreateStaff(appointmentRepo, auditDispatcher, loc)
	walkInUC := ucAppointment.NewWalkIn(appointmentRepo, auditDispatcher, loc)
	updateStatusUC := ucAppointment.NewUpdateStatus(appointmentRepo, auditDispatcher, loc)
	cancelUC := ucAppointment.NewCancel(appointmentRepo, auditDispatcher, loc)
	listByDateUC := ucAppointment.NewListByDate(appointmentRepo, loc)
	listByMonthUC := ucAppointment.NewListByMonth(appointmentRepo, loc)

	dashboardSvc := ucDashboard.NewService(dashboardRepo, loc)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, sessions)
	meHandler := handlers.NewMeHandler(db)
	userHandler := handlers.NewUserHandler(db)
	serviceHandler := handlers.NewServiceHandler(db, photoStore)
	stylistHandler := handlers.NewStylistHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)
	dashboardHandler := handlers.NewDashboardHandler(dashboardSvc)

	appointmentHandler := handlers.NewAppointmentHandler(
		availabilityUC,
		bookUC,
		createStaffUC,
		walkInUC,
		updateStatusUC,
		cancelUC,
		listByDateUC,
		listByMonthUC,
		loc,
	)

	// ======================================================
	// PUBLIC
	// ======================================================
	r.POST("/auth/register", authHandler.Register)
	r.POST("/auth/login", authHandler.Login)

	r.GET("/services", serviceHandler.List)
	r.GET("/stylists", stylistHandler.List)
	r.GET("/appointments/availability", appointmentHandler.Availability)

	// ======================================================
	// AUTHENTICATED
	// ======================================================
	secured := r.Group("/")
	secured.Use(middleware.AuthMiddleware(cfg, sessions))
	{
		secured.POST("/auth/logout", authHandler.Logout)
		secured.GET("/me", meHandler.GetMe)
		secured.GET("/dashboard", dashboardHandler.Get)

		// ------------------------------
		// APPOINTMENTS
		// ------------------------------
		secured.POST("/appointments/book",
			middleware.RequireRoles(roles.Client),
			appointmentHandler.Book,
		)

		desk := secured.Group("/appointments")
		desk.Use(middleware.RequireRoles(roles.Admin, roles.Receptionist))
		{
			desk.POST("/", appointmentHandler.Create)
			desk.POST("/walk-in", appointmentHandler.WalkIn)
		}

		// Everyone authenticated may hit these; per-appointment authorization
		// happens in the use case.
		secured.PATCH("/appointments/:id/status", appointmentHandler.UpdateStatus)
		secured.DELETE("/appointments/:id", appointmentHandler.Cancel)

		calendar := secured.Group("/appointments")
		calendar.Use(middleware.RequireRoles(roles.Admin, roles.Receptionist, roles.Stylist))
		{
			calendar.GET("/", appointmentHandler.ListByDate)
			calendar.GET("/month", appointmentHandler.ListByMonth)
		}

		// ------------------------------
		// CATALOG (admin)
		// ------------------------------
		catalog := secured.Group("/services")
		catalog.Use(middleware.RequireRoles(roles.Admin))
		{
			catalog.POST("/", serviceHandler.Create)
			catalog.PATCH("/:id", serviceHandler.Update)
			catalog.DELETE("/:id", serviceHandler.Delete)
			catalog.POST("/:id/photo", serviceHandler.UploadPhoto)
		}

		// ------------------------------
		// STYLIST CALENDARS
		// ------------------------------
		schedule := secured.Group("/stylists")
		schedule.Use(middleware.RequireRoles(roles.Admin, roles.Receptionist, roles.Stylist))
		{
			schedule.GET("/:id/working-hours", stylistHandler.GetWorkingHours)
			schedule.PUT("/:id/working-hours", stylistHandler.UpdateWorkingHours)
			schedule.GET("/:id/blocked", stylistHandler.ListBlockedIntervals)
			schedule.POST("/:id/blocked", stylistHandler.CreateBlockedInterval)
			schedule.DELETE("/:id/blocked/:blockedID", stylistHandler.DeleteBlockedInterval)
		}

		// ------------------------------
		// ADMIN
		// ------------------------------
		adminOnly := secured.Group("/")
		adminOnly.Use(middleware.RequireRoles(roles.Admin))
		{
			adminOnly.GET("/users", userHandler.List)
			adminOnly.POST("/users", userHandler.Create)
			adminOnly.PATCH("/users/:id", userHandler.Update)

			adminOnly.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
