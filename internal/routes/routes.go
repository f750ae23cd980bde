package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/fadehouse/fadehouse-api/internal/audit"
	"github.com/fadehouse/fadehouse-api/internal/config"
	domain "github.com/fadehouse/fadehouse-api/internal/domain/schedule"
	"github.com/fadehouse/fadehouse-api/internal/handlers"
	infraRepo "github.com/fadehouse/fadehouse-api/internal/infra/repository"
	"github.com/fadehouse/fadehouse-api/internal/mail"
	"github.com/fadehouse/fadehouse-api/internal/middleware"
	"github.com/fadehouse/fadehouse-api/internal/session"
	"github.com/fadehouse/fadehouse-api/internal/storage"
	ucBarber "github.com/fadehouse/fadehouse-api/internal/usecase/barber"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)
	reconciler := domain.NewReconciler(scheduleRepo)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger)

	sessions := session.NewStore(cfg)
	photos := storage.NewPhotoStore(cfg)
	mailer := mail.NewClient(cfg)

	// ======================================================
	// USE CASES — BARBERS
	// ======================================================
	createBarberUC := ucBarber.NewCreateBarber(
		scheduleRepo,
		reconciler,
		auditDispatcher,
	)

	updateBarberUC := ucBarber.NewUpdateBarber(
		scheduleRepo,
		reconciler,
		auditDispatcher,
	)

	deleteBarberUC := ucBarber.NewDeleteBarber(
		scheduleRepo,
		auditDispatcher,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg, sessions)

	barberHandler := handlers.NewBarberHandler(
		scheduleRepo,
		photos,
		createBarberUC,
		updateBarberUC,
		deleteBarberUC,
	)

	scheduleHandler := handlers.NewScheduleHandler(scheduleRepo, reconciler)
	testimonialHandler := handlers.NewTestimonialHandler(db, auditDispatcher)
	publicHandler := handlers.NewPublicHandler(db, scheduleRepo)
	emailHandler := handlers.NewEmailHandler(mailer)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/team", publicHandler.Team)
			publicAPI.GET("/testimonials", publicHandler.Testimonials)
		}

		// ------------------------------
		// EMAIL DISPATCH
		// ------------------------------
		api.POST("/emails/confirmation", emailHandler.SendConfirmation)

		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.AuthMiddleware(cfg, sessions))
		{
			admin.POST("/logout", authHandler.Logout)
			admin.GET("/me", authHandler.Me)

			admin.GET("/barbers", barberHandler.List)
			admin.POST("/barbers", barberHandler.Create)
			admin.PATCH("/barbers/:id", barberHandler.Update)
			admin.DELETE("/barbers/:id", barberHandler.Delete)
			admin.POST("/barbers/:id/photo", barberHandler.UploadPhoto)

			admin.GET("/barbers/:id/schedule", scheduleHandler.Get)
			admin.PUT("/barbers/:id/schedule", scheduleHandler.Manage)
			admin.GET("/schedule/defaults", scheduleHandler.Defaults)
			admin.GET("/schedule/time-options", scheduleHandler.TimeOptions)

			admin.GET("/testimonials", testimonialHandler.List)
			admin.POST("/testimonials", testimonialHandler.Create)
			admin.PATCH("/testimonials/:id", testimonialHandler.Update)
			admin.DELETE("/testimonials/:id", testimonialHandler.Delete)
		}
	}
}
