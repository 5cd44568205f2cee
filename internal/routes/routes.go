package routes

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/pro-booking/internal/audit"
	"github.com/BruksfildServices01/pro-booking/internal/config"
	domain "github.com/BruksfildServices01/pro-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/pro-booking/internal/geo"
	"github.com/BruksfildServices01/pro-booking/internal/handlers"
	"github.com/BruksfildServices01/pro-booking/internal/infra/lock"
	infraRepo "github.com/BruksfildServices01/pro-booking/internal/infra/repository"
	"github.com/BruksfildServices01/pro-booking/internal/infra/storage"
	"github.com/BruksfildServices01/pro-booking/internal/metrics"
	"github.com/BruksfildServices01/pro-booking/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/pro-booking/internal/usecase/appointment"
	ucCatalog "github.com/BruksfildServices01/pro-booking/internal/usecase/catalog"
	ucPortfolio "github.com/BruksfildServices01/pro-booking/internal/usecase/portfolio"
	ucProfessional "github.com/BruksfildServices01/pro-booking/internal/usecase/professional"
	ucReview "github.com/BruksfildServices01/pro-booking/internal/usecase/review"
	ucSchedule "github.com/BruksfildServices01/pro-booking/internal/usecase/schedule"
	ucSearch "github.com/BruksfildServices01/pro-booking/internal/usecase/search"
)

// Infra reúne os singletons criados no main.
type Infra struct {
	Log      *slog.Logger
	Location *time.Location
	Locker   lock.Locker
	Audit    *audit.Dispatcher
	Metrics  *metrics.Metrics
	GeoIndex *geo.Index
	Images   storage.ImageResolver
}

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, infra Infra) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestIDMiddleware(),
		middleware.LoggerMiddleware(infra.Log),
		middleware.MetricsMiddleware(infra.Metrics),
		middleware.CORSMiddleware(cfg.CORSAllowedOrigins),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	if cfg.MetricsEnabled {
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	// ======================================================
	// REPOSITÓRIOS
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)
	catalogRepo := infraRepo.NewCatalogGormRepository(db)
	professionalRepo := infraRepo.NewProfessionalGormRepository(db)
	reviewRepo := infraRepo.NewReviewGormRepository(db)
	workingHoursRepo := infraRepo.NewWorkingHoursGormRepository(db)
	portfolioRepo := infraRepo.NewPortfolioGormRepository(db)
	categoryRepo := infraRepo.NewCategoryGormRepository(db)

	loc := infra.Location

	// ======================================================
	// USE CASES
	// ======================================================
	resolveServiceUC := ucCatalog.NewResolveService(catalogRepo)
	listServicesUC := ucCatalog.NewListServices(catalogRepo)
	replaceServicesUC := ucCatalog.NewReplaceServices(catalogRepo, infra.Audit)
	listCategoriesUC := ucCatalog.NewListCategories(categoryRepo)

	availabilityUC := ucAppointment.NewGetAvailability(appointmentRepo, loc, cfg.SlotGranularityMinutes)
	createAppointmentUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		resolveServiceUC,
		infra.Locker,
		infra.Audit,
		infra.Metrics,
		infra.Log,
		loc,
	)
	cancelAppointmentUC := ucAppointment.NewCancelAppointment(appointmentRepo, infra.Audit, infra.Metrics, loc)
	confirmAppointmentUC := ucAppointment.NewConfirmAppointment(appointmentRepo, infra.Audit, infra.Metrics, loc)
	completeAppointmentUC := ucAppointment.NewCompleteAppointment(appointmentRepo, infra.Audit, infra.Metrics, loc)
	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo, loc)

	pauseUC := ucProfessional.NewPauseProfessional(professionalRepo, infra.Audit, loc)
	unpauseUC := ucProfessional.NewUnpauseProfessional(professionalRepo, infra.Audit)
	locationUC := ucProfessional.NewUpdateLocation(professionalRepo, infra.GeoIndex)
	publicProfileUC := ucProfessional.NewGetPublicProfile(professionalRepo, infra.Images, infra.Log, loc)

	searchUC := ucSearch.NewSearchProfessionals(
		professionalRepo,
		infra.GeoIndex,
		infra.Images,
		infra.Log,
		cfg.DefaultSearchRadiusKm,
		loc,
	)
	nearbyUC := ucSearch.NewNearbyProfessionals(
		professionalRepo,
		infra.GeoIndex,
		infra.Images,
		infra.Log,
		cfg.DefaultSearchRadiusKm,
		loc,
	)

	createReviewUC := ucReview.NewCreateReview(reviewRepo, infra.Audit)
	listReviewsUC := ucReview.NewListReviews(reviewRepo)

	getWorkingHoursUC := ucSchedule.NewGetWorkingHours(workingHoursRepo)
	replaceWorkingHoursUC := ucSchedule.NewReplaceWorkingHours(workingHoursRepo, infra.Audit)

	listAlbumsUC := ucPortfolio.NewListAlbums(portfolioRepo, infra.Images)

	// ======================================================
	// HANDLERS
	// ======================================================
	publicHandler := handlers.NewPublicHandler(
		availabilityUC,
		searchUC,
		nearbyUC,
		publicProfileUC,
		listCategoriesUC,
		resolveServiceUC,
		listServicesUC,
		listReviewsUC,
		listAlbumsUC,
	)

	appointmentHandler := handlers.NewAppointmentHandler(
		createAppointmentUC,
		cancelAppointmentUC,
		confirmAppointmentUC,
		completeAppointmentUC,
		listAppointmentsUC,
	)

	professionalHandler := handlers.NewProfessionalHandler(professionalRepo, pauseUC, unpauseUC, locationUC)
	workingHoursHandler := handlers.NewWorkingHoursHandler(getWorkingHoursUC, replaceWorkingHoursUC)
	servicesHandler := handlers.NewServicesHandler(listServicesUC, replaceServicesUC)
	reviewHandler := handlers.NewReviewHandler(createReviewUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(db, loc)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// API PÚBLICA
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/search", publicHandler.Search)
			publicAPI.GET("/categories", publicHandler.ListCategories)
			publicAPI.GET("/professionals/nearby", publicHandler.Nearby)
			publicAPI.GET("/professionals/:id", publicHandler.Profile)
			publicAPI.GET("/professionals/:id/availability", publicHandler.Availability)
			publicAPI.GET("/professionals/:id/services", publicHandler.ListServices)
			publicAPI.GET("/professionals/:id/services/resolve", publicHandler.ResolveService)
			publicAPI.GET("/professionals/:id/reviews", publicHandler.ListReviews)
			publicAPI.GET("/professionals/:id/albums", publicHandler.ListAlbums)
		}

		// ------------------------------
		// AUTENTICADO (cliente ou profissional)
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)
		}

		// ------------------------------
		// CLIENTE
		// ------------------------------
		customer := api.Group("/")
		customer.Use(middleware.AuthMiddleware(cfg), middleware.RequireRole(domain.RoleCustomer))
		{
			customer.POST("/appointments", appointmentHandler.Create)
			customer.GET("/appointments/mine", appointmentHandler.ListMine)
			customer.POST("/reviews", reviewHandler.Create)
		}

		// ------------------------------
		// PROFISSIONAL
		// ------------------------------
		me := api.Group("/me")
		me.Use(middleware.AuthMiddleware(cfg), middleware.RequireRole(domain.RoleProfessional))
		{
			me.GET("", professionalHandler.GetMe)
			me.POST("/pause", professionalHandler.Pause)
			me.POST("/unpause", professionalHandler.Unpause)
			me.PUT("/location", professionalHandler.UpdateLocation)

			me.GET("/working-hours", workingHoursHandler.Get)
			me.PUT("/working-hours", workingHoursHandler.Update)

			me.GET("/services", servicesHandler.List)
			me.PUT("/services", servicesHandler.Replace)

			me.GET("/appointments", appointmentHandler.ListByDate)
			me.GET("/appointments/upcoming", appointmentHandler.ListUpcoming)
			me.PATCH("/appointments/:id/confirm", appointmentHandler.Confirm)
			me.PATCH("/appointments/:id/complete", appointmentHandler.Complete)

			me.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
