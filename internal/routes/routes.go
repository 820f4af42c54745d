package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	domainAppointment "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	domainCustomer "github.com/BruksfildServices01/salon-scheduler/internal/domain/customer"
	domainPayment "github.com/BruksfildServices01/salon-scheduler/internal/domain/payment"
	"github.com/BruksfildServices01/salon-scheduler/internal/handlers"
	infraRepo "github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/metrics"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
	ucCalendar "github.com/BruksfildServices01/salon-scheduler/internal/usecase/calendar"
	ucCustomer "github.com/BruksfildServices01/salon-scheduler/internal/usecase/customer"
	ucHours "github.com/BruksfildServices01/salon-scheduler/internal/usecase/hours"
	ucPayment "github.com/BruksfildServices01/salon-scheduler/internal/usecase/payment"
)

// Deps are the process-wide singletons built in main. Objects and Gateway
// may be nil when storage or payments are not configured.
type Deps struct {
	DB      *gorm.DB
	Config  *config.Config
	Log     *zap.Logger
	Metrics *metrics.Metrics
	Audit   *audit.Dispatcher
	Locker  domainAppointment.Locker
	Objects domainCustomer.ObjectStore
	Gateway domainPayment.Gateway
}

func RegisterRoutes(r *gin.Engine, d Deps) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(
		middleware.RequestID(),
		middleware.Logger(d.Log),
		middleware.CORSMiddleware(d.Config.Server.CORSOrigins),
	)
	if d.Metrics != nil {
		r.Use(middleware.Metrics(d.Metrics))
	}

	// ======================================================
	// INFRA
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(d.DB)
	hoursRepo := infraRepo.NewHoursGormRepository(d.DB)
	customerRepo := infraRepo.NewCustomerGormRepository(d.DB)
	paymentRepo := infraRepo.NewPaymentGormRepository(d.DB)

	// ======================================================
	// USE CASES
	// ======================================================
	availabilityUC := ucAppointment.NewGetAvailability(appointmentRepo, d.Metrics)
	createAppointmentUC := ucAppointment.NewCreatePrivateAppointment(
		appointmentRepo,
		d.Locker,
		d.Audit,
		d.Log,
	)
	cancelAppointmentUC := ucAppointment.NewCancelAppointment(appointmentRepo, d.Audit)
	completeAppointmentUC := ucAppointment.NewCompleteAppointment(appointmentRepo, d.Audit)
	listAppointmentsUC := ucAppointment.NewListAppointments(appointmentRepo)

	weekUC := ucHours.NewWeek(hoursRepo, d.Audit)

	customersUC := ucCustomer.NewCustomers(customerRepo, d.Audit)
	importUC := ucCustomer.NewImport(customerRepo, d.Objects, d.Audit, d.Log)

	chargeUC := ucPayment.NewCharge(paymentRepo, d.Gateway, d.Locker, d.Audit, d.Log)

	feedUC := ucCalendar.NewFeed(listAppointmentsUC, appointmentRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	meHandler := handlers.NewMeHandler(d.DB)
	businessHandler := handlers.NewBusinessHandler(d.DB, d.Audit)
	serviceHandler := handlers.NewServiceHandler(d.DB)
	customerHandler := handlers.NewCustomerHandler(customersUC, importUC)
	workingHoursHandler := handlers.NewWorkingHoursHandler(weekUC)
	calendarHandler := handlers.NewCalendarHandler(feedUC)
	auditLogsHandler := handlers.NewAuditLogsHandler(audit.NewStore(d.DB))

	appointmentHandler := handlers.NewAppointmentHandler(
		availabilityUC,
		createAppointmentUC,
		cancelAppointmentUC,
		completeAppointmentUC,
		listAppointmentsUC,
		chargeUC,
	)

	publicHandler := handlers.NewPublicHandler(d.DB, availabilityUC, createAppointmentUC)

	// ======================================================
	// API
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// public
		// ------------------------------
		limiter := middleware.NewIPLimiter(d.Config.RateLimit)

		publicAPI := api.Group("/public")
		publicAPI.Use(middleware.RateLimit(limiter, d.Log))
		{
			publicAPI.GET("/:slug/products", publicHandler.ListServices)
			publicAPI.GET("/:slug/availability", publicHandler.Availability)
			publicAPI.POST("/:slug/appointments", publicHandler.CreateAppointment)
		}

		// ------------------------------
		// private
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(d.Config.Auth))
		{
			secured.GET("/me", meHandler.GetMe)

			secured.GET("/me/business", businessHandler.Get)
			secured.PATCH("/me/business", businessHandler.Update)
			secured.PATCH("/me/rest-time", businessHandler.UpdateRestTime)

			secured.GET("/me/clients", customerHandler.List)
			secured.POST("/me/clients/import", customerHandler.Import)
			secured.POST("/me/clients/:id/loyalty/redeem", customerHandler.Redeem)

			secured.GET("/me/products", serviceHandler.List)
			secured.POST("/me/products", serviceHandler.Create)
			secured.PATCH("/me/products/:id", serviceHandler.Update)

			secured.GET("/me/working-hours", workingHoursHandler.Get)
			secured.PUT("/me/working-hours", workingHoursHandler.Update)

			secured.GET("/me/special-dates", workingHoursHandler.ListSpecialDates)
			secured.PUT("/me/special-dates", workingHoursHandler.UpsertSpecialDate)
			secured.DELETE("/me/special-dates/:date", workingHoursHandler.DeleteSpecialDate)

			secured.GET("/me/availability", appointmentHandler.Availability)

			// ------------------------------
			// appointments
			// ------------------------------
			secured.POST("/me/appointments", appointmentHandler.Create)
			secured.GET("/me/appointments", appointmentHandler.ListByDate)
			secured.GET("/me/appointments/month", appointmentHandler.ListByMonth)
			secured.PATCH("/me/appointments/:id/cancel", appointmentHandler.Cancel)
			secured.PATCH("/me/appointments/:id/complete", appointmentHandler.Complete)
			secured.POST("/me/appointments/:id/charge", appointmentHandler.Charge)

			secured.GET("/me/calendar.ics", calendarHandler.ICS)

			secured.GET("/me/audit-logs", auditLogsHandler.List)
		}
	}
}
