package routes

import (
	"net/http"
	"time"

	"hopehealth/handlers"
	"hopehealth/middleware"
	"hopehealth/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterSessionRoutes registers the admin session endpoints. Login is the
// only unauthenticated entry point.
func RegisterSessionRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/session")
	{
		api.POST("/login", hb.LoginHandler)
		api.GET("/state", hb.SessionStateHandler)

		api.Use(middleware.SessionGuard(hb.Sessions))
		api.POST("/logout", hb.LogoutHandler)
		api.POST("/refresh", hb.RefreshHandler)
	}
}

// RegisterWorkflowRoutes registers the staged booking workflow endpoints.
func RegisterWorkflowRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/workflow")
	{
		api.Use(middleware.SessionGuard(hb.Sessions))
		api.POST("/drafts", hb.CreateDraftHandler)
		api.GET("/drafts/:draftID", hb.GetDraftHandler)
		api.PUT("/drafts/:draftID/patient", hb.SelectPatientHandler)
		api.PUT("/drafts/:draftID/specialization", hb.SelectSpecializationHandler)
		api.PUT("/drafts/:draftID/doctor", hb.SelectDoctorHandler)
		api.PUT("/drafts/:draftID/date", hb.SelectDateHandler)
		api.PUT("/drafts/:draftID/time", hb.SelectTimeHandler)
		api.PUT("/drafts/:draftID/reason", hb.SetReasonHandler)
		api.POST("/drafts/:draftID/submit", hb.SubmitDraftHandler)
		api.DELETE("/drafts/:draftID", hb.CancelDraftHandler)
	}
}

// RegisterPatientRoutes registers patient search, registration and stats.
func RegisterPatientRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/patients")
	{
		api.Use(middleware.SessionGuard(hb.Sessions))
		api.GET("", hb.FindAllPatientsHandler)
		api.POST("/register", hb.RegisterPatientHandler)
		api.GET("/stats/monthly", hb.MonthlyPatientStatsHandler)
		api.GET("/stats/daily", hb.DailyPatientStatsHandler)
	}
}

// RegisterDoctorRoutes registers doctor management and availability.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/doctors")
	{
		api.Use(middleware.SessionGuard(hb.Sessions))
		api.GET("", hb.FindAllDoctorsHandler)
		api.GET("/by-specialization", hb.DoctorsBySpecializationHandler)
		api.POST("/register", hb.RegisterDoctorHandler)
		api.PUT("/:doctorID", hb.UpdateDoctorHandler)
		api.DELETE("/:doctorID", hb.DeleteDoctorHandler)
		api.GET("/:doctorID/available-dates", hb.DoctorAvailableDatesHandler)
		api.GET("/:doctorID/slots", hb.DoctorSlotsHandler)
		api.POST("/availabilities", hb.SaveAvailabilitiesHandler)
	}
}

// RegisterAppointmentRoutes registers appointment listing and lifecycle.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.Use(middleware.SessionGuard(hb.Sessions))
		api.GET("", hb.FindAllBookingsHandler)
		api.PUT("/:bookingID/status", hb.UpdateBookingStatusHandler)
		api.PUT("/:bookingID/payment-status", hb.UpdatePaymentStatusHandler)
		api.DELETE("/:bookingID", hb.DeleteBookingHandler)
		api.GET("/stats/daily", hb.DailyBookingStatsHandler)
	}
}

// RegisterDirectoryRoutes registers specializations, hospitals and news.
func RegisterDirectoryRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/directory")
	{
		api.Use(middleware.SessionGuard(hb.Sessions))
		api.GET("/specializations", hb.FindAllSpecializationsHandler)
		api.POST("/specializations", hb.CreateSpecializationHandler)
		api.GET("/hospitals", hb.FindAllHospitalsHandler)
		api.POST("/hospitals", hb.SaveHospitalHandler)
		api.POST("/news", hb.CreateNewsHandler)
	}
}

// RegisterCheckupRoutes registers health-package management.
func RegisterCheckupRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/checkups")
	{
		api.Use(middleware.SessionGuard(hb.Sessions))
		api.GET("", hb.GetAllHealthPackagesHandler)
		api.POST("", hb.CreateHealthPackageHandler)
		api.DELETE("/:packageID", hb.DeleteHealthPackageHandler)
	}
}

// RegisterUserRoutes registers account maintenance endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.Use(middleware.SessionGuard(hb.Sessions))
		api.PUT("/:userID", hb.UpdateUserHandler)
		api.PUT("/:userID/password", hb.UpdatePasswordHandler)
		api.PUT("/:userID/email", hb.UpdateEmailHandler)
		api.DELETE("/:userID", hb.DeleteUserHandler)
	}
}

// RegisterAuditRoutes registers the audit trail listing.
func RegisterAuditRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/audit")
	{
		api.Use(middleware.SessionGuard(hb.Sessions))
		api.GET("", hb.ListAuditEntriesHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "dependencies": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterSessionRoutes(r, hb)
	RegisterWorkflowRoutes(r, hb)
	RegisterPatientRoutes(r, hb)
	RegisterDoctorRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterDirectoryRoutes(r, hb)
	RegisterCheckupRoutes(r, hb)
	RegisterUserRoutes(r, hb)
	RegisterAuditRoutes(r, hb)
	RegisterHealthRoute(r)
}
