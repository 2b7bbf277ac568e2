// File: hopehealth/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hopehealth/clients"
	"hopehealth/config"
	"hopehealth/database"
	auditRepo "hopehealth/database/repository/audit"
	"hopehealth/handlers"
	"hopehealth/middleware"
	"hopehealth/routes"
	"hopehealth/services/audit"
	"hopehealth/services/session"
	"hopehealth/services/workflow"
	"hopehealth/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	cfg := config.AppConfig

	database.InitDB()
	utils.InitSessionStore()
	utils.InitDraftStore()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Stores.
	tokenStore := session.NewRedisTokenStore(utils.GetSessionClient())
	draftStore := workflow.NewRedisDraftStore(utils.GetDraftClient())

	// Outbound clients. All backend clients read their bearer token from
	// the session token store.
	identityClient := clients.NewIdentityClient(cfg.IdpTokenURL, cfg.IdpClientID)
	userClient := clients.NewUserClient(cfg.UserAPIURL, tokenStore)
	patientClient := clients.NewPatientClient(cfg.PatientAPIURL, tokenStore)
	doctorClient := clients.NewDoctorClient(cfg.DoctorAPIURL, tokenStore)
	bookingClient := clients.NewBookingClient(cfg.BookingAPIURL, tokenStore)
	availabilityClient := clients.NewAvailabilityClient(cfg.AvailabilityAPIURL, tokenStore)
	specializationClient := clients.NewSpecializationClient(cfg.SpecializationAPIURL, tokenStore)
	hospitalClient := clients.NewHospitalClient(cfg.HospitalAPIURL, tokenStore)
	newsClient := clients.NewNewsClient(cfg.NewsAPIURL, tokenStore)
	healthPackageClient := clients.NewHealthPackageClient(cfg.HealthPackageAPIURL, tokenStore)

	// Services.
	auditService := &audit.DefaultAuditService{
		Repo: auditRepo.NewMongoAuditRepo(),
	}

	sessionService := &session.DefaultSessionService{
		Identity:        identityClient,
		Users:           userClient,
		Store:           tokenStore,
		Audit:           auditService,
		RefreshInterval: time.Duration(cfg.TokenRefreshInterval) * time.Second,
		LogoutDelay:     2 * time.Second,
	}

	workflowService := &workflow.DefaultWorkflowService{
		Doctors:      doctorClient,
		Bookings:     bookingClient,
		Availability: availabilityClient,
		Drafts:       draftStore,
		Audit:        auditService,
	}

	// A session surviving a restart picks its refresh cycle back up.
	if sessionService.IsAuthenticated() {
		sessionService.StartRefreshCycle()
	}

	handlerBundle := &handlers.HandlerBundle{
		Sessions: sessionService,
		Workflow: workflowService,
		Audit:    auditService,

		Users:          userClient,
		Patients:       patientClient,
		Doctors:        doctorClient,
		Bookings:       bookingClient,
		Availability:   availabilityClient,
		Specialization: specializationClient,
		Hospitals:      hospitalClient,
		News:           newsClient,
		HealthPackages: healthPackageClient,
	}

	routes.RegisterRoutes(router, handlerBundle)

	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetSessionClient(), utils.GetDraftClient()},
		database.MongoClient,
	)

	// Start the HTTP server.
	port := cfg.AppPort
	if port == "" {
		port = "8085"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	sessionService.StopRefreshCycle()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
