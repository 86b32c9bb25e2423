package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/medisuite/hospital-api/internal/config"
	"github.com/medisuite/hospital-api/internal/email"
	"github.com/medisuite/hospital-api/internal/handler"
	appointmentHandler "github.com/medisuite/hospital-api/internal/handler/appointment"
	authHandler "github.com/medisuite/hospital-api/internal/handler/auth"
	billingHandler "github.com/medisuite/hospital-api/internal/handler/billing"
	dashboardHandler "github.com/medisuite/hospital-api/internal/handler/dashboard"
	doctorHandler "github.com/medisuite/hospital-api/internal/handler/doctor"
	patientHandler "github.com/medisuite/hospital-api/internal/handler/patient"
	"github.com/medisuite/hospital-api/internal/middleware"
	"github.com/medisuite/hospital-api/internal/repository/postgres"
	"github.com/medisuite/hospital-api/internal/router"
	appointmentService "github.com/medisuite/hospital-api/internal/service/appointment"
	authService "github.com/medisuite/hospital-api/internal/service/auth"
	billingService "github.com/medisuite/hospital-api/internal/service/billing"
	doctorService "github.com/medisuite/hospital-api/internal/service/doctor"
	patientService "github.com/medisuite/hospital-api/internal/service/patient"
	reportService "github.com/medisuite/hospital-api/internal/service/report"
	"github.com/medisuite/hospital-api/internal/session"
	"github.com/medisuite/hospital-api/pkg/auth"
	"github.com/medisuite/hospital-api/pkg/logger"
	"github.com/medisuite/hospital-api/pkg/metrics"
	"github.com/medisuite/hospital-api/pkg/security"
	"github.com/medisuite/hospital-api/pkg/validator"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	lg := logger.NewLogger(&logger.Config{
		Level:      logger.ParseLevel(cfg.Log.Level),
		TimeFormat: time.RFC3339,
		Pretty:     cfg.Log.Pretty,
	})
	log.Logger = *lg.Zerolog()

	if err := validator.RegisterEnums(); err != nil {
		log.Fatal().Err(err).Msg("failed to register validators")
	}

	db, err := postgres.NewDB(cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database, verify it is running")
	}
	defer db.Close()

	// Session store is optional; without Redis, logout relies on token expiry.
	var sessions session.Store
	if cfg.Redis.URL != "" {
		sessions, err = session.NewRedisStore(cfg.Redis.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to Redis")
		}
	}

	// Repositories
	patientRepo := postgres.NewPatientRepository(db)
	doctorRepo := postgres.NewDoctorRepository(db)
	appointmentRepo := postgres.NewAppointmentRepository(db)
	billRepo := postgres.NewBillRepository(db)
	userRepo := postgres.NewUserRepository(db)

	// Services
	m := metrics.NewMetrics("hospital_api")
	jwtSvc := auth.NewJWTService(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryHours)*time.Hour)
	hasher := security.NewBcryptHasher(10)
	mailer := email.NewService(cfg.SMTP)

	patientSvc := patientService.NewService(patientRepo)
	doctorSvc := doctorService.NewService(doctorRepo)
	appointmentSvc := appointmentService.NewService(appointmentRepo, patientRepo, doctorRepo)
	billingSvc := billingService.NewService(billRepo, patientRepo, mailer, m)
	reportSvc := reportService.NewService(patientRepo, doctorRepo, appointmentRepo, billRepo)
	authSvc := authService.NewService(userRepo, jwtSvc, hasher, sessions)

	// Handlers
	h := handler.NewHandler(db)
	authH := authHandler.NewHandler(authSvc)
	patientH := patientHandler.NewHandler(patientSvc)
	doctorH := doctorHandler.NewHandler(doctorSvc)
	appointmentH := appointmentHandler.NewHandler(appointmentSvc)
	billingH := billingHandler.NewHandler(billingSvc)
	dashboardH := dashboardHandler.NewHandler(reportSvc)

	authMiddleware := middleware.NewAuthMiddleware(authSvc)

	r := router.NewRouter(
		authMiddleware,
		authH,
		patientH,
		doctorH,
		appointmentH,
		billingH,
		dashboardH,
		h,
		m,
		router.Config{
			RateLimit:  rate.Limit(cfg.Server.RateLimitRPS),
			RateBurst:  cfg.Server.RateLimitBurst,
			CORSConfig: middleware.DefaultCORSConfig(),
			Timeout:    time.Duration(cfg.Server.TimeoutSeconds) * time.Second,
		},
	)
	r.Setup()

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: r.Engine(),
	}

	go func() {
		log.Info().Int("port", cfg.Server.Port).Msg("starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited properly")
}
