package main

import (
	"context"
	"database/sql"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"nazaaralive/config"
	_ "nazaaralive/docs"
	"nazaaralive/internal/adapters/auth"
	"nazaaralive/internal/adapters/cache"
	"nazaaralive/internal/adapters/email"
	"nazaaralive/internal/adapters/geoip"
	"nazaaralive/internal/adapters/storage"
	apphttp "nazaaralive/internal/delivery/http"
	"nazaaralive/internal/delivery/http/controllers"
	"nazaaralive/internal/delivery/http/middleware"
	"nazaaralive/internal/repository/postgres"
	"nazaaralive/internal/services"
)

const (
	serviceTimeout  = 5 * time.Second
	shutdownTimeout = 10 * time.Second
)

// @title Nazaara Live API
// @version 1.0
// @description Backend for the Nazaara Live site and its admin back office.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger := config.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if cfg.JWTSecret == "" {
		logger.Error("JWT_SECRET is required")
		os.Exit(1)
	}

	db, err := sql.Open("postgres", cfg.DBUrl)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()
	if err := db.Ping(); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	settingsCache := cache.NewNoop()
	if cfg.RedisAddr != "" {
		c, err := cache.NewRedisSettingsCache(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			logger.Warn("redis unavailable, running without settings cache", "error", err)
		} else {
			settingsCache = c
		}
	}

	imageStore, err := storage.NewMinIOStore(ctx, storage.MinIOConfig{
		Endpoint:  cfg.MinIOEndpoint,
		AccessKey: cfg.MinIOAccessKey,
		SecretKey: cfg.MinIOSecretKey,
		Bucket:    cfg.MinIOBucket,
		UseSSL:    cfg.MinIOUseSSL,
		PublicURL: cfg.MinIOPublicURL,
	})
	if err != nil {
		logger.Error("failed to initialize image store", "error", err)
		os.Exit(1)
	}

	mailerProvider := "noop"
	if cfg.SESAccessKey != "" {
		mailerProvider = "ses"
	}
	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    mailerProvider,
		FromAddress: cfg.SESSender,
		FromName:    "Nazaara Live",
		SES: email.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.SESAccessKey,
			SecretAccessKey: cfg.SESSecretKey,
		},
	})
	if err != nil {
		logger.Error("failed to initialize mailer", "error", err)
		os.Exit(1)
	}

	// Repositories
	eventRepo := postgres.NewEventRepository(db)
	venueRepo := postgres.NewVenueRepository(db)
	artistRepo := postgres.NewArtistRepository(db)
	djRepo := postgres.NewDJRepository(db)
	galleryRepo := postgres.NewGalleryRepository(db)
	bookingRepo := postgres.NewBookingRepository(db)
	settingsRepo := postgres.NewSettingsRepository(db)
	userRepo := postgres.NewUserRepository(db)

	// Services
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer(), logger)
	settingsService := services.NewSettingsService(settingsRepo, settingsCache, logger, serviceTimeout)
	eventService := services.NewEventService(eventRepo, artistRepo, serviceTimeout)
	venueService := services.NewVenueService(venueRepo, serviceTimeout)
	artistService := services.NewArtistService(artistRepo, serviceTimeout)
	djService := services.NewDJService(djRepo, serviceTimeout)
	galleryService := services.NewGalleryService(galleryRepo, imageStore, storage.NewImageProcessor(), logger, serviceTimeout)
	bookingService := services.NewBookingService(bookingRepo, settingsService, emailService, logger, serviceTimeout)
	userService := services.NewUserService(userRepo, auth.NewBcryptHasher(10), auth.NewJWTIssuer(cfg.JWTSecret), serviceTimeout)

	// Middleware
	requireAuth := middleware.RequireAuth(auth.NewJWTVerifier(cfg.JWTSecret), logger)
	resolver := geoip.NewHTTPResolver(&http.Client{Timeout: 2 * time.Second}, cfg.GeoAPIBaseURL)
	defaultRegion := "us"
	if settings, err := settingsService.GetSettings(ctx); err == nil && settings.DefaultRegion != "" {
		defaultRegion = settings.DefaultRegion
	}
	withRegion := middleware.Region(resolver, defaultRegion, logger)

	mux := apphttp.NewRouter(apphttp.Controllers{
		Auth:     controllers.NewAuthController(logger, userService),
		Events:   controllers.NewEventController(logger, eventService),
		Venues:   controllers.NewVenueController(logger, venueService),
		Artists:  controllers.NewArtistController(logger, artistService),
		DJs:      controllers.NewDJController(logger, djService),
		Gallery:  controllers.NewGalleryController(logger, galleryService),
		Bookings: controllers.NewBookingController(logger, bookingService),
		Settings: controllers.NewSettingsController(logger, settingsService),
	}, requireAuth, withRegion)

	handler := middleware.CORS(cfg.AllowedOrigins, middleware.LoggingMiddleware(logger, mux))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server starting", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("forced shutdown", "error", err)
	}
	logger.Info("server exited")
}
