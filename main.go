package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"hotel-master/config"
	"hotel-master/controllers"
	"hotel-master/routes"
	"hotel-master/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Info().Msg(".env not found or couldn't load it; continuing with environment variables")
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()
	log.Logger = logger

	if err := config.ConnectDatabase(); err != nil {
		log.Fatal().Err(err).Msg("database connect failed")
	}
	db := config.DB
	log.Info().Msg("database connection established, migrations applied")

	redisClient := config.NewRedisClient()
	if redisClient != nil {
		log.Info().Msg("dashboard stats cache enabled")
	}

	// Initialize services
	imageService := services.NewImageService(config.ImagesDir())
	accountService := services.NewAccountService(db)
	roomService := services.NewRoomService(db, imageService)
	bookingService := services.NewBookingService(db)
	reviewService := services.NewReviewService(db)
	statsService := services.NewStatsService(db, redisClient, 30*time.Second)

	// Initialize controllers
	authController := controllers.NewAuthController(accountService)
	roomController := controllers.NewRoomController(roomService, reviewService)
	bookingController := controllers.NewBookingController(bookingService)
	reviewController := controllers.NewReviewController(reviewService)
	adminController := controllers.NewAdminController(accountService, statsService)

	router := routes.SetupRouter(
		authController,
		roomController,
		bookingController,
		reviewController,
		adminController,
		logger,
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("ListenAndServe failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutdown signal received, shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped gracefully")
}
