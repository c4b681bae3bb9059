package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stayfinder-backend/config"
	"stayfinder-backend/controllers"
	"stayfinder-backend/logging"
	"stayfinder-backend/routes"
	"stayfinder-backend/services"
	"stayfinder-backend/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger := logging.New(cfg.LogLevel, cfg.LogFormat)

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("database connect failed")
	}
	logger.Info().Msg("database connected, migrations applied")

	store := storage.NewGormStore(db)
	cache := services.NewHotelCache(cfg.RedisAddr, cfg.CacheTTL, logger)
	defer cache.Close()
	if cache != nil {
		logger.Info().Str("addr", cfg.RedisAddr).Msg("hotel cache enabled")
	}

	authService := services.NewAuthService(store, cfg.JWTSecret, cfg.JWTTTL, logger)
	hotelService := services.NewHotelService(store, cache, logger)
	bookingService := services.NewBookingService(store, logger)
	exportService := services.NewExportService(store)

	authController := controllers.NewAuthController(authService, int(cfg.JWTTTL.Seconds()))
	hotelController := controllers.NewHotelController(hotelService)
	bookingController := controllers.NewBookingController(bookingService)
	adminController := controllers.NewAdminController(exportService)

	router := routes.SetupRouter(cfg, logger,
		authController, hotelController, bookingController, adminController)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("listen failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	logger.Info().Msg("shutdown signal received")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal().Err(err).Msg("forced shutdown")
	}
	logger.Info().Msg("server stopped")
}
