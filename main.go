// File: stayhub/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"stayhub/config"
	"stayhub/cron"
	"stayhub/handlers"
	"stayhub/middleware"
	"stayhub/routes"
	"stayhub/services/checkout"
	"stayhub/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Checkout core.
	store := checkout.NewSessionStore(time.Duration(config.AppConfig.SessionTTLMinutes) * time.Minute)
	gateway := &checkout.SimulatedGateway{
		Delay:       time.Duration(config.AppConfig.SettlementDelayMs) * time.Millisecond,
		FailureRate: config.AppConfig.SettlementFailureRate,
		Logger:      logger,
	}
	checkoutService := &checkout.DefaultCheckoutService{
		Store:             store,
		Gateway:           gateway,
		Catalog:           checkout.DefaultCatalog(),
		Logger:            logger,
		FeeRate:           config.AppConfig.FeeRate,
		CashbackRate:      config.AppConfig.CashbackRate,
		HoldMinutes:       config.AppConfig.HoldMinutes,
		HoldExtendMinutes: config.AppConfig.HoldExtendMinutes,
		QRMinutes:         config.AppConfig.QRMinutes,
	}

	checkoutHandler := handlers.NewCheckoutHandler(checkoutService, logger)
	exportHandler := handlers.NewExportHandler(checkoutService, logger)

	routes.RegisterRoutes(router, checkoutHandler, exportHandler)

	// Background sweep of idle sessions so their timers are released.
	sweeper := cron.StartSessionSweeper(store, logger)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
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

	sweeper.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
