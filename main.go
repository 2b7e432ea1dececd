// File: curbside/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"curbside/config"
	"curbside/cron"
	"curbside/database"
	menuRepo "curbside/database/repository/menu"
	orderRepo "curbside/database/repository/order"
	reviewRepo "curbside/database/repository/review"
	truckRepo "curbside/database/repository/truck"
	"curbside/handlers"
	"curbside/middleware"
	"curbside/routes"
	"curbside/services/catalog"
	"curbside/services/feed"
	"curbside/services/order"
	"curbside/services/rating"
	"curbside/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()
	utils.FirebaseInit()

	// repositories.
	trucks := truckRepo.NewMongoTruckRepo()
	menus := menuRepo.NewMongoMenuRepo()
	orders := orderRepo.NewMongoOrderRepo()
	reviews := reviewRepo.NewMongoReviewRepo()

	idxCtx, idxCancel := context.WithTimeout(context.Background(), 30*time.Second)
	for _, ensure := range []func(context.Context) error{
		trucks.EnsureIndexes, menus.EnsureIndexes, orders.EnsureIndexes, reviews.EnsureIndexes,
	} {
		if err := ensure(idxCtx); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure indexes: %v", err)
		}
	}
	idxCancel()

	// services.
	catalogService := &catalog.DefaultCatalogService{
		TruckRepo: trucks,
		MenuRepo:  menus,
	}
	orderService := &order.DefaultOrderService{
		Repo:      orders,
		TruckRepo: trucks,
	}
	ratingService := &rating.DefaultRatingService{
		Repo: reviews,
	}

	watcher := feed.NewMongoWatcher(database.DB(), logger)
	mux := feed.NewMultiplexer(watcher, logger)

	// Background reconciliation of rating aggregates.
	cron.InitReconcileWorker(reviews)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	handlerBundle := &routes.Handlers{
		Catalog: handlers.NewCatalogHandler(catalogService, logger),
		Orders:  handlers.NewOrderHandler(orderService, logger),
		Ratings: handlers.NewRatingHandler(ratingService, logger),
		Streams: handlers.NewStreamHandler(mux, catalogService, logger),
		Auth:    middleware.FirebaseAuthMiddleware(utils.AuthClient, utils.GetAuthCacheClient()),
	}
	routes.RegisterRoutes(router, handlerBundle)

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

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
