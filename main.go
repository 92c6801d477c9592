package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/wayfarerhq/wayfarer-backend/config"
	"github.com/wayfarerhq/wayfarer-backend/db"
	"github.com/wayfarerhq/wayfarer-backend/handlers"
	"github.com/wayfarerhq/wayfarer-backend/internal/store/postgres"
	"github.com/wayfarerhq/wayfarer-backend/logger"
	"github.com/wayfarerhq/wayfarer-backend/models"
	"github.com/wayfarerhq/wayfarer-backend/router"
)

// @title Wayfarer API
// @version 1.0
// @description Travel planning backend: trips and their itineraries,
// @description activities, transport, stays, budgets, expenses, documents,
// @description photos and notes.
// @BasePath /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	logger.InitLogger()
	defer logger.Close()
	log := logger.GetLogger()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalw("Failed to load configuration", "error", err)
	}

	if err := db.RunMigrations(cfg.Database.URL()); err != nil {
		log.Fatalw("Failed to run migrations", "error", err)
	}

	poolCfg, err := pgxpool.ParseConfig(cfg.Database.URL())
	if err != nil {
		log.Fatalw("Failed to parse database config", "error", err)
	}
	poolCfg.MaxConns = int32(cfg.Database.MaxOpenConns)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	cancel()
	if err != nil {
		log.Fatalw("Failed to connect to database", "error", err)
	}
	defer pool.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Address,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Warnw("Failed to close redis client", "error", err)
		}
	}()

	userStore := postgres.NewUserStore(pool)
	tripStore := postgres.NewTripStore(pool)
	itineraryStore := postgres.NewItineraryStore(pool)
	activityStore := postgres.NewActivityStore(pool)
	transportationStore := postgres.NewTransportationStore(pool)
	accommodationStore := postgres.NewAccommodationStore(pool)
	budgetStore := postgres.NewBudgetStore(pool)
	expenseStore := postgres.NewExpenseStore(pool)
	documentStore := postgres.NewDocumentStore(pool)
	photoStore := postgres.NewPhotoStore(pool)
	noteStore := postgres.NewNoteStore(pool)

	userModel := models.NewUserModel(userStore)
	tripModel := models.NewTripModel(tripStore)
	itineraryModel := models.NewItineraryModel(tripStore, itineraryStore, activityStore)
	activityModel := models.NewActivityModel(tripStore, activityStore)
	transportationModel := models.NewTransportationModel(tripStore, transportationStore)
	accommodationModel := models.NewAccommodationModel(tripStore, accommodationStore)
	budgetModel := models.NewBudgetModel(tripStore, budgetStore)
	expenseModel := models.NewExpenseModel(tripStore, expenseStore, budgetStore)
	documentModel := models.NewDocumentModel(tripStore, documentStore)
	photoModel := models.NewPhotoModel(tripStore, photoStore, itineraryStore, activityStore)
	noteModel := models.NewNoteModel(tripStore, noteStore)

	engine := router.New(&router.Dependencies{
		Config:         cfg,
		Redis:          redisClient,
		Trip:           handlers.NewTripHandler(tripModel, userModel),
		Itinerary:      handlers.NewItineraryHandler(itineraryModel, userModel),
		Activity:       handlers.NewActivityHandler(activityModel, userModel),
		Transportation: handlers.NewTransportationHandler(transportationModel, userModel),
		Accommodation:  handlers.NewAccommodationHandler(accommodationModel, userModel),
		Budget:         handlers.NewBudgetHandler(budgetModel, userModel),
		Expense:        handlers.NewExpenseHandler(expenseModel, userModel),
		Document:       handlers.NewDocumentHandler(documentModel, userModel),
		Photo:          handlers.NewPhotoHandler(photoModel, userModel),
		Note:           handlers.NewNoteHandler(noteModel, userModel),
		Health:         handlers.NewHealthHandler(pool, redisClient, cfg.Server.Version),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Infow("Server starting", "port", cfg.Server.Port, "environment", cfg.Server.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("Server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("Forced shutdown", "error", err)
	}
	log.Info("Server stopped")
}
