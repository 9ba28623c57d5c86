package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"mindpulse/internal/cache"
	"mindpulse/internal/config"
	"mindpulse/internal/repository"
	"mindpulse/internal/service"
	"mindpulse/internal/transport/rest"
	"mindpulse/internal/transport/ws"
)

// @title MindPulse Check-in API
// @version 1.0
// @description Adaptive mood check-ins with branching follow-ups and recommendations
// @host localhost:8080
// @BasePath /v1
func main() {
	log.Println("started")
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}
	if cfg.UsingDefaultSecret() {
		log.Println("Warning: JWT_SECRET not set, using development secret")
	}

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongoClient.Disconnect(ctx)

	// Ping MongoDB
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal("Failed to ping MongoDB:", err)
	}
	log.Println("Connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDB)
	if err := repository.EnsureCheckInIndexes(ctx, db); err != nil {
		log.Fatal("Failed to create check-in indexes:", err)
	}

	// Redis connection
	rdb := redis.NewClient(&redis.Options{
		Addr: cfg.RedisAddr,
	})
	defer rdb.Close()

	// Ping Redis
	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal("Failed to ping Redis:", err)
	}
	log.Println("Connected to Redis")

	// Question bank
	bank, source, err := service.LoadBank(ctx, cfg.QuestionBankFile, repository.NewQuestionBankRepo(db))
	if err != nil {
		log.Fatal("Failed to load question bank:", err)
	}
	log.Printf("Question bank v%d loaded from %s", bank.Version(), source)

	// Initialize WebSocket hub
	wsHub := ws.NewHub()
	log.Println("WebSocket hub started")

	// Initialize repositories and caches
	checkInRepo := repository.NewCheckInRepo(db)
	sessionCache := cache.NewSessionCache(rdb, cfg.SessionTTL)
	trendCache := cache.NewTrendCache(rdb)
	analyticsCache := cache.NewAnalyticsCache(rdb)

	// Initialize services
	authSvc := service.NewAuthService(cfg.JWTSecret, cfg.TokenTTL)
	checkInSvc := service.NewCheckInService(bank, checkInRepo, sessionCache, trendCache, authSvc)

	// Inject aggregate counters for /v1/stats
	checkInSvc.SetAnalytics(analyticsCache)

	// Inject broadcaster (wsHub implements service.Broadcaster)
	checkInSvc.SetBroadcaster(wsHub)

	// Create router with container
	container := &rest.Container{
		AuthService:    authSvc,
		CheckInService: checkInSvc,
		WSHub:          wsHub,
	}

	router := rest.NewRouter(container)

	// Start server
	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Printf("Server starting on :%s", cfg.HTTPPort)
		log.Println("Endpoints:")
		log.Println("  POST /v1/checkins")
		log.Println("  GET  /v1/checkins/{id}")
		log.Println("  POST /v1/checkins/{id}/answers")
		log.Println("  POST /v1/checkins/{id}/restart")
		log.Println("  GET  /v1/checkins/{id}/result")
		log.Println("  GET  /v1/users/{userId}/checkins")
		log.Println("  GET  /v1/users/{userId}/trend")
		log.Println("  GET  /v1/stats")
		log.Println("  GET  /v1/stats/questions/{questionId}")
		log.Println("  WS   /v1/ws/checkins/{id}")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("ListenAndServe:", err)
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}
