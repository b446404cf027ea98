package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"loc8r/api-service/internal/config"
	"loc8r/api-service/internal/handler"
	"loc8r/api-service/internal/repository"
	"loc8r/api-service/internal/services"
	"loc8r/api-service/internal/utils"
)

func main() {
	ctx, shutdownManager := utils.NewShutdownManager(context.Background())

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	db := mongoClient.Database(cfg.DBName)

	shutdownManager.Register(func(ctx context.Context) error {
		log.Println("closing MongoDB connection")
		return mongoClient.Disconnect(ctx)
	})

	cache, err := utils.NewRedisClient(cfg.RedisURL)
	if err != nil {
		log.Fatal("Failed to connect to Redis:", err)
	}

	shutdownManager.Register(func(ctx context.Context) error {
		log.Println("closing Redis connection")
		return cache.Close()
	})

	userRepo := repository.NewUserRepository(db)
	locationRepo := repository.NewLocationRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal("Failed to create user indexes:", err)
	}
	if err := locationRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal("Failed to create location indexes:", err)
	}

	jwtUtil := utils.NewJWTUtil(cfg.JWTSecret)
	authService := services.NewAuthService(userRepo, jwtUtil)
	locationService := services.NewLocationService(locationRepo, cache)
	reviewService := services.NewReviewService(locationRepo, userRepo, cache)

	authHandler := handler.NewAuthHandler(authService)
	locationHandler := handler.NewLocationHandler(locationService)
	reviewHandler := handler.NewReviewHandler(reviewService)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:8080"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := router.Group("/api")
	{
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)

		api.GET("/locations", locationHandler.ListByDistance)
		api.GET("/locations/:locationid", locationHandler.ReadOne)

		api.POST("/locations/:locationid/reviews", utils.AuthMiddleware(jwtUtil), reviewHandler.Create)
		api.GET("/locations/:locationid/reviews/:reviewid", reviewHandler.ReadOne)
		api.PUT("/locations/:locationid/reviews/:reviewid", reviewHandler.UpdateOne)
		api.DELETE("/locations/:locationid/reviews/:reviewid", reviewHandler.DeleteOne)
	}

	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: router,
	}

	go func() {
		log.Printf("Loc8r API running on %s", cfg.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	shutdownManager.Register(func(ctx context.Context) error {
		log.Println("draining HTTP server")
		return server.Shutdown(ctx)
	})

	shutdownManager.Wait()
	log.Println("shutdown complete")
}
