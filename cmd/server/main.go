package main

import (
	"context"
	"log"
	"time"

	"eventdeck/config"
	"eventdeck/internal/cache"
	"eventdeck/internal/database"
	"eventdeck/internal/handler"
	"eventdeck/internal/media"
	"eventdeck/internal/repository"
	"eventdeck/internal/service"
	"eventdeck/pkg/logger"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	defer logger.Sync()

	manager := database.NewConnectionManager(&cfg.Mongo)

	// 啟動時先連一次並建索引，之後的請求重用快取的 handle
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if _, err := manager.Acquire(ctx); err != nil {
		cancel()
		log.Fatalf("Failed to connect to mongodb: %v", err)
	}
	if err := repository.EnsureIndexes(ctx, manager); err != nil {
		cancel()
		log.Fatalf("Failed to ensure indexes: %v", err)
	}
	cancel()
	defer manager.Close(context.Background())

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to initialize redis: %v", err)
	}
	defer rdb.Close()

	uploader, err := media.NewCloudinaryUploader(&cfg.Cloudinary)
	if err != nil {
		log.Fatalf("Failed to initialize cloudinary: %v", err)
	}

	eventRepo := repository.NewEventRepository(manager)
	bookingRepo := repository.NewBookingRepository(manager)
	counter := cache.NewRedisBookingCounter(rdb)

	eventService := service.NewEventService(eventRepo)
	bookingService := service.NewBookingService(bookingRepo, eventRepo, counter)

	gin.SetMode(cfg.Server.GinMode)
	router := gin.Default()
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	handler.NewEventHandler(eventService, uploader).RegisterRoutes(router)
	handler.NewBookingHandler(bookingService, eventService).RegisterRoutes(router)

	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
