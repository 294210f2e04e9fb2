package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/incidentwatch/emergency_monitoring_system/internal/alert"
	"github.com/incidentwatch/emergency_monitoring_system/internal/config"
	"github.com/incidentwatch/emergency_monitoring_system/internal/dispatch"
	"github.com/incidentwatch/emergency_monitoring_system/internal/feed"
	v1 "github.com/incidentwatch/emergency_monitoring_system/internal/handler/http/v1"
	"github.com/incidentwatch/emergency_monitoring_system/internal/realtime"
	"github.com/incidentwatch/emergency_monitoring_system/internal/service"
	"github.com/incidentwatch/emergency_monitoring_system/internal/storage"
	"github.com/incidentwatch/emergency_monitoring_system/internal/vision"
	"github.com/incidentwatch/emergency_monitoring_system/pkg/logger"
	redisclient "github.com/incidentwatch/emergency_monitoring_system/pkg/redis"

	_ "github.com/incidentwatch/emergency_monitoring_system/docs"
)

// @title Emergency Monitoring System API
// @version 1.0
// @description Real-time emergency incident monitoring and dispatch API.
// @host localhost:5000
// @BasePath /api
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Инициализация хранилища и стартовых данных
	store := storage.New()
	if err := storage.Seed(store, cfg.AdminUsername, cfg.AdminPassword); err != nil {
		log.Fatalf("Failed to seed storage: %v", err)
	}
	log.Info("In-memory storage seeded")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	// Инициализация издателя уведомлений о выезде
	dispatchPublisher := dispatch.NewRedisPublisher(redisClient)

	// Инициализация и запуск воркера доставки уведомлений
	dispatchWorker := dispatch.NewWorker(redisClient, log, cfg)
	dispatchWorker.Start(ctx)

	// Хаб вебсокет-подписчиков дашборда
	hub := realtime.NewHub(log)
	go hub.Run(ctx)

	// Состояние тревог и модального окна
	alerts := alert.NewManager(hub, log)

	// Фильтр повторных срабатываний одного источника
	cooldown := feed.NewCooldown(cfg.FeedCooldown)

	// Инициализация сервисов
	incidentService := service.NewIncidentService(store, dispatchPublisher, log, cfg)
	authService := service.NewAuthService(store, log)
	systemService := service.NewSystemService(store, log)

	// Слушатель внешнего потока событий
	listener := feed.NewListener(cfg.FeedURL, cooldown, incidentService, alerts, log)
	listener.Start(ctx)

	// Клиент AI-классификатора кадров
	classifier := vision.NewClient(cfg.PredictURL, log)

	// Инициализация хэндлеров
	handler := v1.NewHandler(incidentService, authService, systemService, classifier, alerts, cooldown, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	handler.RegisterRoutes(router, hub)

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
