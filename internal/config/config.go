package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config - структура для хранения конфигурации приложения
type Config struct {
	HTTPPort string `env:"HTTP_PORT" envDefault:"5000"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Seed-учётка администратора
	AdminUsername string `env:"ADMIN_USERNAME" envDefault:"admin"`
	AdminPassword string `env:"ADMIN_PASSWORD" envDefault:"admin123"`

	// Realtime-фид датчиков (ESP32)
	FeedURL      string        `env:"FEED_URL" envDefault:"ws://localhost:8000/ws/incident"`
	FeedCooldown time.Duration `env:"FEED_COOLDOWN" envDefault:"5s"`

	// Redis Config (очередь уведомлений диспетчеризации)
	RedisAddr string `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPass string `env:"REDIS_PASSWORD"`
	RedisDB   int    `env:"REDIS_DB" envDefault:"0"`

	// Dispatch Config (внешний SMS-шлюз)
	DispatchURL        string        `env:"DISPATCH_URL"`
	DispatchSecret     string        `env:"DISPATCH_SECRET"`
	DispatchTimeout    time.Duration `env:"DISPATCH_TIMEOUT" envDefault:"5s"`
	DispatchMaxRetries int           `env:"DISPATCH_MAX_RETRIES" envDefault:"3"`
	DispatchBaseDelay  time.Duration `env:"DISPATCH_BASE_DELAY" envDefault:"1s"`

	// AI-инференс
	PredictURL       string  `env:"PREDICT_URL" envDefault:"http://localhost:8000/predict"`
	PredictThreshold float64 `env:"PREDICT_THRESHOLD" envDefault:"95"`

	// Каталог для текстовых отчётов по инцидентам
	ReportsDir string `env:"REPORTS_DIR" envDefault:"reports"`
}

// LoadConfig загружает конфигурацию из переменных окружения и .env файла
func LoadConfig() (*Config, error) {
	// Загрузка переменных окружения из .env файла (если есть)
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("ошибка загрузки файла .env: %w", err)
	}

	cfg := &Config{
		HTTPPort:           getEnv("HTTP_PORT", "5000"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		AdminUsername:      getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword:      getEnv("ADMIN_PASSWORD", "admin123"),
		FeedURL:            getEnv("FEED_URL", "ws://localhost:8000/ws/incident"),
		FeedCooldown:       getEnvAsDuration("FEED_COOLDOWN", 5*time.Second),
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:          os.Getenv("REDIS_PASSWORD"),
		RedisDB:            getEnvAsInt("REDIS_DB", 0),
		DispatchURL:        os.Getenv("DISPATCH_URL"),
		DispatchSecret:     os.Getenv("DISPATCH_SECRET"),
		DispatchTimeout:    getEnvAsDuration("DISPATCH_TIMEOUT", 5*time.Second),
		DispatchMaxRetries: getEnvAsInt("DISPATCH_MAX_RETRIES", 3),
		DispatchBaseDelay:  getEnvAsDuration("DISPATCH_BASE_DELAY", time.Second),
		PredictURL:         getEnv("PREDICT_URL", "http://localhost:8000/predict"),
		PredictThreshold:   getEnvAsFloat("PREDICT_THRESHOLD", 95),
		ReportsDir:         getEnv("REPORTS_DIR", "reports"),
	}

	return cfg, nil
}

// getEnv возвращает значение переменной окружения или значение по умолчанию
func getEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt возвращает значение переменной окружения как int или значение по умолчанию
func getEnvAsInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloat возвращает значение переменной окружения как float64 или значение по умолчанию
func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value, exists := os.LookupEnv(key); exists {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsDuration возвращает значение переменной окружения как time.Duration или значение по умолчанию
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if durationValue, err := time.ParseDuration(value); err == nil {
			return durationValue
		}
	}
	return defaultValue
}
