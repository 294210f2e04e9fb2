package dispatch

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/incidentwatch/emergency_monitoring_system/internal/config"
)

// Worker - структура для доставки уведомлений диспетчеризации внешнему шлюзу
type Worker struct {
	redisClient *redis.Client
	logger      *logrus.Logger
	cfg         *config.Config
	httpClient  *http.Client
}

// NewWorker создает новый Worker
func NewWorker(redisClient *redis.Client, logger *logrus.Logger, cfg *config.Config) *Worker {
	return &Worker{
		redisClient: redisClient,
		logger:      logger,
		cfg:         cfg,
		httpClient: &http.Client{
			Timeout: cfg.DispatchTimeout,
		},
	}
}

// Start запускает горутину для обработки очереди уведомлений
func (w *Worker) Start(ctx context.Context) {
	w.logger.Info("Starting dispatch worker...")
	go func() {
		for {
			select {
			case <-ctx.Done():
				w.logger.Info("Stopping dispatch worker.")
				return
			default:
				// BRPop - блокирующее извлечение из правой части списка (очереди),
				// 0 означает бесконечное ожидание
				result, err := w.redisClient.BRPop(ctx, 0, dispatchQueueKey).Result()
				if err != nil {
					if errors.Is(err, context.Canceled) {
						continue
					}
					w.logger.WithError(err).Error("Failed to pop dispatch notification from Redis")
					time.Sleep(w.cfg.DispatchTimeout)
					continue
				}

				// result[0] - ключ, result[1] - значение
				payload := result[1]
				var n Notification
				if err := json.Unmarshal([]byte(payload), &n); err != nil {
					w.logger.WithError(err).Error("Failed to unmarshal dispatch notification from Redis")
					continue
				}

				w.deliver(ctx, n, payload)
			}
		}
	}()
}

func (w *Worker) deliver(ctx context.Context, n Notification, rawPayload string) {
	log := w.logger.WithField("incident_id", n.IncidentID).WithField("severity", n.Severity)
	log.Debug("Delivering dispatch notification...")

	if w.cfg.DispatchURL == "" {
		log.Warn("Dispatch URL is not configured. Skipping notification delivery.")
		return
	}

	maxRetries := w.cfg.DispatchMaxRetries
	baseDelay := w.cfg.DispatchBaseDelay

	for i := 0; i < maxRetries; i++ {
		req, err := http.NewRequestWithContext(ctx, "POST", w.cfg.DispatchURL, bytes.NewBufferString(rawPayload))
		if err != nil {
			log.WithError(err).Errorf("Failed to create dispatch request. Retries left: %d", maxRetries-1-i)
			continue
		}

		req.Header.Set("Content-Type", "application/json")

		// Добавляем HMAC подпись, если DISPATCH_SECRET задан
		if w.cfg.DispatchSecret != "" {
			signature := generateHMACSHA256(rawPayload, w.cfg.DispatchSecret)
			req.Header.Set("X-Dispatch-Signature", signature)
		}

		resp, err := w.httpClient.Do(req)
		if err != nil {
			log.WithError(err).Warnf("Failed to send dispatch notification. Retrying in %v. Retries left: %d", baseDelay, maxRetries-1-i)
			time.Sleep(baseDelay)
			baseDelay *= 2 // Экспоненциальная задержка
			continue
		}
		resp.Body.Close()

		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			log.Info("Dispatch notification delivered successfully.")
			return
		}

		log.Warnf("Dispatch delivery failed with status code %d. Retrying in %v. Retries left: %d", resp.StatusCode, baseDelay, maxRetries-1-i)
		time.Sleep(baseDelay)
		baseDelay *= 2
	}

	log.Errorf("Failed to deliver dispatch notification after %d retries.", maxRetries)
}

// generateHMACSHA256 генерирует HMAC-SHA256 подпись для данных
func generateHMACSHA256(data, secret string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(data))
	return hex.EncodeToString(h.Sum(nil))
}
