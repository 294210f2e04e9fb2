package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/incidentwatch/emergency_monitoring_system/internal/alert"
	"github.com/incidentwatch/emergency_monitoring_system/internal/models"
	"github.com/incidentwatch/emergency_monitoring_system/internal/service"
)

// SourceESP32 - ключ охлаждения для событий датчика удара
const SourceESP32 = "ESP32"

const maxReconnectDelay = time.Minute

// Event - сообщение realtime-фида датчиков
type Event struct {
	IncidentID   string  `json:"incident_id"`
	IncidentType string  `json:"incident_type"`
	Acceleration float64 `json:"acceleration"`
	Latitude     string  `json:"latitude"`
	Longitude    string  `json:"longitude"`
	Address      string  `json:"address"`
}

// Listener подписывается на websocket-фид датчиков, фильтрует события через
// per-source охлаждение и превращает принятые события в инциденты с алертом.
type Listener struct {
	url       string
	cooldown  *Cooldown
	incidents service.IncidentService
	alerts    *alert.Manager
	logger    *logrus.Logger
	now       func() time.Time
}

// NewListener создает подписчика фида
func NewListener(url string, cooldown *Cooldown, incidents service.IncidentService, alerts *alert.Manager, logger *logrus.Logger) *Listener {
	return &Listener{
		url:       url,
		cooldown:  cooldown,
		incidents: incidents,
		alerts:    alerts,
		logger:    logger,
		now:       time.Now,
	}
}

// Start запускает горутину чтения фида. Обрывы соединения переживаются
// повторным подключением с экспоненциальной задержкой; состояние охлаждения
// переподключение не сбрасывает.
func (l *Listener) Start(ctx context.Context) {
	l.logger.WithField("url", l.url).Info("Starting feed listener...")
	go func() {
		delay := time.Second
		for {
			if err := l.run(ctx); err != nil {
				if ctx.Err() != nil {
					l.logger.Info("Stopping feed listener.")
					return
				}
				l.logger.WithError(err).Warnf("Feed connection lost. Reconnecting in %v", delay)
			}

			select {
			case <-ctx.Done():
				l.logger.Info("Stopping feed listener.")
				return
			case <-time.After(delay):
			}

			delay *= 2
			if delay > maxReconnectDelay {
				delay = maxReconnectDelay
			}
		}
	}()
}

func (l *Listener) run(ctx context.Context) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, l.url, nil)
	if err != nil {
		return fmt.Errorf("dial feed: %w", err)
	}
	defer conn.Close()

	l.logger.Info("Feed connected")

	// Закрываем сокет при отмене контекста, чтобы разблокировать ReadMessage
	go func() {
		<-ctx.Done()
		conn.Close()
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			return fmt.Errorf("read feed message: %w", err)
		}
		l.handleMessage(ctx, data)
	}
}

// handleMessage обрабатывает одно сообщение фида. Неразборчивые payload'ы
// логируются и отбрасываются — слушатель не падает из-за мусора в фиде.
func (l *Listener) handleMessage(ctx context.Context, data []byte) {
	if l.cooldown.Active(SourceESP32) {
		l.logger.Debug("Feed event dropped: source is cooling down")
		return
	}

	var ev Event
	if err := json.Unmarshal(data, &ev); err != nil {
		l.logger.WithError(err).Warn("Failed to unmarshal feed event, dropping")
		return
	}

	lat, err := strconv.ParseFloat(ev.Latitude, 64)
	if err != nil {
		l.logger.WithError(err).Warn("Feed event has non-numeric latitude, dropping")
		return
	}
	lng, err := strconv.ParseFloat(ev.Longitude, 64)
	if err != nil {
		l.logger.WithError(err).Warn("Feed event has non-numeric longitude, dropping")
		return
	}

	inc := l.synthesize(ev, lat, lng)
	created, err := l.incidents.CreateIncident(ctx, inc)
	if err != nil {
		l.logger.WithError(err).WithField("incident_id", inc.IncidentID).
			Warn("Failed to create incident from feed event")
		return
	}

	l.alerts.SetAlert(created)
	l.alerts.OpenIncident(created)
	l.cooldown.Arm(SourceESP32)

	l.logger.WithFields(logrus.Fields{
		"incident_id": created.IncidentID,
		"latitude":    lat,
		"longitude":   lng,
	}).Info("Feed incident accepted")
}

// synthesize собирает инцидент из события фида
func (l *Listener) synthesize(ev Event, lat, lng float64) models.Incident {
	incidentID := ev.IncidentID
	if incidentID == "" {
		incidentID = fmt.Sprintf("ESP32-%d", l.now().UnixMilli())
	}

	title := ev.IncidentType
	if title == "" {
		title = "Shock Detected"
	}

	inc := models.Incident{
		IncidentID:     incidentID,
		Title:          title,
		Description:    fmt.Sprintf("ESP32 detected shock with acceleration of %g", ev.Acceleration),
		Severity:       models.SeverityHigh,
		Source:         "ESP32 Device",
		Location:       ev.Address,
		Coordinates:    fmt.Sprintf("%g,%g", lat, lng),
		OptimizedRoute: "Auto-calculated route",
		Status:         models.StatusActive,
		DetectedAt:     l.now(),
	}

	if ev.Acceleration > 0 {
		p := math.Min(ev.Acceleration/10*100, 99.9)
		inc.Probability = &p
	}
	return inc
}
