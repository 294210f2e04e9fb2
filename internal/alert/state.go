package alert

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/incidentwatch/emergency_monitoring_system/internal/models"
)

// Типы событий, рассылаемых подписчикам дашборда
const (
	EventIncidentAlert = "incident_alert"
	EventModalOpen     = "modal_open"
	EventModalClose    = "modal_close"
	EventMapFocus      = "map_focus"
	EventMapMarker     = "map_marker"
)

// Event - событие для realtime-подписчиков дашборда
type Event struct {
	Type      string           `json:"type"`
	Incident  *models.Incident `json:"incident,omitempty"`
	Latitude  float64          `json:"latitude,omitempty"`
	Longitude float64          `json:"longitude,omitempty"`
	Timestamp time.Time        `json:"timestamp"`
}

// Broadcaster - интерфейс рассылки событий подписчикам
type Broadcaster interface {
	Broadcast(event Event)
}

// Manager держит два независимых слота разделяемого состояния: инцидент
// открытого модального окна и последний инцидент-алерт. Это именно слоты,
// а не стек: открытие нового инцидента молча замещает предыдущий.
type Manager struct {
	mu     sync.RWMutex
	modal  *models.Incident
	latest *models.Incident

	hub    Broadcaster
	logger *logrus.Logger
	now    func() time.Time
}

// NewManager создает контейнер состояния алертов
func NewManager(hub Broadcaster, logger *logrus.Logger) *Manager {
	return &Manager{
		hub:    hub,
		logger: logger,
		now:    time.Now,
	}
}

// OpenIncident выставляет инцидент модального окна и фокусирует карту на его
// координатах. Координаты, которые не разбираются в два конечных числа, не
// порождают событий карты.
func (m *Manager) OpenIncident(inc models.Incident) {
	m.mu.Lock()
	c := inc
	m.modal = &c
	m.mu.Unlock()

	m.emit(Event{Type: EventModalOpen, Incident: &inc})

	lat, lng, err := models.ParseCoordinates(inc.Coordinates)
	if err != nil {
		m.logger.WithError(err).WithField("incident_id", inc.IncidentID).
			Debug("Skipping map focus for incident with unparseable coordinates")
		return
	}
	m.emit(Event{Type: EventMapFocus, Latitude: lat, Longitude: lng})
	m.emit(Event{Type: EventMapMarker, Latitude: lat, Longitude: lng})
}

// CloseModal очищает слот модального окна. Слот последнего алерта не трогается.
func (m *Manager) CloseModal() {
	m.mu.Lock()
	m.modal = nil
	m.mu.Unlock()

	m.emit(Event{Type: EventModalClose})
}

// SetAlert выставляет последний инцидент-алерт
func (m *Manager) SetAlert(inc models.Incident) {
	m.mu.Lock()
	c := inc
	m.latest = &c
	m.mu.Unlock()

	m.emit(Event{Type: EventIncidentAlert, Incident: &inc})
}

// Current возвращает копию инцидента открытого модального окна
func (m *Manager) Current() (models.Incident, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.modal == nil {
		return models.Incident{}, false
	}
	return *m.modal, true
}

// LatestAlert возвращает копию последнего инцидента-алерта
func (m *Manager) LatestAlert() (models.Incident, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.latest == nil {
		return models.Incident{}, false
	}
	return *m.latest, true
}

func (m *Manager) emit(e Event) {
	e.Timestamp = m.now()
	m.hub.Broadcast(e)
}
