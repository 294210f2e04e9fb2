package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/incidentwatch/emergency_monitoring_system/internal/models"
)

// SystemStore определяет контракт хранилища справочников и показателей
type SystemStore interface {
	ListContacts() []models.EmergencyContact
	ListSystemStatuses() []models.SystemStatus
	UpdateSystemStatus(id int, upd models.SystemStatusUpdate) (models.SystemStatus, error)
}

// SystemService определяет контракт справочной части дашборда: экстренные
// контакты и показатели состояния подсистем
type SystemService interface {
	ListEmergencyContacts(ctx context.Context) ([]models.EmergencyContact, error)
	ListSystemStatuses(ctx context.Context) ([]models.SystemStatus, error)
	UpdateSystemStatus(ctx context.Context, id int, upd models.SystemStatusUpdate) (models.SystemStatus, error)
}

type systemService struct {
	store  SystemStore
	logger *logrus.Logger
}

func NewSystemService(store SystemStore, logger *logrus.Logger) SystemService {
	return &systemService{
		store:  store,
		logger: logger,
	}
}

// ListEmergencyContacts возвращает справочник экстренных служб
func (s *systemService) ListEmergencyContacts(ctx context.Context) ([]models.EmergencyContact, error) {
	return s.store.ListContacts(), nil
}

// ListSystemStatuses возвращает показатели состояния подсистем
func (s *systemService) ListSystemStatuses(ctx context.Context) ([]models.SystemStatus, error) {
	return s.store.ListSystemStatuses(), nil
}

// UpdateSystemStatus применяет частичное обновление показателя (путь записи
// внешнего монитора)
func (s *systemService) UpdateSystemStatus(ctx context.Context, id int, upd models.SystemStatusUpdate) (models.SystemStatus, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "system",
		"method":  "UpdateSystemStatus",
		"id":      id,
	})

	st, err := s.store.UpdateSystemStatus(id, upd)
	if err != nil {
		log.WithError(err).Warn("Failed to update system status in store")
		return models.SystemStatus{}, fmt.Errorf("service: could not update system status: %w", err)
	}

	log.Info("System status updated successfully")
	return st, nil
}
