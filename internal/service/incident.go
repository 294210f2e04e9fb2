package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/incidentwatch/emergency_monitoring_system/internal/config"
	"github.com/incidentwatch/emergency_monitoring_system/internal/dispatch"
	"github.com/incidentwatch/emergency_monitoring_system/internal/models"
	"github.com/incidentwatch/emergency_monitoring_system/internal/storage"
)

// ErrReportNotFound возвращается при удалении отчёта, файла которого нет
var ErrReportNotFound = errors.New("report not found")

// IncidentStore определяет контракт хранилища инцидентов
type IncidentStore interface {
	CreateIncident(inc models.Incident) (models.Incident, error)
	GetIncident(id int) (models.Incident, error)
	FindIncidentByExternalID(incidentID string) (models.Incident, error)
	ListIncidents() []models.Incident
	ListActiveIncidents() []models.Incident
	UpdateIncidentStatus(id int, status string) (models.Incident, error)
}

// IncidentService определяет контракт бизнес-логики управления инцидентами
type IncidentService interface {
	CreateIncident(ctx context.Context, inc models.Incident) (models.Incident, error)
	GetIncident(ctx context.Context, id int) (models.Incident, error)
	ListIncidents(ctx context.Context) ([]models.Incident, error)
	ListActiveIncidents(ctx context.Context) ([]models.Incident, error)
	UpdateIncidentStatus(ctx context.Context, id int, status string) (models.Incident, error)
	GenerateReport(ctx context.Context, id int) (string, error)
	DeleteReport(ctx context.Context, id int) error
}

type incidentService struct {
	store     IncidentStore
	publisher dispatch.Publisher
	logger    *logrus.Logger
	cfg       *config.Config
}

func NewIncidentService(store IncidentStore, publisher dispatch.Publisher, logger *logrus.Logger, cfg *config.Config) IncidentService {
	return &incidentService{
		store:     store,
		publisher: publisher,
		logger:    logger,
		cfg:       cfg,
	}
}

// CreateIncident создает инцидент
func (s *incidentService) CreateIncident(ctx context.Context, inc models.Incident) (models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "incident",
		"method":      "CreateIncident",
		"incident_id": inc.IncidentID,
	})
	log.Info("Attempting to create a new incident")

	created, err := s.store.CreateIncident(inc)
	if err != nil {
		log.WithError(err).Warn("Failed to create incident in store")
		return models.Incident{}, fmt.Errorf("service: could not create incident: %w", err)
	}

	log.WithField("id", created.ID).Info("Incident created successfully")
	return created, nil
}

// GetIncident получает инцидент по внутреннему id
func (s *incidentService) GetIncident(ctx context.Context, id int) (models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "GetIncident",
		"id":      id,
	})

	inc, err := s.store.GetIncident(id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident from store")
		return models.Incident{}, fmt.Errorf("service: could not get incident: %w", err)
	}
	return inc, nil
}

// ListIncidents возвращает все инциденты
func (s *incidentService) ListIncidents(ctx context.Context) ([]models.Incident, error) {
	return s.store.ListIncidents(), nil
}

// ListActiveIncidents возвращает инциденты со статусом active
func (s *incidentService) ListActiveIncidents(ctx context.Context) ([]models.Incident, error) {
	return s.store.ListActiveIncidents(), nil
}

// UpdateIncidentStatus переводит инцидент в новый статус. Переход в статус
// dispatched публикует уведомление для внешнего шлюза; ошибка публикации
// логируется, но не отменяет уже применённый переход.
func (s *incidentService) UpdateIncidentStatus(ctx context.Context, id int, status string) (models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "UpdateIncidentStatus",
		"id":      id,
		"status":  status,
	})
	log.Info("Attempting to update incident status")

	inc, err := s.store.UpdateIncidentStatus(id, status)
	if err != nil {
		log.WithError(err).Warn("Failed to update incident status in store")
		return models.Incident{}, fmt.Errorf("service: could not update incident status: %w", err)
	}

	if status == models.StatusDispatched {
		n := dispatch.Notification{
			IncidentID: inc.IncidentID,
			Location:   inc.Location,
			Severity:   inc.Severity,
			DetectedAt: inc.DetectedAt,
		}
		if err := s.publisher.Publish(ctx, n); err != nil {
			log.WithError(err).Error("Failed to publish dispatch notification")
		}
	}

	log.Info("Incident status updated successfully")
	return inc, nil
}

// GenerateReport формирует текстовый отчёт по инциденту и возвращает его URL
func (s *incidentService) GenerateReport(ctx context.Context, id int) (string, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "GenerateReport",
		"id":      id,
	})

	inc, err := s.store.GetIncident(id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident for report")
		return "", fmt.Errorf("service: could not get incident for report: %w", err)
	}

	content := fmt.Sprintf("Report for Incident #%s\n\nDetails:\n%s\n\nLocation: %s\n",
		inc.IncidentID, inc.Description, inc.Location)

	if err := os.MkdirAll(s.cfg.ReportsDir, 0o755); err != nil {
		log.WithError(err).Error("Failed to create reports directory")
		return "", fmt.Errorf("service: could not create reports dir: %w", err)
	}

	path := filepath.Join(s.cfg.ReportsDir, reportFileName(inc.IncidentID))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		log.WithError(err).Error("Failed to write report file")
		return "", fmt.Errorf("service: could not write report: %w", err)
	}

	log.WithField("path", path).Info("Report generated successfully")
	return "/api/incidents/reports/" + reportFileName(inc.IncidentID), nil
}

// DeleteReport удаляет файл отчёта по инциденту
func (s *incidentService) DeleteReport(ctx context.Context, id int) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "incident",
		"method":  "DeleteReport",
		"id":      id,
	})

	inc, err := s.store.GetIncident(id)
	if err != nil {
		log.WithError(err).Warn("Failed to get incident for report deletion")
		return fmt.Errorf("service: could not get incident for report deletion: %w", err)
	}

	path := filepath.Join(s.cfg.ReportsDir, reportFileName(inc.IncidentID))
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("service: report for incident %s: %w", inc.IncidentID, ErrReportNotFound)
		}
		log.WithError(err).Error("Failed to delete report file")
		return fmt.Errorf("service: could not delete report: %w", err)
	}

	log.Info("Report deleted successfully")
	return nil
}

// IsNotFound сообщает, вызвана ли ошибка отсутствием сущности в хранилище
func IsNotFound(err error) bool {
	return errors.Is(err, storage.ErrNotFound)
}

func reportFileName(incidentID string) string {
	return fmt.Sprintf("incident_%s_report.txt", incidentID)
}
