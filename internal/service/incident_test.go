package service

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/incidentwatch/emergency_monitoring_system/internal/config"
	"github.com/incidentwatch/emergency_monitoring_system/internal/dispatch"
	dispatch_mocks "github.com/incidentwatch/emergency_monitoring_system/internal/dispatch/mocks"
	"github.com/incidentwatch/emergency_monitoring_system/internal/models"
	"github.com/incidentwatch/emergency_monitoring_system/internal/service/mocks"
	"github.com/incidentwatch/emergency_monitoring_system/internal/storage"
)

// newTestIncidentService — вспомогательная функция для создания инстанса сервиса с моками.
func newTestIncidentService(t *testing.T) (*incidentService, *mocks.MockIncidentStore, *dispatch_mocks.MockPublisher) {
	ctrl := gomock.NewController(t)
	storeMock := mocks.NewMockIncidentStore(ctrl)
	publisherMock := dispatch_mocks.NewMockPublisher(ctrl)

	logger := logrus.New()
	logger.SetOutput(io.Discard) // Отключаем вывод логов в тестах

	cfg := &config.Config{
		ReportsDir: t.TempDir(),
	}

	service := NewIncidentService(storeMock, publisherMock, logger, cfg)
	return service.(*incidentService), storeMock, publisherMock
}

func TestUpdateIncidentStatus_DispatchedPublishesNotification(t *testing.T) {
	// Подготовка
	service, storeMock, publisherMock := newTestIncidentService(t)
	ctx := context.Background()
	detectedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	updated := models.Incident{
		ID:         1,
		IncidentID: "INC-2023-0024",
		Location:   "Main St & 5th Ave",
		Severity:   models.SeverityHigh,
		Status:     models.StatusDispatched,
		DetectedAt: detectedAt,
	}

	// Ожидания
	storeMock.EXPECT().
		UpdateIncidentStatus(1, models.StatusDispatched).
		Return(updated, nil).
		Times(1)

	publisherMock.EXPECT().
		Publish(ctx, dispatch.Notification{
			IncidentID: "INC-2023-0024",
			Location:   "Main St & 5th Ave",
			Severity:   models.SeverityHigh,
			DetectedAt: detectedAt,
		}).
		Return(nil).
		Times(1)

	// Действие
	inc, err := service.UpdateIncidentStatus(ctx, 1, models.StatusDispatched)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, updated, inc)
}

func TestUpdateIncidentStatus_PublishErrorDoesNotFailTransition(t *testing.T) {
	// Подготовка
	service, storeMock, publisherMock := newTestIncidentService(t)
	ctx := context.Background()
	updated := models.Incident{ID: 1, IncidentID: "INC-1", Status: models.StatusDispatched}

	// Ожидания
	storeMock.EXPECT().
		UpdateIncidentStatus(1, models.StatusDispatched).
		Return(updated, nil).
		Times(1)

	publisherMock.EXPECT().
		Publish(ctx, gomock.Any()).
		Return(fmt.Errorf("redis недоступен")).
		Times(1)

	// Действие
	inc, err := service.UpdateIncidentStatus(ctx, 1, models.StatusDispatched)

	// Проверки: переход уже применён, ошибка публикации его не отменяет
	require.NoError(t, err)
	assert.Equal(t, models.StatusDispatched, inc.Status)
}

func TestUpdateIncidentStatus_OtherTransitionsDoNotPublish(t *testing.T) {
	for _, status := range []string{
		models.StatusActive,
		models.StatusResolved,
		models.StatusCanceled,
	} {
		t.Run(status, func(t *testing.T) {
			// Подготовка
			service, storeMock, _ := newTestIncidentService(t)
			ctx := context.Background()

			// Ожидания: публикации нет, моку издателя вызовы не разрешены
			storeMock.EXPECT().
				UpdateIncidentStatus(1, status).
				Return(models.Incident{ID: 1, Status: status}, nil).
				Times(1)

			// Действие
			inc, err := service.UpdateIncidentStatus(ctx, 1, status)

			// Проверки
			require.NoError(t, err)
			assert.Equal(t, status, inc.Status)
		})
	}
}

func TestUpdateIncidentStatus_UnknownIncident(t *testing.T) {
	// Подготовка
	service, storeMock, _ := newTestIncidentService(t)
	ctx := context.Background()

	// Ожидания
	storeMock.EXPECT().
		UpdateIncidentStatus(99, models.StatusDispatched).
		Return(models.Incident{}, fmt.Errorf("incident 99: %w", storage.ErrNotFound)).
		Times(1)

	// Действие
	_, err := service.UpdateIncidentStatus(ctx, 99, models.StatusDispatched)

	// Проверки: уведомление не публикуется, ошибка сохраняет ErrNotFound
	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestCreateIncident_DuplicateExternalID(t *testing.T) {
	// Подготовка
	service, storeMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	inc := models.Incident{IncidentID: "INC-1"}

	// Ожидания
	storeMock.EXPECT().
		CreateIncident(inc).
		Return(models.Incident{}, fmt.Errorf("incident %q: %w", "INC-1", storage.ErrDuplicateIncidentID)).
		Times(1)

	// Действие
	_, err := service.CreateIncident(ctx, inc)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, storage.ErrDuplicateIncidentID)
}

func TestGenerateReport_WritesFileAndReturnsURL(t *testing.T) {
	// Подготовка
	service, storeMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	inc := models.Incident{
		ID:          1,
		IncidentID:  "INC-2023-0024",
		Description: "Two vehicle collision",
		Location:    "Main St & 5th Ave",
	}

	// Ожидания
	storeMock.EXPECT().
		GetIncident(1).
		Return(inc, nil).
		Times(1)

	// Действие
	url, err := service.GenerateReport(ctx, 1)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, "/api/incidents/reports/incident_INC-2023-0024_report.txt", url)

	content, err := os.ReadFile(filepath.Join(service.cfg.ReportsDir, "incident_INC-2023-0024_report.txt"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "Report for Incident #INC-2023-0024")
	assert.Contains(t, string(content), "Two vehicle collision")
	assert.Contains(t, string(content), "Main St & 5th Ave")
}

func TestDeleteReport_RemovesFile(t *testing.T) {
	// Подготовка
	service, storeMock, _ := newTestIncidentService(t)
	ctx := context.Background()
	inc := models.Incident{ID: 1, IncidentID: "INC-1"}

	// Ожидания
	storeMock.EXPECT().
		GetIncident(1).
		Return(inc, nil).
		Times(2)

	// Действие: сначала генерируем отчёт, затем удаляем
	_, err := service.GenerateReport(ctx, 1)
	require.NoError(t, err)

	err = service.DeleteReport(ctx, 1)

	// Проверки
	require.NoError(t, err)
	_, statErr := os.Stat(filepath.Join(service.cfg.ReportsDir, "incident_INC-1_report.txt"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestDeleteReport_MissingFile(t *testing.T) {
	// Подготовка
	service, storeMock, _ := newTestIncidentService(t)
	ctx := context.Background()

	// Ожидания
	storeMock.EXPECT().
		GetIncident(1).
		Return(models.Incident{ID: 1, IncidentID: "INC-1"}, nil).
		Times(1)

	// Действие
	err := service.DeleteReport(ctx, 1)

	// Проверки
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrReportNotFound)
}
