package v1

import (
	"github.com/incidentwatch/emergency_monitoring_system/internal/models"
)

// DTOToIncidentModel преобразует DTO создания в доменную модель
func DTOToIncidentModel(dto CreateIncidentRequest) models.Incident {
	inc := models.Incident{
		IncidentID:      dto.IncidentID,
		Title:           dto.Title,
		Description:     dto.Description,
		Severity:        dto.Severity,
		Source:          dto.Source,
		Location:        dto.Location,
		Coordinates:     dto.Coordinates,
		EstimatedTime:   dto.EstimatedTime,
		NearestHospital: dto.NearestHospital,
		OptimizedRoute:  dto.OptimizedRoute,
		Status:          dto.Status,
		HasSnapshot:     dto.HasSnapshot,
		SnapshotURL:     dto.SnapshotURL,
		Probability:     dto.Probability,
	}
	if dto.DetectedAt != nil {
		inc.DetectedAt = *dto.DetectedAt
	}
	return inc
}

// ModelToIncidentResponse преобразует доменную модель в DTO для ответа
func ModelToIncidentResponse(model models.Incident) IncidentResponse {
	return IncidentResponse{
		ID:              model.ID,
		IncidentID:      model.IncidentID,
		Title:           model.Title,
		Description:     model.Description,
		Severity:        model.Severity,
		Source:          model.Source,
		Location:        model.Location,
		Coordinates:     model.Coordinates,
		EstimatedTime:   model.EstimatedTime,
		NearestHospital: model.NearestHospital,
		OptimizedRoute:  model.OptimizedRoute,
		Status:          model.Status,
		HasSnapshot:     model.HasSnapshot,
		SnapshotURL:     model.SnapshotURL,
		DetectedAt:      model.DetectedAt,
		CreatedAt:       model.CreatedAt,
		Probability:     model.Probability,
	}
}

// ModelsToIncidentResponses преобразует слайс моделей в слайс DTO
func ModelsToIncidentResponses(models []models.Incident) []IncidentResponse {
	responses := make([]IncidentResponse, len(models))
	for i, model := range models {
		responses[i] = ModelToIncidentResponse(model)
	}
	return responses
}

// DTOToSystemStatusUpdate преобразует DTO частичного обновления в доменную модель
func DTOToSystemStatusUpdate(dto UpdateSystemStatusRequest) models.SystemStatusUpdate {
	return models.SystemStatusUpdate{
		Name:       dto.Name,
		Status:     dto.Status,
		Value:      dto.Value,
		Percentage: dto.Percentage,
	}
}
