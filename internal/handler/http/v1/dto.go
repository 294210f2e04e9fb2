package v1

import (
	"time"
)

// LoginRequest DTO для входа оператора
// @Description DTO для входа оператора
type LoginRequest struct {
	Username string `json:"username" validate:"required,min=1"`
	Password string `json:"password" validate:"required,min=1"`
}

// LoginResponse DTO для ответа на успешный вход
// @Description DTO для ответа на успешный вход
type LoginResponse struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin"`
}

// CreateIncidentRequest DTO для создания инцидента
// @Description DTO для создания инцидента
type CreateIncidentRequest struct {
	IncidentID      string     `json:"incidentId" validate:"required"`
	Title           string     `json:"title" validate:"required"`
	Description     string     `json:"description,omitempty"`
	Severity        string     `json:"severity" validate:"required,oneof=low medium high"`
	Source          string     `json:"source" validate:"required"`
	Location        string     `json:"location" validate:"required"`
	Coordinates     string     `json:"coordinates" validate:"required"`
	EstimatedTime   string     `json:"estimatedTime,omitempty"`
	NearestHospital string     `json:"nearestHospital,omitempty"`
	OptimizedRoute  string     `json:"optimizedRoute,omitempty"`
	Status          string     `json:"status,omitempty" validate:"omitempty,oneof=active dispatched resolved canceled"`
	HasSnapshot     bool       `json:"hasSnapshot,omitempty"`
	SnapshotURL     string     `json:"snapshotUrl,omitempty"`
	DetectedAt      *time.Time `json:"detectedAt,omitempty"`
	Probability     *float64   `json:"probability,omitempty"`
}

// UpdateIncidentStatusRequest DTO для смены статуса инцидента
// @Description DTO для смены статуса инцидента
type UpdateIncidentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active dispatched resolved canceled"`
}

// IncidentResponse DTO для ответа с информацией об инциденте
// @Description DTO для ответа с информацией об инциденте
type IncidentResponse struct {
	ID              int       `json:"id"`
	IncidentID      string    `json:"incidentId"`
	Title           string    `json:"title"`
	Description     string    `json:"description,omitempty"`
	Severity        string    `json:"severity"`
	Source          string    `json:"source"`
	Location        string    `json:"location"`
	Coordinates     string    `json:"coordinates"`
	EstimatedTime   string    `json:"estimatedTime,omitempty"`
	NearestHospital string    `json:"nearestHospital,omitempty"`
	OptimizedRoute  string    `json:"optimizedRoute,omitempty"`
	Status          string    `json:"status"`
	HasSnapshot     bool      `json:"hasSnapshot"`
	SnapshotURL     string    `json:"snapshotUrl,omitempty"`
	DetectedAt      time.Time `json:"detectedAt"`
	CreatedAt       time.Time `json:"createdAt"`
	Probability     *float64  `json:"probability,omitempty"`
}

// UpdateSystemStatusRequest DTO для частичного обновления показателя подсистемы
// @Description DTO для частичного обновления показателя подсистемы
type UpdateSystemStatusRequest struct {
	Name       *string `json:"name,omitempty"`
	Status     *string `json:"status,omitempty"`
	Value      *int    `json:"value,omitempty"`
	Percentage *int    `json:"percentage,omitempty" validate:"omitempty,gte=0,lte=100"`
}

// ReportResponse DTO для ответа с URL сгенерированного отчёта
// @Description DTO для ответа с URL сгенерированного отчёта
type ReportResponse struct {
	ReportURL string `json:"reportUrl"`
}

// DetectResponse DTO для ответа классификации кадра
// @Description DTO для ответа классификации кадра
type DetectResponse struct {
	Prediction          string  `json:"prediction"`
	AccidentProbability float64 `json:"accident_probability"`
	IncidentID          string  `json:"incidentId,omitempty"`
}
