package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Уровни серьёзности инцидента
const (
	SeverityLow    = "low"
	SeverityMedium = "medium"
	SeverityHigh   = "high"
)

// Статусы жизненного цикла инцидента
const (
	StatusActive     = "active"
	StatusDispatched = "dispatched"
	StatusResolved   = "resolved"
	StatusCanceled   = "canceled"
)

type Incident struct {
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

// ValidStatus проверяет, что статус входит в число допустимых значений
func ValidStatus(s string) bool {
	switch s {
	case StatusActive, StatusDispatched, StatusResolved, StatusCanceled:
		return true
	}
	return false
}

// ParseCoordinates разбирает строку вида "lat,lng" в пару конечных чисел.
// Координаты хранятся как свободный текст, поэтому разбор может завершиться
// ошибкой — вызывающая сторона решает, что с этим делать.
func ParseCoordinates(s string) (lat, lng float64, err error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("coordinates %q: expected \"lat,lng\"", s)
	}

	lat, err = strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("coordinates %q: bad latitude: %w", s, err)
	}
	lng, err = strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("coordinates %q: bad longitude: %w", s, err)
	}

	if math.IsNaN(lat) || math.IsInf(lat, 0) || math.IsNaN(lng) || math.IsInf(lng, 0) {
		return 0, 0, fmt.Errorf("coordinates %q: not finite", s)
	}
	return lat, lng, nil
}
