package storage

import (
	"fmt"
	"time"

	"github.com/incidentwatch/emergency_monitoring_system/internal/models"
)

// Seed наполняет пустое хранилище стартовыми данными: учёткой администратора,
// справочником экстренных служб, показателями подсистем и парой демонстрационных
// инцидентов для карты.
func Seed(s *Store, adminUsername, adminPassword string) error {
	s.CreateUser(models.User{
		Username: adminUsername,
		Password: adminPassword,
		IsAdmin:  true,
	})

	contacts := []models.EmergencyContact{
		{Name: "City Hospital", Department: "Emergency Ward", PhoneNumber: "+1800555000", ButtonColor: "bg-green-500"},
		{Name: "Police Department", Department: "Central Station", PhoneNumber: "+1800555111", ButtonColor: "bg-blue-500"},
		{Name: "Fire Department", Department: "Main Station", PhoneNumber: "+1800555222", ButtonColor: "bg-red-500"},
		{Name: "Ambulance Service", Department: "Emergency Medical", PhoneNumber: "+1800555333", ButtonColor: "bg-green-500"},
	}
	for _, c := range contacts {
		s.CreateContact(c)
	}

	statuses := []models.SystemStatus{
		{Name: "Cameras Online", Status: "Operational", Value: intPtr(8), Percentage: 100},
		{Name: "Sensors Online", Status: "Operational", Value: intPtr(24), Percentage: 96},
		{Name: "Server Load", Status: "Normal", Value: intPtr(42), Percentage: 42},
		{Name: "Network Latency", Status: "Low", Value: intPtr(28), Percentage: 15},
	}
	for _, st := range statuses {
		s.CreateSystemStatus(st)
	}

	now := time.Now()
	incidents := []models.Incident{
		{
			IncidentID:      "INC-2023-0024",
			Title:           "Vehicle Collision",
			Description:     "Two-vehicle collision at intersection. Airbag deployment detected.",
			Severity:        models.SeverityHigh,
			Source:          "Camera Feed #3",
			Location:        "Main St & 5th Avenue",
			Coordinates:     "34.0522,-118.2437",
			EstimatedTime:   "7 minutes",
			NearestHospital: "City Hospital (2.3 miles)",
			OptimizedRoute:  "Take Main St northbound. Turn right on 3rd Ave. Continue for 1.2 miles to the accident site on the right side.",
			Status:          models.StatusActive,
			HasSnapshot:     true,
			DetectedAt:      now.Add(-4 * time.Minute),
		},
		{
			IncidentID:      fmt.Sprintf("INC-%d", now.UnixMilli()),
			Title:           "Motorcycle Accident",
			Description:     "Single motorcycle accident, possible injuries.",
			Severity:        models.SeverityMedium,
			Source:          "Sensor Array #12",
			Location:        "Park Road, near Central Park",
			Coordinates:     "34.0550,-118.2500",
			EstimatedTime:   "4 minutes",
			NearestHospital: "Memorial Hospital (1.5 miles)",
			OptimizedRoute:  "Head east on Oak St. Turn left onto Park Road. Continue for 0.8 miles. Accident site will be visible on the left near the park entrance.",
			Status:          models.StatusActive,
			DetectedAt:      now.Add(-2 * time.Minute),
		},
	}
	for _, inc := range incidents {
		if _, err := s.CreateIncident(inc); err != nil {
			return fmt.Errorf("seed incident %s: %w", inc.IncidentID, err)
		}
	}

	return nil
}

func intPtr(v int) *int { return &v }
